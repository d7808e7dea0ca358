package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the complete coderead configuration
type Config struct {
	Version int    `json:"version" mapstructure:"version"`
	Theme   string `json:"theme" mapstructure:"theme"`
	Format  string `json:"format" mapstructure:"format"`

	Git     GitConfig     `json:"git" mapstructure:"git"`
	Logging LoggingConfig `json:"logging" mapstructure:"logging"`
}

// GitConfig controls change detection against the working tree's repository
type GitConfig struct {
	Enabled   bool `json:"enabled" mapstructure:"enabled"`
	TimeoutMs int  `json:"timeoutMs" mapstructure:"timeoutMs"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Format string `json:"format" mapstructure:"format"`
	Level  string `json:"level" mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Theme:   "fruity",
		Format:  "human",
		Git: GitConfig{
			Enabled:   true,
			TimeoutMs: 5000,
		},
		Logging: LoggingConfig{
			Format: "human",
			Level:  "info",
		},
	}
}

// Dir returns the directory coderead reads its config from:
// $XDG_CONFIG_HOME/coderead, falling back to ~/.config/coderead.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "coderead")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".coderead"
	}
	return filepath.Join(home, ".config", "coderead")
}

// Load reads configuration from <dir>/config.json, returning defaults
// when no config file exists.
func Load(dir string) (*Config, error) {
	v := viper.New()

	def := DefaultConfig()
	v.SetDefault("version", def.Version)
	v.SetDefault("theme", def.Theme)
	v.SetDefault("format", def.Format)
	v.SetDefault("git.enabled", def.Git.Enabled)
	v.SetDefault("git.timeoutMs", def.Git.TimeoutMs)
	v.SetDefault("logging.format", def.Logging.Format)
	v.SetDefault("logging.level", def.Logging.Level)

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return def, nil
		}
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the configuration to <dir>/config.json
func (c *Config) Save(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(dir, "config.json"), data, 0644)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Version != 1 {
		return &ConfigError{Field: "version", Message: "unsupported config version"}
	}
	if c.Format != "human" && c.Format != "json" {
		return &ConfigError{Field: "format", Message: "must be 'human' or 'json'"}
	}
	if c.Git.TimeoutMs <= 0 {
		return &ConfigError{Field: "git.timeoutMs", Message: "must be positive"}
	}
	return nil
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error in field '" + e.Field + "': " + e.Message
}
