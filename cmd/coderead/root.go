package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"coderead/internal/config"
	"coderead/internal/errors"
	"coderead/internal/logging"
	"coderead/internal/version"
)

var (
	// Persistent CLI flags
	formatFlag string
	themeFlag  string
	noGitFlag  bool
	debugFlag  bool
)

var rootCmd = &cobra.Command{
	Use:   "coderead",
	Short: "coderead - line-accurate source file inspector",
	Long: `coderead inspects a single source file (or clipboard text) and shows its
class/function hierarchy, duplicate definitions, and which lines changed
since the last commit.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.SetVersionTemplate("coderead version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&formatFlag, "format", "",
		"Output format: human or json (default from config)")
	rootCmd.PersistentFlags().StringVar(&themeFlag, "theme", "",
		"Syntax highlight theme (default from config)")
	rootCmd.PersistentFlags().BoolVar(&noGitFlag, "no-git", false,
		"Disable change detection even inside a repository")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false,
		"Enable debug logging")
}

// loadConfig reads the user config, falling back to defaults so a bad
// config file never blocks an analysis.
func loadConfig() *config.Config {
	cfg, err := config.Load(config.Dir())
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load config, using defaults: %v\n", err)
		return config.DefaultConfig()
	}
	return cfg
}

// newLogger builds the per-command logger.
// Precedence for level: --debug > config.
func newLogger(cfg *config.Config) *logging.Logger {
	level := logging.ParseLevel(cfg.Logging.Level)
	if debugFlag {
		level = logging.DebugLevel
	}
	return logging.New(logging.Config{
		Format: logging.Format(cfg.Logging.Format),
		Level:  level,
	})
}

// effectiveFormat resolves the output format. Precedence: flag > config.
func effectiveFormat(cfg *config.Config) OutputFormat {
	if formatFlag != "" {
		return OutputFormat(formatFlag)
	}
	return OutputFormat(cfg.Format)
}

// effectiveTheme resolves the highlight theme. Precedence: flag > config.
func effectiveTheme(cfg *config.Config) string {
	if themeFlag != "" {
		return themeFlag
	}
	return cfg.Theme
}

// exitWithError prints a human-readable message and stops the command.
// Internal detail stays hidden unless --debug is set.
func exitWithError(err error) {
	if re, ok := err.(*errors.ReadError); ok && !debugFlag {
		fmt.Fprintln(os.Stderr, re.Summary())
	} else {
		fmt.Fprintln(os.Stderr, err.Error())
	}
	os.Exit(1)
}
