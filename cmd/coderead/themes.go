package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"coderead/internal/render"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available syntax highlighting themes",
	Args:  cobra.NoArgs,
	Run:   runThemes,
}

func init() {
	rootCmd.AddCommand(themesCmd)
}

func runThemes(cmd *cobra.Command, args []string) {
	cfg := loadConfig()

	names := render.ThemeNames()

	if effectiveFormat(cfg) == FormatJSON {
		out, err := formatJSON(struct {
			Themes []string `json:"themes"`
		}{Themes: names})
		if err != nil {
			exitWithError(err)
		}
		fmt.Println(out)
		return
	}

	for _, name := range names {
		marker := "  "
		if name == effectiveTheme(cfg) {
			marker = "* "
		}
		fmt.Println(marker + name)
	}
}
