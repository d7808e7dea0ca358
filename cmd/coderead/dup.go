package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"coderead/internal/render"
)

var dupCmd = &cobra.Command{
	Use:   "dup <file>",
	Short: "List duplicate definitions in a file",
	Long: `Report every name defined more than once. Functions and methods are
grouped by bare name regardless of class; classes are grouped separately.`,
	Args: cobra.ExactArgs(1),
	Run:  runDup,
}

func init() {
	rootCmd.AddCommand(dupCmd)
}

func runDup(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	logger := newLogger(cfg)

	a, err := analyzeFile(context.Background(), args[0], cfg, logger)
	if err != nil {
		exitWithError(err)
	}

	if effectiveFormat(cfg) == FormatJSON {
		out, err := formatJSON(struct {
			File       string      `json:"file"`
			Duplicates interface{} `json:"duplicates"`
		}{File: a.Path, Duplicates: a.Groups})
		if err != nil {
			exitWithError(err)
		}
		fmt.Println(out)
		return
	}

	if len(a.Groups) == 0 {
		fmt.Printf("no duplicate definitions in %s\n", a.Path)
		return
	}
	fmt.Println(render.DuplicateWarnings(a.Groups))
}
