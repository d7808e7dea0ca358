package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"coderead/internal/render"
)

var (
	treeFocus string
	treeShort bool
)

var treeCmd = &cobra.Command{
	Use:   "tree <file>",
	Short: "Show the class/function hierarchy of a file",
	Long: `Parse a source file and print its structure as a tree: classes with
their methods, plus standalone functions, each with its line span.
Duplicate definitions and uncommitted changes are flagged inline.`,
	Args: cobra.ExactArgs(1),
	Run:  runTree,
}

func init() {
	treeCmd.Flags().StringVar(&treeFocus, "focus", "", "Highlight one entity by name")
	treeCmd.Flags().BoolVar(&treeShort, "short", false, "Collapse entities far from --focus")
	rootCmd.AddCommand(treeCmd)
}

func runTree(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	logger := newLogger(cfg)

	a, err := analyzeFile(context.Background(), args[0], cfg, logger)
	if err != nil {
		exitWithError(err)
	}

	if effectiveFormat(cfg) == FormatJSON {
		out, err := formatJSON(struct {
			File       string       `json:"file"`
			Language   string       `json:"language"`
			Entities   []entityJSON `json:"entities"`
			Duplicates interface{}  `json:"duplicates,omitempty"`
			Changes    changesJSON  `json:"changes"`
		}{
			File:       a.Path,
			Language:   string(a.Language),
			Entities:   entitiesToJSON(a),
			Duplicates: a.Groups,
			Changes:    changesToJSON(a),
		})
		if err != nil {
			exitWithError(err)
		}
		fmt.Println(out)
		return
	}

	fmt.Println(render.Tree(a.Path, a.Entities, a.Changes, render.TreeOptions{
		Focus: treeFocus,
		Short: treeShort,
	}))

	if summary := render.ChangeSummary(a.Changes); summary != "" {
		fmt.Println()
		fmt.Println(summary)
	}
	if warnings := render.DuplicateWarnings(a.Groups); warnings != "" {
		fmt.Println()
		fmt.Println(warnings)
	}
}
