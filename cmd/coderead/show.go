package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"coderead/internal/clip"
	"coderead/internal/errors"
	"coderead/internal/render"
	"coderead/internal/resolve"
)

var (
	showEntity  string
	showLines   string
	showAll     bool
	showNoCopy  bool
	showNoLineN bool
)

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Display a function, method, line range, or the whole file",
	Long: `Display annotated source with line numbers and change indicators.

Targets:
  --entity NAME        a function or method; Class.method picks one class
  --lines START[:END]  an explicit 1-indexed line range
  --all                the entire file

An ambiguous bare name shows the first occurrence and lists the rest.
Entity displays are copied to the clipboard unless --no-copy is set.`,
	Args: cobra.ExactArgs(1),
	Run:  runShow,
}

func init() {
	showCmd.Flags().StringVarP(&showEntity, "entity", "m", "", "Entity to display (name or Class.name)")
	showCmd.Flags().StringVarP(&showLines, "lines", "L", "", "Line range START[:END]")
	showCmd.Flags().BoolVar(&showAll, "all", false, "Display the entire file")
	showCmd.Flags().BoolVar(&showNoCopy, "no-copy", false, "Do not copy displayed code to the clipboard")
	showCmd.Flags().BoolVar(&showNoLineN, "no-linenumber", false, "Hide line numbers")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	logger := newLogger(cfg)

	req, err := buildRequest()
	if err != nil {
		exitWithError(err)
	}

	a, err := analyzeFile(context.Background(), args[0], cfg, logger)
	if err != nil {
		exitWithError(err)
	}

	span, err := resolve.Resolve(req, a.Entities, a.Groups, a.Changes, a.Lines)
	if err != nil {
		exitWithError(err)
	}

	if effectiveFormat(cfg) == FormatJSON {
		out, err := formatJSON(span)
		if err != nil {
			exitWithError(err)
		}
		fmt.Println(out)
		return
	}

	if warning := render.AmbiguityWarning(span); warning != "" {
		fmt.Println(warning)
		fmt.Println()
	}

	fmt.Println(render.Header(span))
	fmt.Println()
	fmt.Print(render.Code(span, render.CodeOptions{
		Language:    a.Language.ChromaName(),
		Theme:       effectiveTheme(cfg),
		LineNumbers: !showNoLineN,
	}))

	if req.Kind == resolve.KindEntity && !showNoCopy {
		if err := clip.Write(spanSource(span)); err != nil {
			logger.Warn("clipboard copy failed", map[string]any{"error": err.Error()})
		} else {
			fmt.Println()
			fmt.Println("code copied to clipboard")
		}
	}
}

// buildRequest translates the target flags into a resolver request.
// Exactly one target may be given; none means the whole file.
func buildRequest() (resolve.Request, error) {
	targets := 0
	if showEntity != "" {
		targets++
	}
	if showLines != "" {
		targets++
	}
	if showAll {
		targets++
	}
	if targets > 1 {
		return resolve.Request{}, errors.Newf(errors.InternalError,
			"choose one of --entity, --lines, --all")
	}

	switch {
	case showEntity != "":
		name, class := showEntity, ""
		if idx := strings.Index(showEntity, "."); idx > 0 {
			class, name = showEntity[:idx], showEntity[idx+1:]
		}
		return resolve.ByEntity(name, class), nil

	case showLines != "":
		start, end, err := parseLineRange(showLines)
		if err != nil {
			return resolve.Request{}, err
		}
		return resolve.ByLines(start, end), nil

	default:
		return resolve.WholeFile(), nil
	}
}

// parseLineRange parses "20" or "20:30".
func parseLineRange(spec string) (start, end int, err error) {
	parts := strings.SplitN(spec, ":", 2)

	start, err = strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, errors.Newf(errors.RangeInvalid, "invalid line range %q", spec)
	}
	if len(parts) == 2 {
		end, err = strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return 0, 0, errors.Newf(errors.RangeInvalid, "invalid line range %q", spec)
		}
	}
	return start, end, nil
}

func spanSource(span *resolve.ResolvedSpan) string {
	texts := make([]string, len(span.Lines))
	for i, line := range span.Lines {
		texts[i] = line.Text
	}
	return strings.Join(texts, "\n")
}
