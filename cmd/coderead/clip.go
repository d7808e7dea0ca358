package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"coderead/internal/align"
	"coderead/internal/clip"
	"coderead/internal/errors"
	"coderead/internal/lang"
	"coderead/internal/render"
	"coderead/internal/resolve"
)

var (
	clipType string
	clipSave string
)

var clipCmd = &cobra.Command{
	Use:   "clip",
	Short: "Display the clipboard as highlighted code",
	Long: `Read the clipboard and display its content with syntax highlighting,
useful for inspecting code copied from elsewhere. The language is
guessed from --type; use --save to write the content to a file.`,
	Args: cobra.NoArgs,
	Run:  runClip,
}

func init() {
	clipCmd.Flags().StringVarP(&clipType, "type", "t", "py", "File extension used to pick the language")
	clipCmd.Flags().StringVar(&clipSave, "save", "", "Write clipboard content to a file")
	rootCmd.AddCommand(clipCmd)
}

func runClip(cmd *cobra.Command, args []string) {
	cfg := loadConfig()
	logger := newLogger(cfg)

	content, err := clip.Read()
	if err != nil {
		exitWithError(err)
	}

	ext := clipType
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	language, ok := lang.FromExtension(ext)
	if !ok {
		exitWithError(errors.Newf(errors.LanguageUnsupported,
			"unsupported clipboard type %q", clipType))
	}

	if clipSave != "" {
		if err := os.WriteFile(clipSave, []byte(content), 0o644); err != nil {
			exitWithError(errors.New(errors.InternalError,
				fmt.Sprintf("cannot save clipboard to %s", clipSave), err))
		}
		logger.Info("clipboard saved", map[string]any{"path": clipSave})
	}

	span := clipboardSpan(content)

	if effectiveFormat(cfg) == FormatJSON {
		out, err := formatJSON(span)
		if err != nil {
			exitWithError(err)
		}
		fmt.Println(out)
		return
	}

	fmt.Print(render.Code(span, render.CodeOptions{
		Language:    language.ChromaName(),
		Theme:       effectiveTheme(cfg),
		LineNumbers: true,
	}))

	if clipSave != "" {
		fmt.Println()
		fmt.Printf("saved to %s\n", clipSave)
	}
}

// clipboardSpan wraps clipboard text in a span so it renders through
// the same code view as files. Clipboard content has no git history,
// so every line is unchanged.
func clipboardSpan(content string) *resolve.ResolvedSpan {
	raw := strings.Split(strings.TrimSuffix(content, "\n"), "\n")
	lines := make([]resolve.Line, len(raw))
	for i, text := range raw {
		lines[i] = resolve.Line{Number: i + 1, Text: text, Tag: align.TagUnchanged}
	}
	return &resolve.ResolvedSpan{StartLine: 1, EndLine: len(raw), Lines: lines}
}
