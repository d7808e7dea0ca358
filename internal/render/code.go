package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"coderead/internal/align"
	"coderead/internal/resolve"
)

// CodeOptions controls annotated code rendering.
type CodeOptions struct {
	// Language is the chroma lexer name; falls back to plain text.
	Language string
	// Theme is the chroma style name.
	Theme string
	// LineNumbers toggles the line-number gutter.
	LineNumbers bool
	// Plain disables highlighting entirely.
	Plain bool
}

// Code renders a resolved span with line numbers, change indicators,
// and syntax highlighting. Deletion annotations appear as their own
// marker rows so they never consume a line slot.
func Code(span *resolve.ResolvedSpan, opts CodeOptions) string {
	highlighted := highlightLines(spanText(span), opts)

	width := len(fmt.Sprintf("%d", span.EndLine))
	var b strings.Builder

	for i, line := range span.Lines {
		if line.DeletedBefore > 0 {
			marker := fmt.Sprintf("%d line(s) deleted above", line.DeletedBefore)
			b.WriteString(strings.Repeat(" ", width))
			b.WriteString(" ")
			b.WriteString(deletedStyle.Render("- " + marker))
			b.WriteString("\n")
		}

		text := line.Text
		if i < len(highlighted) {
			text = highlighted[i]
		}

		if opts.LineNumbers {
			b.WriteString(lineNumStyle.Render(fmt.Sprintf("%*d", width, line.Number)))
			b.WriteString(" │ ")
		}
		b.WriteString(ChangeIndicator(line.Tag))
		b.WriteString(" ")
		b.WriteString(text)
		b.WriteString("\n")
	}

	return b.String()
}

// Header renders the one-line banner above an entity display.
func Header(span *resolve.ResolvedSpan) string {
	var b strings.Builder

	if span.Target != nil {
		kind := string(span.Target.Kind)
		b.WriteString(classStyle.Render(kind))
		b.WriteString(" ")
		b.WriteString(fileStyle.Render(span.Target.QualifiedName()))
	} else {
		b.WriteString(fileStyle.Render("lines"))
	}
	fmt.Fprintf(&b, "  %s", dimStyle.Render(fmt.Sprintf("%d-%d", span.StartLine, span.EndLine)))

	added, deleted, modified := summarize(span)
	if added+deleted+modified > 0 {
		b.WriteString("  ")
		var parts []string
		if added > 0 {
			parts = append(parts, addedStyle.Render(fmt.Sprintf("+%d", added)))
		}
		if deleted > 0 {
			parts = append(parts, deletedStyle.Render(fmt.Sprintf("-%d", deleted)))
		}
		if modified > 0 {
			parts = append(parts, modifiedStyle.Render(fmt.Sprintf("~%d", modified)))
		}
		b.WriteString(strings.Join(parts, " "))
	}

	return b.String()
}

// AmbiguityWarning renders the multiple-match table shown when a bare
// name resolved to more than one entity.
func AmbiguityWarning(span *resolve.ResolvedSpan) string {
	if len(span.Ambiguous) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(warnTitleStyle.Render(" MULTIPLE MATCHES "))
	b.WriteString("\n")
	for i, e := range span.Ambiguous {
		where := "standalone"
		if e.ClassName != "" {
			where = "class " + e.ClassName
		}
		fmt.Fprintf(&b, "#%d  %s  (%s, lines %d-%d)\n", i+1, e.QualifiedName(), where, e.StartLine, e.EndLine)
	}
	fmt.Fprintf(&b, "showing the first occurrence; use Class.%s to pick another\n", span.Target.Name)
	return warnBoxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func summarize(span *resolve.ResolvedSpan) (added, deleted, modified int) {
	for _, line := range span.Lines {
		switch line.Tag {
		case align.TagAdded:
			added++
		case align.TagModified:
			modified++
		}
		deleted += line.DeletedBefore
	}
	return added, deleted, modified
}

func spanText(span *resolve.ResolvedSpan) string {
	texts := make([]string, len(span.Lines))
	for i, line := range span.Lines {
		texts[i] = line.Text
	}
	return strings.Join(texts, "\n")
}

// highlightLines runs chroma over the whole span and splits the result
// back into lines, so multi-line constructs keep their lexer state.
func highlightLines(text string, opts CodeOptions) []string {
	if opts.Plain || text == "" {
		return strings.Split(text, "\n")
	}

	lexer := lexers.Get(opts.Language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(opts.Theme)
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		return strings.Split(text, "\n")
	}

	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return strings.Split(text, "\n")
	}

	var out strings.Builder
	if err := formatter.Format(&out, style, iterator); err != nil {
		return strings.Split(text, "\n")
	}

	return strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
}

// ThemeNames lists every available highlight theme.
func ThemeNames() []string {
	names := styles.Names()
	sort.Strings(names)
	return names
}
