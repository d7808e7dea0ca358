package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/tree"

	"coderead/internal/align"
	"coderead/internal/dupes"
	"coderead/internal/extract"
)

// TreeOptions controls structure-tree rendering.
type TreeOptions struct {
	// Focus highlights one entity name (case-insensitive).
	Focus string
	// Short collapses everything except the focused entity's neighbors.
	Short bool
}

// Tree renders the class/function hierarchy of a file.
func Tree(path string, entities []*extract.Entity, cm *align.ChangeMap, opts TreeOptions) string {
	header := fileStyle.Render(path)
	if cm != nil && cm.HasChanges() {
		header += dimStyle.Render(" (changes detected)")
	}

	root := tree.Root(header)

	var standalone []*extract.Entity
	classNodes := map[*extract.Entity]*tree.Tree{}
	classNodesByName := map[string]*tree.Tree{}

	// Class nodes first: a receiver method can precede its type
	// declaration in source and still has to land under it.
	for _, e := range entities {
		if e.Kind == extract.KindClass && e.Depth == 0 {
			node := tree.Root(renderEntityLabel(e, opts.Focus))
			classNodes[e] = node
			if _, seen := classNodesByName[e.Name]; !seen {
				classNodesByName[e.Name] = node
			}
			root.Child(node)
		}
	}

	for _, e := range entities {
		switch {
		case e.Kind == extract.KindClass && e.Depth == 0:
		case e.Parent != nil:
			if node, ok := classNodes[e.Parent]; ok {
				if opts.Short && !nearFocus(e, entities, opts.Focus) {
					continue
				}
				node.Child(renderEntityLabel(e, opts.Focus))
			}
		case e.Kind == extract.KindMethod && e.ClassName != "":
			// Receiver and impl methods carry no Parent pointer; group
			// them by receiver type, adding a node when the type is
			// declared in another file.
			if opts.Short && !nearFocus(e, entities, opts.Focus) {
				continue
			}
			node, ok := classNodesByName[e.ClassName]
			if !ok {
				node = tree.Root(classStyle.Render(e.ClassName))
				classNodesByName[e.ClassName] = node
				root.Child(node)
			}
			node.Child(renderEntityLabel(e, opts.Focus))
		default:
			standalone = append(standalone, e)
		}
	}

	if len(standalone) > 0 {
		node := tree.Root(dimStyle.Render("standalone functions"))
		for _, e := range standalone {
			if opts.Short && !nearFocus(e, entities, opts.Focus) {
				continue
			}
			node.Child(renderEntityLabel(e, opts.Focus))
		}
		root.Child(node)
	}

	return root.String()
}

func renderEntityLabel(e *extract.Entity, focus string) string {
	label := fmt.Sprintf("%s  %s", e.Name, dimStyle.Render(fmt.Sprintf("%d-%d", e.StartLine, e.EndLine)))
	if focus != "" && strings.EqualFold(e.Name, focus) {
		return focusStyle.Render(e.Name) + "  " + dimStyle.Render(fmt.Sprintf("%d-%d", e.StartLine, e.EndLine))
	}
	switch e.Kind {
	case extract.KindClass:
		return classStyle.Render(e.Name) + "  " + dimStyle.Render(fmt.Sprintf("%d-%d", e.StartLine, e.EndLine))
	case extract.KindMethod:
		return methodStyle.Render(e.Name) + "  " + dimStyle.Render(fmt.Sprintf("%d-%d", e.StartLine, e.EndLine))
	case extract.KindFunction:
		return functionStyle.Render(e.Name) + "  " + dimStyle.Render(fmt.Sprintf("%d-%d", e.StartLine, e.EndLine))
	}
	return label
}

// nearFocus keeps an entity visible in short mode when it is the focus
// itself or directly adjacent to it in source order.
func nearFocus(e *extract.Entity, entities []*extract.Entity, focus string) bool {
	if focus == "" {
		return true
	}
	if strings.EqualFold(e.Name, focus) {
		return true
	}
	for i, other := range entities {
		if !strings.EqualFold(other.Name, focus) {
			continue
		}
		if i > 0 && entities[i-1] == e {
			return true
		}
		if i+1 < len(entities) && entities[i+1] == e {
			return true
		}
	}
	return false
}

// DuplicateWarnings renders the duplicate groups as a warning panel.
// Returns the empty string when there is nothing to warn about.
func DuplicateWarnings(groups []dupes.Group) string {
	if len(groups) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(warnTitleStyle.Render(" DUPLICATE DEFINITIONS "))
	b.WriteString("\n")

	for _, g := range groups {
		fmt.Fprintf(&b, "%s found %d times:\n", g.Name, g.Count())
		for _, m := range g.Members {
			where := "standalone"
			if m.ClassName != "" {
				where = "in class " + m.ClassName
			}
			fmt.Fprintf(&b, "  line %d (%s)\n", m.Line, where)
		}
	}

	return warnBoxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// ChangeSummary renders aggregate counters, or the empty string when
// the file is clean.
func ChangeSummary(cm *align.ChangeMap) string {
	if cm == nil || !cm.HasChanges() {
		return ""
	}

	var parts []string
	if cm.Added > 0 {
		parts = append(parts, addedStyle.Render(fmt.Sprintf("+%d added", cm.Added)))
	}
	if cm.Deleted > 0 {
		parts = append(parts, deletedStyle.Render(fmt.Sprintf("-%d deleted", cm.Deleted)))
	}
	if cm.Modified > 0 {
		parts = append(parts, modifiedStyle.Render(fmt.Sprintf("~%d modified", cm.Modified)))
	}
	return "changes: " + strings.Join(parts, "  ")
}
