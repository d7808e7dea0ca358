// Package render draws analysis results for the terminal: the structure
// tree, annotated code views, duplicate warnings, and change summaries.
package render

import (
	"github.com/charmbracelet/lipgloss"

	"coderead/internal/align"
)

var (
	fileStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51"))
	classStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213"))
	methodStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	functionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("87"))
	focusStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("46"))
	dimStyle      = lipgloss.NewStyle().Faint(true)
	lineNumStyle  = lipgloss.NewStyle().Faint(true)

	addedStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46"))
	deletedStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	modifiedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226"))

	warnTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")).Background(lipgloss.Color("196"))
	warnBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("201")).Padding(0, 1)
)

// ChangeIndicator returns the one-character gutter mark for a tag.
func ChangeIndicator(tag align.Tag) string {
	switch tag {
	case align.TagAdded:
		return addedStyle.Render("+")
	case align.TagModified:
		return modifiedStyle.Render("~")
	default:
		return " "
	}
}
