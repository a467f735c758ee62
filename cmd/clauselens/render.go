package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"clauselens/internal/diff"
	"clauselens/internal/ruliad"
)

// Presentation is CLI-only; the core emits plain edit scripts and the state
// record and never depends on styling.
var (
	insertStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	deleteStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Strikethrough(true)
	badgeStyle  = lipgloss.NewStyle().Bold(true)
)

// renderDiff flattens an edit script into a single styled line: deletions
// struck through, insertions highlighted, equal runs untouched.
func renderDiff(segments []diff.Segment) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		switch s.Kind {
		case diff.Insert:
			parts = append(parts, insertStyle.Render(s.Text))
		case diff.Delete:
			parts = append(parts, deleteStyle.Render(s.Text))
		default:
			parts = append(parts, s.Text)
		}
	}
	return strings.Join(parts, " ")
}

func stateBadge(s ruliad.State) string {
	return badgeStyle.Render(s.Name)
}
