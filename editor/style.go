package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	Text lipgloss.Style

	// Cursor is drawn reversed over the cell under the cursor.
	Cursor lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Text:   lipgloss.NewStyle(),
		Cursor: lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
	}
}
