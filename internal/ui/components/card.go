package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/clozeiz/internal/ui/theme"
)

// ContentWidth returns the inner width used for cards within a frame.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 76)
}

// Card wraps content in a rounded-border card of content width cw.
func Card(content string, cw int) string {
	return theme.Card.Width(cw).Render(content)
}

// Section renders a bold heading above body.
func Section(heading, body string) string {
	return lipgloss.JoinVertical(lipgloss.Left, theme.Title.Render(heading), "", body)
}
