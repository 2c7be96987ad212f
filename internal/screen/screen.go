// Package screen defines the contract between the router and the
// compose, quiz and results screens.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/clozeiz/internal/ui/layout"
)

// Screen is one full-window view managed by the router.
type Screen interface {
	// Init returns an initial command when the screen becomes active.
	Init() tea.Cmd

	// Update handles messages and returns the updated screen and command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the body between header and footer.
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is implemented by screens that show their own footer
// key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider is implemented by screens that show a status at the
// right of the header, such as question position or score.
type StatusProvider interface {
	Status() string
}

// Capturing is implemented by screens that consume printable keys, such
// as an editor, so the app does not treat "q" as quit.
type Capturing interface {
	CapturesInput() bool
}
