package components

import (
	"fmt"
	"unicode/utf8"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/clozeiz/internal/ui/theme"
)

// Editor wraps bubbles/textarea with a live character counter that turns
// red once the content exceeds Limit.
type Editor struct {
	Model textarea.Model
	Limit int
}

// NewEditor creates a focused editor. Typing past limit is allowed so
// pasted text can be trimmed in place; IsOverLimit reports it.
func NewEditor(placeholder string, limit int) Editor {
	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.Focus()
	return Editor{Model: ta, Limit: limit}
}

// Update forwards msg to the textarea.
func (e Editor) Update(msg tea.Msg) (Editor, tea.Cmd) {
	var cmd tea.Cmd
	e.Model, cmd = e.Model.Update(msg)
	return e, cmd
}

// SetSize resizes the text area.
func (e *Editor) SetSize(width, height int) {
	e.Model.SetWidth(width)
	e.Model.SetHeight(height)
}

// Value returns the current content.
func (e Editor) Value() string {
	return e.Model.Value()
}

// SetValue replaces the content.
func (e *Editor) SetValue(s string) {
	e.Model.SetValue(s)
}

// Len returns the content length in characters.
func (e Editor) Len() int {
	return utf8.RuneCountInString(e.Model.Value())
}

// IsOverLimit reports whether the content is longer than Limit.
func (e Editor) IsOverLimit() bool {
	return e.Limit > 0 && e.Len() > e.Limit
}

// Counter renders "n / limit".
func (e Editor) Counter() string {
	s := fmt.Sprintf("%d / %d", e.Len(), e.Limit)
	if e.IsOverLimit() {
		return theme.ErrorText.Render(s)
	}
	return theme.Subtitle.Render(s)
}

// View renders the text area and counter.
func (e Editor) View() string {
	return e.Model.View() + "\n" + e.Counter()
}
