package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/clozeiz/internal/ui/theme"
)

// MultiChoice is a numbered option picker. Cursor is the highlighted row
// and Chosen is the committed pick, or -1.
type MultiChoice struct {
	Options []string
	Cursor  int
	Chosen  int
}

// NewMultiChoice creates a picker with chosen preselected (-1 for none).
func NewMultiChoice(options []string, chosen int) MultiChoice {
	m := MultiChoice{Options: options, Chosen: -1}
	if chosen >= 0 && chosen < len(options) {
		m.Chosen = chosen
		m.Cursor = chosen
	}
	return m
}

// Update moves the cursor with up/down or j/k and commits with space or
// a digit key. It reports whether Chosen changed.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, false
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
		return m, false
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
		return m, false
	case "space", " ":
		return m.choose(m.Cursor)
	}

	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		return m.choose(int(key[0] - '1'))
	}
	return m, false
}

func (m MultiChoice) choose(i int) (MultiChoice, bool) {
	if i < 0 || i >= len(m.Options) {
		return m, false
	}
	m.Cursor = i
	changed := m.Chosen != i
	m.Chosen = i
	return m, changed
}

// View renders one row per option.
func (m MultiChoice) View() string {
	var b strings.Builder
	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Cursor {
			prefix = "▸ "
		}
		mark := "( )"
		if i == m.Chosen {
			mark = "(•)"
		}
		line := fmt.Sprintf("%s%d. %s %s", prefix, i+1, mark, opt)

		style := theme.Unselected
		switch {
		case i == m.Chosen:
			style = theme.Correct.Foreground(theme.Accent)
		case i == m.Cursor:
			style = theme.Selected
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

// Highlight renders text with the blank marker emphasized.
func Highlight(text, blank string) string {
	before, after, ok := strings.Cut(text, blank)
	body := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	if !ok {
		return body.Render(text)
	}
	return body.Render(before) + theme.Score.Render(blank) + body.Render(after)
}
