// Package results implements the score and review screen.
package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/clozeiz/internal/router"
	"github.com/abhisek/clozeiz/internal/screen"
	"github.com/abhisek/clozeiz/internal/session"
	"github.com/abhisek/clozeiz/internal/ui/components"
	"github.com/abhisek/clozeiz/internal/ui/layout"
	"github.com/abhisek/clozeiz/internal/ui/theme"
)

// ResultsScreen shows the score and a per-question review.
type ResultsScreen struct {
	summary *session.Summary
	menu    components.Menu
	offset  int // first review row shown
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)
var _ screen.StatusProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen. restart builds the screen that retakes
// the same quiz; allowNew enables returning to the compose screen.
func New(summary *session.Summary, restart func() screen.Screen, allowNew bool) *ResultsScreen {
	items := []components.MenuItem{
		{Key: "r", Label: "Restart quiz", Action: func() tea.Cmd {
			next := restart()
			return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
		}},
		{Key: "n", Label: "New quiz", Disabled: !allowNew, Action: func() tea.Cmd {
			return func() tea.Msg { return router.PopToRootMsg{} }
		}},
		{Key: "q", Label: "Quit", Action: func() tea.Cmd { return tea.Quit }},
	}
	return &ResultsScreen{summary: summary, menu: components.NewMenu(items)}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) Status() string {
	return fmt.Sprintf("%d / %d", s.summary.Correct, s.summary.Total)
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "r", Description: "Restart"},
		{Key: "n", Description: "New quiz"},
		{Key: "PgUp/PgDn", Description: "Scroll"},
		{Key: "q", Description: "Quit"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "pgdown", "J":
		if s.offset < len(s.summary.Review)-1 {
			s.offset++
		}
		return s, nil
	case "pgup", "K":
		if s.offset > 0 {
			s.offset--
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(kmsg)
	return s, cmd
}

func (s *ResultsScreen) View(width, height int) string {
	sum := s.summary
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(theme.Title.Render("Quiz complete!"))
	b.WriteString("\n\n")
	b.WriteString(theme.Score.Render(fmt.Sprintf("Score: %d / %d   (%d%%)", sum.Correct, sum.Total, sum.Percentage)))
	b.WriteString("\n\n")

	menu := s.menu.View()
	used := lipgloss.Height(b.String()) + lipgloss.Height(menu) + 4
	b.WriteString(s.renderReview(cw, max(height-used, 3)))
	b.WriteString("\n")
	b.WriteString(menu)

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}

// renderReview renders review rows from offset until maxLines is used.
func (s *ResultsScreen) renderReview(cw, maxLines int) string {
	var rows []string
	lines := 0
	for _, item := range s.summary.Review[min(s.offset, len(s.summary.Review)):] {
		row := renderItem(item, cw)
		h := lipgloss.Height(row)
		if lines+h > maxLines && len(rows) > 0 {
			rows = append(rows, theme.Hint.Render("… PgDn for more"))
			break
		}
		rows = append(rows, row)
		lines += h
	}
	return strings.Join(rows, "\n")
}

func renderItem(item session.ReviewItem, cw int) string {
	mark, style := "✗", theme.Incorrect
	if item.Correct {
		mark, style = "✓", theme.Correct
	}

	var b strings.Builder
	b.WriteString(style.Render(fmt.Sprintf("%s %d. ", mark, item.Number)))
	b.WriteString(theme.Body.Width(cw - 6).Render(item.Text))
	b.WriteString("\n")

	answer := "Not answered"
	if item.Answered {
		answer = item.Selected
	}
	b.WriteString(theme.Subtitle.Render("     Your answer: "))
	b.WriteString(style.Render(answer))
	if !item.Correct {
		b.WriteString(theme.Subtitle.Render("   Correct: "))
		b.WriteString(theme.Correct.Render(item.Answer))
	}
	b.WriteString("\n")
	return b.String()
}
