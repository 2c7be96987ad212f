// Package quiz implements the question-by-question quiz screen.
package quiz

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/clozeiz/internal/logger"
	"github.com/abhisek/clozeiz/internal/quizgen"
	"github.com/abhisek/clozeiz/internal/router"
	"github.com/abhisek/clozeiz/internal/screen"
	"github.com/abhisek/clozeiz/internal/screens/results"
	"github.com/abhisek/clozeiz/internal/session"
	"github.com/abhisek/clozeiz/internal/ui/components"
	"github.com/abhisek/clozeiz/internal/ui/layout"
	"github.com/abhisek/clozeiz/internal/ui/theme"
)

// Options configures a QuizScreen.
type Options struct {
	// AllowNew enables going back to the compose screen for a new quiz.
	// It is off when playing a quiz loaded from a file.
	AllowNew bool

	Logger *logger.Logger
}

// QuizScreen shows one question at a time and remembers the option
// picked for each.
type QuizScreen struct {
	state  *session.State
	choice components.MultiChoice
	opts   Options
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)

// New starts a fresh attempt over questions.
func New(questions []quizgen.Question, opts Options) *QuizScreen {
	return FromState(session.NewState(questions), opts)
}

// FromState resumes an existing attempt.
func FromState(state *session.State, opts Options) *QuizScreen {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	s := &QuizScreen{state: state, opts: opts}
	s.syncChoice()
	return s
}

// State exposes the underlying attempt.
func (s *QuizScreen) State() *session.State { return s.state }

func (s *QuizScreen) Init() tea.Cmd {
	s.opts.Logger.Debug("quiz started", "attempt", s.state.ID, "questions", len(s.state.Questions))
	return nil
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) Status() string {
	if s.state.Empty() {
		return ""
	}
	p := s.state.Progress()
	return fmt.Sprintf("%d / %d answered", p.Answered, p.Total)
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.state.Empty() {
		if s.opts.AllowNew {
			return []layout.KeyHint{{Key: "n", Description: "Create new"}, {Key: "q", Description: "Quit"}}
		}
		return []layout.KeyHint{{Key: "q", Description: "Quit"}}
	}
	next := "Next"
	if s.state.IsLast() {
		next = "Finish"
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "1-" + fmt.Sprint(len(s.state.CurrentQuestion().Options)), Description: "Pick"},
		{Key: "Enter", Description: "Pick & " + next},
		{Key: "←→", Description: "Prev/" + next},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.state.Empty() {
		if kmsg.String() == "n" && s.opts.AllowNew {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	switch kmsg.String() {
	case "enter":
		s.state.Select(s.choice.Cursor)
		return s, s.advance()
	case "right", "l", "tab":
		return s, s.advance()
	case "left", "h", "shift+tab":
		if s.state.Previous() {
			s.syncChoice()
		}
		return s, nil
	}

	var changed bool
	s.choice, changed = s.choice.Update(kmsg)
	if changed {
		s.state.Select(s.choice.Chosen)
	}
	return s, nil
}

// advance moves to the next question, or to the results after the last.
func (s *QuizScreen) advance() tea.Cmd {
	if s.state.Next() {
		s.syncChoice()
		return nil
	}

	s.state.Finish()
	summary := session.BuildSummary(s.state)
	s.opts.Logger.Info("quiz finished", "attempt", s.state.ID, "score", summary.Correct, "total", summary.Total)

	state, opts := s.state, s.opts
	restart := func() screen.Screen {
		state.Restart()
		return FromState(state, opts)
	}
	next := results.New(summary, restart, opts.AllowNew)
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

// syncChoice rebuilds the picker for the current question.
func (s *QuizScreen) syncChoice() {
	q := s.state.CurrentQuestion()
	if q == nil {
		s.choice = components.NewMultiChoice(nil, -1)
		return
	}
	s.choice = components.NewMultiChoice(q.Options, s.state.Selected())
}

func (s *QuizScreen) View(width, height int) string {
	if s.state.Empty() {
		return s.viewEmpty(width, height)
	}

	cw := components.ContentWidth(width)
	p := s.state.Progress()
	q := s.state.CurrentQuestion()

	var b strings.Builder
	b.WriteString(theme.Subtitle.Render(fmt.Sprintf("Question %d of %d", p.Position, p.Total)))
	b.WriteString("\n")
	b.WriteString(components.NewProgressBar("", p.Fraction(), false, cw).View())
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(cw).Render(components.Highlight(q.Text, quizgen.Blank)))
	b.WriteString("\n\n")
	b.WriteString(s.choice.View())

	return layout.Center(components.Card(b.String(), cw), width, height)
}

func (s *QuizScreen) viewEmpty(width, height int) string {
	body := theme.Title.Render("No questions could be generated") + "\n\n" +
		theme.Subtitle.Render("Try longer text with at least three full sentences.")
	if s.opts.AllowNew {
		body += "\n\n" + theme.Hint.Render("Press n to create a new quiz.")
	}
	return layout.Center(body, width, height)
}
