// Package compose implements the content input screen.
package compose

import (
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/abhisek/clozeiz/internal/config"
	"github.com/abhisek/clozeiz/internal/logger"
	"github.com/abhisek/clozeiz/internal/quizgen"
	"github.com/abhisek/clozeiz/internal/router"
	"github.com/abhisek/clozeiz/internal/screen"
	"github.com/abhisek/clozeiz/internal/screens/quiz"
	"github.com/abhisek/clozeiz/internal/ui/components"
	"github.com/abhisek/clozeiz/internal/ui/layout"
	"github.com/abhisek/clozeiz/internal/ui/theme"
)

// Generator produces questions from content. *quizgen.Generator
// implements it.
type Generator interface {
	Generate(text string) []quizgen.Question
}

var tips = []string{
	"Paste a few paragraphs of study notes or an article.",
	"Each question blanks out one word from a sentence.",
	"At least three sentences longer than 15 characters are needed.",
	"Generating again from the same text tries new question slots.",
}

// generatedMsg carries questions back from the generation command.
type generatedMsg struct {
	runID     string
	questions []quizgen.Question
}

// ComposeScreen lets the learner enter text and generate a quiz from it.
// The text is kept after generation so the learner can regenerate.
type ComposeScreen struct {
	gen        Generator
	log        *logger.Logger
	editor     components.Editor
	limit      int
	errMsg     string
	generating bool
}

var _ screen.Screen = (*ComposeScreen)(nil)
var _ screen.KeyHintProvider = (*ComposeScreen)(nil)
var _ screen.Capturing = (*ComposeScreen)(nil)

// New creates a ComposeScreen that accepts up to limit characters.
func New(gen Generator, limit int, log *logger.Logger) *ComposeScreen {
	if log == nil {
		log = logger.Nop()
	}
	return &ComposeScreen{
		gen:    gen,
		log:    log,
		editor: components.NewEditor("Paste or type your study material here...", limit),
		limit:  limit,
	}
}

func (s *ComposeScreen) Init() tea.Cmd {
	return nil
}

func (s *ComposeScreen) Title() string {
	return "New Quiz"
}

func (s *ComposeScreen) CapturesInput() bool { return true }

func (s *ComposeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Ctrl+S", Description: "Generate"},
		{Key: "Ctrl+L", Description: "Clear"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Content returns the current editor text.
func (s *ComposeScreen) Content() string {
	return s.editor.Value()
}

// SetContent replaces the editor text.
func (s *ComposeScreen) SetContent(text string) {
	s.editor.SetValue(text)
	s.errMsg = ""
}

func (s *ComposeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w := components.ContentWidth(msg.Width)
		h := max(layout.ContentHeight(msg.Height)-len(tips)-8, 3)
		s.editor.SetSize(w, h)
		return s, nil

	case generatedMsg:
		s.generating = false
		s.log.Info("quiz generated", "run", msg.runID, "questions", len(msg.questions))
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: quiz.New(msg.questions, quiz.Options{AllowNew: true, Logger: s.log})}
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+s":
			return s, s.submit()
		case "ctrl+l":
			s.SetContent("")
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.editor, cmd = s.editor.Update(msg)
	if s.errMsg != "" && problem(s.editor.Value(), s.limit) == "" {
		s.errMsg = ""
	}
	return s, cmd
}

// submit validates the content and starts generation in the background.
func (s *ComposeScreen) submit() tea.Cmd {
	if s.generating {
		return nil
	}
	content := s.editor.Value()
	if msg := problem(content, s.limit); msg != "" {
		s.errMsg = msg
		return nil
	}
	s.errMsg = ""
	s.generating = true

	runID := uuid.New().String()
	s.log.Debug("generating quiz", "run", runID, "chars", len([]rune(content)))
	gen := s.gen
	return func() tea.Msg {
		return generatedMsg{runID: runID, questions: gen.Generate(content)}
	}
}

// problem returns the message shown for unusable content, or "".
func problem(content string, limit int) string {
	err := config.AppConfig{MaxContentChars: limit}.CheckContent(content)
	var tooLong *config.ContentTooLongError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &tooLong):
		return fmt.Sprintf("Text is too long: %d characters, the limit is %d.", tooLong.Length, tooLong.Limit)
	default:
		return "Please enter some text to generate a quiz from."
	}
}

func (s *ComposeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(theme.Title.Render("Create a quiz from your text"))
	b.WriteString("\n\n")
	b.WriteString(s.editor.View())
	b.WriteString("\n")

	switch {
	case s.generating:
		b.WriteString(theme.Hint.Render("Generating..."))
	case s.errMsg != "":
		b.WriteString(theme.ErrorText.Render(s.errMsg))
	}
	b.WriteString("\n\n")

	var tipLines []string
	for _, tip := range tips {
		tipLines = append(tipLines, "• "+tip)
	}
	b.WriteString(theme.Hint.Width(cw).Render(strings.Join(tipLines, "\n")))

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, b.String())
}
