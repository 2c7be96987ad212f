// Package app wires the router and screens into the root Bubble Tea model.
package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/clozeiz/internal/config"
	"github.com/abhisek/clozeiz/internal/logger"
	"github.com/abhisek/clozeiz/internal/quizgen"
	"github.com/abhisek/clozeiz/internal/router"
	"github.com/abhisek/clozeiz/internal/screen"
	"github.com/abhisek/clozeiz/internal/screens/compose"
	"github.com/abhisek/clozeiz/internal/screens/quiz"
	"github.com/abhisek/clozeiz/internal/ui/layout"
)

// Options holds the dependencies for a TUI run. When Questions is set the
// app plays that quiz directly and Generator is unused.
type Options struct {
	Generator       compose.Generator
	Questions       []quizgen.Question
	MaxContentChars int
	Logger          *logger.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	log    *logger.Logger
	width  int
	height int
}

// newAppModel picks the first screen from opts.
func newAppModel(opts Options) AppModel {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	if opts.MaxContentChars == 0 {
		opts.MaxContentChars = config.DefaultMaxContentChars
	}

	var first screen.Screen
	if opts.Questions != nil {
		first = quiz.New(opts.Questions, quiz.Options{Logger: opts.Logger})
	} else {
		first = compose.New(opts.Generator, opts.MaxContentChars, opts.Logger)
	}
	return AppModel{router: router.New(first), log: opts.Logger}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, m.router.Update(msg)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if !m.capturing() {
				return m, tea.Quit
			}
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// capturing reports whether the active screen consumes printable keys.
func (m AppModel) capturing() bool {
	c, ok := m.router.Active().(screen.Capturing)
	return ok && c.CapturesInput()
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current window size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	var title, status string
	if active != nil {
		title = active.Title()
	}
	if sp, ok := active.(screen.StatusProvider); ok {
		status = sp.Status()
	}
	header := layout.RenderHeader(title, status, m.width)

	var hints []layout.KeyHint
	if kp, ok := active.(screen.KeyHintProvider); ok {
		hints = kp.KeyHints()
	} else {
		hints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	footer := layout.RenderFooter(hints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)

	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	m := newAppModel(opts)
	m.log.Debug("starting tui", "play", opts.Questions != nil)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
