package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/clozeiz/internal/quizgen"
	"github.com/abhisek/clozeiz/internal/screens/compose"
	"github.com/abhisek/clozeiz/internal/screens/quiz"
)

type fixedGenerator struct{ qs []quizgen.Question }

func (g fixedGenerator) Generate(string) []quizgen.Question { return g.qs }

func sampleQuestions() []quizgen.Question {
	return []quizgen.Question{{
		ID: 1, Text: "Owls hunt at _______", Options: []string{"night", "dawn", "noon", "dusk", "tide"},
		Answer: "night", Kind: quizgen.KindFillInBlank,
	}}
}

func TestNewAppModel_ComposeByDefault(t *testing.T) {
	m := newAppModel(Options{Generator: fixedGenerator{}})
	_, ok := m.router.Active().(*compose.ComposeScreen)
	assert.True(t, ok, "expected compose screen, got %T", m.router.Active())
}

func TestNewAppModel_PlayMode(t *testing.T) {
	m := newAppModel(Options{Questions: sampleQuestions()})
	_, ok := m.router.Active().(*quiz.QuizScreen)
	assert.True(t, ok, "expected quiz screen, got %T", m.router.Active())
}

func TestAppModel_QuitKeys(t *testing.T) {
	editing := newAppModel(Options{Generator: fixedGenerator{}})
	assert.True(t, editing.capturing(), "compose screen must receive q as text")

	_, cmd := editing.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	_, isQuit := cmd().(tea.QuitMsg)
	assert.True(t, isQuit)

	play := newAppModel(Options{Questions: sampleQuestions()})
	assert.False(t, play.capturing())
	_, cmd = play.Update(tea.KeyPressMsg{Code: 'q', Text: "q"})
	require.NotNil(t, cmd)
	_, isQuit = cmd().(tea.QuitMsg)
	assert.True(t, isQuit)
}

func TestAppModel_EscPopsToCompose(t *testing.T) {
	m := newAppModel(Options{Generator: fixedGenerator{qs: sampleQuestions()}})
	m.router.Push(quiz.New(sampleQuestions(), quiz.Options{AllowNew: true}))
	require.Equal(t, 2, m.router.Depth())

	next, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	next, _ = next.Update(cmd())

	am := next.(AppModel)
	assert.Equal(t, 1, am.router.Depth())
}

func TestAppModel_ViewFrame(t *testing.T) {
	m := newAppModel(Options{Questions: sampleQuestions()})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	frame := next.(AppModel).render()
	assert.Contains(t, frame, "clozeiz")
	assert.Contains(t, frame, "Question 1 of 1")
	assert.Contains(t, frame, "0 / 1 answered")
}

func TestAppModel_TooSmall(t *testing.T) {
	m := newAppModel(Options{Questions: sampleQuestions()})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 30, Height: 10})
	assert.Contains(t, next.(AppModel).render(), "Terminal too small")
}
