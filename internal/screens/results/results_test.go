package results

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/clozeiz/internal/router"
	"github.com/abhisek/clozeiz/internal/screen"
	"github.com/abhisek/clozeiz/internal/session"
)

type stubScreen struct{}

func (stubScreen) Init() tea.Cmd                           { return nil }
func (stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return stubScreen{}, nil }
func (stubScreen) View(int, int) string                    { return "" }
func (stubScreen) Title() string                           { return "stub" }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testSummary() *session.Summary {
	return &session.Summary{
		Total:      3,
		Correct:    2,
		Percentage: 67,
		Review: []session.ReviewItem{
			{Number: 1, Text: "Bees pollinate _______ flowers", Selected: "orchid", Answer: "orchid", Answered: true, Correct: true},
			{Number: 2, Text: "_______ orbit the sun", Selected: "moons", Answer: "Planets", Answered: true},
			{Number: 3, Text: "Rivers carve deep _______", Answer: "canyons"},
		},
	}
}

func TestResults_View(t *testing.T) {
	s := New(testSummary(), func() screen.Screen { return stubScreen{} }, true)
	view := s.View(100, 40)

	for _, want := range []string{"Score: 2 / 3", "67%", "Not answered", "Planets", "Restart quiz"} {
		assert.Contains(t, view, want)
	}
	assert.Equal(t, "2 / 3", s.Status())
}

func TestResults_Restart(t *testing.T) {
	restarted := 0
	s := New(testSummary(), func() screen.Screen { restarted++; return stubScreen{} }, true)

	_, cmd := s.Update(keyPress('r'))
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok)
	assert.Equal(t, stubScreen{}, msg.Screen)
	assert.Equal(t, 1, restarted)
}

func TestResults_NewQuiz(t *testing.T) {
	s := New(testSummary(), func() screen.Screen { return stubScreen{} }, true)
	_, cmd := s.Update(keyPress('n'))
	require.NotNil(t, cmd)
	_, ok := cmd().(router.PopToRootMsg)
	assert.True(t, ok)
}

func TestResults_NewQuizDisabled(t *testing.T) {
	s := New(testSummary(), func() screen.Screen { return stubScreen{} }, false)
	_, cmd := s.Update(keyPress('n'))
	assert.Nil(t, cmd)
}

func TestResults_Quit(t *testing.T) {
	s := New(testSummary(), func() screen.Screen { return stubScreen{} }, true)
	_, cmd := s.Update(keyPress('q'))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestResults_Scroll(t *testing.T) {
	s := New(testSummary(), func() screen.Screen { return stubScreen{} }, true)
	s.Update(tea.KeyPressMsg{Code: tea.KeyPgDown})
	assert.Equal(t, 1, s.offset)
	assert.NotContains(t, s.View(100, 40), "Bees pollinate")
	s.Update(tea.KeyPressMsg{Code: tea.KeyPgUp})
	s.Update(tea.KeyPressMsg{Code: tea.KeyPgUp})
	assert.Equal(t, 0, s.offset)
}
