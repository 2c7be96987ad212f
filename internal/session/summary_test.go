package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentage(t *testing.T) {
	tests := []struct {
		correct, total, want int
	}{
		{0, 0, 0},
		{0, 5, 0},
		{1, 3, 33},
		{2, 3, 67},
		{5, 5, 100},
		{1, 8, 13},
	}
	for _, tc := range tests {
		if got := Percentage(tc.correct, tc.total); got != tc.want {
			t.Errorf("Percentage(%d, %d) = %d, want %d", tc.correct, tc.total, got, tc.want)
		}
	}
}

func TestBuildSummary(t *testing.T) {
	s := NewState(testQuestions())
	s.Select(1) // correct
	s.Next()
	s.Select(2) // wrong: moons
	s.Next()    // third left unanswered
	s.Finish()

	sum := BuildSummary(s)
	assert.Equal(t, 3, sum.Total)
	assert.Equal(t, 1, sum.Correct)
	assert.Equal(t, 33, sum.Percentage)
	require.Len(t, sum.Review, 3)

	assert.Equal(t, ReviewItem{Number: 1, Text: "Bees pollinate _______ flowers", Selected: "orchid", Answer: "orchid", Answered: true, Correct: true}, sum.Review[0])
	assert.Equal(t, "moons", sum.Review[1].Selected)
	assert.False(t, sum.Review[1].Correct)
	assert.False(t, sum.Review[2].Answered)
	assert.Empty(t, sum.Review[2].Selected)
}
