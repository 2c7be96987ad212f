package session

import (
	"math"
	"time"
)

// ReviewItem is one row of the results review.
type ReviewItem struct {
	Number   int // 1-based position in the quiz
	Text     string
	Selected string // empty when unanswered
	Answer   string
	Answered bool
	Correct  bool
}

// Summary holds the data displayed on the results screen.
type Summary struct {
	Duration   time.Duration
	Total      int
	Correct    int
	Percentage int
	Review     []ReviewItem
}

// Percentage rounds correct/total to the nearest whole percent.
func Percentage(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(correct) * 100 / float64(total)))
}

// BuildSummary creates a Summary from the attempt state.
func BuildSummary(s *State) *Summary {
	sum := &Summary{
		Duration: s.Elapsed,
		Total:    len(s.Questions),
		Review:   make([]ReviewItem, 0, len(s.Questions)),
	}
	for i, q := range s.Questions {
		item := ReviewItem{
			Number:  i + 1,
			Text:    q.Text,
			Answer:  q.Answer,
			Correct: s.IsCorrect(i),
		}
		if sel := s.Answers[i]; sel != Unanswered {
			item.Answered = true
			item.Selected = q.Options[sel]
		}
		if item.Correct {
			sum.Correct++
		}
		sum.Review = append(sum.Review, item)
	}
	sum.Percentage = Percentage(sum.Correct, sum.Total)
	return sum
}
