// Package session holds the state of one quiz attempt: which question
// is showing, which option the learner picked for each, and the final
// score. It has no UI dependencies.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/clozeiz/internal/quizgen"
)

// Unanswered marks a question with no selected option.
const Unanswered = -1

// Phase represents the current phase of an attempt.
type Phase int

const (
	PhaseAnswering Phase = iota // Learner is moving through questions
	PhaseFinished               // Results are available
)

// State tracks the runtime state of a quiz attempt.
type State struct {
	// ID identifies the attempt in logs.
	ID string

	// Questions is the quiz being taken, in display order.
	Questions []quizgen.Question

	// Current is the index of the question on screen.
	Current int

	// Answers holds the selected option index per question, or Unanswered.
	Answers []int

	// Phase is the current phase.
	Phase Phase

	// StartTime is when the attempt began or was last restarted.
	StartTime time.Time

	// Elapsed is set by Finish.
	Elapsed time.Duration
}

// NewState starts an attempt over questions.
func NewState(questions []quizgen.Question) *State {
	s := &State{
		ID:        uuid.New().String(),
		Questions: questions,
	}
	s.Restart()
	return s
}

// Restart clears every answer and returns to the first question.
func (s *State) Restart() {
	s.Answers = make([]int, len(s.Questions))
	for i := range s.Answers {
		s.Answers[i] = Unanswered
	}
	s.Current = 0
	s.Phase = PhaseAnswering
	s.StartTime = time.Now()
	s.Elapsed = 0
}

// Empty reports whether there is nothing to answer.
func (s *State) Empty() bool { return len(s.Questions) == 0 }

// CurrentQuestion returns the question on screen, or nil for an empty quiz.
func (s *State) CurrentQuestion() *quizgen.Question {
	if s.Empty() {
		return nil
	}
	return &s.Questions[s.Current]
}

// Select records option as the answer to the current question. Out of
// range options are ignored.
func (s *State) Select(option int) bool {
	q := s.CurrentQuestion()
	if q == nil || s.Phase != PhaseAnswering || option < 0 || option >= len(q.Options) {
		return false
	}
	s.Answers[s.Current] = option
	return true
}

// Selected returns the option chosen for the current question.
func (s *State) Selected() int {
	if s.Empty() {
		return Unanswered
	}
	return s.Answers[s.Current]
}

// IsLast reports whether the current question is the final one.
func (s *State) IsLast() bool {
	return s.Current >= len(s.Questions)-1
}

// Next moves to the following question. It returns false on the last
// question; the caller decides whether to Finish.
func (s *State) Next() bool {
	if s.IsLast() {
		return false
	}
	s.Current++
	return true
}

// Previous moves back one question. It returns false on the first.
func (s *State) Previous() bool {
	if s.Current == 0 {
		return false
	}
	s.Current--
	return true
}

// Finish ends the attempt.
func (s *State) Finish() {
	if s.Phase == PhaseFinished {
		return
	}
	s.Phase = PhaseFinished
	s.Elapsed = time.Since(s.StartTime)
}

// IsCorrect reports whether question i was answered correctly.
func (s *State) IsCorrect(i int) bool {
	sel := s.Answers[i]
	if sel == Unanswered {
		return false
	}
	q := &s.Questions[i]
	return quizgen.CheckAnswer(q.Options[sel], q)
}

// Score returns the number of correct answers.
func (s *State) Score() int {
	n := 0
	for i := range s.Questions {
		if s.IsCorrect(i) {
			n++
		}
	}
	return n
}
