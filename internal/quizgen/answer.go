package quizgen

import (
	"strconv"
	"strings"
)

// CheckAnswer compares a learner's response against the correct answer.
// The response may be the option text or its 1-based index; comparison
// ignores case and surrounding whitespace.
func CheckAnswer(response string, q *Question) bool {
	response = strings.TrimSpace(response)
	if response == "" {
		return false
	}

	if idx, err := strconv.Atoi(response); err == nil && idx >= 1 && idx <= len(q.Options) {
		return equalFold(strings.TrimSpace(q.Options[idx-1]), strings.TrimSpace(q.Answer))
	}

	return equalFold(response, strings.TrimSpace(q.Answer))
}
