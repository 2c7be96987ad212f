package quizgen

import (
	"sync"

	"github.com/abhisek/clozeiz/internal/history"
)

var defaultGenerator = sync.OnceValue(func() *Generator {
	return New(DefaultConfig(), history.New(history.DefaultCapacity))
})

// GenerateQuiz generates a quiz from content using a process-wide
// generator whose history lives for the life of the process. Callers that
// need isolated history or deterministic output should build their own
// Generator with New.
func GenerateQuiz(content string) []Question {
	return defaultGenerator().Generate(content)
}
