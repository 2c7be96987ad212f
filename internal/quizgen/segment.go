package quizgen

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var sentenceBreak = regexp.MustCompile(`[.!?]+`)

// Segment splits text into candidate sentences on runs of '.', '!' and '?'.
// Pieces are trimmed, and any piece of minLen characters or fewer is dropped.
func Segment(text string, minLen int) []string {
	pieces := sentenceBreak.Split(text, -1)
	sentences := make([]string, 0, len(pieces))
	for _, p := range pieces {
		p = strings.TrimSpace(p)
		if utf8.RuneCountInString(p) <= minLen {
			continue
		}
		sentences = append(sentences, p)
	}
	return sentences
}
