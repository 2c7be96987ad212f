package quizgen

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// minTokenLength is exclusive: tokens must be longer than this.
	minTokenLength = 4

	// minCleanLength is inclusive: cleaned words shorter than this are rejected.
	minCleanLength = 4
)

// stopWords are common English words never used as answers or distractors.
var stopWords = toSet([]string{
	"a", "about", "above", "after", "again", "against", "all", "also", "among",
	"an", "and", "another", "any", "are", "around", "as", "at", "be", "because",
	"been", "before", "being", "below", "between", "both", "but", "by", "can",
	"could", "did", "does", "doing", "down", "during", "each", "either", "every",
	"few", "for", "from", "further", "had", "has", "have", "having", "he", "her",
	"here", "hers", "herself", "him", "himself", "his", "how", "however", "into",
	"it", "its", "itself", "just", "many", "might", "more", "most", "much", "must",
	"myself", "neither", "other", "others", "ought", "ourselves", "over", "same",
	"shall", "should", "since", "some", "such", "than", "that", "their", "theirs",
	"them", "themselves", "then", "there", "these", "they", "this", "those",
	"through", "under", "until", "upon", "very", "was", "were", "what", "when",
	"where", "whereas", "whether", "which", "while", "whom", "whose", "will",
	"with", "within", "without", "would", "your", "yours", "yourself",
})

func toSet(words []string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}

// IsStopWord reports whether w is a stop word, ignoring case.
func IsStopWord(w string) bool {
	_, ok := stopWords[strings.ToLower(w)]
	return ok
}

// IsEligibleToken reports whether a raw whitespace-delimited token is long
// enough to blank out and is not purely numeric.
func IsEligibleToken(tok string) bool {
	return utf8.RuneCountInString(tok) > minTokenLength && !isNumeric(tok)
}

// IsCandidateWord reports whether tok may appear in the global word pool:
// it must be an eligible token whose cleaned form is not a stop word.
func IsCandidateWord(tok string) bool {
	return IsEligibleToken(tok) && !IsStopWord(Clean(tok))
}

// Clean strips every non-letter character from tok.
func Clean(tok string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return r
		}
		return -1
	}, tok)
}

// EligibleTokens returns the whitespace-separated tokens of sentence that
// may be blanked, in order.
func EligibleTokens(sentence string) []string {
	var tokens []string
	for _, tok := range strings.Fields(sentence) {
		if IsEligibleToken(tok) {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// usableWord reports whether a cleaned word is long enough to be an answer.
func usableWord(w string) bool {
	return utf8.RuneCountInString(w) >= minCleanLength
}

// WordPool extracts the significant words of text, deduplicated
// case-insensitively in order of first appearance.
func WordPool(text string) []string {
	seen := make(map[string]struct{})
	var pool []string
	for _, tok := range strings.Fields(text) {
		if !IsCandidateWord(tok) {
			continue
		}
		w := Clean(tok)
		if !usableWord(w) {
			continue
		}
		key := strings.ToLower(w)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		pool = append(pool, w)
	}
	return pool
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func equalFold(a, b string) bool {
	return strings.EqualFold(a, b)
}

// overlaps reports whether a contains b or b contains a, ignoring case.
func overlaps(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	return strings.Contains(la, lb) || strings.Contains(lb, la)
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}
