package quizgen

// Question is a generated fill-in-the-blank question ready for display.
type Question struct {
	// ID is the 1-based position of the question within the published quiz.
	ID int

	// Text is the source sentence with exactly one word replaced by Blank.
	Text string

	// Options holds the answer choices, unique case-insensitively.
	// Exactly one of them matches Answer.
	Options []string

	// Answer is the word that was removed from the sentence.
	Answer string

	// Kind tags the question style.
	Kind Kind
}

// Kind describes how a question was produced.
type Kind string

const (
	// KindFillInBlank is a sentence with one word blanked out.
	KindFillInBlank Kind = "fill-in-blank"

	// KindGeneralKnowledge is reserved. No generator produces it yet.
	KindGeneralKnowledge Kind = "general-knowledge"
)

// Blank replaces the removed word in a question prompt.
const Blank = "_______"

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	return k == KindFillInBlank || k == KindGeneralKnowledge
}

// AnswerIndex returns the index of Answer within Options, or -1.
func (q *Question) AnswerIndex() int {
	for i, opt := range q.Options {
		if equalFold(opt, q.Answer) {
			return i
		}
	}
	return -1
}
