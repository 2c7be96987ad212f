package quizgen

import (
	"fmt"
	"strings"
)

// Validator checks a question for structural correctness.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier used in error messages,
	// e.g. "structural" or "options".
	Name() string

	// Validate returns nil if q passes, or a ValidationError describing
	// the first problem found.
	Validate(q *Question) *ValidationError
}

// ValidationError describes why a question failed validation.
type ValidationError struct {
	Validator  string // Name of the validator that failed
	QuestionID int
	Message    string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("question %d: validator %q: %s", e.QuestionID, e.Validator, e.Message)
}

// DefaultValidators returns the validator chain applied to loaded quizzes.
func DefaultValidators(optionCount int) []Validator {
	return []Validator{
		&StructuralValidator{},
		&OptionsValidator{Count: optionCount},
	}
}

// Validate runs validators in order and returns the first failure.
func Validate(q *Question, validators ...Validator) error {
	for _, v := range validators {
		if err := v.Validate(q); err != nil {
			return err
		}
	}
	return nil
}

// StructuralValidator checks that required fields are present and that
// fill-in-blank prompts actually contain a blank.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question) *ValidationError {
	fail := func(msg string) *ValidationError {
		return &ValidationError{Validator: v.Name(), QuestionID: q.ID, Message: msg}
	}
	if q.ID < 1 {
		return fail("id must be positive")
	}
	if strings.TrimSpace(q.Text) == "" {
		return fail("text is empty")
	}
	if strings.TrimSpace(q.Answer) == "" {
		return fail("answer is empty")
	}
	if !q.Kind.Valid() {
		return fail(fmt.Sprintf("unknown kind %q", q.Kind))
	}
	if q.Kind == KindFillInBlank && strings.Count(q.Text, Blank) != 1 {
		return fail("fill-in-blank text must contain exactly one blank")
	}
	return nil
}

// OptionsValidator checks the option list: the expected count, no
// case-insensitive duplicates, and the answer present exactly once.
type OptionsValidator struct {
	// Count is the required number of options. Zero skips the check.
	Count int
}

func (v *OptionsValidator) Name() string { return "options" }

func (v *OptionsValidator) Validate(q *Question) *ValidationError {
	fail := func(msg string) *ValidationError {
		return &ValidationError{Validator: v.Name(), QuestionID: q.ID, Message: msg}
	}
	if v.Count > 0 && len(q.Options) != v.Count {
		return fail(fmt.Sprintf("expected %d options, got %d", v.Count, len(q.Options)))
	}
	seen := make(map[string]bool, len(q.Options))
	matches := 0
	for _, opt := range q.Options {
		key := strings.ToLower(opt)
		if seen[key] {
			return fail(fmt.Sprintf("duplicate option %q", opt))
		}
		seen[key] = true
		if equalFold(opt, q.Answer) {
			matches++
		}
	}
	if matches != 1 {
		return fail(fmt.Sprintf("answer %q must appear exactly once in options, found %d", q.Answer, matches))
	}
	return nil
}
