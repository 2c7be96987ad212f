package quizgen

// Config controls the behavior of the Generator.
type Config struct {
	// MinSentenceLength rejects sentences whose trimmed length is at or
	// below this many characters.
	MinSentenceLength int `yaml:"min_sentence_length"`

	// MinSentences is the number of usable sentences required before any
	// question is attempted.
	MinSentences int `yaml:"min_sentences"`

	// MaxSentences caps how many sentences are scanned per call.
	MaxSentences int `yaml:"max_sentences"`

	// AttemptsPerSentence is the number of random word picks tried per
	// sentence before moving on.
	AttemptsPerSentence int `yaml:"attempts_per_sentence"`

	// MinTokensPerSentence is the number of eligible tokens a sentence
	// needs to be blanked.
	MinTokensPerSentence int `yaml:"min_tokens_per_sentence"`

	// MaxQuestions is the size of the published quiz.
	MaxQuestions int `yaml:"max_questions"`

	// OptionCount is the number of answer choices per question.
	OptionCount int `yaml:"option_count"`

	// MaxLengthDelta bounds how much a distractor's length may differ
	// from the correct answer.
	MaxLengthDelta int `yaml:"max_length_delta"`
}

// DefaultConfig returns the standard generation settings.
func DefaultConfig() Config {
	return Config{
		MinSentenceLength:    15,
		MinSentences:         3,
		MaxSentences:         30,
		AttemptsPerSentence:  3,
		MinTokensPerSentence: 4,
		MaxQuestions:         5,
		OptionCount:          5,
		MaxLengthDelta:       3,
	}
}
