package quizgen

import (
	"regexp"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/abhisek/clozeiz/internal/logger"
)

// History records which question ids have been issued per content
// fingerprint. *history.Tracker implements it.
type History interface {
	IsUsed(fingerprint string, id int) bool
	Record(fingerprint string, id int)
}

// Generator turns free-form text into fill-in-the-blank questions.
// It is safe for concurrent use; calls are serialized so that the
// history check and record of one call are never interleaved with another.
type Generator struct {
	mu       sync.Mutex
	cfg      Config
	history  History
	rng      Rand
	selector Selector
	synth    *Synthesizer
	log      *logger.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithRand sets the randomness source. Both word picks and shuffles use it.
func WithRand(r Rand) Option {
	return func(g *Generator) { g.rng = r }
}

// WithSelector replaces the default shuffle-and-truncate selector.
func WithSelector(s Selector) Option {
	return func(g *Generator) { g.selector = s }
}

// WithLogger sets the logger used for generation diagnostics.
func WithLogger(l *logger.Logger) Option {
	return func(g *Generator) { g.log = l }
}

// New creates a Generator backed by the given history.
func New(cfg Config, h History, opts ...Option) *Generator {
	g := &Generator{cfg: cfg, history: h}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = newEntropyRand()
	}
	if g.selector == nil {
		g.selector = NewShuffleSelector(g.rng)
	}
	if g.log == nil {
		g.log = logger.Nop()
	}
	g.synth = NewSynthesizer(g.rng, cfg.OptionCount, cfg.MaxLengthDelta)
	return g
}

// buildState is the per-call accumulator threaded through the builder.
type buildState struct {
	fingerprint string
	pool        []string
	used        UsedSet
	nextID      int
	skipped     []int
	candidates  []Question
}

// Generate produces up to cfg.MaxQuestions questions from text. It never
// fails: input without enough usable material yields an empty slice.
func (g *Generator) Generate(text string) []Question {
	g.mu.Lock()
	defer g.mu.Unlock()

	st := &buildState{
		fingerprint: Fingerprint(text),
		used:        make(UsedSet),
		nextID:      1,
	}
	log := g.log.With("fingerprint", st.fingerprint)

	sentences := Segment(text, g.cfg.MinSentenceLength)
	if len(sentences) < g.cfg.MinSentences {
		log.Debug("not enough sentences", "sentences", len(sentences), "required", g.cfg.MinSentences)
		return []Question{}
	}

	st.pool = WordPool(text)

	limit := min(g.cfg.MaxSentences, len(sentences))
	for _, sentence := range sentences[:limit] {
		if q, ok := g.buildQuestion(st, sentence); ok {
			st.candidates = append(st.candidates, q)
		}
	}

	published := g.selector.Select(st.candidates, g.cfg.MaxQuestions)
	log.Debug("quiz generated",
		"sentences", len(sentences),
		"scanned", limit,
		"pool", len(st.pool),
		"candidates", len(st.candidates),
		"history_skipped", st.skipped,
		"published", len(published),
	)
	return published
}

// buildQuestion tries to blank one word of sentence. It reports false when
// the sentence has too few eligible tokens or every attempt was rejected.
func (g *Generator) buildQuestion(st *buildState, sentence string) (Question, bool) {
	tokens := EligibleTokens(sentence)
	if len(tokens) < g.cfg.MinTokensPerSentence {
		return Question{}, false
	}

	for attempt := 0; attempt < g.cfg.AttemptsPerSentence; attempt++ {
		word := Clean(tokens[g.rng.IntN(len(tokens))])
		if !usableWord(word) || st.used.Has(word) {
			continue
		}

		// History is keyed by running id, not by content: this only keeps
		// an id slot from being reissued for the same text.
		if g.history.IsUsed(st.fingerprint, st.nextID) {
			st.skipped = append(st.skipped, st.nextID)
			st.nextID++
			continue
		}

		prompt, ok := blankOut(sentence, word)
		if !ok {
			continue
		}

		st.used.Add(word)
		q := Question{
			ID:      st.nextID,
			Text:    prompt,
			Options: g.synth.Options(word, st.pool, st.used),
			Answer:  word,
			Kind:    KindFillInBlank,
		}
		g.history.Record(st.fingerprint, st.nextID)
		st.nextID++
		return q, true
	}
	return Question{}, false
}

// blankOut replaces the first whole-word, case-insensitive occurrence of
// word in sentence with Blank.
func blankOut(sentence, word string) (string, bool) {
	re, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(word))
	if err != nil {
		return "", false
	}
	for _, loc := range re.FindAllStringIndex(sentence, -1) {
		if isWordBoundary(sentence, loc[0], loc[1]) {
			return sentence[:loc[0]] + Blank + sentence[loc[1]:], true
		}
	}
	return "", false
}

// isWordBoundary reports whether sentence[start:end] is not embedded in a
// longer run of letters or digits.
func isWordBoundary(sentence string, start, end int) bool {
	if r, _ := utf8.DecodeLastRuneInString(sentence[:start]); start > 0 && isWordRune(r) {
		return false
	}
	if r, _ := utf8.DecodeRuneInString(sentence[end:]); end < len(sentence) && isWordRune(r) {
		return false
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
