package quizgen

import "strings"

// fallbackWords pad the option list when the source text does not offer
// enough distinct distractors.
var fallbackWords = []string{
	"process", "energy", "system", "function", "structure",
	"element", "reaction", "component", "factor", "molecule",
	"theory", "concept", "method", "analysis", "development",
	"research", "experiment", "observation", "hypothesis", "conclusion",
}

// UsedSet tracks words already consumed during one generation call.
// Keys are lower-cased.
type UsedSet map[string]struct{}

// Has reports whether w was used, ignoring case.
func (u UsedSet) Has(w string) bool {
	_, ok := u[strings.ToLower(w)]
	return ok
}

// Add marks w as used.
func (u UsedSet) Add(w string) {
	u[strings.ToLower(w)] = struct{}{}
}

// Synthesizer builds the option list for a question: the correct answer
// plus distractors drawn from the source text, then from fallbackWords.
type Synthesizer struct {
	rng      Rand
	count    int
	maxDelta int
}

// NewSynthesizer creates a Synthesizer producing count options per
// question, with distractors at most maxDelta characters longer or
// shorter than the answer.
func NewSynthesizer(rng Rand, count, maxDelta int) *Synthesizer {
	return &Synthesizer{rng: rng, count: count, maxDelta: maxDelta}
}

// Options returns a shuffled option list containing correct exactly once.
// Every distractor taken is added to used.
func (s *Synthesizer) Options(correct string, pool []string, used UsedSet) []string {
	options := []string{correct}

	candidates := make([]string, 0, len(pool))
	for _, w := range pool {
		if equalFold(w, correct) || used.Has(w) {
			continue
		}
		if abs(runeLen(w)-runeLen(correct)) > s.maxDelta {
			continue
		}
		candidates = append(candidates, w)
	}
	shuffle(s.rng, candidates)

	for _, w := range candidates {
		if len(options) >= s.count {
			break
		}
		if containsFold(options, w) || overlaps(w, correct) {
			continue
		}
		options = append(options, w)
		used.Add(w)
	}

	if len(options) < s.count {
		options = s.pad(options, correct, used)
	}

	shuffle(s.rng, options)
	return options
}

// pad fills options from fallbackWords. Filters are relaxed in stages when
// the vocabulary runs dry so the list always reaches s.count without
// duplicates: first words already used elsewhere are allowed, then words
// overlapping the answer.
func (s *Synthesizer) pad(options []string, correct string, used UsedSet) []string {
	filters := []func(string) bool{
		func(w string) bool { return !used.Has(w) && !overlaps(w, correct) },
		func(w string) bool { return !overlaps(w, correct) },
		func(string) bool { return true },
	}

	for _, allow := range filters {
		var remaining []string
		for _, w := range fallbackWords {
			if !containsFold(options, w) && allow(w) {
				remaining = append(remaining, w)
			}
		}
		for len(options) < s.count && len(remaining) > 0 {
			i := s.rng.IntN(len(remaining))
			w := remaining[i]
			remaining = append(remaining[:i], remaining[i+1:]...)
			options = append(options, w)
			used.Add(w)
		}
		if len(options) >= s.count {
			break
		}
	}
	return options
}

func containsFold(list []string, w string) bool {
	for _, v := range list {
		if equalFold(v, w) {
			return true
		}
	}
	return false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
