package quizgen

// Selector picks the published quiz from the candidate questions.
type Selector interface {
	// Select returns at most limit questions, numbered from 1 in the
	// returned order. candidates must not be modified.
	Select(candidates []Question, limit int) []Question
}

// ShuffleSelector publishes a uniformly random subset of the candidates.
type ShuffleSelector struct {
	rng Rand
}

// NewShuffleSelector creates a ShuffleSelector drawing from rng.
func NewShuffleSelector(rng Rand) *ShuffleSelector {
	return &ShuffleSelector{rng: rng}
}

func (s *ShuffleSelector) Select(candidates []Question, limit int) []Question {
	picked := make([]Question, len(candidates))
	copy(picked, candidates)
	shuffle(s.rng, picked)
	if limit >= 0 && len(picked) > limit {
		picked = picked[:limit]
	}
	renumber(picked)
	return picked
}

// renumber assigns sequential ids starting at 1. These ids are positional
// within the published quiz and unrelated to the ids kept in history.
func renumber(qs []Question) {
	for i := range qs {
		qs[i].ID = i + 1
	}
}
