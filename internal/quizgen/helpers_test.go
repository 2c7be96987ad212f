package quizgen

import (
	"strings"
	"testing"

	"github.com/abhisek/clozeiz/internal/history"
)

// scriptedRand replays a fixed sequence of draws, reduced modulo n.
type scriptedRand struct {
	vals []int
	i    int
}

func (r *scriptedRand) IntN(n int) int {
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v % n
}

// scienceText has enough distinct material for a full quiz.
const scienceText = `Photosynthesis converts sunlight into chemical fuel inside plant leaves.
Mitochondria produce adenosine triphosphate through cellular respiration.
Glaciers carved deep valleys during repeated continental advances.
Volcanic eruptions release molten basalt alongside poisonous gases.
Tectonic plates drift slowly across the planetary mantle layer.
Ancient astronomers charted wandering planets against fixed stars.
Bacterial colonies double rapidly under favorable laboratory conditions.
Hurricanes gather strength above unusually warm tropical oceans.`

// stopWordText blanks only stop words, so the word pool is empty and every
// distractor comes from the fallback vocabulary. No attempt is ever wasted
// on a word consumed as a distractor, which makes id bookkeeping exact.
var stopWordText = strings.Join([]string{
	"about above after again",
	"against among another around",
	"because before being below",
	"between could doing during",
	"either every further having",
	"herself himself however itself",
	"might myself neither other",
	"others ought ourselves shall",
	"should since their theirs",
	"themselves there these those",
	"through under until where",
	"whereas whether which while",
}, ". ") + "."

func newTestGenerator(seed uint64) (*Generator, *history.Tracker) {
	h := history.New(history.DefaultCapacity)
	return New(DefaultConfig(), h, WithRand(NewRand(seed))), h
}

// assertQuestionInvariants checks the structural guarantees every
// generated question must satisfy.
func assertQuestionInvariants(t *testing.T, q Question) {
	t.Helper()
	if err := Validate(&q, DefaultValidators(DefaultConfig().OptionCount)...); err != nil {
		t.Errorf("question %d invalid: %v", q.ID, err)
	}
	if q.Kind != KindFillInBlank {
		t.Errorf("question %d: kind = %q, want %q", q.ID, q.Kind, KindFillInBlank)
	}
}
