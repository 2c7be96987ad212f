package quizgen

import (
	"strings"
	"testing"
)

func newTestSynth(seed uint64) *Synthesizer {
	cfg := DefaultConfig()
	return NewSynthesizer(NewRand(seed), cfg.OptionCount, cfg.MaxLengthDelta)
}

func TestOptions_Invariants(t *testing.T) {
	pool := WordPool(scienceText)
	fallback := toSet(fallbackWords)

	for seed := uint64(1); seed <= 50; seed++ {
		used := make(UsedSet)
		used.Add("Glaciers")
		opts := newTestSynth(seed).Options("Glaciers", pool, used)

		q := Question{ID: 1, Text: Blank + " carve valleys", Options: opts, Answer: "Glaciers", Kind: KindFillInBlank}
		assertQuestionInvariants(t, q)

		for _, o := range opts {
			if strings.EqualFold(o, "Glaciers") {
				continue
			}
			if !used.Has(o) {
				t.Errorf("seed %d: distractor %q not marked used", seed, o)
			}
			if _, ok := fallback[o]; ok {
				continue
			}
			if d := abs(runeLen(o) - runeLen("Glaciers")); d > 3 {
				t.Errorf("seed %d: distractor %q differs in length by %d", seed, o, d)
			}
		}
	}
}

func TestOptions_SkipsOverlappingWords(t *testing.T) {
	pool := []string{"processes", "Processing", "subprocess", "planet", "proton", "motion"}
	for seed := uint64(1); seed <= 20; seed++ {
		opts := newTestSynth(seed).Options("process", pool, make(UsedSet))
		for _, o := range opts {
			if o == "process" {
				continue
			}
			if overlaps(o, "process") {
				t.Errorf("seed %d: overlapping distractor %q", seed, o)
			}
		}
		if len(opts) != 5 {
			t.Fatalf("seed %d: got %d options", seed, len(opts))
		}
	}
}

func TestOptions_PadsFromFallback(t *testing.T) {
	used := make(UsedSet)
	opts := newTestSynth(3).Options("glacier", nil, used)
	if len(opts) != 5 {
		t.Fatalf("expected 5 options, got %d", len(opts))
	}
	fallback := toSet(fallbackWords)
	for _, o := range opts {
		if o == "glacier" {
			continue
		}
		if _, ok := fallback[o]; !ok {
			t.Errorf("unexpected distractor %q outside fallback vocabulary", o)
		}
	}
	if len(used) != 4 {
		t.Errorf("expected 4 fallback words marked used, got %d", len(used))
	}
}

func TestOptions_FallbackExhausted(t *testing.T) {
	used := make(UsedSet)
	for _, w := range fallbackWords {
		used.Add(w)
	}
	opts := newTestSynth(9).Options("glacier", nil, used)
	q := Question{ID: 1, Text: Blank, Options: opts, Answer: "glacier", Kind: KindFillInBlank}
	assertQuestionInvariants(t, q)
}

func TestOptions_NeverReusesUsedPoolWords(t *testing.T) {
	pool := []string{"planet", "proton", "motion", "magnet", "photon", "rocket"}
	used := make(UsedSet)
	used.Add("planet")
	used.Add("MOTION")

	for seed := uint64(1); seed <= 20; seed++ {
		u := make(UsedSet)
		for k := range used {
			u[k] = struct{}{}
		}
		for _, o := range newTestSynth(seed).Options("comet", pool, u) {
			if strings.EqualFold(o, "planet") || strings.EqualFold(o, "motion") {
				t.Errorf("seed %d: reused word %q", seed, o)
			}
		}
	}
}

func TestOptions_LengthFilter(t *testing.T) {
	pool := []string{"photosynthesis", "electromagnetism", "thermodynamics"}
	opts := newTestSynth(1).Options("light", pool, make(UsedSet))
	for _, o := range opts {
		for _, p := range pool {
			if o == p {
				t.Errorf("distractor %q should be excluded by length", o)
			}
		}
	}
}

func TestOptions_AnswerPositionVaries(t *testing.T) {
	positions := make(map[int]bool)
	pool := WordPool(scienceText)
	for seed := uint64(1); seed <= 40; seed++ {
		opts := newTestSynth(seed).Options("Glaciers", pool, make(UsedSet))
		q := Question{Options: opts, Answer: "Glaciers"}
		positions[q.AnswerIndex()] = true
	}
	if len(positions) < 2 {
		t.Errorf("answer always at the same position: %v", positions)
	}
}
