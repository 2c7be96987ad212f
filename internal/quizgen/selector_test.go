package quizgen

import "testing"

func candidates(n int) []Question {
	qs := make([]Question, n)
	for i := range qs {
		qs[i] = Question{ID: 100 + i, Text: "q", Answer: "a", Kind: KindFillInBlank}
	}
	return qs
}

func TestShuffleSelector_TruncatesAndRenumbers(t *testing.T) {
	in := candidates(8)
	out := NewShuffleSelector(NewRand(4)).Select(in, 5)
	if len(out) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(out))
	}
	for i, q := range out {
		if q.ID != i+1 {
			t.Errorf("out[%d].ID = %d, want %d", i, q.ID, i+1)
		}
	}
	for i, q := range in {
		if q.ID != 100+i {
			t.Errorf("input mutated: in[%d].ID = %d", i, q.ID)
		}
	}
}

func TestShuffleSelector_FewerThanLimit(t *testing.T) {
	out := NewShuffleSelector(NewRand(1)).Select(candidates(2), 5)
	if len(out) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(out))
	}
	if out[0].ID != 1 || out[1].ID != 2 {
		t.Errorf("ids = %d,%d, want 1,2", out[0].ID, out[1].ID)
	}
}

func TestShuffleSelector_Empty(t *testing.T) {
	out := NewShuffleSelector(NewRand(1)).Select(nil, 5)
	if len(out) != 0 {
		t.Errorf("expected empty result, got %d", len(out))
	}
}

func TestShuffle_ScriptedDraws(t *testing.T) {
	// IntN always returning 0 swaps each tail element with the head.
	s := []int{1, 2, 3, 4}
	shuffle(&scriptedRand{vals: []int{0}}, s)
	want := []int{2, 3, 4, 1}
	for i := range s {
		if s[i] != want[i] {
			t.Fatalf("shuffle = %v, want %v", s, want)
		}
	}
}
