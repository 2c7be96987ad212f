package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestIsTooSmall(t *testing.T) {
	tests := []struct {
		w, h int
		want bool
	}{
		{MinWidth, MinHeight, false},
		{MinWidth - 1, MinHeight, true},
		{MinWidth, MinHeight - 1, true},
		{120, 40, false},
	}
	for _, tc := range tests {
		if got := IsTooSmall(tc.w, tc.h); got != tc.want {
			t.Errorf("IsTooSmall(%d, %d) = %v, want %v", tc.w, tc.h, got, tc.want)
		}
	}
}

func TestContentHeight(t *testing.T) {
	if got := ContentHeight(30); got != 30-HeaderHeight-FooterHeight {
		t.Errorf("ContentHeight(30) = %d", got)
	}
	if got := ContentHeight(2); got != 0 {
		t.Errorf("ContentHeight(2) = %d, want 0", got)
	}
}

func TestRenderHeader(t *testing.T) {
	h := RenderHeader("Quiz", "3 / 5", 80)
	for _, want := range []string{AppName, "Quiz", "3 / 5"} {
		if !strings.Contains(h, want) {
			t.Errorf("header missing %q", want)
		}
	}
	if got := lipgloss.Height(h); got != HeaderHeight {
		t.Errorf("header height = %d, want %d", got, HeaderHeight)
	}
}

func TestRenderFooter(t *testing.T) {
	f := RenderFooter([]KeyHint{{Key: "enter", Description: "Next"}, {Key: "esc", Description: "Back"}}, 80)
	for _, want := range []string{"enter", "Next", "esc", "Back"} {
		if !strings.Contains(f, want) {
			t.Errorf("footer missing %q", want)
		}
	}
}
