package layout

import "testing"

func TestModeForWidthCutover(t *testing.T) {
	cases := []struct {
		px   int
		want Mode
	}{
		{0, Desktop},    // unknown viewport
		{-1, Desktop},   // nonsense viewport
		{320, Mobile},
		{767, Mobile},
		{768, Desktop},  // cutover is exclusive
		{1440, Desktop},
	}
	for _, tc := range cases {
		if got := ModeForWidth(tc.px); got != tc.want {
			t.Errorf("ModeForWidth(%d) = %v, want %v", tc.px, got, tc.want)
		}
	}
}

func TestShouldLoadMore(t *testing.T) {
	// 800px viewport, 3000px document: threshold crossed at scrollY >= 1700
	if ShouldLoadMore(800, 1699, 3000) {
		t.Fatal("expected no load 501px from the end")
	}
	if !ShouldLoadMore(800, 1700, 3000) {
		t.Fatal("expected load 500px from the end")
	}
	if !ShouldLoadMore(800, 2200, 3000) {
		t.Fatal("expected load at the end")
	}
}
