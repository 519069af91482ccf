package core

import "testing"

func TestParseAction(t *testing.T) {
	tests := []struct {
		in   string
		want Action
	}{
		{"up", ActionUp},
		{" W ", ActionUp},
		{"down", ActionDown},
		{"a", ActionLeft},
		{"RIGHT", ActionRight},
		{"undo", ActionUndo},
		{"z", ActionUndo},
		{"pause", ActionPause},
		{"", ActionUnknown},
		{"jump", ActionUnknown},
	}

	for _, tt := range tests {
		if got := ParseAction(tt.in); got != tt.want {
			t.Errorf("ParseAction(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestActionsRoundTrip(t *testing.T) {
	for _, a := range Actions() {
		if got := ParseAction(a.String()); got != a {
			t.Errorf("ParseAction(%q) = %v, want %v", a.String(), got, a)
		}
	}
	if ActionUnknown.String() != "Unknown" || Action(42).String() != "Unknown" {
		t.Error("out-of-range actions should print as Unknown")
	}
}

func TestIsMove(t *testing.T) {
	moves := map[Action]bool{
		ActionUnknown: false,
		ActionUp:      true,
		ActionDown:    true,
		ActionLeft:    true,
		ActionRight:   true,
		ActionUndo:    false,
		ActionPause:   false,
	}
	for a, want := range moves {
		if a.IsMove() != want {
			t.Errorf("%v.IsMove() = %v, want %v", a, a.IsMove(), want)
		}
	}
}
