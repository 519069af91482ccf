package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 10, 4)
	if r.Right() != 12 || r.Bottom() != 7 {
		t.Errorf("Right/Bottom = %d/%d, expected 12/7", r.Right(), r.Bottom())
	}
	if x, y := r.Center(); x != 7 || y != 5 {
		t.Errorf("Center() = (%d, %d), expected (7, 5)", x, y)
	}
}

func TestRectCentered(t *testing.T) {
	outer := NewRect(0, 0, 20, 10)

	tests := []struct {
		name string
		w, h int
		want Rect
	}{
		{"fits", 10, 4, Rect{X: 5, Y: 3, W: 10, H: 4}},
		{"exact", 20, 10, outer},
		{"overflows", 24, 12, Rect{X: -2, Y: -1, W: 24, H: 12}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outer.Centered(tt.w, tt.h); got != tt.want {
				t.Errorf("Centered(%d, %d) = %+v, expected %+v", tt.w, tt.h, got, tt.want)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, want int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 0, 0},
	}

	for _, tt := range tests {
		if got := Clamp(tt.val, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tt.val, tt.lo, tt.hi, got, tt.want)
		}
	}
}
