package core

import "testing"

func TestRectContainsScreenBounds(t *testing.T) {
	screen := NewRect(0, 0, 80, 24)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"origin", 0, 0, true},
		{"last cell", 79, 23, true},
		{"past right edge", 80, 10, false},
		{"past bottom edge", 10, 24, false},
		{"left of screen", -1, 10, false},
		{"above screen", 10, -1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := screen.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	// Player2 paddle on the 128x64 panel.
	r := NewRect(126, 24, 2, 16)
	if r.Right() != 128 {
		t.Errorf("Right() = %d, expected 128", r.Right())
	}
	if r.Bottom() != 40 {
		t.Errorf("Bottom() = %d, expected 40", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name                  string
		val, lo, hi, expected int
	}{
		{"inside", 5, 0, 10, 5},
		{"below", -5, 0, 10, 0},
		{"above", 15, 0, 10, 10},
		{"at upper bound", 10, 0, 10, 10},
		{"empty range", 7, 3, 2, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
				t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
			}
		})
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected float64
	}{
		{0.3, -0.6, 0.6, 0.3},
		{-1.2, -0.6, 0.6, -0.6},
		{0.9, -0.6, 0.6, 0.6},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("ClampF(%v, %v, %v) = %v, expected %v", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}
