package core

import "testing"

func TestRectContains(t *testing.T) {
	tests := []struct {
		name     string
		r        Rect
		x, y     int
		expected bool
	}{
		{"inside", NewRect(2, 3, 10, 5), 5, 4, true},
		{"top-left corner", NewRect(2, 3, 10, 5), 2, 3, true},
		{"right edge exclusive", NewRect(2, 3, 10, 5), 12, 4, false},
		{"bottom edge exclusive", NewRect(2, 3, 10, 5), 5, 8, false},
		{"left of rect", NewRect(2, 3, 10, 5), 1, 4, false},
		{"above rect", NewRect(2, 3, 10, 5), 5, 2, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 10, 5)
	if r.Right() != 12 {
		t.Errorf("Right() = %d, expected 12", r.Right())
	}
	if r.Bottom() != 8 {
		t.Errorf("Bottom() = %d, expected 8", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestMinMaxAbs(t *testing.T) {
	if Min(3, 7) != 3 || Min(7, 3) != 3 {
		t.Error("Min is wrong")
	}
	if Max(3, 7) != 7 || Max(7, 3) != 7 {
		t.Error("Max is wrong")
	}
	if Abs(-4) != 4 || Abs(4) != 4 {
		t.Error("Abs is wrong")
	}
}
