package core

import "testing"

func TestVecArithmetic(t *testing.T) {
	a := V(3, 7)
	b := V(-2, 4)

	if got := a.Add(b); got != V(1, 11) {
		t.Errorf("Add() = %v, expected (1,11)", got)
	}
	if got := a.Sub(b); got != V(5, 3) {
		t.Errorf("Sub() = %v, expected (5,3)", got)
	}
	if got := a.String(); got != "(3,7)" {
		t.Errorf("String() = %q, expected %q", got, "(3,7)")
	}
}

func TestVecChebyshev(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec
		expected int
	}{
		{"same cell", V(4, 4), V(4, 4), 0},
		{"horizontal", V(0, 0), V(9, 0), 9},
		{"vertical", V(2, 30), V(2, 1), 29},
		{"diagonal dominated by x", V(10, 10), V(-5, 2), 15},
		{"diagonal dominated by y", V(1, 1), V(4, 40), 39},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Chebyshev(tc.b); got != tc.expected {
				t.Errorf("Chebyshev() = %d, expected %d", got, tc.expected)
			}
			if got := tc.b.Chebyshev(tc.a); got != tc.expected {
				t.Errorf("Chebyshev() (reversed) = %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
			if got := r.ContainsVec(V(tc.x, tc.y)); got != tc.expected {
				t.Errorf("ContainsVec(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
		{0, 0, 10, 0},   // at min
		{10, 0, 10, 10}, // at max
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestMinMaxAbsSign(t *testing.T) {
	if Min(5, 10) != 5 || Min(10, 5) != 5 {
		t.Error("Min should return 5")
	}
	if Max(5, 10) != 10 || Max(10, 5) != 10 {
		t.Error("Max should return 10")
	}
	if Abs(-5) != 5 || Abs(5) != 5 || Abs(0) != 0 {
		t.Error("Abs returned a wrong value")
	}
	if Sign(-7) != -1 || Sign(0) != 0 || Sign(3) != 1 {
		t.Error("Sign returned a wrong value")
	}
}
