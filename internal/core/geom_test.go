package core

import "testing"

func TestLocationHit(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Location
		expected bool
	}{
		{"same cell", NewLocation(5, 7), NewLocation(5, 7), true},
		{"different column", NewLocation(5, 7), NewLocation(6, 7), false},
		{"different line", NewLocation(5, 7), NewLocation(5, 8), false},
		{"origin", NewLocation(0, 0), NewLocation(0, 0), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Hit(tc.b); got != tc.expected {
				t.Errorf("Hit() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Hit(tc.a); got != tc.expected {
				t.Errorf("Hit() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestLocationHitWithMargin(t *testing.T) {
	bullet := NewLocation(10, 10)

	tests := []struct {
		name                     string
		other                    Location
		top, right, bottom, left int
		expected                 bool
	}{
		{"exact cell, no margin", NewLocation(10, 10), 0, 0, 0, 0, true},
		{"one line above, no margin", NewLocation(10, 9), 0, 0, 0, 0, false},
		{"one line above, top margin", NewLocation(10, 9), 1, 0, 1, 0, true},
		{"one line below, bottom margin", NewLocation(10, 11), 1, 0, 1, 0, true},
		{"two lines above, top margin 1", NewLocation(10, 8), 1, 0, 1, 0, false},
		{"two lines below, bottom margin 1", NewLocation(10, 12), 1, 0, 1, 0, false},
		{"one column right, vertical margin only", NewLocation(11, 10), 1, 0, 1, 0, false},
		{"one column left, vertical margin only", NewLocation(9, 10), 1, 0, 1, 0, false},
		{"one column right, right margin", NewLocation(11, 10), 0, 1, 0, 0, true},
		{"one column left, right margin only", NewLocation(9, 10), 0, 1, 0, 0, false},
		{"one column left, left margin", NewLocation(9, 10), 0, 0, 0, 1, true},
		{"above only enabled, target below", NewLocation(10, 11), 1, 0, 0, 0, false},
		{"below only enabled, target above", NewLocation(10, 9), 0, 0, 1, 0, false},
		{"diagonal inside box", NewLocation(12, 7), 3, 2, 0, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := bullet.HitWithMargin(tc.other, tc.top, tc.right, tc.bottom, tc.left)
			if got != tc.expected {
				t.Errorf("HitWithMargin(%v, %d, %d, %d, %d) = %v, expected %v",
					tc.other, tc.top, tc.right, tc.bottom, tc.left, got, tc.expected)
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
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestMarginRect(t *testing.T) {
	r := MarginRect(NewLocation(5, 5), 1, 2, 3, 4)

	if r.X != 1 || r.Y != 4 {
		t.Errorf("MarginRect origin = (%d, %d), expected (1, 4)", r.X, r.Y)
	}
	if r.Right() != 8 {
		t.Errorf("Right() = %d, expected 8", r.Right())
	}
	if r.Bottom() != 9 {
		t.Errorf("Bottom() = %d, expected 9", r.Bottom())
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
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestSignAbs(t *testing.T) {
	if Sign(-7) != -1 || Sign(0) != 0 || Sign(3) != 1 {
		t.Error("Sign should return -1, 0, 1")
	}
	if Abs(5) != 5 {
		t.Error("Abs(5) should be 5")
	}
	if Abs(-5) != 5 {
		t.Error("Abs(-5) should be 5")
	}
	if Abs(0) != 0 {
		t.Error("Abs(0) should be 0")
	}
}
