package core

import "testing"

func TestContainsPointInclusive(t *testing.T) {
	r := NewRect(10, 10, 12, 16)

	cases := []struct {
		name   string
		px, py int
		want   bool
	}{
		{"top-left corner", 10, 10, true},
		{"interior", 16, 18, true},
		{"right edge inclusive", 22, 10, true},
		{"bottom edge inclusive", 10, 26, true},
		{"bottom-right corner inclusive", 22, 26, true},
		{"just past right edge", 23, 10, false},
		{"just past bottom edge", 10, 27, false},
		{"left of rect", 9, 10, false},
		{"above rect", 10, 9, false},
	}

	for _, tc := range cases {
		if got := r.ContainsPoint(tc.px, tc.py); got != tc.want {
			t.Errorf("%s: ContainsPoint(%d, %d) = %v, want %v",
				tc.name, tc.px, tc.py, got, tc.want)
		}
	}
}

func TestClamp(t *testing.T) {
	cases := []struct {
		val, min, max, want int
	}{
		{5, 0, 10, 5},
		{-3, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
		{118, 0, 115, 115},
		{147, 0, 144, 144},
	}

	for _, tc := range cases {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d",
				tc.val, tc.min, tc.max, got, tc.want)
		}
	}
}

func TestAbsMinMax(t *testing.T) {
	if Abs(-7) != 7 || Abs(7) != 7 || Abs(0) != 0 {
		t.Error("Abs gave wrong results")
	}
	if Min(3, 5) != 3 || Min(5, 3) != 3 {
		t.Error("Min gave wrong results")
	}
	if Max(3, 5) != 5 || Max(5, 3) != 5 {
		t.Error("Max gave wrong results")
	}
}
