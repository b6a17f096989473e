package core

import "testing"

func TestPointAdd(t *testing.T) {
	tests := []struct {
		name   string
		p      Point
		dx, dy int
		want   Point
	}{
		{"right", Point{X: 5, Y: 5}, 1, 0, Point{X: 6, Y: 5}},
		{"up", Point{X: 5, Y: 5}, 0, -1, Point{X: 5, Y: 4}},
		{"off the left edge", Point{X: 0, Y: 3}, -1, 0, Point{X: -1, Y: 3}},
		{"zero", Point{X: 2, Y: 7}, 0, 0, Point{X: 2, Y: 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Add(tt.dx, tt.dy); got != tt.want {
				t.Errorf("Add(%d, %d) = %v, want %v", tt.dx, tt.dy, got, tt.want)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	// Start text row of the menu.
	r := NewRect(4, 14, 12, 1)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"first column", 4, 14, true},
		{"last column", 15, 14, true},
		{"right edge is exclusive", 16, 14, false},
		{"left of region", 3, 14, false},
		{"row above", 4, 13, false},
		{"row below", 4, 15, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(0, 0, ScreenTilesW, ScreenTilesH)
	if r.Right() != 20 || r.Bottom() != 18 {
		t.Errorf("edges = (%d, %d), want (20, 18)", r.Right(), r.Bottom())
	}
	if r.Area() != 360 {
		t.Errorf("Area() = %d, want 360", r.Area())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, want int
	}{
		{2, 0, 3, 2},
		{-1, 0, 3, 0},
		{7, 0, 3, 3},
		{0, 0, 3, 0},
		{3, 0, 3, 3},
	}

	for _, tt := range tests {
		if got := Clamp(tt.val, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%d, %d, %d) = %d, want %d", tt.val, tt.lo, tt.hi, got, tt.want)
		}
	}
}
