// Package core provides the console-level types shared by the snake runtime:
// tile maps, palettes, joypad buttons, the display contract and the random
// source. It contains no terminal or audio dependencies so that game logic
// stays pure and testable.
package core

// Point is an integer (x, y) coordinate on a tile grid.
type Point struct {
	X, Y int
}

// Add returns p offset by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Rect is a tile region of a map, used for blits and bounds checks.
type Rect struct {
	X, Y int // top-left tile
	W, H int // in tiles
}

// NewRect returns the region of w by h tiles starting at (x, y).
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the first column past the region.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the first row past the region.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Area returns the number of tiles in the region.
func (r Rect) Area() int {
	return r.W * r.H
}

// Contains reports whether tile (x, y) lies in the region.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp limits val to [lo, hi].
func Clamp(val, lo, hi int) int {
	return max(lo, min(val, hi))
}
