package board

import "github.com/vovakirdan/snakeboy/internal/core"

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	default:
		return "unknown"
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirRight:
		return DirLeft
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirDown
	}
}

// Delta returns the one-cell offset of a step in d.
func (d Direction) Delta() core.Point {
	switch d {
	case DirRight:
		return core.Point{X: 1}
	case DirDown:
		return core.Point{Y: 1}
	case DirLeft:
		return core.Point{X: -1}
	default:
		return core.Point{Y: -1}
	}
}

// Turn applies one direction request: it is accepted unless it reverses cur.
func Turn(cur, want Direction) Direction {
	if want == cur.Opposite() {
		return cur
	}
	return want
}

// Steer applies the pressed direction buttons to cur. Buttons are checked
// Up, Down, Right, Left; each is tested against the result of the previous
// one, so with opposite buttons held the last acceptable one wins.
func Steer(cur Direction, b core.Buttons) Direction {
	if b.Has(core.ButtonUp) {
		cur = Turn(cur, DirUp)
	}
	if b.Has(core.ButtonDown) {
		cur = Turn(cur, DirDown)
	}
	if b.Has(core.ButtonRight) {
		cur = Turn(cur, DirRight)
	}
	if b.Has(core.ButtonLeft) {
		cur = Turn(cur, DirLeft)
	}
	return cur
}
