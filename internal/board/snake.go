package board

import "github.com/vovakirdan/snakeboy/internal/core"

// Snake is the ordered list of body segments from head to tail, stored in a
// ring buffer so growing and moving are both O(1).
type Snake struct {
	segs []core.Point
	head int // index of the head in segs
	n    int
}

// NewSnake returns an empty snake with room for capacity segments before it
// has to reallocate.
func NewSnake(capacity int) *Snake {
	if capacity < 1 {
		capacity = 1
	}
	return &Snake{segs: make([]core.Point, capacity)}
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return s.n
}

// At returns segment i counted from the head.
func (s *Snake) At(i int) core.Point {
	if i < 0 || i >= s.n {
		panic("board: snake segment out of range")
	}
	return s.segs[(s.head+i)%len(s.segs)]
}

// Head returns the front segment.
func (s *Snake) Head() core.Point {
	if s.n == 0 {
		panic("board: head of empty snake")
	}
	return s.segs[s.head]
}

// Tail returns the back segment.
func (s *Snake) Tail() core.Point {
	if s.n == 0 {
		panic("board: tail of empty snake")
	}
	return s.At(s.n - 1)
}

// PushFront adds a new head at p. The snake grows by one.
func (s *Snake) PushFront(p core.Point) {
	if s.n == len(s.segs) {
		s.grow()
	}
	s.head = s.prev(s.head)
	s.segs[s.head] = p
	s.n++
}

// RotateTailToHead moves the tail segment to p and makes it the new head.
// The length is unchanged.
func (s *Snake) RotateTailToHead(p core.Point) {
	if s.n == 0 {
		panic("board: move of empty snake")
	}
	// The slot before the head is free unless the buffer is full, in which
	// case it is the tail itself. Either way the old tail drops out of range.
	s.head = s.prev(s.head)
	s.segs[s.head] = p
}

// Contains reports whether a segment occupies p.
func (s *Snake) Contains(p core.Point) bool {
	for i := 0; i < s.n; i++ {
		if s.At(i) == p {
			return true
		}
	}
	return false
}

// Segments returns a copy of the body from head to tail.
func (s *Snake) Segments() []core.Point {
	out := make([]core.Point, s.n)
	for i := range out {
		out[i] = s.At(i)
	}
	return out
}

func (s *Snake) prev(i int) int {
	if i == 0 {
		return len(s.segs) - 1
	}
	return i - 1
}

// grow doubles the buffer, unrolling the ring so the head is at index 0.
func (s *Snake) grow() {
	segs := make([]core.Point, 2*len(s.segs))
	for i := 0; i < s.n; i++ {
		segs[i] = s.At(i)
	}
	s.segs = segs
	s.head = 0
}
