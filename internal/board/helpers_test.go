package board

import (
	"testing"

	"github.com/vovakirdan/snakeboy/internal/audio"
	"github.com/vovakirdan/snakeboy/internal/console"
	"github.com/vovakirdan/snakeboy/internal/core"
	"github.com/vovakirdan/snakeboy/internal/gfx"
	"github.com/vovakirdan/snakeboy/internal/screens"
)

// fakePlayer records audio calls.
type fakePlayer struct {
	track   audio.Track
	loop    bool
	plays   int
	stops   int
	updates int
}

func (p *fakePlayer) Play(track audio.Track, loop bool) {
	p.track, p.loop = track, loop
	p.plays++
}
func (p *fakePlayer) Stop() { p.stops++ }
func (p *fakePlayer) Update() { p.updates++ }
func (p *fakePlayer) SetVolume(uint8) {}

// testBoard builds a board screen on a fresh console and runs it through the
// fade-in so it is ready to play.
func testBoard(t *testing.T, seed int64) (*Screen, *console.Console, *fakePlayer) {
	t.Helper()
	c := console.New()
	player := &fakePlayer{}
	s := New(&screens.Context{
		Graphics: gfx.New(c, nil),
		Audio:    player,
		Rand:     core.NewRandom(seed),
	})
	s.Enter()
	for i := 0; i < 100 && s.Phase() == PhaseFadeIn; i++ {
		s.Step(0)
	}
	if s.Phase() != PhasePlaying {
		t.Fatalf("board did not start playing, phase %v", s.Phase())
	}
	return s, c, player
}

// placeSnake replaces the snake with segs, head first.
func placeSnake(s *Screen, segs ...core.Point) {
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			p := core.Point{X: x, Y: y}
			if s.grid.Get(p) == CellSnake {
				s.grid.Set(p, CellEmpty)
			}
		}
	}
	s.snake = NewSnake(len(segs))
	for i := len(segs) - 1; i >= 0; i-- {
		s.snake.PushFront(segs[i])
		s.grid.Set(segs[i], CellSnake)
	}
	s.score = len(segs)
}

// stepMove runs one tick that is due to move the snake, with the loot timer
// parked far away.
func stepMove(s *Screen, buttons core.Buttons) bool {
	s.moveTimer = 1
	s.lootTimer = 1000
	return s.Step(buttons)
}

func pt(x, y int) core.Point {
	return core.Point{X: x, Y: y}
}
