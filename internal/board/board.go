package board

import (
	"github.com/vovakirdan/snakeboy/internal/audio"
	"github.com/vovakirdan/snakeboy/internal/core"
	"github.com/vovakirdan/snakeboy/internal/effect"
	"github.com/vovakirdan/snakeboy/internal/screens"
)

// Phase is the board screen's current stage.
type Phase int

const (
	PhaseFadeIn Phase = iota
	PhasePlaying
	PhaseOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseFadeIn:
		return "fade_in"
	case PhasePlaying:
		return "playing"
	case PhaseOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Gameplay timing, in frame ticks.
const (
	fadePeriod       = 6
	initialMoveTimer = 10
	levelUpEvery     = 5 // score multiple that raises the level
)

// MoveTimer returns the number of ticks between moves at level. The result
// is an 8-bit countdown: from level 8 on the subtraction wraps and the snake
// slows down to one move every 255 ticks or more.
func MoveTimer(level int) uint8 {
	return uint8(15 - 2*level)
}

// Screen is the gameplay screen.
type Screen struct {
	ctx  *screens.Context
	grid Grid

	phase Phase
	fade  effect.Effect
	tick  uint64

	snake     *Snake
	dir       Direction
	moveTimer uint8
	lootTimer uint16
	score     int
	level     int
	crashedAt Cell // cell that ended the game
}

var _ screens.Screen = (*Screen)(nil)

// New creates the board screen.
func New(ctx *screens.Context) *Screen {
	ctx.Validate()
	return &Screen{
		ctx:  ctx,
		grid: NewGrid(ctx.Graphics.Display()),
	}
}

// Name returns the screen name.
func (s *Screen) Name() string {
	return "board"
}

// Enter draws the board and starts the fade-in. The snake is seeded once the
// fade-in is over.
func (s *Screen) Enter() {
	g := s.ctx.Graphics
	g.ShowBoardBackground()
	g.CollapseWindow()
	g.ShowWindow()
	s.ctx.Audio.Stop()
	g.HideSnakeSprite()

	s.phase = PhaseFadeIn
	s.fade = effect.FadeIn(fadePeriod)
	s.tick = 0
	s.snake = nil
	s.crashedAt = 0
}

// Step advances the board by one tick. It returns false once the snake has
// crashed.
func (s *Screen) Step(buttons core.Buttons) bool {
	s.tick++
	switch s.phase {
	case PhaseFadeIn:
		if !s.fade.Advance(s.ctx.Graphics, nil) {
			s.start()
		}
		return true
	case PhasePlaying:
		return s.play(buttons)
	default:
		return false
	}
}

// start seeds the snake from the board art and begins play.
func (s *Screen) start() {
	s.ctx.Audio.Play(audio.TrackBoard, true)

	s.dir = DirRight
	s.moveTimer = initialMoveTimer
	s.lootTimer = uint16(s.ctx.Rand.Byte())

	s.snake = NewSnake(Width * Height)
	for x := 0; x < Width; x++ {
		for y := 0; y < Height; y++ {
			p := core.Point{X: x, Y: y}
			if s.grid.Get(p) == CellSnake {
				s.snake.PushFront(p)
			}
		}
	}
	if s.snake.Len() == 0 {
		panic("board: no snake on the board")
	}

	s.score = s.snake.Len()
	s.level = 1
	s.ctx.Graphics.SetLegendScore(s.score)
	s.ctx.Graphics.SetLegendLevel(s.level)

	s.phase = PhasePlaying
	s.ctx.Logger.Debug("board started", "snake", s.snake.Len(), "head", s.snake.Head())
}

func (s *Screen) play(buttons core.Buttons) bool {
	s.dir = Steer(s.dir, buttons)

	s.moveTimer--
	if s.moveTimer == 0 {
		s.moveTimer = MoveTimer(s.level)
		if !s.move() {
			s.phase = PhaseOver
			return false
		}
	}

	s.lootTimer--
	if s.lootTimer == 0 {
		s.lootTimer = uint16(s.ctx.Rand.Byte())
		s.SpawnLoot()
	}

	s.ctx.Audio.Update()
	return true
}

// move advances the snake one cell and reports whether it survived.
func (s *Screen) move() bool {
	d := s.dir.Delta()
	next := s.snake.Head().Add(d.X, d.Y)

	switch cell := s.grid.Get(next); cell {
	case CellSnake, CellWall:
		s.crashedAt = cell
		s.ctx.Logger.Debug("snake crashed", "into", cell, "x", next.X, "y", next.Y)
		return false
	case CellLoot:
		s.snake.PushFront(next)
		s.score++
		s.ctx.Graphics.SetLegendScore(s.score)
		if s.score%levelUpEvery == 0 {
			s.level++
			s.ctx.Graphics.SetLegendLevel(s.level)
			s.ctx.Logger.Info("level up", "level", s.level, "score", s.score)
		}
	default:
		s.grid.Set(s.snake.Tail(), CellEmpty)
		s.snake.RotateTailToHead(next)
	}

	s.grid.Set(next, CellSnake)
	return true
}

// SpawnLoot drops loot on a random empty cell. It returns false without
// touching the board when no cell is empty.
func (s *Screen) SpawnLoot() (core.Point, bool) {
	if s.grid.Count(CellEmpty) == 0 {
		return core.Point{}, false
	}
	for {
		p := core.Point{
			X: int(s.ctx.Rand.Byte()) % Width,
			Y: int(s.ctx.Rand.Byte()) % Height,
		}
		if s.grid.Get(p) == CellEmpty {
			s.grid.Set(p, CellLoot)
			s.ctx.Logger.Debug("loot spawned", "x", p.X, "y", p.Y)
			return p, true
		}
	}
}

// Phase returns the current stage.
func (s *Screen) Phase() Phase {
	return s.phase
}

// Grid returns the board cells.
func (s *Screen) Grid() Grid {
	return s.grid
}

// Snake returns the snake, nil before play starts.
func (s *Screen) Snake() *Snake {
	return s.snake
}

// Score returns the current score.
func (s *Screen) Score() int {
	return s.score
}

// Level returns the current level.
func (s *Screen) Level() int {
	return s.level
}
