// Package game wires the console, graphics, audio and the three screens into
// the runtime the host steps once per frame.
package game

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snakeboy/internal/audio"
	"github.com/vovakirdan/snakeboy/internal/board"
	"github.com/vovakirdan/snakeboy/internal/console"
	"github.com/vovakirdan/snakeboy/internal/core"
	"github.com/vovakirdan/snakeboy/internal/gameover"
	"github.com/vovakirdan/snakeboy/internal/gfx"
	"github.com/vovakirdan/snakeboy/internal/menu"
	"github.com/vovakirdan/snakeboy/internal/screens"
)

// Ticks to wait after power-on before the menu.
const bootTicks = 10

// PhaseBoot is reported by Phase before the first screen starts.
const PhaseBoot = "boot"

// Options configures a Runtime. Art, Audio and Logger are optional.
type Options struct {
	Art    *gfx.Art
	Audio  audio.Player
	Rand   core.Random
	Logger *log.Logger
}

// Stats summarizes the session for the host.
type Stats struct {
	Tick  uint64
	Phase string
	Games int            // finished games
	Board board.Snapshot // current or last board
	Best  int            // best score this session
}

// Runtime cycles menu, board and game over forever.
type Runtime struct {
	console *console.Console
	ctx     *screens.Context
	board   *board.Screen
	screens []screens.Screen

	current int
	booting bool
	boot    screens.Countdown
	tick    uint64
	games   int
	best    int
}

// New powers on the console. The first Step calls start the boot wait.
func New(opts Options) *Runtime {
	if opts.Rand == nil {
		panic("game: no random source")
	}
	c := console.New()
	ctx := &screens.Context{
		Graphics: gfx.New(c, opts.Art),
		Audio:    opts.Audio,
		Rand:     opts.Rand,
		Logger:   opts.Logger,
	}
	ctx.Validate()

	ctx.Graphics.ShowSnakeSprite()
	ctx.Graphics.SetDefaultPalette()

	b := board.New(ctx)
	return &Runtime{
		console: c,
		ctx:     ctx,
		board:   b,
		screens: []screens.Screen{menu.New(ctx), b, gameover.New(ctx)},
		booting: true,
		boot:    screens.Wait(bootTicks),
	}
}

// Step advances the game by one frame with the buttons pressed since the
// previous frame. When a screen ends, the next one starts within the same
// frame.
func (r *Runtime) Step(buttons core.Buttons) {
	r.tick++
	if r.booting {
		if r.boot.Tick() {
			return
		}
		r.booting = false
		r.enter(0)
	}

	if r.screens[r.current].Step(buttons) {
		return
	}
	r.finished(r.screens[r.current])
	r.enter((r.current + 1) % len(r.screens))
	r.screens[r.current].Step(buttons)
}

func (r *Runtime) enter(i int) {
	r.current = i
	s := r.screens[i]
	r.ctx.Logger.Debug("entering screen", "screen", s.Name(), "tick", r.tick)
	s.Enter()
}

func (r *Runtime) finished(s screens.Screen) {
	if s != r.board {
		return
	}
	snap := r.board.Snapshot()
	r.games++
	r.best = max(r.best, snap.Score)
	r.ctx.Logger.Info("game over",
		"score", snap.Score,
		"level", snap.Level,
		"crashed_into", snap.CrashedAt,
		"games", r.games,
	)
}

// Frame composes the current screen.
func (r *Runtime) Frame() console.Frame {
	return r.console.Frame()
}

// Console returns the emulated hardware.
func (r *Runtime) Console() *console.Console {
	return r.console
}

// Phase returns the name of the running screen.
func (r *Runtime) Phase() string {
	if r.booting {
		return PhaseBoot
	}
	return r.screens[r.current].Name()
}

// Stats returns session statistics.
func (r *Runtime) Stats() Stats {
	return Stats{
		Tick:  r.tick,
		Phase: r.Phase(),
		Games: r.games,
		Board: r.board.Snapshot(),
		Best:  r.best,
	}
}
