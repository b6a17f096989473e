// Package screens defines the contract shared by the menu, board and
// game-over screens and the context they run in.
package screens

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snakeboy/internal/audio"
	"github.com/vovakirdan/snakeboy/internal/core"
	"github.com/vovakirdan/snakeboy/internal/gfx"
)

// Screen is one stage of the game loop. The runtime calls Enter once when the
// screen starts, then Step once per frame tick until it returns false.
type Screen interface {
	Name() string
	Enter()
	Step(buttons core.Buttons) bool
}

// Context holds the console services a screen drives. Screens own it
// exclusively while they run.
type Context struct {
	Graphics *gfx.Graphics
	Audio    audio.Player
	Rand     core.Random
	Logger   *log.Logger
}

// Validate fills optional services with inert defaults and panics when a
// required one is missing.
func (c *Context) Validate() {
	if c.Graphics == nil {
		panic("screens: context has no graphics")
	}
	if c.Rand == nil {
		panic("screens: context has no random source")
	}
	if c.Audio == nil {
		c.Audio = audio.Silent{}
	}
	if c.Logger == nil {
		c.Logger = log.New(io.Discard)
	}
}

// Countdown is a frame wait: it expires after the given number of ticks.
type Countdown struct {
	left int
}

// Wait returns a countdown of n ticks.
func Wait(n int) Countdown {
	return Countdown{left: n}
}

// Tick consumes one frame and reports whether the wait is still running.
func (c *Countdown) Tick() bool {
	if c.left <= 0 {
		return false
	}
	c.left--
	return true
}

// Left returns the remaining ticks.
func (c *Countdown) Left() int {
	return c.left
}
