// Package gameover implements the screen shown after a crash: a damage
// flash, then the window rises over the board with the sleeping snake before
// everything fades out.
package gameover

import (
	"github.com/vovakirdan/snakeboy/internal/audio"
	"github.com/vovakirdan/snakeboy/internal/core"
	"github.com/vovakirdan/snakeboy/internal/effect"
	"github.com/vovakirdan/snakeboy/internal/gfx"
	"github.com/vovakirdan/snakeboy/internal/screens"
)

// Phase is the game-over screen's current stage.
type Phase int

const (
	PhaseFlash Phase = iota
	PhasePause
	PhaseShow
	PhaseLinger
	PhaseDone
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseFlash:
		return "flash"
	case PhasePause:
		return "pause"
	case PhaseShow:
		return "show"
	case PhaseLinger:
		return "linger"
	case PhaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// Layout and timing, in pixels and frame ticks.
const (
	flashPeriod   = 1
	flashDuration = 24
	pauseTicks    = 40
	lingerTicks   = 50

	expandPeriod = 1
	expandSpeed  = 1
	animPeriod   = 8
	animDelay    = 8
	animWait     = 1
	fadePeriod   = 12
	showTicks    = 330 // until the fade-out starts

	snakeX = 80
	snakeY = 208 // below the screen, scrolled up as the window rises
)

// Screen is the game-over screen.
type Screen struct {
	ctx *screens.Context

	phase Phase
	wait  screens.Countdown
	tick  uint64

	flash  effect.Effect
	expand effect.Effect
	anim   effect.Effect
	fade   effect.Effect

	showTimer int
	expanding bool
	animating bool
	fadingOut bool
}

var _ screens.Screen = (*Screen)(nil)

// New creates the game-over screen.
func New(ctx *screens.Context) *Screen {
	ctx.Validate()
	return &Screen{ctx: ctx}
}

// Name returns the screen name.
func (s *Screen) Name() string {
	return "gameover"
}

// Enter silences the board and starts the damage flash.
func (s *Screen) Enter() {
	s.ctx.Audio.Stop()
	s.ctx.Graphics.HideSnakeSprite()

	s.phase = PhaseFlash
	s.flash = effect.Flash(flashPeriod, flashDuration)
	s.tick = 0
}

// Step runs one tick. Input is ignored.
func (s *Screen) Step(core.Buttons) bool {
	s.tick++
	switch s.phase {
	case PhaseFlash:
		if !s.flash.Advance(s.ctx.Graphics, s.ctx.Rand) {
			s.phase = PhasePause
			s.wait = screens.Wait(pauseTicks)
		}
		return true
	case PhasePause:
		if s.wait.Tick() {
			return true
		}
		s.show()
		return s.showTick()
	case PhaseShow:
		return s.showTick()
	case PhaseLinger:
		if s.wait.Tick() {
			return true
		}
		s.ctx.Graphics.HideWindow()
		s.phase = PhaseDone
		return false
	default:
		return false
	}
}

// show starts the game-over music and parks the sleeping snake below the
// screen with its first frame drawn.
func (s *Screen) show() {
	g := s.ctx.Graphics
	s.ctx.Audio.Play(audio.TrackGameOver, false)

	s.expand = effect.ExpandWindow(expandPeriod, expandSpeed)
	s.anim = effect.SnakeAnim(animPeriod, false, animDelay, animWait, gfx.SnakeSleeping)
	s.fade = effect.FadeOut(fadePeriod)

	g.MoveSnakeSprite(snakeX, snakeY)
	s.anim.Advance(g, nil)
	g.ShowSnakeSprite()

	s.showTimer = showTicks
	s.expanding = true
	s.animating = false
	s.fadingOut = false
	s.phase = PhaseShow
}

// showTick raises the window, then animates the snake, and fades out once
// the show timer expires.
func (s *Screen) showTick() bool {
	g := s.ctx.Graphics

	s.showTimer--
	if s.showTimer == 0 {
		s.fadingOut = true
	}

	if s.expanding {
		s.expanding = s.expand.Advance(g, nil)
		if s.expanding {
			g.ScrollSnakeSprite(0, -1)
		} else {
			s.animating = true
		}
	}
	if s.animating {
		s.animating = s.anim.Advance(g, nil)
	}
	if s.fadingOut && !s.fade.Advance(g, nil) {
		// The tick that ends the fade is the first of the final wait
		s.phase = PhaseLinger
		s.wait = screens.Wait(lingerTicks)
		s.wait.Tick()
		return true
	}

	s.ctx.Audio.Update()
	return true
}

// Phase returns the current stage.
func (s *Screen) Phase() Phase {
	return s.phase
}
