// Package menu implements the title screen: the awake snake animation and a
// blinking "press start" prompt between a fade-in and a fade-out.
package menu

import (
	"github.com/vovakirdan/snakeboy/internal/audio"
	"github.com/vovakirdan/snakeboy/internal/core"
	"github.com/vovakirdan/snakeboy/internal/effect"
	"github.com/vovakirdan/snakeboy/internal/gfx"
	"github.com/vovakirdan/snakeboy/internal/screens"
)

// Layout and timing, in pixels and frame ticks.
const (
	snakeX = 84
	snakeY = 34

	fadePeriod  = 6
	animPeriod  = 8
	animDelay   = 12
	animWait    = 12
	blinkPeriod = 24
	blinkDelay  = 24
)

// Screen is the title screen.
type Screen struct {
	ctx *screens.Context

	fade      effect.Effect
	anim      effect.Effect
	blink     effect.Effect
	fadingIn  bool
	fadingOut bool
	animating bool
	tick      uint64
}

var _ screens.Screen = (*Screen)(nil)

// New creates the menu screen.
func New(ctx *screens.Context) *Screen {
	ctx.Validate()
	return &Screen{ctx: ctx}
}

// Name returns the screen name.
func (s *Screen) Name() string {
	return "menu"
}

// Enter draws the menu, starts the music and applies the first fade step.
func (s *Screen) Enter() {
	g := s.ctx.Graphics
	g.ShowMenuBackground()
	g.MoveSnakeSprite(snakeX, snakeY)
	s.ctx.Audio.Play(audio.TrackMenu, true)

	s.fade = effect.FadeIn(fadePeriod)
	s.anim = effect.SnakeAnim(animPeriod, true, animDelay, animWait, gfx.SnakeAwake)
	s.blink = effect.BlinkingText(blinkPeriod, false, blinkDelay)
	s.fadingIn = true
	s.fadingOut = false
	s.animating = true
	s.tick = 0

	s.fade.Advance(g, nil)
}

// Step runs one tick. Start begins the fade-out; the screen ends when it
// completes.
func (s *Screen) Step(buttons core.Buttons) bool {
	g := s.ctx.Graphics
	s.tick++

	if buttons.Has(core.ButtonStart) && !s.fadingOut {
		s.fade = effect.FadeOut(fadePeriod)
		s.fadingIn = false
		s.fadingOut = true
		s.ctx.Logger.Debug("start pressed", "tick", s.tick)
	}

	if s.fadingIn {
		s.fadingIn = s.fade.Advance(g, nil)
	}
	if s.animating {
		s.animating = s.anim.Advance(g, nil)
	}
	if s.fadingOut && !s.fade.Advance(g, nil) {
		return false
	}

	s.blink.Advance(g, nil)
	s.ctx.Audio.Update()
	return true
}

// FadingOut reports whether Start has been pressed.
func (s *Screen) FadingOut() bool {
	return s.fadingOut
}
