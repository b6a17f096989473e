// Package effect implements the timer-driven screen transitions: fades,
// damage flash, window expansion, snake sprite animation and blinking text.
//
// Every effect is an Effect value tagged with its Kind. Advance must be called
// exactly once per frame tick while the effect is wanted; it performs the
// effect's side effects on a Surface and reports whether the effect is still
// active.
package effect

import (
	"fmt"

	"github.com/vovakirdan/snakeboy/internal/gfx"
)

// Surface is the slice of the graphics helpers effects draw on.
// *gfx.Graphics implements it.
type Surface interface {
	SetBrightness(level int)
	SetDefaultPalette()
	SetFlashPalette(i int)
	WindowY() int
	ScrollWindow(dx, dy int)
	ShowSnakeFrame(id gfx.SnakeID, frame int)
	ShowStartText()
	HideStartText()
}

// Random picks flash palettes.
type Random interface {
	Byte() uint8
}

// Kind tags the variant held by an Effect.
type Kind uint8

const (
	KindNone Kind = iota
	KindFadeIn
	KindFadeOut
	KindFlash
	KindExpandWindow
	KindSnakeAnim
	KindBlinkingText
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindFadeIn:
		return "fade-in"
	case KindFadeOut:
		return "fade-out"
	case KindFlash:
		return "flash"
	case KindExpandWindow:
		return "expand-window"
	case KindSnakeAnim:
		return "snake-anim"
	case KindBlinkingText:
		return "blinking-text"
	default:
		return "unknown"
	}
}

// Window expansion stops once WY reaches this line.
const expandedWindowY = 1

// Effect is one running transition. The zero value is KindNone and is never
// active.
type Effect struct {
	kind    Kind
	period  int // ticks between steps
	elapsed int // ticks advanced so far

	fade   fadeState
	flash  flashState
	expand expandState
	anim   animState
	blink  blinkState
}

type fadeState struct {
	brightness int
}

type flashState struct {
	duration int
}

type expandState struct {
	speed int
}

type animState struct {
	loop       bool
	startDelay int
	wait       int
	id         gfx.SnakeID
	frame      int // position in the startDelay + frames + wait cycle
}

type blinkState struct {
	visible    bool
	startDelay int
}

func newEffect(kind Kind, period int) Effect {
	if period <= 0 {
		panic(fmt.Sprintf("effect: %s period must be positive, got %d", kind, period))
	}
	return Effect{kind: kind, period: period}
}

// FadeIn brightens the screen one level every period ticks, from black to
// full brightness.
func FadeIn(period int) Effect {
	return newEffect(KindFadeIn, period)
}

// FadeOut darkens the screen one level every period ticks, from full
// brightness to black.
func FadeOut(period int) Effect {
	return newEffect(KindFadeOut, period)
}

// Flash applies a random flash palette every period ticks for duration
// ticks, then restores the default palette.
func Flash(period, duration int) Effect {
	e := newEffect(KindFlash, period)
	e.flash.duration = duration
	return e
}

// ExpandWindow raises the window by speed pixels every period ticks until it
// covers the screen.
func ExpandWindow(period, speed int) Effect {
	e := newEffect(KindExpandWindow, period)
	e.expand.speed = speed
	return e
}

// SnakeAnim plays the snake sprite sheet id, one frame every period ticks.
// The first frame is held for startDelay steps and frame 0 is shown for wait
// steps between loops. A non looping animation stops after
// period*(SnakeFrameCount+startDelay) ticks.
func SnakeAnim(period int, loop bool, startDelay, wait int, id gfx.SnakeID) Effect {
	e := newEffect(KindSnakeAnim, period)
	e.anim = animState{loop: loop, startDelay: startDelay, wait: wait, id: id}
	return e
}

// BlinkingText shows or hides the start text on the first tick, then
// toggles it every period ticks once startDelay ticks have passed.
func BlinkingText(period int, visible bool, startDelay int) Effect {
	e := newEffect(KindBlinkingText, period)
	e.blink = blinkState{visible: visible, startDelay: startDelay}
	return e
}

// Kind returns the variant tag.
func (e *Effect) Kind() Kind {
	return e.kind
}

// Elapsed returns the number of ticks the effect has advanced.
func (e *Effect) Elapsed() int {
	return e.elapsed
}

// Brightness returns the next fade level to be applied.
func (e *Effect) Brightness() int {
	return e.fade.brightness
}

// Frame returns the snake animation's position in its loop cycle.
func (e *Effect) Frame() int {
	return e.anim.frame
}

// Visible returns the blinking text's pending visibility flag.
func (e *Effect) Visible() bool {
	return e.blink.visible
}

// Stop turns the effect into KindNone.
func (e *Effect) Stop() {
	*e = Effect{}
}

// Advance runs one tick of the effect and reports whether it is still
// active. rng is only used by flashes and may be nil otherwise.
func (e *Effect) Advance(s Surface, rng Random) bool {
	switch e.kind {
	case KindFadeIn:
		return e.advanceFade(s, false)
	case KindFadeOut:
		return e.advanceFade(s, true)
	case KindFlash:
		return e.advanceFlash(s, rng)
	case KindExpandWindow:
		return e.advanceExpand(s)
	case KindSnakeAnim:
		return e.advanceAnim(s)
	case KindBlinkingText:
		return e.advanceBlink(s)
	default:
		return false
	}
}

func (e *Effect) advanceFade(s Surface, out bool) bool {
	if e.elapsed > e.period*gfx.MaxBrightness {
		return false
	}
	if e.elapsed%e.period == 0 {
		level := e.fade.brightness
		if out {
			level = gfx.MaxBrightness - level
		}
		s.SetBrightness(level)
		e.fade.brightness++
	}
	e.elapsed++
	return true
}

func (e *Effect) advanceFlash(s Surface, rng Random) bool {
	if e.elapsed > e.flash.duration {
		s.SetDefaultPalette()
		return false
	}
	if e.elapsed%e.period == 0 {
		s.SetFlashPalette(int(rng.Byte() % 4))
	}
	e.elapsed++
	return true
}

func (e *Effect) advanceExpand(s Surface) bool {
	if s.WindowY() <= expandedWindowY {
		return false
	}
	e.elapsed++
	if e.elapsed%e.period == 0 {
		s.ScrollWindow(0, -e.expand.speed)
	}
	return true
}

func (e *Effect) advanceAnim(s Surface) bool {
	a := &e.anim
	if !a.loop && e.elapsed >= e.period*(gfx.SnakeFrameCount+a.startDelay) {
		return false
	}
	if e.elapsed%e.period == 0 {
		frame := 0
		if a.frame >= a.startDelay {
			frame = a.frame - a.startDelay
		}
		if frame >= gfx.SnakeFrameCount {
			frame = 0
		}
		s.ShowSnakeFrame(a.id, frame)

		a.frame++
		if a.frame >= a.startDelay+gfx.SnakeFrameCount+a.wait {
			a.frame = 0
		}
	}
	e.elapsed++
	return true
}

func (e *Effect) advanceBlink(s Surface) bool {
	b := &e.blink
	switch {
	case e.elapsed == 0:
		b.apply(s)
	case e.elapsed >= b.startDelay && (e.elapsed-b.startDelay)%e.period == 0:
		b.apply(s)
		b.visible = !b.visible
	}
	e.elapsed++
	return true
}

func (b *blinkState) apply(s Surface) {
	if b.visible {
		s.ShowStartText()
	} else {
		s.HideStartText()
	}
}
