package effect

import (
	"testing"

	"github.com/vovakirdan/snakeboy/internal/gfx"
)

// fakeSurface records what effects draw.
type fakeSurface struct {
	brightness   []int
	defaults     int
	flashes      []int
	windowY      int
	scrolls      int
	frames       []int
	ids          []gfx.SnakeID
	textVisible  []bool
	scrollAmount int
}

func (f *fakeSurface) SetBrightness(level int) { f.brightness = append(f.brightness, level) }
func (f *fakeSurface) SetDefaultPalette() { f.defaults++ }
func (f *fakeSurface) SetFlashPalette(i int) { f.flashes = append(f.flashes, i) }
func (f *fakeSurface) WindowY() int { return f.windowY }
func (f *fakeSurface) ScrollWindow(_, dy int) {
	f.scrolls++
	f.scrollAmount += dy
	f.windowY += dy
}
func (f *fakeSurface) ShowSnakeFrame(id gfx.SnakeID, frame int) {
	f.ids = append(f.ids, id)
	f.frames = append(f.frames, frame)
}
func (f *fakeSurface) ShowStartText() { f.textVisible = append(f.textVisible, true) }
func (f *fakeSurface) HideStartText() { f.textVisible = append(f.textVisible, false) }

// seqRandom returns bytes from a fixed sequence.
type seqRandom struct {
	seq []uint8
	i   int
}

func (r *seqRandom) Byte() uint8 {
	b := r.seq[r.i%len(r.seq)]
	r.i++
	return b
}

// runUntilInactive advances e until it reports inactive and returns the number
// of active ticks. Fails the test after limit ticks.
func runUntilInactive(t *testing.T, e *Effect, s Surface, rng Random, limit int) int {
	t.Helper()
	for n := 0; n < limit; n++ {
		if !e.Advance(s, rng) {
			return n
		}
	}
	t.Fatalf("%s still active after %d ticks", e.Kind(), limit)
	return limit
}

func TestZeroPeriodPanics(t *testing.T) {
	ctors := map[string]func(){
		"FadeIn":       func() { FadeIn(0) },
		"FadeOut":      func() { FadeOut(0) },
		"Flash":        func() { Flash(0, 10) },
		"ExpandWindow": func() { ExpandWindow(0, 1) },
		"SnakeAnim":    func() { SnakeAnim(0, true, 0, 0, gfx.SnakeAwake) },
		"BlinkingText": func() { BlinkingText(0, true, 0) },
	}
	for name, ctor := range ctors {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("%s(0) should panic", name)
				}
			}()
			ctor()
		})
	}
}

func TestZeroEffectInactive(t *testing.T) {
	var e Effect
	if e.Advance(&fakeSurface{}, nil) {
		t.Error("zero Effect should never be active")
	}
	if e.Kind() != KindNone {
		t.Errorf("Kind() = %v, expected none", e.Kind())
	}
}

func TestFadeIn(t *testing.T) {
	for _, period := range []int{1, 6, 12} {
		s := &fakeSurface{}
		e := FadeIn(period)
		active := runUntilInactive(t, &e, s, nil, 1000)

		if active != period*gfx.MaxBrightness+1 {
			t.Errorf("period %d: active for %d ticks, expected %d", period, active, period*gfx.MaxBrightness+1)
		}
		want := []int{0, 1, 2, 3}
		if len(s.brightness) != len(want) {
			t.Fatalf("period %d: brightness steps %v, expected %v", period, s.brightness, want)
		}
		for i := range want {
			if s.brightness[i] != want[i] {
				t.Errorf("period %d: brightness %v, expected %v", period, s.brightness, want)
				break
			}
		}
	}
}

func TestFadeOut(t *testing.T) {
	s := &fakeSurface{}
	e := FadeOut(6)
	active := runUntilInactive(t, &e, s, nil, 1000)

	if active != 19 {
		t.Errorf("active for %d ticks, expected 19", active)
	}
	want := []int{3, 2, 1, 0}
	for i := range want {
		if s.brightness[i] != want[i] {
			t.Fatalf("brightness %v, expected %v", s.brightness, want)
		}
	}

	// Further calls stay inactive and draw nothing
	if e.Advance(s, nil) {
		t.Error("fade should stay inactive")
	}
	if len(s.brightness) != 4 {
		t.Errorf("inactive fade drew %v", s.brightness)
	}
}

func TestFadeStepsOnPeriodBoundary(t *testing.T) {
	s := &fakeSurface{}
	e := FadeIn(6)
	for i := 0; i < 6; i++ {
		e.Advance(s, nil)
	}
	if len(s.brightness) != 1 {
		t.Errorf("after 6 ticks %d steps, expected 1", len(s.brightness))
	}
	e.Advance(s, nil)
	if len(s.brightness) != 2 {
		t.Errorf("after 7 ticks %d steps, expected 2", len(s.brightness))
	}
	if e.Brightness() != 2 {
		t.Errorf("Brightness() = %d, expected 2", e.Brightness())
	}
}

func TestFlash(t *testing.T) {
	s := &fakeSurface{}
	rng := &seqRandom{seq: []uint8{0, 5, 10, 255}}
	e := Flash(1, 24)
	active := runUntilInactive(t, &e, s, rng, 1000)

	if active != 25 {
		t.Errorf("active for %d ticks, expected 25", active)
	}
	if len(s.flashes) != 25 {
		t.Errorf("%d flash palettes, expected 25", len(s.flashes))
	}
	for _, i := range s.flashes {
		if i < 0 || i > 3 {
			t.Fatalf("flash palette %d out of range", i)
		}
	}
	if s.flashes[1] != 1 || s.flashes[2] != 2 || s.flashes[3] != 3 {
		t.Errorf("flash palettes %v should follow rng modulo 4", s.flashes[:4])
	}
	if s.defaults != 1 {
		t.Errorf("default palette restored %d times, expected 1", s.defaults)
	}
}

func TestFlashPeriod(t *testing.T) {
	s := &fakeSurface{}
	e := Flash(4, 10)
	runUntilInactive(t, &e, s, &seqRandom{seq: []uint8{1}}, 100)
	// ticks 0, 4, 8
	if len(s.flashes) != 3 {
		t.Errorf("%d flashes, expected 3", len(s.flashes))
	}
}

func TestExpandWindow(t *testing.T) {
	s := &fakeSurface{windowY: 136}
	e := ExpandWindow(1, 1)
	active := runUntilInactive(t, &e, s, nil, 1000)

	if active != 135 {
		t.Errorf("active for %d ticks, expected 135", active)
	}
	if s.windowY != 1 {
		t.Errorf("window stopped at %d, expected 1", s.windowY)
	}

	// Continuing to call only repeats the check
	if e.Advance(s, nil) || s.scrolls != 135 {
		t.Error("expanded window should not scroll further")
	}
}

func TestExpandWindowPeriodAndSpeed(t *testing.T) {
	s := &fakeSurface{windowY: 20}
	e := ExpandWindow(2, 3)
	e.Advance(s, nil)
	if s.scrolls != 0 {
		t.Error("first tick should not scroll with period 2")
	}
	e.Advance(s, nil)
	if s.scrolls != 1 || s.windowY != 17 {
		t.Errorf("after 2 ticks scrolls=%d y=%d, expected 1 and 17", s.scrolls, s.windowY)
	}
}

func TestSnakeAnimOnce(t *testing.T) {
	tests := []struct {
		name              string
		period, delay, wt int
	}{
		{"game over sleeping", 8, 8, 1},
		{"no delay", 1, 0, 0},
		{"slow", 3, 2, 5},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := &fakeSurface{}
			e := SnakeAnim(tc.period, false, tc.delay, tc.wt, gfx.SnakeSleeping)
			active := runUntilInactive(t, &e, s, nil, 10000)

			want := tc.period * (gfx.SnakeFrameCount + tc.delay)
			if active != want {
				t.Errorf("active for %d ticks, expected %d", active, want)
			}
			if len(s.frames) != gfx.SnakeFrameCount+tc.delay {
				t.Fatalf("%d frames shown, expected %d", len(s.frames), gfx.SnakeFrameCount+tc.delay)
			}
			for i := 0; i < tc.delay; i++ {
				if s.frames[i] != 0 {
					t.Errorf("frame %d = %d during start delay, expected 0", i, s.frames[i])
				}
			}
			for i := 0; i < gfx.SnakeFrameCount; i++ {
				if s.frames[tc.delay+i] != i {
					t.Errorf("frame %d = %d, expected %d", tc.delay+i, s.frames[tc.delay+i], i)
				}
			}
			for _, id := range s.ids {
				if id != gfx.SnakeSleeping {
					t.Fatalf("wrong sheet %v", id)
				}
			}
		})
	}
}

func TestSnakeAnimLoopNeverStops(t *testing.T) {
	s := &fakeSurface{}
	e := SnakeAnim(8, true, 12, 12, gfx.SnakeAwake)
	for i := 0; i < 10000; i++ {
		if !e.Advance(s, nil) {
			t.Fatalf("looping animation stopped at tick %d", i)
		}
	}
}

func TestSnakeAnimLoopCycle(t *testing.T) {
	s := &fakeSurface{}
	const delay, wait = 2, 3
	e := SnakeAnim(1, true, delay, wait, gfx.SnakeAwake)
	cycle := delay + gfx.SnakeFrameCount + wait
	for i := 0; i < 2*cycle; i++ {
		e.Advance(s, nil)
	}

	for i, frame := range s.frames {
		pos := i % cycle
		want := 0
		if pos >= delay && pos < delay+gfx.SnakeFrameCount {
			want = pos - delay
		}
		if frame != want {
			t.Fatalf("tick %d: frame %d, expected %d", i, frame, want)
		}
	}
	if e.Frame() != 0 {
		t.Errorf("Frame() = %d after two full cycles, expected 0", e.Frame())
	}
}

func TestBlinkingText(t *testing.T) {
	s := &fakeSurface{}
	e := BlinkingText(24, false, 24)
	for i := 0; i <= 72; i++ {
		if !e.Advance(s, nil) {
			t.Fatal("blinking text should always be active")
		}
	}

	// tick 0 hides, tick 24 hides again and flips, 48 shows, 72 hides
	want := []bool{false, false, true, false}
	if len(s.textVisible) != len(want) {
		t.Fatalf("text toggles %v, expected %v", s.textVisible, want)
	}
	for i := range want {
		if s.textVisible[i] != want[i] {
			t.Fatalf("text toggles %v, expected %v", s.textVisible, want)
		}
	}
}

func TestBlinkingTextNoDelay(t *testing.T) {
	s := &fakeSurface{}
	e := BlinkingText(2, true, 0)
	for i := 0; i < 5; i++ {
		e.Advance(s, nil)
	}
	// tick 0 shows without flipping, tick 2 shows and flips, tick 4 hides
	want := []bool{true, true, false}
	if len(s.textVisible) != len(want) {
		t.Fatalf("text toggles %v, expected %v", s.textVisible, want)
	}
	for i := range want {
		if s.textVisible[i] != want[i] {
			t.Fatalf("text toggles %v, expected %v", s.textVisible, want)
		}
	}
}

func TestStop(t *testing.T) {
	e := FadeIn(6)
	e.Stop()
	if e.Kind() != KindNone || e.Advance(&fakeSurface{}, nil) {
		t.Error("stopped effect should be inactive")
	}
}
