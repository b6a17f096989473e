package audio

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
)

// Peak amplitude of the mixed output at full volume.
const mixLevel = 0.25

var _ Player = (*Tracker)(nil)
var _ beep.Streamer = (*Tracker)(nil)

// voice is the synthesis state of one channel.
type voice struct {
	freq  float64
	phase float64
	duty  float64
	on    bool
}

// Tracker sequences songs row by row and synthesizes them. Update is called
// from the game loop while Stream is pulled by the audio device, so the state
// is guarded by a mutex.
type Tracker struct {
	mu     sync.Mutex
	songs  map[Track]*Song
	rate   beep.SampleRate
	volume uint8

	song    *Song
	loop    bool
	playing bool
	row     int
	frame   int
	voices  []voice
}

// NewTracker creates a stopped tracker at full volume.
func NewTracker(songs map[Track]*Song, rate beep.SampleRate) *Tracker {
	return &Tracker{
		songs:  songs,
		rate:   rate,
		volume: MaxVolume,
	}
}

// SampleRate returns the rate Stream produces samples at.
func (t *Tracker) SampleRate() beep.SampleRate {
	return t.rate
}

// Play starts track from its first row. Unknown tracks stop playback.
func (t *Tracker) Play(track Track, loop bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	song, ok := t.songs[track]
	if !ok {
		t.stopLocked()
		return
	}
	t.song = song
	t.loop = loop
	t.playing = true
	t.row = 0
	t.frame = 0
	t.voices = make([]voice, len(song.Voices))
	for i, v := range song.Voices {
		t.voices[i].duty = v.Duty
	}
	t.loadRowLocked()
}

// Stop silences playback.
func (t *Tracker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
}

func (t *Tracker) stopLocked() {
	t.playing = false
	t.song = nil
	t.voices = nil
}

// Update advances one frame, moving to the next row every Speed frames.
// A non looping song stops after its last row.
func (t *Tracker) Update() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.playing {
		return
	}
	t.frame++
	if t.frame < t.song.Speed {
		return
	}
	t.frame = 0
	t.row++
	if t.row >= t.song.Rows() {
		if !t.loop {
			t.stopLocked()
			return
		}
		t.row = 0
	}
	t.loadRowLocked()
}

// loadRowLocked applies the current row's cells to the voices.
func (t *Tracker) loadRowLocked() {
	for i, v := range t.song.Voices {
		switch n := v.Notes[t.row]; n {
		case noteHold:
		case noteRest:
			t.voices[i].on = false
		default:
			t.voices[i].freq = NoteFreq(n)
			t.voices[i].phase = 0
			t.voices[i].on = true
		}
	}
}

// SetVolume sets the master volume, clamped to MaxVolume.
func (t *Tracker) SetVolume(level uint8) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.volume = min(level, MaxVolume)
}

// Volume returns the master volume level.
func (t *Tracker) Volume() uint8 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.volume
}

// Playing reports whether a song is playing.
func (t *Tracker) Playing() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.playing
}

// Position returns the playing track and row.
func (t *Tracker) Position() (Track, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.playing {
		return "", 0
	}
	return t.song.Name, t.row
}

// Stream fills samples with the mixed square-wave voices. It never drains:
// a stopped tracker streams silence.
func (t *Tracker) Stream(samples [][2]float64) (n int, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	gain := 0.0
	if t.playing && len(t.voices) > 0 {
		gain = mixLevel * float64(t.volume) / MaxVolume / float64(len(t.voices))
	}
	for i := range samples {
		var val float64
		for j := range t.voices {
			v := &t.voices[j]
			if !v.on {
				continue
			}
			if v.phase < v.duty {
				val += gain
			} else {
				val -= gain
			}
			v.phase += v.freq / float64(t.rate)
			v.phase -= float64(int(v.phase))
		}
		samples[i][0] = val
		samples[i][1] = val
	}
	return len(samples), true
}

// Err implements beep.Streamer.
func (t *Tracker) Err() error {
	return nil
}

// Listen plays track once at fps updates per second until it ends or ctx is
// cancelled.
func (t *Tracker) Listen(ctx context.Context, track Track, fps int) error {
	if _, ok := t.songs[track]; !ok {
		return fmt.Errorf("audio: unknown track %q", track)
	}
	if fps <= 0 {
		return fmt.Errorf("audio: invalid frame rate %d", fps)
	}

	t.Play(track, false)
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()
	for t.Playing() {
		select {
		case <-ctx.Done():
			t.Stop()
			return ctx.Err()
		case <-ticker.C:
			t.Update()
		}
	}
	return nil
}
