package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// Output plays a Tracker through the system speaker. The tracker is wrapped
// in a gain stage so the overall loudness can be trimmed independently of
// the game's volume register.
type Output struct {
	*Tracker
	gain *effects.Volume
}

// Open initializes the speaker with a buffer of bufferMs milliseconds and
// starts streaming t. gain is in powers of two (0 leaves the level unchanged,
// -1 halves it).
func Open(t *Tracker, bufferMs int, gain float64) (*Output, error) {
	if bufferMs <= 0 {
		return nil, fmt.Errorf("audio: invalid buffer size %dms", bufferMs)
	}
	rate := t.SampleRate()
	if err := speaker.Init(rate, rate.N(time.Duration(bufferMs)*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: failed to init speaker: %w", err)
	}

	o := &Output{
		Tracker: t,
		gain:    &effects.Volume{Streamer: t, Base: 2, Volume: gain},
	}
	speaker.Play(o.gain)
	return o, nil
}

// SetMuted silences or restores the output without touching the tracker.
func (o *Output) SetMuted(muted bool) {
	speaker.Lock()
	o.gain.Silent = muted
	speaker.Unlock()
}

// Close stops streaming and releases the audio device.
func (o *Output) Close() {
	o.Tracker.Stop()
	speaker.Clear()
	speaker.Close()
}
