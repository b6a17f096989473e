// Package audio plays the game's chiptune tracks. A Tracker sequences note
// rows once per frame and synthesizes square-wave voices as a beep.Streamer;
// Output sends it to the speaker.
package audio

// Track names one of the game's songs.
type Track string

// Tracks used by the screens.
const (
	TrackMenu     Track = "menu"
	TrackBoard    Track = "board"
	TrackGameOver Track = "gameover"
)

// MaxVolume is the loudest master volume level, like the NR50 register's
// per-terminal nibble.
const MaxVolume = 7

// Player is what the screens need from the audio system.
type Player interface {
	// Play starts track from its first row, looping at the end if loop is set.
	Play(track Track, loop bool)
	// Stop silences playback.
	Stop()
	// Update advances playback by one frame. It must be called every frame
	// tick while a track is playing.
	Update()
	// SetVolume sets the master volume, 0 (mute) to MaxVolume.
	SetVolume(level uint8)
}

// Silent is a Player that does nothing. It is used when audio is disabled or
// no output device is available.
type Silent struct{}

var _ Player = Silent{}

func (Silent) Play(Track, bool) {}
func (Silent) Stop() {}
func (Silent) Update() {}
func (Silent) SetVolume(uint8) {}
