package audio

import (
	_ "embed"
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed tracks.yaml
var tracksYAML []byte

// DefaultSpeed is the number of frames per row when a track does not set one.
const DefaultSpeed = 7

// Song is a parsed track.
type Song struct {
	Name   Track
	Speed  int // frames per row
	Voices []Voice
}

// Voice is one square-wave channel of a song.
type Voice struct {
	Duty  float64 // fraction of the period the wave is high
	Notes []int   // MIDI note, noteHold or noteRest per row
}

// Rows returns the number of rows in the song.
func (s *Song) Rows() int {
	if len(s.Voices) == 0 {
		return 0
	}
	return len(s.Voices[0].Notes)
}

type songFile struct {
	Tracks map[string]songSpec `yaml:"tracks"`
}

type songSpec struct {
	Speed    int           `yaml:"speed"`
	Channels []channelSpec `yaml:"channels"`
}

type channelSpec struct {
	Duty float64 `yaml:"duty"`
	Rows string  `yaml:"rows"`
}

// DefaultSongs parses the embedded tracks. They ship with the binary, so a
// parse failure panics.
func DefaultSongs() map[Track]*Song {
	songs, err := ParseSongs(tracksYAML)
	if err != nil {
		panic(err)
	}
	return songs
}

// ParseSongs parses a tracks YAML document.
func ParseSongs(data []byte) (map[Track]*Song, error) {
	var f songFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("audio: failed to parse tracks: %w", err)
	}
	if len(f.Tracks) == 0 {
		return nil, fmt.Errorf("audio: no tracks defined")
	}

	songs := make(map[Track]*Song, len(f.Tracks))
	for name, spec := range f.Tracks {
		song, err := parseSong(Track(name), spec)
		if err != nil {
			return nil, err
		}
		songs[song.Name] = song
	}
	return songs, nil
}

func parseSong(name Track, spec songSpec) (*Song, error) {
	song := &Song{Name: name, Speed: spec.Speed}
	if song.Speed == 0 {
		song.Speed = DefaultSpeed
	}
	if song.Speed < 0 {
		return nil, fmt.Errorf("audio: track %s: negative speed %d", name, spec.Speed)
	}
	if len(spec.Channels) == 0 {
		return nil, fmt.Errorf("audio: track %s has no channels", name)
	}

	for i, ch := range spec.Channels {
		duty := ch.Duty
		if duty == 0 {
			duty = 0.5
		}
		if duty < 0 || duty >= 1 {
			return nil, fmt.Errorf("audio: track %s channel %d: duty %v out of range", name, i, ch.Duty)
		}

		cells := strings.Fields(ch.Rows)
		if len(cells) == 0 {
			return nil, fmt.Errorf("audio: track %s channel %d has no rows", name, i)
		}
		notes := make([]int, len(cells))
		for r, cell := range cells {
			n, err := ParseNote(cell)
			if err != nil {
				return nil, fmt.Errorf("audio: track %s channel %d row %d: %w", name, i, r, err)
			}
			notes[r] = n
		}
		if i > 0 && len(notes) != song.Rows() {
			return nil, fmt.Errorf("audio: track %s channel %d has %d rows, expected %d",
				name, i, len(notes), song.Rows())
		}
		song.Voices = append(song.Voices, Voice{Duty: duty, Notes: notes})
	}
	return song, nil
}

// TrackNames returns the song names in alphabetical order.
func TrackNames(songs map[Track]*Song) []Track {
	names := make([]Track, 0, len(songs))
	for name := range songs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
