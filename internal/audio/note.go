package audio

import (
	"fmt"
	"math"
	"strings"
)

// Special row values.
const (
	noteHold = -1 // keep the previous note sounding
	noteRest = -2 // silence the channel
)

var semitones = map[string]int{
	"C-": 0, "C#": 1, "D-": 2, "D#": 3, "E-": 4, "F-": 5,
	"F#": 6, "G-": 7, "G#": 8, "A-": 9, "A#": 10, "B-": 11,
}

// NoteFreq returns the frequency in Hz of a MIDI note number. A4 (69) is
// 440 Hz.
func NoteFreq(midi int) float64 {
	if midi < 0 || midi >= 128 {
		return 0
	}
	return 440.0 * math.Pow(2, float64(midi-69)/12.0)
}

// ParseNote converts a tracker cell to a MIDI note number. Cells are written
// as note name, sharp or '-', and octave ("C-4", "F#5"). "---" holds the
// previous note and "..." rests.
func ParseNote(cell string) (int, error) {
	switch cell {
	case "---":
		return noteHold, nil
	case "...":
		return noteRest, nil
	}
	if len(cell) != 3 {
		return 0, fmt.Errorf("audio: invalid note %q", cell)
	}
	semi, ok := semitones[strings.ToUpper(cell[:2])]
	if !ok {
		return 0, fmt.Errorf("audio: invalid note name %q", cell)
	}
	octave := int(cell[2] - '0')
	if octave < 0 || octave > 8 {
		return 0, fmt.Errorf("audio: invalid octave in %q", cell)
	}
	return (octave+1)*12 + semi, nil
}
