package audio

import (
	"math"
	"testing"
)

func TestParseNote(t *testing.T) {
	tests := []struct {
		cell    string
		want    int
		wantErr bool
	}{
		{"C-4", 60, false},
		{"A-4", 69, false},
		{"F#5", 78, false},
		{"c-4", 60, false},
		{"B-0", 23, false},
		{"---", noteHold, false},
		{"...", noteRest, false},
		{"H-4", 0, true},
		{"C-9", 0, true},
		{"C4", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.cell, func(t *testing.T) {
			got, err := ParseNote(tt.cell)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseNote(%q) expected error", tt.cell)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseNote(%q) unexpected error: %v", tt.cell, err)
			}
			if got != tt.want {
				t.Errorf("ParseNote(%q) = %d, expected %d", tt.cell, got, tt.want)
			}
		})
	}
}

func TestNoteFreq(t *testing.T) {
	tests := []struct {
		midi int
		want float64
	}{
		{69, 440},
		{81, 880},
		{57, 220},
		{60, 261.6256},
		{-1, 0},
		{128, 0},
	}

	for _, tt := range tests {
		if got := NoteFreq(tt.midi); math.Abs(got-tt.want) > 0.001 {
			t.Errorf("NoteFreq(%d) = %f, expected %f", tt.midi, got, tt.want)
		}
	}
}
