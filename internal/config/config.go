// Package config provides YAML-based configuration loading for snakeboy.
package config

import (
	"fmt"
	"math"
	"regexp"
)

// Config is the complete snakeboy configuration.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Audio   AudioConfig   `yaml:"audio"`
	Board   BoardConfig   `yaml:"board"`
}

// DisplayConfig controls the frame rate and how frames are drawn.
type DisplayConfig struct {
	TickRate  int         `yaml:"tick_rate"`  // Frames per second before the speed preset
	Speed     SpeedPreset `yaml:"speed"`      // Scales the tick rate
	CellWidth int         `yaml:"cell_width"` // Terminal columns per tile
	Shades    [4]string   `yaml:"shades"`     // Hex colours for white, light, dark, black
}

// AudioConfig controls the chiptune output.
type AudioConfig struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     uint8   `yaml:"volume"` // 0 to 7
	Gain       float64 `yaml:"gain"`   // Output level in powers of two
	SampleRate int     `yaml:"sample_rate"`
	BufferMs   int     `yaml:"buffer_ms"`
}

// BoardConfig selects the board art.
type BoardConfig struct {
	Art string `yaml:"art"` // Custom board file, empty for the built-in board
}

// SpeedPreset represents a named game speed.
type SpeedPreset string

const (
	SpeedSlow   SpeedPreset = "slow"
	SpeedNormal SpeedPreset = "normal"
	SpeedFast   SpeedPreset = "fast"
)

// Multiplier returns the tick rate factor for the preset.
func (p SpeedPreset) Multiplier() float64 {
	switch p {
	case SpeedSlow:
		return 0.75
	case SpeedFast:
		return 1.5
	default:
		return 1.0
	}
}

// ParseSpeedPreset validates a preset name. An empty name is normal.
func ParseSpeedPreset(s string) (SpeedPreset, error) {
	switch p := SpeedPreset(s); p {
	case "":
		return SpeedNormal, nil
	case SpeedSlow, SpeedNormal, SpeedFast:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown speed %q (slow, normal, fast)", s)
	}
}

// Limits for validated values.
const (
	MinTickRate = 1
	MaxTickRate = 240
	MaxVolume   = 7
)

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// EffectiveTickRate returns the tick rate scaled by the speed preset.
func (c DisplayConfig) EffectiveTickRate() int {
	rate := int(math.Round(float64(c.TickRate) * c.Speed.Multiplier()))
	return max(MinTickRate, min(MaxTickRate, rate))
}

// Validate checks every field and returns the first problem found.
func (c Config) Validate() error {
	d := c.Display
	if d.TickRate < MinTickRate || d.TickRate > MaxTickRate {
		return fmt.Errorf("config: display.tick_rate %d out of range [%d, %d]", d.TickRate, MinTickRate, MaxTickRate)
	}
	if _, err := ParseSpeedPreset(string(d.Speed)); err != nil {
		return err
	}
	if d.CellWidth != 1 && d.CellWidth != 2 {
		return fmt.Errorf("config: display.cell_width must be 1 or 2, got %d", d.CellWidth)
	}
	for i, s := range d.Shades {
		if !hexColor.MatchString(s) {
			return fmt.Errorf("config: display.shades[%d] %q is not a #RRGGBB colour", i, s)
		}
	}

	a := c.Audio
	if a.Volume > MaxVolume {
		return fmt.Errorf("config: audio.volume %d out of range [0, %d]", a.Volume, MaxVolume)
	}
	if a.SampleRate <= 0 {
		return fmt.Errorf("config: audio.sample_rate must be positive, got %d", a.SampleRate)
	}
	if a.BufferMs <= 0 {
		return fmt.Errorf("config: audio.buffer_ms must be positive, got %d", a.BufferMs)
	}
	return nil
}
