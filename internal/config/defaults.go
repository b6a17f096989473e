package config

import (
	_ "embed"
)

//go:embed defaults/snakeboy.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Display: DisplayConfig{
			TickRate:  60,
			Speed:     SpeedNormal,
			CellWidth: 2,
			Shades:    [4]string{"#9BBC0F", "#8BAC0F", "#306230", "#0F380F"},
		},
		Audio: AudioConfig{
			Enabled:    true,
			Volume:     7,
			Gain:       -1,
			SampleRate: 44100,
			BufferMs:   100,
		},
	}
}
