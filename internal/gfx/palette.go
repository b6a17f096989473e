package gfx

import "github.com/vovakirdan/snakeboy/internal/core"

// MaxBrightness is the brightest level of the fade ramp.
const MaxBrightness = 3

const (
	white = core.ShadeWhite
	light = core.ShadeLight
	dark  = core.ShadeDark
	black = core.ShadeBlack
)

// PalettePair is a background and sprite palette applied together.
type PalettePair struct {
	Background core.Palette
	Sprite     core.Palette
}

// brightness holds the palette pair for each fade level.
var brightness = [MaxBrightness + 1]PalettePair{
	{core.NewPalette(black, black, black, black), core.NewPalette(black, black, black, black)},
	{core.NewPalette(dark, black, black, black), core.NewPalette(black, black, black, dark)},
	{core.NewPalette(light, dark, black, black), core.NewPalette(black, dark, black, light)},
	{core.NewPalette(white, light, dark, black), core.NewPalette(black, light, dark, white)},
}

// flash holds the palette pairs a damage flash picks from.
var flash = [4]PalettePair{
	{core.NewPalette(black, dark, black, dark), core.NewPalette(black, dark, black, dark)},
	{core.NewPalette(light, white, black, dark), core.NewPalette(black, white, dark, white)},
	{core.NewPalette(black, dark, black, black), core.NewPalette(black, dark, black, light)},
	{core.NewPalette(white, light, white, light), core.NewPalette(black, light, white, white)},
}

// BrightnessPalettes returns the palette pair for a fade level. Levels above
// MaxBrightness use the full ramp.
func BrightnessPalettes(level int) PalettePair {
	return brightness[core.Clamp(level, 0, MaxBrightness)]
}

// FlashPalettes returns flash palette pair i (taken modulo 4).
func FlashPalettes(i int) PalettePair {
	return flash[i&3]
}

// DefaultPalettes is the palette pair used outside of transitions.
func DefaultPalettes() PalettePair {
	return brightness[MaxBrightness]
}
