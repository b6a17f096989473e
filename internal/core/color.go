package core

// Shade is one of the four grey levels the LCD can show.
type Shade uint8

// The four LCD shades, lightest first.
const (
	ShadeWhite Shade = iota
	ShadeLight
	ShadeDark
	ShadeBlack
)

// String returns a human-readable name for the shade.
func (s Shade) String() string {
	switch s {
	case ShadeWhite:
		return "white"
	case ShadeLight:
		return "light"
	case ShadeDark:
		return "dark"
	case ShadeBlack:
		return "black"
	default:
		return "unknown"
	}
}

// Palette maps the four 2-bit colour indices of a tile to LCD shades.
// Index 0 is the first colour of the tile data.
type Palette [4]Shade

// NewPalette builds a palette from four shades (c0..c3).
func NewPalette(c0, c1, c2, c3 Shade) Palette {
	return Palette{c0, c1, c2, c3}
}

// Pack encodes the palette the way the BGP/OBP registers store it:
// c0 | c1<<2 | c2<<4 | c3<<6.
func (p Palette) Pack() uint8 {
	return uint8(p[0]&3) | uint8(p[1]&3)<<2 | uint8(p[2]&3)<<4 | uint8(p[3]&3)<<6
}

// UnpackPalette decodes a register value produced by Pack.
func UnpackPalette(reg uint8) Palette {
	return Palette{
		Shade(reg & 3),
		Shade(reg >> 2 & 3),
		Shade(reg >> 4 & 3),
		Shade(reg >> 6 & 3),
	}
}

// Shade returns the shade for colour index i (masked to two bits).
func (p Palette) Shade(i uint8) Shade {
	return p[i&3]
}
