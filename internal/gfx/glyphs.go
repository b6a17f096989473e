package gfx

import "github.com/vovakirdan/snakeboy/internal/core"

// GlyphWidth is how many terminal columns one tile occupies.
const GlyphWidth = 2

// Glyph is the terminal rendition of a tile: two columns of text and the
// colour indices (not shades) of its foreground and background. The active
// palette turns the indices into shades.
type Glyph struct {
	Text        string
	Fg, Bg      uint8
	Transparent bool // sprite pixels with colour 0 show what is underneath
}

var tileGlyphs = map[core.Tile]Glyph{
	TileBlank:      {Text: "  ", Fg: 3, Bg: 3},
	TileEmpty:      {Text: "  ", Fg: 1, Bg: 0},
	TileSnake:      {Text: "[]", Fg: 3, Bg: 2},
	TileLoot:       {Text: "<>", Fg: 3, Bg: 1},
	TileWall:       {Text: "##", Fg: 3, Bg: 2},
	TileWallCorner: {Text: "++", Fg: 0, Bg: 3},
	TileWallH:      {Text: "==", Fg: 1, Bg: 3},
	TileWallV:      {Text: "||", Fg: 1, Bg: 3},
	TileWallBlock:  {Text: "::", Fg: 2, Bg: 3},
	TileColon:      {Text: ": ", Fg: 0, Bg: 3},
	TileBang:       {Text: "! ", Fg: 0, Bg: 3},
	TileWave:       {Text: "~~", Fg: 2, Bg: 3},
}

var unknownGlyph = Glyph{Text: "??", Fg: 0, Bg: 3}

// TileGlyph returns the glyph of a background or window tile.
func TileGlyph(t core.Tile) Glyph {
	switch {
	case t >= TileDigit0 && t < TileDigit0+10:
		return Glyph{Text: string(rune('0'+t-TileDigit0)) + " ", Fg: 0, Bg: 3}
	case t >= TileLetterA && t < TileLetterA+26:
		return Glyph{Text: string(rune('A'+t-TileLetterA)) + " ", Fg: 0, Bg: 3}
	}
	if g, ok := tileGlyphs[t]; ok {
		return g
	}
	return unknownGlyph
}

// Snake sprite frames, one entry per frame: top-left, top-right,
// bottom-left, bottom-right quarter.
var awakeFrames = [SnakeFrameCount][4]string{
	{"(o", "o)", " \\", "/ "},
	{"(o", "o)", " \\", "/ "},
	{"(o", "o)", " \\", "/~"},
	{"(o", "o)", " \\", "/<"},
	{"(-", "-)", " \\", "/ "},
	{"(o", "o)", " \\", "/ "},
	{"(O", "O)", " \\", "/~"},
	{"(O", "O)", " \\", "/<"},
	{"(o", "o)", " \\", "/~"},
	{"(o", "o)", " \\", "/ "},
}

var sleepingFrames = [SnakeFrameCount][4]string{
	{"(-", "-)", " \\", "/ "},
	{"(-", "-)", " \\", "/z"},
	{"(-", ")z", " \\", "/ "},
	{"(-", ")Z", " \\", "/ "},
	{"(-", "-)", " \\", "/ "},
	{"(_", "_)", " \\", "/z"},
	{"(_", ")z", " \\", "/ "},
	{"(_", ")Z", " \\", "/ "},
	{"(-", "-)", " \\", "/."},
	{"(-", "-)", " \\", "/ "},
}

// SpriteGlyph returns the glyph of a sprite tile. Sprite sheets are laid out
// 20 tiles wide: frame f of a sheet uses tiles 2f, 2f+1 on the top row and
// 2f+20, 2f+21 on the bottom row.
func SpriteGlyph(t core.Tile) Glyph {
	frames := &awakeFrames
	local := t
	if t >= SleepSheetOffset {
		frames = &sleepingFrames
		local = t - SleepSheetOffset
	}
	if local >= 2*2*SnakeFrameCount {
		return Glyph{Text: "  ", Transparent: true}
	}
	row := int(local) / (2 * SnakeFrameCount)
	col := int(local) % 2
	frame := (int(local) % (2 * SnakeFrameCount)) / 2
	return Glyph{Text: frames[frame][row*2+col], Fg: 3, Transparent: true}
}
