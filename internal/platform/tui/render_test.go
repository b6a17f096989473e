package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/snakeboy/internal/console"
	"github.com/vovakirdan/snakeboy/internal/core"
	"github.com/vovakirdan/snakeboy/internal/gfx"
)

var testShades = [4]string{"#9BBC0F", "#8BAC0F", "#306230", "#0F380F"}

func rowFrame(cells ...console.Cell) console.Frame {
	identity := core.NewPalette(core.ShadeWhite, core.ShadeLight, core.ShadeDark, core.ShadeBlack)
	return console.Frame{
		Width:  len(cells),
		Height: 1,
		Cells:  cells,
		BGP:    identity,
		OBP:    identity,
	}
}

func TestPlainText(t *testing.T) {
	tests := []struct {
		name string
		cell console.Cell
		want string
	}{
		{"blank", console.Cell{Blank: true}, "  "},
		{"snake", console.Cell{Tile: gfx.TileSnake}, "[]"},
		{"loot", console.Cell{Tile: gfx.TileLoot}, "<>"},
		{"digit", console.Cell{Tile: gfx.TileDigit0 + 7}, "7 "},
		{"letter", console.Cell{Tile: gfx.TileLetterA + 2}, "C "},
		{"sprite over tile", console.Cell{Tile: gfx.TileEmpty, HasSprite: true, SpriteTile: 0}, "(o"},
		{"transparent sprite keeps tile", console.Cell{Tile: gfx.TileLoot, HasSprite: true, SpriteTile: 200}, "<>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PlainText(rowFrame(tt.cell)); got != tt.want {
				t.Errorf("PlainText = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveAppliesPalettes(t *testing.T) {
	f := rowFrame(console.Cell{Tile: gfx.TileSnake})
	f.BGP = core.NewPalette(core.ShadeBlack, core.ShadeBlack, core.ShadeLight, core.ShadeWhite)

	got := resolve(f, f.At(0, 0))
	g := gfx.TileGlyph(gfx.TileSnake)
	if got.fg != f.BGP.Shade(g.Fg) || got.bg != f.BGP.Shade(g.Bg) {
		t.Errorf("resolve = fg %v bg %v, want fg %v bg %v", got.fg, got.bg, f.BGP.Shade(g.Fg), f.BGP.Shade(g.Bg))
	}

	// Sprites use the object palette but keep the tile background.
	f.Cells[0] = console.Cell{Tile: gfx.TileSnake, HasSprite: true, SpriteTile: 0}
	f.OBP = core.NewPalette(core.ShadeWhite, core.ShadeWhite, core.ShadeWhite, core.ShadeLight)
	got = resolve(f, f.At(0, 0))
	if got.fg != core.ShadeLight {
		t.Errorf("sprite fg = %v, want light", got.fg)
	}
	if got.bg != f.BGP.Shade(g.Bg) {
		t.Errorf("sprite bg = %v, want tile background %v", got.bg, f.BGP.Shade(g.Bg))
	}
}

func TestRenderCellWidth(t *testing.T) {
	f := rowFrame(
		console.Cell{Tile: gfx.TileSnake},
		console.Cell{Tile: gfx.TileSnake},
		console.Cell{Tile: gfx.TileLoot},
	)

	wide := NewRenderer(testShades, 2).Render(f)
	for _, want := range []string{"[][]", "<>"} {
		if !strings.Contains(wide, want) {
			t.Errorf("wide render %q missing %q", wide, want)
		}
	}

	narrow := NewRenderer(testShades, 1).Render(f)
	if !strings.Contains(narrow, "[[") || strings.Contains(narrow, "]") {
		t.Errorf("narrow render %q should keep the first rune only", narrow)
	}
}

func TestRendererWidthClamped(t *testing.T) {
	tests := []struct {
		cellWidth int
		want      int
	}{
		{0, core.ScreenTilesW},
		{1, core.ScreenTilesW},
		{2, core.ScreenTilesW * 2},
		{5, core.ScreenTilesW * 2},
	}
	for _, tt := range tests {
		if got := NewRenderer(testShades, tt.cellWidth).Width(); got != tt.want {
			t.Errorf("Width(cellWidth=%d) = %d, want %d", tt.cellWidth, got, tt.want)
		}
	}
}

func TestRenderLines(t *testing.T) {
	c := console.New()
	c.SetVisible(core.LayerBackground, true)
	out := PlainText(c.Frame())
	if lines := strings.Count(out, "\n") + 1; lines != core.ScreenTilesH {
		t.Errorf("got %d lines, want %d", lines, core.ScreenTilesH)
	}
}
