package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snakeboy/internal/console"
	"github.com/vovakirdan/snakeboy/internal/core"
	"github.com/vovakirdan/snakeboy/internal/gfx"
)

// Renderer draws console frames with one lipgloss style per foreground and
// background shade pair.
type Renderer struct {
	styles    [4][4]lipgloss.Style
	cellWidth int
}

// NewRenderer creates a renderer for the given shade colours (white, light,
// dark, black) and terminal columns per tile.
func NewRenderer(shades [4]string, cellWidth int) *Renderer {
	r := &Renderer{cellWidth: max(1, min(gfx.GlyphWidth, cellWidth))}
	for fg := range shades {
		for bg := range shades {
			r.styles[fg][bg] = lipgloss.NewStyle().
				Foreground(lipgloss.Color(shades[fg])).
				Background(lipgloss.Color(shades[bg]))
		}
	}
	return r
}

// Width returns the rendered frame width in terminal columns.
func (r *Renderer) Width() int {
	return core.ScreenTilesW * r.cellWidth
}

// styledCell is one cell resolved to text and shades.
type styledCell struct {
	text   string
	fg, bg core.Shade
}

// resolve applies the frame's palettes to one cell. Sprites draw their text
// over the tile underneath and keep its background.
func resolve(f console.Frame, c console.Cell) styledCell {
	if c.Blank {
		return styledCell{text: "  ", fg: core.ShadeWhite, bg: core.ShadeWhite}
	}
	g := gfx.TileGlyph(c.Tile)
	sc := styledCell{text: g.Text, fg: f.BGP.Shade(g.Fg), bg: f.BGP.Shade(g.Bg)}
	if c.HasSprite {
		sg := gfx.SpriteGlyph(c.SpriteTile)
		if strings.TrimSpace(sg.Text) != "" {
			sc.text = sg.Text
			sc.fg = f.OBP.Shade(sg.Fg)
		}
	}
	return sc
}

// Render converts a frame to a styled string for display.
// Groups adjacent cells with the same shades to minimize ANSI escape sequences.
func (r *Renderer) Render(f console.Frame) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(f.Width*f.Height*r.cellWidth*4 + f.Height)

	for y := range f.Height {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same shades for efficiency
		x := 0
		for x < f.Width {
			start := resolve(f, f.At(x, y))

			var run strings.Builder
			for x < f.Width {
				cell := resolve(f, f.At(x, y))
				if cell.fg != start.fg || cell.bg != start.bg {
					break
				}
				run.WriteString(r.clip(cell.text))
				x++
			}

			sb.WriteString(r.styles[start.fg&3][start.bg&3].Render(run.String()))
		}
	}
	return sb.String()
}

// clip cuts glyph text to the configured cell width.
func (r *Renderer) clip(text string) string {
	runes := []rune(text)
	if len(runes) > r.cellWidth {
		runes = runes[:r.cellWidth]
	}
	return string(runes)
}

// PlainText renders a frame without colours, for screenshots and tests.
func PlainText(f console.Frame) string {
	var sb strings.Builder
	for y := range f.Height {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := range f.Width {
			sb.WriteString(resolve(f, f.At(x, y)).text)
		}
	}
	return sb.String()
}
