// Package board implements the gameplay screen: the cell grid stored in the
// background tile map, the snake and the movement, scoring and loot rules.
package board

import (
	"github.com/vovakirdan/snakeboy/internal/core"
	"github.com/vovakirdan/snakeboy/internal/gfx"
)

// Playable grid size. The last screen row holds the legend.
const (
	Width  = core.ScreenTilesW
	Height = core.ScreenTilesH - 1
)

// bounds is the playable area.
var bounds = core.NewRect(0, 0, Width, Height)

// Cell is the content of one board position. The values are the tile
// indices that draw them.
type Cell uint8

const (
	CellEmpty Cell = Cell(gfx.TileEmpty)
	CellSnake Cell = Cell(gfx.TileSnake)
	CellLoot  Cell = Cell(gfx.TileLoot)
	CellWall  Cell = Cell(gfx.TileWall)
)

// String returns a human-readable name for the cell.
func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellSnake:
		return "snake"
	case CellLoot:
		return "loot"
	case CellWall:
		return "wall"
	default:
		return "blank"
	}
}

// Grid reads and writes board cells in the display's background map.
type Grid struct {
	d core.Display
}

// NewGrid returns a grid over d's background.
func NewGrid(d core.Display) Grid {
	return Grid{d: d}
}

// InBounds reports whether p is a playable position.
func InBounds(p core.Point) bool {
	return bounds.Contains(p.X, p.Y)
}

// Get returns the cell at p. Every wall tile variant reads as CellWall, and
// so does anything outside the playable area.
func (g Grid) Get(p core.Point) Cell {
	if !InBounds(p) {
		return CellWall
	}
	c := Cell(g.d.Tile(p.X, p.Y))
	if c > CellWall {
		return CellWall
	}
	return c
}

// Set writes c at p. Positions outside the playable area are ignored.
func (g Grid) Set(p core.Point, c Cell) {
	if !InBounds(p) {
		return
	}
	g.d.SetTile(p.X, p.Y, core.Tile(c))
}

// Count returns the number of playable cells holding c.
func (g Grid) Count(c Cell) int {
	n := 0
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if g.Get(core.Point{X: x, Y: y}) == c {
				n++
			}
		}
	}
	return n
}
