package board

import (
	"testing"

	"github.com/vovakirdan/snakeboy/internal/console"
	"github.com/vovakirdan/snakeboy/internal/core"
	"github.com/vovakirdan/snakeboy/internal/gfx"
)

func TestGridGet(t *testing.T) {
	c := console.New()
	g := NewGrid(c)
	c.SetTile(1, 1, gfx.TileEmpty)
	c.SetTile(2, 1, gfx.TileSnake)
	c.SetTile(3, 1, gfx.TileLoot)
	c.SetTile(4, 1, gfx.TileWall)
	c.SetTile(5, 1, gfx.TileWallCorner)
	c.SetTile(6, 1, gfx.TileWallBlock)
	c.SetTile(0, Height, gfx.TileEmpty)

	tests := []struct {
		name string
		p    core.Point
		want Cell
	}{
		{"empty", pt(1, 1), CellEmpty},
		{"snake", pt(2, 1), CellSnake},
		{"loot", pt(3, 1), CellLoot},
		{"wall", pt(4, 1), CellWall},
		{"corner variant", pt(5, 1), CellWall},
		{"block variant", pt(6, 1), CellWall},
		{"legend row", pt(0, Height), CellWall},
		{"left of board", pt(-1, 1), CellWall},
		{"right of board", pt(Width, 1), CellWall},
		{"above board", pt(1, -1), CellWall},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.Get(tt.p); got != tt.want {
				t.Errorf("Get(%v) = %v, expected %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestGridSet(t *testing.T) {
	c := console.New()
	g := NewGrid(c)

	g.Set(pt(3, 4), CellLoot)
	if c.Tile(3, 4) != gfx.TileLoot {
		t.Errorf("tile = %d, expected loot tile", c.Tile(3, 4))
	}

	// Outside the playable area nothing is written
	g.Set(pt(3, Height), CellSnake)
	g.Set(pt(-1, 0), CellSnake)
	if c.Tile(3, Height) != 0 || c.Tile(wrappedX, 0) != 0 {
		t.Error("Set outside the board should be ignored")
	}
}

// wrappedX is where x = -1 lands on the 32 tile background map.
const wrappedX = console.BackgroundSize - 1

func TestGridCount(t *testing.T) {
	c := console.New()
	g := NewGrid(c)
	g.Set(pt(0, 0), CellLoot)
	g.Set(pt(Width-1, Height-1), CellLoot)
	if n := g.Count(CellLoot); n != 2 {
		t.Errorf("Count(loot) = %d, expected 2", n)
	}
}
