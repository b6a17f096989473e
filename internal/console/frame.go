package console

import "github.com/vovakirdan/snakeboy/internal/core"

// Cell is one composed screen tile.
type Cell struct {
	Layer core.Layer // layer that supplied Tile (background or window)
	Tile  core.Tile
	Blank bool // no layer covers this cell

	HasSprite  bool
	SpriteTile core.Tile
}

// Frame is a composed 20x18 snapshot of the screen plus the palettes in
// effect when it was taken.
type Frame struct {
	Width, Height int
	Cells         []Cell
	BGP, OBP      core.Palette
}

// At returns the cell at (x, y).
func (f Frame) At(x, y int) Cell {
	return f.Cells[y*f.Width+x]
}

// Frame composes the visible screen. Positions are snapped to the tile grid:
// window row for screen row r is (8r - WY + 4) / 8, sprites land on the tile
// nearest their (x-8, y-16) pixel position.
func (c *Console) Frame() Frame {
	w, h := core.ScreenTilesW, core.ScreenTilesH
	f := Frame{
		Width:  w,
		Height: h,
		Cells:  make([]Cell, w*h),
		BGP:    c.BackgroundPalette(),
		OBP:    c.SpritePalette(),
	}

	winCol := snap(c.winX - core.WindowOffsetX)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			cell := Cell{Blank: true}
			if c.showBkg {
				cell = Cell{Layer: core.LayerBackground, Tile: c.bkg.Get(x, y)}
			}
			if c.showWin {
				off := y*core.TileSize - c.winY
				if off >= -core.TileSize/2 && x >= winCol {
					row := (off + core.TileSize/2) / core.TileSize
					if row < c.win.Height() {
						cell = Cell{Layer: core.LayerWindow, Tile: c.win.Get(x-winCol, row)}
					}
				}
			}
			f.Cells[y*w+x] = cell
		}
	}

	if !c.showSprites {
		return f
	}
	// Lower indices win on overlap, so draw from the back.
	for i := SpriteCount - 1; i >= 0; i-- {
		s := c.sprites[i]
		sx := snap(s.X - core.SpriteOffsetX)
		sy := snap(s.Y - core.SpriteOffsetY)
		if sx < 0 || sx >= w || sy < 0 || sy >= h {
			continue
		}
		cell := &f.Cells[sy*w+sx]
		cell.HasSprite = true
		cell.SpriteTile = s.Tile
	}
	return f
}

// snap converts a pixel offset to the nearest tile index.
func snap(px int) int {
	if px < 0 {
		return -((-px + core.TileSize/2) / core.TileSize)
	}
	return (px + core.TileSize/2) / core.TileSize
}
