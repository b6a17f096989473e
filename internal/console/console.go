// Package console emulates the display hardware of the handheld: background
// and window tile maps, sprite attribute table, palette registers and layer
// switches. Screens mutate it through core.Display; the platform layer reads
// back composed frames with Frame.
package console

import (
	"github.com/vovakirdan/snakeboy/internal/core"
)

// Hardware dimensions.
const (
	BackgroundSize = 32 // background map is 32x32 tiles
	SpriteCount    = 40
)

// Sprite is one entry of the sprite attribute table.
type Sprite struct {
	X, Y int // pixel position registers (offset by SpriteOffsetX/Y)
	Tile core.Tile
}

// Console holds the register and VRAM state.
type Console struct {
	bkg     *core.TileMap
	win     *core.TileMap
	sprites [SpriteCount]Sprite

	winX, winY int
	bgp, obp0  uint8

	showBkg     bool
	showWin     bool
	showSprites bool
}

// New creates a console with cleared VRAM, the window parked below the
// screen and every layer hidden.
func New() *Console {
	c := &Console{
		bkg:  core.NewTileMap(BackgroundSize, BackgroundSize),
		win:  core.NewTileMap(core.ScreenTilesW, core.ScreenTilesH),
		winX: core.WindowOffsetX,
		winY: core.ScreenTilesH * core.TileSize,
	}
	c.bgp = core.NewPalette(core.ShadeWhite, core.ShadeLight, core.ShadeDark, core.ShadeBlack).Pack()
	c.obp0 = c.bgp
	return c
}

var _ core.Display = (*Console)(nil)

// Tile returns the background tile at (x, y). Coordinates wrap around the
// 32x32 map like the hardware address decoder does.
func (c *Console) Tile(x, y int) core.Tile {
	return c.bkg.Get(wrap(x), wrap(y))
}

// SetTile writes one background tile.
func (c *Console) SetTile(x, y int, t core.Tile) {
	c.bkg.Set(wrap(x), wrap(y), t)
}

// SetBackgroundTiles copies src into the background region r.
func (c *Console) SetBackgroundTiles(r core.Rect, src []core.Tile) {
	c.bkg.Blit(r, src)
}

// SetWindowTiles copies src into the window region r.
func (c *Console) SetWindowTiles(r core.Rect, src []core.Tile) {
	c.win.Blit(r, src)
}

// SetWindowTile writes one window tile.
func (c *Console) SetWindowTile(x, y int, t core.Tile) {
	c.win.Set(x, y, t)
}

// WindowTile returns the window tile at (x, y).
func (c *Console) WindowTile(x, y int) core.Tile {
	return c.win.Get(x, y)
}

// MoveWindow sets WX and WY.
func (c *Console) MoveWindow(x, y int) {
	c.winX, c.winY = reg8(x), reg8(y)
}

// ScrollWindow offsets WX and WY.
func (c *Console) ScrollWindow(dx, dy int) {
	c.winX, c.winY = reg8(c.winX+dx), reg8(c.winY+dy)
}

// WindowY returns the WY register.
func (c *Console) WindowY() int {
	return c.winY
}

// WindowX returns the WX register.
func (c *Console) WindowX() int {
	return c.winX
}

// SetSpriteTile selects the tile shown by sprite index.
func (c *Console) SetSpriteTile(index int, t core.Tile) {
	if index < 0 || index >= SpriteCount {
		return
	}
	c.sprites[index].Tile = t
}

// MoveSprite sets the sprite position registers.
func (c *Console) MoveSprite(index, x, y int) {
	if index < 0 || index >= SpriteCount {
		return
	}
	c.sprites[index].X, c.sprites[index].Y = reg8(x), reg8(y)
}

// ScrollSprite offsets the sprite position registers.
func (c *Console) ScrollSprite(index, dx, dy int) {
	if index < 0 || index >= SpriteCount {
		return
	}
	s := &c.sprites[index]
	s.X, s.Y = reg8(s.X+dx), reg8(s.Y+dy)
}

// Sprite returns a copy of sprite index.
func (c *Console) Sprite(index int) Sprite {
	if index < 0 || index >= SpriteCount {
		return Sprite{}
	}
	return c.sprites[index]
}

// SetBackgroundPalette writes BGP.
func (c *Console) SetBackgroundPalette(p core.Palette) {
	c.bgp = p.Pack()
}

// SetSpritePalette writes OBP0.
func (c *Console) SetSpritePalette(p core.Palette) {
	c.obp0 = p.Pack()
}

// BackgroundPalette returns the decoded BGP register.
func (c *Console) BackgroundPalette() core.Palette {
	return core.UnpackPalette(c.bgp)
}

// SpritePalette returns the decoded OBP0 register.
func (c *Console) SpritePalette() core.Palette {
	return core.UnpackPalette(c.obp0)
}

// SetVisible shows or hides a layer.
func (c *Console) SetVisible(l core.Layer, visible bool) {
	switch l {
	case core.LayerBackground:
		c.showBkg = visible
	case core.LayerWindow:
		c.showWin = visible
	case core.LayerSprites:
		c.showSprites = visible
	}
}

// Visible reports whether a layer is shown.
func (c *Console) Visible(l core.Layer) bool {
	switch l {
	case core.LayerBackground:
		return c.showBkg
	case core.LayerWindow:
		return c.showWin
	case core.LayerSprites:
		return c.showSprites
	default:
		return false
	}
}

// wrap folds a tile coordinate into the 32-tile background map.
func wrap(v int) int {
	v %= BackgroundSize
	if v < 0 {
		v += BackgroundSize
	}
	return v
}

// reg8 truncates a value to an 8-bit register.
func reg8(v int) int {
	return int(uint8(v))
}
