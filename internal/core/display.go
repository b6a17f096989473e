package core

// Screen geometry of the handheld, in tiles and pixels.
const (
	ScreenTilesW = 20
	ScreenTilesH = 18
	TileSize     = 8

	// Sprite and window registers are offset from the visible origin.
	SpriteOffsetX = 8
	SpriteOffsetY = 16
	WindowOffsetX = 7
)

// Layer identifies one of the three hardware layers.
type Layer uint8

const (
	LayerBackground Layer = iota
	LayerWindow
	LayerSprites
)

// String returns a human-readable name for the layer.
func (l Layer) String() string {
	switch l {
	case LayerBackground:
		return "background"
	case LayerWindow:
		return "window"
	case LayerSprites:
		return "sprites"
	default:
		return "unknown"
	}
}

// Display is the tile/sprite/palette contract the screens drive.
// Background coordinates are in tiles; sprite and window positions are in
// pixels with the hardware register offsets.
type Display interface {
	// Tile returns the background tile at (x, y).
	Tile(x, y int) Tile
	// SetTile writes one background tile.
	SetTile(x, y int, t Tile)
	// SetBackgroundTiles copies src into the background region r.
	SetBackgroundTiles(r Rect, src []Tile)

	// SetWindowTiles copies src into the window region r.
	SetWindowTiles(r Rect, src []Tile)
	// SetWindowTile writes one window tile.
	SetWindowTile(x, y int, t Tile)
	// MoveWindow sets the window position registers (WX, WY).
	MoveWindow(x, y int)
	// ScrollWindow offsets the window position registers.
	ScrollWindow(dx, dy int)
	// WindowY returns the WY register.
	WindowY() int

	// SetSpriteTile selects the tile shown by sprite index.
	SetSpriteTile(index int, t Tile)
	// MoveSprite sets the sprite position registers.
	MoveSprite(index, x, y int)
	// ScrollSprite offsets the sprite position registers.
	ScrollSprite(index, dx, dy int)

	// SetBackgroundPalette writes BGP (shared by background and window).
	SetBackgroundPalette(p Palette)
	// SetSpritePalette writes OBP0.
	SetSpritePalette(p Palette)

	// SetVisible shows or hides a layer.
	SetVisible(l Layer, visible bool)
}
