package gfx

import "github.com/vovakirdan/snakeboy/internal/core"

// Legend layout on the window's first row.
const (
	legendScoreX = 7 // hundreds digit; tens and ones follow
	legendLevelX = 17
	startTextRow = 14
	startTextX   = 4
	startTextW   = 12

	collapsedWindowY = (core.ScreenTilesH - 1) * core.TileSize
)

// snakeSprites are the four hardware sprites forming the 2x2 snake portrait.
const snakeSprites = 4

// Graphics drives the game's art on a display.
type Graphics struct {
	d   core.Display
	art *Art
}

// New wraps a display with the given art. A nil art uses DefaultArt.
func New(d core.Display, art *Art) *Graphics {
	if art == nil {
		art = DefaultArt()
	}
	return &Graphics{d: d, art: art}
}

// Display returns the wrapped display.
func (g *Graphics) Display() core.Display {
	return g.d
}

// ShowMenuBackground loads the menu art and shows the background.
func (g *Graphics) ShowMenuBackground() {
	g.d.SetBackgroundTiles(fullScreen, g.art.Menu)
	g.d.SetVisible(core.LayerBackground, true)
}

// ShowBoardBackground loads the board art and shows the background.
func (g *Graphics) ShowBoardBackground() {
	g.d.SetBackgroundTiles(fullScreen, g.art.Board)
	g.d.SetVisible(core.LayerBackground, true)
}

// ShowWindow loads the window art (resetting the legend) and shows it.
func (g *Graphics) ShowWindow() {
	g.d.SetWindowTiles(fullScreen, g.art.Window)
	g.d.SetVisible(core.LayerWindow, true)
}

// HideWindow hides the window layer.
func (g *Graphics) HideWindow() {
	g.d.SetVisible(core.LayerWindow, false)
}

// CollapseWindow parks the window so only its legend row is visible.
func (g *Graphics) CollapseWindow() {
	g.d.MoveWindow(core.WindowOffsetX, collapsedWindowY)
}

// WindowY returns the window's vertical position register.
func (g *Graphics) WindowY() int {
	return g.d.WindowY()
}

// ScrollWindow moves the window by (dx, dy) pixels.
func (g *Graphics) ScrollWindow(dx, dy int) {
	g.d.ScrollWindow(dx, dy)
}

// ShowStartText restores the "press start" row of the menu.
func (g *Graphics) ShowStartText() {
	g.d.SetBackgroundTiles(core.NewRect(0, startTextRow, core.ScreenTilesW, 1), g.art.StartText)
}

// HideStartText blanks the "press start" characters.
func (g *Graphics) HideStartText() {
	blank := make([]core.Tile, startTextW)
	g.d.SetBackgroundTiles(core.NewRect(startTextX, startTextRow, startTextW, 1), blank)
}

// SetBrightness applies the fade palettes for level (0 dark .. MaxBrightness).
func (g *Graphics) SetBrightness(level int) {
	g.apply(BrightnessPalettes(level))
}

// SetDefaultPalette restores the normal palettes.
func (g *Graphics) SetDefaultPalette() {
	g.apply(DefaultPalettes())
}

// SetFlashPalette applies flash palette pair i.
func (g *Graphics) SetFlashPalette(i int) {
	g.apply(FlashPalettes(i))
}

func (g *Graphics) apply(p PalettePair) {
	g.d.SetBackgroundPalette(p.Background)
	g.d.SetSpritePalette(p.Sprite)
}

// ShowSnakeFrame points the four snake sprites at frame of sheet id.
func (g *Graphics) ShowSnakeFrame(id SnakeID, frame int) {
	base := core.Tile(0)
	if id == SnakeSleeping {
		base = SleepSheetOffset
	}
	f := core.Tile(frame * 2)
	g.d.SetSpriteTile(0, base+f)
	g.d.SetSpriteTile(1, base+f+1)
	g.d.SetSpriteTile(2, base+f+2*SnakeFrameCount)
	g.d.SetSpriteTile(3, base+f+2*SnakeFrameCount+1)
}

// ShowSnakeSprite shows the sprite layer.
func (g *Graphics) ShowSnakeSprite() {
	g.d.SetVisible(core.LayerSprites, true)
}

// HideSnakeSprite hides the sprite layer.
func (g *Graphics) HideSnakeSprite() {
	g.d.SetVisible(core.LayerSprites, false)
}

// MoveSnakeSprite places the portrait's top-left sprite at (x, y).
func (g *Graphics) MoveSnakeSprite(x, y int) {
	g.d.MoveSprite(0, x, y)
	g.d.MoveSprite(1, x+core.TileSize, y)
	g.d.MoveSprite(2, x, y+core.TileSize)
	g.d.MoveSprite(3, x+core.TileSize, y+core.TileSize)
}

// ScrollSnakeSprite moves the portrait by (dx, dy) pixels.
func (g *Graphics) ScrollSnakeSprite(dx, dy int) {
	for i := 0; i < snakeSprites; i++ {
		g.d.ScrollSprite(i, dx, dy)
	}
}

// SetLegendScore writes the score as three digits.
func (g *Graphics) SetLegendScore(score int) {
	for i := 2; i >= 0; i-- {
		g.d.SetWindowTile(legendScoreX+i, 0, TileDigit0+core.Tile(score%10))
		score /= 10
	}
}

// SetLegendLevel writes the level as two digits.
func (g *Graphics) SetLegendLevel(level int) {
	g.d.SetWindowTile(legendLevelX, 0, TileDigit0+core.Tile(level/10%10))
	g.d.SetWindowTile(legendLevelX+1, 0, TileDigit0+core.Tile(level%10))
}
