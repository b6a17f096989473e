package gfx

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"github.com/vovakirdan/snakeboy/internal/core"
)

//go:embed art/menu.txt
var menuArt []byte

//go:embed art/board.txt
var boardArt []byte

//go:embed art/window.txt
var windowArt []byte

//go:embed art/start.txt
var startArt []byte

// Art is the parsed tile data of every screen.
type Art struct {
	Menu      []core.Tile // 20x18 menu background
	Board     []core.Tile // 20x18 board background, seed snake included
	Window    []core.Tile // 20x18 window: legend row then game-over panel
	StartText []core.Tile // 20x1 "press start" row
}

// Screen-sized art region.
var fullScreen = core.NewRect(0, 0, core.ScreenTilesW, core.ScreenTilesH)

// DefaultArt parses the embedded art. The embedded files are part of the
// binary, so a parse failure is a build defect and panics.
func DefaultArt() *Art {
	a, err := parseAll(boardArt)
	if err != nil {
		panic(err)
	}
	return a
}

// LoadArt parses the embedded art, replacing the board with the file at
// boardPath when it is not empty.
func LoadArt(boardPath string) (*Art, error) {
	if boardPath == "" {
		return parseAll(boardArt)
	}
	data, err := os.ReadFile(boardPath)
	if err != nil {
		return nil, fmt.Errorf("gfx: failed to read board %s: %w", boardPath, err)
	}
	return parseAll(data)
}

func parseAll(board []byte) (*Art, error) {
	var a Art
	var err error
	if a.Menu, err = ParseArt("menu", menuArt, core.ScreenTilesW, core.ScreenTilesH); err != nil {
		return nil, err
	}
	if a.Board, err = ParseArt("board", board, core.ScreenTilesW, core.ScreenTilesH); err != nil {
		return nil, err
	}
	if !containsTile(a.Board, TileSnake) {
		return nil, fmt.Errorf("gfx: board art has no seed snake cell")
	}
	if a.Window, err = ParseArt("window", windowArt, core.ScreenTilesW, core.ScreenTilesH); err != nil {
		return nil, err
	}
	if a.StartText, err = ParseArt("start", startArt, core.ScreenTilesW, 1); err != nil {
		return nil, err
	}
	return &a, nil
}

// ParseArt converts w columns by h rows of art characters into tiles.
// Short lines are padded with blanks.
func ParseArt(name string, data []byte, w, h int) ([]core.Tile, error) {
	tiles := make([]core.Tile, 0, w*h)
	sc := bufio.NewScanner(bytes.NewReader(data))
	row := 0
	for sc.Scan() {
		line := []rune(sc.Text())
		if row >= h {
			if len(bytes.TrimSpace(sc.Bytes())) == 0 {
				continue
			}
			return nil, fmt.Errorf("gfx: %s art has more than %d rows", name, h)
		}
		if len(line) > w {
			return nil, fmt.Errorf("gfx: %s art row %d is %d wide, max %d", name, row, len(line), w)
		}
		for x := 0; x < w; x++ {
			r := ' '
			if x < len(line) {
				r = line[x]
			}
			t, ok := tileForRune(r)
			if !ok {
				return nil, fmt.Errorf("gfx: %s art row %d col %d: unknown character %q", name, row, x, r)
			}
			tiles = append(tiles, t)
		}
		row++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gfx: failed to scan %s art: %w", name, err)
	}
	if row != h {
		return nil, fmt.Errorf("gfx: %s art has %d rows, expected %d", name, row, h)
	}
	return tiles, nil
}

func containsTile(tiles []core.Tile, want core.Tile) bool {
	for _, t := range tiles {
		if t == want {
			return true
		}
	}
	return false
}
