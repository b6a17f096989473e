// Package gfx holds the snake game's tile set, background art, palette
// tables and the helpers that drive them on a core.Display.
package gfx

import "github.com/vovakirdan/snakeboy/internal/core"

// Background tile indices. The first row of the tile set doubles as the
// board cell encoding: every tile above TileWall is another wall variant.
const (
	TileBlank      core.Tile = 0
	TileEmpty      core.Tile = 1
	TileSnake      core.Tile = 2
	TileLoot       core.Tile = 3
	TileWall       core.Tile = 4
	TileWallCorner core.Tile = 5
	TileWallH      core.Tile = 6
	TileWallV      core.Tile = 7
	TileWallBlock  core.Tile = 8

	TileDigit0  core.Tile = 64
	TileLetterA core.Tile = 80
	TileColon   core.Tile = 106
	TileBang    core.Tile = 107
	TileWave    core.Tile = 108
)

// Sprite sheet layout.
const (
	SnakeFrameCount = 10
	// SleepSheetOffset is the first sprite tile of the sleeping snake sheet,
	// right after the awake sheet.
	SleepSheetOffset core.Tile = 40
)

// SnakeID selects one of the two snake sprite sheets.
type SnakeID uint8

const (
	SnakeAwake SnakeID = iota
	SnakeSleeping
)

// String returns a human-readable name for the snake sheet.
func (id SnakeID) String() string {
	switch id {
	case SnakeAwake:
		return "awake"
	case SnakeSleeping:
		return "sleeping"
	default:
		return "unknown"
	}
}

// tileForRune maps an art character to its tile.
func tileForRune(r rune) (core.Tile, bool) {
	switch {
	case r >= 'A' && r <= 'Z':
		return TileLetterA + core.Tile(r-'A'), true
	case r >= '0' && r <= '9':
		return TileDigit0 + core.Tile(r-'0'), true
	}
	switch r {
	case ' ':
		return TileBlank, true
	case '.':
		return TileEmpty, true
	case 'o':
		return TileSnake, true
	case '*':
		return TileLoot, true
	case '#':
		return TileWall, true
	case '+':
		return TileWallCorner, true
	case '-':
		return TileWallH, true
	case '|':
		return TileWallV, true
	case '=':
		return TileWallBlock, true
	case ':':
		return TileColon, true
	case '!':
		return TileBang, true
	case '~':
		return TileWave, true
	}
	return 0, false
}
