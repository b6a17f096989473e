package core

import (
	"fmt"
	"strings"
)

// Tile is an index into the tile data of a layer.
type Tile uint8

// TileMap is a 2D buffer of tile indices, the storage behind the background
// and window layers.
type TileMap struct {
	width  int
	height int
	cells  [][]Tile
}

// NewTileMap creates a new tile map with the given dimensions, filled with
// tile 0.
func NewTileMap(width, height int) *TileMap {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("core: invalid tile map size %dx%d", width, height))
	}
	m := &TileMap{
		width:  width,
		height: height,
	}
	m.allocate()
	return m
}

// allocate creates the underlying cell storage.
func (m *TileMap) allocate() {
	m.cells = make([][]Tile, m.height)
	for y := range m.cells {
		m.cells[y] = make([]Tile, m.width)
	}
}

// Width returns the map width in tiles.
func (m *TileMap) Width() int {
	return m.width
}

// Height returns the map height in tiles.
func (m *TileMap) Height() int {
	return m.height
}

// Fill sets every cell to t.
func (m *TileMap) Fill(t Tile) {
	for y := range m.cells {
		for x := range m.cells[y] {
			m.cells[y][x] = t
		}
	}
}

// Set places a tile at the given position.
// Out-of-bounds coordinates are silently ignored.
func (m *TileMap) Set(x, y int, t Tile) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.cells[y][x] = t
}

// Get returns the tile at the given position.
// Returns tile 0 for out-of-bounds coordinates.
func (m *TileMap) Get(x, y int) Tile {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.cells[y][x]
}

// Blit copies src, laid out row-major with r.W columns, into region r.
// Cells falling outside the map are clipped.
func (m *TileMap) Blit(r Rect, src []Tile) {
	for i, t := range src {
		if i >= r.Area() {
			return
		}
		m.Set(r.X+i%r.W, r.Y+i/r.W, t)
	}
}

// Region returns a copy of the tiles in r, row-major.
func (m *TileMap) Region(r Rect) []Tile {
	out := make([]Tile, 0, r.Area())
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			out = append(out, m.Get(x, y))
		}
	}
	return out
}

// String dumps the map as rows of space separated hex tile indices.
// Used by tests and debug logging.
func (m *TileMap) String() string {
	var sb strings.Builder
	for y := 0; y < m.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < m.width; x++ {
			if x > 0 {
				sb.WriteRune(' ')
			}
			fmt.Fprintf(&sb, "%02x", m.cells[y][x])
		}
	}
	return sb.String()
}
