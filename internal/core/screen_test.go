package core

import (
	"strings"
	"testing"
)

func TestNewTileMap(t *testing.T) {
	m := NewTileMap(20, 18)

	if m.Width() != 20 {
		t.Errorf("Width() = %d, expected 20", m.Width())
	}
	if m.Height() != 18 {
		t.Errorf("Height() = %d, expected 18", m.Height())
	}

	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if m.Get(x, y) != 0 {
				t.Fatalf("New map should be filled with tile 0, got %d at (%d, %d)", m.Get(x, y), x, y)
			}
		}
	}
}

func TestNewTileMapRejectsEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewTileMap(0, 5) should panic")
		}
	}()
	NewTileMap(0, 5)
}

func TestTileMapSetGet(t *testing.T) {
	m := NewTileMap(10, 10)

	m.Set(5, 5, 7)
	if m.Get(5, 5) != 7 {
		t.Errorf("Get(5, 5) = %d, expected 7", m.Get(5, 5))
	}

	// Out of bounds should be silent
	m.Set(-1, 0, 1)
	m.Set(100, 0, 1)
	m.Set(0, -1, 1)
	m.Set(0, 100, 1)

	if m.Get(-1, 0) != 0 {
		t.Error("Out of bounds Get should return tile 0")
	}
	if m.Get(0, 100) != 0 {
		t.Error("Out of bounds Get should return tile 0")
	}
}

func TestTileMapFill(t *testing.T) {
	m := NewTileMap(4, 3)
	m.Fill(9)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if m.Get(x, y) != 9 {
				t.Fatalf("Get(%d, %d) = %d after Fill(9)", x, y, m.Get(x, y))
			}
		}
	}
}

func TestTileMapBlitAndRegion(t *testing.T) {
	m := NewTileMap(6, 4)
	r := NewRect(1, 1, 3, 2)
	m.Blit(r, []Tile{1, 2, 3, 4, 5, 6})

	got := m.Region(r)
	want := []Tile{1, 2, 3, 4, 5, 6}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Region()[%d] = %d, expected %d", i, got[i], want[i])
		}
	}

	// Cells outside the region untouched
	if m.Get(0, 0) != 0 || m.Get(4, 1) != 0 {
		t.Error("Blit wrote outside its region")
	}
}

func TestTileMapBlitClips(t *testing.T) {
	m := NewTileMap(3, 3)
	// Region hangs off the right/bottom edge; must not panic
	m.Blit(NewRect(2, 2, 2, 2), []Tile{1, 2, 3, 4})
	if m.Get(2, 2) != 1 {
		t.Errorf("Get(2, 2) = %d, expected 1", m.Get(2, 2))
	}
}

func TestTileMapString(t *testing.T) {
	m := NewTileMap(2, 2)
	m.Set(1, 1, 0x4f)
	lines := strings.Split(m.String(), "\n")
	if len(lines) != 2 {
		t.Fatalf("String() has %d lines, expected 2", len(lines))
	}
	if lines[1] != "00 4f" {
		t.Errorf("second line = %q, expected %q", lines[1], "00 4f")
	}
}
