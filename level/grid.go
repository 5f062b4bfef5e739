package level

import (
	"fmt"

	"github.com/milk9111/sacredfruit/common"
	"github.com/milk9111/sacredfruit/tileset"
)

// Grid is the column-major tile table of a level (tiles[x][y]). It is shared
// read-only by pointer; callers bounds-check with InBounds before At.
type Grid struct {
	width  int
	height int
	tiles  [][]Tile
}

// NewGrid classifies rows (rows[y][x], as laid out in a level file).
func NewGrid(rows [][]int, ts *tileset.Tileset) (*Grid, error) {
	height := len(rows)
	if height == 0 {
		return nil, fmt.Errorf("level: empty grid")
	}
	width := len(rows[0])
	if width == 0 {
		return nil, fmt.Errorf("level: empty grid row")
	}
	g := &Grid{width: width, height: height, tiles: make([][]Tile, width)}
	for x := range g.tiles {
		g.tiles[x] = make([]Tile, height)
	}
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("level: row %d has %d tiles, want %d", y, len(row), width)
		}
		for x, typ := range row {
			g.tiles[x][y] = NewTile(x, y, typ, ts)
		}
	}
	return g, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x, y) indexes a cell: 0 <= x < width and
// 0 <= y < height.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.width && y < g.height
}

// At returns the tile at (x, y). Out-of-range indices panic.
func (g *Grid) At(x, y int) Tile {
	return g.tiles[x][y]
}

// BoundingBoxAt returns the precomputed box of the tile at (x, y).
func (g *Grid) BoundingBoxAt(x, y int) common.Rect {
	return g.tiles[x][y].Box
}

// PixelSize returns the grid extent in world pixels.
func (g *Grid) PixelSize() (float64, float64) {
	return float64(g.width * common.TileSize), float64(g.height * common.TileSize)
}

// Count returns how many tiles satisfy fn.
func (g *Grid) Count(fn func(Tile) bool) int {
	n := 0
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			if fn(g.tiles[x][y]) {
				n++
			}
		}
	}
	return n
}
