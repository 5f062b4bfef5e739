// Package level holds the static geometry of a level: the classified tile
// grid, the player spawn and the point entities placed in it.
package level

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/sacredfruit/common"
	"github.com/milk9111/sacredfruit/tileset"
)

type EntityKind int

const (
	EntityTutorialArrow EntityKind = 1
	EntitySacredFruit   EntityKind = 2
)

func (k EntityKind) String() string {
	switch k {
	case EntityTutorialArrow:
		return "tutorial_arrow"
	case EntitySacredFruit:
		return "sacred_fruit"
	}
	return "unknown"
}

// EntitySpawn is a point entity from the level file. Pos is in pixels.
type EntitySpawn struct {
	Kind EntityKind
	Pos  cp.Vector
	Text string
}

// Level is immutable after load.
type Level struct {
	Name   string
	Width  int
	Height int
	// Spawn is the sprite position the player starts and respawns at.
	Spawn cp.Vector
	Grid  *Grid
	// Background is the optional non-colliding layer, rows[y][x].
	Background [][]int
	Entities   []EntitySpawn
	Tileset    *tileset.Tileset
}

func (l *Level) Tiles() *Grid {
	return l.Grid
}

func (l *Level) Size() (int, int) {
	return l.Width, l.Height
}

func (l *Level) SpawnPosition() cp.Vector {
	return l.Spawn
}

// PixelSize returns the level extent in world pixels.
func (l *Level) PixelSize() (float64, float64) {
	return float64(l.Width * common.TileSize), float64(l.Height * common.TileSize)
}

// BackgroundAt returns the background tile id at (x, y), or 0 if there is no
// background layer.
func (l *Level) BackgroundAt(x, y int) int {
	if l.Background == nil || y < 0 || y >= len(l.Background) || x < 0 || x >= len(l.Background[y]) {
		return 0
	}
	return l.Background[y][x]
}
