package level

import (
	"github.com/milk9111/sacredfruit/common"
	"github.com/milk9111/sacredfruit/tileset"
)

// Tile is one classified grid cell. Tiles are built once at load and never
// change afterwards.
type Tile struct {
	X, Y      int
	Type      int
	Solid     bool
	Dangerous bool
	Shape     tileset.Shape
	Box       common.Rect
}

// NewTile classifies tile-type typ at grid cell (x, y) and precomputes its
// bounding box.
func NewTile(x, y, typ int, ts *tileset.Tileset) Tile {
	class := ts.Classify(typ)
	in := ts.InsetFor(class.Shape)
	return Tile{
		X:         x,
		Y:         y,
		Type:      typ,
		Solid:     class.Solid,
		Dangerous: class.Dangerous,
		Shape:     class.Shape,
		Box: common.Rect{
			X:      float64(x*common.TileSize) + in.Left,
			Y:      float64(y*common.TileSize) + in.Top,
			Width:  common.TileSize - in.Left - in.Right,
			Height: common.TileSize - in.Top - in.Bottom,
		},
	}
}

// Empty reports whether the tile neither blocks nor kills.
func (t Tile) Empty() bool {
	return !t.Solid && !t.Dangerous
}
