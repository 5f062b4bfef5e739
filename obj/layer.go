package obj

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/sacredfruit/common"
)

// layerCell is one drawable tile: its box in world pixels and the key of the
// color it is filled with.
type layerCell struct {
	box common.Rect
	key string
}

// Layer owns the drawable cells of one tile layer.
type Layer struct {
	Name  string
	cells []layerCell
	// images are built on first draw, one per color key
	images map[string]*ebiten.Image
	colors map[string]color.Color
}

func newLayer(name string, colors map[string]color.Color) *Layer {
	return &Layer{Name: name, colors: colors, images: map[string]*ebiten.Image{}}
}

func (ly *Layer) add(box common.Rect, key string) {
	if _, ok := ly.colors[key]; !ok {
		return
	}
	ly.cells = append(ly.cells, layerCell{box: box, key: key})
}

// Len returns the number of drawable cells.
func (ly *Layer) Len() int {
	return len(ly.cells)
}

// Draw draws the cells visible from camX/camY.
func (ly *Layer) Draw(screen *ebiten.Image, camX, camY, zoom float64) {
	if ly == nil {
		return
	}
	viewW := float64(screen.Bounds().Dx()) / zoom
	viewH := float64(screen.Bounds().Dy()) / zoom
	view := common.Rect{X: camX, Y: camY, Width: viewW, Height: viewH}

	for _, c := range ly.cells {
		if !c.box.Intersects(view) {
			continue
		}
		img := ly.image(c.key)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(c.box.Width/common.TileSize*zoom, c.box.Height/common.TileSize*zoom)
		op.GeoM.Translate((c.box.X-camX)*zoom, (c.box.Y-camY)*zoom)
		screen.DrawImage(img, op)
	}
}

func (ly *Layer) image(key string) *ebiten.Image {
	if img, ok := ly.images[key]; ok {
		return img
	}
	img := ebiten.NewImage(common.TileSize, common.TileSize)
	img.Fill(ly.colors[key])
	ly.images[key] = img
	return img
}
