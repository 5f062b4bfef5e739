package obj

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/sacredfruit/common"
	"github.com/milk9111/sacredfruit/level"
	"github.com/milk9111/sacredfruit/tileset"
	"golang.org/x/image/colornames"
)

// Color keys looked up in the tileset prefab.
const (
	ColorSolid      = "solid"
	ColorDecor      = "decor"
	ColorBackground = "background"
)

// fallbackColors fill in any key the tileset prefab leaves out.
var fallbackColors = map[string]color.Color{
	ColorSolid:                      colornames.Sienna,
	ColorDecor:                      colornames.Darkolivegreen,
	ColorBackground:                 color.NRGBA{R: 0x1e, G: 0x28, B: 0x3c, A: 0x80},
	tileset.ShapeLeaves.String():    colornames.Forestgreen,
	tileset.ShapeBranches.String():  colornames.Rosybrown,
	tileset.ShapeDangerous.String(): colornames.Crimson,
}

// LevelView draws a level's background and main layers.
type LevelView struct {
	Level      *level.Level
	Background *Layer
	Main       *Layer
}

func NewLevelView(lvl *level.Level) *LevelView {
	colors := make(map[string]color.Color, len(fallbackColors))
	for k, c := range fallbackColors {
		colors[k] = c
	}
	for k := range fallbackColors {
		if c, ok := lvl.Tileset.Color(k); ok {
			colors[k] = c
		}
	}

	v := &LevelView{
		Level:      lvl,
		Background: newLayer("background", colors),
		Main:       newLayer("main", colors),
	}

	grid := lvl.Tiles()
	for x := 0; x < grid.Width(); x++ {
		for y := 0; y < grid.Height(); y++ {
			cell := common.Rect{X: float64(x * common.TileSize), Y: float64(y * common.TileSize), Width: common.TileSize, Height: common.TileSize}
			if lvl.BackgroundAt(x, y) != 0 {
				v.Background.add(cell, ColorBackground)
			}

			t := grid.At(x, y)
			switch {
			case t.Type == 0:
			case t.Empty():
				v.Main.add(cell, ColorDecor)
			case t.Shape == tileset.ShapeFull:
				v.Main.add(t.Box, ColorSolid)
			default:
				v.Main.add(t.Box, t.Shape.String())
			}
		}
	}
	return v
}

func (v *LevelView) Draw(screen *ebiten.Image, camX, camY, zoom float64) {
	if v == nil {
		return
	}
	v.Background.Draw(screen, camX, camY, zoom)
	v.Main.Draw(screen, camX, camY, zoom)
}
