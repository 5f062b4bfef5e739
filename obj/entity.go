package obj

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/sacredfruit/entity"
	"github.com/milk9111/sacredfruit/level"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

var textFace ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

// EntityView draws the map entities of a level and the tutorial text the
// scripts asked for this frame.
type EntityView struct {
	Set *entity.Set
}

func NewEntityView(set *entity.Set) *EntityView {
	return &EntityView{Set: set}
}

func (v *EntityView) Draw(screen *ebiten.Image, camX, camY, zoom float64) {
	if v == nil || v.Set == nil {
		return
	}
	for _, e := range v.Set.Entities() {
		c := e.Color
		if c == nil {
			c = colornames.Magenta
		}
		x := float32((e.Pos.X - camX) * zoom)
		y := float32((e.Pos.Y + e.BobOffset - camY) * zoom)
		switch e.Kind {
		case level.EntityTutorialArrow:
			// arrow marker in the top tile of the trigger column
			s := float32(zoom)
			vector.FillRect(screen, x+6*s, y+2*s, 4*s, 8*s, c, false)
			vector.FillRect(screen, x+3*s, y+10*s, 10*s, 3*s, c, false)
		default:
			vector.FillRect(screen, x+2*float32(zoom), y+2*float32(zoom), float32((e.Size.X-4)*zoom), float32((e.Size.Y-4)*zoom), c, false)
		}
	}
}

// DrawDebug outlines every trigger box.
func (v *EntityView) DrawDebug(screen *ebiten.Image, camX, camY, zoom float64) {
	if v == nil || v.Set == nil {
		return
	}
	for _, e := range v.Set.Entities() {
		b := e.Box()
		vector.StrokeRect(screen,
			float32((b.X-camX)*zoom), float32((b.Y-camY)*zoom),
			float32(b.Width*zoom), float32(b.Height*zoom),
			1, colornames.Yellow, false)
	}
}

// DrawText draws s centered horizontally at screen y.
func DrawText(screen *ebiten.Image, s string, y float64, clr color.Color) {
	if s == "" {
		return
	}
	w, _ := ebtext.Measure(s, textFace, 0)
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate((float64(screen.Bounds().Dx())-w)/2, y)
	op.ColorScale.ScaleWithColor(clr)
	ebtext.Draw(screen, s, textFace, op)
}
