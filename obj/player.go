package obj

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/sacredfruit/player"
	"golang.org/x/image/colornames"
)

// clipColors tints the placeholder sprite by animation so state changes are
// visible without art.
var clipColors = map[player.Clip]color.Color{
	player.ClipIdle: colornames.Crimson,
	player.ClipWalk: colornames.Orangered,
	player.ClipRun:  colornames.Orange,
	player.ClipRise: colornames.Gold,
	player.ClipFall: colornames.Goldenrod,
	player.ClipLand: colornames.Khaki,
	player.ClipDash: colornames.Deepskyblue,
	player.ClipDie:  colornames.Dimgray,
}

// PlayerView draws a player.Player.
type PlayerView struct {
	Player *player.Player
}

func NewPlayerView(p *player.Player) *PlayerView {
	return &PlayerView{Player: p}
}

func (v *PlayerView) Draw(screen *ebiten.Image, camX, camY, zoom float64) {
	if v == nil || v.Player == nil {
		return
	}
	p := v.Player
	box := p.Box()
	clip, frame := p.Animation()
	c, ok := clipColors[clip]
	if !ok {
		c = colornames.Crimson
	}

	x := float32(math.Round((box.X - camX) * zoom))
	y := float32(math.Round((box.Y - camY) * zoom))
	w := float32(box.Width * zoom)
	h := float32(box.Height * zoom)

	// squash a little on odd frames so looping clips read as motion
	squash := float32(0)
	if frame%2 == 1 {
		squash = float32(zoom)
	}
	vector.FillRect(screen, x, y+squash, w, h-squash, c, false)

	// eye on the facing side
	eyeX := x + w - 3*float32(zoom)
	if p.Facing() == player.FacingLeft {
		eyeX = x + float32(zoom)
	}
	vector.FillRect(screen, eyeX, y+4*float32(zoom)+squash, 2*float32(zoom), 2*float32(zoom), colornames.White, false)
}

// DrawDebug outlines the collision box and prints the movement state.
func (v *PlayerView) DrawDebug(screen *ebiten.Image, camX, camY, zoom float64) {
	if v == nil || v.Player == nil {
		return
	}
	p := v.Player
	box := p.Box()
	vector.StrokeRect(screen,
		float32((box.X-camX)*zoom), float32((box.Y-camY)*zoom),
		float32(box.Width*zoom), float32(box.Height*zoom),
		1, colornames.Red, false)

	clip, frame := p.Animation()
	vel := p.Velocity()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("State: %s grounded: %v canDash: %v queue: %d", p.State(), p.Grounded(), p.CanDash(), p.Queue().Len()), 0, 20)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Pos: %.1f,%.1f Vel: %.1f,%.1f Anim: %s[%d]", p.Position().X, p.Position().Y, vel.X, vel.Y, clip, frame), 0, 36)
}
