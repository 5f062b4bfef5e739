package obj

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

type transitionPhase int

const (
	phaseIdle transitionPhase = iota
	phaseFadeOut
	phaseFadeIn
)

// Transition fades to black, calls OnMidpoint (where the caller swaps the
// level), then fades back in.
type Transition struct {
	// Duration of each fade in seconds.
	Duration float32
	Target   string
	// OnMidpoint runs once the screen is fully black.
	OnMidpoint func(target string)

	phase   transitionPhase
	tween   *gween.Tween
	alpha   float32
	overlay *ebiten.Image
}

func NewTransition(duration float32) *Transition {
	return &Transition{Duration: duration}
}

// Active reports whether a fade is running. Callers pause the simulation
// while it is.
func (t *Transition) Active() bool {
	return t.phase != phaseIdle
}

// Enter starts a transition to target. It is ignored while one is running.
func (t *Transition) Enter(target string) {
	if t.Active() {
		return
	}
	t.Target = target
	t.phase = phaseFadeOut
	t.tween = gween.New(0, 1, t.Duration, ease.InOutQuad)
	t.alpha = 0
}

// Update advances the fade by dt seconds.
func (t *Transition) Update(dt float64) {
	if !t.Active() {
		return
	}
	alpha, done := t.tween.Update(float32(dt))
	t.alpha = alpha
	if !done {
		return
	}

	switch t.phase {
	case phaseFadeOut:
		if t.OnMidpoint != nil {
			t.OnMidpoint(t.Target)
		}
		t.phase = phaseFadeIn
		t.tween = gween.New(1, 0, t.Duration, ease.InOutQuad)
	case phaseFadeIn:
		t.phase = phaseIdle
		t.Target = ""
		t.alpha = 0
	}
}

// Alpha is the current overlay opacity in [0, 1].
func (t *Transition) Alpha() float32 {
	return t.alpha
}

func (t *Transition) Draw(screen *ebiten.Image) {
	if t.alpha <= 0 {
		return
	}
	if t.overlay == nil {
		t.overlay = ebiten.NewImage(1, 1)
		t.overlay.Fill(color.Black)
	}
	b := screen.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(b.Dx()), float64(b.Dy()))
	op.ColorScale.ScaleAlpha(t.alpha)
	screen.DrawImage(t.overlay, op)
}
