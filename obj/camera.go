package obj

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/sacredfruit/common"
)

// Camera centers the view on a world point and keeps it inside the level.
type Camera struct {
	Pos cp.Vector

	screenW int
	screenH int
	zoom    float64

	// smoothing factor (0..1). higher -> faster follow; 0 snaps.
	smooth float64
	// world bounds in pixels (0 means unbounded)
	worldW float64
	worldH float64
}

// NewCamera creates a camera with the given logical screen size and zoom.
func NewCamera(screenW, screenH int, zoom float64) *Camera {
	c := &Camera{screenW: screenW, screenH: screenH, zoom: zoom}
	c.Pos = cp.Vector{X: float64(screenW) / 2.0, Y: float64(screenH) / 2.0}
	return c
}

func (c *Camera) SetZoom(z float64) {
	if z <= 0 {
		return
	}
	c.zoom = z
}

func (c *Camera) Zoom() float64 {
	return c.zoom
}

// SetWorldBounds sets the world pixel dimensions for clamping.
func (c *Camera) SetWorldBounds(w, h float64) {
	c.worldW = w
	c.worldH = h
}

func (c *Camera) SetSmooth(f float64) {
	c.smooth = common.Clamp(f, 0, 1)
}

// ViewTopLeft returns the world-space top-left of the current view.
func (c *Camera) ViewTopLeft() (float64, float64) {
	viewW := float64(c.screenW) / c.zoom
	viewH := float64(c.screenH) / c.zoom
	return c.Pos.X - viewW/2.0, c.Pos.Y - viewH/2.0
}

// Update moves the camera toward target.
func (c *Camera) Update(target cp.Vector) {
	if c.smooth <= 0 {
		c.Pos = target
	} else {
		c.Pos.X += (target.X - c.Pos.X) * c.smooth
		c.Pos.Y += (target.Y - c.Pos.Y) * c.smooth
	}
	c.constrain()
}

// SnapTo places the camera without smoothing, e.g. after a level load or a
// respawn.
func (c *Camera) SnapTo(target cp.Vector) {
	c.Pos = target
	c.constrain()
}

func (c *Camera) constrain() {
	// snap to the 1/zoom grid so texels land on whole screen pixels
	c.Pos.X = math.Round(c.Pos.X*c.zoom) / c.zoom
	c.Pos.Y = math.Round(c.Pos.Y*c.zoom) / c.zoom

	halfW := float64(c.screenW) / c.zoom / 2.0
	halfH := float64(c.screenH) / c.zoom / 2.0
	c.Pos.X = clampAxis(c.Pos.X, halfW, c.worldW)
	c.Pos.Y = clampAxis(c.Pos.Y, halfH, c.worldH)
}

// clampAxis keeps a view of half-size half inside [0, world]. A world
// smaller than the view is centered.
func clampAxis(v, half, world float64) float64 {
	if world <= 0 {
		return v
	}
	if world-half < half {
		return world / 2.0
	}
	return common.Clamp(v, half, world-half)
}
