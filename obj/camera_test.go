package obj

import (
	"testing"

	"github.com/jakecoffman/cp"
)

func TestCameraClampsToWorld(t *testing.T) {
	cases := []struct {
		name   string
		world  cp.Vector
		target cp.Vector
		want   cp.Vector
	}{
		{"inside", cp.Vector{X: 2000, Y: 1000}, cp.Vector{X: 700, Y: 400}, cp.Vector{X: 700, Y: 400}},
		{"top_left", cp.Vector{X: 2000, Y: 1000}, cp.Vector{X: 10, Y: 10}, cp.Vector{X: 320, Y: 180}},
		{"bottom_right", cp.Vector{X: 2000, Y: 1000}, cp.Vector{X: 1990, Y: 990}, cp.Vector{X: 1680, Y: 820}},
		{"small_world", cp.Vector{X: 480, Y: 368}, cp.Vector{X: 10, Y: 300}, cp.Vector{X: 240, Y: 188}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cam := NewCamera(640, 360, 1)
			cam.SetWorldBounds(c.world.X, c.world.Y)
			cam.Update(c.target)
			if cam.Pos != c.want {
				t.Fatalf("camera at %v, want %v", cam.Pos, c.want)
			}
		})
	}
}

func TestCameraSmoothing(t *testing.T) {
	cam := NewCamera(640, 360, 1)
	cam.SetWorldBounds(4000, 4000)
	cam.SnapTo(cp.Vector{X: 1000, Y: 1000})
	cam.SetSmooth(0.5)
	cam.Update(cp.Vector{X: 1100, Y: 1000})
	if cam.Pos.X != 1050 {
		t.Fatalf("expected half-way follow, got %g", cam.Pos.X)
	}
	x, y := cam.ViewTopLeft()
	if x != 730 || y != 820 {
		t.Fatalf("view top-left (%g, %g), want (730, 820)", x, y)
	}
}
