package obj

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/sacredfruit/common"
	"github.com/milk9111/sacredfruit/level"
)

const (
	collisionTypePlayer cp.CollisionType = iota + 1
	collisionTypeSolid
	collisionTypeHazard
)

// CollisionWorld mirrors a level's collision geometry into a chipmunk space
// for the debug overlay. Movement never runs through it; the player package
// resolves collisions on the tile grid.
type CollisionWorld struct {
	level *level.Level
	space *cp.Space

	playerBody  *cp.Body
	playerShape *cp.Shape

	solidShapes  int
	hazardShapes int
}

func NewCollisionWorld(lvl *level.Level) *CollisionWorld {
	cw := &CollisionWorld{level: lvl, space: cp.NewSpace()}
	cw.buildStaticShapes()
	return cw
}

func (cw *CollisionWorld) buildStaticShapes() {
	if cw.level == nil || cw.level.Grid == nil {
		return
	}
	grid := cw.level.Grid
	w, h := grid.Width(), grid.Height()

	// Merge runs of full solid tiles into larger rectangles. Inset tiles
	// keep their own box.
	processed := make([]bool, w*h)
	mergeable := func(x, y int) bool {
		t := grid.At(x, y)
		return !processed[y*w+x] && t.Solid && !t.Dangerous && t.Box.Width == common.TileSize && t.Box.Height == common.TileSize
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if processed[y*w+x] {
				continue
			}
			t := grid.At(x, y)
			if t.Empty() {
				processed[y*w+x] = true
				continue
			}
			if !mergeable(x, y) {
				cw.addBox(t.Box, t.Dangerous)
				processed[y*w+x] = true
				continue
			}

			rw := 1
			for x+rw < w && mergeable(x+rw, y) {
				rw++
			}
			rh := 1
		heightLoop:
			for y+rh < h {
				for xi := x; xi < x+rw; xi++ {
					if !mergeable(xi, y+rh) {
						break heightLoop
					}
				}
				rh++
			}

			cw.addBox(common.Rect{
				X:      float64(x * common.TileSize),
				Y:      float64(y * common.TileSize),
				Width:  float64(rw * common.TileSize),
				Height: float64(rh * common.TileSize),
			}, false)
			for yy := y; yy < y+rh; yy++ {
				for xx := x; xx < x+rw; xx++ {
					processed[yy*w+xx] = true
				}
			}
		}
	}

	// level bounds; the bottom edge is open because falling out kills
	worldW, worldH := grid.PixelSize()
	segments := []struct{ a, b cp.Vector }{
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: worldW, Y: 0}},
		{a: cp.Vector{X: 0, Y: 0}, b: cp.Vector{X: 0, Y: worldH}},
		{a: cp.Vector{X: worldW, Y: 0}, b: cp.Vector{X: worldW, Y: worldH}},
	}
	for _, seg := range segments {
		shape := cp.NewSegment(cw.space.StaticBody, seg.a, seg.b, 1)
		shape.SetCollisionType(collisionTypeSolid)
		cw.space.AddShape(shape)
	}
}

func (cw *CollisionWorld) addBox(r common.Rect, hazard bool) {
	bb := cp.BB{L: r.X, T: r.Y + r.Height, R: r.X + r.Width, B: r.Y}
	shape := cp.NewBox2(cw.space.StaticBody, bb, 0)
	if hazard {
		shape.SetSensor(true)
		shape.SetCollisionType(collisionTypeHazard)
		cw.hazardShapes++
	} else {
		shape.SetCollisionType(collisionTypeSolid)
		cw.solidShapes++
	}
	cw.space.AddShape(shape)
}

// SyncPlayer moves the kinematic player box to r.
func (cw *CollisionWorld) SyncPlayer(r common.Rect) {
	if cw.playerBody == nil || cw.playerShape == nil ||
		cw.playerShape.BB().R-cw.playerShape.BB().L != r.Width {
		cw.attachPlayer(r)
	}
	cw.playerBody.SetPosition(cp.Vector{X: r.X + r.Width/2, Y: r.Y + r.Height/2})
	cw.space.ReindexShapesForBody(cw.playerBody)
}

func (cw *CollisionWorld) attachPlayer(r common.Rect) {
	if cw.playerShape != nil {
		cw.space.RemoveShape(cw.playerShape)
		cw.space.RemoveBody(cw.playerBody)
	}
	body := cp.NewKinematicBody()
	body.SetPosition(cp.Vector{X: r.X + r.Width/2, Y: r.Y + r.Height/2})
	shape := cp.NewBox(body, r.Width, r.Height, 0)
	shape.SetSensor(true)
	shape.SetCollisionType(collisionTypePlayer)
	cw.space.AddBody(body)
	cw.space.AddShape(shape)
	cw.playerBody = body
	cw.playerShape = shape
}

// ShapeCounts returns the number of static solid and hazard shapes.
func (cw *CollisionWorld) ShapeCounts() (solid, hazard int) {
	return cw.solidShapes, cw.hazardShapes
}

// PointSolid reports whether a world point lies inside a solid shape.
// Hazards and the player are sensors and never count.
func (cw *CollisionWorld) PointSolid(p cp.Vector) bool {
	info := cw.space.PointQueryNearest(p, 0, cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, cp.ALL_CATEGORIES))
	return info.Shape != nil && !info.Shape.Sensor() && info.Distance < 0
}
