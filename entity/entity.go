// Package entity runs the point entities placed in a level: tutorial arrows
// that show text while touched and the sacred fruit that ends the level.
// Overlap is found through a resolv space; behavior lives in tengo scripts.
package entity

import (
	"fmt"
	"image/color"
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/sacredfruit/common"
	"github.com/milk9111/sacredfruit/level"
	"github.com/milk9111/sacredfruit/prefabs"
	"github.com/solarlune/resolv"
)

const (
	tagEntity = "entity"
	tagPlayer = "player"
)

type Entity struct {
	Name string
	Kind level.EntityKind
	Text string
	// Pos is the spawn position; the drawn position adds BobOffset.
	Pos   cp.Vector
	Size  cp.Vector
	Color color.Color

	// BobOffset alternates between 0 and -1 pixel.
	BobOffset   float64
	bobInterval float64
	bobTimer    float64

	object *resolv.Object
	script *scriptRuntime
}

// Box is the trigger box in world pixels. Bobbing is visual only.
func (e *Entity) Box() common.Rect {
	return common.Rect{X: e.Pos.X, Y: e.Pos.Y, Width: e.Size.X, Height: e.Size.Y}
}

func (e *Entity) bob(dt float64) {
	if e.bobInterval <= 0 {
		return
	}
	e.bobTimer += dt
	if e.bobTimer > e.bobInterval {
		e.bobTimer = 0
		if e.BobOffset == 0 {
			e.BobOffset = -1
		} else {
			e.BobOffset = 0
		}
	}
}

// Set holds every entity of one level.
type Set struct {
	space    *resolv.Space
	player   *resolv.Object
	entities []*Entity
}

// NewSet builds the entities of lvl from their prefab specs. Each distinct
// script is compiled once.
func NewSet(lvl *level.Level, specs *prefabs.EntitiesSpec) (*Set, error) {
	if lvl == nil || specs == nil {
		return nil, fmt.Errorf("entity: nil level or specs")
	}
	byCode := make(map[int]prefabs.EntitySpec, len(specs.Entities))
	for _, s := range specs.Entities {
		byCode[s.Code] = s
	}

	w, h := lvl.PixelSize()
	s := &Set{space: resolv.NewSpace(int(w), int(h), common.TileSize, common.TileSize)}
	scripts := map[string]*scriptRuntime{}

	for _, spawn := range lvl.Entities {
		spec, ok := byCode[int(spawn.Kind)]
		if !ok {
			return nil, fmt.Errorf("entity: no prefab for %s (code %d)", spawn.Kind, int(spawn.Kind))
		}
		rt, ok := scripts[spec.Script]
		if !ok {
			var err error
			rt, err = loadScript(spec.Script)
			if err != nil {
				return nil, err
			}
			scripts[spec.Script] = rt
		}

		e := &Entity{
			Name:        spec.Name,
			Kind:        spawn.Kind,
			Text:        spawn.Text,
			Pos:         spawn.Pos,
			Size:        cp.Vector{X: spec.Collider.Width, Y: spec.Collider.Height},
			bobInterval: spec.BobInterval,
			script:      rt,
		}
		if spec.Color != nil {
			e.Color = spec.Color.Color
		}
		e.object = resolv.NewObject(e.Pos.X, e.Pos.Y, e.Size.X, e.Size.Y, tagEntity)
		e.object.SetShape(resolv.NewRectangle(0, 0, e.Size.X, e.Size.Y))
		e.object.Data = e
		s.space.Add(e.object)
		s.entities = append(s.entities, e)
	}

	s.player = resolv.NewObject(0, 0, 1, 1, tagPlayer)
	s.space.Add(s.player)
	return s, nil
}

func (s *Set) Entities() []*Entity {
	return s.entities
}

// Update bobs every entity and runs the touch script of each one the player
// box overlaps. Scripts run on every tick of overlap.
func (s *Set) Update(dt float64, playerBox common.Rect, host Host) {
	for _, e := range s.entities {
		e.bob(dt)
	}

	for _, e := range s.Touching(playerBox) {
		if err := e.script.touch(e, host); err != nil {
			log.Printf("entity: %s at (%g, %g): %v", e.Name, e.Pos.X, e.Pos.Y, err)
		}
	}
}

// Touching returns the entities whose trigger box overlaps box.
func (s *Set) Touching(box common.Rect) []*Entity {
	s.player.X, s.player.Y = box.X, box.Y
	s.player.W, s.player.H = box.Width, box.Height
	s.player.Update()

	check := s.player.Check(0, 0, tagEntity)
	if check == nil {
		return nil
	}
	var out []*Entity
	seen := map[*Entity]bool{}
	for _, obj := range check.Objects {
		e, ok := obj.Data.(*Entity)
		if !ok || seen[e] || !e.Box().Intersects(box) {
			continue
		}
		seen[e] = true
		out = append(out, e)
	}
	return out
}
