// Package tileset classifies tile-type ids into collision behavior. A Tileset
// is built once from a prefabs.TilesetSpec and never mutated afterwards, so
// several tilesets can be loaded side by side.
package tileset

import (
	"fmt"
	"image/color"

	"github.com/milk9111/sacredfruit/prefabs"
)

type Shape int

const (
	// ShapeFull covers the whole cell.
	ShapeFull Shape = iota
	// ShapeLeaves is inset on all four sides.
	ShapeLeaves
	// ShapeBranches is inset only on the bottom.
	ShapeBranches
	// ShapeDangerous is inset on the top.
	ShapeDangerous
)

func (s Shape) String() string {
	switch s {
	case ShapeLeaves:
		return "leaves"
	case ShapeBranches:
		return "branches"
	case ShapeDangerous:
		return "dangerous"
	}
	return "full"
}

// Class is the collision behavior of one tile-type id.
type Class struct {
	Solid     bool
	Dangerous bool
	Shape     Shape
}

// Inset is the distance in pixels trimmed from each side of a cell.
type Inset struct {
	Top, Right, Bottom, Left float64
}

type Tileset struct {
	name    string
	classes map[int]Class
	insets  map[Shape]Inset
	colors  map[string]color.Color
}

// FromSpec builds a Tileset. Dangerous wins over leaves, leaves over
// branches, when an id is listed more than once.
func FromSpec(spec *prefabs.TilesetSpec) (*Tileset, error) {
	if spec == nil {
		return nil, fmt.Errorf("tileset: nil spec")
	}
	ts := &Tileset{
		name:    spec.Name,
		classes: make(map[int]Class),
		insets:  make(map[Shape]Inset),
		colors:  make(map[string]color.Color),
	}

	for _, id := range spec.Solid {
		if id < 0 {
			return nil, fmt.Errorf("tileset %s: negative solid id %d", spec.Name, id)
		}
		c := ts.classes[id]
		c.Solid = true
		ts.classes[id] = c
	}
	for _, id := range spec.Branches {
		c := ts.classes[id]
		c.Shape = ShapeBranches
		ts.classes[id] = c
	}
	for _, id := range spec.Leaves {
		c := ts.classes[id]
		c.Shape = ShapeLeaves
		ts.classes[id] = c
	}
	for _, id := range spec.Dangerous {
		if id < 0 {
			return nil, fmt.Errorf("tileset %s: negative dangerous id %d", spec.Name, id)
		}
		c := ts.classes[id]
		c.Dangerous = true
		c.Shape = ShapeDangerous
		ts.classes[id] = c
	}

	for name, in := range spec.Insets {
		shape, ok := shapeByName(name)
		if !ok {
			return nil, fmt.Errorf("tileset %s: unknown inset shape %q", spec.Name, name)
		}
		if in.Top < 0 || in.Right < 0 || in.Bottom < 0 || in.Left < 0 {
			return nil, fmt.Errorf("tileset %s: negative inset for %s", spec.Name, name)
		}
		ts.insets[shape] = Inset{Top: in.Top, Right: in.Right, Bottom: in.Bottom, Left: in.Left}
	}

	for name, c := range spec.Colors {
		if c != nil && c.Color != nil {
			ts.colors[name] = c.Color
		}
	}
	return ts, nil
}

// Load reads prefabs/tileset_<name>.yaml.
func Load(name string) (*Tileset, error) {
	spec, err := prefabs.LoadTilesetSpec(name)
	if err != nil {
		return nil, err
	}
	return FromSpec(spec)
}

func (ts *Tileset) Name() string {
	return ts.name
}

// Classify looks up a tile-type id. Unknown ids are empty, full-size tiles.
func (ts *Tileset) Classify(id int) Class {
	if ts == nil {
		return Class{}
	}
	return ts.classes[id]
}

// InsetFor returns the configured inset for a shape. ShapeFull is never inset.
func (ts *Tileset) InsetFor(shape Shape) Inset {
	if ts == nil || shape == ShapeFull {
		return Inset{}
	}
	return ts.insets[shape]
}

// Color returns the debug color configured under key, if any.
func (ts *Tileset) Color(key string) (color.Color, bool) {
	if ts == nil {
		return nil, false
	}
	c, ok := ts.colors[key]
	return c, ok
}

func shapeByName(name string) (Shape, bool) {
	switch name {
	case "full":
		return ShapeFull, true
	case "leaves":
		return ShapeLeaves, true
	case "branches":
		return ShapeBranches, true
	case "dangerous":
		return ShapeDangerous, true
	}
	return 0, false
}
