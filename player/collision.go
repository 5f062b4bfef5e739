package player

import (
	"math"

	"github.com/milk9111/sacredfruit/common"
	"github.com/milk9111/sacredfruit/level"
)

type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

// StepOutcome is why StepAxis stopped.
type StepOutcome int

const (
	// OutcomeClear means every requested step was taken.
	OutcomeClear StepOutcome = iota
	// OutcomeBlocked means a solid tile or the left, right or top edge of
	// the level stopped the box.
	OutcomeBlocked
	// OutcomeDanger means the next step overlaps a dangerous tile.
	OutcomeDanger
	// OutcomeFell means the next step leaves the bottom of the level.
	OutcomeFell
)

func (o StepOutcome) String() string {
	switch o {
	case OutcomeClear:
		return "clear"
	case OutcomeBlocked:
		return "blocked"
	case OutcomeDanger:
		return "danger"
	case OutcomeFell:
		return "fell"
	}
	return "unknown"
}

// StepAxis moves box along axis one pixel at a time, |steps| times, in the
// direction of the sign of steps. Before each step it checks the step's
// target box against the level bounds and against the 3x4 neighborhood of the
// current cell (columns x-1..x+1, rows y-1..y+2). The first hit stops the
// walk and the step is not taken, so the returned box never overlaps a solid
// tile. Dangerous tiles win over solid ones in the same step.
//
// bounds is the level extent in pixels; only its Width and Height are used.
func StepAxis(box common.Rect, axis Axis, steps int, grid *level.Grid, bounds common.Rect) (common.Rect, StepOutcome) {
	if steps == 0 {
		return box, OutcomeClear
	}
	dir := 1.0
	if steps < 0 {
		dir = -1
		steps = -steps
	}

	for range steps {
		var next common.Rect
		if axis == AxisX {
			next = box.Offset(dir, 0)
			if next.X < 0 || next.Right() > bounds.Width {
				return box, OutcomeBlocked
			}
		} else {
			next = box.Offset(0, dir)
			if next.Y < 0 {
				return box, OutcomeBlocked
			}
			if next.Bottom() > bounds.Height {
				return box, OutcomeFell
			}
		}

		if outcome := scanNeighborhood(box, next, grid); outcome != OutcomeClear {
			return box, outcome
		}
		box = next
	}
	return box, OutcomeClear
}

// scanNeighborhood tests next against the tiles around the cell of current.
func scanNeighborhood(current, next common.Rect, grid *level.Grid) StepOutcome {
	cx, cy := common.Cell(current.X), common.Cell(current.Y)
	blocked := false
	for x := cx - 1; x <= cx+1; x++ {
		for y := cy - 1; y <= cy+2; y++ {
			if !grid.InBounds(x, y) {
				continue
			}
			t := grid.At(x, y)
			if t.Empty() || !t.Box.Intersects(next) {
				continue
			}
			if t.Dangerous {
				return OutcomeDanger
			}
			if t.Solid {
				blocked = true
			}
		}
	}
	if blocked {
		return OutcomeBlocked
	}
	return OutcomeClear
}

// move resolves displacement d against the world: vertical first, then
// horizontal. Sub-pixel leftovers carry over in p.remainder.
func (p *Player) move(world World, dx, dy float64) {
	grid := world.Tiles()
	w, h := grid.PixelSize()
	bounds := common.Rect{Width: w, Height: h}

	p.moveAxis(AxisY, dy, grid, bounds)
	if p.state == StateDying {
		return
	}
	p.moveAxis(AxisX, dx, grid, bounds)
}

func (p *Player) moveAxis(axis Axis, d float64, grid *level.Grid, bounds common.Rect) {
	rem := &p.remainder.X
	vel := &p.vel.X
	if axis == AxisY {
		rem = &p.remainder.Y
		vel = &p.vel.Y
	}

	// halves round to even: a leftover of exactly +-0.5 takes no step
	*rem += d
	steps := int(math.RoundToEven(*rem))
	*rem -= float64(steps)
	if steps == 0 {
		return
	}

	before := p.Box()
	after, outcome := StepAxis(before, axis, steps, grid, bounds)
	p.pos.X += after.X - before.X
	p.pos.Y += after.Y - before.Y

	switch outcome {
	case OutcomeBlocked:
		*vel = 0
		*rem = 0
	case OutcomeDanger, OutcomeFell:
		p.Kill()
	}
}
