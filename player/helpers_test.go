package player

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/sacredfruit/common"
	"github.com/milk9111/sacredfruit/input"
	"github.com/milk9111/sacredfruit/level"
	"github.com/milk9111/sacredfruit/prefabs"
	"github.com/milk9111/sacredfruit/tileset"
)

// Tile ids used by the ASCII test levels.
const (
	tileEmpty  = 0
	tileSolid  = 1
	tileSpike  = 2
	tileHazard = 3 // solid and dangerous
)

// newTestLevel builds a level from ASCII rows: '#' solid, '^' spike,
// 'X' solid spike, anything else empty.
func newTestLevel(t *testing.T, spawn cp.Vector, rows ...string) *level.Level {
	t.Helper()
	ts, err := tileset.FromSpec(&prefabs.TilesetSpec{
		Name:      "test",
		Solid:     []int{tileSolid, tileHazard},
		Dangerous: []int{tileSpike, tileHazard},
	})
	if err != nil {
		t.Fatalf("tileset: %v", err)
	}

	ids := make([][]int, len(rows))
	for y, row := range rows {
		ids[y] = make([]int, len(row))
		for x, ch := range row {
			switch ch {
			case '#':
				ids[y][x] = tileSolid
			case '^':
				ids[y][x] = tileSpike
			case 'X':
				ids[y][x] = tileHazard
			default:
				ids[y][x] = tileEmpty
			}
		}
	}
	grid, err := level.NewGrid(ids, ts)
	if err != nil {
		t.Fatalf("grid: %v", err)
	}
	return &level.Level{
		Name:    t.Name(),
		Width:   grid.Width(),
		Height:  grid.Height(),
		Spawn:   spawn,
		Grid:    grid,
		Tileset: ts,
	}
}

// standingAt returns the sprite position that puts the default hitbox on top
// of floor row, with its left edge at pixel x.
func standingAt(x float64, row int) cp.Vector {
	h := DefaultTuning().Hitbox
	return cp.Vector{X: x - h.X, Y: float64(row*common.TileSize) - h.Height - h.Y}
}

// tick advances p once and clears the frame's transitions.
func tick(p *Player, dt float64, in *input.Snapshot, world World) {
	p.Advance(dt, in, world)
	in.Clear()
}

// settleOnGround runs idle ticks until p is grounded.
func settleOnGround(t *testing.T, p *Player, world World) {
	t.Helper()
	in := input.NewSnapshot()
	for i := 0; i < 240; i++ {
		tick(p, 1.0/60, in, world)
		if p.State() == StateGrounded && p.Velocity().X == 0 {
			return
		}
	}
	t.Fatalf("player never settled: state %s grounded %v vel %v", p.State(), p.Grounded(), p.Velocity())
}

func overlapsSolid(grid *level.Grid, box common.Rect) (level.Tile, bool) {
	for x := 0; x < grid.Width(); x++ {
		for y := 0; y < grid.Height(); y++ {
			tile := grid.At(x, y)
			if tile.Solid && tile.Box.Intersects(box) {
				return tile, true
			}
		}
	}
	return level.Tile{}, false
}
