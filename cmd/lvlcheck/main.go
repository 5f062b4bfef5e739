// Command lvlcheck validates level files without opening a window. It
// parses each level, checks the spawn and entity placement, and lets an
// idle player drop from the spawn to make sure they land alive.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/milk9111/sacredfruit/common"
	"github.com/milk9111/sacredfruit/input"
	"github.com/milk9111/sacredfruit/level"
	"github.com/milk9111/sacredfruit/levels"
	"github.com/milk9111/sacredfruit/prefabs"
	"github.com/milk9111/sacredfruit/session"
	"github.com/milk9111/sacredfruit/tileset"
)

const tickDT = 1.0 / 60

type report struct {
	name      string
	width     int
	height    int
	solid     int
	dangerous int
	entities  int
	// landedAfter is the tick the idle player first stood on ground, or -1.
	landedAfter int
	problems    []string
}

func (r *report) fail(format string, args ...any) {
	r.problems = append(r.problems, fmt.Sprintf(format, args...))
}

func main() {
	tilesetName := flag.String("tileset", "forest", "tileset prefab name")
	prefabDir := flag.String("prefabs", "prefabs", "directory checked for prefabs before the embedded copies")
	maxTicks := flag.Int("ticks", 600, "ticks an idle player gets to land after spawning")
	flag.Parse()

	prefabs.SetDiskDir(*prefabDir)
	ts, err := tileset.Load(*tilesetName)
	if err != nil {
		log.Fatalf("tileset %s: %v", *tilesetName, err)
	}

	names := flag.Args()
	if len(names) == 0 {
		names, err = levels.Names()
		if err != nil {
			log.Fatalf("list embedded levels: %v", err)
		}
	}

	failed := false
	for _, name := range names {
		r, err := check(name, ts, *maxTicks)
		if err != nil {
			log.Printf("%s: %v", name, err)
			failed = true
			continue
		}
		fmt.Printf("%s: %dx%d tiles, %d solid, %d dangerous, %d entities, landed after %d ticks\n",
			r.name, r.width, r.height, r.solid, r.dangerous, r.entities, r.landedAfter)
		for _, p := range r.problems {
			fmt.Printf("  %s\n", p)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func check(name string, ts *tileset.Tileset, maxTicks int) (*report, error) {
	s, err := session.Load(name, ts)
	if err != nil {
		return nil, err
	}
	return inspect(s, maxTicks), nil
}

// inspect reports on the freshly loaded session s and then simulates it.
func inspect(s *session.Session, maxTicks int) *report {
	lvl := s.Level
	grid := lvl.Tiles()
	r := &report{
		name:        lvl.Name,
		width:       lvl.Width,
		height:      lvl.Height,
		solid:       grid.Count(func(t level.Tile) bool { return t.Solid }),
		dangerous:   grid.Count(func(t level.Tile) bool { return t.Dangerous }),
		entities:    len(lvl.Entities),
		landedAfter: -1,
	}

	if t, ok := overlappingTile(grid, s.Player.Box()); ok {
		r.fail("spawn box %+v overlaps tile %d at (%d, %d)", s.Player.Box(), t.Type, t.X, t.Y)
	}

	pw, ph := lvl.PixelSize()
	world := common.Rect{Width: pw, Height: ph}
	for _, e := range s.Entities.Entities() {
		if !world.Contains(e.Box()) {
			r.fail("%s at (%g, %g) lies outside the level", e.Name, e.Pos.X, e.Pos.Y)
		}
	}

	idle := input.NewSnapshot()
	for tick := 1; tick <= maxTicks; tick++ {
		s.Tick(tickDT, idle)
		if s.Player.IsDead() {
			r.fail("idle player died %d ticks after spawning", tick)
			return r
		}
		if s.Player.Grounded() {
			r.landedAfter = tick
			return r
		}
	}
	r.fail("idle player still airborne after %d ticks", maxTicks)
	return r
}

// overlappingTile returns a blocking or dangerous tile whose box overlaps box.
func overlappingTile(grid *level.Grid, box common.Rect) (level.Tile, bool) {
	for x := common.Cell(box.X); x <= common.Cell(box.Right()); x++ {
		for y := common.Cell(box.Y); y <= common.Cell(box.Bottom()); y++ {
			if !grid.InBounds(x, y) {
				continue
			}
			t := grid.At(x, y)
			if t.Empty() {
				continue
			}
			if t.Box.Intersects(box) {
				return t, true
			}
		}
	}
	return level.Tile{}, false
}
