package level

import (
	"strings"
	"testing"

	"github.com/milk9111/sacredfruit/common"
	"github.com/milk9111/sacredfruit/prefabs"
	"github.com/milk9111/sacredfruit/tileset"
)

func testTileset(t *testing.T) *tileset.Tileset {
	t.Helper()
	ts, err := tileset.FromSpec(&prefabs.TilesetSpec{
		Name:      "test",
		Solid:     []int{1, 3, 4},
		Dangerous: []int{2},
		Leaves:    []int{3},
		Branches:  []int{4},
		Insets: map[string]prefabs.InsetSpec{
			"leaves":    {Top: 2, Right: 2, Bottom: 2, Left: 2},
			"branches":  {Bottom: 10},
			"dangerous": {Top: 8},
		},
	})
	if err != nil {
		t.Fatalf("tileset: %v", err)
	}
	return ts
}

const sampleLevel = `5 3 16 0
0 0 0 0 0
0 0 2 0 3
1 1 1 4 1

9 9 9 9 9
9 9 9 9 9
9 9 9 9 9
1 32 16 Press space to jump
2 64 0
`

func TestParse(t *testing.T) {
	lvl, err := Parse(strings.NewReader(sampleLevel), testTileset(t))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if w, h := lvl.Size(); w != 5 || h != 3 {
		t.Fatalf("size = %dx%d, want 5x3", w, h)
	}
	if sp := lvl.SpawnPosition(); sp.X != 16 || sp.Y != 0 {
		t.Fatalf("spawn = %v", sp)
	}
	if lvl.Background == nil || lvl.BackgroundAt(4, 2) != 9 {
		t.Fatalf("expected background layer of 9s, got %v", lvl.Background)
	}
	if len(lvl.Entities) != 2 {
		t.Fatalf("expected 2 entities, got %d", len(lvl.Entities))
	}
	arrow := lvl.Entities[0]
	if arrow.Kind != EntityTutorialArrow || arrow.Pos.X != 32 || arrow.Pos.Y != 16 || arrow.Text != "Press space to jump" {
		t.Fatalf("unexpected arrow %+v", arrow)
	}
	if fruit := lvl.Entities[1]; fruit.Kind != EntitySacredFruit || fruit.Text != "" {
		t.Fatalf("unexpected fruit %+v", fruit)
	}

	g := lvl.Tiles()
	// column-major: row 1 column 2 is the dangerous tile
	if tile := g.At(2, 1); !tile.Dangerous || tile.Solid || tile.X != 2 || tile.Y != 1 {
		t.Fatalf("tile (2,1) = %+v", tile)
	}
	if tile := g.At(3, 2); !tile.Solid || tile.Shape != tileset.ShapeBranches {
		t.Fatalf("tile (3,2) = %+v", tile)
	}
}

func TestParseWithoutBackground(t *testing.T) {
	src := "3 2 0 0\n0 0 0\n1 1 1\n2 16 0\n"
	lvl, err := Parse(strings.NewReader(src), testTileset(t))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if lvl.Background != nil {
		t.Fatalf("expected no background, got %v", lvl.Background)
	}
	if len(lvl.Entities) != 1 || lvl.Entities[0].Kind != EntitySacredFruit {
		t.Fatalf("entities = %+v", lvl.Entities)
	}
}

func TestParseEntitiesShapedLikeRows(t *testing.T) {
	// three entity lines in a width-3, height-3 level look like a background
	// block unless a blank line introduces one
	src := "3 3 0 0\n0 0 0\n0 0 0\n1 1 1\n1 16 0\n2 32 0\n1 0 16\n"
	lvl, err := Parse(strings.NewReader(src), testTileset(t))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if lvl.Background != nil {
		t.Fatalf("entity lines read as background: %v", lvl.Background)
	}
	want := []EntityKind{EntityTutorialArrow, EntitySacredFruit, EntityTutorialArrow}
	if len(lvl.Entities) != len(want) {
		t.Fatalf("expected %d entities, got %+v", len(want), lvl.Entities)
	}
	for i, k := range want {
		if lvl.Entities[i].Kind != k {
			t.Fatalf("entity %d kind %v, want %v", i, lvl.Entities[i].Kind, k)
		}
	}
	if e := lvl.Entities[1]; e.Pos.X != 32 || e.Pos.Y != 0 {
		t.Fatalf("fruit at %v, want (32, 0)", e.Pos)
	}

	withBackground := "3 3 0 0\n0 0 0\n0 0 0\n1 1 1\n\n1 16 0\n2 32 0\n1 0 16\n"
	lvl, err = Parse(strings.NewReader(withBackground), testTileset(t))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if lvl.Background == nil || lvl.BackgroundAt(1, 1) != 32 || len(lvl.Entities) != 0 {
		t.Fatalf("blank-separated block should be the background, got bg %v entities %+v", lvl.Background, lvl.Entities)
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"empty", ""},
		{"short_header", "3 2 0\n0 0 0\n0 0 0\n"},
		{"zero_width", "0 2 0 0\n"},
		{"missing_rows", "3 2 0 0\n0 0 0\n"},
		{"wide_row", "3 2 0 0\n0 0 0 0\n0 0 0\n"},
		{"bad_number", "3 2 0 0\n0 x 0\n0 0 0\n"},
		{"negative_tile", "3 2 0 0\n0 -1 0\n0 0 0\n"},
		{"spawn_outside", "3 2 48 0\n0 0 0\n0 0 0\n"},
		{"unknown_entity", "3 2 0 0\n0 0 0\n0 0 0\n7 0 0\n"},
		{"short_entity", "3 2 0 0\n0 0 0\n0 0 0\n1 0\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(c.src), testTileset(t)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestGridBounds(t *testing.T) {
	g, err := NewGrid([][]int{{0, 0, 0}, {1, 1, 1}}, testTileset(t))
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{2, 1, true},
		{3, 1, false}, // x == width
		{2, 2, false}, // y == height
		{-1, 0, false},
		{0, -1, false},
	}
	for _, c := range cases {
		if got := g.InBounds(c.x, c.y); got != c.want {
			t.Fatalf("InBounds(%d, %d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestTileBoxes(t *testing.T) {
	ts := testTileset(t)
	ts16 := float64(common.TileSize)
	cases := []struct {
		name string
		typ  int
		want common.Rect
	}{
		{"full", 1, common.Rect{X: 2 * ts16, Y: ts16, Width: ts16, Height: ts16}},
		{"dangerous_inset_top", 2, common.Rect{X: 2 * ts16, Y: ts16 + 8, Width: ts16, Height: ts16 - 8}},
		{"leaves_inset_all", 3, common.Rect{X: 2*ts16 + 2, Y: ts16 + 2, Width: ts16 - 4, Height: ts16 - 4}},
		{"branches_inset_bottom", 4, common.Rect{X: 2 * ts16, Y: ts16, Width: ts16, Height: ts16 - 10}},
		{"unknown_full", 42, common.Rect{X: 2 * ts16, Y: ts16, Width: ts16, Height: ts16}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := NewTile(2, 1, c.typ, ts).Box; got != c.want {
				t.Fatalf("box = %+v, want %+v", got, c.want)
			}
		})
	}
}
