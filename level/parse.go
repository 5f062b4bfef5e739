package level

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/sacredfruit/tileset"
)

// Load reads a level file from disk.
func Load(path string, ts *tileset.Tileset) (*Level, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("level: read %s: %w", path, err)
	}
	lvl, err := Parse(bytes.NewReader(b), ts)
	if err != nil {
		return nil, fmt.Errorf("level: %s: %w", path, err)
	}
	lvl.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return lvl, nil
}

// LoadFS reads a level file from an fs.FS (e.g. the embedded levels).
func LoadFS(fsys fs.FS, name string, ts *tileset.Tileset) (*Level, error) {
	if filepath.Ext(name) == "" {
		name += ".lvl"
	}
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("level: read %s: %w", name, err)
	}
	lvl, err := Parse(bytes.NewReader(b), ts)
	if err != nil {
		return nil, fmt.Errorf("level: %s: %w", name, err)
	}
	lvl.Name = strings.TrimSuffix(name, filepath.Ext(name))
	return lvl, nil
}

type line struct {
	num  int
	text string
}

// Parse reads the text level format:
//
//	width height spawnX spawnY
//	<height rows of width tile ids>       main collision layer
//	                                      blank line
//	<height rows of width tile ids>       optional background layer
//	<code> <x> <y> [text...]              point entities, x/y in pixels
//
// A background layer must be set off from the main rows by a blank line;
// otherwise the lines that follow are entities. Other blank lines are
// ignored.
func Parse(r io.Reader, ts *tileset.Tileset) (*Level, error) {
	var lines []line
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		lines = append(lines, line{num: n, text: text})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("empty level file")
	}

	header, err := parseInts(lines[0].text)
	if err != nil || len(header) != 4 {
		return nil, fmt.Errorf("line %d: header must be \"width height spawnX spawnY\"", lines[0].num)
	}
	width, height := header[0], header[1]
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("line %d: invalid level dimensions: %dx%d", lines[0].num, width, height)
	}
	lines = lines[1:]

	if len(lines) < height {
		return nil, fmt.Errorf("expected %d tile rows, found %d lines", height, len(lines))
	}
	rows := make([][]int, height)
	for y := 0; y < height; y++ {
		row, err := parseRow(lines[y], width)
		if err != nil {
			return nil, err
		}
		rows[y] = row
	}
	lastRow := lines[height-1].num
	lines = lines[height:]

	grid, err := NewGrid(rows, ts)
	if err != nil {
		return nil, err
	}

	lvl := &Level{
		Width:   width,
		Height:  height,
		Spawn:   cp.Vector{X: float64(header[2]), Y: float64(header[3])},
		Grid:    grid,
		Tileset: ts,
	}
	pw, ph := lvl.PixelSize()
	if lvl.Spawn.X < 0 || lvl.Spawn.Y < 0 || lvl.Spawn.X >= pw || lvl.Spawn.Y >= ph {
		return nil, fmt.Errorf("spawn (%g, %g) outside level %gx%g px", lvl.Spawn.X, lvl.Spawn.Y, pw, ph)
	}

	if bg, ok := backgroundBlock(lines, lastRow, width, height); ok {
		lvl.Background = bg
		lines = lines[height:]
	}

	for _, l := range lines {
		ent, err := parseEntity(l)
		if err != nil {
			return nil, err
		}
		lvl.Entities = append(lvl.Entities, ent)
	}
	return lvl, nil
}

// backgroundBlock accepts the next height lines as a background layer only if
// a blank line separates them from the main row on line lastRow and every one
// of them is a row of exactly width integers.
func backgroundBlock(lines []line, lastRow, width, height int) ([][]int, bool) {
	if len(lines) < height || lines[0].num <= lastRow+1 {
		return nil, false
	}
	bg := make([][]int, height)
	for y := 0; y < height; y++ {
		row, err := parseRow(lines[y], width)
		if err != nil {
			return nil, false
		}
		bg[y] = row
	}
	return bg, true
}

func parseRow(l line, width int) ([]int, error) {
	row, err := parseInts(l.text)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", l.num, err)
	}
	if len(row) != width {
		return nil, fmt.Errorf("line %d: row has %d tiles, want %d", l.num, len(row), width)
	}
	for _, v := range row {
		if v < 0 {
			return nil, fmt.Errorf("line %d: negative tile id %d", l.num, v)
		}
	}
	return row, nil
}

func parseEntity(l line) (EntitySpawn, error) {
	fields := strings.Fields(l.text)
	if len(fields) < 3 {
		return EntitySpawn{}, fmt.Errorf("line %d: entity needs \"<code> <x> <y> [text]\"", l.num)
	}
	vals, err := parseInts(strings.Join(fields[:3], " "))
	if err != nil {
		return EntitySpawn{}, fmt.Errorf("line %d: %w", l.num, err)
	}
	kind := EntityKind(vals[0])
	switch kind {
	case EntityTutorialArrow, EntitySacredFruit:
	default:
		return EntitySpawn{}, fmt.Errorf("line %d: unknown entity code %d", l.num, vals[0])
	}

	text := l.text
	for i := 0; i < 3; i++ {
		text = strings.TrimSpace(text)
		text = text[len(fields[i]):]
	}
	return EntitySpawn{
		Kind: kind,
		Pos:  cp.Vector{X: float64(vals[1]), Y: float64(vals[2])},
		Text: strings.TrimSpace(text),
	}, nil
}

func parseInts(s string) ([]int, error) {
	fields := strings.Fields(s)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", f, err)
		}
		out = append(out, v)
	}
	return out, nil
}
