package levels

import (
	"embed"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/milk9111/sacredfruit/level"
	"github.com/milk9111/sacredfruit/tileset"
)

//go:embed *.lvl
var LevelsFS embed.FS

// Names lists the embedded levels in play order, without extension.
func Names() ([]string, error) {
	entries, err := fs.ReadDir(LevelsFS, ".")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".lvl" {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".lvl"))
	}
	sort.Strings(names)
	return names, nil
}

// Next returns the level after name, or "" when name is the last one.
func Next(name string) string {
	names, err := Names()
	if err != nil {
		return ""
	}
	for i, n := range names {
		if n == name && i+1 < len(names) {
			return names[i+1]
		}
	}
	return ""
}

// Load reads name from disk when it is an existing file path and from the
// embedded levels otherwise.
func Load(name string, ts *tileset.Tileset) (*level.Level, error) {
	if filepath.Ext(name) == ".lvl" || strings.ContainsAny(name, `/\`) {
		if st, err := os.Stat(name); err == nil && !st.IsDir() {
			return level.Load(name, ts)
		}
	}
	base := strings.TrimSuffix(path.Base(filepath.ToSlash(name)), ".lvl")
	return level.LoadFS(LevelsFS, base, ts)
}
