package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml scripts/*.tengo
var PrefabsFS embed.FS

// diskDir is checked before the embedded copies so tuning can be edited
// without rebuilding.
var diskDir = "prefabs"

// SetDiskDir changes the directory searched before the embedded prefabs. An
// empty dir disables the disk lookup.
func SetDiskDir(dir string) {
	diskDir = dir
}

// DiskDir returns the directory searched before the embedded prefabs.
func DiskDir() string {
	return diskDir
}

func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if diskDir != "" {
		if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
			return data, nil
		}
	}
	return PrefabsFS.ReadFile(clean)
}

func LoadScript(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if !strings.HasPrefix(clean, "scripts/") {
		clean = "scripts/" + clean
	}
	return Load(clean)
}

func cleanPrefabPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "prefabs/"); ok {
		return after
	}
	return s
}

func diskPrefabPath(clean string) string {
	return filepath.Join(diskDir, filepath.FromSlash(clean))
}
