package prefabs

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultScene is the scene prefab used when no file is given.
const DefaultScene = "scene.yaml"

//go:embed *.yaml
var PrefabsFS embed.FS

// Load reads a prefab, preferring an edited copy under prefabs/ on disk
// over the embedded one.
func Load(name string) ([]byte, error) {
	clean := cleanPrefabPath(name)
	if data, err := os.ReadFile(diskPrefabPath(clean)); err == nil {
		return data, nil
	}
	return PrefabsFS.ReadFile(clean)
}

func ModTime(name string) (time.Time, bool) {
	clean := cleanPrefabPath(name)
	info, err := os.Stat(diskPrefabPath(clean))
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

// DiskPath returns where Load looks on disk for name.
func DiskPath(name string) string {
	return diskPrefabPath(cleanPrefabPath(name))
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
	return filepath.Join("prefabs", filepath.FromSlash(clean))
}
