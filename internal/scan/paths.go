package scan

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ExpandPaths replaces each directory in paths with the PGN archives it
// contains, sorted by name. Files are kept as given, whatever their name.
func ExpandPaths(paths []string) ([]string, error) {
	var out []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			// Missing files fail later, in order, when opened.
			out = append(out, path)
			continue
		}

		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, err
		}
		var files []string
		for _, e := range entries {
			if !e.IsDir() && isPGNFile(e.Name()) {
				files = append(files, e.Name())
			}
		}
		sort.Strings(files)
		for _, name := range files {
			out = append(out, filepath.Join(path, name))
		}
	}
	return out, nil
}

func isPGNFile(name string) bool {
	for _, ext := range []string{".zst", ".gz"} {
		if strings.HasSuffix(name, ext) {
			name = strings.TrimSuffix(name, ext)
			break
		}
	}
	return filepath.Ext(name) == ".pgn"
}
