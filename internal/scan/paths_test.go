package scan

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestIsPGNFile(t *testing.T) {
	tests := map[string]bool{
		"games.pgn":     true,
		"games.pgn.zst": true,
		"games.pgn.gz":  true,
		"games.zst":     false,
		"notes.txt":     false,
		"pgn":           false,
	}
	for name, want := range tests {
		if got := isPGNFile(name); got != want {
			t.Errorf("isPGNFile(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestExpandPaths(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.pgn.zst", "a.pgn", "readme.md", "c.pgn.gz"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.pgn"), 0755); err != nil {
		t.Fatal(err)
	}

	got, err := ExpandPaths([]string{"explicit.txt", dir, "missing.pgn"})
	if err != nil {
		t.Fatalf("ExpandPaths: %v", err)
	}
	want := []string{
		"explicit.txt",
		filepath.Join(dir, "a.pgn"),
		filepath.Join(dir, "b.pgn.zst"),
		filepath.Join(dir, "c.pgn.gz"),
		"missing.pgn",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExpandPaths() = %v, want %v", got, want)
	}
}
