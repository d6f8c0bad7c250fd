// Package testsupport provides the fixtures the package tests share:
// card config files and deterministic PNG images in temp directories.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteConfig writes a card config file under dir and returns its path.
func WriteConfig(t testing.TB, dir, name, body string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
