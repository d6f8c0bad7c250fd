package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpand(t *testing.T) {
	tests := []struct {
		name string
		base string
		ref  string
		want string
	}{
		{"relative", "/cards/templates", "item.cfg", "/cards/templates/item.cfg"},
		{"nested relative", "/cards", "art/fork.png", "/cards/art/fork.png"},
		{"absolute unchanged", "/cards", "/usr/share/art/fork.png", "/usr/share/art/fork.png"},
		{"empty", "/cards", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Expand(tt.base, tt.ref); got != tt.want {
				t.Fatalf("Expand(%q, %q) = %q, want %q", tt.base, tt.ref, got, tt.want)
			}
		})
	}
}

func TestExpandDoesNotRequireExistence(t *testing.T) {
	got := Expand(t.TempDir(), "missing/nowhere.png")
	if got == "" || !filepath.IsAbs(got) {
		t.Fatalf("expected joined path for missing file, got %q", got)
	}
}

func TestSearchFindsFirstHit(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	if err := os.WriteFile(filepath.Join(second, "face.ttf"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Search("face.ttf", []string{first, second})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if want := filepath.Join(second, "face.ttf"); got != want {
		t.Fatalf("Search = %q, want %q", got, want)
	}
}

func TestSearchPrefersEarlierDirectories(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	for _, dir := range []string{first, second} {
		if err := os.WriteFile(filepath.Join(dir, "bg.png"), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	got, err := Search("bg.png", []string{first, second})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if want := filepath.Join(first, "bg.png"); got != want {
		t.Fatalf("Search = %q, want %q", got, want)
	}
}

func TestSearchAbsoluteUnchanged(t *testing.T) {
	got, err := Search("/nonexistent/abs.png", []string{t.TempDir()})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if got != "/nonexistent/abs.png" {
		t.Fatalf("Search = %q, want absolute input unchanged", got)
	}
}

func TestSearchSkipsRelativeAndMissingDirs(t *testing.T) {
	real := t.TempDir()
	if err := os.WriteFile(filepath.Join(real, "a.png"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Search("a.png", []string{"relative/dir", "/definitely/not/there", real})
	if err != nil {
		t.Fatalf("Search returned error: %v", err)
	}
	if want := filepath.Join(real, "a.png"); got != want {
		t.Fatalf("Search = %q, want %q", got, want)
	}
}

func TestSearchNotFound(t *testing.T) {
	if _, err := Search("ghost.png", []string{t.TempDir()}); err == nil {
		t.Fatal("expected error for unresolvable file")
	}
}

func TestResolvePrefersBaseDirectory(t *testing.T) {
	base := t.TempDir()
	search := t.TempDir()
	for _, dir := range []string{base, search} {
		if err := os.WriteFile(filepath.Join(dir, "bg.png"), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	got := Resolve("bg.png", base, []string{search})
	if want := filepath.Join(base, "bg.png"); got != want {
		t.Fatalf("Resolve = %q, want %q", got, want)
	}
}

func TestResolveFallsBackToSearchPaths(t *testing.T) {
	base := t.TempDir()
	search := t.TempDir()
	if err := os.WriteFile(filepath.Join(search, "face.ttf"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	got := Resolve("face.ttf", base, []string{search})
	if want := filepath.Join(search, "face.ttf"); got != want {
		t.Fatalf("Resolve = %q, want %q", got, want)
	}
}

func TestResolveMissingFileJoinsBase(t *testing.T) {
	base := t.TempDir()

	got := Resolve("nowhere.png", base, []string{t.TempDir()})
	if want := filepath.Join(base, "nowhere.png"); got != want {
		t.Fatalf("Resolve = %q, want %q", got, want)
	}
}

func TestResolveAbsoluteUnchanged(t *testing.T) {
	if got := Resolve("/abs/card.png", t.TempDir(), nil); got != "/abs/card.png" {
		t.Fatalf("Resolve = %q, want absolute input unchanged", got)
	}
}

func TestIsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !IsFile(path) {
		t.Fatalf("expected %q to be a file", path)
	}
	if IsFile(dir) {
		t.Fatal("directory must not count as a file")
	}
	if IsFile(filepath.Join(dir, "missing")) {
		t.Fatal("missing path must not count as a file")
	}
}

func TestExpandUser(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandUser("~/fonts")
	if err != nil {
		t.Fatalf("ExpandUser returned error: %v", err)
	}
	if want := filepath.Join(home, "fonts"); got != want {
		t.Fatalf("ExpandUser = %q, want %q", got, want)
	}

	if got, err := ExpandUser(""); err != nil || got != "" {
		t.Fatalf("ExpandUser(\"\") = %q, %v", got, err)
	}
}
