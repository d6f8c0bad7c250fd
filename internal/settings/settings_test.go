package settings_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cardpress/internal/settings"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	s, err := settings.Load(filepath.Join(t.TempDir(), "absent.cfg"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(s.TemplatePaths) != 0 || len(s.ImagePaths) != 0 || len(s.FontPaths) != 0 {
		t.Fatalf("expected empty search paths, got %+v", s)
	}
}

func TestLoadParsesWhitespaceSeparatedLists(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := t.TempDir()
	path := filepath.Join(dir, "settings.cfg")
	content := "[Settings]\n" +
		"template_paths: /srv/templates ~/cards/templates\n" +
		"image_paths = /srv/art\n" +
		"font_paths:\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := settings.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(s.TemplatePaths) != 2 {
		t.Fatalf("unexpected template paths: %v", s.TemplatePaths)
	}
	if s.TemplatePaths[0] != "/srv/templates" {
		t.Fatalf("unexpected first template path: %q", s.TemplatePaths[0])
	}
	if want := filepath.Join(home, "cards", "templates"); s.TemplatePaths[1] != want {
		t.Fatalf("tilde entry = %q, want %q", s.TemplatePaths[1], want)
	}
	if len(s.ImagePaths) != 1 || s.ImagePaths[0] != "/srv/art" {
		t.Fatalf("unexpected image paths: %v", s.ImagePaths)
	}
	if len(s.FontPaths) != 0 {
		t.Fatalf("expected no font paths, got %v", s.FontPaths)
	}
}

func TestCreateSampleRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.cfg")
	if err := settings.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), "[Settings]") {
		t.Fatalf("sample missing Settings section:\n%s", raw)
	}

	if _, err := settings.Load(path); err != nil {
		t.Fatalf("sample settings must load cleanly: %v", err)
	}
}
