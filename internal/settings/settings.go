// Package settings loads the process-wide search-path configuration from the
// user profile. The settings file is optional; a missing file yields empty
// search paths. Settings are loaded once at startup and passed explicitly
// into the components that need them, never read as ambient state.
package settings

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"

	"cardpress/internal/carderr"
	"cardpress/internal/fileutil"
)

//go:embed sample_settings.cfg
var sampleSettings string

// Settings holds the ordered directory lists consulted when a relative
// template, image, or font reference cannot be found next to the config file
// that declared it.
type Settings struct {
	TemplatePaths []string
	ImagePaths    []string
	FontPaths     []string
}

// Default returns settings with no configured search paths.
func Default() *Settings {
	return &Settings{}
}

// DefaultPath returns the fixed per-user settings file location.
func DefaultPath() (string, error) {
	return fileutil.ExpandUser("~/.config/cardpress/settings.cfg")
}

// Load reads the settings file at path. A missing file is not an error; the
// defaults are returned. A present but unparsable file is a config error.
func Load(path string) (*Settings, error) {
	if !fileutil.IsFile(path) {
		return Default(), nil
	}

	file, err := ini.Load(path)
	if err != nil {
		return nil, carderr.Wrap(carderr.ErrConfig, fmt.Sprintf("parse settings %s", path), err)
	}

	sec := file.Section("Settings")
	s := &Settings{}
	if s.TemplatePaths, err = splitPaths(sec.Key("template_paths").String()); err != nil {
		return nil, carderr.Wrap(carderr.ErrConfig, "settings 'template_paths'", err)
	}
	if s.ImagePaths, err = splitPaths(sec.Key("image_paths").String()); err != nil {
		return nil, carderr.Wrap(carderr.ErrConfig, "settings 'image_paths'", err)
	}
	if s.FontPaths, err = splitPaths(sec.Key("font_paths").String()); err != nil {
		return nil, carderr.Wrap(carderr.ErrConfig, "settings 'font_paths'", err)
	}
	return s, nil
}

func splitPaths(raw string) ([]string, error) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return nil, nil
	}
	out := make([]string, 0, len(fields))
	for _, entry := range fields {
		expanded, err := fileutil.ExpandUser(entry)
		if err != nil {
			return nil, err
		}
		out = append(out, expanded)
	}
	return out, nil
}

// CreateSample writes a commented sample settings file to path, creating
// parent directories as needed.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create settings directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleSettings), 0o644); err != nil {
		return fmt.Errorf("write sample settings: %w", err)
	}
	return nil
}
