package config

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"unicode"

	"gopkg.in/ini.v1"

	"cardpress/internal/carderr"
	"cardpress/internal/fileutil"
	"cardpress/internal/logging"
	"cardpress/internal/settings"
)

//go:embed example.cfg
var exampleConfig string

// maxTemplateDepth bounds template recursion so a chain that loops back on
// itself fails instead of hanging the loader.
const maxTemplateDepth = 100

// Example returns the commented example card config.
func Example() string {
	return exampleConfig
}

// Store accumulates card configuration across a template chain. A fresh
// store holds the section skeleton from the example config; each Load
// overlays one file and its templates on top.
type Store struct {
	settings *settings.Settings
	logger   *slog.Logger
	file     *ini.File
}

// NewStore returns an empty store. A nil settings value means no search
// paths; a nil logger silences load diagnostics.
func NewStore(s *settings.Settings, logger *slog.Logger) *Store {
	if s == nil {
		s = settings.Default()
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Store{settings: s, logger: logger, file: mustParse(exampleConfig)}
}

func mustParse(src string) *ini.File {
	file, err := ini.LoadSources(loadOptions(), []byte(src))
	if err != nil {
		panic(fmt.Sprintf("config: embedded example config is invalid: %v", err))
	}
	return file
}

// loadOptions keeps the parser aligned with how card configs are written:
// keys fold to lower case, and a "#" inside a value is text, not a comment.
func loadOptions() ini.LoadOptions {
	return ini.LoadOptions{
		InsensitiveKeys:     true,
		IgnoreInlineComment: true,
	}
}

// Load reads the card config at path and merges it over whatever the store
// already holds. Template chains are followed depth-first, so values in the
// loaded file win over its template, which wins over its own template, and
// so on down the chain.
func (s *Store) Load(path string) error {
	return s.load(path, 0)
}

func (s *Store) load(path string, depth int) error {
	if depth >= maxTemplateDepth {
		return carderr.Wrapf(carderr.ErrConfig, "too many templates")
	}
	s.logger.Log(context.Background(), logging.LevelVerbose, "load config", logging.String("path", path))

	resolved, err := filepath.Abs(path)
	if err != nil {
		return carderr.Wrap(carderr.ErrFile, fmt.Sprintf("resolve config path %s", path), err)
	}
	if !fileutil.IsFile(resolved) {
		return carderr.Wrapf(carderr.ErrFile, "file not found: %s", path)
	}

	file, err := ini.LoadSources(loadOptions(), resolved)
	if err != nil {
		return carderr.Wrap(carderr.ErrConfig, fmt.Sprintf("parse config %s", path), err)
	}
	if _, err := file.GetSection("Card"); err != nil {
		return carderr.Wrapf(carderr.ErrConfig, "missing config section 'Card'")
	}

	s.expandPaths(file, filepath.Dir(resolved))

	if template := file.Section("Card").Key("template").String(); template != "" {
		s.logger.Log(context.Background(), logging.LevelVerbose, "using template", logging.String("path", template))
		if err := s.load(template, depth+1); err != nil {
			return err
		}
	}

	merge(s.file, file)
	return nil
}

// expandPaths rewrites the relative file references declared in file against
// its own directory, with the settings search paths as fallback. Values are
// not checked for existence here; a bad reference fails when opened.
func (s *Store) expandPaths(file *ini.File, baseDir string) {
	expand := func(sec *ini.Section, key string, dirs []string) {
		if !sec.HasKey(key) {
			return
		}
		k := sec.Key(key)
		if v := k.String(); v != "" {
			k.SetValue(fileutil.Resolve(v, baseDir, dirs))
		}
	}

	card := file.Section("Card")
	expand(card, "template", s.settings.TemplatePaths)
	expand(card, "background", nil)
	expand(card, "backside", nil)
	for _, key := range card.KeyStrings() {
		if strings.HasPrefix(key, "image") {
			expand(card, key, s.settings.ImagePaths)
		}
	}

	for _, sec := range file.Sections() {
		name := sec.Name()
		if !strings.HasPrefix(name, "Title") && !strings.HasPrefix(name, "Text") {
			continue
		}
		if sec.HasKey("font") && isFontFile(sec.Key("font").String()) {
			expand(sec, "font", s.settings.FontPaths)
		}
	}
}

// isFontFile reports whether ref names a font file rather than a font
// family. Family names stay untouched for the font loader to resolve.
func isFontFile(ref string) bool {
	switch strings.ToLower(filepath.Ext(ref)) {
	case ".ttf", ".otf":
		return true
	}
	return false
}

func merge(dst, src *ini.File) {
	for _, sec := range src.Sections() {
		target := dst.Section(sec.Name())
		for _, key := range sec.KeyStrings() {
			target.Key(key).SetValue(sec.Key(key).String())
		}
	}
}

// Section returns a view over the named section. Absent sections are a
// config error; the DEFAULT section always resolves.
func (s *Store) Section(name string) (*Section, error) {
	sec, err := s.file.GetSection(name)
	if err != nil {
		return nil, carderr.Wrapf(carderr.ErrConfig, "missing config section '%s'", name)
	}
	return &Section{name: name, section: sec, defaults: s.file.Section(ini.DefaultSection)}, nil
}

// SectionFor returns the section configuring the given Card field key. The
// section name is the capitalized key: first letter upper, the rest lower,
// so "text2" and "TEXT2" both map to "Text2".
func (s *Store) SectionFor(fieldKey string) (*Section, error) {
	return s.Section(capitalize(fieldKey))
}

func capitalize(key string) string {
	if key == "" {
		return key
	}
	runes := []rune(strings.ToLower(key))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// String renders the merged configuration in INI form. Parsing the output
// again yields the same sections and key/value pairs.
func (s *Store) String() string {
	var buf bytes.Buffer
	if _, err := s.file.WriteTo(&buf); err != nil {
		return ""
	}
	return buf.String()
}
