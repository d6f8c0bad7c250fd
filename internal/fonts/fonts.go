// Package fonts resolves the font references found in card configs into
// drawable faces. A reference may be a font file path, a family name looked
// up in the configured and system font directories, or empty for the bundled
// default face. Parsed outlines and derived faces are cached, so repeated
// fields reuse the same face.
package fonts

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"cardpress/internal/carderr"
	"cardpress/internal/fileutil"
	"cardpress/internal/logging"
)

var fontExtensions = map[string]bool{
	".ttf": true,
	".otf": true,
}

// Loader parses and caches fonts.
type Loader struct {
	searchDirs []string
	logger     *slog.Logger

	mu     sync.Mutex
	parsed map[string]*opentype.Font
	faces  map[faceKey]font.Face

	indexOnce sync.Once
	index     map[string]string
}

type faceKey struct {
	path string
	size float64
	dpi  float64
}

// NewLoader returns a loader that resolves file references and family names
// against searchDirs before falling back to the system font directories.
func NewLoader(searchDirs []string, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Loader{
		searchDirs: searchDirs,
		logger:     logger,
		parsed:     make(map[string]*opentype.Font),
		faces:      make(map[faceKey]font.Face),
	}
}

// Face returns a font face for ref at sizePt points rendered at dpi.
// File references that cannot be found are an error; unknown family names
// fall back to the bundled default face.
func (l *Loader) Face(ref string, sizePt, dpi float64) (font.Face, error) {
	if sizePt <= 0 {
		return nil, carderr.Wrapf(carderr.ErrCard, "font size must be positive, got %g", sizePt)
	}
	if dpi <= 0 {
		dpi = 72
	}
	path, err := l.resolve(strings.TrimSpace(ref))
	if err != nil {
		return nil, err
	}
	return l.face(path, sizePt, dpi)
}

// resolve maps a reference to a font file path. The empty path selects the
// bundled default.
func (l *Loader) resolve(ref string) (string, error) {
	if ref == "" {
		return "", nil
	}
	if looksLikeFile(ref) {
		if fileutil.IsFile(ref) {
			return ref, nil
		}
		if hit, err := fileutil.Search(ref, l.searchDirs); err == nil {
			return hit, nil
		}
		return "", carderr.Wrapf(carderr.ErrFile, "file not found: %s", ref)
	}
	if path, ok := l.lookup(ref); ok {
		return path, nil
	}
	l.logger.Debug("font family not found, using bundled default", logging.String("font", ref))
	return "", nil
}

func looksLikeFile(ref string) bool {
	if strings.ContainsRune(ref, os.PathSeparator) {
		return true
	}
	return fontExtensions[strings.ToLower(filepath.Ext(ref))]
}

func (l *Loader) face(path string, sizePt, dpi float64) (font.Face, error) {
	key := faceKey{path: path, size: sizePt, dpi: dpi}

	l.mu.Lock()
	defer l.mu.Unlock()
	if face, ok := l.faces[key]; ok {
		return face, nil
	}
	parsed, err := l.parsedLocked(path)
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    sizePt,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, carderr.Wrap(carderr.ErrCard, "failed to build font face", err)
	}
	l.faces[key] = face
	return face, nil
}

func (l *Loader) parsedLocked(path string) (*opentype.Font, error) {
	if parsed, ok := l.parsed[path]; ok {
		return parsed, nil
	}
	data := goregular.TTF
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, carderr.Wrapf(carderr.ErrFile, "file not found: %s", path)
		}
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, carderr.Wrap(carderr.ErrCard, "failed to parse font "+displayPath(path), err)
	}
	l.parsed[path] = parsed
	return parsed, nil
}

func displayPath(path string) string {
	if path == "" {
		return "builtin"
	}
	return path
}

// lookup finds a font file whose name matches the family name. Matching is
// case insensitive and ignores spaces, hyphens, and underscores; a bare
// family name also matches its Regular cut.
func (l *Loader) lookup(name string) (string, bool) {
	l.indexOnce.Do(l.buildIndex)
	norm := normalizeName(name)
	if norm == "" {
		return "", false
	}
	if path, ok := l.index[norm]; ok {
		return path, true
	}
	if path, ok := l.index[norm+"regular"]; ok {
		return path, true
	}
	var matches []string
	for key := range l.index {
		if strings.HasPrefix(key, norm) {
			matches = append(matches, key)
		}
	}
	if len(matches) == 0 {
		return "", false
	}
	sort.Strings(matches)
	return l.index[matches[0]], true
}

func (l *Loader) buildIndex() {
	l.index = make(map[string]string)
	dirs := append([]string{}, l.searchDirs...)
	dirs = append(dirs, systemFontDirs()...)
	for _, dir := range dirs {
		l.indexDir(dir)
	}
	l.logger.Debug("indexed font directories",
		logging.Int("dirs", len(dirs)),
		logging.Int("fonts", len(l.index)))
}

func (l *Loader) indexDir(dir string) {
	if !fileutil.IsDir(dir) {
		return
	}
	_ = filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if entry != nil && entry.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if entry.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if !fontExtensions[ext] {
			return nil
		}
		key := normalizeName(strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name())))
		if key == "" {
			return nil
		}
		// Earlier directories take priority.
		if _, ok := l.index[key]; !ok {
			l.index[key] = path
		}
		return nil
	})
}

func normalizeName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch r {
		case ' ', '-', '_':
			continue
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func systemFontDirs() []string {
	var dirs []string
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs,
			filepath.Join(home, ".fonts"),
			filepath.Join(home, ".local", "share", "fonts"),
		)
	}
	return append(dirs,
		"/usr/share/fonts",
		"/usr/local/share/fonts",
		"/Library/Fonts",
		"/System/Library/Fonts",
	)
}
