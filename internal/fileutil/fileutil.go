// Package fileutil resolves file references for the config loader and the
// font loader. It implements the two resolution policies the card format
// needs: a naive join against a base directory (no existence check, validated
// lazily when the file is opened) and an ordered search across configured
// directories.
package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Expand joins ref with base when ref is relative. Absolute refs are returned
// unchanged. The result is not checked for existence; opening the file later
// surfaces any failure.
func Expand(base, ref string) string {
	if ref == "" || filepath.IsAbs(ref) {
		return ref
	}
	return filepath.Join(base, ref)
}

// Search tries each directory in order and returns the first path where a
// regular file named ref exists. Absolute refs are returned unchanged without
// a check. Relative directories and non-directories in dirs are skipped, so a
// sloppy settings file cannot break resolution.
func Search(ref string, dirs []string) (string, error) {
	if filepath.IsAbs(ref) {
		return ref, nil
	}
	for _, dir := range dirs {
		if !filepath.IsAbs(dir) || !IsDir(dir) {
			continue
		}
		candidate := filepath.Join(dir, ref)
		if IsFile(candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("file not found %s", ref)
}

// Resolve maps a config file reference to the path a loader should open.
// Absolute refs pass through untouched. Relative refs resolve to the first
// existing file under base and then under the search directories; when no
// existing file is found the ref joins base and is validated lazily at open
// time.
func Resolve(ref, base string, dirs []string) string {
	if ref == "" || filepath.IsAbs(ref) {
		return ref
	}
	candidates := make([]string, 0, len(dirs)+1)
	candidates = append(candidates, base)
	candidates = append(candidates, dirs...)
	if hit, err := Search(ref, candidates); err == nil {
		return hit
	}
	return Expand(base, ref)
}

// IsFile reports whether path names an existing regular file.
func IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// IsDir reports whether path names an existing directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// ExpandUser resolves a leading tilde against the current user's home
// directory and makes the result absolute.
func ExpandUser(path string) (string, error) {
	if path == "" {
		return path, nil
	}
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if path == "~" {
			path = home
		} else if len(path) > 1 && (path[1] == '/' || path[1] == '\\') {
			path = filepath.Join(home, path[2:])
		}
	}
	absolute, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", path, err)
	}
	return absolute, nil
}
