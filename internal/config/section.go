package config

import (
	"strconv"
	"strings"

	"gopkg.in/ini.v1"

	"cardpress/internal/carderr"
)

// Section is a read view over one section of the merged config. Key lookups
// fall back to the DEFAULT section, so shared values can be declared once
// per card file.
type Section struct {
	name     string
	section  *ini.Section
	defaults *ini.Section
}

// Name returns the section name as declared in the config.
func (s *Section) Name() string {
	return s.name
}

// Lookup returns the raw value for key, consulting the section first and
// the DEFAULT section second.
func (s *Section) Lookup(key string) (string, bool) {
	if s.section.HasKey(key) {
		return s.section.Key(key).String(), true
	}
	if s.defaults != nil && s.defaults != s.section && s.defaults.HasKey(key) {
		return s.defaults.Key(key).String(), true
	}
	return "", false
}

// Get returns the value for key, or fallback when the key is absent.
func (s *Section) Get(key, fallback string) string {
	if v, ok := s.Lookup(key); ok {
		return v
	}
	return fallback
}

// Has reports whether key resolves in the section or in DEFAULT.
func (s *Section) Has(key string) bool {
	_, ok := s.Lookup(key)
	return ok
}

// Keys lists the section's own keys in declared order, followed by any
// DEFAULT keys the section does not shadow.
func (s *Section) Keys() []string {
	keys := s.section.KeyStrings()
	if s.defaults == nil || s.defaults == s.section {
		return keys
	}
	seen := make(map[string]bool, len(keys))
	for _, key := range keys {
		seen[key] = true
	}
	for _, key := range s.defaults.KeyStrings() {
		if !seen[key] {
			keys = append(keys, key)
		}
	}
	return keys
}

// Int parses key as a base-10 integer, returning fallback when absent.
func (s *Section) Int(key string, fallback int) (int, error) {
	raw, ok := s.Lookup(key)
	if !ok {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, carderr.Wrapf(carderr.ErrConfig, "'%s' must be a number", key)
	}
	return v, nil
}

// FloatOpt parses key as a real number when present.
func (s *Section) FloatOpt(key string) (float64, bool, error) {
	raw, ok := s.Lookup(key)
	if !ok {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false, carderr.Wrapf(carderr.ErrConfig, "'%s' must be a real number", key)
	}
	return v, true, nil
}

// Bool parses key as a boolean, returning fallback when absent. Accepted
// spellings are 1/yes/true/on and 0/no/false/off in any letter case.
func (s *Section) Bool(key string, fallback bool) (bool, error) {
	raw, ok := s.Lookup(key)
	if !ok {
		return fallback, nil
	}
	switch strings.ToLower(raw) {
	case "1", "yes", "true", "on":
		return true, nil
	case "0", "no", "false", "off":
		return false, nil
	}
	return false, carderr.Wrapf(carderr.ErrConfig, "'%s' must be a boolean", key)
}
