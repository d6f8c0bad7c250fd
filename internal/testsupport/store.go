package testsupport

import (
	"testing"

	"cardpress/internal/config"
	"cardpress/internal/settings"
)

// MustLoadStore builds a config store over the given settings and loads the
// card config at path. A nil settings value means no search paths.
func MustLoadStore(t testing.TB, s *settings.Settings, path string) *config.Store {
	t.Helper()

	if s == nil {
		s = settings.Default()
	}
	store := config.NewStore(s, nil)
	if err := store.Load(path); err != nil {
		t.Fatalf("load %s: %v", path, err)
	}
	return store
}
