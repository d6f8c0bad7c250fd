package main

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cardpress/internal/testsupport"
)

// setupCLITestEnv redirects HOME into a temp directory so the per-user
// settings file cannot leak into a test run. It returns the base directory
// for test fixtures.
func setupCLITestEnv(t *testing.T) string {
	t.Helper()

	base := t.TempDir()
	home := filepath.Join(base, "home")
	if err := os.MkdirAll(home, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", home)
	return base
}

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeCardConfig(t *testing.T, dir, name, body string) string {
	t.Helper()
	return testsupport.WriteConfig(t, dir, name, body)
}

func writeBackground(t *testing.T, dir string, width, height int) string {
	t.Helper()

	path := filepath.Join(dir, "bg.png")
	testsupport.WritePNG(t, path, width, height, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	return path
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()

	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
