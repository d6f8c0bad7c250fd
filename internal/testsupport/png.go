package testsupport

import (
	"image/color"
	"os"
	"testing"

	"github.com/disintegration/imaging"

	"cardpress/internal/imagemeta"
)

// WritePNG writes a width x height PNG filled with a single colour.
func WritePNG(t testing.TB, path string, width, height int, fill color.NRGBA) {
	t.Helper()
	WritePNGResolution(t, path, width, height, fill, imagemeta.Default())
}

// WritePNGResolution is WritePNG with explicit resolution metadata, for
// tests that care about the dpi carried through to the output file.
func WritePNGResolution(t testing.TB, path string, width, height int, fill color.NRGBA, res imagemeta.Resolution) {
	t.Helper()

	out, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	if err := imagemeta.EncodePNG(out, imaging.New(width, height, fill), res); err != nil {
		t.Fatalf("encode %s: %v", path, err)
	}
	if err := out.Close(); err != nil {
		t.Fatalf("close %s: %v", path, err)
	}
}
