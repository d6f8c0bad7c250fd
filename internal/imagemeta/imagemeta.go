// Package imagemeta reads and writes the pixel density metadata carried by
// PNG and JPEG files. Density lives outside the pixel data, so image decoders
// drop it; this package recovers it from the raw bytes and records it again
// on output.
package imagemeta

import (
	"bufio"
	"io"
	"os"
)

// DefaultDPI is assumed for files that carry no density information.
const DefaultDPI = 72.0

const metersPerInch = 0.0254

// Resolution is a pixel density in dots per inch.
type Resolution struct {
	X float64
	Y float64
}

// Default returns the fallback density.
func Default() Resolution {
	return Resolution{X: DefaultDPI, Y: DefaultDPI}
}

// ReadFile reports the density recorded in the image file at path. Files
// without density metadata, and formats that cannot carry any, report the
// default.
func ReadFile(path string) (Resolution, error) {
	f, err := os.Open(path)
	if err != nil {
		return Resolution{}, err
	}
	defer f.Close()
	return Read(f)
}

// Read reports the density recorded in the image stream r.
func Read(r io.Reader) (Resolution, error) {
	br := bufio.NewReader(r)
	magic, err := br.Peek(2)
	if err != nil {
		return Resolution{}, err
	}
	switch {
	case magic[0] == 0x89 && magic[1] == 'P':
		return readPNG(br)
	case magic[0] == 0xff && magic[1] == 0xd8:
		return readJPEG(br)
	}
	return Default(), nil
}
