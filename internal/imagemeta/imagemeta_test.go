package imagemeta

import (
	"bytes"
	"image/color"
	"image/png"
	"math"
	"testing"

	"github.com/disintegration/imaging"
)

func TestEncodePNGRoundTrip(t *testing.T) {
	img := imaging.New(4, 4, color.NRGBA{0xff, 0, 0, 0xff})
	var buf bytes.Buffer
	if err := EncodePNG(&buf, img, Resolution{X: 300, Y: 300}); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}

	decoded, err := png.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("spliced output is not a valid PNG: %v", err)
	}
	if decoded.Bounds().Dx() != 4 {
		t.Fatalf("decoded width = %d, want 4", decoded.Bounds().Dx())
	}

	res, err := Read(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if math.Abs(res.X-300) > 0.01 || math.Abs(res.Y-300) > 0.01 {
		t.Fatalf("resolution = %+v, want ~300 dpi", res)
	}
}

func TestEncodePNGZeroResolution(t *testing.T) {
	img := imaging.New(2, 2, color.NRGBA{})
	var buf bytes.Buffer
	if err := EncodePNG(&buf, img, Resolution{}); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	res, err := Read(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if res != Default() {
		t.Fatalf("resolution = %+v, want default", res)
	}
}

func TestReadPlainPNGDefaults(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, imaging.New(2, 2, color.NRGBA{})); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	res, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if res != Default() {
		t.Fatalf("resolution = %+v, want default", res)
	}
}

func jfifHeader(units byte, x, y uint16) []byte {
	b := []byte{
		0xff, 0xd8, // SOI
		0xff, 0xe0, 0x00, 0x10, // APP0, length 16
		'J', 'F', 'I', 'F', 0x00,
		0x01, 0x02, // version
		units,
		byte(x >> 8), byte(x), byte(y >> 8), byte(y),
		0x00, 0x00, // no thumbnail
	}
	return b
}

func TestReadJFIFDensity(t *testing.T) {
	res, err := Read(bytes.NewReader(jfifHeader(1, 300, 150)))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if res.X != 300 || res.Y != 150 {
		t.Fatalf("resolution = %+v, want 300x150", res)
	}

	res, err = Read(bytes.NewReader(jfifHeader(2, 118, 118)))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if math.Abs(res.X-299.72) > 0.01 {
		t.Fatalf("resolution = %+v, want ~299.72 dpi", res)
	}

	res, err = Read(bytes.NewReader(jfifHeader(0, 1, 1)))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if res != Default() {
		t.Fatalf("aspect-only density must fall back to default, got %+v", res)
	}
}

func TestReadUnknownFormatDefaults(t *testing.T) {
	res, err := Read(bytes.NewReader([]byte("GIF87a......")))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if res != Default() {
		t.Fatalf("resolution = %+v, want default", res)
	}
}
