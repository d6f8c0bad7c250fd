package text

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"cardpress/internal/imageutil"
)

// Style describes how a text block is drawn.
type Style struct {
	Face    font.Face
	Fill    color.Color
	Stroke  color.Color
	Gravity imageutil.Gravity
}

// Measure reports the pixel box of a multi-line string rendered with face.
// Width is the widest line advance, height the line count times the face's
// line height.
func Measure(face font.Face, text string) (int, int) {
	lines := Lines(text)
	width := 0
	for _, line := range lines {
		if w := font.MeasureString(face, line).Ceil(); w > width {
			width = w
		}
	}
	return width, face.Metrics().Height.Ceil() * len(lines)
}

// Render draws wrapped text onto a transparent width by height surface. The
// line block is anchored by gravity and each line is aligned on the same
// horizontal rule. A stroke colour different from the fill draws a one-pixel
// outline around the glyphs.
func Render(wrapped string, width, height int, style Style) *image.NRGBA {
	img := imaging.New(width, height, color.NRGBA{})
	lines := Lines(wrapped)
	metrics := style.Face.Metrics()
	lineHeight := metrics.Height.Ceil()
	ascent := metrics.Ascent.Ceil()

	blockTop := 0
	switch style.Gravity.Vert() {
	case 0:
		blockTop = (height - lineHeight*len(lines)) / 2
	case 1:
		blockTop = height - lineHeight*len(lines)
	}

	offsets := strokeOffsets(style.Fill, style.Stroke)
	for i, line := range lines {
		if line == "" {
			continue
		}
		x := 0
		switch style.Gravity.Horiz() {
		case 0:
			x = (width - font.MeasureString(style.Face, line).Ceil()) / 2
		case 1:
			x = width - font.MeasureString(style.Face, line).Ceil()
		}
		y := blockTop + i*lineHeight + ascent
		for _, off := range offsets {
			drawString(img, line, style.Face, style.Stroke, x+off.X, y+off.Y)
		}
		drawString(img, line, style.Face, style.Fill, x, y)
	}
	return img
}

func drawString(dst *image.NRGBA, line string, face font.Face, c color.Color, x, y int) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(line)
}

// strokeOffsets returns the eight one-pixel offsets used to outline glyphs,
// or nil when the stroke would be invisible against the fill.
func strokeOffsets(fill, stroke color.Color) []image.Point {
	if stroke == nil || sameColor(fill, stroke) {
		return nil
	}
	return []image.Point{
		{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: -1},
		{X: -1, Y: 0}, {X: 1, Y: 0},
		{X: -1, Y: 1}, {X: 0, Y: 1}, {X: 1, Y: 1},
	}
}

func sameColor(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}
