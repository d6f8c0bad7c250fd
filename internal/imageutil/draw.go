package imageutil

import (
	"image"
	"image/color"
	"image/draw"
)

// FillRect paints rect on dst with colour c using source-over compositing.
func FillRect(dst draw.Image, rect image.Rectangle, c color.Color) {
	draw.Draw(dst, rect.Intersect(dst.Bounds()), image.NewUniform(c), image.Point{}, draw.Over)
}

// HLine draws a horizontal line from (x0, y) to (x1, y) inclusive, centered
// on y with the given stroke thickness.
func HLine(dst draw.Image, x0, x1, y, thickness int, c color.Color) {
	if thickness < 1 || x1 < x0 {
		return
	}
	top := y - (thickness-1)/2
	FillRect(dst, image.Rect(x0, top, x1+1, top+thickness), c)
}

// VLine draws a vertical line from (x, y0) to (x, y1) inclusive, centered on
// x with the given stroke thickness.
func VLine(dst draw.Image, x, y0, y1, thickness int, c color.Color) {
	if thickness < 1 || y1 < y0 {
		return
	}
	left := x - (thickness-1)/2
	FillRect(dst, image.Rect(left, y0, left+thickness, y1+1), c)
}
