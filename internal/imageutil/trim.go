package imageutil

import (
	"image"

	"github.com/disintegration/imaging"
)

// Trim crops the uniform-colour border of img. The border colour is taken
// from the top-left corner pixel; the crop keeps the bounding box of every
// pixel that differs from it. Images with no differing pixel are returned
// unchanged.
func Trim(img image.Image) image.Image {
	bounds := img.Bounds()
	if bounds.Empty() {
		return img
	}
	bg := img.At(bounds.Min.X, bounds.Min.Y)
	bgR, bgG, bgB, bgA := bg.RGBA()

	content := contentBounds(img, func(x, y int) bool {
		r, g, b, a := img.At(x, y).RGBA()
		return r != bgR || g != bgG || b != bgB || a != bgA
	})
	if content.Empty() || content == bounds {
		return img
	}
	return imaging.Crop(img, content)
}

// TrimTransparent crops fully transparent padding around img. Fully
// transparent images are returned unchanged.
func TrimTransparent(img image.Image) image.Image {
	bounds := img.Bounds()
	if bounds.Empty() {
		return img
	}

	content := contentBounds(img, func(x, y int) bool {
		_, _, _, a := img.At(x, y).RGBA()
		return a != 0
	})
	if content.Empty() || content == bounds {
		return img
	}
	return imaging.Crop(img, content)
}

func contentBounds(img image.Image, keep func(x, y int) bool) image.Rectangle {
	bounds := img.Bounds()
	minX, minY := bounds.Max.X, bounds.Max.Y
	maxX, maxY := bounds.Min.X-1, bounds.Min.Y-1

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if !keep(x, y) {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}

	if maxX < minX || maxY < minY {
		return image.Rectangle{}
	}
	return image.Rect(minX, minY, maxX+1, maxY+1)
}

// FitSize scales (w, h) preserving aspect ratio so the result fits within
// (boxW, boxH). Unlike a pure shrink, smaller content is scaled up to meet
// the box. Degenerate inputs collapse to zero.
func FitSize(w, h, boxW, boxH int) (int, int) {
	if w <= 0 || h <= 0 || boxW <= 0 || boxH <= 0 {
		return 0, 0
	}
	scaleW := float64(boxW) / float64(w)
	scaleH := float64(boxH) / float64(h)
	scale := scaleW
	if scaleH < scale {
		scale = scaleH
	}
	fw := int(float64(w)*scale + 0.5)
	fh := int(float64(h)*scale + 0.5)
	if fw < 1 {
		fw = 1
	}
	if fh < 1 {
		fh = 1
	}
	return fw, fh
}
