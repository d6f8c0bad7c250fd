// Package imageutil supplies the small compositing primitives the card
// renderer builds on: gravity placement, colour parsing, border trimming, and
// axis-aligned line drawing. Heavier lifting (resize, rotate, paste) stays
// with github.com/disintegration/imaging.
package imageutil

import (
	"fmt"
	"image"
	"strings"
)

// Gravity names the anchor used when placing content within a box.
type Gravity int

const (
	Center Gravity = iota
	North
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

var gravityNames = map[string]Gravity{
	"center":    Center,
	"north":     North,
	"northeast": NorthEast,
	"east":      East,
	"southeast": SouthEast,
	"south":     South,
	"southwest": SouthWest,
	"west":      West,
	"northwest": NorthWest,
}

// ParseGravity resolves a gravity name. Matching is case-insensitive and
// tolerates the underscored spellings ("north_east") some imaging tools use.
func ParseGravity(s string) (Gravity, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "")
	g, ok := gravityNames[key]
	if !ok {
		return Center, fmt.Errorf("unknown gravity %q", s)
	}
	return g, nil
}

func (g Gravity) String() string {
	for name, v := range gravityNames {
		if v == g {
			return name
		}
	}
	return "center"
}

// Horiz returns the horizontal component: -1 west, 0 centered, 1 east.
func (g Gravity) Horiz() int {
	switch g {
	case West, NorthWest, SouthWest:
		return -1
	case East, NorthEast, SouthEast:
		return 1
	default:
		return 0
	}
}

// Vert returns the vertical component: -1 north, 0 centered, 1 south.
func (g Gravity) Vert() int {
	switch g {
	case North, NorthWest, NorthEast:
		return -1
	case South, SouthWest, SouthEast:
		return 1
	default:
		return 0
	}
}

// Anchor returns the top-left position of an innerW×innerH box placed inside
// an outerW×outerH box according to the gravity.
func (g Gravity) Anchor(outerW, outerH, innerW, innerH int) image.Point {
	var p image.Point
	switch g.Horiz() {
	case 0:
		p.X = (outerW - innerW) / 2
	case 1:
		p.X = outerW - innerW
	}
	switch g.Vert() {
	case 0:
		p.Y = (outerH - innerH) / 2
	case 1:
		p.Y = outerH - innerH
	}
	return p
}

// MirrorX flips the horizontal component, leaving the vertical one alone.
// The markup renderer uses this to translate markup-gravity into visual
// placement, which the underlying convention inverts on the horizontal axis.
func (g Gravity) MirrorX() Gravity {
	switch g {
	case East:
		return West
	case West:
		return East
	case NorthEast:
		return NorthWest
	case NorthWest:
		return NorthEast
	case SouthEast:
		return SouthWest
	case SouthWest:
		return SouthEast
	default:
		return g
	}
}
