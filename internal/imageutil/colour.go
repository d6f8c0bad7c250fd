package imageutil

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColour resolves a colour value from a config file. Accepted forms are
// the SVG 1.1 colour names, #rgb, #rgba, #rrggbb, #rrggbbaa hex notation, and
// "none"/"transparent" for fully transparent.
func ParseColour(s string) (color.NRGBA, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch {
	case name == "":
		return color.NRGBA{}, fmt.Errorf("empty colour")
	case name == "none" || name == "transparent":
		return color.NRGBA{}, nil
	case strings.HasPrefix(name, "#"):
		return parseHex(name)
	}
	if c, ok := colornames.Map[name]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	return color.NRGBA{}, fmt.Errorf("unknown colour %q", s)
}

func parseHex(s string) (color.NRGBA, error) {
	digits := s[1:]
	expand := func(d byte) uint8 {
		v, _ := strconv.ParseUint(string([]byte{d, d}), 16, 8)
		return uint8(v)
	}

	switch len(digits) {
	case 3, 4:
		for i := 0; i < len(digits); i++ {
			if _, err := strconv.ParseUint(string(digits[i]), 16, 8); err != nil {
				return color.NRGBA{}, fmt.Errorf("invalid hex colour %q", s)
			}
		}
		c := color.NRGBA{R: expand(digits[0]), G: expand(digits[1]), B: expand(digits[2]), A: 0xff}
		if len(digits) == 4 {
			c.A = expand(digits[3])
		}
		return c, nil
	case 6, 8:
		v, err := strconv.ParseUint(digits, 16, 64)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid hex colour %q", s)
		}
		if len(digits) == 6 {
			return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
		}
		return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
	default:
		return color.NRGBA{}, fmt.Errorf("invalid hex colour %q", s)
	}
}

// Invert returns the RGB complement of c with the alpha channel preserved.
// Cut marks are drawn in the inverse of the border colour so they stay
// visible against it.
func Invert(c color.Color) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return color.NRGBA{R: 0xff - n.R, G: 0xff - n.G, B: 0xff - n.B, A: n.A}
}
