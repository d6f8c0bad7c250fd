package config

import (
	"strconv"
	"strings"

	"cardpress/internal/carderr"
)

// Area is a placement rectangle on the card: an offset from the content
// origin plus a size, all in pixels.
type Area struct {
	X      int
	Y      int
	Width  int
	Height int
}

// ParseArea parses an area value of exactly four whitespace-separated
// integers in "x y width height" order. Anything else is a config error
// quoting the input.
func ParseArea(raw string) (Area, error) {
	fields := strings.Fields(raw)
	if len(fields) != 4 {
		return Area{}, carderr.Wrapf(carderr.ErrConfig, "error parsing area: %s", raw)
	}
	var values [4]int
	for i, field := range fields {
		v, err := strconv.Atoi(field)
		if err != nil {
			return Area{}, carderr.Wrapf(carderr.ErrConfig, "error parsing area: %s", raw)
		}
		values[i] = v
	}
	return Area{X: values[0], Y: values[1], Width: values[2], Height: values[3]}, nil
}
