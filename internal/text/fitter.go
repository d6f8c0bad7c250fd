// Package text fits and renders plain text blocks. Fitting is pure: it
// shrinks the font size in fixed steps and greedily rewraps lines until the
// measured block fits its box, leaving measurement to a caller-supplied
// metrics function. Rendering draws the fitted block onto a transparent
// surface with gravity-driven alignment and an optional outline.
package text

import (
	"strings"

	"cardpress/internal/carderr"
)

const (
	// sizeStep is removed from the font size each time no wrapping of the
	// text fits the box at the current size.
	sizeStep = 0.75
	// fitAttempts bounds the fitting loop.
	fitAttempts = 100
)

// MetricsFunc reports the rendered width and height of candidate at the
// given point size.
type MetricsFunc func(candidate string, size float64) (width, height int, err error)

// Fit searches for the largest font size at or below size, in sizeStep
// decrements, at which text can be wrapped to fit a width by height box.
// Existing newlines are kept as hard breaks; wrapping narrows the longest
// line one column at a time and rewraps every original line at that column
// count. It returns the wrapped text and the fitted size, or an error when
// the attempt budget is exhausted or the size reaches zero without a fit.
func Fit(text string, width, height int, size float64, measure MetricsFunc) (string, float64, error) {
	lines := Lines(text)
	maxColumns := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > maxColumns {
			maxColumns = n
		}
	}

	candidate := text
	for attempts := fitAttempts; attempts > 0 && size > 0; attempts-- {
		w, h, err := measure(candidate, size)
		if err != nil {
			return "", 0, err
		}
		if h > height {
			size -= sizeStep
			candidate = text
			continue
		}
		if w <= width {
			return candidate, size, nil
		}
		// Too wide: take the widest column count that fits. A successful
		// rewrap is re-measured on the next pass, where the added lines
		// may still overflow the height.
		fitted := false
		for columns := maxColumns - 1; columns >= 1; columns-- {
			candidate = rewrap(lines, columns)
			cw, _, err := measure(candidate, size)
			if err != nil {
				return "", 0, err
			}
			if cw <= width {
				fitted = true
				break
			}
		}
		if !fitted {
			size -= sizeStep
			candidate = text
		}
	}
	return "", 0, carderr.Wrapf(carderr.ErrCard, "unable to calculate word_wrap for %s", text)
}

// Lines splits text into lines, treating \r\n and \n alike.
func Lines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// rewrap wraps every line at the given column count and joins the results,
// keeping blank lines in place.
func rewrap(lines []string, columns int) string {
	parts := make([]string, len(lines))
	for i, line := range lines {
		parts[i] = strings.Join(wrapLine(line, columns), "\n")
	}
	return strings.Join(parts, "\n")
}

// wrapLine greedily packs words into lines of at most columns characters,
// breaking only on whitespace. A word longer than the column count stands
// alone on its own line; the overflow is handled by the caller shrinking the
// font size instead of splitting inside the word.
func wrapLine(line string, columns int) []string {
	if columns < 1 {
		return nil
	}
	var out []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			out = append(out, string(cur))
			cur = cur[:0]
		}
	}
	for _, word := range strings.Fields(line) {
		runes := []rune(word)
		if len(cur) > 0 && len(cur)+1+len(runes) <= columns {
			cur = append(cur, ' ')
			cur = append(cur, runes...)
			continue
		}
		flush()
		cur = append(cur, runes...)
		if len(runes) >= columns {
			flush()
		}
	}
	flush()
	return out
}
