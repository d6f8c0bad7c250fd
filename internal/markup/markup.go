// Package markup parses and renders the small inline styling language
// accepted by pango card fields: a span element carrying font, size, and
// foreground attributes around text with nested b, i, and u runs. Span sizes
// are thousandths of a point, following the convention of the renderer the
// format originated with.
package markup

import (
	"encoding/xml"
	"errors"
	"io"
	"strconv"
	"strings"

	"cardpress/internal/carderr"
)

// Run is a stretch of text drawn with one style.
type Run struct {
	Text      string
	Font      string
	Size      float64
	Colour    string
	Bold      bool
	Italic    bool
	Underline bool
}

// Compose wraps text in a span element carrying the given attributes. The
// text is embedded as-is, so it may itself contain markup; literal
// ampersands and angle brackets must arrive pre-escaped.
func Compose(text, font string, sizePt float64, colour string) string {
	var b strings.Builder
	b.WriteString("<span")
	if font != "" {
		b.WriteString(` font="`)
		b.WriteString(font)
		b.WriteString(`"`)
	}
	if sizePt > 0 {
		b.WriteString(` size="`)
		b.WriteString(strconv.Itoa(int(sizePt*1000 + 0.5)))
		b.WriteString(`"`)
	}
	if colour != "" {
		b.WriteString(` foreground="`)
		b.WriteString(colour)
		b.WriteString(`"`)
	}
	b.WriteString(">")
	b.WriteString(text)
	b.WriteString("</span>")
	return b.String()
}

// Parse tokenizes markup into lines of styled runs. Newlines inside text
// start a new line; a line with no text parses to an empty run slice.
func Parse(input string) ([][]Run, error) {
	dec := xml.NewDecoder(strings.NewReader("<markup>" + input + "</markup>"))

	var (
		lines   [][]Run
		current []Run
	)
	stack := []Run{{}}

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, carderr.Wrap(carderr.ErrCard, "invalid markup", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			style := stack[len(stack)-1]
			switch t.Name.Local {
			case "markup":
			case "span":
				if err := applySpanAttrs(&style, t.Attr); err != nil {
					return nil, err
				}
			case "b":
				style.Bold = true
			case "i":
				style.Italic = true
			case "u":
				style.Underline = true
			default:
				return nil, carderr.Wrapf(carderr.ErrCard, "unsupported markup element <%s>", t.Name.Local)
			}
			stack = append(stack, style)
		case xml.EndElement:
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			style := stack[len(stack)-1]
			segments := strings.Split(string(t), "\n")
			for i, segment := range segments {
				if i > 0 {
					lines = append(lines, current)
					current = nil
				}
				if segment == "" {
					continue
				}
				style.Text = segment
				current = append(current, style)
			}
		}
	}
	return append(lines, current), nil
}

func applySpanAttrs(style *Run, attrs []xml.Attr) error {
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "font", "font_family", "face":
			style.Font = attr.Value
		case "size":
			thousandths, err := strconv.Atoi(attr.Value)
			if err != nil {
				return carderr.Wrapf(carderr.ErrCard, "invalid markup size %q", attr.Value)
			}
			style.Size = float64(thousandths) / 1000
		case "foreground", "color", "colour":
			style.Colour = attr.Value
		default:
			return carderr.Wrapf(carderr.ErrCard, "unsupported span attribute %q", attr.Name.Local)
		}
	}
	return nil
}
