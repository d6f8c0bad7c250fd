package markup

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"

	"cardpress/internal/carderr"
	"cardpress/internal/fonts"
	"cardpress/internal/imageutil"
)

const (
	// DPI is the supersampling resolution markup is rendered at before the
	// card scales the result into its area.
	DPI = 300

	defaultRunSize = 20
	italicShear    = 0.25
)

// Renderer draws parsed markup with faces from a shared loader.
type Renderer struct {
	fonts *fonts.Loader
	dpi   float64
}

// NewRenderer returns a renderer drawing at the package DPI.
func NewRenderer(loader *fonts.Loader) *Renderer {
	return &Renderer{fonts: loader, dpi: DPI}
}

type segment struct {
	run     Run
	face    font.Face
	fill    color.Color
	advance int
}

type renderLine struct {
	segments []segment
	ascent   int
	height   int
}

// Render draws the markup and returns the inked region on a transparent
// surface. Bold runs are double struck, italic runs sheared, underlined
// runs ruled below the shared baseline.
func (r *Renderer) Render(input string) (image.Image, error) {
	parsed, err := Parse(input)
	if err != nil {
		return nil, err
	}
	lines, width, height, err := r.layout(parsed)
	if err != nil {
		return nil, err
	}

	img := imaging.New(width, height, color.NRGBA{})
	top := 0
	for _, line := range lines {
		x := 0
		baseline := top + line.ascent
		for _, seg := range line.segments {
			if seg.run.Italic {
				r.drawItalic(img, seg, x, top, line.ascent, line.height)
			} else {
				r.drawRun(img, seg, x, baseline)
			}
			x += seg.advance
		}
		top += line.height
	}
	return imageutil.TrimTransparent(img), nil
}

func (r *Renderer) layout(parsed [][]Run) ([]renderLine, int, int, error) {
	emptyFace, err := r.fonts.Face("", defaultRunSize, r.dpi)
	if err != nil {
		return nil, 0, 0, err
	}
	emptyHeight := emptyFace.Metrics().Height.Ceil()

	lines := make([]renderLine, 0, len(parsed))
	width, height := 0, 0
	for _, runs := range parsed {
		line := renderLine{height: emptyHeight}
		lineWidth := 0
		sheared := false
		for _, run := range runs {
			size := run.Size
			if size <= 0 {
				size = defaultRunSize
			}
			face, err := r.fonts.Face(run.Font, size, r.dpi)
			if err != nil {
				return nil, 0, 0, err
			}
			colour := run.Colour
			if colour == "" {
				colour = "black"
			}
			fill, err := imageutil.ParseColour(colour)
			if err != nil {
				return nil, 0, 0, carderr.Wrapf(carderr.ErrCard, "invalid markup colour %q", run.Colour)
			}

			advance := font.MeasureString(face, run.Text).Ceil()
			if run.Bold {
				advance++
			}
			metrics := face.Metrics()
			if a := metrics.Ascent.Ceil(); a > line.ascent {
				line.ascent = a
			}
			if h := metrics.Height.Ceil(); h > line.height {
				line.height = h
			}
			sheared = sheared || run.Italic
			lineWidth += advance
			line.segments = append(line.segments, segment{run: run, face: face, fill: fill, advance: advance})
		}
		if sheared {
			lineWidth += int(italicShear*float64(line.ascent)) + 1
		}
		if lineWidth > width {
			width = lineWidth
		}
		height += line.height
		lines = append(lines, line)
	}
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return lines, width, height, nil
}

func (r *Renderer) drawRun(dst *image.NRGBA, seg segment, x, baseline int) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(seg.fill),
		Face: seg.face,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(seg.run.Text)
	if seg.run.Bold {
		d.Dot = fixed.P(x+1, baseline)
		d.DrawString(seg.run.Text)
	}
	if seg.run.Underline {
		r.underline(dst, seg, x, baseline)
	}
}

// drawItalic renders the run upright on a scratch surface and shears it
// onto the canvas, pinned at the baseline so the slant leans the cap line
// to the right.
func (r *Renderer) drawItalic(dst *image.NRGBA, seg segment, x, top, ascent, lineHeight int) {
	slop := int(italicShear*float64(ascent)) + 1
	scratch := imaging.New(seg.advance+slop, lineHeight, color.NRGBA{})
	r.drawRun(scratch, seg, 0, ascent)

	m := f64.Aff3{
		1, -italicShear, italicShear*float64(ascent) + float64(x),
		0, 1, float64(top),
	}
	xdraw.ApproxBiLinear.Transform(dst, m, scratch, scratch.Bounds(), xdraw.Over, nil)
}

func (r *Renderer) underline(dst draw.Image, seg segment, x, baseline int) {
	offset := seg.face.Metrics().Descent.Ceil() / 2
	if offset < 1 {
		offset = 1
	}
	thickness := int(r.dpi/72 + 0.5)
	if thickness < 1 {
		thickness = 1
	}
	imageutil.HLine(dst, x, x+seg.advance-1, baseline+offset, thickness, seg.fill)
}
