package card

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"os"

	"github.com/disintegration/imaging"

	"cardpress/internal/carderr"
	"cardpress/internal/config"
	"cardpress/internal/fileutil"
	"cardpress/internal/fonts"
	"cardpress/internal/imagemeta"
	"cardpress/internal/imageutil"
	"cardpress/internal/logging"
	"cardpress/internal/markup"
)

const (
	defaultBorder       = 20
	defaultBorderColour = "black"
	defaultTextColour   = "black"
	defaultGravity      = "center"
	defaultFontSize     = 20

	cutMarkStroke = 3
)

// Card assembles one card image from a merged config. The canvas is owned
// by the card for the duration of a render and written out by Save.
type Card struct {
	store  *config.Store
	fonts  *fonts.Loader
	markup *markup.Renderer
	logger *slog.Logger

	canvas     *image.NRGBA
	width      int
	height     int
	border     int
	resolution imagemeta.Resolution
}

// New loads the background and optional backside, sizes the canvas, and
// draws the border frame with its cut marks. Field rendering happens in
// Render.
func New(store *config.Store, loader *fonts.Loader, logger *slog.Logger) (*Card, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	c := &Card{store: store, fonts: loader, markup: markup.NewRenderer(loader), logger: logger}

	sec, err := store.Section("Card")
	if err != nil {
		return nil, err
	}

	bgPath := sec.Get("background", "")
	if bgPath == "" {
		return nil, carderr.Wrapf(carderr.ErrConfig, "background image not configured")
	}
	background, err := openImage(bgPath)
	if err != nil {
		return nil, err
	}
	if c.resolution, err = imagemeta.ReadFile(bgPath); err != nil {
		c.resolution = imagemeta.Default()
	}

	var backside image.Image
	if path := sec.Get("backside", ""); path != "" {
		img, err := openImage(path)
		if err != nil {
			return nil, err
		}
		backside = imaging.Rotate180(img)
	}

	c.width = background.Bounds().Dx()
	c.height = background.Bounds().Dy()
	c.logger.Debug("background loaded",
		logging.Int("width", c.width),
		logging.Int("height", c.height),
		logging.Float64("dpi", c.resolution.X))

	colour, err := imageutil.ParseColour(sec.Get("border_colour", defaultBorderColour))
	if err != nil {
		return nil, carderr.Wrapf(carderr.ErrConfig, "invalid 'border_colour'")
	}
	if c.border, err = sec.Int("border", defaultBorder); err != nil {
		return nil, err
	}

	canvasHeight := c.height + 2*c.border
	if backside != nil {
		canvasHeight *= 2
	}
	c.canvas = imaging.New(c.width+2*c.border, canvasHeight, colour)
	c.canvas = imaging.Overlay(c.canvas, background, image.Pt(c.border, c.border), 1.0)

	marks := c.cutMarks(colour)
	if marks != nil {
		c.canvas = imaging.Overlay(c.canvas, marks, image.Pt(0, 0), 1.0)
	}

	if backside != nil {
		if backside.Bounds().Dx() != c.width || backside.Bounds().Dy() != c.height {
			backside = imaging.Resize(backside, c.width, c.height, imaging.Lanczos)
		}
		c.canvas = imaging.Overlay(c.canvas, backside, image.Pt(c.border, c.height+3*c.border), 1.0)
		if marks != nil {
			c.canvas = imaging.Overlay(c.canvas, marks, image.Pt(0, 2*c.border+c.height), 1.0)
		}
	}
	return c, nil
}

// cutMarks draws the cut ticks of one card face on a transparent overlay.
// The ticks use the RGB inverse of the border colour so they stay visible
// against it. A border of one pixel or less leaves no room for marks.
func (c *Card) cutMarks(borderColour color.NRGBA) *image.NRGBA {
	markLen := c.border - 1
	if markLen <= 0 {
		return nil
	}

	overlay := imaging.New(c.width+2*c.border, c.height+2*c.border, color.NRGBA{})
	ink := imageutil.Invert(borderColour)

	horX := [2]int{0, c.border + c.width + 1}
	horY := [2]int{c.border - 1, c.border + c.height - 1}
	vertX := [2]int{c.border - 1, c.border + c.width - 1}
	vertY := [2]int{0, c.border + c.height + 1}

	for _, x := range horX {
		for _, y := range horY {
			imageutil.HLine(overlay, x, x+markLen-1, y, cutMarkStroke, ink)
		}
	}
	for _, x := range vertX {
		for _, y := range vertY {
			imageutil.VLine(overlay, x, y, y+markLen-1, cutMarkStroke, ink)
		}
	}
	return overlay
}

// compose pastes an area-sized block onto the canvas, optionally rotating
// it first. Rotation grows the block, so placement shifts by half the
// growth to keep the block centred on the area.
func (c *Card) compose(img image.Image, area config.Area, rotate float64, hasRotate bool) {
	x := c.border + area.X
	y := c.border + area.Y
	if hasRotate {
		rotated := imaging.Rotate(img, -rotate, color.NRGBA{})
		x += (area.Width - rotated.Bounds().Dx()) / 2
		y += (area.Height - rotated.Bounds().Dy()) / 2
		c.logger.Debug("rotate block",
			logging.Float64("degrees", rotate),
			logging.Int("x", x),
			logging.Int("y", y))
		img = rotated
	}
	c.canvas = imaging.Overlay(c.canvas, img, image.Pt(x, y), 1.0)
}

func openImage(path string) (image.Image, error) {
	if !fileutil.IsFile(path) {
		return nil, carderr.Wrapf(carderr.ErrFile, "file not found: %s", path)
	}
	img, err := imaging.Open(path)
	if err != nil {
		return nil, carderr.Wrap(carderr.ErrCard, fmt.Sprintf("failed to create image: %s", path), err)
	}
	return img, nil
}

// Save writes the canvas to path as a PNG carrying the background's dpi.
func (c *Card) Save(path string) error {
	out, err := os.Create(path)
	if err != nil {
		return carderr.Wrap(carderr.ErrCard, fmt.Sprintf("create output %s", path), err)
	}
	if err := imagemeta.EncodePNG(out, c.canvas, c.resolution); err != nil {
		out.Close()
		return carderr.Wrap(carderr.ErrCard, fmt.Sprintf("write output %s", path), err)
	}
	if err := out.Close(); err != nil {
		return carderr.Wrap(carderr.ErrCard, fmt.Sprintf("write output %s", path), err)
	}
	return nil
}
