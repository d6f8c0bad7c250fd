package card

import (
	"context"
	"image"
	"image/color"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/skip2/go-qrcode"

	"cardpress/internal/carderr"
	"cardpress/internal/config"
	"cardpress/internal/imageutil"
	"cardpress/internal/logging"
	"cardpress/internal/markup"
	"cardpress/internal/text"
)

// markupMarker routes a title or text value to the markup renderer.
const markupMarker = "PANGO:"

// Render processes every field declared in the Card section in declared
// order and composites the results onto the canvas. A field failure aborts
// the render, wrapped with the field key.
func (c *Card) Render() error {
	sec, err := c.store.Section("Card")
	if err != nil {
		return err
	}
	for _, key := range sec.Keys() {
		value := sec.Get(key, "")
		var err error
		switch {
		case strings.HasPrefix(key, "title"), strings.HasPrefix(key, "text"):
			err = c.renderText(key, value)
		case strings.HasPrefix(key, "image"):
			err = c.renderImage(key, value)
		case strings.HasPrefix(key, "pango"):
			err = c.renderMarkup(key, value)
		case strings.HasPrefix(key, "qr"):
			err = c.renderQR(key, value)
		default:
			continue
		}
		if err != nil {
			return carderr.WithField(key, err)
		}
	}
	return nil
}

func (c *Card) renderText(key, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	if rest, ok := strings.CutPrefix(value, markupMarker); ok {
		return c.renderMarkup(key, rest)
	}
	c.verbose("adding text", key)

	sec, err := c.store.SectionFor(key)
	if err != nil {
		return err
	}
	area, err := requiredArea(sec)
	if err != nil {
		return err
	}
	fontSize, err := sec.Int("font_size", defaultFontSize)
	if err != nil {
		return err
	}
	fill, err := imageutil.ParseColour(sec.Get("font_colour", defaultTextColour))
	if err != nil {
		return carderr.Wrapf(carderr.ErrConfig, "invalid 'font_colour'")
	}
	stroke, err := imageutil.ParseColour(sec.Get("font_border_colour", defaultTextColour))
	if err != nil {
		return carderr.Wrapf(carderr.ErrConfig, "invalid 'font_colour'")
	}
	rotate, hasRotate, err := sec.FloatOpt("rotate")
	if err != nil {
		return err
	}
	gravity, err := parseGravity(sec)
	if err != nil {
		return err
	}
	fontRef := sec.Get("font", "")

	measure := func(candidate string, size float64) (int, int, error) {
		face, err := c.fonts.Face(fontRef, size, 0)
		if err != nil {
			return 0, 0, err
		}
		w, h := text.Measure(face, candidate)
		return w, h, nil
	}
	wrapped, fitted, err := text.Fit(value, area.Width, area.Height, float64(fontSize), measure)
	if err != nil {
		return err
	}
	c.logger.Debug("fitted text",
		logging.String("field", key),
		logging.Float64("font_size", fitted))

	face, err := c.fonts.Face(fontRef, fitted, 0)
	if err != nil {
		return err
	}
	block := text.Render(wrapped, area.Width, area.Height, text.Style{
		Face:    face,
		Fill:    fill,
		Stroke:  stroke,
		Gravity: gravity,
	})
	c.compose(block, area, rotate, hasRotate)
	return nil
}

func (c *Card) renderImage(key, value string) error {
	if value == "" {
		return nil
	}
	c.verbose("adding image", key)

	img, err := openImage(value)
	if err != nil {
		return err
	}
	sec, err := c.store.SectionFor(key)
	if err != nil {
		return err
	}
	area, err := requiredArea(sec)
	if err != nil {
		return err
	}
	resize, err := sec.Bool("resize", true)
	if err != nil {
		return err
	}
	trim, err := sec.Bool("trim", true)
	if err != nil {
		return err
	}
	rotate, hasRotate, err := sec.FloatOpt("rotate")
	if err != nil {
		return err
	}
	gravity, err := parseGravity(sec)
	if err != nil {
		return err
	}

	var block image.Image = img
	if hasRotate {
		block = imaging.Rotate(block, -rotate, color.NRGBA{})
	}
	if trim {
		block = imageutil.Trim(block)
	}
	if resize {
		w, h := imageutil.FitSize(block.Bounds().Dx(), block.Bounds().Dy(), area.Width, area.Height)
		block = imaging.Resize(block, w, h, imaging.Lanczos)
	}

	frame := imaging.New(area.Width, area.Height, color.NRGBA{})
	anchor := gravity.Anchor(area.Width, area.Height, block.Bounds().Dx(), block.Bounds().Dy())
	frame = imaging.Overlay(frame, block, anchor, 1.0)
	c.canvas = imaging.Overlay(c.canvas, frame, image.Pt(c.border+area.X, c.border+area.Y), 1.0)
	return nil
}

func (c *Card) renderMarkup(key, payload string) error {
	if strings.TrimSpace(payload) == "" {
		return nil
	}
	c.verbose("adding markup", key)

	sec, err := c.store.SectionFor(key)
	if err != nil {
		return err
	}
	area, err := requiredArea(sec)
	if err != nil {
		return err
	}
	fontSize, err := sec.Int("font_size", defaultFontSize)
	if err != nil {
		return err
	}
	rotate, hasRotate, err := sec.FloatOpt("rotate")
	if err != nil {
		return err
	}
	gravity, err := parseGravity(sec)
	if err != nil {
		return err
	}

	span := markup.Compose(payload, sec.Get("font", ""), float64(fontSize), sec.Get("font_colour", defaultTextColour))
	block, err := c.markup.Render(span)
	if err != nil {
		return err
	}
	// The markup renderer works at print resolution; scale the block down
	// when it overflows its area.
	if w, h := block.Bounds().Dx(), block.Bounds().Dy(); w > area.Width || h > area.Height {
		fw, fh := imageutil.FitSize(w, h, area.Width, area.Height)
		block = imaging.Resize(block, fw, fh, imaging.Lanczos)
	}

	frame := imaging.New(area.Width, area.Height, color.NRGBA{})
	anchor := gravity.MirrorX().Anchor(area.Width, area.Height, block.Bounds().Dx(), block.Bounds().Dy())
	frame = imaging.Overlay(frame, block, anchor, 1.0)
	c.compose(frame, area, rotate, hasRotate)
	return nil
}

func (c *Card) renderQR(key, payload string) error {
	if payload == "" {
		return nil
	}
	c.verbose("adding qr code", key)

	sec, err := c.store.SectionFor(key)
	if err != nil {
		return err
	}
	area, err := requiredArea(sec)
	if err != nil {
		return err
	}
	fg, err := imageutil.ParseColour(sec.Get("colour", "black"))
	if err != nil {
		return carderr.Wrapf(carderr.ErrConfig, "invalid 'colour'")
	}
	bg, err := imageutil.ParseColour(sec.Get("background", "white"))
	if err != nil {
		return carderr.Wrapf(carderr.ErrConfig, "invalid 'background'")
	}
	rotate, hasRotate, err := sec.FloatOpt("rotate")
	if err != nil {
		return err
	}
	gravity, err := parseGravity(sec)
	if err != nil {
		return err
	}

	size := area.Width
	if area.Height < size {
		size = area.Height
	}
	code, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		return carderr.Wrap(carderr.ErrCard, "failed to generate qr code", err)
	}
	code.ForegroundColor = fg
	code.BackgroundColor = bg
	block := code.Image(size)

	frame := imaging.New(area.Width, area.Height, color.NRGBA{})
	anchor := gravity.Anchor(area.Width, area.Height, block.Bounds().Dx(), block.Bounds().Dy())
	frame = imaging.Overlay(frame, block, anchor, 1.0)
	c.compose(frame, area, rotate, hasRotate)
	return nil
}

func requiredArea(sec *config.Section) (config.Area, error) {
	raw, ok := sec.Lookup("area")
	if !ok {
		return config.Area{}, carderr.Wrapf(carderr.ErrConfig, "'area' undefined")
	}
	return config.ParseArea(raw)
}

func parseGravity(sec *config.Section) (imageutil.Gravity, error) {
	gravity, err := imageutil.ParseGravity(sec.Get("gravity", defaultGravity))
	if err != nil {
		return 0, carderr.Wrapf(carderr.ErrConfig, "invalid 'gravity'")
	}
	return gravity, nil
}

func (c *Card) verbose(msg, field string) {
	c.logger.Log(context.Background(), logging.LevelVerbose, msg, logging.String("field", field))
}
