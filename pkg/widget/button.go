package widget

import (
	"github.com/pixelsmith/gamepainter/pkg/canvas"
	"github.com/pixelsmith/gamepainter/pkg/paint"
)

// ButtonParams configures a themed button render. Zero values select the
// stock look: a 120×40 blue gradient button with white text and an 8px
// corner radius.
type ButtonParams struct {
	Width, Height int
	Text          string
	Style         ButtonStyle
	Palette       Palette
	TextColor     *paint.Color
	Radius        int // corner radius; exactly -1 means the 8px default
}

func (p ButtonParams) withDefaults() ButtonParams {
	if p.Width == 0 {
		p.Width = 120
	}
	if p.Height == 0 {
		p.Height = 40
	}
	if p.Radius == -1 {
		p.Radius = 8
	}
	return p
}

// Button renders a complete button onto a fresh transparent canvas.
// The same parameters always produce the same pixels.
func Button(p ButtonParams) (*canvas.Canvas, error) {
	p = p.withDefaults()

	style, err := ParseButtonStyle(string(p.Style))
	if err != nil {
		return nil, err
	}
	pal, err := ParsePalette(string(p.Palette))
	if err != nil {
		return nil, err
	}
	colors := palettes[pal]

	c, err := canvas.New(p.Width, p.Height, paint.Transparent)
	if err != nil {
		return nil, err
	}

	w, h, r := p.Width, p.Height, p.Radius
	switch style {
	case ButtonFlat:
		err = c.Rect(0, 0, w, h, r, canvas.FillOnly(colors.primary))

	case ButtonGradient:
		grad := paint.Gradient{Start: colors.primary, End: colors.secondary, Dir: paint.DirectionVertical}
		err = c.Rect(0, 0, w, h, r, canvas.Style{FillGradient: &grad})

	case ButtonGlossy:
		if err = c.Rect(0, 0, w, h, r, canvas.FillOnly(colors.secondary)); err != nil {
			break
		}
		// Translucent highlight over the upper half gives the gloss.
		if w > 4 && h/2 > 2 {
			highlight := colors.primary.WithAlpha(180)
			err = c.Rect(2, 2, w-4, h/2-2, max(r-2, 0), canvas.FillOnly(highlight))
		}

	case ButtonOutline:
		err = c.Rect(0, 0, w, h, r, canvas.StrokeOnly(colors.primary, 3))

	case ButtonPixel:
		// Pixel-art buttons are hard-edged: no corner rounding, inset border.
		if err = c.Rect(0, 0, w, h, 0, canvas.FillOnly(colors.primary)); err != nil {
			break
		}
		if w > 4 && h > 4 {
			err = c.Rect(2, 2, w-4, h-4, 0, canvas.StrokeOnly(colors.secondary, 2))
		}
	}
	if err != nil {
		return nil, err
	}

	if p.Text != "" {
		textCol := paint.White
		if p.TextColor != nil {
			textCol = *p.TextColor
		}
		size := min(h/2, 24)
		if size < 1 {
			size = 1
		}
		if err := c.TextCentered(0, 0, w, h, p.Text, size, textCol); err != nil {
			return nil, err
		}
	}
	return c, nil
}
