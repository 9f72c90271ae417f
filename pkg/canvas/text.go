package canvas

import (
	"image"

	"golang.org/x/image/font"

	"github.com/pixelsmith/gamepainter/pkg/errors"
	"github.com/pixelsmith/gamepainter/pkg/fonts"
	"github.com/pixelsmith/gamepainter/pkg/paint"
)

// Text renders s with the default typeface, anchored at (x, y) as the
// top-left corner of the line box. Glyphs outside the canvas clip normally.
// Fails with INVALID_DIMENSION for a non-positive font size.
func (c *Canvas) Text(x, y int, s string, size int, col paint.Color) error {
	if size <= 0 {
		return errors.New(errors.ErrCodeInvalidDimension, "font size must be positive, got %d", size)
	}
	if s == "" {
		return nil
	}
	c.drawString(fonts.Face(size), x, y+fonts.Ascent(size), s, col)
	return nil
}

// TextFace renders s like Text but with an explicit typeface.
func (c *Canvas) TextFace(x, y int, s string, face font.Face, col paint.Color) error {
	if s == "" {
		return nil
	}
	c.drawString(face, x, y+face.Metrics().Ascent.Ceil(), s, col)
	return nil
}

// TextCentered renders s centered inside the box [x, x+w) × [y, y+h).
func (c *Canvas) TextCentered(x, y, w, h int, s string, size int, col paint.Color) error {
	if size <= 0 {
		return errors.New(errors.ErrCodeInvalidDimension, "font size must be positive, got %d", size)
	}
	if s == "" {
		return nil
	}
	tw, th := fonts.Measure(s, size)
	return c.Text(x+(w-tw)/2, y+(h-th)/2, s, size, col)
}

// drawString rasterizes one line of text with the baseline at (x, baseline).
// The font drawer composites antialiased glyph coverage over the buffer and
// clips to its bounds.
func (c *Canvas) drawString(face font.Face, x, baseline int, s string, col paint.Color) {
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col.NRGBA()),
		Face: face,
		Dot:  fonts.Dot(x, baseline),
	}
	d.DrawString(s)
}
