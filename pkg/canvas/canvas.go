// Package canvas implements the raster drawing engine: an owned RGBA pixel
// buffer with clipped primitive rasterizers, and a registry that tracks live
// canvases by opaque identifier for the multi-step pen workflow.
//
// # Coordinate system
//
// The origin is the top-left corner; x grows rightward and y grows downward,
// in pixel units. All drawing operations clip silently to the canvas bounds —
// geometry outside the buffer is a no-op, never an error. Invalid geometry
// (negative radius, non-positive stroke width, bad control-point counts) is
// rejected before any pixel is touched.
//
// # Color model
//
// The buffer holds straight (non-premultiplied) RGBA. Writes composite
// source-over: drawing with alpha 255 replaces the destination exactly, so
// reading back a pixel painted with an opaque color yields that color
// bit-for-bit.
package canvas

import (
	"image"

	"github.com/pixelsmith/gamepainter/pkg/errors"
	"github.com/pixelsmith/gamepainter/pkg/paint"
)

// Canvas is a fixed-size straight-alpha RGBA pixel buffer.
// Buffer dimensions never change after creation.
type Canvas struct {
	id   string
	img  *image.NRGBA
	w, h int
}

// New allocates a w×h canvas filled with the background color.
// Fails with INVALID_DIMENSION if either dimension is not positive.
func New(w, h int, bg paint.Color) (*Canvas, error) {
	if err := errors.ValidateDimensions(w, h); err != nil {
		return nil, err
	}
	c := &Canvas{
		img: image.NewNRGBA(image.Rect(0, 0, w, h)),
		w:   w,
		h:   h,
	}
	c.Fill(bg)
	return c, nil
}

// FromNRGBA wraps an existing straight-alpha buffer in a Canvas.
// Used when a transformed copy (flip, rotate) replaces direct drawing.
func FromNRGBA(img *image.NRGBA) *Canvas {
	b := img.Bounds()
	return &Canvas{img: img, w: b.Dx(), h: b.Dy()}
}

// ID returns the registry identifier, or the empty string for a canvas that
// was never registered.
func (c *Canvas) ID() string { return c.id }

// Width returns the buffer width in pixels.
func (c *Canvas) Width() int { return c.w }

// Height returns the buffer height in pixels.
func (c *Canvas) Height() int { return c.h }

// Image exposes the underlying buffer for encoding and tests.
// Mutating it bypasses clipping; callers should treat it as read-only.
func (c *Canvas) Image() *image.NRGBA { return c.img }

// Fill overwrites every pixel with the given color, including alpha.
func (c *Canvas) Fill(col paint.Color) {
	n := col.NRGBA()
	for y := 0; y < c.h; y++ {
		row := c.img.Pix[y*c.img.Stride : y*c.img.Stride+c.w*4]
		for x := 0; x < c.w; x++ {
			row[x*4+0] = n.R
			row[x*4+1] = n.G
			row[x*4+2] = n.B
			row[x*4+3] = n.A
		}
	}
}

// Set composites col over the pixel at (x, y). Writes outside the canvas
// bounds are discarded.
func (c *Canvas) Set(x, y int, col paint.Color) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return
	}
	if col.A == 255 {
		i := c.img.PixOffset(x, y)
		c.img.Pix[i+0] = col.R
		c.img.Pix[i+1] = col.G
		c.img.Pix[i+2] = col.B
		c.img.Pix[i+3] = col.A
		return
	}
	if col.A == 0 {
		return
	}
	i := c.img.PixOffset(x, y)
	dst := paint.RGBA(c.img.Pix[i+0], c.img.Pix[i+1], c.img.Pix[i+2], c.img.Pix[i+3])
	out := paint.Over(col, dst)
	c.img.Pix[i+0] = out.R
	c.img.Pix[i+1] = out.G
	c.img.Pix[i+2] = out.B
	c.img.Pix[i+3] = out.A
}

// At returns the color of the pixel at (x, y).
// Out-of-bounds reads return the zero (transparent) color.
func (c *Canvas) At(x, y int) paint.Color {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return paint.Color{}
	}
	i := c.img.PixOffset(x, y)
	return paint.RGBA(c.img.Pix[i+0], c.img.Pix[i+1], c.img.Pix[i+2], c.img.Pix[i+3])
}

// Clone returns a deep copy of the canvas with an unset identifier.
// Composite renderers snapshot a canvas before drawing so regions can later
// be restored through CopyFrom, which is how transparent cut-outs work.
func (c *Canvas) Clone() *Canvas {
	img := image.NewNRGBA(c.img.Bounds())
	copy(img.Pix, c.img.Pix)
	return &Canvas{img: img, w: c.w, h: c.h}
}

// CopyFrom replaces this canvas's pixels with src's wherever mask returns
// true for the canvas-local coordinate. Both canvases must share dimensions;
// mismatches are clipped to the overlapping region.
func (c *Canvas) CopyFrom(src *Canvas, mask func(x, y int) bool) {
	w, h := min(c.w, src.w), min(c.h, src.h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if mask == nil || mask(x, y) {
				si := src.img.PixOffset(x, y)
				di := c.img.PixOffset(x, y)
				copy(c.img.Pix[di:di+4], src.img.Pix[si:si+4])
			}
		}
	}
}
