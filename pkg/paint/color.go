// Package paint provides the color and gradient model for the raster engine.
//
// Colors are plain straight-alpha RGBA values. Gradients are an ordered pair
// of colors plus a direction tag, resolved to per-pixel colors by linear
// interpolation. All math is deterministic: the same inputs always yield the
// same channel values.
package paint

import (
	"image/color"
	"math"

	"github.com/pixelsmith/gamepainter/pkg/errors"
)

// Color is a straight-alpha RGBA color with 8-bit channels.
// It is an immutable value type.
type Color struct {
	R, G, B, A uint8
}

// RGB creates an opaque color from 8-bit channels.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA creates a color from 8-bit channels including alpha.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// FromChannels builds a Color from an untyped 3- or 4-element channel list,
// as received from tool parameters. A 3-element list gets an opaque alpha.
func FromChannels(channels []int) (Color, error) {
	if err := errors.ValidateChannels(channels); err != nil {
		return Color{}, err
	}
	c := Color{
		R: uint8(channels[0]),
		G: uint8(channels[1]),
		B: uint8(channels[2]),
		A: 255,
	}
	if len(channels) == 4 {
		c.A = uint8(channels[3])
	}
	return c, nil
}

// NRGBA converts to the standard library's straight-alpha color type.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// WithAlpha returns a copy of c with the alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// Lerp linearly interpolates between c and other per channel.
// t is clamped to [0, 1]; channel results are rounded to nearest.
// Lerp(c, other, 0) == c and Lerp(c, other, 1) == other exactly.
func (c Color) Lerp(other Color, t float64) Color {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return other
	}
	return Color{
		R: lerpChannel(c.R, other.R, t),
		G: lerpChannel(c.G, other.G, t),
		B: lerpChannel(c.B, other.B, t),
		A: lerpChannel(c.A, other.A, t),
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	v := math.Round(float64(a) + (float64(b)-float64(a))*t)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Over composites src over dst in straight-alpha space and returns the
// result. A fully opaque src replaces dst exactly; a fully transparent src
// leaves dst untouched.
func Over(src, dst Color) Color {
	if src.A == 255 || dst.A == 0 {
		return src
	}
	if src.A == 0 {
		return dst
	}
	sa := float64(src.A) / 255
	da := float64(dst.A) / 255
	outA := sa + da*(1-sa)
	blend := func(s, d uint8) uint8 {
		v := (float64(s)*sa + float64(d)*da*(1-sa)) / outA
		return uint8(math.Round(v))
	}
	return Color{
		R: blend(src.R, dst.R),
		G: blend(src.G, dst.G),
		B: blend(src.B, dst.B),
		A: uint8(math.Round(outA * 255)),
	}
}

// Common colors used by the composite renderers.
var (
	Transparent = Color{}
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
)
