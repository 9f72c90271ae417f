package canvas

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/pixelsmith/gamepainter/pkg/errors"
	"github.com/pixelsmith/gamepainter/pkg/paint"
)

func TestNewFillsBackground(t *testing.T) {
	bg := paint.RGBA(135, 206, 235, 255)
	c, err := New(300, 200, bg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if c.Width() != 300 || c.Height() != 200 {
		t.Errorf("dimensions = %dx%d, want 300x200", c.Width(), c.Height())
	}

	for _, pt := range []Point{{0, 0}, {299, 0}, {0, 199}, {299, 199}, {150, 100}} {
		if got := c.At(pt.X, pt.Y); got != bg {
			t.Errorf("At(%d,%d) = %v, want %v", pt.X, pt.Y, got, bg)
		}
	}
}

func TestNewRejectsBadDimensions(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 10},
		{"zero height", 10, 0},
		{"negative width", -1, 10},
		{"negative height", 10, -20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.w, tt.h, paint.White); !errors.Is(err, errors.ErrCodeInvalidDimension) {
				t.Errorf("New(%d, %d) error = %v, want INVALID_DIMENSION", tt.w, tt.h, err)
			}
		})
	}
}

func TestOpaqueFillRoundTrip(t *testing.T) {
	c, _ := New(50, 50, paint.Transparent)
	fill := paint.RGBA(220, 60, 60, 255)

	if err := c.Rect(10, 10, 20, 15, 0, FillOnly(fill)); err != nil {
		t.Fatalf("Rect() error = %v", err)
	}

	// Interior pixels must hold the fill color exactly: opaque drawing
	// replaces, it never blends.
	for _, pt := range []Point{{10, 10}, {29, 24}, {20, 17}} {
		if got := c.At(pt.X, pt.Y); got != fill {
			t.Errorf("At(%d,%d) = %v, want %v", pt.X, pt.Y, got, fill)
		}
	}

	// Pixels outside the rectangle keep the background.
	if got := c.At(9, 10); got != paint.Transparent {
		t.Errorf("At(9,10) = %v, want background", got)
	}
	if got := c.At(30, 10); got != paint.Transparent {
		t.Errorf("At(30,10) = %v, want background", got)
	}
}

func TestDrawingClipsSilently(t *testing.T) {
	bg := paint.RGB(1, 2, 3)
	c, _ := New(20, 20, bg)

	if err := c.Rect(-50, -50, 40, 40, 0, FillOnly(paint.White)); err != nil {
		t.Fatalf("clipped Rect() error = %v", err)
	}
	if err := c.Line(-100, 5, 200, 5, paint.Black, 1); err != nil {
		t.Fatalf("clipped Line() error = %v", err)
	}
	if err := c.Ellipse(100, 100, 30, 30, FillOnly(paint.White)); err != nil {
		t.Fatalf("offscreen Ellipse() error = %v", err)
	}

	// The fully offscreen ellipse must leave its quadrant untouched.
	if got := c.At(19, 19); got != bg {
		t.Errorf("At(19,19) = %v, want untouched background %v", got, bg)
	}
}

func TestInvalidGeometryRejectedBeforeDrawing(t *testing.T) {
	bg := paint.RGB(9, 9, 9)
	c, _ := New(30, 30, bg)

	cases := []struct {
		name string
		call func() error
	}{
		{"negative radius", func() error { return c.Rect(0, 0, 10, 10, -1, FillOnly(paint.White)) }},
		{"zero line width", func() error { return c.Line(0, 0, 10, 10, paint.White, 0) }},
		{"negative stroke", func() error {
			return c.Ellipse(0, 0, 10, 10, Style{Stroke: &paint.White, StrokeWidth: -2})
		}},
		{"bezier too few points", func() error { return c.Bezier([]Point{{0, 0}}, paint.White, 1) }},
		{"bezier too many points", func() error {
			return c.Bezier([]Point{{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 4}}, paint.White, 1)
		}},
		{"polygon too few points", func() error { return c.Polygon([]Point{{0, 0}, {5, 5}}, FillOnly(paint.White)) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.call(); !errors.Is(err, errors.ErrCodeInvalidGeometry) {
				t.Fatalf("error = %v, want INVALID_GEOMETRY", err)
			}
		})
	}

	// A failed call must leave the canvas exactly as it was.
	for y := 0; y < 30; y++ {
		for x := 0; x < 30; x++ {
			if got := c.At(x, y); got != bg {
				t.Fatalf("At(%d,%d) = %v, canvas modified by failed call", x, y, got)
			}
		}
	}
}

func TestPolygonEvenOddFill(t *testing.T) {
	c, _ := New(40, 40, paint.Transparent)
	fill := paint.RGB(50, 100, 200)

	square := []Point{{5, 5}, {34, 5}, {34, 34}, {5, 34}}
	if err := c.Polygon(square, FillOnly(fill)); err != nil {
		t.Fatalf("Polygon() error = %v", err)
	}

	if got := c.At(20, 20); got != fill {
		t.Errorf("interior At(20,20) = %v, want %v", got, fill)
	}
	if got := c.At(2, 2); got != paint.Transparent {
		t.Errorf("exterior At(2,2) = %v, want transparent", got)
	}
}

func TestLineEndpointsPainted(t *testing.T) {
	c, _ := New(30, 30, paint.Transparent)
	col := paint.RGB(255, 0, 0)

	if err := c.Line(3, 4, 25, 20, col, 1); err != nil {
		t.Fatalf("Line() error = %v", err)
	}
	if got := c.At(3, 4); got != col {
		t.Errorf("start pixel = %v, want %v", got, col)
	}
	if got := c.At(25, 20); got != col {
		t.Errorf("end pixel = %v, want %v", got, col)
	}
}

func TestArcAngleConvention(t *testing.T) {
	// 0° lies along +x and angles grow counter-clockwise in math
	// orientation, so with y pointing down each 90° sweep must stay in
	// one quadrant of the bounding box.
	col := paint.RGB(255, 0, 0)
	tests := []struct {
		name       string
		start, end float64
		inQuadrant func(x, y int) bool
	}{
		{"0 to 90 upper right", 0, 90, func(x, y int) bool { return x >= 50 && y <= 50 }},
		{"90 to 180 upper left", 90, 180, func(x, y int) bool { return x <= 50 && y <= 50 }},
		{"180 to 270 lower left", 180, 270, func(x, y int) bool { return x <= 50 && y >= 50 }},
		{"270 to 360 lower right", 270, 360, func(x, y int) bool { return x >= 50 && y >= 50 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := New(100, 100, paint.Transparent)
			if err := c.Arc(0, 0, 100, 100, tt.start, tt.end, col, 1); err != nil {
				t.Fatalf("Arc() error = %v", err)
			}

			painted := 0
			for y := 0; y < 100; y++ {
				for x := 0; x < 100; x++ {
					if c.At(x, y) == paint.Transparent {
						continue
					}
					painted++
					if !tt.inQuadrant(x, y) {
						t.Fatalf("At(%d,%d) painted outside the %s quadrant", x, y, tt.name)
					}
				}
			}
			if painted == 0 {
				t.Error("sweep painted nothing")
			}
		})
	}
}

func TestBezierEndpointsOnControlPoints(t *testing.T) {
	c, _ := New(50, 50, paint.Transparent)
	col := paint.RGB(0, 0, 255)

	// The curve is evaluated at t=0 and t=1, so the first and last control
	// points are painted exactly.
	pts := []Point{{5, 25}, {15, 2}, {35, 48}, {45, 25}}
	if err := c.Bezier(pts, col, 1); err != nil {
		t.Fatalf("Bezier() error = %v", err)
	}
	if got := c.At(5, 25); got != col {
		t.Errorf("first control point = %v, want %v", got, col)
	}
	if got := c.At(45, 25); got != col {
		t.Errorf("last control point = %v, want %v", got, col)
	}

	// Interior control points steer the curve without lying on it.
	if got := c.At(15, 2); got == col {
		t.Error("curve passes through an interior control point")
	}
}

func TestSaveWritesLosslessPNG(t *testing.T) {
	bg := paint.RGBA(135, 206, 235, 255)
	c, _ := New(300, 200, bg)

	path := filepath.Join(t.TempDir(), "nested", "scene.png")
	abs, err := c.Save(path)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if !filepath.IsAbs(abs) {
		t.Errorf("Save() returned %q, want absolute path", abs)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening saved file: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding saved PNG: %v", err)
	}
	if img.Bounds().Dx() != 300 || img.Bounds().Dy() != 200 {
		t.Errorf("saved size = %dx%d, want 300x200", img.Bounds().Dx(), img.Bounds().Dy())
	}

	// Border pixels must round-trip the background color exactly.
	r, g, b, a := img.At(0, 0).RGBA()
	if uint8(r>>8) != bg.R || uint8(g>>8) != bg.G || uint8(b>>8) != bg.B || uint8(a>>8) != bg.A {
		t.Errorf("corner pixel = (%d,%d,%d,%d), want %v", r>>8, g>>8, b>>8, a>>8, bg)
	}
}

func TestSaveRejectsLossyExtension(t *testing.T) {
	c, _ := New(10, 10, paint.White)
	if _, err := c.Save(filepath.Join(t.TempDir(), "out.jpg")); !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("Save(.jpg) error = %v, want INVALID_PATH", err)
	}
}

func TestFloodFillReplacesRegion(t *testing.T) {
	c, _ := New(20, 20, paint.White)
	border := paint.Black
	inner := paint.RGB(255, 0, 0)

	// Box the center, then fill inside it.
	if err := c.Rect(5, 5, 10, 10, 0, StrokeOnly(border, 1)); err != nil {
		t.Fatalf("Rect() error = %v", err)
	}
	c.FloodFill(10, 10, inner)

	if got := c.At(10, 10); got != inner {
		t.Errorf("inside At(10,10) = %v, want %v", got, inner)
	}
	if got := c.At(2, 2); got != paint.White {
		t.Errorf("outside At(2,2) = %v, want untouched white", got)
	}
}
