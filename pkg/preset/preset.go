// Package preset draws small ready-made figures — a car, a house, a tree —
// from fixed shape lists. Each figure is an ordered, immutable sequence of
// primitive descriptors instantiated with an offset and a uniform scale, so
// the same call always paints the same pixels.
package preset

import (
	"math"

	"github.com/pixelsmith/gamepainter/pkg/canvas"
	"github.com/pixelsmith/gamepainter/pkg/errors"
	"github.com/pixelsmith/gamepainter/pkg/paint"
)

// Figure names a preset shape list.
type Figure string

// Preset figures.
const (
	FigureCar   Figure = "car"
	FigureHouse Figure = "house"
	FigureTree  Figure = "tree"
)

// ParseFigure validates a preset name parameter.
func ParseFigure(s string) (Figure, error) {
	switch Figure(s) {
	case FigureCar, FigureHouse, FigureTree:
		return Figure(s), nil
	}
	return "", errors.New(errors.ErrCodeInvalidEnum, "unknown preset figure %q", s)
}

// Size returns the natural width and height of a figure at scale 1,
// including borders. Callers size canvases from it before drawing.
func Size(fig Figure) (w, h int) {
	switch fig {
	case FigureCar:
		return 150, 70
	case FigureHouse:
		return 140, 125
	default:
		return 90, 125
	}
}

type kind int

const (
	kindPolygon kind = iota
	kindRect
	kindEllipse
	kindDot
)

// role marks which descriptor colors the caller may override. Each figure
// has one primary surface (car body, house wall, tree trunk) and one
// secondary (windows, roof, canopy); everything else keeps its fixed color.
type role int

const (
	roleFixed role = iota
	rolePrimary
	roleSecondary
)

// shape is one primitive in a figure's draw list, in figure-local
// coordinates at scale 1.
type shape struct {
	kind       kind
	pts        []canvas.Point // polygons
	x, y, w, h int            // rects, ellipses, dots (w doubles as dot size)
	fill       paint.Color
	role       role
	border     *paint.Color
	borderW    int
}

func rgb(r, g, b uint8) *paint.Color {
	c := paint.RGB(r, g, b)
	return &c
}

var figures = map[Figure][]shape{
	FigureCar: {
		{kind: kindPolygon, pts: pts(10, 50, 10, 35, 140, 35, 140, 50), fill: paint.RGB(220, 50, 50), role: rolePrimary, border: rgb(0, 0, 0), borderW: 2},
		{kind: kindPolygon, pts: pts(30, 35, 40, 15, 100, 15, 110, 35), fill: paint.RGB(220, 50, 50), role: rolePrimary, border: rgb(0, 0, 0), borderW: 2},
		{kind: kindPolygon, pts: pts(42, 33, 48, 18, 68, 18, 68, 33), fill: paint.RGB(150, 200, 255), role: roleSecondary, border: rgb(50, 50, 50), borderW: 1},
		{kind: kindPolygon, pts: pts(72, 33, 72, 18, 95, 18, 102, 33), fill: paint.RGB(150, 200, 255), role: roleSecondary, border: rgb(50, 50, 50), borderW: 1},
		{kind: kindEllipse, x: 130, y: 38, w: 12, h: 8, fill: paint.RGB(255, 255, 150), border: rgb(200, 180, 50), borderW: 1},
		{kind: kindEllipse, x: 8, y: 38, w: 10, h: 8, fill: paint.RGB(255, 50, 50), border: rgb(150, 30, 30), borderW: 1},
		{kind: kindEllipse, x: 25, y: 42, w: 24, h: 24, fill: paint.RGB(40, 40, 40), border: rgb(20, 20, 20), borderW: 2},
		{kind: kindEllipse, x: 31, y: 48, w: 12, h: 12, fill: paint.RGB(180, 180, 180)},
		{kind: kindEllipse, x: 100, y: 42, w: 24, h: 24, fill: paint.RGB(40, 40, 40), border: rgb(20, 20, 20), borderW: 2},
		{kind: kindEllipse, x: 106, y: 48, w: 12, h: 12, fill: paint.RGB(180, 180, 180)},
	},
	FigureHouse: {
		{kind: kindRect, x: 20, y: 50, w: 100, h: 70, fill: paint.RGB(255, 230, 180), role: rolePrimary, border: rgb(100, 80, 50), borderW: 2},
		{kind: kindPolygon, pts: pts(10, 50, 70, 10, 130, 50), fill: paint.RGB(180, 80, 50), role: roleSecondary, border: rgb(100, 40, 20), borderW: 2},
		{kind: kindRect, x: 55, y: 80, w: 30, h: 40, fill: paint.RGB(139, 90, 43), border: rgb(90, 60, 30), borderW: 2},
		{kind: kindDot, x: 80, y: 100, w: 4, fill: paint.RGB(255, 215, 0)},
		{kind: kindRect, x: 28, y: 60, w: 20, h: 18, fill: paint.RGB(150, 200, 255), border: rgb(100, 80, 50), borderW: 2},
		{kind: kindRect, x: 92, y: 60, w: 20, h: 18, fill: paint.RGB(150, 200, 255), border: rgb(100, 80, 50), borderW: 2},
		{kind: kindRect, x: 95, y: 20, w: 15, h: 30, fill: paint.RGB(150, 80, 50), border: rgb(100, 50, 30), borderW: 2},
	},
	FigureTree: {
		{kind: kindRect, x: 35, y: 70, w: 20, h: 50, fill: paint.RGB(139, 90, 43), role: rolePrimary, border: rgb(100, 60, 30), borderW: 2},
		{kind: kindPolygon, pts: pts(5, 75, 45, 40, 85, 75), fill: paint.RGB(50, 180, 50), role: roleSecondary, border: rgb(30, 120, 30), borderW: 2},
		{kind: kindPolygon, pts: pts(12, 55, 45, 22, 78, 55), fill: paint.RGB(50, 180, 50), role: roleSecondary, border: rgb(30, 120, 30), borderW: 2},
		{kind: kindPolygon, pts: pts(20, 35, 45, 5, 70, 35), fill: paint.RGB(50, 180, 50), role: roleSecondary, border: rgb(30, 120, 30), borderW: 2},
	},
}

func pts(coords ...int) []canvas.Point {
	out := make([]canvas.Point, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		out = append(out, canvas.Pt(coords[i], coords[i+1]))
	}
	return out
}

// Draw paints a preset figure onto c with its top-left near (x, y), scaled
// uniformly. Primary and secondary override the figure's two main surface
// colors when non-nil; accents keep their fixed colors. Fails with
// INVALID_GEOMETRY for a non-positive scale. Shapes that scale below one
// pixel are skipped rather than erroring.
func Draw(c *canvas.Canvas, fig Figure, x, y int, scale float64, primary, secondary *paint.Color) error {
	if scale <= 0 {
		return errors.New(errors.ErrCodeInvalidGeometry, "preset scale must be positive, got %g", scale)
	}
	fig, err := ParseFigure(string(fig))
	if err != nil {
		return err
	}

	s := func(v int) int { return int(math.Round(float64(v) * scale)) }

	for _, sh := range figures[fig] {
		fill := sh.fill
		switch {
		case sh.role == rolePrimary && primary != nil:
			fill = *primary
		case sh.role == roleSecondary && secondary != nil:
			fill = *secondary
		}

		st := canvas.Style{Fill: &fill, Stroke: sh.border, StrokeWidth: sh.borderW}
		switch sh.kind {
		case kindPolygon:
			scaled := make([]canvas.Point, len(sh.pts))
			for i, p := range sh.pts {
				scaled[i] = canvas.Pt(x+s(p.X), y+s(p.Y))
			}
			err = c.Polygon(scaled, st)

		case kindRect:
			if s(sh.w) < 1 || s(sh.h) < 1 {
				continue
			}
			err = c.Rect(x+s(sh.x), y+s(sh.y), s(sh.w), s(sh.h), 0, st)

		case kindEllipse:
			if s(sh.w) < 1 || s(sh.h) < 1 {
				continue
			}
			err = c.Ellipse(x+s(sh.x), y+s(sh.y), s(sh.w), s(sh.h), st)

		case kindDot:
			c.Dot(x+s(sh.x), y+s(sh.y), fill, s(sh.w))
		}
		if err != nil {
			return err
		}
	}
	return nil
}
