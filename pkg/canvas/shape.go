package canvas

import (
	"math"

	"github.com/pixelsmith/gamepainter/pkg/errors"
	"github.com/pixelsmith/gamepainter/pkg/paint"
)

// Style carries the optional fill and stroke of a closed shape.
// A nil Fill (and FillGradient) leaves the interior untouched; a nil Stroke
// draws no border. The stroke band occupies the outermost StrokeWidth pixels
// of the shape, with the fill covering the interior inside it.
type Style struct {
	Fill         *paint.Color
	FillGradient *paint.Gradient
	Stroke       *paint.Color
	StrokeWidth  int
}

// FillOnly is shorthand for a solid fill with no stroke.
func FillOnly(c paint.Color) Style {
	return Style{Fill: &c}
}

// StrokeOnly is shorthand for a border with no fill.
func StrokeOnly(c paint.Color, width int) Style {
	return Style{Stroke: &c, StrokeWidth: width}
}

// FillStroke is shorthand for a solid fill with a border.
func FillStroke(fill, stroke paint.Color, width int) Style {
	return Style{Fill: &fill, Stroke: &stroke, StrokeWidth: width}
}

func (s Style) validate() (Style, error) {
	if s.StrokeWidth < 0 {
		return s, errors.New(errors.ErrCodeInvalidGeometry, "stroke width must not be negative, got %d", s.StrokeWidth)
	}
	if s.Stroke != nil && s.StrokeWidth == 0 {
		s.StrokeWidth = 1
	}
	return s, nil
}

// at resolves the paint color for a shape-local pixel, preferring the
// gradient when both fill forms are present.
func (s Style) at(x, y, w, h int) (paint.Color, bool) {
	if s.FillGradient != nil {
		return s.FillGradient.At(x, y, w, h), true
	}
	if s.Fill != nil {
		return *s.Fill, true
	}
	return paint.Color{}, false
}

// Rect draws an axis-aligned rectangle with optional rounded corners.
// The rectangle occupies [x, x+w) × [y, y+h). A radius greater than zero
// rounds the corners with quarter circles; the radius is clamped to half the
// shorter side. Fails with INVALID_DIMENSION for non-positive w or h and
// INVALID_GEOMETRY for a negative radius.
func (c *Canvas) Rect(x, y, w, h, radius int, st Style) error {
	if err := errors.ValidateDimensions(w, h); err != nil {
		return err
	}
	if radius < 0 {
		return errors.New(errors.ErrCodeInvalidGeometry, "corner radius must not be negative, got %d", radius)
	}
	st, err := st.validate()
	if err != nil {
		return err
	}
	if radius > min(w, h)/2 {
		radius = min(w, h) / 2
	}

	sw := 0
	if st.Stroke != nil {
		sw = st.StrokeWidth
	}
	innerR := max(radius-sw, 0)

	for py := 0; py < h; py++ {
		for px := 0; px < w; px++ {
			if !insideRoundRect(px, py, w, h, radius) {
				continue
			}
			if sw > 0 && !insideRoundRect(px-sw, py-sw, w-2*sw, h-2*sw, innerR) {
				c.Set(x+px, y+py, *st.Stroke)
				continue
			}
			if col, ok := st.at(px, py, w, h); ok {
				c.Set(x+px, y+py, col)
			}
		}
	}
	return nil
}

// insideRoundRect reports whether the pixel centered at (px+0.5, py+0.5)
// lies inside a w×h rounded rectangle anchored at the origin.
func insideRoundRect(px, py, w, h, r int) bool {
	if px < 0 || px >= w || py < 0 || py >= h {
		return false
	}
	if r <= 0 {
		return true
	}
	fx, fy := float64(px)+0.5, float64(py)+0.5
	fr := float64(r)
	var cx, cy float64
	switch {
	case fx < fr && fy < fr:
		cx, cy = fr, fr
	case fx > float64(w)-fr && fy < fr:
		cx, cy = float64(w)-fr, fr
	case fx < fr && fy > float64(h)-fr:
		cx, cy = fr, float64(h)-fr
	case fx > float64(w)-fr && fy > float64(h)-fr:
		cx, cy = float64(w)-fr, float64(h)-fr
	default:
		return true
	}
	dx, dy := fx-cx, fy-cy
	return dx*dx+dy*dy <= fr*fr
}

// Ellipse draws an axis-aligned ellipse inscribed in the bounding box
// [x, x+w) × [y, y+h). A circle is the w == h special case.
func (c *Canvas) Ellipse(x, y, w, h int, st Style) error {
	if err := errors.ValidateDimensions(w, h); err != nil {
		return err
	}
	st, err := st.validate()
	if err != nil {
		return err
	}

	rx, ry := float64(w)/2, float64(h)/2
	cx, cy := float64(x)+rx, float64(y)+ry
	sw := 0
	if st.Stroke != nil {
		sw = st.StrokeWidth
	}
	irx, iry := math.Max(rx-float64(sw), 0), math.Max(ry-float64(sw), 0)

	for py := 0; py < h; py++ {
		for px := 0; px < w; px++ {
			fx, fy := float64(x+px)+0.5, float64(y+py)+0.5
			if !insideEllipse(fx, fy, cx, cy, rx, ry) {
				continue
			}
			if sw > 0 && !insideEllipse(fx, fy, cx, cy, irx, iry) {
				c.Set(x+px, y+py, *st.Stroke)
				continue
			}
			if col, ok := st.at(px, py, w, h); ok {
				c.Set(x+px, y+py, col)
			}
		}
	}
	return nil
}

func insideEllipse(fx, fy, cx, cy, rx, ry float64) bool {
	if rx <= 0 || ry <= 0 {
		return false
	}
	dx, dy := (fx-cx)/rx, (fy-cy)/ry
	return dx*dx+dy*dy <= 1
}

// Polygon draws a closed polygon. The interior is filled with the even-odd
// rule — deterministic for self-intersecting input, if not always visually
// "correct". The stroke is drawn as a closed polyline over the fill.
// Fewer than three points fails with INVALID_GEOMETRY.
func (c *Canvas) Polygon(points []Point, st Style) error {
	if len(points) < 3 {
		return errors.New(errors.ErrCodeInvalidGeometry, "polygon needs at least 3 points, got %d", len(points))
	}
	st, err := st.validate()
	if err != nil {
		return err
	}

	minX, minY, maxX, maxY := bounds(points)
	w, h := maxX-minX+1, maxY-minY+1

	if _, hasFill := st.at(0, 0, 1, 1); hasFill {
		for y := minY; y <= maxY; y++ {
			xs := scanlineCrossings(points, float64(y)+0.5)
			for i := 0; i+1 < len(xs); i += 2 {
				x0 := int(math.Ceil(xs[i] - 0.5))
				x1 := int(math.Floor(xs[i+1] - 0.5))
				for x := x0; x <= x1; x++ {
					col, _ := st.at(x-minX, y-minY, w, h)
					c.Set(x, y, col)
				}
			}
		}
	}

	if st.Stroke != nil {
		if err := c.Polyline(points, *st.Stroke, st.StrokeWidth, true); err != nil {
			return err
		}
	}
	return nil
}

// scanlineCrossings returns the sorted x coordinates where the polygon's
// edges cross the horizontal line at fy. Each crossing is counted once per
// edge whose half-open y span contains fy, which pairs crossings correctly
// for the even-odd rule.
func scanlineCrossings(points []Point, fy float64) []float64 {
	var xs []float64
	n := len(points)
	for i := 0; i < n; i++ {
		p1, p2 := points[i], points[(i+1)%n]
		y1, y2 := float64(p1.Y), float64(p2.Y)
		if y1 == y2 {
			continue
		}
		if (y1 <= fy && fy < y2) || (y2 <= fy && fy < y1) {
			t := (fy - y1) / (y2 - y1)
			xs = append(xs, float64(p1.X)+t*float64(p2.X-p1.X))
		}
	}
	sortFloats(xs)
	return xs
}

func sortFloats(xs []float64) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j] < xs[j-1]; j-- {
			xs[j], xs[j-1] = xs[j-1], xs[j]
		}
	}
}

func bounds(points []Point) (minX, minY, maxX, maxY int) {
	minX, minY = points[0].X, points[0].Y
	maxX, maxY = minX, minY
	for _, p := range points[1:] {
		minX, minY = min(minX, p.X), min(minY, p.Y)
		maxX, maxY = max(maxX, p.X), max(maxY, p.Y)
	}
	return minX, minY, maxX, maxY
}

// RegularPolygon computes the vertices of a regular polygon with the given
// number of sides, centered on (cx, cy) with circumradius r. With zero
// rotation the first vertex points straight up; rotation is in degrees and
// turns the shape clockwise on screen.
func RegularPolygon(sides, cx, cy, r int, rotation float64) []Point {
	pts := make([]Point, 0, sides)
	rot := (rotation - 90) * math.Pi / 180
	for i := 0; i < sides; i++ {
		angle := rot + 2*math.Pi*float64(i)/float64(sides)
		pts = append(pts, Pt(
			cx+int(math.Round(float64(r)*math.Cos(angle))),
			cy+int(math.Round(float64(r)*math.Sin(angle))),
		))
	}
	return pts
}
