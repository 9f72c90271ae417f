package canvas

import (
	"math"

	"github.com/pixelsmith/gamepainter/pkg/errors"
	"github.com/pixelsmith/gamepainter/pkg/paint"
)

// Arc draws the swept portion of an ellipse outline inscribed in the
// bounding box [x, x+w) × [y, y+h). Angles are in degrees with 0° along the
// positive x axis, increasing counter-clockwise in the standard math
// orientation; since the canvas y axis points down, a 0°→90° sweep appears
// in the upper-right quadrant. Only the arc itself is drawn, never a closed
// shape. A start angle equal to the end angle draws nothing.
func (c *Canvas) Arc(x, y, w, h int, startAngle, endAngle float64, col paint.Color, width int) error {
	if err := errors.ValidateDimensions(w, h); err != nil {
		return err
	}
	if width <= 0 {
		return errors.New(errors.ErrCodeInvalidGeometry, "arc width must be positive, got %d", width)
	}
	if startAngle == endAngle {
		return nil
	}

	rx, ry := float64(w)/2, float64(h)/2
	cx, cy := float64(x)+rx, float64(y)+ry

	sweep := endAngle - startAngle
	// Sample densely enough that consecutive points land on adjacent
	// pixels even on large ellipses.
	steps := max(32, int(math.Abs(sweep)/360*2*math.Pi*math.Max(rx, ry))*2)

	prevX, prevY := 0, 0
	for i := 0; i <= steps; i++ {
		theta := (startAngle + sweep*float64(i)/float64(steps)) * math.Pi / 180
		px := int(math.Round(cx + rx*math.Cos(theta) - 0.5))
		py := int(math.Round(cy - ry*math.Sin(theta) - 0.5))
		if i > 0 {
			c.line(prevX, prevY, px, py, col, width)
		}
		prevX, prevY = px, py
	}
	return nil
}

// ArcPoint returns the pixel on the arc's ellipse at the given angle, using
// the same angle convention as Arc. Composite renderers use it to attach
// arrowheads to arc endpoints.
func ArcPoint(x, y, w, h int, angle float64) Point {
	rx, ry := float64(w)/2, float64(h)/2
	cx, cy := float64(x)+rx, float64(y)+ry
	theta := angle * math.Pi / 180
	return Pt(
		int(math.Round(cx+rx*math.Cos(theta)-0.5)),
		int(math.Round(cy-ry*math.Sin(theta)-0.5)),
	)
}

// Bezier draws a Bezier curve through 2 to 4 control points: a straight
// segment, a quadratic, or a cubic. The curve is evaluated by De Casteljau
// reduction at a fixed sample count and rendered as a polyline. Fails with
// INVALID_GEOMETRY for any other control-point count.
func (c *Canvas) Bezier(points []Point, col paint.Color, width int) error {
	if len(points) < 2 || len(points) > 4 {
		return errors.New(errors.ErrCodeInvalidGeometry, "bezier needs 2 to 4 control points, got %d", len(points))
	}
	if width <= 0 {
		return errors.New(errors.ErrCodeInvalidGeometry, "bezier width must be positive, got %d", width)
	}

	const samples = 48
	curve := make([]Point, 0, samples+1)
	for i := 0; i <= samples; i++ {
		t := float64(i) / samples
		fx, fy := deCasteljau(points, t)
		curve = append(curve, Pt(int(math.Round(fx)), int(math.Round(fy))))
	}
	return c.Polyline(curve, col, width, false)
}

// deCasteljau evaluates the Bezier curve at parameter t by repeated linear
// interpolation of the control polygon.
func deCasteljau(points []Point, t float64) (float64, float64) {
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i] = float64(p.X), float64(p.Y)
	}
	for n := len(points) - 1; n > 0; n-- {
		for i := 0; i < n; i++ {
			xs[i] += t * (xs[i+1] - xs[i])
			ys[i] += t * (ys[i+1] - ys[i])
		}
	}
	return xs[0], ys[0]
}
