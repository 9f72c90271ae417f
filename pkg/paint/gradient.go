package paint

import "github.com/pixelsmith/gamepainter/pkg/errors"

// Direction selects the axis along which a two-color gradient is computed.
type Direction string

// Gradient directions.
const (
	DirectionNone       Direction = "none"
	DirectionHorizontal Direction = "horizontal"
	DirectionVertical   Direction = "vertical"
	DirectionDiagonal   Direction = "diagonal"
)

// ParseDirection validates a direction string received as a tool parameter.
// An empty string means no gradient.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case DirectionNone, DirectionHorizontal, DirectionVertical, DirectionDiagonal:
		return Direction(s), nil
	case "":
		return DirectionNone, nil
	}
	return "", errors.New(errors.ErrCodeInvalidEnum, "unknown gradient direction %q", s)
}

// Gradient is an ordered pair of colors with a blend direction.
// DirectionNone degenerates to the start color everywhere.
type Gradient struct {
	Start Color
	End   Color
	Dir   Direction
}

// Solid returns a degenerate gradient that resolves to c everywhere.
func Solid(c Color) Gradient {
	return Gradient{Start: c, End: c, Dir: DirectionNone}
}

// At resolves the gradient color for pixel (x, y) inside a w×h region.
// The first pixel along the gradient axis is exactly Start and the last
// is exactly End. Coordinates are region-local.
func (g Gradient) At(x, y, w, h int) Color {
	switch g.Dir {
	case DirectionHorizontal:
		return g.Start.Lerp(g.End, fraction(x, w))
	case DirectionVertical:
		return g.Start.Lerp(g.End, fraction(y, h))
	case DirectionDiagonal:
		return g.Start.Lerp(g.End, fraction(x+y, w+h-1))
	default:
		return g.Start
	}
}

// fraction maps index i in a span of n steps to [0, 1] with exact endpoints.
func fraction(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	if i <= 0 {
		return 0
	}
	if i >= n-1 {
		return 1
	}
	return float64(i) / float64(n-1)
}
