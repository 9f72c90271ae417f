package widget

import (
	"math"

	"github.com/pixelsmith/gamepainter/pkg/canvas"
	"github.com/pixelsmith/gamepainter/pkg/paint"
)

// MinimapParams configures a minimap frame render. Zero values select a
// 120×120 circular frame with a brass border.
type MinimapParams struct {
	Width, Height int
	Shape         MinimapShape
	BorderColor   *paint.Color
}

func (p MinimapParams) withDefaults() MinimapParams {
	if p.Width == 0 {
		p.Width = 120
	}
	if p.Height == 0 {
		p.Height = 120
	}
	return p
}

// Minimap renders a minimap frame: a shaped viewport filled with stylized
// terrain, a border, a white player dot, and a facing wedge. Terrain is
// painted on a scratch canvas and masked into the viewport so the patches
// never bleed past the frame outline.
func Minimap(p MinimapParams) (*canvas.Canvas, error) {
	p = p.withDefaults()

	shape, err := ParseMinimapShape(string(p.Shape))
	if err != nil {
		return nil, err
	}
	border := paint.RGB(200, 180, 150)
	if p.BorderColor != nil {
		border = *p.BorderColor
	}

	w, h := p.Width, p.Height
	cx, cy := w/2, h/2
	r := min(w, h)/2 - 4

	c, err := canvas.New(w, h, paint.Transparent)
	if err != nil {
		return nil, err
	}

	mapBG := paint.RGB(80, 120, 80)
	var inside func(x, y int) bool

	switch shape {
	case MinimapCircle:
		if err := c.Ellipse(cx-r, cy-r, 2*r, 2*r, canvas.FillStroke(mapBG, border, 3)); err != nil {
			return nil, err
		}
		rr := float64(r)
		inside = func(x, y int) bool {
			dx, dy := float64(x-cx)+0.5, float64(y-cy)+0.5
			return dx*dx+dy*dy <= rr*rr
		}

	case MinimapSquare:
		if w <= 8 || h <= 8 {
			break
		}
		if err := c.Rect(4, 4, w-8, h-8, 4, canvas.FillStroke(mapBG, border, 3)); err != nil {
			return nil, err
		}
		inside = func(x, y int) bool {
			return x >= 4 && x < w-4 && y >= 4 && y < h-4
		}

	case MinimapHexagon:
		hex := canvas.RegularPolygon(6, cx, cy, r, 30)
		if err := c.Polygon(hex, canvas.FillStroke(mapBG, border, 3)); err != nil {
			return nil, err
		}
		rr := float64(r)
		inside = func(x, y int) bool {
			// Conservative inscribed-circle test keeps the terrain clear
			// of the hexagon's stroked edges.
			dx, dy := float64(x-cx)+0.5, float64(y-cy)+0.5
			return dx*dx+dy*dy <= rr*rr*0.75
		}
	}

	if inside != nil && r > 8 {
		if err := blendTerrain(c, cx, cy, r, inside); err != nil {
			return nil, err
		}
	}

	// Player marker: white dot plus a north-facing wedge.
	if err := c.Ellipse(cx-3, cy-3, 7, 7, canvas.FillOnly(paint.White)); err != nil {
		return nil, err
	}
	wedge := []canvas.Point{
		canvas.Pt(cx, cy-8),
		canvas.Pt(cx-4, cy-2),
		canvas.Pt(cx+4, cy-2),
	}
	if err := c.Polygon(wedge, canvas.FillOnly(paint.RGB(255, 200, 50))); err != nil {
		return nil, err
	}
	return c, nil
}

// blendTerrain scatters darker landmass blobs over the viewport. Patch
// placement is a fixed function of the frame radius, so equal parameters
// render equal maps. Patches draw on a scratch canvas and copy through the
// shape mask, clipping them to the viewport.
func blendTerrain(c *canvas.Canvas, cx, cy, r int, inside func(x, y int) bool) error {
	scratch := c.Clone()
	land := paint.RGB(60, 95, 60)
	water := paint.RGB(70, 105, 110)

	patches := []struct {
		dx, dy float64 // offset from center, in radius fractions
		size   float64 // diameter, in radius fractions
		col    paint.Color
	}{
		{-0.45, -0.35, 0.5, land},
		{0.3, -0.5, 0.4, land},
		{0.45, 0.25, 0.55, land},
		{-0.25, 0.45, 0.35, water},
		{-0.05, -0.05, 0.3, water},
	}
	for _, pt := range patches {
		d := int(math.Round(pt.size * float64(r)))
		if d < 2 {
			continue
		}
		px := cx + int(math.Round(pt.dx*float64(r))) - d/2
		py := cy + int(math.Round(pt.dy*float64(r))) - d/2
		if err := scratch.Ellipse(px, py, d, d, canvas.FillOnly(pt.col)); err != nil {
			return err
		}
	}

	c.CopyFrom(scratch, inside)
	return nil
}
