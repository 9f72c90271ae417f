package widget

import (
	"math"

	"github.com/disintegration/imaging"

	"github.com/pixelsmith/gamepainter/pkg/canvas"
	"github.com/pixelsmith/gamepainter/pkg/paint"
)

// IconParams configures a procedural icon render on a square canvas.
// Zero values select a 64×64 star. Gem, Direction, and ArrowStyle only
// apply to their respective icon types.
type IconParams struct {
	Size       int
	Type       IconType
	Gem        GemType
	Direction  Direction
	ArrowStyle ArrowStyle
}

func (p IconParams) withDefaults() IconParams {
	if p.Size == 0 {
		p.Size = 64
	}
	return p
}

// Icon renders a game icon onto a fresh transparent square canvas.
func Icon(p IconParams) (*canvas.Canvas, error) {
	p = p.withDefaults()

	typ, err := ParseIconType(string(p.Type))
	if err != nil {
		return nil, err
	}

	switch typ {
	case IconArrow:
		return arrowIcon(p)
	case IconGem:
		gem, err := ParseGemType(string(p.Gem))
		if err != nil {
			return nil, err
		}
		c, err := canvas.New(p.Size, p.Size, paint.Transparent)
		if err != nil {
			return nil, err
		}
		return c, drawGem(c, p.Size, gem)
	}

	c, err := canvas.New(p.Size, p.Size, paint.Transparent)
	if err != nil {
		return nil, err
	}
	switch typ {
	case IconStar:
		err = drawStar(c, p.Size)
	case IconCoin:
		err = drawCoin(c, p.Size)
	case IconHeart:
		err = drawHeart(c, p.Size)
	case IconShield:
		err = drawShield(c, p.Size)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// drawStar draws a five-pointed star by alternating outer and inner
// vertices around the center, first point up.
func drawStar(c *canvas.Canvas, size int) error {
	cx, cy := size/2, size/2
	outerR := float64(size/2 - 4)
	innerR := outerR * 0.4

	const points = 5
	verts := make([]canvas.Point, 0, points*2)
	for i := 0; i < points*2; i++ {
		angle := math.Pi*float64(i)/points - math.Pi/2
		r := outerR
		if i%2 == 1 {
			r = innerR
		}
		verts = append(verts, canvas.Pt(
			cx+int(math.Round(r*math.Cos(angle))),
			cy+int(math.Round(r*math.Sin(angle))),
		))
	}

	return c.Polygon(verts, canvas.FillStroke(paint.RGB(255, 215, 0), paint.RGB(218, 165, 32), 2))
}

func drawCoin(c *canvas.Canvas, size int) error {
	cx, cy := size/2, size/2
	r := size/2 - 4

	gold := paint.RGB(255, 215, 0)
	darkGold := paint.RGB(218, 165, 32)
	lightGold := paint.RGB(255, 239, 180)

	if err := c.Ellipse(cx-r, cy-r, 2*r, 2*r, canvas.FillOnly(darkGold)); err != nil {
		return err
	}
	innerR := int(float64(r) * 0.85)
	if err := c.Ellipse(cx-innerR, cy-innerR, 2*innerR, 2*innerR, canvas.FillOnly(gold)); err != nil {
		return err
	}

	// Upper rim highlight.
	hr := int(float64(r) * 0.7)
	if err := c.Arc(cx-hr, cy-hr, 2*hr, 2*hr, 20, 160, lightGold, 2); err != nil {
		return err
	}

	return c.TextCentered(0, 0, size, size, "$", int(float64(r)*1.2), darkGold)
}

// drawGem draws a faceted diamond: four triangles meeting at the center,
// lit from the upper left, with a small white glint.
func drawGem(c *canvas.Canvas, size int, gem GemType) error {
	cx, cy := float64(size)/2, float64(size)/2
	s := float64(size/2 - 4)
	colors := gems[gem]

	pt := func(x, y float64) canvas.Point {
		return canvas.Pt(int(math.Round(x)), int(math.Round(y)))
	}
	top := pt(cx, cy-s)
	bottom := pt(cx, cy+s*0.6)
	left := pt(cx-s*0.7, cy-s*0.2)
	right := pt(cx+s*0.7, cy-s*0.2)
	center := pt(cx, cy)

	facets := []struct {
		pts []canvas.Point
		col paint.Color
	}{
		{[]canvas.Point{top, left, center}, colors.light},
		{[]canvas.Point{top, right, center}, colors.mid},
		{[]canvas.Point{left, bottom, center}, colors.mid},
		{[]canvas.Point{right, bottom, center}, colors.dark},
	}
	for _, f := range facets {
		if err := c.Polygon(f.pts, canvas.FillOnly(f.col)); err != nil {
			return err
		}
	}

	glint := []canvas.Point{
		pt(cx-s*0.15, cy-s*0.5),
		pt(cx+s*0.1, cy-s*0.6),
		pt(cx-s*0.1, cy-s*0.3),
	}
	return c.Polygon(glint, canvas.FillOnly(paint.RGBA(255, 255, 255, 150)))
}

// drawHeart traces the classic heart parametric curve and fills it as a
// polygon, with a soft highlight on the upper-left lobe.
func drawHeart(c *canvas.Canvas, size int) error {
	cx, cy := float64(size)/2, float64(size)/2
	s := float64(size/2 - 4)

	var pts []canvas.Point
	for t := 0; t < 360; t += 5 {
		rad := float64(t) * math.Pi / 180
		hx := 16 * math.Pow(math.Sin(rad), 3)
		hy := 13*math.Cos(rad) - 5*math.Cos(2*rad) - 2*math.Cos(3*rad) - math.Cos(4*rad)
		pts = append(pts, canvas.Pt(
			int(math.Round(cx+hx*s/18)),
			int(math.Round(cy-hy*s/18)),
		))
	}

	if err := c.Polygon(pts, canvas.FillStroke(paint.RGB(255, 50, 80), paint.RGB(200, 30, 60), 2)); err != nil {
		return err
	}

	hw := int(math.Round(s * 0.3))
	if hw < 1 {
		return nil
	}
	return c.Ellipse(
		int(math.Round(cx-s*0.4)), int(math.Round(cy-s*0.5)),
		hw, hw,
		canvas.FillOnly(paint.RGBA(255, 255, 255, 100)),
	)
}

func drawShield(c *canvas.Canvas, size int) error {
	w, h := size, size
	cx := w / 2
	fh := float64(h)

	fill := paint.RGB(70, 130, 180)
	border := paint.RGB(192, 192, 192)

	pts := []canvas.Point{
		canvas.Pt(cx, 4),
		canvas.Pt(w-4, int(fh*0.15)),
		canvas.Pt(w-4, int(fh*0.5)),
		canvas.Pt(cx, h-4),
		canvas.Pt(4, int(fh*0.5)),
		canvas.Pt(4, int(fh*0.15)),
	}
	if err := c.Polygon(pts, canvas.FillStroke(fill, border, 3)); err != nil {
		return err
	}

	// Cross emblem.
	if err := c.Line(cx, int(fh*0.15), cx, int(fh*0.75), border, 2); err != nil {
		return err
	}
	return c.Line(int(float64(w)*0.2), int(fh*0.35), int(float64(w)*0.8), int(fh*0.35), border, 2)
}

// arrowIcon renders the canonical right-facing arrow and derives the other
// directions by flipping or rotating the finished raster. Opposite
// directions are therefore exact mirrors of each other, which per-direction
// rasterization would not guarantee.
func arrowIcon(p IconParams) (*canvas.Canvas, error) {
	dir, err := ParseDirection(string(p.Direction))
	if err != nil {
		return nil, err
	}
	style, err := ParseArrowStyle(string(p.ArrowStyle))
	if err != nil {
		return nil, err
	}

	c, err := canvas.New(p.Size, p.Size, paint.Transparent)
	if err != nil {
		return nil, err
	}
	if err := drawArrowRight(c, p.Size, style); err != nil {
		return nil, err
	}

	switch dir {
	case DirLeft:
		return canvas.FromNRGBA(imaging.FlipH(c.Image())), nil
	case DirUp:
		return canvas.FromNRGBA(imaging.Rotate90(c.Image())), nil
	case DirDown:
		return canvas.FromNRGBA(imaging.Rotate270(c.Image())), nil
	default:
		return c, nil
	}
}

func drawArrowRight(c *canvas.Canvas, size int, style ArrowStyle) error {
	w, h := size, size
	fill := paint.RGB(255, 165, 0)

	if style == ArrowChevron {
		thickness := max(size/4, 1)
		pts := []canvas.Point{
			canvas.Pt(w/4, h/6),
			canvas.Pt(w*3/4, h/2),
			canvas.Pt(w/4, h*5/6),
		}
		return c.Polyline(pts, fill, thickness, false)
	}

	margin := size / 6
	pts := []canvas.Point{
		canvas.Pt(margin, margin),
		canvas.Pt(w-margin, h/2),
		canvas.Pt(margin, h-margin),
	}
	if style == ArrowOutline {
		return c.Polygon(pts, canvas.StrokeOnly(fill, 3))
	}
	return c.Polygon(pts, canvas.FillOnly(fill))
}
