package widget

import (
	"math"

	"github.com/pixelsmith/gamepainter/pkg/canvas"
	"github.com/pixelsmith/gamepainter/pkg/paint"
)

// ControlParams configures a control button render on a square canvas.
// Zero values select a 48×48 close button. Background, BgColor, and
// IconColor override the per-type defaults when set.
type ControlParams struct {
	Size       int
	Type       ControlType
	Background BackgroundShape
	BgColor    *paint.Color
	IconColor  *paint.Color
}

func (p ControlParams) withDefaults() ControlParams {
	if p.Size == 0 {
		p.Size = 48
	}
	return p
}

// controlLook is the per-type default appearance. Action buttons (close,
// play, plus, ...) sit on a colored plate; navigation glyphs (menu, home,
// back, ...) draw bare by default.
type controlLook struct {
	plate *paint.Color
	icon  paint.Color
	shape BackgroundShape
}

var (
	plateRed    = paint.RGB(220, 60, 60)
	plateGreen  = paint.RGB(50, 180, 50)
	plateAmber  = paint.RGB(255, 180, 50)
	glyphGray   = paint.RGB(80, 80, 80)
	glyphSilver = paint.RGB(100, 100, 100)
)

var controlLooks = map[ControlType]controlLook{
	ControlClose:    {&plateRed, paint.White, BackgroundCircle},
	ControlSettings: {nil, glyphSilver, BackgroundNone},
	ControlPlay:     {&plateGreen, paint.White, BackgroundCircle},
	ControlPause:    {&plateAmber, paint.White, BackgroundCircle},
	ControlMenu:     {nil, glyphGray, BackgroundNone},
	ControlHome:     {nil, glyphGray, BackgroundNone},
	ControlRefresh:  {nil, glyphGray, BackgroundNone},
	ControlBack:     {nil, glyphGray, BackgroundNone},
	ControlPlus:     {&plateGreen, paint.White, BackgroundCircle},
	ControlMinus:    {&plateRed, paint.White, BackgroundCircle},
	ControlCheck:    {&plateGreen, paint.White, BackgroundCircle},
}

// Control renders a control button: an optional backing plate with a glyph
// drawn over it. Glyph cut-outs (the gear hub, the house door) restore the
// pre-glyph pixels, so they stay transparent on plateless buttons.
func Control(p ControlParams) (*canvas.Canvas, error) {
	p = p.withDefaults()

	typ, err := ParseControlType(string(p.Type))
	if err != nil {
		return nil, err
	}
	look := controlLooks[typ]

	shape := look.shape
	if p.Background != "" {
		shape, err = ParseBackgroundShape(string(p.Background))
		if err != nil {
			return nil, err
		}
	}
	plate := look.plate
	if p.BgColor != nil {
		plate = p.BgColor
	}
	icon := look.icon
	if p.IconColor != nil {
		icon = *p.IconColor
	}

	c, err := canvas.New(p.Size, p.Size, paint.Transparent)
	if err != nil {
		return nil, err
	}

	cx, cy := p.Size/2, p.Size/2
	s := p.Size - 4
	r := s / 2

	if plate != nil && shape != BackgroundNone {
		switch shape {
		case BackgroundCircle:
			err = c.Ellipse(cx-r, cy-r, 2*r, 2*r, canvas.FillOnly(*plate))
		case BackgroundSquare:
			err = c.Rect(cx-r, cy-r, 2*r, 2*r, 4, canvas.FillOnly(*plate))
		}
		if err != nil {
			return nil, err
		}
	}

	g := glyphGeom{c: c, cx: cx, cy: cy, s: s, r: r, icon: icon}
	switch typ {
	case ControlClose:
		err = g.close()
	case ControlSettings:
		err = g.gear()
	case ControlPlay:
		err = g.play()
	case ControlPause:
		err = g.pause()
	case ControlMenu:
		err = g.menu()
	case ControlHome:
		err = g.home()
	case ControlRefresh:
		err = g.refresh()
	case ControlBack:
		err = g.back()
	case ControlPlus:
		err = g.plusMinus(true)
	case ControlMinus:
		err = g.plusMinus(false)
	case ControlCheck:
		err = g.check()
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// glyphGeom bundles the shared measurements every glyph works from.
type glyphGeom struct {
	c      *canvas.Canvas
	cx, cy int
	s, r   int
	icon   paint.Color
}

func (g glyphGeom) frac(f float64) int {
	return int(math.Round(f * float64(g.r)))
}

func (g glyphGeom) close() error {
	off := g.r / 2
	lw := max(2, g.s/10)
	if err := g.c.Line(g.cx-off, g.cy-off, g.cx+off, g.cy+off, g.icon, lw); err != nil {
		return err
	}
	return g.c.Line(g.cx+off, g.cy-off, g.cx-off, g.cy+off, g.icon, lw)
}

func (g glyphGeom) gear() error {
	outerR := 0.85 * float64(g.r)
	innerR := 0.5 * float64(g.r)
	hubR := g.frac(0.3)

	const teeth = 8
	pts := make([]canvas.Point, 0, teeth*2)
	for i := 0; i < teeth*2; i++ {
		angle := math.Pi*float64(i)/teeth - math.Pi/2
		rad := outerR
		if i%2 == 1 {
			rad = innerR
		}
		pts = append(pts, canvas.Pt(
			g.cx+int(math.Round(rad*math.Cos(angle))),
			g.cy+int(math.Round(rad*math.Sin(angle))),
		))
	}

	before := g.c.Clone()
	if err := g.c.Polygon(pts, canvas.FillOnly(g.icon)); err != nil {
		return err
	}

	// Punch the hub back out of the gear.
	g.c.CopyFrom(before, func(x, y int) bool {
		dx, dy := float64(x-g.cx)+0.5, float64(y-g.cy)+0.5
		return dx*dx+dy*dy <= float64(hubR*hubR)
	})
	return nil
}

func (g glyphGeom) play() error {
	off := g.frac(0.45)
	// Nudged right so the triangle reads as optically centered.
	pts := []canvas.Point{
		canvas.Pt(g.cx-off+2, g.cy-off),
		canvas.Pt(g.cx+off+2, g.cy),
		canvas.Pt(g.cx-off+2, g.cy+off),
	}
	return g.c.Polygon(pts, canvas.FillOnly(g.icon))
}

func (g glyphGeom) pause() error {
	barW := max(3, g.frac(0.25))
	barH := g.frac(0.9)
	gap := max(2, g.frac(0.2))

	if err := g.c.Rect(g.cx-gap-barW, g.cy-barH, barW, 2*barH, 0, canvas.FillOnly(g.icon)); err != nil {
		return err
	}
	return g.c.Rect(g.cx+gap, g.cy-barH, barW, 2*barH, 0, canvas.FillOnly(g.icon))
}

func (g glyphGeom) menu() error {
	barW := g.frac(1.2)
	barH := max(2, g.frac(0.15))
	gap := g.frac(0.4)

	for i := -1; i <= 1; i++ {
		y := g.cy + i*gap
		if err := g.c.Rect(g.cx-barW/2, y-barH/2, barW, barH, barH/2, canvas.FillOnly(g.icon)); err != nil {
			return err
		}
	}
	return nil
}

func (g glyphGeom) home() error {
	roof := []canvas.Point{
		canvas.Pt(g.cx, g.cy-g.frac(0.7)),
		canvas.Pt(g.cx-g.frac(0.7), g.cy),
		canvas.Pt(g.cx+g.frac(0.7), g.cy),
	}
	bodyW := g.frac(0.9)
	bodyH := g.frac(0.65)
	doorW := g.frac(0.35)
	doorH := g.frac(0.5)

	before := g.c.Clone()
	if err := g.c.Polygon(roof, canvas.FillOnly(g.icon)); err != nil {
		return err
	}
	if err := g.c.Rect(g.cx-bodyW/2, g.cy, bodyW, bodyH, 0, canvas.FillOnly(g.icon)); err != nil {
		return err
	}

	// The door shows whatever was behind the house.
	doorX, doorY := g.cx-doorW/2, g.cy+bodyH-doorH
	g.c.CopyFrom(before, func(x, y int) bool {
		return x >= doorX && x < doorX+doorW && y >= doorY && y < doorY+doorH
	})
	return nil
}

func (g glyphGeom) refresh() error {
	arcR := g.frac(0.65)
	lw := max(2, g.frac(0.2))

	if err := g.c.Arc(g.cx-arcR, g.cy-arcR, 2*arcR, 2*arcR, 60, 330, g.icon, lw); err != nil {
		return err
	}

	tip := canvas.ArcPoint(g.cx-arcR, g.cy-arcR, 2*arcR, 2*arcR, 30)
	as := g.frac(0.3)
	head := []canvas.Point{
		tip,
		canvas.Pt(tip.X+as, tip.Y+as/2),
		canvas.Pt(tip.X+as/2, tip.Y+as),
	}
	return g.c.Polygon(head, canvas.FillOnly(g.icon))
}

func (g glyphGeom) back() error {
	off := g.frac(0.6)
	lw := max(2, g.frac(0.2))

	if err := g.c.Line(g.cx-off, g.cy, g.cx+off, g.cy, g.icon, lw); err != nil {
		return err
	}
	if err := g.c.Line(g.cx-off, g.cy, g.cx-off/2, g.cy-off/2, g.icon, lw); err != nil {
		return err
	}
	return g.c.Line(g.cx-off, g.cy, g.cx-off/2, g.cy+off/2, g.icon, lw)
}

func (g glyphGeom) plusMinus(vertical bool) error {
	off := g.frac(0.55)
	lw := max(2, g.s/8)

	if err := g.c.Line(g.cx-off, g.cy, g.cx+off, g.cy, g.icon, lw); err != nil {
		return err
	}
	if !vertical {
		return nil
	}
	return g.c.Line(g.cx, g.cy-off, g.cx, g.cy+off, g.icon, lw)
}

func (g glyphGeom) check() error {
	off := g.frac(0.5)
	lw := max(2, g.s/10)
	mid := canvas.Pt(g.cx-off/3, g.cy+g.frac(0.35))

	if err := g.c.Line(g.cx-off, g.cy, mid.X, mid.Y, g.icon, lw); err != nil {
		return err
	}
	return g.c.Line(mid.X, mid.Y, g.cx+off, g.cy-g.frac(0.3), g.icon, lw)
}
