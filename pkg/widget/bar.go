package widget

import (
	"math"

	"github.com/pixelsmith/gamepainter/pkg/canvas"
	"github.com/pixelsmith/gamepainter/pkg/paint"
)

// BarParams configures a progress or health bar. Zero values select a
// 200×24 normal bar at 0% with the stock colors.
type BarParams struct {
	Width, Height int
	Progress      float64 // percentage, clamped to [0, 100]
	Type          BarType

	// Normal bars only; health bars derive their colors from Progress.
	FillColor   *paint.Color
	BorderColor *paint.Color
	ShowGlow    bool

	// Health bars only. Zero means 10 segments; 1 disables segment ticks.
	Segments int
}

func (p BarParams) withDefaults() BarParams {
	if p.Width == 0 {
		p.Width = 200
	}
	if p.Height == 0 {
		p.Height = 24
	}
	if p.Segments == 0 {
		p.Segments = 10
	}
	p.Progress = math.Max(0, math.Min(100, p.Progress))
	return p
}

// fillWidth is the number of pixels the progress fill spans from the left
// edge: round(progress/100 × width), so 0% paints nothing and 100% reaches
// the right edge exactly.
func fillWidth(progress float64, w int) int {
	return int(math.Round(progress / 100 * float64(w)))
}

// Bar renders a progress bar onto a fresh transparent canvas. Normal bars
// are pill-shaped with a fixed fill color; health bars are rectangular with
// segment ticks and a fill color keyed to the remaining percentage.
func Bar(p BarParams) (*canvas.Canvas, error) {
	p = p.withDefaults()

	typ, err := ParseBarType(string(p.Type))
	if err != nil {
		return nil, err
	}

	c, err := canvas.New(p.Width, p.Height, paint.Transparent)
	if err != nil {
		return nil, err
	}

	if typ == BarHealth {
		err = drawHealthBar(c, p)
	} else {
		err = drawProgressBar(c, p)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func drawProgressBar(c *canvas.Canvas, p BarParams) error {
	w, h := p.Width, p.Height
	radius := h / 2

	fill := paint.RGB(50, 205, 50)
	if p.FillColor != nil {
		fill = *p.FillColor
	}
	border := paint.RGB(100, 100, 100)
	if p.BorderColor != nil {
		border = *p.BorderColor
	}

	if err := c.Rect(0, 0, w, h, radius, canvas.FillOnly(paint.RGB(60, 60, 60))); err != nil {
		return err
	}

	if fw := fillWidth(p.Progress, w); fw > 0 {
		if p.ShowGlow {
			glowW := min(fw+2, w)
			if err := c.Rect(0, 0, glowW, h, radius, canvas.FillOnly(fill.WithAlpha(100))); err != nil {
				return err
			}
		}
		if err := c.Rect(0, 0, fw, h, radius, canvas.FillOnly(fill)); err != nil {
			return err
		}
	}

	return c.Rect(0, 0, w, h, radius, canvas.StrokeOnly(border, 2))
}

// healthColor maps remaining health to the usual traffic-light ramp.
func healthColor(percent float64) paint.Color {
	switch {
	case percent > 60:
		return paint.RGB(50, 205, 50)
	case percent > 30:
		return paint.RGB(255, 165, 0)
	default:
		return paint.RGB(255, 50, 50)
	}
}

func drawHealthBar(c *canvas.Canvas, p BarParams) error {
	w, h := p.Width, p.Height

	if err := c.Rect(0, 0, w, h, 0, canvas.FillOnly(paint.RGB(30, 30, 30))); err != nil {
		return err
	}

	if fw := fillWidth(p.Progress, w); fw > 0 {
		if err := c.Rect(0, 0, fw, h, 0, canvas.FillOnly(healthColor(p.Progress))); err != nil {
			return err
		}
	}

	if p.Segments > 1 {
		tick := paint.RGBA(0, 0, 0, 150)
		segW := w / p.Segments
		for i := 1; i < p.Segments && segW > 0; i++ {
			if err := c.Line(i*segW, 0, i*segW, h-1, tick, 1); err != nil {
				return err
			}
		}
	}

	return c.Rect(0, 0, w, h, 0, canvas.StrokeOnly(paint.RGB(80, 80, 80), 2))
}
