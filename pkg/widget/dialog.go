package widget

import (
	"github.com/pixelsmith/gamepainter/pkg/canvas"
	"github.com/pixelsmith/gamepainter/pkg/paint"
)

// speechTailHeight is the extra canvas height reserved below the dialog
// body for the speech tail.
const speechTailHeight = 13

// DialogParams configures a dialog box render. Zero values select a
// 300×100 modern box with a speech tail.
type DialogParams struct {
	Width, Height int
	Style         DialogStyle
	HideTail      bool // suppress the speech tail below the box
}

func (p DialogParams) withDefaults() DialogParams {
	if p.Width == 0 {
		p.Width = 300
	}
	if p.Height == 0 {
		p.Height = 100
	}
	return p
}

// Dialog renders a themed dialog box. Width and Height size the box body;
// when the speech tail is shown the canvas extends below the body to fit it.
func Dialog(p DialogParams) (*canvas.Canvas, error) {
	p = p.withDefaults()

	style, err := ParseDialogStyle(string(p.Style))
	if err != nil {
		return nil, err
	}
	theme := dialogThemes[style]

	w, h := p.Width, p.Height
	canvasH := h
	if !p.HideTail {
		canvasH += speechTailHeight
	}
	c, err := canvas.New(w, canvasH, paint.Transparent)
	if err != nil {
		return nil, err
	}

	if err := c.Rect(0, 0, w, h, theme.radius, canvas.FillOnly(theme.background)); err != nil {
		return nil, err
	}
	if err := c.Rect(0, 0, w, h, theme.radius, canvas.StrokeOnly(theme.border, theme.borderW)); err != nil {
		return nil, err
	}

	if !p.HideTail {
		// Tail hangs off the lower-left quarter, overlapping the bottom
		// border so body and tail read as one outline.
		tx := w / 4
		tail := []canvas.Point{
			canvas.Pt(tx, h-1),
			canvas.Pt(tx+15, h-1),
			canvas.Pt(tx+7, h+12),
		}
		if err := c.Polygon(tail, canvas.FillStroke(theme.background, theme.border, 1)); err != nil {
			return nil, err
		}
	}
	return c, nil
}
