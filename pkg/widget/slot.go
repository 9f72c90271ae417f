package widget

import (
	"github.com/pixelsmith/gamepainter/pkg/canvas"
	"github.com/pixelsmith/gamepainter/pkg/paint"
)

// SlotParams configures an inventory slot render. Zero values select a
// 64×64 common slot without shine.
type SlotParams struct {
	Width, Height int
	Rarity        Rarity
	ShowShine     bool
}

func (p SlotParams) withDefaults() SlotParams {
	if p.Width == 0 {
		p.Width = 64
	}
	if p.Height == 0 {
		p.Height = 64
	}
	return p
}

// Slot renders an item slot frame colored by rarity. The shine overlay is
// purely additive: a slot with shine matches one without everywhere outside
// the highlight streaks. Only tiers with a glow accent (epic and legendary)
// render shine; requesting it on lower tiers is a silent no-op.
func Slot(p SlotParams) (*canvas.Canvas, error) {
	p = p.withDefaults()

	rarity, err := ParseRarity(string(p.Rarity))
	if err != nil {
		return nil, err
	}
	style := rarities[rarity]

	c, err := canvas.New(p.Width, p.Height, paint.Transparent)
	if err != nil {
		return nil, err
	}

	w, h := p.Width, p.Height
	if err := c.Rect(0, 0, w, h, 4, canvas.FillOnly(style.background)); err != nil {
		return nil, err
	}
	if w > 4 && h > 4 {
		if err := c.Rect(2, 2, w-4, h-4, 3, canvas.StrokeOnly(paint.RGB(40, 40, 40), 1)); err != nil {
			return nil, err
		}
	}
	if err := c.Rect(0, 0, w, h, 4, canvas.StrokeOnly(style.border, 2)); err != nil {
		return nil, err
	}

	if p.ShowShine && style.glow != nil {
		for i := 0; i < 3; i++ {
			sx := w/4 + i*w/4
			shine := style.glow.WithAlpha(uint8(100 - i*30))
			if err := c.Line(sx, 0, sx+w/8, h/3, shine, 2); err != nil {
				return nil, err
			}
		}
	}
	return c, nil
}
