package widget

import (
	"github.com/pixelsmith/gamepainter/pkg/canvas"
	"github.com/pixelsmith/gamepainter/pkg/fonts"
	"github.com/pixelsmith/gamepainter/pkg/paint"
)

// Tooltip layout metrics, in pixels.
const (
	tooltipTitleSize = 14
	tooltipLineSize  = 11
	tooltipPad       = 10
	tooltipRuleY     = 28
	tooltipLineStart = 35
	tooltipLineStep  = 17
)

// TooltipParams configures an item tooltip render. A zero Width or Height
// auto-sizes that axis to fit the title and stat lines; zero Lines renders
// the stock two-line stat block.
type TooltipParams struct {
	Width, Height int
	Title         string
	Rarity        Rarity
	Lines         []string
}

func (p TooltipParams) withDefaults() TooltipParams {
	if p.Title == "" {
		p.Title = "Item"
	}
	if p.Rarity == "" {
		p.Rarity = RarityRare
	}
	if p.Lines == nil {
		p.Lines = []string{"+10 ATK", "+5 CRIT"}
	}
	if p.Width == 0 {
		tw, _ := fonts.Measure(p.Title, tooltipTitleSize)
		p.Width = max(180, tw+2*tooltipPad)
	}
	if p.Height == 0 {
		p.Height = tooltipLineStart + tooltipLineStep*len(p.Lines) + tooltipLineSize
	}
	return p
}

// Tooltip renders an item tooltip: rarity-colored title, separator rule,
// and a stat line block on a dark translucent panel.
func Tooltip(p TooltipParams) (*canvas.Canvas, error) {
	p = p.withDefaults()

	rarity, err := ParseRarity(string(p.Rarity))
	if err != nil {
		return nil, err
	}

	c, err := canvas.New(p.Width, p.Height, paint.Transparent)
	if err != nil {
		return nil, err
	}

	w, h := p.Width, p.Height
	panel := paint.RGBA(20, 20, 25, 240)
	rule := paint.RGB(60, 60, 70)

	if err := c.Rect(0, 0, w, h, 4, canvas.FillOnly(panel)); err != nil {
		return nil, err
	}
	if err := c.Rect(0, 0, w, h, 4, canvas.StrokeOnly(rule, 1)); err != nil {
		return nil, err
	}

	if err := c.Text(tooltipPad, 8, p.Title, tooltipTitleSize, rarity.TitleColor()); err != nil {
		return nil, err
	}
	if err := c.Line(8, tooltipRuleY, w-8, tooltipRuleY, rule, 1); err != nil {
		return nil, err
	}

	// Stat lines alternate buff green and bonus amber, like most loot UIs.
	lineColors := []paint.Color{paint.RGB(150, 255, 150), paint.RGB(255, 200, 100)}
	for i, line := range p.Lines {
		y := tooltipLineStart + i*tooltipLineStep
		if err := c.Text(tooltipPad, y, line, tooltipLineSize, lineColors[i%2]); err != nil {
			return nil, err
		}
	}
	return c, nil
}
