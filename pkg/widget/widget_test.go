package widget

import (
	"bytes"
	"testing"

	"github.com/pixelsmith/gamepainter/pkg/errors"
	"github.com/pixelsmith/gamepainter/pkg/paint"
)

func TestButtonGradientEndpoints(t *testing.T) {
	c, err := Button(ButtonParams{Width: 120, Height: 40, Style: ButtonGradient, Palette: PaletteBlue, Radius: 8})
	if err != nil {
		t.Fatalf("Button() error = %v", err)
	}
	if c.Width() != 120 || c.Height() != 40 {
		t.Fatalf("dimensions = %dx%d, want 120x40", c.Width(), c.Height())
	}

	// The vertical gradient must hit the palette colors exactly at the top
	// and bottom rows.
	pal := palettes[PaletteBlue]
	if got := c.At(60, 0); got != pal.primary {
		t.Errorf("top row = %v, want %v", got, pal.primary)
	}
	if got := c.At(60, 39); got != pal.secondary {
		t.Errorf("bottom row = %v, want %v", got, pal.secondary)
	}
}

func TestButtonRejectsUnknownEnums(t *testing.T) {
	tests := []struct {
		name   string
		params ButtonParams
	}{
		{"bad style", ButtonParams{Style: "shiny"}},
		{"bad palette", ButtonParams{Palette: "magenta"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Button(tt.params); !errors.Is(err, errors.ErrCodeInvalidEnum) {
				t.Errorf("Button() error = %v, want INVALID_ENUM", err)
			}
		})
	}
}

func TestRadiusSentinelIsExactlyMinusOne(t *testing.T) {
	// -1 selects the default corner radius; any other negative is invalid
	// geometry, same as passing it to the rectangle primitive directly.
	if _, err := Button(ButtonParams{Radius: -1}); err != nil {
		t.Errorf("Button(radius -1) error = %v", err)
	}
	if _, err := Button(ButtonParams{Radius: -3}); !errors.Is(err, errors.ErrCodeInvalidGeometry) {
		t.Errorf("Button(radius -3) error = %v, want INVALID_GEOMETRY", err)
	}

	if _, err := Shape(ShapeParams{Shape: ShapeRoundedRect, Radius: -1}); err != nil {
		t.Errorf("Shape(radius -1) error = %v", err)
	}
	if _, err := Shape(ShapeParams{Shape: ShapeRoundedRect, Radius: -2}); !errors.Is(err, errors.ErrCodeInvalidGeometry) {
		t.Errorf("Shape(radius -2) error = %v, want INVALID_GEOMETRY", err)
	}
}

func TestButtonOutlineLeavesInteriorTransparent(t *testing.T) {
	c, err := Button(ButtonParams{Width: 100, Height: 40, Style: ButtonOutline})
	if err != nil {
		t.Fatalf("Button() error = %v", err)
	}
	if got := c.At(50, 20); got != paint.Transparent {
		t.Errorf("interior = %v, want transparent", got)
	}
	pal := palettes[PaletteBlue]
	if got := c.At(50, 1); got != pal.primary {
		t.Errorf("border = %v, want %v", got, pal.primary)
	}
}

func TestBarFillWidthFromLeftEdge(t *testing.T) {
	c, err := Bar(BarParams{Width: 200, Height: 24, Progress: 75})
	if err != nil {
		t.Fatalf("Bar() error = %v", err)
	}

	// 75% of 200 rounds to 150 pixels of fill: the center row is fill color
	// through x=149 and track color from x=150.
	fill := paint.RGB(50, 205, 50)
	track := paint.RGB(60, 60, 60)
	if got := c.At(149, 12); got != fill {
		t.Errorf("At(149,12) = %v, want fill %v", got, fill)
	}
	if got := c.At(150, 12); got != track {
		t.Errorf("At(150,12) = %v, want track %v", got, track)
	}
}

func TestBarFillWidthRounding(t *testing.T) {
	tests := []struct {
		progress float64
		want     int
	}{
		{0, 0},
		{0.4, 1}, // 0.8 rounds up
		{50, 100},
		{99.8, 200},
		{100, 200},
		{150, 200}, // clamped
		{-10, 0},   // clamped
	}
	for _, tt := range tests {
		if got := fillWidth(max(0, min(100, tt.progress)), 200); got != tt.want {
			t.Errorf("fillWidth(%v, 200) = %d, want %d", tt.progress, got, tt.want)
		}
	}
}

func TestHealthBarColorRamp(t *testing.T) {
	tests := []struct {
		percent float64
		want    paint.Color
	}{
		{90, paint.RGB(50, 205, 50)},
		{61, paint.RGB(50, 205, 50)},
		{60, paint.RGB(255, 165, 0)},
		{45, paint.RGB(255, 165, 0)},
		{30, paint.RGB(255, 50, 50)},
		{5, paint.RGB(255, 50, 50)},
	}
	for _, tt := range tests {
		if got := healthColor(tt.percent); got != tt.want {
			t.Errorf("healthColor(%v) = %v, want %v", tt.percent, got, tt.want)
		}
	}

	c, err := Bar(BarParams{Width: 100, Height: 12, Progress: 20, Type: BarHealth})
	if err != nil {
		t.Fatalf("Bar() error = %v", err)
	}
	if got := c.At(5, 6); got != paint.RGB(255, 50, 50) {
		t.Errorf("low health fill = %v, want red", got)
	}
}

func TestSlotShineIsPureOverlay(t *testing.T) {
	plain, err := Slot(SlotParams{Rarity: RarityLegendary})
	if err != nil {
		t.Fatalf("Slot() error = %v", err)
	}
	shiny, err := Slot(SlotParams{Rarity: RarityLegendary, ShowShine: true})
	if err != nil {
		t.Fatalf("Slot(shine) error = %v", err)
	}

	// The shine streaks live in the upper portion of the slot. Below them
	// the two renders must be pixel-identical.
	diffAbove, diffBelow := 0, 0
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			if plain.At(x, y) != shiny.At(x, y) {
				if y <= 64/3+1 {
					diffAbove++
				} else {
					diffBelow++
				}
			}
		}
	}
	if diffAbove == 0 {
		t.Error("shine changed no pixels, want visible streaks")
	}
	if diffBelow != 0 {
		t.Errorf("shine changed %d pixels below the streak region, want 0", diffBelow)
	}
}

func TestSlotShineIgnoredForCommon(t *testing.T) {
	plain, _ := Slot(SlotParams{Rarity: RarityCommon})
	shiny, _ := Slot(SlotParams{Rarity: RarityCommon, ShowShine: true})
	if !bytes.Equal(plain.Image().Pix, shiny.Image().Pix) {
		t.Error("common slot with shine differs from one without; shine should only apply to glow tiers")
	}
}

func TestSlotRarityDeterministic(t *testing.T) {
	for _, rarity := range []Rarity{RarityCommon, RarityUncommon, RarityRare, RarityEpic, RarityLegendary} {
		t.Run(string(rarity), func(t *testing.T) {
			a, err := Slot(SlotParams{Rarity: rarity})
			if err != nil {
				t.Fatalf("Slot() error = %v", err)
			}
			b, _ := Slot(SlotParams{Rarity: rarity})
			if !bytes.Equal(a.Image().Pix, b.Image().Pix) {
				t.Error("two renders with equal parameters differ")
			}

			// The border must match the rarity table.
			if got := a.At(32, 0); got != rarity.BorderColor() {
				t.Errorf("border pixel = %v, want %v", got, rarity.BorderColor())
			}
		})
	}
}

func TestDialogTailExtendsCanvas(t *testing.T) {
	withTail, err := Dialog(DialogParams{Width: 300, Height: 100})
	if err != nil {
		t.Fatalf("Dialog() error = %v", err)
	}
	if withTail.Height() != 100+speechTailHeight {
		t.Errorf("height with tail = %d, want %d", withTail.Height(), 100+speechTailHeight)
	}

	noTail, err := Dialog(DialogParams{Width: 300, Height: 100, HideTail: true})
	if err != nil {
		t.Fatalf("Dialog(HideTail) error = %v", err)
	}
	if noTail.Height() != 100 {
		t.Errorf("height without tail = %d, want 100", noTail.Height())
	}

	if _, err := Dialog(DialogParams{Style: "baroque"}); !errors.Is(err, errors.ErrCodeInvalidEnum) {
		t.Errorf("Dialog(baroque) error = %v, want INVALID_ENUM", err)
	}
}

func TestDialogPixelStyleHasSquareCorners(t *testing.T) {
	c, err := Dialog(DialogParams{Width: 100, Height: 60, Style: DialogPixel, HideTail: true})
	if err != nil {
		t.Fatalf("Dialog() error = %v", err)
	}
	// Pixel theme draws no rounding, so the very corner is border colored.
	if got := c.At(0, 0); got != dialogThemes[DialogPixel].border {
		t.Errorf("corner = %v, want border color", got)
	}
}

func TestTooltipAutoSize(t *testing.T) {
	c, err := Tooltip(TooltipParams{Title: "Sword of Testing", Rarity: RarityEpic})
	if err != nil {
		t.Fatalf("Tooltip() error = %v", err)
	}
	wantH := tooltipLineStart + 2*tooltipLineStep + tooltipLineSize
	if c.Height() != wantH {
		t.Errorf("auto height = %d, want %d", c.Height(), wantH)
	}
	if c.Width() < 180 {
		t.Errorf("auto width = %d, want at least 180", c.Width())
	}

	lines := []string{"+1 STR", "+2 DEX", "+3 INT", "+4 LUK"}
	tall, _ := Tooltip(TooltipParams{Lines: lines})
	if tall.Height() <= c.Height() {
		t.Errorf("four-line tooltip height = %d, want taller than two-line %d", tall.Height(), c.Height())
	}
}

func TestShapeGradientHorizontalEndpoints(t *testing.T) {
	start := paint.RGB(255, 0, 0)
	end := paint.RGB(0, 0, 255)
	c, err := Shape(ShapeParams{
		Width: 80, Height: 40,
		Shape:       ShapeRoundedRect,
		Fill:        &start,
		GradientDir: paint.DirectionHorizontal,
		GradientEnd: &end,
		Radius:      -1,
	})
	if err != nil {
		t.Fatalf("Shape() error = %v", err)
	}
	if got := c.At(0, 20); got != start {
		t.Errorf("left edge = %v, want %v", got, start)
	}
	if got := c.At(79, 20); got != end {
		t.Errorf("right edge = %v, want %v", got, end)
	}
}

func TestShapePolygonValidation(t *testing.T) {
	if _, err := Shape(ShapeParams{Shape: ShapePolygon, Sides: 2}); !errors.Is(err, errors.ErrCodeInvalidGeometry) {
		t.Errorf("Shape(2 sides) error = %v, want INVALID_GEOMETRY", err)
	}
	if _, err := Shape(ShapeParams{Shape: "blob"}); !errors.Is(err, errors.ErrCodeInvalidEnum) {
		t.Errorf("Shape(blob) error = %v, want INVALID_ENUM", err)
	}
}

func TestShapeCircleFillsCenter(t *testing.T) {
	c, err := Shape(ShapeParams{Shape: ShapeCircle})
	if err != nil {
		t.Fatalf("Shape() error = %v", err)
	}
	if got := c.At(50, 50); got != paint.RGB(100, 149, 237) {
		t.Errorf("center = %v, want default fill", got)
	}
	if got := c.At(0, 0); got != paint.Transparent {
		t.Errorf("corner = %v, want transparent", got)
	}
}
