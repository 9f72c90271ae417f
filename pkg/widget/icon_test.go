package widget

import (
	"bytes"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/pixelsmith/gamepainter/pkg/errors"
	"github.com/pixelsmith/gamepainter/pkg/paint"
)

func TestArrowDirectionsAreExactTransforms(t *testing.T) {
	right, err := Icon(IconParams{Type: IconArrow, Direction: DirRight})
	if err != nil {
		t.Fatalf("Icon(right) error = %v", err)
	}

	tests := []struct {
		name string
		dir  Direction
		want []uint8
	}{
		{"left mirrors right", DirLeft, imaging.FlipH(right.Image()).Pix},
		{"up rotates right", DirUp, imaging.Rotate90(right.Image()).Pix},
		{"down rotates right", DirDown, imaging.Rotate270(right.Image()).Pix},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Icon(IconParams{Type: IconArrow, Direction: tt.dir})
			if err != nil {
				t.Fatalf("Icon(%s) error = %v", tt.dir, err)
			}
			if !bytes.Equal(got.Image().Pix, tt.want) {
				t.Errorf("%s arrow is not an exact transform of the right arrow", tt.dir)
			}
		})
	}
}

func TestArrowStyles(t *testing.T) {
	solid, err := Icon(IconParams{Type: IconArrow, ArrowStyle: ArrowSolid})
	if err != nil {
		t.Fatalf("Icon(solid) error = %v", err)
	}
	outline, err := Icon(IconParams{Type: IconArrow, ArrowStyle: ArrowOutline})
	if err != nil {
		t.Fatalf("Icon(outline) error = %v", err)
	}

	// The triangle centroid is filled for solid and open for outline.
	if got := solid.At(28, 32); got != paint.RGB(255, 165, 0) {
		t.Errorf("solid interior = %v, want orange fill", got)
	}
	if got := outline.At(28, 32); got != paint.Transparent {
		t.Errorf("outline interior = %v, want transparent", got)
	}

	if _, err := Icon(IconParams{Type: IconArrow, ArrowStyle: "dashed"}); !errors.Is(err, errors.ErrCodeInvalidEnum) {
		t.Errorf("Icon(dashed) error = %v, want INVALID_ENUM", err)
	}
}

func TestIconDeterministic(t *testing.T) {
	for _, typ := range []IconType{IconStar, IconCoin, IconGem, IconHeart, IconShield, IconArrow} {
		t.Run(string(typ), func(t *testing.T) {
			a, err := Icon(IconParams{Type: typ})
			if err != nil {
				t.Fatalf("Icon() error = %v", err)
			}
			b, _ := Icon(IconParams{Type: typ})
			if !bytes.Equal(a.Image().Pix, b.Image().Pix) {
				t.Error("two renders with equal parameters differ")
			}
			if a.Width() != 64 || a.Height() != 64 {
				t.Errorf("dimensions = %dx%d, want 64x64", a.Width(), a.Height())
			}
		})
	}
}

func TestGemPalettesDiffer(t *testing.T) {
	ruby, err := Icon(IconParams{Type: IconGem, Gem: GemRuby})
	if err != nil {
		t.Fatalf("Icon(ruby) error = %v", err)
	}
	sapphire, _ := Icon(IconParams{Type: IconGem, Gem: GemSapphire})
	if bytes.Equal(ruby.Image().Pix, sapphire.Image().Pix) {
		t.Error("ruby and sapphire renders are identical")
	}

	if _, err := Icon(IconParams{Type: IconGem, Gem: "opal"}); !errors.Is(err, errors.ErrCodeInvalidEnum) {
		t.Errorf("Icon(opal) error = %v, want INVALID_ENUM", err)
	}
}

func TestControlCutOutsStayTransparent(t *testing.T) {
	// The settings gear has no backing plate, so the hub punch-out must
	// expose the transparent background.
	gear, err := Control(ControlParams{Type: ControlSettings})
	if err != nil {
		t.Fatalf("Control(settings) error = %v", err)
	}
	if got := gear.At(24, 24); got != paint.Transparent {
		t.Errorf("gear hub = %v, want transparent", got)
	}

	home, err := Control(ControlParams{Type: ControlHome})
	if err != nil {
		t.Fatalf("Control(home) error = %v", err)
	}
	if got := home.At(24, 34); got != paint.Transparent {
		t.Errorf("house door = %v, want transparent", got)
	}
	// The wall beside the door is still glyph colored.
	if got := home.At(18, 34); got != glyphGray {
		t.Errorf("house wall = %v, want %v", got, glyphGray)
	}
}

func TestControlPlateDefaults(t *testing.T) {
	c, err := Control(ControlParams{Type: ControlClose})
	if err != nil {
		t.Fatalf("Control(close) error = %v", err)
	}
	// Inside the circular plate but away from the X strokes.
	if got := c.At(24, 5); got != plateRed {
		t.Errorf("plate = %v, want %v", got, plateRed)
	}
	if got := c.At(0, 0); got != paint.Transparent {
		t.Errorf("corner = %v, want transparent", got)
	}

	if _, err := Control(ControlParams{Type: "maximize"}); !errors.Is(err, errors.ErrCodeInvalidEnum) {
		t.Errorf("Control(maximize) error = %v, want INVALID_ENUM", err)
	}
}

func TestControlCoversAllTypes(t *testing.T) {
	types := []ControlType{
		ControlClose, ControlSettings, ControlPlay, ControlPause, ControlMenu,
		ControlHome, ControlRefresh, ControlBack, ControlPlus, ControlMinus, ControlCheck,
	}
	for _, typ := range types {
		t.Run(string(typ), func(t *testing.T) {
			c, err := Control(ControlParams{Type: typ, Size: 32})
			if err != nil {
				t.Fatalf("Control() error = %v", err)
			}
			// Every glyph paints something.
			painted := false
			for y := 0; y < 32 && !painted; y++ {
				for x := 0; x < 32; x++ {
					if c.At(x, y) != paint.Transparent {
						painted = true
						break
					}
				}
			}
			if !painted {
				t.Error("render is fully transparent")
			}
		})
	}
}

func TestMinimapTerrainStaysInsideFrame(t *testing.T) {
	c, err := Minimap(MinimapParams{Shape: MinimapCircle})
	if err != nil {
		t.Fatalf("Minimap() error = %v", err)
	}

	// Corners are outside the circular viewport and must stay transparent.
	for _, pt := range [][2]int{{1, 1}, {118, 1}, {1, 118}, {118, 118}} {
		if got := c.At(pt[0], pt[1]); got != paint.Transparent {
			t.Errorf("At(%d,%d) = %v, want transparent outside frame", pt[0], pt[1], got)
		}
	}
	// The player dot sits dead center.
	if got := c.At(60, 60); got != paint.White {
		t.Errorf("center = %v, want player dot white", got)
	}
}

func TestMinimapShapes(t *testing.T) {
	for _, shape := range []MinimapShape{MinimapCircle, MinimapSquare, MinimapHexagon} {
		t.Run(string(shape), func(t *testing.T) {
			a, err := Minimap(MinimapParams{Shape: shape})
			if err != nil {
				t.Fatalf("Minimap() error = %v", err)
			}
			b, _ := Minimap(MinimapParams{Shape: shape})
			if !bytes.Equal(a.Image().Pix, b.Image().Pix) {
				t.Error("two renders with equal parameters differ")
			}
		})
	}

	if _, err := Minimap(MinimapParams{Shape: "octagon"}); !errors.Is(err, errors.ErrCodeInvalidEnum) {
		t.Errorf("Minimap(octagon) error = %v, want INVALID_ENUM", err)
	}
}
