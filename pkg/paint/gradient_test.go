package paint

import "testing"

func TestGradientEndpointExactness(t *testing.T) {
	c0 := RGBA(65, 105, 225, 255)
	c1 := RGBA(30, 60, 180, 255)
	const w, h = 120, 40

	tests := []struct {
		name           string
		dir            Direction
		firstX, firstY int
		lastX, lastY   int
	}{
		{"horizontal", DirectionHorizontal, 0, 17, w - 1, 17},
		{"vertical", DirectionVertical, 55, 0, 55, h - 1},
		{"diagonal", DirectionDiagonal, 0, 0, w - 1, h - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Gradient{Start: c0, End: c1, Dir: tt.dir}
			if got := g.At(tt.firstX, tt.firstY, w, h); got != c0 {
				t.Errorf("At(first) = %v, want %v", got, c0)
			}
			if got := g.At(tt.lastX, tt.lastY, w, h); got != c1 {
				t.Errorf("At(last) = %v, want %v", got, c1)
			}
		})
	}
}

func TestGradientNoneIsConstant(t *testing.T) {
	c0 := RGB(10, 20, 30)
	c1 := RGB(200, 100, 50)
	g := Gradient{Start: c0, End: c1, Dir: DirectionNone}

	for _, pt := range [][2]int{{0, 0}, {50, 25}, {99, 49}} {
		if got := g.At(pt[0], pt[1], 100, 50); got != c0 {
			t.Errorf("At(%d,%d) = %v, want constant %v", pt[0], pt[1], got, c0)
		}
	}
}

func TestGradientDeterministic(t *testing.T) {
	g := Gradient{Start: RGB(0, 0, 0), End: RGB(255, 255, 255), Dir: DirectionHorizontal}

	a := g.At(37, 5, 100, 20)
	b := g.At(37, 13, 100, 20)
	if a != b {
		t.Errorf("horizontal gradient varies with y: %v != %v", a, b)
	}
	if c := g.At(37, 5, 100, 20); c != a {
		t.Errorf("gradient not deterministic: %v != %v", c, a)
	}
}

func TestParseDirection(t *testing.T) {
	for _, valid := range []string{"none", "horizontal", "vertical", "diagonal", ""} {
		if _, err := ParseDirection(valid); err != nil {
			t.Errorf("ParseDirection(%q) unexpected error: %v", valid, err)
		}
	}
	if _, err := ParseDirection("radial"); err == nil {
		t.Error("ParseDirection(\"radial\") expected error, got nil")
	}
}

func TestSingleColumnGradient(t *testing.T) {
	g := Gradient{Start: RGB(1, 2, 3), End: RGB(200, 100, 50), Dir: DirectionHorizontal}
	if got := g.At(0, 0, 1, 10); got != g.Start {
		t.Errorf("1-wide gradient = %v, want start color %v", got, g.Start)
	}
}
