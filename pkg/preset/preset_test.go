package preset

import (
	"bytes"
	"testing"

	"github.com/pixelsmith/gamepainter/pkg/canvas"
	"github.com/pixelsmith/gamepainter/pkg/errors"
	"github.com/pixelsmith/gamepainter/pkg/paint"
)

func TestDrawFiguresDeterministic(t *testing.T) {
	for _, fig := range []Figure{FigureCar, FigureHouse, FigureTree} {
		t.Run(string(fig), func(t *testing.T) {
			w, h := Size(fig)

			a, _ := canvas.New(w, h, paint.Transparent)
			if err := Draw(a, fig, 0, 0, 1, nil, nil); err != nil {
				t.Fatalf("Draw() error = %v", err)
			}
			b, _ := canvas.New(w, h, paint.Transparent)
			if err := Draw(b, fig, 0, 0, 1, nil, nil); err != nil {
				t.Fatalf("Draw() error = %v", err)
			}
			if !bytes.Equal(a.Image().Pix, b.Image().Pix) {
				t.Error("two draws with equal parameters differ")
			}

			// Something must actually have been painted.
			painted := false
			for y := 0; y < h && !painted; y++ {
				for x := 0; x < w; x++ {
					if a.At(x, y) != paint.Transparent {
						painted = true
						break
					}
				}
			}
			if !painted {
				t.Error("figure painted nothing")
			}
		})
	}
}

func TestDrawValidation(t *testing.T) {
	c, _ := canvas.New(100, 100, paint.Transparent)

	if err := Draw(c, FigureCar, 0, 0, 0, nil, nil); !errors.Is(err, errors.ErrCodeInvalidGeometry) {
		t.Errorf("Draw(scale 0) error = %v, want INVALID_GEOMETRY", err)
	}
	if err := Draw(c, FigureCar, 0, 0, -2, nil, nil); !errors.Is(err, errors.ErrCodeInvalidGeometry) {
		t.Errorf("Draw(scale -2) error = %v, want INVALID_GEOMETRY", err)
	}
	if err := Draw(c, "boat", 0, 0, 1, nil, nil); !errors.Is(err, errors.ErrCodeInvalidEnum) {
		t.Errorf("Draw(boat) error = %v, want INVALID_ENUM", err)
	}
}

func TestDrawColorOverrides(t *testing.T) {
	w, h := Size(FigureCar)
	blue := paint.RGB(30, 60, 220)

	c, _ := canvas.New(w, h, paint.Transparent)
	if err := Draw(c, FigureCar, 0, 0, 1, &blue, nil); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}

	// The body takes the override; the wheels keep their fixed colors.
	// (46,54) sits on the front tire ring, between the hubcap and the rim.
	if got := c.At(75, 45); got != blue {
		t.Errorf("body = %v, want override %v", got, blue)
	}
	if got := c.At(46, 54); got != paint.RGB(40, 40, 40) {
		t.Errorf("tire = %v, want fixed tire color", got)
	}
	if got := c.At(37, 54); got != paint.RGB(180, 180, 180) {
		t.Errorf("hubcap = %v, want fixed hubcap color", got)
	}
}

func TestDrawScalesAndOffsets(t *testing.T) {
	c, _ := canvas.New(400, 350, paint.White)
	if err := Draw(c, FigureTree, 200, 50, 2, nil, nil); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}

	// Nothing may be painted left of the offset.
	for y := 0; y < 350; y++ {
		for x := 0; x < 200; x++ {
			if got := c.At(x, y); got != paint.White {
				t.Fatalf("At(%d,%d) = %v, painted outside the offset region", x, y, got)
			}
		}
	}
	// The doubled trunk spans x 270..310, y 190..290; below the canopy it
	// shows its own fill.
	if got := c.At(290, 280); got != paint.RGB(139, 90, 43) {
		t.Errorf("trunk = %v, want trunk brown", got)
	}
}

func TestSizeCoversFigures(t *testing.T) {
	for _, fig := range []Figure{FigureCar, FigureHouse, FigureTree} {
		w, h := Size(fig)
		if w <= 0 || h <= 0 {
			t.Errorf("Size(%s) = %dx%d, want positive", fig, w, h)
		}
	}
}
