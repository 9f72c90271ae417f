// Package fonts provides typeface loading for raster text rendering.
//
// The Go Regular typeface ships embedded via golang.org/x/image, so text
// rendering works without any external font files. A different typeface can
// be selected by font file path or by installed font name, resolved through
// the system font directories.
package fonts

import (
	"os"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"github.com/pixelsmith/gamepainter/pkg/errors"
)

var (
	defaultFont     *truetype.Font
	defaultFontOnce sync.Once

	faceMu    sync.Mutex
	faceCache = map[faceKey]font.Face{}
)

type faceKey struct {
	font *truetype.Font
	size int
}

// loadDefault parses the embedded Go Regular face once.
func loadDefault() *truetype.Font {
	defaultFontOnce.Do(func() {
		f, err := truetype.Parse(goregular.TTF)
		if err != nil {
			// The embedded TTF is a compile-time constant; parsing it
			// cannot fail on a correct build.
			panic("fonts: parsing embedded goregular: " + err.Error())
		}
		defaultFont = f
	})
	return defaultFont
}

// Face returns a rasterizer face for the default typeface at the given
// pixel size. Faces are cached per size and safe for sequential reuse.
func Face(size int) font.Face {
	return faceFor(loadDefault(), size)
}

// FaceFrom returns a face for a caller-selected font. The name may be a
// path to a TTF file or an installed font name looked up via the system
// font directories. An empty name selects the embedded default.
func FaceFrom(name string, size int) (font.Face, error) {
	if name == "" {
		return Face(size), nil
	}

	path := name
	if _, err := os.Stat(path); err != nil {
		found, ferr := findfont.Find(name)
		if ferr != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPath, ferr, "font %q not found", name)
		}
		path = found
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIOFailure, err, "reading font file %s", path)
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "parsing font file %s", path)
	}
	return faceFor(f, size), nil
}

func faceFor(f *truetype.Font, size int) font.Face {
	if size < 1 {
		size = 1
	}
	key := faceKey{font: f, size: size}

	faceMu.Lock()
	defer faceMu.Unlock()
	if face, ok := faceCache[key]; ok {
		return face
	}
	face := truetype.NewFace(f, &truetype.Options{Size: float64(size)})
	faceCache[key] = face
	return face
}

// Measure returns the advance width and line height, in pixels, of s drawn
// with the default typeface at the given size.
func Measure(s string, size int) (width, height int) {
	face := Face(size)
	adv := font.MeasureString(face, s)
	metrics := face.Metrics()
	return adv.Ceil(), metrics.Height.Ceil()
}

// Ascent returns the distance in pixels from the top of the line box to the
// baseline for the default typeface at the given size. Text anchored by its
// top-left corner positions the baseline at y + Ascent.
func Ascent(size int) int {
	return Face(size).Metrics().Ascent.Ceil()
}

// Dot builds a fixed-point drawing origin from pixel coordinates.
func Dot(x, y int) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
}
