package canvas

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/pixelsmith/gamepainter/pkg/errors"
)

// losslessExts are the output formats the engine will write. All preserve
// the full RGBA buffer; the file extension selects the encoder.
var losslessExts = map[string]imaging.Format{
	".png":  imaging.PNG,
	".tif":  imaging.TIFF,
	".tiff": imaging.TIFF,
	".bmp":  imaging.BMP,
}

// Save serializes the buffer to path, creating parent directories as
// needed, and returns the absolute path written. The extension selects the
// format and must name a lossless RGBA-capable encoder (.png, .tif, .bmp).
// Save does not consume the canvas; it may be called repeatedly.
func (c *Canvas) Save(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := losslessExts[ext]; !ok {
		return "", errors.New(errors.ErrCodeInvalidPath, "unsupported image extension %q (use .png, .tif, or .bmp)", ext)
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", errors.Wrap(errors.ErrCodeIOFailure, err, "creating output directory %s", dir)
		}
	}

	if err := imaging.Save(c.img, path, imaging.PNGCompressionLevel(png.DefaultCompression)); err != nil {
		return "", errors.Wrap(errors.ErrCodeIOFailure, err, "saving image %s", path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}
	return abs, nil
}

// EncodePNG returns the buffer as PNG bytes.
func (c *Canvas) EncodePNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, c.img); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encoding PNG")
	}
	return buf.Bytes(), nil
}

// Base64PNG returns the buffer as a base64-encoded PNG, the form image
// previews take in tool responses.
func (c *Canvas) Base64PNG() (string, error) {
	data, err := c.EncodePNG()
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}
