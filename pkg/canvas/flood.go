package canvas

import "github.com/pixelsmith/gamepainter/pkg/paint"

// floodLimit caps the number of pixels a single flood fill may touch, so a
// leaky boundary on a large canvas cannot stall a session.
const floodLimit = 1 << 20

// FloodFill replaces the connected region of pixels matching the color at
// the seed point (x, y) with col, using 4-way connectivity. A seed outside
// the canvas or a region already painted col is a no-op.
func (c *Canvas) FloodFill(x, y int, col paint.Color) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return
	}
	target := c.At(x, y)
	if target == col {
		return
	}

	queue := []Point{Pt(x, y)}
	filled := 0
	for len(queue) > 0 && filled < floodLimit {
		p := queue[0]
		queue = queue[1:]
		if p.X < 0 || p.X >= c.w || p.Y < 0 || p.Y >= c.h {
			continue
		}
		if c.At(p.X, p.Y) != target {
			continue
		}
		// Direct write: flood fill replaces pixels, it does not blend.
		i := c.img.PixOffset(p.X, p.Y)
		c.img.Pix[i+0] = col.R
		c.img.Pix[i+1] = col.G
		c.img.Pix[i+2] = col.B
		c.img.Pix[i+3] = col.A
		filled++

		queue = append(queue,
			Pt(p.X+1, p.Y), Pt(p.X-1, p.Y),
			Pt(p.X, p.Y+1), Pt(p.X, p.Y-1))
	}
}
