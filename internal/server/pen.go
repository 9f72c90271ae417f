package server

import (
	"encoding/json"
	"fmt"

	"github.com/pixelsmith/gamepainter/pkg/canvas"
	"github.com/pixelsmith/gamepainter/pkg/errors"
	"github.com/pixelsmith/gamepainter/pkg/fonts"
	"github.com/pixelsmith/gamepainter/pkg/paint"
	"github.com/pixelsmith/gamepainter/pkg/preset"
)

// penResult packages the standard pen response: a summary, the canvas id so
// the client can keep drawing, and an inline preview of the current state.
func penResult(c *canvas.Canvas, text string) (*toolResult, error) {
	b64, err := c.Base64PNG()
	if err != nil {
		return nil, err
	}
	return &toolResult{Text: text, CanvasID: c.ID(), Image: b64}, nil
}

// toPoints converts a JSON [[x, y], ...] array.
func toPoints(raw [][]int) ([]canvas.Point, error) {
	pts := make([]canvas.Point, 0, len(raw))
	for i, p := range raw {
		if len(p) != 2 {
			return nil, errors.New(errors.ErrCodeInvalidGeometry, "point %d must be [x, y], got %d values", i, len(p))
		}
		pts = append(pts, canvas.Point{X: p[0], Y: p[1]})
	}
	return pts, nil
}

// shapeStyle resolves fill and border parameters for pen shapes. With no
// fill and no border the shape falls back to a plain black outline.
func shapeStyle(fillCh, borderCh []int, borderWidth int) (canvas.Style, error) {
	fill, err := optColor(fillCh)
	if err != nil {
		return canvas.Style{}, err
	}
	border, err := optColor(borderCh)
	if err != nil {
		return canvas.Style{}, err
	}

	st := canvas.Style{Fill: fill}
	if border == nil && fill == nil {
		border = &paint.Black
	}
	if border != nil && borderWidth > 0 {
		st.Stroke = border
		st.StrokeWidth = borderWidth
	}
	return st, nil
}

func handlePenCreateCanvas(s *Server, raw json.RawMessage) (*toolResult, error) {
	p, err := decode[struct {
		Width   int   `json:"width"`
		Height  int   `json:"height"`
		BgColor []int `json:"bg_color"`
	}](raw)
	if err != nil {
		return nil, err
	}

	if p.Width == 0 {
		p.Width = 200
	}
	if p.Height == 0 {
		p.Height = 200
	}
	bg, err := colorOr(p.BgColor, paint.Transparent)
	if err != nil {
		return nil, err
	}

	c, err := s.reg.Create(p.Width, p.Height, bg)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("canvas created", "id", c.ID(), "size", fmt.Sprintf("%dx%d", p.Width, p.Height))
	return penResult(c, fmt.Sprintf("canvas created (%dx%d), id=%s", p.Width, p.Height, c.ID()))
}

func handlePenLine(s *Server, raw json.RawMessage) (*toolResult, error) {
	p, err := decode[struct {
		CanvasID string `json:"canvas_id"`
		X1       int    `json:"x1"`
		Y1       int    `json:"y1"`
		X2       int    `json:"x2"`
		Y2       int    `json:"y2"`
		Color    []int  `json:"color"`
		Width    int    `json:"width"`
	}](raw)
	if err != nil {
		return nil, err
	}

	c, err := s.reg.Get(p.CanvasID)
	if err != nil {
		return nil, err
	}
	col, err := colorOr(p.Color, paint.Black)
	if err != nil {
		return nil, err
	}
	if p.Width == 0 {
		p.Width = 2
	}
	if err := c.Line(p.X1, p.Y1, p.X2, p.Y2, col, p.Width); err != nil {
		return nil, err
	}
	return penResult(c, fmt.Sprintf("line drawn from (%d,%d) to (%d,%d)", p.X1, p.Y1, p.X2, p.Y2))
}

func handlePenLines(s *Server, raw json.RawMessage) (*toolResult, error) {
	p, err := decode[struct {
		CanvasID string  `json:"canvas_id"`
		Points   [][]int `json:"points"`
		Color    []int   `json:"color"`
		Width    int     `json:"width"`
		Closed   bool    `json:"closed"`
	}](raw)
	if err != nil {
		return nil, err
	}

	c, err := s.reg.Get(p.CanvasID)
	if err != nil {
		return nil, err
	}
	pts, err := toPoints(p.Points)
	if err != nil {
		return nil, err
	}
	col, err := colorOr(p.Color, paint.Black)
	if err != nil {
		return nil, err
	}
	if p.Width == 0 {
		p.Width = 2
	}
	if err := c.Polyline(pts, col, p.Width, p.Closed); err != nil {
		return nil, err
	}
	return penResult(c, fmt.Sprintf("polyline drawn through %d points", len(pts)))
}

func handlePenRect(s *Server, raw json.RawMessage) (*toolResult, error) {
	p, err := decode[struct {
		CanvasID    string `json:"canvas_id"`
		X           int    `json:"x"`
		Y           int    `json:"y"`
		Width       int    `json:"width"`
		Height      int    `json:"height"`
		FillColor   []int  `json:"fill_color"`
		BorderColor []int  `json:"border_color"`
		BorderWidth *int   `json:"border_width"`
		Radius      int    `json:"radius"`
	}](raw)
	if err != nil {
		return nil, err
	}

	c, err := s.reg.Get(p.CanvasID)
	if err != nil {
		return nil, err
	}
	bw := 2
	if p.BorderWidth != nil {
		bw = *p.BorderWidth
	}
	st, err := shapeStyle(p.FillColor, p.BorderColor, bw)
	if err != nil {
		return nil, err
	}
	if err := c.Rect(p.X, p.Y, p.Width, p.Height, p.Radius, st); err != nil {
		return nil, err
	}
	return penResult(c, fmt.Sprintf("rectangle drawn at (%d,%d), %dx%d", p.X, p.Y, p.Width, p.Height))
}

func handlePenEllipse(s *Server, raw json.RawMessage) (*toolResult, error) {
	p, err := decode[struct {
		CanvasID    string `json:"canvas_id"`
		X           int    `json:"x"`
		Y           int    `json:"y"`
		Width       int    `json:"width"`
		Height      int    `json:"height"`
		FillColor   []int  `json:"fill_color"`
		BorderColor []int  `json:"border_color"`
		BorderWidth *int   `json:"border_width"`
	}](raw)
	if err != nil {
		return nil, err
	}

	c, err := s.reg.Get(p.CanvasID)
	if err != nil {
		return nil, err
	}
	bw := 2
	if p.BorderWidth != nil {
		bw = *p.BorderWidth
	}
	st, err := shapeStyle(p.FillColor, p.BorderColor, bw)
	if err != nil {
		return nil, err
	}
	if err := c.Ellipse(p.X, p.Y, p.Width, p.Height, st); err != nil {
		return nil, err
	}
	return penResult(c, fmt.Sprintf("ellipse drawn at (%d,%d), %dx%d", p.X, p.Y, p.Width, p.Height))
}

func handlePenPolygon(s *Server, raw json.RawMessage) (*toolResult, error) {
	p, err := decode[struct {
		CanvasID    string  `json:"canvas_id"`
		Points      [][]int `json:"points"`
		FillColor   []int   `json:"fill_color"`
		BorderColor []int   `json:"border_color"`
		BorderWidth *int    `json:"border_width"`
	}](raw)
	if err != nil {
		return nil, err
	}

	c, err := s.reg.Get(p.CanvasID)
	if err != nil {
		return nil, err
	}
	pts, err := toPoints(p.Points)
	if err != nil {
		return nil, err
	}
	bw := 2
	if p.BorderWidth != nil {
		bw = *p.BorderWidth
	}
	st, err := shapeStyle(p.FillColor, p.BorderColor, bw)
	if err != nil {
		return nil, err
	}
	if err := c.Polygon(pts, st); err != nil {
		return nil, err
	}
	return penResult(c, fmt.Sprintf("polygon drawn with %d vertices", len(pts)))
}

func handlePenArc(s *Server, raw json.RawMessage) (*toolResult, error) {
	p, err := decode[struct {
		CanvasID   string   `json:"canvas_id"`
		X          int      `json:"x"`
		Y          int      `json:"y"`
		Width      int      `json:"width"`
		Height     int      `json:"height"`
		StartAngle float64  `json:"start_angle"`
		EndAngle   *float64 `json:"end_angle"`
		Color      []int    `json:"color"`
		LineWidth  int      `json:"line_width"`
	}](raw)
	if err != nil {
		return nil, err
	}

	c, err := s.reg.Get(p.CanvasID)
	if err != nil {
		return nil, err
	}
	end := 180.0
	if p.EndAngle != nil {
		end = *p.EndAngle
	}
	col, err := colorOr(p.Color, paint.Black)
	if err != nil {
		return nil, err
	}
	if p.LineWidth == 0 {
		p.LineWidth = 2
	}
	if err := c.Arc(p.X, p.Y, p.Width, p.Height, p.StartAngle, end, col, p.LineWidth); err != nil {
		return nil, err
	}
	return penResult(c, fmt.Sprintf("arc drawn from %g to %g degrees", p.StartAngle, end))
}

func handlePenBezier(s *Server, raw json.RawMessage) (*toolResult, error) {
	p, err := decode[struct {
		CanvasID string  `json:"canvas_id"`
		Points   [][]int `json:"points"`
		Color    []int   `json:"color"`
		Width    int     `json:"width"`
	}](raw)
	if err != nil {
		return nil, err
	}

	c, err := s.reg.Get(p.CanvasID)
	if err != nil {
		return nil, err
	}
	pts, err := toPoints(p.Points)
	if err != nil {
		return nil, err
	}
	col, err := colorOr(p.Color, paint.Black)
	if err != nil {
		return nil, err
	}
	if p.Width == 0 {
		p.Width = 2
	}
	if err := c.Bezier(pts, col, p.Width); err != nil {
		return nil, err
	}
	return penResult(c, fmt.Sprintf("bezier curve drawn with %d control points", len(pts)))
}

func handlePenPoint(s *Server, raw json.RawMessage) (*toolResult, error) {
	p, err := decode[struct {
		CanvasID string `json:"canvas_id"`
		X        int    `json:"x"`
		Y        int    `json:"y"`
		Color    []int  `json:"color"`
		Size     int    `json:"size"`
	}](raw)
	if err != nil {
		return nil, err
	}

	c, err := s.reg.Get(p.CanvasID)
	if err != nil {
		return nil, err
	}
	col, err := colorOr(p.Color, paint.Black)
	if err != nil {
		return nil, err
	}
	if p.Size == 0 {
		p.Size = 3
	}
	c.Dot(p.X, p.Y, col, p.Size)
	return penResult(c, fmt.Sprintf("point drawn at (%d,%d)", p.X, p.Y))
}

func handlePenText(s *Server, raw json.RawMessage) (*toolResult, error) {
	p, err := decode[struct {
		CanvasID string `json:"canvas_id"`
		X        int    `json:"x"`
		Y        int    `json:"y"`
		Text     string `json:"text"`
		FontSize int    `json:"font_size"`
		Color    []int  `json:"color"`
		FontPath string `json:"font_path"`
	}](raw)
	if err != nil {
		return nil, err
	}

	c, err := s.reg.Get(p.CanvasID)
	if err != nil {
		return nil, err
	}
	col, err := colorOr(p.Color, paint.Black)
	if err != nil {
		return nil, err
	}
	if p.FontSize == 0 {
		p.FontSize = 16
	}
	if p.FontSize < 0 {
		return nil, errors.New(errors.ErrCodeInvalidDimension, "font size must be positive, got %d", p.FontSize)
	}

	fontName := p.FontPath
	if fontName == "" {
		fontName = s.cfg.Font
	}
	face, err := fonts.FaceFrom(fontName, p.FontSize)
	if err != nil {
		return nil, err
	}
	if err := c.TextFace(p.X, p.Y, p.Text, face, col); err != nil {
		return nil, err
	}
	return penResult(c, fmt.Sprintf("text %q drawn at (%d,%d)", p.Text, p.X, p.Y))
}

func handlePenFill(s *Server, raw json.RawMessage) (*toolResult, error) {
	p, err := decode[struct {
		CanvasID string `json:"canvas_id"`
		X        int    `json:"x"`
		Y        int    `json:"y"`
		Color    []int  `json:"color"`
	}](raw)
	if err != nil {
		return nil, err
	}

	c, err := s.reg.Get(p.CanvasID)
	if err != nil {
		return nil, err
	}
	col, err := colorOr(p.Color, paint.Black)
	if err != nil {
		return nil, err
	}
	c.FloodFill(p.X, p.Y, col)
	return penResult(c, fmt.Sprintf("region filled from (%d,%d)", p.X, p.Y))
}

func handlePenSave(s *Server, raw json.RawMessage) (*toolResult, error) {
	p, err := decode[struct {
		CanvasID  string `json:"canvas_id"`
		Filename  string `json:"filename"`
		OutputDir string `json:"output_dir"`
	}](raw)
	if err != nil {
		return nil, err
	}

	c, err := s.reg.Get(p.CanvasID)
	if err != nil {
		return nil, err
	}
	filename := p.Filename
	if filename == "" {
		filename = "canvas.png"
	}
	file, preview, err := s.saveAndPreview(c, filename, p.OutputDir)
	if err != nil {
		return nil, err
	}
	return &toolResult{
		Text:     fmt.Sprintf("canvas saved: %s", file),
		File:     file,
		CanvasID: c.ID(),
		Image:    preview,
	}, nil
}

func handlePenDrawPreset(s *Server, raw json.RawMessage) (*toolResult, error) {
	p, err := decode[struct {
		CanvasID     string  `json:"canvas_id"`
		Preset       string  `json:"preset"`
		X            int     `json:"x"`
		Y            int     `json:"y"`
		Scale        float64 `json:"scale"`
		PrimaryColor []int   `json:"primary_color"`
	}](raw)
	if err != nil {
		return nil, err
	}

	c, err := s.reg.Get(p.CanvasID)
	if err != nil {
		return nil, err
	}
	fig, err := preset.ParseFigure(p.Preset)
	if err != nil {
		return nil, err
	}
	override, err := optColor(p.PrimaryColor)
	if err != nil {
		return nil, err
	}
	if p.Scale == 0 {
		p.Scale = 1.0
	}

	// The color override recolors the figure's signature surface: body and
	// wall are primary shapes, tree foliage is secondary.
	primary, secondary := override, (*paint.Color)(nil)
	if fig == preset.FigureTree {
		primary, secondary = nil, override
	}
	if err := preset.Draw(c, fig, p.X, p.Y, p.Scale, primary, secondary); err != nil {
		return nil, err
	}
	return penResult(c, fmt.Sprintf("%s drawn at (%d,%d), scale %g", fig, p.X, p.Y, p.Scale))
}
