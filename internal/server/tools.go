package server

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/pixelsmith/gamepainter/pkg/errors"
	"github.com/pixelsmith/gamepainter/pkg/kit"
	"github.com/pixelsmith/gamepainter/pkg/paint"
	"github.com/pixelsmith/gamepainter/pkg/widget"
)

// tool pairs a catalog description with its invocation handler.
type tool struct {
	description string
	handle      func(s *Server, raw json.RawMessage) (*toolResult, error)
}

// toolOrder fixes the catalog listing order: composite widgets first, then
// the pen workflow, then batch generation.
var toolOrder = []string{
	"draw_button",
	"draw_icon",
	"draw_progress_bar",
	"draw_item_slot",
	"draw_dialog_box",
	"draw_minimap",
	"draw_tooltip",
	"draw_shape",
	"draw_control_button",
	"pen_create_canvas",
	"pen_line",
	"pen_lines",
	"pen_rect",
	"pen_ellipse",
	"pen_polygon",
	"pen_arc",
	"pen_bezier",
	"pen_point",
	"pen_text",
	"pen_fill",
	"pen_save",
	"pen_draw_preset",
	"generate_ui_kit",
}

var tools = map[string]tool{
	"draw_button":         {"Generate a game button (flat, gradient, glossy, outline, or pixel style)", handleDrawButton},
	"draw_icon":           {"Generate a game icon (star, coin, gem, heart, shield, or arrow)", handleDrawIcon},
	"draw_progress_bar":   {"Generate a progress or health bar", handleDrawProgressBar},
	"draw_item_slot":      {"Generate an inventory slot frame colored by rarity", handleDrawItemSlot},
	"draw_dialog_box":     {"Generate a themed dialog box with an optional speech tail", handleDrawDialogBox},
	"draw_minimap":        {"Generate a minimap frame (circle, square, or hexagon)", handleDrawMinimap},
	"draw_tooltip":        {"Generate an item tooltip with a rarity-colored title", handleDrawTooltip},
	"draw_shape":          {"Generate a basic shape (rounded rect, circle, or regular polygon)", handleDrawShape},
	"draw_control_button": {"Generate a control button (close, settings, play, ...)", handleDrawControlButton},
	"pen_create_canvas":   {"Create a blank canvas for multi-step drawing", handlePenCreateCanvas},
	"pen_line":            {"Draw a straight line on a canvas", handlePenLine},
	"pen_lines":           {"Draw a polyline, optionally closed, on a canvas", handlePenLines},
	"pen_rect":            {"Draw a rectangle on a canvas", handlePenRect},
	"pen_ellipse":         {"Draw an ellipse on a canvas", handlePenEllipse},
	"pen_polygon":         {"Draw a polygon on a canvas", handlePenPolygon},
	"pen_arc":             {"Draw an elliptical arc on a canvas", handlePenArc},
	"pen_bezier":          {"Draw a Bezier curve (2-4 control points) on a canvas", handlePenBezier},
	"pen_point":           {"Draw a dot on a canvas", handlePenPoint},
	"pen_text":            {"Draw text on a canvas", handlePenText},
	"pen_fill":            {"Flood-fill a region of a canvas", handlePenFill},
	"pen_save":            {"Save a canvas to an image file", handlePenSave},
	"pen_draw_preset":     {"Draw a preset figure (car, house, tree) on a canvas", handlePenDrawPreset},
	"generate_ui_kit":     {"Generate the full themed UI asset catalog into a directory", handleGenerateUIKit},
}

// decode unmarshals a tool's raw parameter object.
func decode[T any](raw json.RawMessage) (T, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, errors.Wrap(errors.ErrCodeBadRequest, err, "decoding tool parameters")
	}
	return v, nil
}

// optColor converts an optional [r,g,b] or [r,g,b,a] parameter.
func optColor(channels []int) (*paint.Color, error) {
	if channels == nil {
		return nil, nil
	}
	c, err := paint.FromChannels(channels)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// colorOr converts a color parameter, falling back when absent.
func colorOr(channels []int, fallback paint.Color) (paint.Color, error) {
	c, err := optColor(channels)
	if err != nil {
		return paint.Color{}, err
	}
	if c == nil {
		return fallback, nil
	}
	return *c, nil
}

func handleDrawButton(s *Server, raw json.RawMessage) (*toolResult, error) {
	p, err := decode[struct {
		Width     int    `json:"width"`
		Height    int    `json:"height"`
		Text      string `json:"text"`
		Style     string `json:"style"`
		Color     string `json:"color"`
		TextColor []int  `json:"text_color"`
		Radius    *int   `json:"radius"`
		Filename  string `json:"filename"`
		OutputDir string `json:"output_dir"`
	}](raw)
	if err != nil {
		return nil, err
	}

	textColor, err := optColor(p.TextColor)
	if err != nil {
		return nil, err
	}
	radius := -1
	if p.Radius != nil {
		radius = *p.Radius
	}

	c, err := widget.Button(widget.ButtonParams{
		Width:     p.Width,
		Height:    p.Height,
		Text:      p.Text,
		Style:     widget.ButtonStyle(p.Style),
		Palette:   widget.Palette(p.Color),
		TextColor: textColor,
		Radius:    radius,
	})
	if err != nil {
		return nil, err
	}

	filename := p.Filename
	if filename == "" {
		filename = "button.png"
	}
	file, preview, err := s.saveAndPreview(c, filename, p.OutputDir)
	if err != nil {
		return nil, err
	}
	return &toolResult{
		Text:  fmt.Sprintf("button saved: %s (%dx%d, style=%s)", file, c.Width(), c.Height(), orDefault(p.Style, "gradient")),
		File:  file,
		Image: preview,
	}, nil
}

func handleDrawIcon(s *Server, raw json.RawMessage) (*toolResult, error) {
	p, err := decode[struct {
		IconType   string `json:"icon_type"`
		Size       int    `json:"size"`
		GemType    string `json:"gem_type"`
		Direction  string `json:"direction"`
		ArrowStyle string `json:"arrow_style"`
		Filename   string `json:"filename"`
		OutputDir  string `json:"output_dir"`
	}](raw)
	if err != nil {
		return nil, err
	}

	c, err := widget.Icon(widget.IconParams{
		Size:       p.Size,
		Type:       widget.IconType(p.IconType),
		Gem:        widget.GemType(p.GemType),
		Direction:  widget.Direction(p.Direction),
		ArrowStyle: widget.ArrowStyle(p.ArrowStyle),
	})
	if err != nil {
		return nil, err
	}

	filename := p.Filename
	if filename == "" {
		filename = fmt.Sprintf("icon_%s.png", orDefault(p.IconType, "star"))
	}
	file, preview, err := s.saveAndPreview(c, filename, p.OutputDir)
	if err != nil {
		return nil, err
	}
	return &toolResult{
		Text:  fmt.Sprintf("icon saved: %s (%s, %dx%d)", file, orDefault(p.IconType, "star"), c.Width(), c.Height()),
		File:  file,
		Image: preview,
	}, nil
}

func handleDrawProgressBar(s *Server, raw json.RawMessage) (*toolResult, error) {
	p, err := decode[struct {
		Width     int     `json:"width"`
		Height    int     `json:"height"`
		Progress  float64 `json:"progress"`
		BarType   string  `json:"bar_type"`
		ShowGlow  bool    `json:"show_glow"`
		Filename  string  `json:"filename"`
		OutputDir string  `json:"output_dir"`
	}](raw)
	if err != nil {
		return nil, err
	}

	c, err := widget.Bar(widget.BarParams{
		Width:    p.Width,
		Height:   p.Height,
		Progress: p.Progress,
		Type:     widget.BarType(p.BarType),
		ShowGlow: p.ShowGlow,
	})
	if err != nil {
		return nil, err
	}

	filename := p.Filename
	if filename == "" {
		filename = "progress_bar.png"
	}
	file, preview, err := s.saveAndPreview(c, filename, p.OutputDir)
	if err != nil {
		return nil, err
	}
	return &toolResult{
		Text:  fmt.Sprintf("progress bar saved: %s (%.0f%%)", file, p.Progress),
		File:  file,
		Image: preview,
	}, nil
}

func handleDrawItemSlot(s *Server, raw json.RawMessage) (*toolResult, error) {
	p, err := decode[struct {
		Width     int    `json:"width"`
		Height    int    `json:"height"`
		Rarity    string `json:"rarity"`
		ShowShine bool   `json:"show_shine"`
		Filename  string `json:"filename"`
		OutputDir string `json:"output_dir"`
	}](raw)
	if err != nil {
		return nil, err
	}

	c, err := widget.Slot(widget.SlotParams{
		Width:     p.Width,
		Height:    p.Height,
		Rarity:    widget.Rarity(p.Rarity),
		ShowShine: p.ShowShine,
	})
	if err != nil {
		return nil, err
	}

	filename := p.Filename
	if filename == "" {
		filename = fmt.Sprintf("slot_%s.png", orDefault(p.Rarity, "common"))
	}
	file, preview, err := s.saveAndPreview(c, filename, p.OutputDir)
	if err != nil {
		return nil, err
	}
	return &toolResult{
		Text:  fmt.Sprintf("item slot saved: %s (rarity=%s)", file, orDefault(p.Rarity, "common")),
		File:  file,
		Image: preview,
	}, nil
}

func handleDrawDialogBox(s *Server, raw json.RawMessage) (*toolResult, error) {
	p, err := decode[struct {
		Width     int    `json:"width"`
		Height    int    `json:"height"`
		Style     string `json:"style"`
		ShowArrow *bool  `json:"show_arrow"`
		Filename  string `json:"filename"`
		OutputDir string `json:"output_dir"`
	}](raw)
	if err != nil {
		return nil, err
	}

	hideTail := false
	if p.ShowArrow != nil {
		hideTail = !*p.ShowArrow
	}
	c, err := widget.Dialog(widget.DialogParams{
		Width:    p.Width,
		Height:   p.Height,
		Style:    widget.DialogStyle(p.Style),
		HideTail: hideTail,
	})
	if err != nil {
		return nil, err
	}

	filename := p.Filename
	if filename == "" {
		filename = fmt.Sprintf("dialog_%s.png", orDefault(p.Style, "modern"))
	}
	file, preview, err := s.saveAndPreview(c, filename, p.OutputDir)
	if err != nil {
		return nil, err
	}
	return &toolResult{
		Text:  fmt.Sprintf("dialog box saved: %s (style=%s)", file, orDefault(p.Style, "modern")),
		File:  file,
		Image: preview,
	}, nil
}

func handleDrawMinimap(s *Server, raw json.RawMessage) (*toolResult, error) {
	p, err := decode[struct {
		Width       int    `json:"width"`
		Height      int    `json:"height"`
		Shape       string `json:"shape"`
		BorderColor []int  `json:"border_color"`
		Filename    string `json:"filename"`
		OutputDir   string `json:"output_dir"`
	}](raw)
	if err != nil {
		return nil, err
	}

	borderColor, err := optColor(p.BorderColor)
	if err != nil {
		return nil, err
	}
	c, err := widget.Minimap(widget.MinimapParams{
		Width:       p.Width,
		Height:      p.Height,
		Shape:       widget.MinimapShape(p.Shape),
		BorderColor: borderColor,
	})
	if err != nil {
		return nil, err
	}

	filename := p.Filename
	if filename == "" {
		filename = fmt.Sprintf("minimap_%s.png", orDefault(p.Shape, "circle"))
	}
	file, preview, err := s.saveAndPreview(c, filename, p.OutputDir)
	if err != nil {
		return nil, err
	}
	return &toolResult{
		Text:  fmt.Sprintf("minimap saved: %s (shape=%s)", file, orDefault(p.Shape, "circle")),
		File:  file,
		Image: preview,
	}, nil
}

func handleDrawTooltip(s *Server, raw json.RawMessage) (*toolResult, error) {
	p, err := decode[struct {
		Width     int      `json:"width"`
		Height    int      `json:"height"`
		Title     string   `json:"title"`
		Rarity    string   `json:"rarity"`
		Lines     []string `json:"lines"`
		Filename  string   `json:"filename"`
		OutputDir string   `json:"output_dir"`
	}](raw)
	if err != nil {
		return nil, err
	}

	c, err := widget.Tooltip(widget.TooltipParams{
		Width:  p.Width,
		Height: p.Height,
		Title:  p.Title,
		Rarity: widget.Rarity(p.Rarity),
		Lines:  p.Lines,
	})
	if err != nil {
		return nil, err
	}

	filename := p.Filename
	if filename == "" {
		filename = "tooltip.png"
	}
	file, preview, err := s.saveAndPreview(c, filename, p.OutputDir)
	if err != nil {
		return nil, err
	}
	return &toolResult{
		Text:  fmt.Sprintf("tooltip saved: %s (title=%q)", file, orDefault(p.Title, "Item")),
		File:  file,
		Image: preview,
	}, nil
}

func handleDrawShape(s *Server, raw json.RawMessage) (*toolResult, error) {
	p, err := decode[struct {
		ShapeType        string  `json:"shape_type"`
		Width            int     `json:"width"`
		Height           int     `json:"height"`
		FillColor        []int   `json:"fill_color"`
		BorderColor      []int   `json:"border_color"`
		BorderWidth      int     `json:"border_width"`
		Radius           *int    `json:"radius"`
		Gradient         string  `json:"gradient"`
		GradientEndColor []int   `json:"gradient_end_color"`
		Sides            int     `json:"sides"`
		Rotation         float64 `json:"rotation"`
		Filename         string  `json:"filename"`
		OutputDir        string  `json:"output_dir"`
	}](raw)
	if err != nil {
		return nil, err
	}

	fill, err := optColor(p.FillColor)
	if err != nil {
		return nil, err
	}
	border, err := optColor(p.BorderColor)
	if err != nil {
		return nil, err
	}
	gradientEnd, err := optColor(p.GradientEndColor)
	if err != nil {
		return nil, err
	}
	radius := -1
	if p.Radius != nil {
		radius = *p.Radius
	}

	c, err := widget.Shape(widget.ShapeParams{
		Width:       p.Width,
		Height:      p.Height,
		Shape:       widget.ShapeType(p.ShapeType),
		Fill:        fill,
		Border:      border,
		BorderWidth: p.BorderWidth,
		Radius:      radius,
		GradientDir: paint.Direction(p.Gradient),
		GradientEnd: gradientEnd,
		Sides:       p.Sides,
		Rotation:    p.Rotation,
	})
	if err != nil {
		return nil, err
	}

	filename := p.Filename
	if filename == "" {
		filename = fmt.Sprintf("%s.png", orDefault(p.ShapeType, "rounded_rect"))
	}
	file, preview, err := s.saveAndPreview(c, filename, p.OutputDir)
	if err != nil {
		return nil, err
	}
	return &toolResult{
		Text:  fmt.Sprintf("shape saved: %s (%s, %dx%d)", file, orDefault(p.ShapeType, "rounded_rect"), c.Width(), c.Height()),
		File:  file,
		Image: preview,
	}, nil
}

func handleDrawControlButton(s *Server, raw json.RawMessage) (*toolResult, error) {
	p, err := decode[struct {
		ButtonType string `json:"button_type"`
		Size       int    `json:"size"`
		Style      string `json:"style"`
		BgColor    []int  `json:"bg_color"`
		IconColor  []int  `json:"icon_color"`
		Filename   string `json:"filename"`
		OutputDir  string `json:"output_dir"`
	}](raw)
	if err != nil {
		return nil, err
	}

	bgColor, err := optColor(p.BgColor)
	if err != nil {
		return nil, err
	}
	iconColor, err := optColor(p.IconColor)
	if err != nil {
		return nil, err
	}

	c, err := widget.Control(widget.ControlParams{
		Size:       p.Size,
		Type:       widget.ControlType(p.ButtonType),
		Background: widget.BackgroundShape(p.Style),
		BgColor:    bgColor,
		IconColor:  iconColor,
	})
	if err != nil {
		return nil, err
	}

	filename := p.Filename
	if filename == "" {
		filename = fmt.Sprintf("ctrl_%s.png", orDefault(p.ButtonType, "close"))
	}
	file, preview, err := s.saveAndPreview(c, filename, p.OutputDir)
	if err != nil {
		return nil, err
	}
	return &toolResult{
		Text:  fmt.Sprintf("control button saved: %s (%s)", file, orDefault(p.ButtonType, "close")),
		File:  file,
		Image: preview,
	}, nil
}

func handleGenerateUIKit(s *Server, raw json.RawMessage) (*toolResult, error) {
	p, err := decode[struct {
		Theme     string `json:"theme"`
		OutputDir string `json:"output_dir"`
	}](raw)
	if err != nil {
		return nil, err
	}

	dir := p.OutputDir
	if dir == "" {
		dir = "ui_kit"
	}
	if err := errors.ValidateOutputDir(dir); err != nil {
		return nil, err
	}
	// Relative kit directories land under the configured output root.
	target := dir
	if !filepath.IsAbs(dir) {
		target = filepath.Join(s.cfg.OutputDir, dir)
	}

	files, err := kit.Generate(target, p.Theme, nil)
	if err != nil {
		return nil, err
	}

	text := fmt.Sprintf("UI kit generated: %d files in %s", len(files), target)
	for _, f := range files {
		text += "\n  - " + f
	}
	return &toolResult{Text: text, File: target}, nil
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
