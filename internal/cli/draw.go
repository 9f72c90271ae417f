package cli

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pixelsmith/gamepainter/internal/config"
	"github.com/pixelsmith/gamepainter/pkg/canvas"
	"github.com/pixelsmith/gamepainter/pkg/errors"
	"github.com/pixelsmith/gamepainter/pkg/paint"
	"github.com/pixelsmith/gamepainter/pkg/widget"
)

// newDrawCmd creates the draw command and its per-widget subcommands.
// Each subcommand renders exactly one image and prints the output path.
func newDrawCmd(cfgPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Render a single widget to a PNG file",
		Long: `Draw renders one widget with the given flags and writes a PNG.

Relative output paths land under the configured output directory.`,
	}

	cmd.AddCommand(newDrawButtonCmd(cfgPath))
	cmd.AddCommand(newDrawIconCmd(cfgPath))
	cmd.AddCommand(newDrawBarCmd(cfgPath))
	cmd.AddCommand(newDrawSlotCmd(cfgPath))
	cmd.AddCommand(newDrawDialogCmd(cfgPath))
	cmd.AddCommand(newDrawMinimapCmd(cfgPath))
	cmd.AddCommand(newDrawTooltipCmd(cfgPath))
	cmd.AddCommand(newDrawShapeCmd(cfgPath))
	cmd.AddCommand(newDrawControlCmd(cfgPath))

	return cmd
}

// parseColorFlag converts an "r,g,b" or "r,g,b,a" flag value.
// An empty value yields nil, selecting the widget's default.
func parseColorFlag(s string) (*paint.Color, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	channels := make([]int, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidColor, err, "color %q must be r,g,b or r,g,b,a", s)
		}
		channels = append(channels, v)
	}
	c, err := paint.FromChannels(channels)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// saveWidget writes the canvas and reports the result on stdout.
func saveWidget(cmd *cobra.Command, cfgPath *string, c *canvas.Canvas, out string) error {
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	path := out
	if !filepath.IsAbs(path) {
		path = filepath.Join(cfg.OutputDir, path)
	}

	abs, err := c.Save(path)
	if err != nil {
		return err
	}
	loggerFromContext(cmd.Context()).Debug("widget saved", "path", abs, "size",
		strconv.Itoa(c.Width())+"x"+strconv.Itoa(c.Height()))
	printSuccess("Rendered %dx%d", c.Width(), c.Height())
	printFile(abs)
	return nil
}

func newDrawButtonCmd(cfgPath *string) *cobra.Command {
	var (
		width, height int
		text          string
		style, color  string
		textColor     string
		radius        int
		out           string
	)

	cmd := &cobra.Command{
		Use:   "button",
		Short: "Render a game button",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tc, err := parseColorFlag(textColor)
			if err != nil {
				return err
			}
			c, err := widget.Button(widget.ButtonParams{
				Width:     width,
				Height:    height,
				Text:      text,
				Style:     widget.ButtonStyle(style),
				Palette:   widget.Palette(color),
				TextColor: tc,
				Radius:    radius,
			})
			if err != nil {
				return err
			}
			return saveWidget(cmd, cfgPath, c, out)
		},
	}

	cmd.Flags().IntVar(&width, "width", 120, "button width")
	cmd.Flags().IntVar(&height, "height", 40, "button height")
	cmd.Flags().StringVar(&text, "text", "", "button label")
	cmd.Flags().StringVar(&style, "style", "gradient", "style: flat, gradient, glossy, outline, pixel")
	cmd.Flags().StringVar(&color, "color", "blue", "palette: blue, green, red, orange, purple")
	cmd.Flags().StringVar(&textColor, "text-color", "", "label color as r,g,b[,a]")
	cmd.Flags().IntVar(&radius, "radius", -1, "corner radius (-1 for default)")
	cmd.Flags().StringVarP(&out, "output", "o", "button.png", "output file")

	return cmd
}

func newDrawIconCmd(cfgPath *string) *cobra.Command {
	var (
		iconType, gem    string
		direction, arrow string
		size             int
		out              string
	)

	cmd := &cobra.Command{
		Use:   "icon",
		Short: "Render a game icon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := widget.Icon(widget.IconParams{
				Size:       size,
				Type:       widget.IconType(iconType),
				Gem:        widget.GemType(gem),
				Direction:  widget.Direction(direction),
				ArrowStyle: widget.ArrowStyle(arrow),
			})
			if err != nil {
				return err
			}
			return saveWidget(cmd, cfgPath, c, out)
		},
	}

	cmd.Flags().StringVar(&iconType, "type", "star", "icon: star, coin, gem, heart, shield, arrow")
	cmd.Flags().IntVar(&size, "size", 64, "icon size in pixels")
	cmd.Flags().StringVar(&gem, "gem", "", "gem palette: diamond, ruby, emerald, sapphire")
	cmd.Flags().StringVar(&direction, "direction", "", "arrow direction: up, down, left, right")
	cmd.Flags().StringVar(&arrow, "arrow-style", "", "arrow style: solid, outline, chevron")
	cmd.Flags().StringVarP(&out, "output", "o", "icon.png", "output file")

	return cmd
}

func newDrawBarCmd(cfgPath *string) *cobra.Command {
	var (
		width, height int
		prog          float64
		barType       string
		glow          bool
		out           string
	)

	cmd := &cobra.Command{
		Use:   "bar",
		Short: "Render a progress or health bar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := widget.Bar(widget.BarParams{
				Width:    width,
				Height:   height,
				Progress: prog,
				Type:     widget.BarType(barType),
				ShowGlow: glow,
			})
			if err != nil {
				return err
			}
			return saveWidget(cmd, cfgPath, c, out)
		},
	}

	cmd.Flags().IntVar(&width, "width", 200, "bar width")
	cmd.Flags().IntVar(&height, "height", 24, "bar height")
	cmd.Flags().Float64Var(&prog, "progress", 50, "fill percentage 0-100")
	cmd.Flags().StringVar(&barType, "type", "normal", "bar type: normal, health")
	cmd.Flags().BoolVar(&glow, "glow", false, "add a glow pass over the fill")
	cmd.Flags().StringVarP(&out, "output", "o", "bar.png", "output file")

	return cmd
}

func newDrawSlotCmd(cfgPath *string) *cobra.Command {
	var (
		width, height int
		rarity        string
		shine         bool
		out           string
	)

	cmd := &cobra.Command{
		Use:   "slot",
		Short: "Render an inventory slot frame",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := widget.Slot(widget.SlotParams{
				Width:     width,
				Height:    height,
				Rarity:    widget.Rarity(rarity),
				ShowShine: shine,
			})
			if err != nil {
				return err
			}
			return saveWidget(cmd, cfgPath, c, out)
		},
	}

	cmd.Flags().IntVar(&width, "width", 64, "slot width")
	cmd.Flags().IntVar(&height, "height", 64, "slot height")
	cmd.Flags().StringVar(&rarity, "rarity", "common", "rarity: common, uncommon, rare, epic, legendary")
	cmd.Flags().BoolVar(&shine, "shine", false, "add shine streaks (epic and legendary only)")
	cmd.Flags().StringVarP(&out, "output", "o", "slot.png", "output file")

	return cmd
}

func newDrawDialogCmd(cfgPath *string) *cobra.Command {
	var (
		width, height int
		style         string
		noTail        bool
		out           string
	)

	cmd := &cobra.Command{
		Use:   "dialog",
		Short: "Render a dialog box",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := widget.Dialog(widget.DialogParams{
				Width:    width,
				Height:   height,
				Style:    widget.DialogStyle(style),
				HideTail: noTail,
			})
			if err != nil {
				return err
			}
			return saveWidget(cmd, cfgPath, c, out)
		},
	}

	cmd.Flags().IntVar(&width, "width", 300, "dialog width")
	cmd.Flags().IntVar(&height, "height", 100, "dialog height")
	cmd.Flags().StringVar(&style, "style", "modern", "theme: modern, fantasy, scifi, pixel")
	cmd.Flags().BoolVar(&noTail, "no-tail", false, "omit the speech tail")
	cmd.Flags().StringVarP(&out, "output", "o", "dialog.png", "output file")

	return cmd
}

func newDrawMinimapCmd(cfgPath *string) *cobra.Command {
	var (
		width, height int
		shape, border string
		out           string
	)

	cmd := &cobra.Command{
		Use:   "minimap",
		Short: "Render a minimap frame",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bc, err := parseColorFlag(border)
			if err != nil {
				return err
			}
			c, err := widget.Minimap(widget.MinimapParams{
				Width:       width,
				Height:      height,
				Shape:       widget.MinimapShape(shape),
				BorderColor: bc,
			})
			if err != nil {
				return err
			}
			return saveWidget(cmd, cfgPath, c, out)
		},
	}

	cmd.Flags().IntVar(&width, "width", 120, "minimap width")
	cmd.Flags().IntVar(&height, "height", 120, "minimap height")
	cmd.Flags().StringVar(&shape, "shape", "circle", "frame shape: circle, square, hexagon")
	cmd.Flags().StringVar(&border, "border", "", "border color as r,g,b[,a]")
	cmd.Flags().StringVarP(&out, "output", "o", "minimap.png", "output file")

	return cmd
}

func newDrawTooltipCmd(cfgPath *string) *cobra.Command {
	var (
		width, height int
		title, rarity string
		lines         []string
		out           string
	)

	cmd := &cobra.Command{
		Use:   "tooltip",
		Short: "Render an item tooltip",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := widget.Tooltip(widget.TooltipParams{
				Width:  width,
				Height: height,
				Title:  title,
				Rarity: widget.Rarity(rarity),
				Lines:  lines,
			})
			if err != nil {
				return err
			}
			return saveWidget(cmd, cfgPath, c, out)
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, "tooltip width (0 to size from the title)")
	cmd.Flags().IntVar(&height, "height", 0, "tooltip height (0 to size from the lines)")
	cmd.Flags().StringVar(&title, "title", "Item", "item name")
	cmd.Flags().StringVar(&rarity, "rarity", "rare", "title rarity: common, uncommon, rare, epic, legendary")
	cmd.Flags().StringSliceVar(&lines, "line", nil, "stat line (repeatable)")
	cmd.Flags().StringVarP(&out, "output", "o", "tooltip.png", "output file")

	return cmd
}

func newDrawShapeCmd(cfgPath *string) *cobra.Command {
	var (
		width, height       int
		shapeType           string
		fill, border        string
		borderWidth, radius int
		gradientDir         string
		gradientEnd         string
		sides               int
		rotation            float64
		out                 string
	)

	cmd := &cobra.Command{
		Use:   "shape",
		Short: "Render a basic shape",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fc, err := parseColorFlag(fill)
			if err != nil {
				return err
			}
			bc, err := parseColorFlag(border)
			if err != nil {
				return err
			}
			gc, err := parseColorFlag(gradientEnd)
			if err != nil {
				return err
			}
			c, err := widget.Shape(widget.ShapeParams{
				Width:       width,
				Height:      height,
				Shape:       widget.ShapeType(shapeType),
				Fill:        fc,
				Border:      bc,
				BorderWidth: borderWidth,
				Radius:      radius,
				GradientDir: paint.Direction(gradientDir),
				GradientEnd: gc,
				Sides:       sides,
				Rotation:    rotation,
			})
			if err != nil {
				return err
			}
			return saveWidget(cmd, cfgPath, c, out)
		},
	}

	cmd.Flags().IntVar(&width, "width", 100, "shape width")
	cmd.Flags().IntVar(&height, "height", 100, "shape height")
	cmd.Flags().StringVar(&shapeType, "type", "rounded_rect", "shape: rounded_rect, circle, polygon")
	cmd.Flags().StringVar(&fill, "fill", "", "fill color as r,g,b[,a]")
	cmd.Flags().StringVar(&border, "border", "", "border color as r,g,b[,a]")
	cmd.Flags().IntVar(&borderWidth, "border-width", 0, "border width")
	cmd.Flags().IntVar(&radius, "radius", -1, "corner radius for rounded_rect (-1 for default)")
	cmd.Flags().StringVar(&gradientDir, "gradient", "", "gradient direction: vertical, horizontal, diagonal")
	cmd.Flags().StringVar(&gradientEnd, "gradient-end", "", "gradient end color as r,g,b[,a]")
	cmd.Flags().IntVar(&sides, "sides", 0, "polygon sides (0 for hexagon)")
	cmd.Flags().Float64Var(&rotation, "rotation", 0, "polygon rotation in degrees")
	cmd.Flags().StringVarP(&out, "output", "o", "shape.png", "output file")

	return cmd
}

func newDrawControlCmd(cfgPath *string) *cobra.Command {
	var (
		ctrlType, bgShape string
		size              int
		bg, icon          string
		out               string
	)

	cmd := &cobra.Command{
		Use:   "control",
		Short: "Render a control button",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bgc, err := parseColorFlag(bg)
			if err != nil {
				return err
			}
			ic, err := parseColorFlag(icon)
			if err != nil {
				return err
			}
			c, err := widget.Control(widget.ControlParams{
				Size:       size,
				Type:       widget.ControlType(ctrlType),
				Background: widget.BackgroundShape(bgShape),
				BgColor:    bgc,
				IconColor:  ic,
			})
			if err != nil {
				return err
			}
			return saveWidget(cmd, cfgPath, c, out)
		},
	}

	cmd.Flags().StringVar(&ctrlType, "type", "close", "control: close, settings, play, pause, menu, home, refresh, back, plus, minus, check")
	cmd.Flags().IntVar(&size, "size", 48, "button size in pixels")
	cmd.Flags().StringVar(&bgShape, "background", "", "background plate: circle, square, none")
	cmd.Flags().StringVar(&bg, "bg-color", "", "plate color as r,g,b[,a]")
	cmd.Flags().StringVar(&icon, "icon-color", "", "glyph color as r,g,b[,a]")
	cmd.Flags().StringVarP(&out, "output", "o", "control.png", "output file")

	return cmd
}
