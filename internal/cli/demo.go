package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pixelsmith/gamepainter/internal/config"
	"github.com/pixelsmith/gamepainter/pkg/canvas"
	"github.com/pixelsmith/gamepainter/pkg/paint"
	"github.com/pixelsmith/gamepainter/pkg/preset"
	"github.com/pixelsmith/gamepainter/pkg/widget"
)

// newDemoCmd creates the demo command rendering the complete showcase:
// one sample of every widget family plus a composed scene exercising the
// drawing primitives and preset figures.
func newDemoCmd(cfgPath *string) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Render the full widget showcase",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*cfgPath)
			if err != nil {
				return err
			}
			dir := out
			if !filepath.IsAbs(dir) {
				dir = filepath.Join(cfg.OutputDir, dir)
			}

			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			n, err := runDemo(dir)
			if err != nil {
				printError("demo failed: %s", err)
				return err
			}

			prog.done(fmt.Sprintf("Rendered %d showcase images", n))
			printSuccess("Showcase complete")
			printFile(dir)
			printNextStep("Generate a themed kit", "gamepainter kit --theme fantasy")
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "demo", "target directory")

	return cmd
}

// demoItem names one showcase file and how to render it.
type demoItem struct {
	name   string
	render func() (*canvas.Canvas, error)
}

// runDemo writes every showcase image into dir, creating it if needed.
// It fails fast on the first error and returns the number of files written.
func runDemo(dir string) (int, error) {
	items := demoCatalog()
	for i, it := range items {
		c, err := it.render()
		if err != nil {
			return i, err
		}
		if _, err := c.Save(filepath.Join(dir, it.name)); err != nil {
			return i, err
		}
	}
	return len(items), nil
}

// demoCatalog builds the showcase list: every palette, style and widget
// family gets at least one sample.
func demoCatalog() []demoItem {
	var items []demoItem

	for _, palette := range []widget.Palette{
		widget.PaletteBlue, widget.PaletteGreen, widget.PaletteRed,
		widget.PaletteOrange, widget.PalettePurple,
	} {
		p := palette
		items = append(items, demoItem{
			name: fmt.Sprintf("button_%s.png", p),
			render: func() (*canvas.Canvas, error) {
				return widget.Button(widget.ButtonParams{Text: "Play", Palette: p})
			},
		})
	}
	for _, style := range []widget.ButtonStyle{
		widget.ButtonFlat, widget.ButtonGradient, widget.ButtonGlossy,
		widget.ButtonOutline, widget.ButtonPixel,
	} {
		s := style
		items = append(items, demoItem{
			name: fmt.Sprintf("button_style_%s.png", s),
			render: func() (*canvas.Canvas, error) {
				return widget.Button(widget.ButtonParams{Text: "OK", Style: s})
			},
		})
	}

	for _, icon := range []widget.IconType{
		widget.IconStar, widget.IconCoin, widget.IconHeart, widget.IconShield,
	} {
		ic := icon
		items = append(items, demoItem{
			name: fmt.Sprintf("icon_%s.png", ic),
			render: func() (*canvas.Canvas, error) {
				return widget.Icon(widget.IconParams{Type: ic})
			},
		})
	}
	for _, gem := range []widget.GemType{
		widget.GemDiamond, widget.GemRuby, widget.GemEmerald, widget.GemSapphire,
	} {
		g := gem
		items = append(items, demoItem{
			name: fmt.Sprintf("gem_%s.png", g),
			render: func() (*canvas.Canvas, error) {
				return widget.Icon(widget.IconParams{Type: widget.IconGem, Gem: g})
			},
		})
	}
	for _, dir := range []widget.Direction{
		widget.DirUp, widget.DirDown, widget.DirLeft, widget.DirRight,
	} {
		d := dir
		items = append(items, demoItem{
			name: fmt.Sprintf("arrow_%s.png", d),
			render: func() (*canvas.Canvas, error) {
				return widget.Icon(widget.IconParams{Type: widget.IconArrow, Direction: d})
			},
		})
	}

	for _, pct := range []float64{25, 50, 75} {
		p := pct
		items = append(items, demoItem{
			name: fmt.Sprintf("progress_%.0f.png", p),
			render: func() (*canvas.Canvas, error) {
				return widget.Bar(widget.BarParams{Progress: p, ShowGlow: true})
			},
		})
	}
	for _, pct := range []float64{100, 60, 25} {
		p := pct
		items = append(items, demoItem{
			name: fmt.Sprintf("health_%.0f.png", p),
			render: func() (*canvas.Canvas, error) {
				return widget.Bar(widget.BarParams{Progress: p, Type: widget.BarHealth})
			},
		})
	}

	for _, rarity := range []widget.Rarity{
		widget.RarityCommon, widget.RarityUncommon, widget.RarityRare,
		widget.RarityEpic, widget.RarityLegendary,
	} {
		r := rarity
		items = append(items, demoItem{
			name: fmt.Sprintf("slot_%s.png", r),
			render: func() (*canvas.Canvas, error) {
				return widget.Slot(widget.SlotParams{Rarity: r, ShowShine: true})
			},
		})
	}

	for _, style := range []widget.DialogStyle{
		widget.DialogModern, widget.DialogFantasy, widget.DialogSciFi, widget.DialogPixel,
	} {
		s := style
		items = append(items, demoItem{
			name: fmt.Sprintf("dialog_%s.png", s),
			render: func() (*canvas.Canvas, error) {
				return widget.Dialog(widget.DialogParams{Style: s})
			},
		})
	}

	for _, shape := range []widget.MinimapShape{
		widget.MinimapCircle, widget.MinimapSquare, widget.MinimapHexagon,
	} {
		sh := shape
		items = append(items, demoItem{
			name: fmt.Sprintf("minimap_%s.png", sh),
			render: func() (*canvas.Canvas, error) {
				return widget.Minimap(widget.MinimapParams{Shape: sh})
			},
		})
	}

	items = append(items, demoItem{
		name: "tooltip.png",
		render: func() (*canvas.Canvas, error) {
			return widget.Tooltip(widget.TooltipParams{
				Title:  "Flamebrand Sword",
				Rarity: widget.RarityEpic,
				Lines:  []string{"+24 ATK", "+8 CRIT", "Burns on hit"},
			})
		},
	})

	for _, ctrl := range []widget.ControlType{
		widget.ControlClose, widget.ControlSettings, widget.ControlPlay,
		widget.ControlPause, widget.ControlMenu, widget.ControlHome,
		widget.ControlRefresh, widget.ControlBack, widget.ControlPlus,
		widget.ControlMinus, widget.ControlCheck,
	} {
		ct := ctrl
		items = append(items, demoItem{
			name: fmt.Sprintf("ctrl_%s.png", ct),
			render: func() (*canvas.Canvas, error) {
				return widget.Control(widget.ControlParams{Type: ct})
			},
		})
	}

	items = append(items, demoItem{name: "scene.png", render: demoScene})

	return items
}

// demoScene composes the preset figures with raw primitives into one image:
// sky gradient band, sun arc, rolling bezier ground line, house, car, tree.
func demoScene() (*canvas.Canvas, error) {
	c, err := canvas.New(480, 320, paint.RGB(170, 210, 240))
	if err != nil {
		return nil, err
	}

	sun := paint.RGB(255, 220, 90)
	if err := c.Ellipse(380, 20, 60, 60, canvas.FillOnly(sun)); err != nil {
		return nil, err
	}
	if err := c.Arc(370, 10, 80, 80, 0, 360, paint.RGBA(255, 220, 90, 120), 3); err != nil {
		return nil, err
	}

	ground := paint.RGB(120, 170, 90)
	if err := c.Rect(0, 230, 480, 90, 0, canvas.FillOnly(ground)); err != nil {
		return nil, err
	}
	wave := []canvas.Point{{X: 0, Y: 232}, {X: 160, Y: 218}, {X: 320, Y: 244}, {X: 479, Y: 228}}
	if err := c.Bezier(wave, paint.RGB(90, 140, 70), 3); err != nil {
		return nil, err
	}

	if err := preset.Draw(c, preset.FigureHouse, 40, 110, 1.0, nil, nil); err != nil {
		return nil, err
	}
	if err := preset.Draw(c, preset.FigureTree, 220, 110, 1.0, nil, nil); err != nil {
		return nil, err
	}
	if err := preset.Draw(c, preset.FigureCar, 300, 190, 1.0, nil, nil); err != nil {
		return nil, err
	}

	if err := c.Text(16, 12, "gamepainter demo", 18, paint.RGBA(0, 0, 0, 170)); err != nil {
		return nil, err
	}
	return c, nil
}
