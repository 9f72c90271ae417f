// Package kit batch-generates a fixed catalog of themed UI assets into an
// output directory: buttons, control buttons, icons, gems, bars, slots, a
// dialog box, and arrows. The catalog and its file names are fixed; the
// theme only restyles the dialog box.
package kit

import (
	"path/filepath"
	"strconv"

	"github.com/pixelsmith/gamepainter/pkg/canvas"
	"github.com/pixelsmith/gamepainter/pkg/errors"
	"github.com/pixelsmith/gamepainter/pkg/widget"
)

// Item is one catalog entry: a file name and the render that produces it.
type Item struct {
	Name   string
	render func() (*canvas.Canvas, error)
}

// Catalog returns the ordered asset list for a theme. The list is the same
// for every theme except the dialog box style. An empty or "default" theme
// selects the modern dialog; anything else must be a valid dialog style.
func Catalog(theme string) ([]Item, error) {
	dialogStyle := widget.DialogModern
	if theme != "" && theme != "default" {
		parsed, err := widget.ParseDialogStyle(theme)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidEnum, "unknown kit theme %q", theme)
		}
		dialogStyle = parsed
	}

	var items []Item
	add := func(name string, render func() (*canvas.Canvas, error)) {
		items = append(items, Item{Name: name, render: render})
	}

	for _, style := range []widget.ButtonStyle{widget.ButtonFlat, widget.ButtonGradient, widget.ButtonGlossy} {
		style := style
		add("button_"+string(style)+".png", func() (*canvas.Canvas, error) {
			return widget.Button(widget.ButtonParams{Width: 120, Height: 40, Text: "OK", Style: style, Radius: 8})
		})
	}

	for _, typ := range []widget.ControlType{
		widget.ControlClose, widget.ControlSettings, widget.ControlPlay, widget.ControlPause, widget.ControlMenu,
	} {
		typ := typ
		add("ctrl_"+string(typ)+".png", func() (*canvas.Canvas, error) {
			return widget.Control(widget.ControlParams{Size: 48, Type: typ})
		})
	}

	for _, icon := range []widget.IconType{widget.IconStar, widget.IconCoin, widget.IconHeart} {
		icon := icon
		add("icon_"+string(icon)+".png", func() (*canvas.Canvas, error) {
			return widget.Icon(widget.IconParams{Size: 64, Type: icon})
		})
	}

	for _, gem := range []widget.GemType{widget.GemDiamond, widget.GemRuby, widget.GemEmerald} {
		gem := gem
		add("gem_"+string(gem)+".png", func() (*canvas.Canvas, error) {
			return widget.Icon(widget.IconParams{Size: 64, Type: widget.IconGem, Gem: gem})
		})
	}

	add("progress_bar.png", func() (*canvas.Canvas, error) {
		return widget.Bar(widget.BarParams{Width: 200, Height: 24, Progress: 75})
	})

	for _, hp := range []int{100, 50, 25} {
		hp := hp
		add("health_"+strconv.Itoa(hp)+".png", func() (*canvas.Canvas, error) {
			return widget.Bar(widget.BarParams{Width: 150, Height: 16, Progress: float64(hp), Type: widget.BarHealth})
		})
	}

	for _, rarity := range []widget.Rarity{widget.RarityCommon, widget.RarityRare, widget.RarityEpic, widget.RarityLegendary} {
		rarity := rarity
		add("slot_"+string(rarity)+".png", func() (*canvas.Canvas, error) {
			return widget.Slot(widget.SlotParams{Width: 64, Height: 64, Rarity: rarity})
		})
	}

	add("dialog_box.png", func() (*canvas.Canvas, error) {
		return widget.Dialog(widget.DialogParams{Width: 300, Height: 100, Style: dialogStyle})
	})

	for _, dir := range []widget.Direction{widget.DirUp, widget.DirDown, widget.DirLeft, widget.DirRight} {
		dir := dir
		add("arrow_"+string(dir)+".png", func() (*canvas.Canvas, error) {
			return widget.Icon(widget.IconParams{Size: 40, Type: widget.IconArrow, Direction: dir})
		})
	}

	return items, nil
}

// Generate renders the full catalog for theme into dir, calling onFile with
// each file name as it lands. It fails fast: the first error aborts the run
// and files already written stay on disk. The returned names are in catalog
// order and relative to dir.
func Generate(dir, theme string, onFile func(name string)) ([]string, error) {
	items, err := Catalog(theme)
	if err != nil {
		return nil, err
	}

	written := make([]string, 0, len(items))
	for _, it := range items {
		c, err := it.render()
		if err != nil {
			return written, errors.Wrap(errors.GetCode(err), err, "rendering %s", it.Name)
		}
		if _, err := c.Save(filepath.Join(dir, it.Name)); err != nil {
			return written, err
		}
		written = append(written, it.Name)
		if onFile != nil {
			onFile(it.Name)
		}
	}
	return written, nil
}
