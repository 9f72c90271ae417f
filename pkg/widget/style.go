// Package widget renders complete themed UI elements — buttons, icons,
// bars, slots, dialogs, minimaps, tooltips — from small parameter sets.
//
// Every generator is a pure function from its parameters to one finished
// canvas: parameters are validated before any drawing, the same inputs
// always produce the same pixels, and all styling comes from the closed
// lookup tables in this file. Adding a variant means adding a table entry;
// there are no fallback branches for unknown enum values.
package widget

import (
	"github.com/pixelsmith/gamepainter/pkg/errors"
	"github.com/pixelsmith/gamepainter/pkg/paint"
)

// ButtonStyle selects how a button's background is painted.
type ButtonStyle string

// Button styles.
const (
	ButtonFlat     ButtonStyle = "flat"     // solid fill
	ButtonGradient ButtonStyle = "gradient" // vertical two-tone blend
	ButtonGlossy   ButtonStyle = "glossy"   // solid base with top highlight band
	ButtonOutline  ButtonStyle = "outline"  // stroke only
	ButtonPixel    ButtonStyle = "pixel"    // hard-edged blocky border, no rounding
)

// ParseButtonStyle validates a button style parameter.
// An empty string selects the gradient default.
func ParseButtonStyle(s string) (ButtonStyle, error) {
	switch ButtonStyle(s) {
	case ButtonFlat, ButtonGradient, ButtonGlossy, ButtonOutline, ButtonPixel:
		return ButtonStyle(s), nil
	case "":
		return ButtonGradient, nil
	}
	return "", errors.New(errors.ErrCodeInvalidEnum, "unknown button style %q", s)
}

// Palette names a button color pair.
type Palette string

// Button palettes.
const (
	PaletteBlue   Palette = "blue"
	PaletteGreen  Palette = "green"
	PaletteRed    Palette = "red"
	PaletteOrange Palette = "orange"
	PalettePurple Palette = "purple"
)

type palettePair struct {
	primary   paint.Color
	secondary paint.Color
}

var palettes = map[Palette]palettePair{
	PaletteBlue:   {paint.RGB(65, 105, 225), paint.RGB(30, 60, 180)},
	PaletteGreen:  {paint.RGB(50, 205, 50), paint.RGB(30, 150, 30)},
	PaletteRed:    {paint.RGB(220, 60, 60), paint.RGB(180, 30, 30)},
	PaletteOrange: {paint.RGB(255, 165, 0), paint.RGB(220, 120, 0)},
	PalettePurple: {paint.RGB(138, 43, 226), paint.RGB(100, 30, 180)},
}

// ParsePalette validates a palette parameter.
// An empty string selects blue.
func ParsePalette(s string) (Palette, error) {
	if s == "" {
		return PaletteBlue, nil
	}
	if _, ok := palettes[Palette(s)]; !ok {
		return "", errors.New(errors.ErrCodeInvalidEnum, "unknown color palette %q", s)
	}
	return Palette(s), nil
}

// Rarity grades item-related UI from common to legendary.
type Rarity string

// Rarity tiers, in ascending order.
const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// rarityStyle is the deterministic color mapping for one rarity tier.
type rarityStyle struct {
	background paint.Color
	border     paint.Color
	title      paint.Color
	glow       *paint.Color // nil for tiers without a glow accent
}

var shineGlow = paint.RGBA(255, 255, 255, 100)

var rarities = map[Rarity]rarityStyle{
	RarityCommon: {
		background: paint.RGB(80, 80, 80),
		border:     paint.RGB(120, 120, 120),
		title:      paint.RGB(180, 180, 180),
	},
	RarityUncommon: {
		background: paint.RGB(30, 100, 30),
		border:     paint.RGB(50, 180, 50),
		title:      paint.RGB(30, 255, 30),
	},
	RarityRare: {
		background: paint.RGB(30, 60, 150),
		border:     paint.RGB(50, 100, 220),
		title:      paint.RGB(50, 150, 255),
	},
	RarityEpic: {
		background: paint.RGB(100, 50, 150),
		border:     paint.RGB(160, 80, 220),
		title:      paint.RGB(180, 80, 255),
		glow:       &shineGlow,
	},
	RarityLegendary: {
		background: paint.RGB(180, 120, 30),
		border:     paint.RGB(255, 200, 50),
		title:      paint.RGB(255, 200, 50),
		glow:       &shineGlow,
	},
}

// ParseRarity validates a rarity parameter.
// An empty string selects common.
func ParseRarity(s string) (Rarity, error) {
	if s == "" {
		return RarityCommon, nil
	}
	if _, ok := rarities[Rarity(s)]; !ok {
		return "", errors.New(errors.ErrCodeInvalidEnum, "unknown rarity %q", s)
	}
	return Rarity(s), nil
}

// BorderColor returns the frame color for a rarity tier. The mapping is a
// pure table lookup: the same rarity always yields the same color.
func (r Rarity) BorderColor() paint.Color {
	return rarities[r].border
}

// TitleColor returns the text accent color for a rarity tier.
func (r Rarity) TitleColor() paint.Color {
	return rarities[r].title
}

// DialogStyle selects a dialog box theme.
type DialogStyle string

// Dialog styles.
const (
	DialogModern  DialogStyle = "modern"
	DialogFantasy DialogStyle = "fantasy"
	DialogSciFi   DialogStyle = "scifi"
	DialogPixel   DialogStyle = "pixel"
)

type dialogTheme struct {
	background paint.Color
	border     paint.Color
	radius     int
	borderW    int
}

var dialogThemes = map[DialogStyle]dialogTheme{
	DialogModern:  {paint.RGBA(30, 30, 30, 230), paint.RGB(100, 100, 100), 12, 2},
	DialogFantasy: {paint.RGBA(60, 40, 30, 230), paint.RGB(180, 140, 100), 12, 2},
	DialogSciFi:   {paint.RGBA(20, 30, 50, 230), paint.RGB(0, 200, 255), 12, 2},
	DialogPixel:   {paint.RGBA(40, 40, 60, 255), paint.RGB(150, 150, 180), 0, 3},
}

// ParseDialogStyle validates a dialog style parameter.
// An empty string selects modern.
func ParseDialogStyle(s string) (DialogStyle, error) {
	if s == "" {
		return DialogModern, nil
	}
	if _, ok := dialogThemes[DialogStyle(s)]; !ok {
		return "", errors.New(errors.ErrCodeInvalidEnum, "unknown dialog style %q", s)
	}
	return DialogStyle(s), nil
}

// IconType selects a procedural icon shape.
type IconType string

// Icon types.
const (
	IconStar   IconType = "star"
	IconCoin   IconType = "coin"
	IconGem    IconType = "gem"
	IconHeart  IconType = "heart"
	IconShield IconType = "shield"
	IconArrow  IconType = "arrow"
)

// ParseIconType validates an icon type parameter.
// An empty string selects star.
func ParseIconType(s string) (IconType, error) {
	switch IconType(s) {
	case IconStar, IconCoin, IconGem, IconHeart, IconShield, IconArrow:
		return IconType(s), nil
	case "":
		return IconStar, nil
	}
	return "", errors.New(errors.ErrCodeInvalidEnum, "unknown icon type %q", s)
}

// GemType selects a gem facet palette.
type GemType string

// Gem types.
const (
	GemDiamond  GemType = "diamond"
	GemRuby     GemType = "ruby"
	GemEmerald  GemType = "emerald"
	GemSapphire GemType = "sapphire"
)

type gemPalette struct {
	light, mid, dark paint.Color
}

var gems = map[GemType]gemPalette{
	GemDiamond:  {paint.RGB(200, 230, 255), paint.RGB(150, 200, 255), paint.RGB(100, 180, 255)},
	GemRuby:     {paint.RGB(255, 100, 100), paint.RGB(200, 50, 50), paint.RGB(150, 30, 30)},
	GemEmerald:  {paint.RGB(100, 255, 150), paint.RGB(50, 200, 100), paint.RGB(30, 150, 80)},
	GemSapphire: {paint.RGB(100, 150, 255), paint.RGB(50, 100, 200), paint.RGB(30, 80, 180)},
}

// ParseGemType validates a gem type parameter.
// An empty string selects diamond.
func ParseGemType(s string) (GemType, error) {
	if s == "" {
		return GemDiamond, nil
	}
	if _, ok := gems[GemType(s)]; !ok {
		return "", errors.New(errors.ErrCodeInvalidEnum, "unknown gem type %q", s)
	}
	return GemType(s), nil
}

// Direction orients directional icons in 90° steps.
type Direction string

// Directions.
const (
	DirUp    Direction = "up"
	DirDown  Direction = "down"
	DirLeft  Direction = "left"
	DirRight Direction = "right"
)

// ParseDirection validates a direction parameter.
// An empty string selects right.
func ParseDirection(s string) (Direction, error) {
	switch Direction(s) {
	case DirUp, DirDown, DirLeft, DirRight:
		return Direction(s), nil
	case "":
		return DirRight, nil
	}
	return "", errors.New(errors.ErrCodeInvalidEnum, "unknown direction %q", s)
}

// ArrowStyle selects how an arrow icon is rendered.
type ArrowStyle string

// Arrow styles.
const (
	ArrowSolid   ArrowStyle = "solid"   // filled triangle
	ArrowOutline ArrowStyle = "outline" // stroked triangle
	ArrowChevron ArrowStyle = "chevron" // V-shaped stroke
)

// ParseArrowStyle validates an arrow style parameter.
// An empty string selects solid.
func ParseArrowStyle(s string) (ArrowStyle, error) {
	switch ArrowStyle(s) {
	case ArrowSolid, ArrowOutline, ArrowChevron:
		return ArrowStyle(s), nil
	case "":
		return ArrowSolid, nil
	}
	return "", errors.New(errors.ErrCodeInvalidEnum, "unknown arrow style %q", s)
}

// BarType selects progress bar semantics.
type BarType string

// Bar types.
const (
	BarNormal BarType = "normal" // fixed fill color
	BarHealth BarType = "health" // red/orange/green ramp keyed by progress
)

// ParseBarType validates a bar type parameter.
// An empty string selects normal.
func ParseBarType(s string) (BarType, error) {
	switch BarType(s) {
	case BarNormal, BarHealth:
		return BarType(s), nil
	case "":
		return BarNormal, nil
	}
	return "", errors.New(errors.ErrCodeInvalidEnum, "unknown bar type %q", s)
}

// MinimapShape selects a minimap frame outline.
type MinimapShape string

// Minimap shapes.
const (
	MinimapCircle  MinimapShape = "circle"
	MinimapSquare  MinimapShape = "square"
	MinimapHexagon MinimapShape = "hexagon"
)

// ParseMinimapShape validates a minimap shape parameter.
// An empty string selects circle.
func ParseMinimapShape(s string) (MinimapShape, error) {
	switch MinimapShape(s) {
	case MinimapCircle, MinimapSquare, MinimapHexagon:
		return MinimapShape(s), nil
	case "":
		return MinimapCircle, nil
	}
	return "", errors.New(errors.ErrCodeInvalidEnum, "unknown minimap shape %q", s)
}

// ControlType selects a control button glyph.
type ControlType string

// Control button types.
const (
	ControlClose    ControlType = "close"    // X
	ControlSettings ControlType = "settings" // gear
	ControlPlay     ControlType = "play"     // triangle
	ControlPause    ControlType = "pause"    // two bars
	ControlMenu     ControlType = "menu"     // three lines
	ControlHome     ControlType = "home"     // house
	ControlRefresh  ControlType = "refresh"  // circular arrow
	ControlBack     ControlType = "back"     // left arrow
	ControlPlus     ControlType = "plus"     // +
	ControlMinus    ControlType = "minus"    // -
	ControlCheck    ControlType = "check"    // tick
)

// ParseControlType validates a control button type parameter.
// An empty string selects close.
func ParseControlType(s string) (ControlType, error) {
	switch ControlType(s) {
	case ControlClose, ControlSettings, ControlPlay, ControlPause, ControlMenu,
		ControlHome, ControlRefresh, ControlBack, ControlPlus, ControlMinus, ControlCheck:
		return ControlType(s), nil
	case "":
		return ControlClose, nil
	}
	return "", errors.New(errors.ErrCodeInvalidEnum, "unknown control button type %q", s)
}

// BackgroundShape selects a control button's backing plate.
type BackgroundShape string

// Background shapes.
const (
	BackgroundCircle BackgroundShape = "circle"
	BackgroundSquare BackgroundShape = "square"
	BackgroundNone   BackgroundShape = "none"
)

// ParseBackgroundShape validates a background shape parameter.
// An empty string selects circle.
func ParseBackgroundShape(s string) (BackgroundShape, error) {
	switch BackgroundShape(s) {
	case BackgroundCircle, BackgroundSquare, BackgroundNone:
		return BackgroundShape(s), nil
	case "":
		return BackgroundCircle, nil
	}
	return "", errors.New(errors.ErrCodeInvalidEnum, "unknown background shape %q", s)
}

// ShapeType selects a basic shape primitive.
type ShapeType string

// Basic shape types.
const (
	ShapeRoundedRect ShapeType = "rounded_rect"
	ShapeCircle      ShapeType = "circle"
	ShapePolygon     ShapeType = "polygon"
)

// ParseShapeType validates a basic shape parameter.
// An empty string selects rounded_rect.
func ParseShapeType(s string) (ShapeType, error) {
	switch ShapeType(s) {
	case ShapeRoundedRect, ShapeCircle, ShapePolygon:
		return ShapeType(s), nil
	case "":
		return ShapeRoundedRect, nil
	}
	return "", errors.New(errors.ErrCodeInvalidEnum, "unknown shape type %q", s)
}
