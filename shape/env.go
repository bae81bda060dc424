package shape

import (
	"errors"
	"fmt"
	"image/color"
)

// DefaultLineThickness is the pen width (in mils) for items of width 0,
// unless the host configures otherwise.
var DefaultLineThickness int = 6

// MinimumSelectionDistance is the hit-test tolerance floor (in mils).
var MinimumSelectionDistance int = 2

// ErrUnknownFillMode is returned for unknown fill mode tokens.
var ErrUnknownFillMode = errors.New("unknown fill mode")

// FillMode tells whether and how the interior of an item is painted.
type FillMode int

// Fill modes.
const (
	NoFill FillMode = iota
	FilledShape
	FilledWithBackground
)

func (f FillMode) String() string {
	switch f {
	case NoFill:
		return "NoFill"
	case FilledShape:
		return "FilledShape"
	case FilledWithBackground:
		return "FilledWithBackground"
	}
	return fmt.Sprintf("FillMode(%d)", int(f))
}

// Token returns the fill mode's token in symbol library files.
func (f FillMode) Token() string {
	switch f {
	case FilledShape:
		return "F"
	case FilledWithBackground:
		return "f"
	}
	return "N"
}

// ParseFillMode reads a fill mode token as found in symbol library files.
func ParseFillMode(token string) (FillMode, error) {
	switch token {
	case "N":
		return NoFill, nil
	case "F":
		return FilledShape, nil
	case "f":
		return FilledWithBackground, nil
	}
	return NoFill, fmt.Errorf("%w: %q", ErrUnknownFillMode, token)
}

// Layer identifies a logical drawing layer.
type Layer int

// Layers used by symbol items.
const (
	LayerDevice Layer = iota
	LayerDeviceBackground
	LayerSelection
)

// LayerColors resolves a layer to a display color.
type LayerColors interface {
	LayerColor(l Layer) color.Color
}

// LineThickness resolves the host's default line thickness.
type LineThickness interface {
	DefaultLineThickness() int
}

// Thickness is a constant LineThickness.
type Thickness int

// DefaultLineThickness is part of interface LineThickness.
func (t Thickness) DefaultLineThickness() int {
	return int(t)
}

// Palette is a LayerColors backed by a map. Missing layers resolve to black.
type Palette map[Layer]color.Color

// LayerColor is part of interface LayerColors.
func (p Palette) LayerColor(l Layer) color.Color {
	if c, ok := p[l]; ok {
		return c
	}
	return color.Black
}

// Env bundles the host services items depend on.
type Env struct {
	Thickness      LineThickness
	Colors         LayerColors
	SelectionColor color.Color
}

var defaultPalette = Palette{
	LayerDevice:           color.NRGBA{R: 0x84, A: 0xff},
	LayerDeviceBackground: color.NRGBA{R: 0xff, G: 0xff, B: 0xc2, A: 0xff},
	LayerSelection:        color.NRGBA{R: 0xff, G: 0xa5, A: 0xff},
}

// DefaultEnv returns an environment built from the package defaults.
func DefaultEnv() *Env {
	return &Env{
		Thickness:      Thickness(DefaultLineThickness),
		Colors:         defaultPalette,
		SelectionColor: defaultPalette[LayerSelection],
	}
}

// The accessors below accept a nil environment, falling back to the
// package defaults.

func (env *Env) layerColor(l Layer) color.Color {
	if env == nil || env.Colors == nil {
		return defaultPalette.LayerColor(l)
	}
	return env.Colors.LayerColor(l)
}

func (env *Env) lineThickness() int {
	if env == nil || env.Thickness == nil {
		return DefaultLineThickness
	}
	return env.Thickness.DefaultLineThickness()
}

func (env *Env) selectionColor() color.Color {
	if env == nil || env.SelectionColor == nil {
		return env.layerColor(LayerSelection)
	}
	return env.SelectionColor
}
