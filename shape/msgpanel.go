package shape

import (
	"fmt"
	"image/color"

	"github.com/npillmayer/symdraw"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Units selects how lengths are presented to users. Internal lengths are
// always mils.
type Units int

// Display units.
const (
	Mils Units = iota
	Inches
	Millimetres
)

// MsgPanelItem is a labelled value shown in the editor's message panel.
type MsgPanelItem struct {
	Label string
	Text  string
	Color color.Color
}

var (
	msgBlue  = color.NRGBA{B: 0x84, A: 0xff}
	msgBrown = color.NRGBA{R: 0x84, G: 0x84, A: 0xff}
	msgCyan  = color.NRGBA{G: 0x84, B: 0x84, A: 0xff}
)

var printer = message.NewPrinter(language.English)

// FormatValue formats a length given in mils for display in units.
func FormatValue(units Units, mils int, withSymbol bool) string {
	var s, sym string
	switch units {
	case Inches:
		s, sym = printer.Sprintf("%.4f", float64(mils)/1000), " in"
	case Millimetres:
		s, sym = printer.Sprintf("%.4f", float64(mils)*0.0254), " mm"
	default:
		s, sym = printer.Sprintf("%d", mils), " mils"
	}
	if withSymbol {
		s += sym
	}
	return s
}

func formatRect(r symdraw.Rect) string {
	return fmt.Sprintf("(%d, %d, %d, %d)", r.Min.X, r.Min.Y, r.Max.X, r.Max.Y)
}
