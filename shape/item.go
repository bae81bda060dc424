package shape

import (
	"github.com/npillmayer/symdraw"
	"github.com/npillmayer/symdraw/polygon"
)

// item holds the state common to all kinds.
type item struct {
	width    int
	fill     FillMode
	selected bool
	moved    bool
	env      *Env
}

// Width returns the stroke width; 0 means default line thickness.
func (it *item) Width() int { return it.width }

// SetWidth is a property setter.
func (it *item) SetWidth(w int) { it.width = w }

// Fill returns the fill mode.
func (it *item) Fill() FillMode { return it.fill }

// SetFill is a property setter.
func (it *item) SetFill(f FillMode) { it.fill = f }

func (it *item) IsSelected() bool     { return it.selected }
func (it *item) SetSelected(sel bool) { it.selected = sel }
func (it *item) IsMoved() bool        { return it.moved }
func (it *item) SetMoved(moved bool)  { it.moved = moved }

// Env returns the item's environment. nil means package defaults.
func (it *item) Env() *Env { return it.env }

// SetEnv is a property setter. A nil environment resets to the defaults.
func (it *item) SetEnv(env *Env) { it.env = env }

// PenSize returns the pen width to draw with. Width 0 resolves to the
// host's default line thickness, negative widths to -1 (minimal pen).
func (it *item) PenSize() int {
	if it.width > 0 {
		return it.width
	}
	if it.width == 0 {
		return it.env.lineThickness()
	}
	return -1
}

// selectionDistance is the tolerance of the argument-less hit test.
func (it *item) selectionDistance() int {
	return max(it.PenSize()/2, MinimumSelectionDistance)
}

// outlineBounds computes the bounding box of model points as described for
// Shape.BoundingBox.
func (it *item) outlineBounds(pts []symdraw.Point) symdraw.Rect {
	if len(pts) == 0 {
		return symdraw.Rect{}
	}
	r := symdraw.BoundsOf(pts).Inflate((it.PenSize() + 1) / 2)
	return r.RevertYAxis()
}

// hitOutline tests p against the polyline pts after transforming it by tr.
// With area set, p also hits anywhere inside the closed outline.
func (it *item) hitOutline(pts []symdraw.Point, p symdraw.Point, threshold int,
	tr symdraw.Transform, closed, area bool) bool {
	if threshold < 0 {
		threshold = it.PenSize() / 2
	}
	pg := polygon.FromPoints(tr.ApplyAll(pts, symdraw.Origin))
	if closed && pg.N() > 2 {
		pg.Cycle()
	}
	if pg.HitTest(p, threshold) {
		return true
	}
	return area && pg.Contains(p)
}

// anyInside is a predicate: is one of the model points within display
// rectangle r?
func anyInside(pts []symdraw.Point, r symdraw.Rect) bool {
	for _, p := range pts {
		if r.Contains(symdraw.Pt(p.X, -p.Y)) {
			return true
		}
	}
	return false
}

// renderOutline draws device-space points pts, resolving color and fill.
func (it *item) renderOutline(r Renderer, pts []symdraw.Point, opts RenderOptions) {
	if r == nil {
		panic("cannot render without renderer")
	}
	env := it.env
	col := env.layerColor(LayerDevice)
	if opts.Color == nil {
		if it.selected {
			col = env.selectionColor()
		}
	} else {
		col = opts.Color
	}
	fill := it.fill
	if opts.OutlineOnly || opts.Color != nil {
		fill = NoFill
	}
	pen := it.PenSize()
	switch fill {
	case FilledWithBackground:
		bg := env.layerColor(LayerDeviceBackground)
		stroke := bg
		if it.moved {
			stroke = col
		}
		r.DrawPoly(opts.Clip, pts, true, pen, stroke, bg)
	case FilledShape:
		r.DrawPoly(opts.Clip, pts, true, pen, col, col)
	default:
		r.DrawPoly(opts.Clip, pts, false, pen, col, col)
	}
}

// plotOutline emits plot-space points pts. With fill set, items filled with
// the background color get a background pass first.
func (it *item) plotOutline(p Plotter, pts []symdraw.Point, fill bool) {
	if p == nil {
		panic("cannot plot without plotter")
	}
	env := it.env
	if fill && it.fill == FilledWithBackground {
		p.SetColor(env.layerColor(LayerDeviceBackground))
		p.PlotPoly(pts, FilledWithBackground, 0)
	}
	mode := it.fill
	if mode == FilledWithBackground {
		mode = NoFill // already filled
	}
	p.SetColor(env.layerColor(LayerDevice))
	p.PlotPoly(pts, mode, it.PenSize())
}

// baseMsgPanelInfo lists the entries common to all kinds.
func (it *item) baseMsgPanelInfo(k Kind, units Units, bbox symdraw.Rect) []MsgPanelItem {
	return []MsgPanelItem{
		{Label: "Type", Text: k.String(), Color: msgCyan},
		{Label: "Line Width", Text: FormatValue(units, it.width, true), Color: msgBlue},
		{Label: "Bounding Box", Text: formatRect(bbox), Color: msgBrown},
	}
}
