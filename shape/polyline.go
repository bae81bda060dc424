package shape

import (
	"github.com/npillmayer/symdraw"
)

// Polyline is a chain of straight lines. Filled polylines are closed
// implicitly.
type Polyline struct {
	item
	points []symdraw.Point
}

var _ Shape = (*Polyline)(nil)

// NewPolyline creates an empty polyline. env may be nil.
func NewPolyline(env *Env, pts ...symdraw.Point) *Polyline {
	return &Polyline{item: item{env: env}, points: clonePoints(pts)}
}

func (pl *Polyline) Kind() Kind {
	return KindPolyline
}

// AddPoint appends a corner.
func (pl *Polyline) AddPoint(p symdraw.Point) {
	pl.points = append(pl.points, p)
}

// Points returns a copy of the corners.
func (pl *Polyline) Points() []symdraw.Point {
	return clonePoints(pl.points)
}

func (pl *Polyline) Clone() Shape {
	c := *pl
	c.points = clonePoints(pl.points)
	return &c
}

func (pl *Polyline) Compare(other Shape) int {
	mustBeOfKind(other, KindPolyline)
	return comparePoints(pl.points, other.(*Polyline).points)
}

func (pl *Polyline) Offset(delta symdraw.Point) {
	for i := range pl.points {
		pl.points[i] = pl.points[i].Add(delta)
	}
}

func (pl *Polyline) Move(target symdraw.Point) {
	if len(pl.points) == 0 {
		return
	}
	pl.Offset(target.Sub(pl.points[0]))
}

func (pl *Polyline) MirrorHorizontal(center symdraw.Point) {
	for i, p := range pl.points {
		pl.points[i] = p.MirroredX(center.X)
	}
}

func (pl *Polyline) MirrorVertical(center symdraw.Point) {
	for i, p := range pl.points {
		pl.points[i] = p.MirroredY(center.Y)
	}
}

func (pl *Polyline) Rotate(center symdraw.Point, ccw bool) {
	for i, p := range pl.points {
		pl.points[i] = symdraw.RotatePoint(p, center, ccw)
	}
}

func (pl *Polyline) Position() symdraw.Point {
	if len(pl.points) == 0 {
		return symdraw.Origin
	}
	return pl.points[0]
}

func (pl *Polyline) BoundingBox() symdraw.Rect {
	return pl.outlineBounds(pl.points)
}

func (pl *Polyline) HitTest(p symdraw.Point) bool {
	return pl.HitTestWithin(p, pl.selectionDistance(), symdraw.DefaultTransform)
}

// HitTestWithin is part of interface Shape. Filled polylines are hit
// anywhere inside their area.
func (pl *Polyline) HitTestWithin(p symdraw.Point, threshold int, tr symdraw.Transform) bool {
	filled := pl.fill != NoFill
	return pl.hitOutline(pl.points, p, threshold, tr, filled, filled)
}

func (pl *Polyline) Inside(r symdraw.Rect) bool {
	return anyInside(pl.points, r)
}

func (pl *Polyline) Render(r Renderer, opts RenderOptions) {
	if len(pl.points) == 0 {
		return
	}
	pl.renderOutline(r, opts.transform().ApplyAll(pl.points, opts.Offset), opts)
}

func (pl *Polyline) Plot(p Plotter, offset symdraw.Point, fill bool, tr symdraw.Transform) {
	if len(pl.points) == 0 {
		return
	}
	pl.plotOutline(p, tr.ApplyAll(pl.points, offset), fill)
}

func (pl *Polyline) MsgPanelInfo(units Units) []MsgPanelItem {
	return pl.baseMsgPanelInfo(KindPolyline, units, pl.BoundingBox())
}
