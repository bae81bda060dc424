package shape

import (
	"github.com/npillmayer/symdraw"
)

// Rectangle is an axis-parallel rectangle given by two opposite corners.
type Rectangle struct {
	item
	start, end symdraw.Point
}

var _ Shape = (*Rectangle)(nil)

// NewRectangle creates a rectangle. env may be nil.
func NewRectangle(env *Env, start, end symdraw.Point) *Rectangle {
	return &Rectangle{item: item{env: env}, start: start, end: end}
}

func (r *Rectangle) Kind() Kind {
	return KindRectangle
}

// Corners returns the defining corners.
func (r *Rectangle) Corners() (symdraw.Point, symdraw.Point) {
	return r.start, r.end
}

func (r *Rectangle) Clone() Shape {
	c := *r
	return &c
}

// Compare is part of interface Shape. Rectangles are ordered by their start
// corner, then by their end corner.
func (r *Rectangle) Compare(other Shape) int {
	mustBeOfKind(other, KindRectangle)
	o := other.(*Rectangle)
	return comparePoints([]symdraw.Point{r.start, r.end}, []symdraw.Point{o.start, o.end})
}

func (r *Rectangle) Offset(delta symdraw.Point) {
	r.start = r.start.Add(delta)
	r.end = r.end.Add(delta)
}

func (r *Rectangle) Move(target symdraw.Point) {
	r.Offset(target.Sub(r.start))
}

func (r *Rectangle) MirrorHorizontal(center symdraw.Point) {
	r.start, r.end = r.start.MirroredX(center.X), r.end.MirroredX(center.X)
}

func (r *Rectangle) MirrorVertical(center symdraw.Point) {
	r.start, r.end = r.start.MirroredY(center.Y), r.end.MirroredY(center.Y)
}

func (r *Rectangle) Rotate(center symdraw.Point, ccw bool) {
	r.start = symdraw.RotatePoint(r.start, center, ccw)
	r.end = symdraw.RotatePoint(r.end, center, ccw)
}

func (r *Rectangle) Position() symdraw.Point {
	return r.start
}

// corners returns the closed outline, repeating the first corner.
func (r *Rectangle) corners() []symdraw.Point {
	return []symdraw.Point{
		r.start,
		symdraw.Pt(r.end.X, r.start.Y),
		r.end,
		symdraw.Pt(r.start.X, r.end.Y),
		r.start,
	}
}

func (r *Rectangle) BoundingBox() symdraw.Rect {
	return r.outlineBounds([]symdraw.Point{r.start, r.end})
}

func (r *Rectangle) HitTest(p symdraw.Point) bool {
	return r.HitTestWithin(p, r.selectionDistance(), symdraw.DefaultTransform)
}

// HitTestWithin is part of interface Shape. Filled rectangles are hit
// anywhere inside.
func (r *Rectangle) HitTestWithin(p symdraw.Point, threshold int, tr symdraw.Transform) bool {
	return r.hitOutline(r.corners(), p, threshold, tr, false, r.fill != NoFill)
}

func (r *Rectangle) Inside(rect symdraw.Rect) bool {
	return rect.Intersects(r.BoundingBox())
}

func (r *Rectangle) Render(rd Renderer, opts RenderOptions) {
	r.renderOutline(rd, opts.transform().ApplyAll(r.corners(), opts.Offset), opts)
}

func (r *Rectangle) Plot(p Plotter, offset symdraw.Point, fill bool, tr symdraw.Transform) {
	r.plotOutline(p, tr.ApplyAll(r.corners(), offset), fill)
}

func (r *Rectangle) MsgPanelInfo(units Units) []MsgPanelItem {
	return r.baseMsgPanelInfo(KindRectangle, units, r.BoundingBox())
}
