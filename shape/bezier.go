package shape

import (
	"github.com/npillmayer/symdraw"
	"github.com/npillmayer/symdraw/flatten"
)

// BezierShape is a curved stroke, defined by Bezier control points.
//
// The shape keeps the tessellated outline of its curve. Setting control
// points marks the outline as dirty; it is refreshed before it is queried.
// Geometric transforms apply to control points and outline alike, keeping
// both in sync without re-tessellation.
type BezierShape struct {
	item
	control []symdraw.Point // Bezier control points
	outline []symdraw.Point // tessellated curve
	dirty   bool            // outline needs refresh
}

var _ Shape = (*BezierShape)(nil)

// NewBezier creates an empty, unfilled Bezier shape with default width.
// env may be nil.
func NewBezier(env *Env) *BezierShape {
	return &BezierShape{item: item{env: env}}
}

// Kind is part of interface Shape.
func (b *BezierShape) Kind() Kind {
	return KindBezier
}

// SetControlPoints replaces the control points. The points are copied.
func (b *BezierShape) SetControlPoints(pts []symdraw.Point) {
	b.control = append(b.control[:0], pts...)
	b.dirty = true
}

// AddControlPoint appends a control point.
func (b *BezierShape) AddControlPoint(p symdraw.Point) {
	b.control = append(b.control, p)
	b.dirty = true
}

// ControlPoints returns a copy of the control points.
func (b *BezierShape) ControlPoints() []symdraw.Point {
	return clonePoints(b.control)
}

// OutlinePoints returns a copy of the (refreshed) outline.
func (b *BezierShape) OutlinePoints() []symdraw.Point {
	b.refresh()
	return clonePoints(b.outline)
}

// CornerCount is the number of outline points.
func (b *BezierShape) CornerCount() int {
	b.refresh()
	return len(b.outline)
}

// refresh re-tessellates the curve if the control points have changed.
func (b *BezierShape) refresh() {
	if !b.dirty {
		return
	}
	b.outline = flatten.Tessellate(b.control)
	b.dirty = false
	tracer().Debugf("bezier: outline rebuilt, %d points", len(b.outline))
}

// Clone is part of interface Shape. Point lists are copied deeply.
func (b *BezierShape) Clone() Shape {
	c := *b
	c.control = clonePoints(b.control)
	c.outline = clonePoints(b.outline)
	return &c
}

// Compare is part of interface Shape. Shapes are ordered by outline point
// count first, then by the points' coordinates.
func (b *BezierShape) Compare(other Shape) int {
	mustBeOfKind(other, KindBezier)
	o := other.(*BezierShape)
	b.refresh()
	o.refresh()
	return comparePoints(b.outline, o.outline)
}

// Offset is part of interface Shape.
func (b *BezierShape) Offset(delta symdraw.Point) {
	for i := range b.control {
		b.control[i] = b.control[i].Add(delta)
	}
	for i := range b.outline {
		b.outline[i] = b.outline[i].Add(delta)
	}
}

// Move is part of interface Shape. The curve's first outline point is moved
// to target.
func (b *BezierShape) Move(target symdraw.Point) {
	b.refresh()
	if len(b.outline) == 0 {
		return
	}
	b.Offset(target.Sub(b.outline[0]))
}

// MirrorHorizontal is part of interface Shape.
func (b *BezierShape) MirrorHorizontal(center symdraw.Point) {
	b.apply(func(p symdraw.Point) symdraw.Point { return p.MirroredX(center.X) })
}

// MirrorVertical is part of interface Shape.
func (b *BezierShape) MirrorVertical(center symdraw.Point) {
	b.apply(func(p symdraw.Point) symdraw.Point { return p.MirroredY(center.Y) })
}

// Rotate is part of interface Shape.
func (b *BezierShape) Rotate(center symdraw.Point, ccw bool) {
	b.apply(func(p symdraw.Point) symdraw.Point { return symdraw.RotatePoint(p, center, ccw) })
}

func (b *BezierShape) apply(f func(symdraw.Point) symdraw.Point) {
	for i, p := range b.outline {
		b.outline[i] = f(p)
	}
	for i, p := range b.control {
		b.control[i] = f(p)
	}
}

// Position is part of interface Shape. It returns the first outline point,
// or the origin for an empty curve.
func (b *BezierShape) Position() symdraw.Point {
	b.refresh()
	if len(b.outline) == 0 {
		return symdraw.Origin
	}
	return b.outline[0]
}

// BoundingBox is part of interface Shape.
func (b *BezierShape) BoundingBox() symdraw.Rect {
	b.refresh()
	return b.outlineBounds(b.outline)
}

// HitTest is part of interface Shape.
func (b *BezierShape) HitTest(p symdraw.Point) bool {
	return b.HitTestWithin(p, b.selectionDistance(), symdraw.DefaultTransform)
}

// HitTestWithin is part of interface Shape. A negative threshold means
// half the pen size.
func (b *BezierShape) HitTestWithin(p symdraw.Point, threshold int, tr symdraw.Transform) bool {
	b.refresh()
	return b.hitOutline(b.outline, p, threshold, tr, false, false)
}

// Inside is part of interface Shape.
func (b *BezierShape) Inside(r symdraw.Rect) bool {
	b.refresh()
	return anyInside(b.outline, r)
}

// Render is part of interface Shape.
func (b *BezierShape) Render(r Renderer, opts RenderOptions) {
	b.refresh()
	if len(b.outline) == 0 {
		return
	}
	pts := opts.transform().ApplyAll(b.outline, opts.Offset)
	b.renderOutline(r, pts, opts)
}

// Plot is part of interface Shape.
func (b *BezierShape) Plot(p Plotter, offset symdraw.Point, fill bool, tr symdraw.Transform) {
	b.refresh()
	if len(b.outline) == 0 {
		return
	}
	b.plotOutline(p, tr.ApplyAll(b.outline, offset), fill)
}

// MsgPanelInfo is part of interface Shape.
func (b *BezierShape) MsgPanelInfo(units Units) []MsgPanelItem {
	return b.baseMsgPanelInfo(KindBezier, units, b.BoundingBox())
}

func clonePoints(pts []symdraw.Point) []symdraw.Point {
	if pts == nil {
		return nil
	}
	c := make([]symdraw.Point, len(pts))
	copy(c, pts)
	return c
}
