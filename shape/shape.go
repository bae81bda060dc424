/*
Package shape implements the drawable items of schematic symbols: Bezier
curves, polylines, circles and rectangles.

Every item kind implements interface Shape. Items own their geometry
exclusively; they are transformed in place by the symbol editor and answer
geometric queries (bounding box, hit test) in model space. Drawing and
plotting are delegated to host-provided collaborators (Renderer, Plotter),
which receive polygons in device space.

The central kind is BezierShape. It stores the control points of a curve and
keeps a tessellated outline (see package flatten) which serves all queries.
The outline is refreshed lazily whenever the control points have changed.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package shape

import (
	"cmp"
	"fmt"
	"image/color"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/symdraw"
)

// tracer writes to trace with key 'shape'
func tracer() tracing.Trace {
	return tracing.Select("shape")
}

// Kind enumerates the item kinds.
type Kind int

// Item kinds, in the order they are sorted within a symbol.
const (
	KindPolyline Kind = iota
	KindRectangle
	KindCircle
	KindBezier
)

func (k Kind) String() string {
	switch k {
	case KindPolyline:
		return "Polyline"
	case KindRectangle:
		return "Rectangle"
	case KindCircle:
		return "Circle"
	case KindBezier:
		return "Bezier"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Shape is the capability set of a drawable symbol item.
type Shape interface {
	Kind() Kind
	Clone() Shape
	// Compare establishes a total order among items of the same kind.
	// It panics if other is of a different kind.
	Compare(other Shape) int

	// BoundingBox returns the item's bounds in display orientation
	// (y-axis inverted), inflated by half the pen size.
	BoundingBox() symdraw.Rect
	// HitTest is a predicate: is model point p near the item's outline?
	HitTest(p symdraw.Point) bool
	// HitTestWithin tests p against the item transformed by tr.
	HitTestWithin(p symdraw.Point, threshold int, tr symdraw.Transform) bool
	// Inside is a predicate: does the item touch display rectangle r?
	Inside(r symdraw.Rect) bool

	Offset(delta symdraw.Point)
	Move(target symdraw.Point)
	MirrorHorizontal(center symdraw.Point)
	MirrorVertical(center symdraw.Point)
	Rotate(center symdraw.Point, ccw bool)
	Position() symdraw.Point

	Width() int
	SetWidth(w int)
	Fill() FillMode
	SetFill(f FillMode)
	PenSize() int

	Render(r Renderer, opts RenderOptions)
	Plot(p Plotter, offset symdraw.Point, fill bool, tr symdraw.Transform)
	MsgPanelInfo(units Units) []MsgPanelItem

	IsSelected() bool
	SetSelected(sel bool)
	IsMoved() bool
	SetMoved(moved bool)
	Env() *Env
	SetEnv(env *Env)
}

// Compare orders two items of arbitrary kinds: first by kind, then by the
// kind's own order.
func Compare(a, b Shape) int {
	if a.Kind() != b.Kind() {
		return cmp.Compare(a.Kind(), b.Kind())
	}
	return a.Compare(b)
}

// === Host interfaces =======================================================

// Renderer draws polygons on a display. Points are in device space. An open
// polyline is drawn if filled is false; filled polygons are closed
// implicitly. A nil clip means no clipping.
type Renderer interface {
	DrawPoly(clip *symdraw.Rect, pts []symdraw.Point, filled bool, width int, stroke, fill color.Color)
}

// Plotter emits vector output. Points are in plot space.
type Plotter interface {
	SetColor(c color.Color)
	PlotPoly(pts []symdraw.Point, fill FillMode, width int)
}

// RenderOptions configure drawing an item.
type RenderOptions struct {
	Offset symdraw.Point
	// Color overrides the item color; nil means unspecified. An explicit
	// color suppresses filling.
	Color color.Color
	// OutlineOnly suppresses filling.
	OutlineOnly bool
	// Transform maps model to device space; the zero value means
	// symdraw.DefaultTransform.
	Transform symdraw.Transform
	Clip      *symdraw.Rect
}

func (opts RenderOptions) transform() symdraw.Transform {
	if opts.Transform == (symdraw.Transform{}) {
		return symdraw.DefaultTransform
	}
	return opts.Transform
}

// mustBeOfKind asserts the precondition of Compare.
func mustBeOfKind(other Shape, k Kind) {
	if other == nil || other.Kind() != k {
		panic(fmt.Sprintf("cannot compare %v item with %v", k, other))
	}
}

// comparePoints orders point lists by length, then lexicographically by x
// and y of each point.
func comparePoints(a, b []symdraw.Point) int {
	if len(a) != len(b) {
		return cmp.Compare(len(a), len(b))
	}
	for i := range a {
		if a[i].X != b[i].X {
			return cmp.Compare(a[i].X, b[i].X)
		}
		if a[i].Y != b[i].Y {
			return cmp.Compare(a[i].Y, b[i].Y)
		}
	}
	return 0
}
