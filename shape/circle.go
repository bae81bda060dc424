package shape

import (
	"cmp"
	"math"

	"github.com/npillmayer/symdraw"
)

// CircleSegments is the number of corners used to draw and plot circles.
var CircleSegments int = 64

// Circle is a circle given by center and radius.
type Circle struct {
	item
	center symdraw.Point
	radius int
}

var _ Shape = (*Circle)(nil)

// NewCircle creates a circle. env may be nil.
func NewCircle(env *Env, center symdraw.Point, radius int) *Circle {
	return &Circle{item: item{env: env}, center: center, radius: radius}
}

func (c *Circle) Kind() Kind {
	return KindCircle
}

// Center returns the circle's center.
func (c *Circle) Center() symdraw.Point { return c.center }

// Radius returns the circle's radius.
func (c *Circle) Radius() int { return c.radius }

// SetRadius is a property setter.
func (c *Circle) SetRadius(r int) { c.radius = r }

func (c *Circle) Clone() Shape {
	cc := *c
	return &cc
}

// Compare is part of interface Shape. Circles are ordered by center, then
// by radius.
func (c *Circle) Compare(other Shape) int {
	mustBeOfKind(other, KindCircle)
	o := other.(*Circle)
	if c.center.X != o.center.X {
		return cmp.Compare(c.center.X, o.center.X)
	}
	if c.center.Y != o.center.Y {
		return cmp.Compare(c.center.Y, o.center.Y)
	}
	return cmp.Compare(c.radius, o.radius)
}

func (c *Circle) Offset(delta symdraw.Point) { c.center = c.center.Add(delta) }
func (c *Circle) Move(target symdraw.Point)  { c.center = target }
func (c *Circle) Position() symdraw.Point    { return c.center }

func (c *Circle) MirrorHorizontal(center symdraw.Point) {
	c.center = c.center.MirroredX(center.X)
}

func (c *Circle) MirrorVertical(center symdraw.Point) {
	c.center = c.center.MirroredY(center.Y)
}

func (c *Circle) Rotate(center symdraw.Point, ccw bool) {
	c.center = symdraw.RotatePoint(c.center, center, ccw)
}

func (c *Circle) BoundingBox() symdraw.Rect {
	r := symdraw.Rect{Min: c.center, Max: c.center}.Inflate(c.radius + (c.PenSize()+1)/2)
	return r.RevertYAxis()
}

func (c *Circle) HitTest(p symdraw.Point) bool {
	return c.HitTestWithin(p, c.selectionDistance(), symdraw.DefaultTransform)
}

// HitTestWithin is part of interface Shape. The circle is hit near its
// perimeter; filled circles are hit anywhere inside.
func (c *Circle) HitTestWithin(p symdraw.Point, threshold int, tr symdraw.Transform) bool {
	if threshold < 0 {
		threshold = c.PenSize() / 2
	}
	dist := p.Distance(tr.Apply(c.center))
	if math.Abs(dist-float64(c.radius)) <= float64(threshold) {
		return true
	}
	return c.fill != NoFill && dist <= float64(c.radius)
}

// Inside is part of interface Shape.
func (c *Circle) Inside(r symdraw.Rect) bool {
	return r.Intersects(c.BoundingBox())
}

// corners approximates the circle by a closed polygon, repeating the first
// corner at the end.
func (c *Circle) corners() []symdraw.Point {
	n := max(CircleSegments, 4)
	pts := make([]symdraw.Point, n+1)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		off := symdraw.P(math.Cos(theta), math.Sin(theta)) * symdraw.Pair(complex(float64(c.radius), 0))
		pts[i] = (c.center.Pair() + off).Round()
	}
	pts[n] = pts[0]
	return pts
}

func (c *Circle) Render(r Renderer, opts RenderOptions) {
	c.renderOutline(r, opts.transform().ApplyAll(c.corners(), opts.Offset), opts)
}

func (c *Circle) Plot(p Plotter, offset symdraw.Point, fill bool, tr symdraw.Transform) {
	c.plotOutline(p, tr.ApplyAll(c.corners(), offset), fill)
}

func (c *Circle) MsgPanelInfo(units Units) []MsgPanelItem {
	info := c.baseMsgPanelInfo(KindCircle, units, c.BoundingBox())
	return append(info, MsgPanelItem{
		Label: "Radius",
		Text:  FormatValue(units, c.radius, true),
		Color: msgBlue,
	})
}
