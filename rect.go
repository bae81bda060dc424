package symdraw

import "fmt"

// Rect is an axis-aligned rectangle with inclusive corners Min and Max.
// The zero value is the empty rectangle.
type Rect struct {
	Min, Max Point
}

// RectFromPoints returns the normalized rectangle spanned by p and q.
func RectFromPoints(p, q Point) Rect {
	return Rect{
		Min: Point{X: min(p.X, q.X), Y: min(p.Y, q.Y)},
		Max: Point{X: max(p.X, q.X), Y: max(p.Y, q.Y)},
	}
}

// BoundsOf returns the tight bounds of a list of points, or the empty rect.
func BoundsOf(pts []Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	r := Rect{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		r.Min.X = min(r.Min.X, p.X)
		r.Min.Y = min(r.Min.Y, p.Y)
		r.Max.X = max(r.Max.X, p.X)
		r.Max.Y = max(r.Max.Y, p.Y)
	}
	return r
}

func (r Rect) String() string {
	return fmt.Sprintf("[%v-%v]", r.Min, r.Max)
}

// IsEmpty is a predicate: is r the zero rectangle?
func (r Rect) IsEmpty() bool {
	return r == Rect{}
}

// Width of r.
func (r Rect) Width() int {
	return r.Max.X - r.Min.X
}

// Height of r.
func (r Rect) Height() int {
	return r.Max.Y - r.Min.Y
}

// Inflate grows r by d on all sides.
func (r Rect) Inflate(d int) Rect {
	return Rect{
		Min: Point{X: r.Min.X - d, Y: r.Min.Y - d},
		Max: Point{X: r.Max.X + d, Y: r.Max.Y + d},
	}
}

// RevertYAxis mirrors r at the x-axis, converting between model space
// (y up) and display space (y down). The result is normalized.
func (r Rect) RevertYAxis() Rect {
	return Rect{
		Min: Point{X: r.Min.X, Y: -r.Max.Y},
		Max: Point{X: r.Max.X, Y: -r.Min.Y},
	}
}

// Contains is a predicate: is p inside r (borders included)?
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Intersects is a predicate: do r and o overlap (borders included)?
func (r Rect) Intersects(o Rect) bool {
	return r.Min.X <= o.Max.X && o.Min.X <= r.Max.X &&
		r.Min.Y <= o.Max.Y && o.Min.Y <= r.Max.Y
}

// Union returns the smallest rectangle containing r and o. Empty rectangles
// do not contribute.
func (r Rect) Union(o Rect) Rect {
	if r.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return r
	}
	return Rect{
		Min: Point{X: min(r.Min.X, o.Min.X), Y: min(r.Min.Y, o.Min.Y)},
		Max: Point{X: max(r.Max.X, o.Max.X), Y: max(r.Max.Y, o.Max.Y)},
	}
}
