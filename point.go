package symdraw

import (
	"fmt"
	"math"
)

// === Model Points ==========================================================

// Point is an integer point in model (or device) space.
type Point struct {
	X, Y int
}

// Origin represents the frequently used constant (0,0).
var Origin = Point{}

// Pt is a quick notation for constructing a point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Neg returns -p.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// Pair converts p to a float pair.
func (p Point) Pair() Pair {
	return P(float64(p.X), float64(p.Y))
}

// MirroredX reflects p's x-coordinate about cx.
func (p Point) MirroredX(cx int) Point {
	return Point{X: 2*cx - p.X, Y: p.Y}
}

// MirroredY reflects p's y-coordinate about cy.
func (p Point) MirroredY(cy int) Point {
	return Point{X: p.X, Y: 2*cy - p.Y}
}

// RotatePoint rotates p by 90 degrees around center. Rotation is exact in
// integer arithmetic; four rotations in the same direction return p.
//
// Counter-clockwise refers to model space (y-axis pointing up).
func RotatePoint(p, center Point, ccw bool) Point {
	dx, dy := p.X-center.X, p.Y-center.Y
	if ccw {
		return Point{X: center.X - dy, Y: center.Y + dx}
	}
	return Point{X: center.X + dy, Y: center.Y - dx}
}

// Distance returns the euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(float64(int64(q.X)-int64(p.X)), float64(int64(q.Y)-int64(p.Y)))
}

// SegmentHit is a predicate: is p within distance threshold of the segment
// from a to b? A degenerate segment (a = b) is treated as a single point.
func SegmentHit(p, a, b Point, threshold int) bool {
	if threshold < 0 {
		return false
	}
	dx := float64(int64(b.X) - int64(a.X))
	dy := float64(int64(b.Y) - int64(a.Y))
	px := float64(int64(p.X) - int64(a.X))
	py := float64(int64(p.Y) - int64(a.Y))
	t := float64(threshold)
	len2 := dx*dx + dy*dy
	if len2 == 0 {
		return px*px+py*py <= t*t
	}
	u := (px*dx + py*dy) / len2
	if u < 0 {
		u = 0
	} else if u > 1 {
		u = 1
	}
	ex, ey := px-u*dx, py-u*dy
	return ex*ex+ey*ey <= t*t
}
