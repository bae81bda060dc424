package flatten

import (
	"math"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/symdraw"
)

// tracer writes to trace with key 'flatten'
func tracer() tracing.Trace {
	return tracing.Select("flatten")
}

// Tolerance is the maximum distance (in model units) between a curve and
// its outline before rounding to integer coordinates.
var Tolerance float64 = 0.5

// MaxDepth limits the subdivision of a single curve: no curve is split into
// more than 2^MaxDepth lines.
var MaxDepth int = 10

// Quad is a quadratic Bezier curve.
type Quad struct {
	P0, P1, P2 symdraw.Pair
}

// Cubic is a cubic Bezier curve.
type Cubic struct {
	P0, P1, P2, P3 symdraw.Pair
}

// Eval returns the point of the curve at t ∈ [0,1].
func (q Quad) Eval(t float64) symdraw.Pair {
	a := q.P0.Lerp(q.P1, t)
	b := q.P1.Lerp(q.P2, t)
	return a.Lerp(b, t)
}

// Split divides q at t into two quadratic curves.
func (q Quad) Split(t float64) (Quad, Quad) {
	a := q.P0.Lerp(q.P1, t)
	b := q.P1.Lerp(q.P2, t)
	m := a.Lerp(b, t)
	return Quad{q.P0, a, m}, Quad{m, b, q.P2}
}

// IsFlat is a predicate: is the curve's inner control point within tol of
// its chord?
func (q Quad) IsFlat(tol float64) bool {
	return distToSegment(q.P1, q.P0, q.P2) <= tol
}

// Eval returns the point of the curve at t ∈ [0,1].
func (c Cubic) Eval(t float64) symdraw.Pair {
	ab := c.P0.Lerp(c.P1, t)
	bc := c.P1.Lerp(c.P2, t)
	cd := c.P2.Lerp(c.P3, t)
	abc := ab.Lerp(bc, t)
	bcd := bc.Lerp(cd, t)
	return abc.Lerp(bcd, t)
}

// Split divides c at t into two cubic curves.
func (c Cubic) Split(t float64) (Cubic, Cubic) {
	ab := c.P0.Lerp(c.P1, t)
	bc := c.P1.Lerp(c.P2, t)
	cd := c.P2.Lerp(c.P3, t)
	abc := ab.Lerp(bc, t)
	bcd := bc.Lerp(cd, t)
	m := abc.Lerp(bcd, t)
	return Cubic{c.P0, ab, abc, m}, Cubic{m, bcd, cd, c.P3}
}

// IsFlat is a predicate: are both inner control points within tol of the
// curve's chord?
func (c Cubic) IsFlat(tol float64) bool {
	return distToSegment(c.P1, c.P0, c.P3) <= tol && distToSegment(c.P2, c.P0, c.P3) <= tol
}

// Distance of p from the segment a–b.
func distToSegment(p, a, b symdraw.Pair) float64 {
	d := b - a
	len2 := d.X()*d.X() + d.Y()*d.Y()
	if symdraw.Is0(len2) {
		return (p - a).Abs()
	}
	v := p - a
	u := (v.X()*d.X() + v.Y()*d.Y()) / len2
	u = math.Max(0, math.Min(1, u))
	return (p - a.Lerp(b, u)).Abs()
}
