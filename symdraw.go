/*
Package symdraw implements the geometry shared by the drawable items of
schematic symbols: integer model points, float pairs, affine matrices,
rectangles, symbol orientation transforms and point-to-segment hit tests.

Model coordinates are integers (one unit is one mil) with the y-axis pointing
upwards. Display coordinates have the y-axis pointing downwards; the two are
bridged by DefaultTransform and Rect.RevertYAxis.

Sub-packages build on this: flatten tessellates Bezier curves, polygon holds
polylines, shape implements the draw items, symbol collects them and render
provides host-side renderers.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package symdraw

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'symdraw'
func tracer() tracing.Trace {
	return tracing.Select("symdraw")
}

// === Numeric Data Type =====================================================

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// === Pair Data Type ========================================================

// Pair is a float 2D-point, used wherever model points have to be
// interpolated (e.g., during curve subdivision).
type Pair complex128

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// C2P returns a Pair from a complex number.
func C2P(c complex128) Pair {
	if cmplx.IsNaN(c) || cmplx.IsInf(c) {
		tracer().Errorf("created pair for complex.NaN")
		return P(0, 0)
	}
	return P(real(c), imag(c))
}

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// C returns a Pair as a complex number.
func (p Pair) C() complex128 {
	return complex128(p)
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p)
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p)
}

// Zap rounds x-part and y-part to Epsilon.
func (p Pair) Zap() Pair {
	return P(Zap(p.X()), Zap(p.Y()))
}

// Equal compares two pairs.
func (p Pair) Equal(p2 Pair) bool {
	return Is0(p.X()-p2.X()) && Is0(p.Y()-p2.Y())
}

// Lerp interpolates linearly between p and p2 (t = 0 yields p).
func (p Pair) Lerp(p2 Pair, t float64) Pair {
	return p + Pair(complex(t, 0))*(p2-p)
}

// Mid returns the midpoint between p and p2.
func (p Pair) Mid(p2 Pair) Pair {
	return (p + p2) / 2
}

// Abs is the distance of p from the origin.
func (p Pair) Abs() float64 {
	return cmplx.Abs(p.C())
}

// Round returns the nearest integer model point.
func (p Pair) Round() Point {
	return Point{X: int(math.Round(p.X())), Y: int(math.Round(p.Y()))}
}
