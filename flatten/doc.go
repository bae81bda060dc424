// Package flatten converts Bezier curves into polylines.
/*

Schematic symbols store curved strokes by their Bezier control points. For
drawing, plotting and hit testing the curve is replaced by a polyline (its
outline), which is found by adaptive subdivision:

A piece of the curve is split in halves (de Casteljau) until all of its inner
control points lie within Tolerance of the chord connecting its end points.
As the curve is contained in the convex hull of its control points, every
point of a flat piece lies within Tolerance of that chord. The chord end
points are rounded to integer model coordinates.

Usage

Clients hand over the control points of a curve:

   outline := flatten.Tessellate([]symdraw.Point{
      symdraw.Pt(0, 0), symdraw.Pt(0, 10), symdraw.Pt(10, 10), symdraw.Pt(10, 0),
   })

Three control points denote a quadratic curve, four a cubic one. Longer lists
are read as a chain of cubic curves sharing their end points:

   p0 p1 p2 p3 p4 p5 p6 ...
   \---------/
            \---------/

If the chain does not come out even, one trailing point is connected by a
straight line and two trailing points form a quadratic curve. One control point
yields a single-point outline, two yield a straight line.

The result depends on nothing but the control points and the package
tunables, so repeated tessellation of the same input is idempotent.
*/
package flatten

import (
	"fmt"

	"github.com/npillmayer/symdraw"
)

// AsString returns a control point list as a (debugging) string in a
// MetaPost-like notation, e.g.
//
//	(0,0) .. controls (0,10) and (10,10) .. (10,0)
func AsString(ctrl []symdraw.Point) string {
	var s string
	i := 0
	for ; i+3 < len(ctrl); i += 3 {
		if i == 0 {
			s += ctrl[0].String()
		}
		s += fmt.Sprintf(" .. controls %s and %s .. %s", ctrl[i+1], ctrl[i+2], ctrl[i+3])
	}
	if i == 0 && len(ctrl) > 0 {
		s += ctrl[0].String()
	}
	switch len(ctrl) - 1 - i {
	case 1:
		s += fmt.Sprintf(" -- %s", ctrl[i+1])
	case 2:
		s += fmt.Sprintf(" .. controls %s .. %s", ctrl[i+1], ctrl[i+2])
	}
	return s
}
