package flatten

import (
	"github.com/npillmayer/symdraw"
)

// Tessellate finds the outline polyline for a list of Bezier control points.
// The outline starts at the first and ends at the last control point; it is
// empty iff ctrl is empty. Consecutive duplicate points are dropped.
func Tessellate(ctrl []symdraw.Point) []symdraw.Point {
	if len(ctrl) == 0 {
		return nil
	}
	pl := &polyline{points: make([]symdraw.Point, 0, 4*len(ctrl))}
	pl.add(ctrl[0].Pair())
	i := 0
	for ; i+3 < len(ctrl); i += 3 {
		c := Cubic{ctrl[i].Pair(), ctrl[i+1].Pair(), ctrl[i+2].Pair(), ctrl[i+3].Pair()}
		pl.cubic(c, 0)
	}
	switch len(ctrl) - 1 - i {
	case 1:
		pl.add(ctrl[i+1].Pair())
	case 2:
		q := Quad{ctrl[i].Pair(), ctrl[i+1].Pair(), ctrl[i+2].Pair()}
		pl.quad(q, 0)
	}
	tracer().Debugf("tessellated %d control points into %d outline points",
		len(ctrl), len(pl.points))
	return pl.points
}

// polyline collects outline points. Curve pieces contribute their end
// points only; the start point is expected to be present already.
type polyline struct {
	points []symdraw.Point
}

func (pl *polyline) add(p symdraw.Pair) {
	pt := p.Round()
	if n := len(pl.points); n > 0 && pl.points[n-1] == pt {
		return
	}
	pl.points = append(pl.points, pt)
}

func (pl *polyline) cubic(c Cubic, depth int) {
	if depth >= MaxDepth || c.IsFlat(Tolerance) {
		pl.add(c.P3)
		return
	}
	l, r := c.Split(0.5)
	pl.cubic(l, depth+1)
	pl.cubic(r, depth+1)
}

func (pl *polyline) quad(q Quad, depth int) {
	if depth >= MaxDepth || q.IsFlat(Tolerance) {
		pl.add(q.P2)
		return
	}
	l, r := q.Split(0.5)
	pl.quad(l, depth+1)
	pl.quad(r, depth+1)
}
