/*
Package polygon deals with integer polylines and polygons, the outlines of
the drawable items of schematic symbols.

A polygon is built from knots, using a builder pattern:

	pg := NullPolygon().Knot(symdraw.Pt(0, 0)).Knot(symdraw.Pt(1, 3)).Knot(symdraw.Pt(3, 0)).Cycle()

A polygon which is ended with End() instead of Cycle() is an open polyline.
Area operations (Contains, Clip) always treat a polygon as closed.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"strings"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/symdraw"
)

// L traces to the polygon tracer.
func L() tracing.Trace {
	return tracing.Select("polygon")
}

// Polygon is a sequence of integer knots, either open or cyclic.
type Polygon struct {
	knots []symdraw.Point
	cycle bool
}

// NullPolygon creates an empty polygon, to be extended by subsequent builder
// calls.
func NullPolygon() *Polygon {
	return &Polygon{}
}

// FromPoints creates an open polygon from a list of knots. The knots are
// copied.
func FromPoints(pts []symdraw.Point) *Polygon {
	pg := &Polygon{knots: make([]symdraw.Point, len(pts))}
	copy(pg.knots, pts)
	return pg
}

// Box creates a closed rectangular polygon with corners p and q.
func Box(p, q symdraw.Point) *Polygon {
	r := symdraw.RectFromPoints(p, q)
	return NullPolygon().
		Knot(r.Min).
		Knot(symdraw.Pt(r.Max.X, r.Min.Y)).
		Knot(r.Max).
		Knot(symdraw.Pt(r.Min.X, r.Max.Y)).
		Cycle()
}

// Knot appends a knot. Part of builder functionality.
func (pg *Polygon) Knot(p symdraw.Point) *Polygon {
	pg.knots = append(pg.knots, p)
	return pg
}

// End an open polygon. Part of builder functionality.
func (pg *Polygon) End() *Polygon {
	return pg
}

// Cycle closes a polygon. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	if pg.N() == 0 {
		panic("cannot close empty polygon")
	}
	pg.cycle = true
	return pg
}

// IsCycle is a predicate: is this polygon closed?
func (pg *Polygon) IsCycle() bool {
	return pg.cycle
}

// N returns the knot count.
func (pg *Polygon) N() int {
	return len(pg.knots)
}

// Pt returns the knot at position (i mod N).
func (pg *Polygon) Pt(i int) symdraw.Point {
	i %= pg.N()
	if i < 0 {
		i += pg.N()
	}
	return pg.knots[i]
}

// Points returns a copy of the knots.
func (pg *Polygon) Points() []symdraw.Point {
	pts := make([]symdraw.Point, len(pg.knots))
	copy(pts, pg.knots)
	return pts
}

// BoundingBox returns the tight bounds of the knots.
func (pg *Polygon) BoundingBox() symdraw.Rect {
	return symdraw.BoundsOf(pg.knots)
}

// Transformed returns a new polygon with all knots transformed by tr and
// then shifted by offset.
func (pg *Polygon) Transformed(tr symdraw.Transform, offset symdraw.Point) *Polygon {
	return &Polygon{knots: tr.ApplyAll(pg.knots, offset), cycle: pg.cycle}
}

// HitTest is a predicate: is p within distance threshold of one of the
// polygon's edges? For cyclic polygons the closing edge counts. Polygons with
// less than two knots have no edges.
func (pg *Polygon) HitTest(p symdraw.Point, threshold int) bool {
	n := pg.N()
	for i := 1; i < n; i++ {
		if symdraw.SegmentHit(p, pg.knots[i-1], pg.knots[i], threshold) {
			return true
		}
	}
	if pg.cycle && n > 2 {
		return symdraw.SegmentHit(p, pg.knots[n-1], pg.knots[0], threshold)
	}
	return false
}

// Contains is a predicate: is p inside the area enclosed by the polygon?
// Open polygons are closed implicitly.
func (pg *Polygon) Contains(p symdraw.Point) bool {
	if pg.N() < 3 {
		return false
	}
	return pg.contour().Contains(clipPoint(p))
}

// Clip intersects the (implicitly closed) polygon with rectangle r. The
// result may consist of several closed polygons, or none if the polygon lies
// outside of r.
func (pg *Polygon) Clip(r symdraw.Rect) []*Polygon {
	if pg.N() < 3 {
		return nil
	}
	subject := polyclip.Polygon{pg.contour()}
	clipping := polyclip.Polygon{Box(r.Min, r.Max).contour()}
	result := subject.Construct(polyclip.INTERSECTION, clipping)
	L().Debugf("clipping %d knots at %v yields %d contours", pg.N(), r, len(result))
	clipped := make([]*Polygon, 0, len(result))
	for _, c := range result {
		if len(c) == 0 {
			continue
		}
		cp := NullPolygon()
		for _, q := range c {
			cp.Knot(symdraw.P(q.X, q.Y).Round())
		}
		clipped = append(clipped, cp.Cycle())
	}
	return clipped
}

func (pg *Polygon) contour() polyclip.Contour {
	c := make(polyclip.Contour, 0, pg.N())
	for _, p := range pg.knots {
		c.Add(clipPoint(p))
	}
	return c
}

func clipPoint(p symdraw.Point) polyclip.Point {
	return polyclip.Point{X: float64(p.X), Y: float64(p.Y)}
}

// AsString returns a polygon as a (debugging) string, e.g.
//
//	(0,0) -- (1,3) -- (3,0) -- cycle
func AsString(pg *Polygon) string {
	var b strings.Builder
	for i, p := range pg.knots {
		if i > 0 {
			b.WriteString(" -- ")
		}
		b.WriteString(p.String())
	}
	if pg.cycle {
		b.WriteString(" -- cycle")
	}
	return b.String()
}
