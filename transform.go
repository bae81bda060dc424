package symdraw

import "fmt"

// Transform is the orientation matrix of a symbol instance. It maps model
// points to display (or plot) points:
//
//	x' = X1*x + Y1*y
//	y' = X2*x + Y2*y
//
// Only rotations by multiples of 90 degrees and mirrors are expected.
type Transform struct {
	X1, Y1, X2, Y2 int
}

// IdentityTransform maps every point onto itself.
var IdentityTransform = Transform{X1: 1, Y1: 0, X2: 0, Y2: 1}

// DefaultTransform flips the y-axis, mapping model space (y up) onto
// display space (y down).
var DefaultTransform = Transform{X1: 1, Y1: 0, X2: 0, Y2: -1}

func (t Transform) String() string {
	return fmt.Sprintf("[%d %d|%d %d]", t.X1, t.Y1, t.X2, t.Y2)
}

// Apply transforms a model point.
func (t Transform) Apply(p Point) Point {
	return Point{
		X: t.X1*p.X + t.Y1*p.Y,
		Y: t.X2*p.X + t.Y2*p.Y,
	}
}

// ApplyAll transforms pts and translates the results by offset. The result
// is written to a fresh slice.
func (t Transform) ApplyAll(pts []Point, offset Point) []Point {
	out := make([]Point, len(pts))
	for i, p := range pts {
		out[i] = t.Apply(p).Add(offset)
	}
	return out
}

// Then returns the transform applying t first, then u.
func (t Transform) Then(u Transform) Transform {
	return Transform{
		X1: u.X1*t.X1 + u.Y1*t.X2,
		Y1: u.X1*t.Y1 + u.Y1*t.Y2,
		X2: u.X2*t.X1 + u.Y2*t.X2,
		Y2: u.X2*t.Y1 + u.Y2*t.Y2,
	}
}
