package render

import (
	"fmt"
	"image/color"

	"github.com/npillmayer/symdraw"
	"github.com/npillmayer/symdraw/shape"
)

// Op tells which interface a recorded call came through.
type Op int

// Recorded operations.
const (
	OpDraw Op = iota // shape.Renderer.DrawPoly
	OpPlot           // shape.Plotter.PlotPoly
)

func (op Op) String() string {
	if op == OpPlot {
		return "plot"
	}
	return "draw"
}

// Call is a recorded drawing call. Stroke is the plotter's current color for
// plot calls.
type Call struct {
	Op     Op
	Clip   *symdraw.Rect
	Points []symdraw.Point
	Filled bool
	Fill   shape.FillMode
	Width  int
	Stroke color.Color
	FillC  color.Color
}

func (c Call) String() string {
	if c.Op == OpPlot {
		return fmt.Sprintf("plot %d points, fill=%s, width=%d", len(c.Points), c.Fill.Token(), c.Width)
	}
	return fmt.Sprintf("draw %d points, filled=%v, width=%d", len(c.Points), c.Filled, c.Width)
}

// Recorder keeps the calls of items rendering or plotting themselves, in
// order. It serves as a display list: Replay paints it onto another
// renderer.
type Recorder struct {
	Calls   []Call
	current color.Color
}

var _ shape.Renderer = (*Recorder)(nil)
var _ shape.Plotter = (*Recorder)(nil)

// DrawPoly is part of interface shape.Renderer.
func (rec *Recorder) DrawPoly(clip *symdraw.Rect, pts []symdraw.Point, filled bool, width int,
	stroke, fill color.Color) {
	rec.Calls = append(rec.Calls, Call{
		Op:     OpDraw,
		Clip:   copyRect(clip),
		Points: append([]symdraw.Point(nil), pts...),
		Filled: filled,
		Width:  width,
		Stroke: stroke,
		FillC:  fill,
	})
}

// SetColor is part of interface shape.Plotter.
func (rec *Recorder) SetColor(c color.Color) {
	rec.current = c
}

// PlotPoly is part of interface shape.Plotter.
func (rec *Recorder) PlotPoly(pts []symdraw.Point, fill shape.FillMode, width int) {
	rec.Calls = append(rec.Calls, Call{
		Op:     OpPlot,
		Points: append([]symdraw.Point(nil), pts...),
		Filled: fill != shape.NoFill,
		Fill:   fill,
		Width:  width,
		Stroke: rec.current,
		FillC:  rec.current,
	})
}

// Reset drops all recorded calls.
func (rec *Recorder) Reset() {
	rec.Calls = rec.Calls[:0]
	rec.current = nil
}

// Replay issues the recorded calls to r, in order. Plot calls are drawn in
// the plotter color they were recorded with.
func (rec *Recorder) Replay(r shape.Renderer) {
	for _, c := range rec.Calls {
		r.DrawPoly(c.Clip, c.Points, c.Filled, c.Width, c.Stroke, c.FillC)
	}
	tracer().Debugf("recorder: replayed %d calls", len(rec.Calls))
}

func copyRect(r *symdraw.Rect) *symdraw.Rect {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}
