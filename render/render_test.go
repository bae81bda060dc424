package render

import (
	"errors"
	"image/color"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/symdraw"
	"github.com/npillmayer/symdraw/shape"
	"github.com/npillmayer/symdraw/symbol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var red = color.NRGBA{R: 0xff, A: 0xff}

func alpha(r *Raster, x, y int) uint8 {
	return r.Image().RGBAAt(x, y).A
}

func TestNewRaster(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := NewRaster(0, 10, nil)
	assert.True(t, errors.Is(err, ErrBadSize))
	_, err = NewRaster(10, -1, nil)
	assert.True(t, errors.Is(err, ErrBadSize))
	assert.Panics(t, func() { MustNewRaster(0, 0, nil) })
	r := MustNewRaster(20, 10, nil)
	assert.Equal(t, 20, r.Image().Bounds().Dx())
	assert.Equal(t, uint8(0), alpha(r, 5, 5))
	r.Clear(color.White)
	assert.Equal(t, uint8(0xff), alpha(r, 5, 5))
}

func TestRasterStroke(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	r := MustNewRaster(40, 40, nil)
	r.DrawPoly(nil, []symdraw.Point{symdraw.Pt(5, 20), symdraw.Pt(35, 20)}, false, 3, color.Black, nil)
	assert.Equal(t, uint8(0xff), alpha(r, 20, 20))
	assert.Equal(t, uint8(0), alpha(r, 20, 25))
	assert.Equal(t, uint8(0), alpha(r, 38, 20))
	// minimal pen still leaves a trace
	r.DrawPoly(nil, []symdraw.Point{symdraw.Pt(20, 0), symdraw.Pt(20, 40)}, false, -1, color.Black, nil)
	assert.Greater(t, alpha(r, 20, 30), uint8(0))
}

func TestRasterFill(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	r := MustNewRaster(40, 40, nil)
	box := []symdraw.Point{symdraw.Pt(10, 10), symdraw.Pt(30, 10), symdraw.Pt(30, 30), symdraw.Pt(10, 30)}
	r.DrawPoly(nil, box, true, 0, nil, red)
	c := r.Image().RGBAAt(20, 20)
	assert.Equal(t, uint8(0xff), c.R)
	assert.Equal(t, uint8(0), c.G)
	assert.Equal(t, uint8(0), alpha(r, 5, 5))
}

func TestRasterClip(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	r := MustNewRaster(40, 40, nil)
	box := []symdraw.Point{symdraw.Pt(10, 10), symdraw.Pt(30, 10), symdraw.Pt(30, 30), symdraw.Pt(10, 30)}
	clip := symdraw.RectFromPoints(symdraw.Pt(0, 0), symdraw.Pt(20, 40))
	r.DrawPoly(&clip, box, true, 2, color.Black, red)
	assert.Equal(t, uint8(0xff), r.Image().RGBAAt(15, 15).R)
	assert.Equal(t, uint8(0), alpha(r, 25, 15), "fill clipped")
	assert.Equal(t, uint8(0), alpha(r, 30, 20), "stroke clipped")
	assert.Equal(t, uint8(0xff), alpha(r, 10, 20))
	outside := symdraw.RectFromPoints(symdraw.Pt(100, 100), symdraw.Pt(200, 200))
	r = MustNewRaster(40, 40, nil)
	r.DrawPoly(&outside, box, true, 2, color.Black, red)
	assert.Equal(t, uint8(0), alpha(r, 20, 20))
}

func TestRasterView(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// zoom 2, then pan by (4,4)
	view := symdraw.Scaling(2, 2).Combine(symdraw.Translation(symdraw.P(4, 4)))
	r := MustNewRaster(40, 40, view)
	r.DrawPoly(nil, []symdraw.Point{symdraw.Pt(0, 5), symdraw.Pt(15, 5)}, false, 2, color.Black, nil)
	// segment now runs along y = 14 with a pen of 4 pixels
	assert.Equal(t, uint8(0xff), alpha(r, 20, 12))
	assert.Equal(t, uint8(0xff), alpha(r, 20, 15))
	assert.Equal(t, uint8(0), alpha(r, 20, 17))
	assert.Equal(t, uint8(0), alpha(r, 1, 14))
}

func TestRenderBezier(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	b := shape.NewBezier(nil)
	b.SetControlPoints([]symdraw.Point{
		symdraw.Pt(0, 0), symdraw.Pt(0, 10), symdraw.Pt(10, 10), symdraw.Pt(10, 0),
	})
	b.SetWidth(2)
	r := MustNewRaster(40, 40, nil)
	b.Render(r, shape.RenderOptions{Offset: symdraw.Pt(15, 30)})
	assert.Greater(t, alpha(r, 15, 29), uint8(0), "start point")
	assert.Greater(t, alpha(r, 24, 29), uint8(0), "end point")
	assert.Equal(t, uint8(0), alpha(r, 20, 28), "below the arch")
	assert.Equal(t, uint8(0), alpha(r, 20, 35))
}

func TestRecorder(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	rec := &Recorder{}
	bg := shape.NewRectangle(nil, symdraw.Pt(0, 0), symdraw.Pt(20, -20))
	bg.SetFill(shape.FilledWithBackground)
	line := shape.NewPolyline(nil, symdraw.Pt(0, 0), symdraw.Pt(20, -20))
	sym := symbol.New("R", nil)
	sym.Add(line, bg)
	sym.Plot(rec, symdraw.Pt(10, 10), true, symdraw.DefaultTransform)
	require.Len(t, rec.Calls, 3)
	assert.Equal(t, OpPlot, rec.Calls[0].Op)
	assert.Equal(t, shape.FilledWithBackground, rec.Calls[0].Fill, "background first")
	assert.Equal(t, 0, rec.Calls[0].Width)
	assert.Equal(t, "plot 5 points, fill=f, width=0", rec.Calls[0].String())

	raster := MustNewRaster(40, 40, nil)
	rec.Replay(raster)
	assert.Greater(t, alpha(raster, 15, 15), uint8(0))
	assert.Greater(t, alpha(raster, 10, 10), uint8(0))

	rec.Reset()
	assert.Empty(t, rec.Calls)
	line.Render(rec, shape.RenderOptions{Offset: symdraw.Pt(1, 1)})
	require.Len(t, rec.Calls, 1)
	assert.Equal(t, OpDraw, rec.Calls[0].Op)
	assert.Equal(t, []symdraw.Point{symdraw.Pt(1, 1), symdraw.Pt(21, 21)}, rec.Calls[0].Points)
}

func TestRecorderKeepsClip(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	rec := &Recorder{}
	clip := symdraw.RectFromPoints(symdraw.Pt(0, 0), symdraw.Pt(20, 40))
	box := []symdraw.Point{symdraw.Pt(10, 10), symdraw.Pt(30, 10), symdraw.Pt(30, 30), symdraw.Pt(10, 30)}
	rec.DrawPoly(&clip, box, true, 0, nil, red)
	clip.Max = symdraw.Pt(40, 40)
	require.NotNil(t, rec.Calls[0].Clip)
	assert.Equal(t, symdraw.Pt(20, 40), rec.Calls[0].Clip.Max)

	r := MustNewRaster(40, 40, nil)
	rec.Replay(r)
	assert.Equal(t, uint8(0xff), alpha(r, 15, 15))
	assert.Equal(t, uint8(0), alpha(r, 25, 15))
}
