package shape

import (
	"errors"
	"image/color"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/symdraw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFillModeTokens(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, f := range []FillMode{NoFill, FilledShape, FilledWithBackground} {
		parsed, err := ParseFillMode(f.Token())
		require.NoError(t, err)
		assert.Equal(t, f, parsed)
	}
	_, err := ParseFillMode("X")
	assert.True(t, errors.Is(err, ErrUnknownFillMode))
	assert.Equal(t, "FilledWithBackground", FilledWithBackground.String())
	assert.Equal(t, "Circle", KindCircle.String())
}

func TestFormatValue(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Equal(t, "1,500 mils", FormatValue(Mils, 1500, true))
	assert.Equal(t, "6", FormatValue(Mils, 6, false))
	assert.Equal(t, "0.0060 in", FormatValue(Inches, 6, true))
	assert.Equal(t, "2.5400 mm", FormatValue(Millimetres, 100, true))
}

func TestEnvFallbacks(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	env := &Env{}
	assert.Equal(t, DefaultLineThickness, env.lineThickness())
	assert.Equal(t, DefaultEnv().Colors.LayerColor(LayerDevice), env.layerColor(LayerDevice))
	assert.Equal(t, env.layerColor(LayerSelection), env.selectionColor())
	assert.Equal(t, color.Black, Palette{}.LayerColor(LayerDevice))
}

func TestPolyline(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pl := NewPolyline(nil, symdraw.Pt(0, 0), symdraw.Pt(100, 0), symdraw.Pt(100, 100))
	assert.Equal(t, symdraw.Pt(0, 0), pl.Position())
	assert.Equal(t, symdraw.Rect{Min: symdraw.Pt(-3, -103), Max: symdraw.Pt(103, 3)}, pl.BoundingBox())
	assert.True(t, pl.HitTestWithin(symdraw.Pt(50, 1), 2, symdraw.IdentityTransform))
	assert.False(t, pl.HitTestWithin(symdraw.Pt(60, 50), 2, symdraw.IdentityTransform))
	pl.SetFill(FilledShape)
	assert.True(t, pl.HitTestWithin(symdraw.Pt(60, 50), 2, symdraw.IdentityTransform), "inside filled area")
	assert.True(t, pl.HitTestWithin(symdraw.Pt(50, 50), 0, symdraw.IdentityTransform), "closing edge")

	c := pl.Clone().(*Polyline)
	c.Rotate(symdraw.Origin, true)
	assert.Equal(t, symdraw.Pt(0, 100), c.Points()[1])
	assert.Equal(t, symdraw.Pt(100, 0), pl.Points()[1])
	c.Move(symdraw.Pt(10, 10))
	assert.Equal(t, symdraw.Pt(10, 10), c.Position())
	assert.NotEqual(t, 0, pl.Compare(c))
	assert.Equal(t, 0, pl.Compare(pl.Clone()))

	p := &fakePlotter{}
	pl.SetFill(FilledWithBackground)
	pl.Plot(p, symdraw.Origin, true, symdraw.IdentityTransform)
	assert.Len(t, p.calls, 2)
}

func TestCircle(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c := NewCircle(nil, symdraw.Pt(10, 20), 50)
	assert.Equal(t, symdraw.Rect{Min: symdraw.Pt(-43, -73), Max: symdraw.Pt(63, 33)}, c.BoundingBox())
	assert.True(t, c.HitTestWithin(symdraw.Pt(60, 20), 0, symdraw.IdentityTransform))
	assert.True(t, c.HitTest(symdraw.Pt(10, -70)), "display orientation")
	assert.False(t, c.HitTest(symdraw.Pt(10, -20)), "center of unfilled circle")
	c.SetFill(FilledShape)
	assert.True(t, c.HitTest(symdraw.Pt(10, -20)))

	c.MirrorHorizontal(symdraw.Origin)
	assert.Equal(t, symdraw.Pt(-10, 20), c.Position())
	c.Rotate(symdraw.Origin, false)
	assert.Equal(t, symdraw.Pt(20, 10), c.Center())

	r := &fakeRenderer{}
	c.Render(r, RenderOptions{Transform: symdraw.IdentityTransform})
	require.Len(t, r.calls, 1)
	pts := r.calls[0].pts
	assert.Len(t, pts, CircleSegments+1)
	assert.Equal(t, symdraw.Pt(70, 10), pts[0])
	assert.Equal(t, pts[0], pts[len(pts)-1])

	other := NewCircle(nil, symdraw.Pt(20, 10), 40)
	assert.Greater(t, c.Compare(other), 0)
	assert.Less(t, other.Compare(c), 0)
	info := c.MsgPanelInfo(Mils)
	assert.Equal(t, "50 mils", info[len(info)-1].Text)
}

func TestRectangle(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	r := NewRectangle(nil, symdraw.Pt(0, 0), symdraw.Pt(100, 50))
	r.SetWidth(2)
	assert.Equal(t, symdraw.Rect{Min: symdraw.Pt(-1, -51), Max: symdraw.Pt(101, 1)}, r.BoundingBox())
	assert.True(t, r.HitTestWithin(symdraw.Pt(100, 25), 0, symdraw.IdentityTransform))
	assert.True(t, r.HitTestWithin(symdraw.Pt(0, 25), 0, symdraw.IdentityTransform))
	assert.False(t, r.HitTestWithin(symdraw.Pt(50, 25), 2, symdraw.IdentityTransform))
	assert.True(t, r.Inside(symdraw.RectFromPoints(symdraw.Pt(90, -10), symdraw.Pt(200, 10))))

	r.Move(symdraw.Pt(10, 10))
	s, e := r.Corners()
	assert.Equal(t, symdraw.Pt(10, 10), s)
	assert.Equal(t, symdraw.Pt(110, 60), e)
	r.MirrorVertical(symdraw.Pt(0, 10))
	_, e = r.Corners()
	assert.Equal(t, symdraw.Pt(110, -40), e)

	p := &fakePlotter{}
	r.Plot(p, symdraw.Origin, false, symdraw.DefaultTransform)
	require.Len(t, p.calls, 1)
	assert.Len(t, p.calls[0].pts, 5)
	assert.Equal(t, 2, p.calls[0].width)
}

func TestSiblingsImplementShape(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	shapes := []Shape{
		NewPolyline(nil, symdraw.Pt(0, 0), symdraw.Pt(10, 0)),
		NewRectangle(nil, symdraw.Pt(0, 0), symdraw.Pt(10, 10)),
		NewCircle(nil, symdraw.Pt(0, 0), 10),
		testcurve(),
	}
	for i, s := range shapes {
		assert.Equal(t, Kind(i), s.Kind())
		clone := s.Clone()
		assert.Equal(t, 0, Compare(s, clone))
		clone.Offset(symdraw.Pt(3, 4))
		clone.Offset(symdraw.Pt(-3, -4))
		assert.Equal(t, 0, Compare(s, clone))
		if i > 0 {
			assert.Greater(t, Compare(s, shapes[i-1]), 0)
		}
	}
}

func TestCompareFarApart(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	far := 1 << 62
	a := NewCircle(nil, symdraw.Pt(far, 0), 1)
	b := NewCircle(nil, symdraw.Pt(-far, 0), 1)
	assert.Greater(t, a.Compare(b), 0)
	assert.Less(t, b.Compare(a), 0)
	p := NewPolyline(nil, symdraw.Pt(0, far), symdraw.Pt(0, 0))
	q := NewPolyline(nil, symdraw.Pt(0, -far), symdraw.Pt(0, 0))
	assert.Greater(t, p.Compare(q), 0)
	assert.Less(t, q.Compare(p), 0)
}
