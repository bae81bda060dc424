/*
Package render holds host-side collaborators of the shape package: a raster
renderer painting into an RGBA image, and a recorder for display lists.

Raster maps device coordinates (as handed to shape.Renderer) onto pixels
through an affine view transform. Rasterization is done with
golang.org/x/image/vector; strokes are expanded into quads, one per segment,
plus a square at every vertex, and rasterized like any filled path.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file.
*/
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/symdraw"
	"github.com/npillmayer/symdraw/polygon"
	"github.com/npillmayer/symdraw/shape"
	"golang.org/x/image/vector"
)

// tracer writes to trace with key 'render'
func tracer() tracing.Trace {
	return tracing.Select("render")
}

// ErrBadSize is returned for rasters without pixels.
var ErrBadSize = errors.New("raster size must be positive")

// Raster is a shape.Renderer painting into an RGBA image.
type Raster struct {
	img  *image.RGBA
	view symdraw.AT
}

var _ shape.Renderer = (*Raster)(nil)

// NewRaster creates a raster of w × h pixels. view maps device coordinates
// to pixel coordinates; nil means identity.
func NewRaster(w, h int, view symdraw.AT) (*Raster, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %d × %d", ErrBadSize, w, h)
	}
	if view == nil {
		view = symdraw.Identity()
	}
	return &Raster{
		img:  image.NewRGBA(image.Rect(0, 0, w, h)),
		view: view,
	}, nil
}

// MustNewRaster is like NewRaster, but panics on error.
func MustNewRaster(w, h int, view symdraw.AT) *Raster {
	r, err := NewRaster(w, h, view)
	if err != nil {
		panic(err)
	}
	return r
}

// Image returns the raster's pixels.
func (r *Raster) Image() *image.RGBA {
	return r.img
}

// Clear paints the whole raster with c.
func (r *Raster) Clear(c color.Color) {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// DrawPoly is part of interface shape.Renderer.
func (r *Raster) DrawPoly(clip *symdraw.Rect, pts []symdraw.Point, filled bool, width int,
	stroke, fill color.Color) {
	if len(pts) == 0 {
		return
	}
	bounds := r.img.Bounds()
	if clip != nil {
		bounds = bounds.Intersect(r.pixelRect(*clip))
		if bounds.Empty() {
			return
		}
	}
	if filled && fill != nil && len(pts) > 2 {
		for _, pg := range fillAreas(clip, pts) {
			ras := r.rasterizer()
			r.path(ras, pg.Points())
			r.paint(ras, bounds, fill)
		}
	}
	if width == 0 || stroke == nil {
		return
	}
	pen := math.Max(1, float64(width)*r.view.Scale())
	if filled && len(pts) > 2 && pts[0] != pts[len(pts)-1] {
		pts = append(pts[:len(pts):len(pts)], pts[0])
	}
	ras := r.rasterizer()
	r.stroke(ras, pts, pen)
	r.paint(ras, bounds, stroke)
	tracer().Debugf("raster: %d points, pen %.1f px, filled=%v", len(pts), pen, filled)
}

// fillAreas returns the polygons to fill: the closed outline itself, or
// its pieces inside clip.
func fillAreas(clip *symdraw.Rect, pts []symdraw.Point) []*polygon.Polygon {
	pg := polygon.FromPoints(pts).Cycle()
	if clip == nil {
		return []*polygon.Polygon{pg}
	}
	return pg.Clip(*clip)
}

func (r *Raster) rasterizer() *vector.Rasterizer {
	b := r.img.Bounds()
	return vector.NewRasterizer(b.Dx(), b.Dy())
}

// paint draws src through the rasterizer's mask, restricted to bounds.
func (r *Raster) paint(ras *vector.Rasterizer, bounds image.Rectangle, c color.Color) {
	mask := image.NewAlpha(r.img.Bounds())
	ras.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	draw.DrawMask(r.img, bounds, image.NewUniform(c), image.Point{}, mask, bounds.Min, draw.Over)
}

func (r *Raster) pixel(p symdraw.Point) (float32, float32) {
	q := r.view.Transform(p.Pair())
	return float32(q.X()), float32(q.Y())
}

// pixelRect maps a device rectangle to the smallest pixel rectangle
// containing it.
func (r *Raster) pixelRect(rect symdraw.Rect) image.Rectangle {
	x0, y0 := r.pixel(rect.Min)
	x1, y1 := r.pixel(rect.Max)
	return image.Rect(
		int(math.Floor(float64(min(x0, x1)))), int(math.Floor(float64(min(y0, y1)))),
		int(math.Ceil(float64(max(x0, x1)))), int(math.Ceil(float64(max(y0, y1)))),
	)
}

func (r *Raster) path(ras *vector.Rasterizer, pts []symdraw.Point) {
	x, y := r.pixel(pts[0])
	ras.MoveTo(x, y)
	for _, p := range pts[1:] {
		x, y = r.pixel(p)
		ras.LineTo(x, y)
	}
	ras.ClosePath()
}

// stroke adds the outline of a polyline of pen width to ras. All sub-paths
// share one orientation, so overlaps add up instead of cancelling out.
func (r *Raster) stroke(ras *vector.Rasterizer, pts []symdraw.Point, pen float64) {
	h := float32(pen / 2)
	ax, ay := r.pixel(pts[0])
	square(ras, ax, ay, h)
	for _, p := range pts[1:] {
		bx, by := r.pixel(p)
		square(ras, bx, by, h)
		dx, dy := bx-ax, by-ay
		if l := float32(math.Hypot(float64(dx), float64(dy))); l > 0 {
			nx, ny := -dy/l*h, dx/l*h // left of a→b
			ras.MoveTo(ax+nx, ay+ny)
			ras.LineTo(bx+nx, by+ny)
			ras.LineTo(bx-nx, by-ny)
			ras.LineTo(ax-nx, ay-ny)
			ras.ClosePath()
		}
		ax, ay = bx, by
	}
}

func square(ras *vector.Rasterizer, x, y, h float32) {
	ras.MoveTo(x-h, y+h)
	ras.LineTo(x+h, y+h)
	ras.LineTo(x+h, y-h)
	ras.LineTo(x-h, y-h)
	ras.ClosePath()
}
