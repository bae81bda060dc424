/*
Package symbol collects the drawable items of a schematic symbol.

Items are ordered by kind first, then by each kind's own geometric order
(see shape.Compare). Items which compare equal are kept only once.

Items are handed out as live references and may be transformed in place
by their callers. The order is therefore not cached: it is established
whenever the symbol is queried.

A Symbol is not safe for concurrent use.
*/
package symbol

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/symdraw"
	"github.com/npillmayer/symdraw/shape"
)

// tracer writes to trace with key 'symbol'
func tracer() tracing.Trace {
	return tracing.Select("symbol")
}

// Symbol owns a set of draw items.
type Symbol struct {
	Name  string
	env   *shape.Env
	items []shape.Shape
}

func byKindAndGeometry(a, b interface{}) int {
	return shape.Compare(a.(shape.Shape), b.(shape.Shape))
}

// New creates an empty symbol. Items added without an environment of
// their own get env; env may be nil.
func New(name string, env *shape.Env) *Symbol {
	return &Symbol{Name: name, env: env}
}

// sorted puts the items in order and drops items which have become equal
// to another one since they were added. The first of equal items is kept.
func (sym *Symbol) sorted() *treeset.Set {
	set := treeset.NewWith(byKindAndGeometry)
	for _, it := range sym.items {
		if !set.Contains(it) {
			set.Add(it)
		}
	}
	if set.Size() != len(sym.items) {
		tracer().Debugf("symbol %s: dropped %d duplicate items", sym.Name,
			len(sym.items)-set.Size())
	}
	sym.items = sym.items[:0]
	iter := set.Iterator()
	for iter.Next() {
		sym.items = append(sym.items, iter.Value().(shape.Shape))
	}
	return set
}

// Add inserts items, skipping those equal to an item already present.
// It returns the number of items inserted.
func (sym *Symbol) Add(items ...shape.Shape) int {
	set := sym.sorted()
	n := 0
	for _, it := range items {
		if set.Contains(it) {
			tracer().Debugf("symbol %s: skipping duplicate %v item", sym.Name, it.Kind())
			continue
		}
		if sym.env != nil && it.Env() == nil {
			it.SetEnv(sym.env)
		}
		set.Add(it)
		sym.items = append(sym.items, it)
		n++
	}
	tracer().Infof("symbol %s: added %d of %d items", sym.Name, n, len(items))
	return n
}

// Remove deletes it, or else the item equal to it. It returns false if
// there is none.
func (sym *Symbol) Remove(it shape.Shape) bool {
	sym.sorted()
	at := -1
	for i, x := range sym.items {
		if x == it {
			at = i
			break
		}
		if at < 0 && shape.Compare(x, it) == 0 {
			at = i
		}
	}
	if at < 0 {
		return false
	}
	sym.items = append(sym.items[:at], sym.items[at+1:]...)
	tracer().Infof("symbol %s: removed %v item", sym.Name, it.Kind())
	return true
}

// Len returns the number of items.
func (sym *Symbol) Len() int {
	sym.sorted()
	return len(sym.items)
}

// Items returns the items in order.
func (sym *Symbol) Items() []shape.Shape {
	sym.sorted()
	return append([]shape.Shape(nil), sym.items...)
}

// BoundingBox returns the union of the items' bounding boxes.
func (sym *Symbol) BoundingBox() symdraw.Rect {
	var r symdraw.Rect
	for _, it := range sym.Items() {
		r = r.Union(it.BoundingBox())
	}
	return r
}

// HitTest returns the first item hit at p, or nil.
func (sym *Symbol) HitTest(p symdraw.Point) shape.Shape {
	for _, it := range sym.Items() {
		if it.HitTest(p) {
			return it
		}
	}
	return nil
}

// Offset translates all items by delta.
func (sym *Symbol) Offset(delta symdraw.Point) {
	sym.transform(func(s shape.Shape) { s.Offset(delta) })
}

// Rotate rotates all items by 90 degrees around center.
func (sym *Symbol) Rotate(center symdraw.Point, ccw bool) {
	sym.transform(func(s shape.Shape) { s.Rotate(center, ccw) })
}

// MirrorHorizontal mirrors all items at the vertical line through center.
func (sym *Symbol) MirrorHorizontal(center symdraw.Point) {
	sym.transform(func(s shape.Shape) { s.MirrorHorizontal(center) })
}

// MirrorVertical mirrors all items at the horizontal line through center.
func (sym *Symbol) MirrorVertical(center symdraw.Point) {
	sym.transform(func(s shape.Shape) { s.MirrorVertical(center) })
}

// transform applies f to every item.
func (sym *Symbol) transform(f func(shape.Shape)) {
	for _, it := range sym.items {
		f(it)
	}
	tracer().Debugf("symbol %s: transformed %d items", sym.Name, len(sym.items))
}

// Plot emits all items. With fill set, items filled with the background
// color are plotted first, so that the other items are drawn on top of
// their backgrounds.
func (sym *Symbol) Plot(p shape.Plotter, offset symdraw.Point, fill bool, tr symdraw.Transform) {
	items := sym.Items()
	if fill {
		for _, it := range items {
			if it.Fill() == shape.FilledWithBackground {
				it.Plot(p, offset, true, tr)
			}
		}
	}
	for _, it := range items {
		if fill && it.Fill() == shape.FilledWithBackground {
			continue
		}
		it.Plot(p, offset, fill, tr)
	}
}

// Render draws all items.
func (sym *Symbol) Render(r shape.Renderer, opts shape.RenderOptions) {
	for _, it := range sym.Items() {
		it.Render(r, opts)
	}
}
