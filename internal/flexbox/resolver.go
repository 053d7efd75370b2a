// Package flexbox resolves a node tree into positioned layouts.
//
// Resolution runs top-down. A container sizes its children in several
// passes (flex basis, line breaking, flexible lengths, cross sizing,
// alignment) and every child measurement goes through the cache, so a
// subtree that has not changed is answered without being walked.
package flexbox

import (
	"fmt"

	"github.com/grindlemire/go-flex/internal/cache"
	"github.com/grindlemire/go-flex/internal/layout"
	"github.com/grindlemire/go-flex/internal/tree"
)

// Rounding selects how computed float coordinates are snapped.
type Rounding uint8

const (
	RoundNone      Rounding = iota // Raw float output
	RoundPixelGrid                 // Edges snapped to a 1/scale grid
)

func (r Rounding) String() string {
	if r == RoundPixelGrid {
		return "pixel"
	}
	return "none"
}

// Resolver computes layouts for one tree, memoizing through one cache.
type Resolver struct {
	tree     *tree.Tree
	cache    *cache.Store
	rounding Rounding
	scale    float32
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithRounding selects the rounding policy. scale is the number of grid
// cells per point; values <= 0 mean 1.
func WithRounding(mode Rounding, scale float32) Option {
	return func(r *Resolver) {
		r.rounding = mode
		r.scale = scale
	}
}

// New creates a resolver over t and c.
func New(t *tree.Tree, c *cache.Store, opts ...Option) *Resolver {
	r := &Resolver{tree: t, cache: c, scale: 1}
	for _, opt := range opts {
		opt(r)
	}
	if r.scale <= 0 {
		r.scale = 1
	}
	return r
}

// Compute lays out the subtree rooted at root. The returned Layout is a
// private copy; the caller may keep or modify it.
func (r *Resolver) Compute(root layout.Handle, avail layout.Size[layout.AvailableSpace]) (layout.Layout, error) {
	if !r.tree.Contains(root) {
		return layout.Layout{}, fmt.Errorf("%w: %v", layout.ErrInvalidHandle, root)
	}

	parent := layout.Size[layout.Number]{Width: avail.Width.Number(), Height: avail.Height.Number()}
	s := r.tree.View(root).Style
	rootAvail := layout.Size[layout.AvailableSpace]{
		Width:  rootAxis(avail.Width, s.Size.Width, s.MinSize.Width, s.MaxSize.Width, parent.Width),
		Height: rootAxis(avail.Height, s.Size.Height, s.MinSize.Height, s.MaxSize.Height, parent.Height),
	}

	e := r.node(root, rootAvail, parent, true)
	out := cloneLayout(*e.Layout)
	if r.rounding == RoundPixelGrid {
		roundLayout(&out, 0, 0, r.scale)
	}
	return out, nil
}

// rootAxis turns the host's available space into the root's constraint.
// An explicit size wins and is clamped; a definite space is taken whole.
func rootAxis(a layout.AvailableSpace, size, lo, hi layout.Value, base layout.Number) layout.AvailableSpace {
	minV, maxV := lo.Resolve(base), hi.Resolve(base)
	if v := size.Resolve(base); v.IsDefined() {
		return layout.Definite(max(clamp(v.Value(), minV, maxV), 0))
	}
	if a.Mode == layout.MeasureExactly {
		return layout.Definite(max(clamp(a.Value, minV, maxV), 0))
	}
	return a
}

// node returns the cached or freshly computed result for h. full requests
// a positioned subtree; otherwise only the border-box size is needed.
func (r *Resolver) node(h layout.Handle, avail layout.Size[layout.AvailableSpace], parent layout.Size[layout.Number], full bool) cache.Entry {
	key := cache.Key{Available: avail, ParentSize: parent}
	return r.cache.GetOrCompute(r.tree, h, key, full, func() cache.Entry {
		return r.compute(h, avail, parent, full)
	})
}

func (r *Resolver) compute(h layout.Handle, avail layout.Size[layout.AvailableSpace], parent layout.Size[layout.Number], full bool) cache.Entry {
	v := r.tree.View(h)
	if v.Style.Display == layout.DisplayNone {
		l := r.hide(h)
		return cache.Entry{Layout: &l}
	}

	b := newBox(v.Style, avail, parent)
	if len(v.Children) == 0 {
		return r.leaf(h, v, b, avail, full)
	}
	return r.container(h, v, b, avail, full)
}

// hide produces the zero layout of a display:none subtree. Descendants are
// marked clean and their cache entries dropped so that a later change
// below still propagates to this node.
func (r *Resolver) hide(h layout.Handle) layout.Layout {
	v := r.tree.View(h)
	l := layout.Layout{Handle: h}
	if len(v.Children) > 0 {
		l.Children = make([]layout.Layout, len(v.Children))
		for i, c := range v.Children {
			r.tree.MarkClean(c)
			r.cache.Drop(c)
			l.Children[i] = r.hide(c)
		}
	}
	return l
}

func (r *Resolver) leaf(h layout.Handle, v tree.View, b box, avail layout.Size[layout.AvailableSpace], full bool) cache.Entry {
	var content layout.Size[float32]
	if v.Measure != nil && !(b.known.Width.IsDefined() && b.known.Height.IsDefined()) {
		in := b.innerAvail(avail)
		content = v.Measure(in.Width.Mode, in.Width.Value, in.Height.Mode, in.Height.Value)
		r.cache.RecordMeasure()
		content.Width = finite(content.Width)
		content.Height = finite(content.Height)
	}

	size := layout.Size[float32]{
		Width:  b.outer(b.known.Width, content.Width, b.pb.Horizontal(), b.min.Width, b.max.Width),
		Height: b.outer(b.known.Height, content.Height, b.pb.Vertical(), b.min.Height, b.max.Height),
	}
	e := cache.Entry{Size: size}
	if full {
		e.Layout = &layout.Layout{
			Handle:  h,
			Width:   size.Width,
			Height:  size.Height,
			Padding: b.padding,
			Border:  b.border,
		}
	}
	return e
}

func cloneLayout(l layout.Layout) layout.Layout {
	if l.Children != nil {
		kids := make([]layout.Layout, len(l.Children))
		for i := range l.Children {
			kids[i] = cloneLayout(l.Children[i])
		}
		l.Children = kids
	}
	return l
}
