package flexbox

import (
	"math"

	"github.com/grindlemire/go-flex/internal/layout"
)

// box holds the resolved box-model values of one node for one computation.
type box struct {
	padding layout.Insets
	border  layout.Insets
	pb      layout.Insets // padding + border

	min, max layout.Size[layout.Number] // border box
	known    layout.Size[layout.Number] // border box when already determined
}

// newBox resolves the style of a node against its parent's content size.
// Padding and border percentages use the parent width on every edge.
func newBox(s *layout.Style, avail layout.Size[layout.AvailableSpace], parent layout.Size[layout.Number]) box {
	b := box{
		padding: s.Padding.Resolve(parent.Width),
		border:  s.Border.Resolve(parent.Width),
	}
	b.pb = b.padding.Add(b.border)
	b.min = layout.Size[layout.Number]{
		Width:  s.MinSize.Width.Resolve(parent.Width),
		Height: s.MinSize.Height.Resolve(parent.Height),
	}
	b.max = layout.Size[layout.Number]{
		Width:  s.MaxSize.Width.Resolve(parent.Width),
		Height: s.MaxSize.Height.Resolve(parent.Height),
	}
	b.known = layout.Size[layout.Number]{
		Width:  knownAxis(avail.Width, s.Size.Width, parent.Width, b.min.Width, b.max.Width, b.pb.Horizontal()),
		Height: knownAxis(avail.Height, s.Size.Height, parent.Height, b.min.Height, b.max.Height, b.pb.Vertical()),
	}
	return b
}

// knownAxis returns the border-box size along one axis when it does not
// depend on content: either the parent fixed it, or the style sets it.
func knownAxis(a layout.AvailableSpace, size layout.Value, base, lo, hi layout.Number, pb float32) layout.Number {
	if a.Mode == layout.MeasureExactly {
		return layout.Defined(max(a.Value, 0))
	}
	if v := size.Resolve(base); v.IsDefined() {
		return layout.Defined(max(clamp(v.Value(), lo, hi), pb))
	}
	return layout.Number{}
}

// innerAvail is the space offered to the content box.
func (b box) innerAvail(avail layout.Size[layout.AvailableSpace]) layout.Size[layout.AvailableSpace] {
	return layout.Size[layout.AvailableSpace]{
		Width:  innerAxis(b.known.Width, avail.Width, b.max.Width, b.pb.Horizontal()),
		Height: innerAxis(b.known.Height, avail.Height, b.max.Height, b.pb.Vertical()),
	}
}

func innerAxis(known layout.Number, a layout.AvailableSpace, hi layout.Number, pb float32) layout.AvailableSpace {
	switch {
	case known.IsDefined():
		return layout.Definite(known.Value()).Shrink(pb)
	case a.IsBounded():
		return layout.AtMost(layout.Defined(a.Value).MaybeMin(hi).Value()).Shrink(pb)
	case hi.IsDefined():
		return layout.AtMost(hi.Value()).Shrink(pb)
	default:
		return layout.Unbounded()
	}
}

// innerBase is the percentage base handed to children: the definite
// content size, or undefined for content-sized axes.
func (b box) innerBase() layout.Size[layout.Number] {
	inner := func(n layout.Number, pb float32) layout.Number {
		return n.Sub(pb).MaybeMax(layout.Defined(0))
	}
	return layout.Size[layout.Number]{
		Width:  inner(b.known.Width, b.pb.Horizontal()),
		Height: inner(b.known.Height, b.pb.Vertical()),
	}
}

// outer turns a content size into the final border-box size on one axis.
func (b box) outer(known layout.Number, content, pb float32, lo, hi layout.Number) float32 {
	if known.IsDefined() {
		return known.Value()
	}
	return max(clamp(content+pb, lo, hi), pb)
}

// clamp restricts v to [lo, hi], ignoring undefined bounds.
// If lo > hi, lo wins.
func clamp(v float32, lo, hi layout.Number) float32 {
	return layout.Defined(v).MaybeMin(hi).MaybeMax(lo).Value()
}

// finite maps NaN, infinities and negatives reported by a measure
// callback to zero.
func finite(v float32) float32 {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) || v < 0 {
		return 0
	}
	return v
}
