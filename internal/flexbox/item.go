package flexbox

import (
	"github.com/grindlemire/go-flex/internal/layout"
)

// flexItem holds intermediate calculation state for an in-flow child.
// It lives for one container computation and is not stored on nodes.
type flexItem struct {
	handle layout.Handle
	index  int // position in the parent's child list
	style  *layout.Style
	align  layout.Align

	margin   layout.Insets // auto edges resolve to zero
	autoMain [2]bool       // main-start, main-end margins are auto
	autoX    [2]bool       // cross-start, cross-end margins are auto
	pb       layout.Insets
	min, max layout.Size[layout.Number]

	basis     float32 // flex base size
	hypo      float32 // hypothetical main size, clamped
	target    float32 // main size after flexible lengths
	frozen    bool
	violation float32

	hypoCross float32
	cross     float32

	mainPos, crossPos float32 // logical, from main-start and cross-start
}

// collect builds flex items for the in-flow children of a container and
// returns the child indices of absolutely positioned children separately.
// Hidden children appear in neither.
func (r *Resolver) collect(children []layout.Handle, parent *layout.Style, base layout.Size[layout.Number]) ([]flexItem, []int) {
	dir := parent.Direction
	wrapRev := parent.Wrap == layout.WrapReverse

	items := make([]flexItem, 0, len(children))
	var absolutes []int
	for i, c := range children {
		cs := r.tree.View(c).Style
		if cs.Display == layout.DisplayNone {
			continue
		}
		if cs.PositionType == layout.PositionAbsolute {
			absolutes = append(absolutes, i)
			continue
		}

		it := flexItem{
			handle: c,
			index:  i,
			style:  cs,
			align:  cs.AlignFor(parent.AlignItems),
			margin: cs.Margin.Resolve(base.Width),
			pb:     cs.Padding.Resolve(base.Width).Add(cs.Border.Resolve(base.Width)),
			min: layout.Size[layout.Number]{
				Width:  cs.MinSize.Width.Resolve(base.Width),
				Height: cs.MinSize.Height.Resolve(base.Height),
			},
			max: layout.Size[layout.Number]{
				Width:  cs.MaxSize.Width.Resolve(base.Width),
				Height: cs.MaxSize.Height.Resolve(base.Height),
			},
		}
		it.autoMain = [2]bool{cs.Margin.MainStart(dir).IsAuto(), cs.Margin.MainEnd(dir).IsAuto()}
		it.autoX = [2]bool{cs.Margin.CrossStart(dir, wrapRev).IsAuto(), cs.Margin.CrossEnd(dir, wrapRev).IsAuto()}
		items = append(items, it)
	}
	return items, absolutes
}

func (it *flexItem) clampMain(dir layout.FlexDirection, v float32) float32 {
	return max(clamp(v, it.min.Main(dir), it.max.Main(dir)), it.pb.Main(dir))
}

func (it *flexItem) clampCross(dir layout.FlexDirection, v float32) float32 {
	return max(clamp(v, it.min.Cross(dir), it.max.Cross(dir)), it.pb.Cross(dir))
}

// explicitCross returns the item's clamped cross size when its style sets one.
func (it *flexItem) explicitCross(dir layout.FlexDirection, base layout.Size[layout.Number]) (float32, bool) {
	v := it.style.Size.Cross(dir).Resolve(base.Cross(dir))
	if !v.IsDefined() {
		return 0, false
	}
	return it.clampCross(dir, v.Value()), true
}

// stretches reports whether the item fills its line on the cross axis.
func (it *flexItem) stretches(dir layout.FlexDirection, base layout.Size[layout.Number]) bool {
	if it.align != layout.AlignStretch || it.autoX[0] || it.autoX[1] {
		return false
	}
	_, explicit := it.explicitCross(dir, base)
	return !explicit
}

// crossAvail is the cross-axis space offered when measuring the item.
// A stretched item in a single-line container with a definite cross size
// is measured at its final stretched size.
func (it *flexItem) crossAvail(parent *layout.Style, base layout.Size[layout.Number], inner layout.AvailableSpace) layout.AvailableSpace {
	dir := parent.Direction
	if v, ok := it.explicitCross(dir, base); ok {
		return layout.Definite(v)
	}
	m := it.margin.Cross(dir)
	if parent.Wrap == layout.NoWrap && inner.Mode == layout.MeasureExactly && it.stretches(dir, base) {
		return layout.Definite(it.clampCross(dir, inner.Value-m))
	}
	if inner.IsBounded() {
		return layout.AtMost(max(0, inner.Value-m))
	}
	return layout.Unbounded()
}

// flexBasis determines the flex base size: the flex-basis property, else
// the main size property, else the content size along the main axis.
func (r *Resolver) flexBasis(it *flexItem, parent *layout.Style, base layout.Size[layout.Number], inner layout.Size[layout.AvailableSpace]) float32 {
	dir := parent.Direction
	mainBase := base.Main(dir)
	if v := it.style.FlexBasis.Resolve(mainBase); v.IsDefined() {
		return v.Value()
	}
	if v := it.style.Size.Main(dir).Resolve(mainBase); v.IsDefined() {
		return v.Value()
	}

	avail := layout.FromAxes(dir, layout.Unbounded(), it.crossAvail(parent, base, inner.Cross(dir)))
	return r.node(it.handle, avail, base, false).Size.Main(dir)
}

// measureCross determines the hypothetical cross size once the main size
// is known.
func (r *Resolver) measureCross(it *flexItem, parent *layout.Style, base layout.Size[layout.Number], inner layout.Size[layout.AvailableSpace]) float32 {
	dir := parent.Direction
	if v, ok := it.explicitCross(dir, base); ok {
		return v
	}
	avail := layout.FromAxes(dir, layout.Definite(it.target), it.crossAvail(parent, base, inner.Cross(dir)))
	return r.node(it.handle, avail, base, false).Size.Cross(dir)
}
