package flexbox

import "github.com/grindlemire/go-flex/internal/layout"

// absolute sizes and places an out-of-flow child inside the content box of
// its parent. It never influences its siblings.
func (r *Resolver) absolute(h layout.Handle, content layout.Size[float32]) layout.Layout {
	s := r.tree.View(h).Style
	base := layout.Size[layout.Number]{Width: layout.Defined(content.Width), Height: layout.Defined(content.Height)}

	margin := s.Margin.Resolve(base.Width)
	pb := s.Padding.Resolve(base.Width).Add(s.Border.Resolve(base.Width))
	left, right := s.Position.Left.Resolve(base.Width), s.Position.Right.Resolve(base.Width)
	top, bottom := s.Position.Top.Resolve(base.Height), s.Position.Bottom.Resolve(base.Height)

	avail := layout.Size[layout.AvailableSpace]{
		Width: absoluteAxis(s.Size.Width, s.MinSize.Width, s.MaxSize.Width, base.Width,
			left, right, content.Width, margin.Horizontal(), pb.Horizontal()),
		Height: absoluteAxis(s.Size.Height, s.MinSize.Height, s.MaxSize.Height, base.Height,
			top, bottom, content.Height, margin.Vertical(), pb.Vertical()),
	}

	l := *r.node(h, avail, base, true).Layout
	l.X = absolutePosition(left, right, margin.Left, margin.Right, content.Width, l.Width)
	l.Y = absolutePosition(top, bottom, margin.Top, margin.Bottom, content.Height, l.Height)
	return l
}

// absoluteAxis picks the size constraint along one axis: an explicit size,
// else the span between two set offsets, else content up to the space left.
func absoluteAxis(size, lo, hi layout.Value, base, start, end layout.Number, content, margin, pb float32) layout.AvailableSpace {
	minV, maxV := lo.Resolve(base), hi.Resolve(base)
	if v := size.Resolve(base); v.IsDefined() {
		return layout.Definite(max(clamp(v.Value(), minV, maxV), pb))
	}
	if start.IsDefined() && end.IsDefined() {
		span := content - start.Value() - end.Value() - margin
		return layout.Definite(max(clamp(span, minV, maxV), pb, 0))
	}
	return layout.AtMost(max(0, content-margin-start.Or(0)-end.Or(0)))
}

// absolutePosition anchors the box at the start offset, else the end
// offset, else the start edge.
func absolutePosition(start, end layout.Number, marginStart, marginEnd, content, size float32) float32 {
	switch {
	case start.IsDefined():
		return start.Value() + marginStart
	case end.IsDefined():
		return content - end.Value() - marginEnd - size
	default:
		return marginStart
	}
}
