package flexbox

import (
	"github.com/grindlemire/go-flex/internal/cache"
	"github.com/grindlemire/go-flex/internal/layout"
	"github.com/grindlemire/go-flex/internal/tree"
)

// container computes a node with children. Without full only the border-box
// size is produced; absolute children and child layouts are skipped.
func (r *Resolver) container(h layout.Handle, v tree.View, b box, avail layout.Size[layout.AvailableSpace], full bool) cache.Entry {
	s := v.Style
	dir := s.Direction
	wrapRev := s.Wrap == layout.WrapReverse
	inner := b.innerAvail(avail)
	base := b.innerBase()
	pbMain, pbCross := b.pb.Main(dir), b.pb.Cross(dir)

	mainGap := s.Gap.Main(dir).ResolveOr(base.Main(dir), 0)
	crossGap := s.Gap.Cross(dir).ResolveOr(base.Cross(dir), 0)

	// Phase 1: flex base and hypothetical main sizes
	items, absolutes := r.collect(v.Children, s, base)
	for i := range items {
		it := &items[i]
		it.basis = r.flexBasis(it, s, base, inner)
		it.hypo = it.clampMain(dir, it.basis)
	}

	// Phase 2: lines
	innerMain := inner.Main(dir)
	lines := breakLines(items, dir, s.Wrap != layout.NoWrap, innerMain, mainGap)

	// Phase 3: container main size
	var mainSize float32
	if innerMain.Mode == layout.MeasureExactly {
		mainSize = innerMain.Value
	} else {
		var longest float32
		for _, l := range lines {
			longest = max(longest, hypoOuter(items[l.start:l.end], dir, mainGap))
		}
		if innerMain.Mode == layout.MeasureAtMost {
			longest = min(longest, innerMain.Value)
		}
		mainSize = b.outer(layout.Number{}, longest, pbMain, b.min.Main(dir), b.max.Main(dir)) - pbMain
	}

	// Phase 4: flexible lengths, then hypothetical cross sizes
	for _, l := range lines {
		resolveFlexibleLengths(items[l.start:l.end], dir, mainSize, mainGap)
	}
	for i := range items {
		items[i].hypoCross = r.measureCross(&items[i], s, base, inner)
	}

	// Phase 5: line and container cross sizes
	innerCross := inner.Cross(dir)
	for li := range lines {
		l := &lines[li]
		for i := l.start; i < l.end; i++ {
			l.cross = max(l.cross, items[i].hypoCross+items[i].margin.Cross(dir))
		}
	}
	singleLine := s.Wrap == layout.NoWrap
	if singleLine && innerCross.Mode == layout.MeasureExactly {
		lines[0].cross = innerCross.Value
	}

	var crossSize float32
	if innerCross.Mode == layout.MeasureExactly {
		crossSize = innerCross.Value
	} else {
		total := crossGap * float32(len(lines)-1)
		for _, l := range lines {
			total += l.cross
		}
		if innerCross.Mode == layout.MeasureAtMost {
			total = min(total, innerCross.Value)
		}
		crossSize = b.outer(layout.Number{}, total, pbCross, b.min.Cross(dir), b.max.Cross(dir)) - pbCross
	}
	if singleLine {
		lines[0].cross = crossSize
	}

	size := layout.FromAxes(dir, mainSize+pbMain, crossSize+pbCross)
	if !full {
		return cache.Entry{Size: size}
	}

	// Phase 6: align-content
	if !singleLine {
		used := crossGap * float32(len(lines)-1)
		for _, l := range lines {
			used += l.cross
		}
		free := crossSize - used
		if s.AlignContent == layout.ContentStretch && free > 0 {
			extra := free / float32(len(lines))
			for li := range lines {
				lines[li].cross += extra
			}
			free = 0
		}
		offset, between := contentSpacing(s.AlignContent, free, len(lines))
		pos := offset
		for li := range lines {
			lines[li].pos = pos
			pos += lines[li].cross + crossGap + between
		}
	}

	// Phase 7: placement within lines
	for _, l := range lines {
		line := items[l.start:l.end]
		placeMain(line, dir, s.JustifyContent, mainSize, mainGap)
		placeCross(line, l, dir, wrapRev, base)
	}

	// Phase 8: recurse into children with their final sizes
	out := layout.Layout{
		Handle:   h,
		Width:    size.Width,
		Height:   size.Height,
		Padding:  b.padding,
		Border:   b.border,
		Children: make([]layout.Layout, len(v.Children)),
	}
	placed := make([]bool, len(v.Children))
	for i := range items {
		it := &items[i]
		mainPos, crossPos := it.mainPos, it.crossPos
		if dir.IsReverse() {
			mainPos = mainSize - mainPos - it.target
		}
		if wrapRev {
			crossPos = crossSize - crossPos - it.cross
		}

		childAvail := layout.FromAxes(dir, layout.Definite(it.target), layout.Definite(it.cross))
		child := *r.node(it.handle, childAvail, base, true).Layout
		pos := layout.FromAxes(dir, mainPos, crossPos)
		child.X, child.Y = relativeOffset(it.style, base, pos.Width, pos.Height)
		out.Children[it.index] = child
		placed[it.index] = true
	}

	// Phase 9: absolute children against the content box
	content := layout.Size[float32]{Width: size.Width - b.pb.Horizontal(), Height: size.Height - b.pb.Vertical()}
	for _, i := range absolutes {
		out.Children[i] = r.absolute(v.Children[i], content)
		placed[i] = true
	}

	for i, c := range v.Children {
		if !placed[i] {
			out.Children[i] = *r.node(c, layout.Size[layout.AvailableSpace]{}, base, true).Layout
		}
	}

	return cache.Entry{Size: size, Layout: &out}
}

// relativeOffset shifts a placed item by its position offsets. Left wins
// over right and top over bottom.
func relativeOffset(s *layout.Style, base layout.Size[layout.Number], x, y float32) (float32, float32) {
	p := s.Position
	switch {
	case p.Left.IsDefined():
		x += p.Left.ResolveOr(base.Width, 0)
	case p.Right.IsDefined():
		x -= p.Right.ResolveOr(base.Width, 0)
	}
	switch {
	case p.Top.IsDefined():
		y += p.Top.ResolveOr(base.Height, 0)
	case p.Bottom.IsDefined():
		y -= p.Bottom.ResolveOr(base.Height, 0)
	}
	return x, y
}
