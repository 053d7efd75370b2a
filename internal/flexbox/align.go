package flexbox

import "github.com/grindlemire/go-flex/internal/layout"

// justifySpacing returns the leading offset and the extra space between
// items for a line with the given free space. The space-* modes fall back
// to start when there is no free space to share.
func justifySpacing(justify layout.Justify, free float32, count int) (offset, between float32) {
	if count == 0 {
		return 0, 0
	}
	n := float32(count)

	switch justify {
	case layout.JustifyEnd:
		return free, 0
	case layout.JustifyCenter:
		return free / 2, 0
	case layout.JustifySpaceBetween:
		if free <= 0 || count == 1 {
			return 0, 0
		}
		return 0, free / (n - 1)
	case layout.JustifySpaceAround:
		if free <= 0 {
			return 0, 0
		}
		return free / n / 2, free / n
	case layout.JustifySpaceEvenly:
		if free <= 0 {
			return 0, 0
		}
		return free / (n + 1), free / (n + 1)
	default: // JustifyStart
		return 0, 0
	}
}

// contentSpacing is justifySpacing for whole lines on the cross axis.
// Stretch places lines like start; the lines themselves have grown.
func contentSpacing(align layout.AlignContent, free float32, count int) (offset, between float32) {
	switch align {
	case layout.ContentEnd:
		return justifySpacing(layout.JustifyEnd, free, count)
	case layout.ContentCenter:
		return justifySpacing(layout.JustifyCenter, free, count)
	case layout.ContentSpaceBetween:
		return justifySpacing(layout.JustifySpaceBetween, free, count)
	case layout.ContentSpaceAround:
		return justifySpacing(layout.JustifySpaceAround, free, count)
	case layout.ContentSpaceEvenly:
		return justifySpacing(layout.JustifySpaceEvenly, free, count)
	default: // ContentStart, ContentStretch
		return 0, 0
	}
}

// alignOffset returns the offset of an item inside its line on the cross axis.
func alignOffset(align layout.Align, free float32) float32 {
	switch align {
	case layout.AlignEnd:
		return free
	case layout.AlignCenter:
		return free / 2
	default: // AlignStart, AlignStretch
		return 0
	}
}

// placeMain assigns logical main positions to the items of one line.
// Auto margins absorb positive free space before justify-content applies.
func placeMain(items []flexItem, dir layout.FlexDirection, justify layout.Justify, mainSize, gap float32) {
	used := gap * float32(max(len(items)-1, 0))
	autos := 0
	for i := range items {
		it := &items[i]
		used += it.target + it.margin.Main(dir)
		for _, a := range it.autoMain {
			if a {
				autos++
			}
		}
	}
	free := mainSize - used

	var perAuto float32
	if free > 0 && autos > 0 {
		perAuto = free / float32(autos)
		free = 0
	}
	offset, between := justifySpacing(justify, free, len(items))

	pos := offset
	for i := range items {
		it := &items[i]
		if it.autoMain[0] {
			pos += perAuto
		}
		pos += it.margin.MainStart(dir)
		it.mainPos = pos
		pos += it.target + it.margin.MainEnd(dir)
		if it.autoMain[1] {
			pos += perAuto
		}
		pos += gap + between
	}
}

// placeCross sizes stretched items and assigns logical cross positions
// within one line.
func placeCross(items []flexItem, line flexLine, dir layout.FlexDirection, wrapRev bool, base layout.Size[layout.Number]) {
	for i := range items {
		it := &items[i]
		it.cross = it.hypoCross
		if it.stretches(dir, base) {
			it.cross = it.clampCross(dir, line.cross-it.margin.Cross(dir))
		}

		free := line.cross - it.cross - it.margin.Cross(dir)
		var off float32
		switch {
		case it.autoX[0] && it.autoX[1]:
			off = max(free, 0) / 2
		case it.autoX[0]:
			off = max(free, 0)
		case it.autoX[1]:
			off = 0
		default:
			off = alignOffset(it.align, free)
		}
		it.crossPos = line.pos + it.margin.CrossStart(dir, wrapRev) + off
	}
}
