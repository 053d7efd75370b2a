package flexbox

import "github.com/grindlemire/go-flex/internal/layout"

// epsilon absorbs float error when deciding whether an item still fits.
const epsilon = 1e-4

// flexLine is a run of items [start, end) sharing one cross-axis band.
type flexLine struct {
	start, end int
	cross      float32 // line cross size
	pos        float32 // logical offset from cross-start
}

// breakLines groups items into lines. Items only wrap when wrapping is
// enabled and the main axis has a bound; otherwise there is one line.
func breakLines(items []flexItem, dir layout.FlexDirection, wrap bool, limit layout.AvailableSpace, gap float32) []flexLine {
	if !wrap || !limit.IsBounded() || len(items) == 0 {
		return []flexLine{{start: 0, end: len(items)}}
	}

	var lines []flexLine
	start := 0
	var used float32
	for i := range items {
		outer := items[i].hypo + items[i].margin.Main(dir)
		if i > start && used+gap+outer > limit.Value+epsilon {
			lines = append(lines, flexLine{start: start, end: i})
			start = i
			used = 0
		}
		if i > start {
			used += gap
		}
		used += outer
	}
	return append(lines, flexLine{start: start, end: len(items)})
}

// hypoOuter is the main size the line wants before flexing.
func hypoOuter(items []flexItem, dir layout.FlexDirection, gap float32) float32 {
	var sum float32
	for i := range items {
		sum += items[i].hypo + items[i].margin.Main(dir)
	}
	if n := len(items); n > 1 {
		sum += gap * float32(n-1)
	}
	return sum
}

// resolveFlexibleLengths sets target on every item of one line: free space
// is handed out by grow or shrink factor, items that hit a min or max are
// frozen at it, and the rest is redistributed. Each round freezes at least
// one item, so the loop is bounded by the item count.
func resolveFlexibleLengths(items []flexItem, dir layout.FlexDirection, mainSize, gap float32) {
	n := len(items)
	if n == 0 {
		return
	}
	gaps := gap * float32(n-1)
	growing := hypoOuter(items, dir, gap) < mainSize

	factor := func(it *flexItem) float32 {
		if growing {
			return it.style.FlexGrow
		}
		return it.style.FlexShrink
	}

	for i := range items {
		it := &items[i]
		it.frozen = false
		it.target = it.basis
		if factor(it) == 0 || (growing && it.basis > it.hypo) || (!growing && it.basis < it.hypo) {
			it.frozen = true
			it.target = it.hypo
		}
	}

	free := func() float32 {
		used := gaps
		for i := range items {
			it := &items[i]
			used += it.margin.Main(dir)
			if it.frozen {
				used += it.target
			} else {
				used += it.basis
			}
		}
		return mainSize - used
	}
	initialFree := free()

	for range n + 1 {
		var sumFactors, sumScaled float32
		unfrozen := 0
		for i := range items {
			if it := &items[i]; !it.frozen {
				unfrozen++
				sumFactors += factor(it)
				sumScaled += it.style.FlexShrink * it.basis
			}
		}
		if unfrozen == 0 {
			return
		}

		remaining := free()
		if sumFactors < 1 {
			if scaled := initialFree * sumFactors; abs(scaled) < abs(remaining) {
				remaining = scaled
			}
		}

		var total float32
		for i := range items {
			it := &items[i]
			if it.frozen {
				continue
			}
			switch {
			case growing && sumFactors > 0:
				it.target = it.basis + remaining*it.style.FlexGrow/sumFactors
			case !growing && sumScaled > 0:
				it.target = it.basis + remaining*it.style.FlexShrink*it.basis/sumScaled
			default:
				it.target = it.basis
			}
			clamped := it.clampMain(dir, it.target)
			it.violation = clamped - it.target
			it.target = clamped
			total += it.violation
		}

		for i := range items {
			it := &items[i]
			if it.frozen {
				continue
			}
			switch {
			case total > 0:
				it.frozen = it.violation > 0
			case total < 0:
				it.frozen = it.violation < 0
			default:
				it.frozen = true
			}
		}
	}
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
