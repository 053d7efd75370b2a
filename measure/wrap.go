package measure

import (
	"strings"

	flex "github.com/grindlemire/go-flex"
)

// block is text measured as a stack of lines.
type block struct {
	width float32
	lines int
}

// wrap breaks text into lines no wider than limit (when bounded) and
// returns the widest line and the line count. adv measures a run that
// contains no newline. A wrapped line's width is the sum of its word and
// space advances, so each word is measured once.
func wrap(text string, mode flex.MeasureMode, limit float32, adv func(string) float32) block {
	if text == "" {
		return block{}
	}
	bounded := mode != flex.MeasureUndefined

	var (
		b     block
		space float32
		gap   bool
	)
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 || !bounded {
			b.width = max(b.width, adv(para))
			b.lines++
			continue
		}
		if !gap {
			space, gap = adv(" "), true
		}

		line := adv(words[0])
		for _, w := range words[1:] {
			ww := adv(w)
			if line+space+ww > limit {
				b.width = max(b.width, line)
				b.lines++
				line = ww
				continue
			}
			line += space + ww
		}
		b.width = max(b.width, line)
		b.lines++
	}
	return b
}

// size turns a block into a content size with the given line height.
func (b block) size(lineHeight float32) flex.Size[float32] {
	return flex.Size[float32]{Width: b.width, Height: float32(b.lines) * lineHeight}
}
