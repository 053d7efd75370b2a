package measure

import (
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	flex "github.com/grindlemire/go-flex"
)

// Face measures text with the advances and line height of f. Sizes are in
// the face's pixels. A font.Face is not safe for concurrent use, so f must
// not be shared with other goroutines while layouts are computed.
func Face(f font.Face, text string) flex.MeasureFunc {
	lineHeight := fixedToFloat(f.Metrics().Height)
	adv := func(s string) float32 {
		return fixedToFloat(font.MeasureString(f, s))
	}
	return func(wm flex.MeasureMode, w float32, _ flex.MeasureMode, _ float32) flex.Size[float32] {
		return wrap(text, wm, w, adv).size(lineHeight)
	}
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

func floatToFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}
