package measure

import (
	"unicode"

	"golang.org/x/text/width"

	flex "github.com/grindlemire/go-flex"
)

// Cells measures text in terminal cells: one cell per rune, two for East
// Asian wide and fullwidth runes, none for combining marks. Each line is
// one cell high.
func Cells(text string) flex.MeasureFunc {
	return func(wm flex.MeasureMode, w float32, _ flex.MeasureMode, _ float32) flex.Size[float32] {
		return wrap(text, wm, w, cellWidth).size(1)
	}
}

func cellWidth(s string) float32 {
	var n float32
	for _, r := range s {
		n += runeCells(r)
	}
	return n
}

func runeCells(r rune) float32 {
	if unicode.Is(unicode.Mn, r) || unicode.IsControl(r) {
		return 0
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}

// RuneWidth returns the number of terminal cells r occupies.
func RuneWidth(r rune) int {
	return int(runeCells(r))
}
