// Package measure provides measure callbacks for text leaves.
//
// Each constructor returns a flex.MeasureFunc that reports the size of a
// string laid out in lines: words are wrapped greedily when the width is
// bounded, explicit newlines always break, and a word wider than the
// bound overflows on its own line.
//
//	Cells     terminal cells, wide runes count two
//	Face      advances from a golang.org/x/image/font.Face
//	Shaper    HarfBuzz shaping through go-text/typesetting
package measure
