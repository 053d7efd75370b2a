package measure

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	flex "github.com/grindlemire/go-flex"
)

// Shaper measures text with HarfBuzz shaping, so kerning and ligatures
// count toward the width. Line height comes from the font's horizontal
// metrics at the shaper's size.
//
// A Shaper keeps mutable shaping buffers and is not safe for concurrent
// use. Give each engine its own.
type Shaper struct {
	face       *font.Face
	size       fixed.Int26_6
	lineHeight float32
	lang       language.Language
	hb         shaping.HarfbuzzShaper
}

// NewShaper parses an OpenType or TrueType font and prepares it for
// measuring at size pixels per em.
func NewShaper(ttf []byte, size float32) (*Shaper, error) {
	if !(size > 0) {
		return nil, fmt.Errorf("font size must be positive, got %v", size)
	}
	face, err := font.ParseTTF(bytes.NewReader(ttf))
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	sf, err := opentype.Parse(ttf)
	if err != nil {
		return nil, fmt.Errorf("parse font metrics: %w", err)
	}
	of, err := opentype.NewFace(sf, &opentype.FaceOptions{Size: float64(size), DPI: 72})
	if err != nil {
		return nil, fmt.Errorf("open face: %w", err)
	}
	defer of.Close()

	return &Shaper{
		face:       face,
		size:       floatToFixed(size),
		lineHeight: fixedToFloat(of.Metrics().Height),
		lang:       language.NewLanguage("en"),
	}, nil
}

// LineHeight returns the height of one line.
func (s *Shaper) LineHeight() float32 {
	return s.lineHeight
}

// Advance returns the shaped width of a single line of text.
func (s *Shaper) Advance(text string) float32 {
	if text == "" {
		return 0
	}
	runes := []rune(text)
	out := s.hb.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      s.face,
		Size:      s.size,
		Script:    scriptOf(runes),
		Language:  s.lang,
	})
	return fixedToFloat(out.Advance)
}

// Measure returns a measure callback for text.
func (s *Shaper) Measure(text string) flex.MeasureFunc {
	return func(wm flex.MeasureMode, w float32, _ flex.MeasureMode, _ float32) flex.Size[float32] {
		return wrap(text, wm, w, s.Advance).size(s.lineHeight)
	}
}

// scriptOf returns the script of the first non-space rune.
func scriptOf(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
