package measure

import (
	"strings"
	"testing"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"

	flex "github.com/grindlemire/go-flex"
)

func TestCells(t *testing.T) {
	type tc struct {
		text string
		mode flex.MeasureMode
		w    float32
		want flex.Size[float32]
	}

	tests := map[string]tc{
		"empty": {
			text: "",
			want: flex.Size[float32]{},
		},
		"unbounded single line": {
			text: "hello world",
			want: flex.Size[float32]{Width: 11, Height: 1},
		},
		"wraps at word boundary": {
			text: "hello world",
			mode: flex.MeasureAtMost,
			w:    8,
			want: flex.Size[float32]{Width: 5, Height: 2},
		},
		"fits exactly": {
			text: "hello world",
			mode: flex.MeasureExactly,
			w:    11,
			want: flex.Size[float32]{Width: 11, Height: 1},
		},
		"long word overflows": {
			text: "a abcdefgh b",
			mode: flex.MeasureAtMost,
			w:    4,
			want: flex.Size[float32]{Width: 8, Height: 3},
		},
		"explicit newlines": {
			text: "ab\ncdef\n",
			want: flex.Size[float32]{Width: 4, Height: 3},
		},
		"wide runes count two": {
			text: "日本語",
			want: flex.Size[float32]{Width: 6, Height: 1},
		},
		"combining marks are free": {
			text: "e\u0301",
			want: flex.Size[float32]{Width: 1, Height: 1},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := Cells(tt.text)(tt.mode, tt.w, flex.MeasureUndefined, 0)
			if got != tt.want {
				t.Errorf("Cells(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestWrap_MeasuresEachWordOnce(t *testing.T) {
	type tc struct {
		text  string
		limit float32
		want  block
		calls int
	}

	// Eight words per paragraph; adv is called once per word plus once
	// for the space.
	tests := map[string]tc{
		"one line": {
			text:  "a bb c dd e ff g hh",
			limit: 100,
			want:  block{width: 19, lines: 1},
			calls: 9,
		},
		"every word wraps": {
			text:  "a bb c dd e ff g hh",
			limit: 2,
			want:  block{width: 2, lines: 8},
			calls: 9,
		},
		"two paragraphs": {
			text:  "a bb c dd\ne ff g hh",
			limit: 6,
			want:  block{width: 6, lines: 4},
			calls: 9,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			calls := 0
			adv := func(s string) float32 {
				calls++
				return float32(len(s))
			}
			got := wrap(tt.text, flex.MeasureAtMost, tt.limit, adv)
			if got != tt.want {
				t.Errorf("wrap = %+v, want %+v", got, tt.want)
			}
			if calls != tt.calls {
				t.Errorf("adv called %d times, want %d", calls, tt.calls)
			}
		})
	}
}

func TestWrap_LinearInWords(t *testing.T) {
	text := strings.Repeat("word ", 2000)
	calls := 0
	adv := func(s string) float32 {
		calls++
		return float32(len(s))
	}
	got := wrap(text, flex.MeasureAtMost, 1e6, adv)
	if got.lines != 1 || got.width != 5*2000-1 {
		t.Errorf("wrap = %+v, want one line of %d", got, 5*2000-1)
	}
	if calls != 2001 {
		t.Errorf("adv called %d times for 2000 words, want 2001", calls)
	}
}

func TestFace(t *testing.T) {
	type tc struct {
		mode flex.MeasureMode
		w    float32
		want flex.Size[float32]
	}

	// basicfont.Face7x13 advances every glyph by 7 and has 13 pixel lines.
	tests := map[string]tc{
		"unbounded": {want: flex.Size[float32]{Width: 7 * 9, Height: 13}},
		"wrapped":   {mode: flex.MeasureAtMost, w: 40, want: flex.Size[float32]{Width: 7 * 4, Height: 26}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := Face(basicfont.Face7x13, "abcd efgh")(tt.mode, tt.w, flex.MeasureUndefined, 0)
			if got != tt.want {
				t.Errorf("Face = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestShaper(t *testing.T) {
	s, err := NewShaper(goregular.TTF, 16)
	if err != nil {
		t.Fatalf("NewShaper: %v", err)
	}
	if s.LineHeight() <= 16 {
		t.Errorf("line height %v should exceed the em size", s.LineHeight())
	}

	text := "shaped text wraps"
	m := s.Measure(text)
	one := m(flex.MeasureUndefined, 0, flex.MeasureUndefined, 0)
	if one.Height != s.LineHeight() || one.Width <= 0 {
		t.Fatalf("unbounded = %+v", one)
	}
	if want := s.Advance(text); one.Width != want {
		t.Errorf("unbounded width %v, want advance %v", one.Width, want)
	}

	narrow := m(flex.MeasureAtMost, one.Width/2, flex.MeasureUndefined, 0)
	if narrow.Height < 2*s.LineHeight() {
		t.Errorf("narrow height %v, want at least two lines", narrow.Height)
	}
	if narrow.Width > one.Width/2 {
		t.Errorf("narrow width %v exceeds bound %v", narrow.Width, one.Width/2)
	}

	if _, err := NewShaper([]byte("not a font"), 16); err == nil {
		t.Error("expected error for garbage font data")
	}
	if _, err := NewShaper(goregular.TTF, 0); err == nil {
		t.Error("expected error for zero size")
	}
}

// TestMeasureInEngine lays out text leaves inside a column.
func TestMeasureInEngine(t *testing.T) {
	e, err := flex.New()
	if err != nil {
		t.Fatal(err)
	}
	title, err := e.NewLeaf(flex.DefaultStyle(), Cells("Title"))
	if err != nil {
		t.Fatal(err)
	}
	body, err := e.NewLeaf(flex.DefaultStyle(), Cells("the quick brown fox jumps"))
	if err != nil {
		t.Fatal(err)
	}
	col := flex.DefaultStyle()
	col.Direction = flex.Column
	root, err := e.NewNode(col, title, body)
	if err != nil {
		t.Fatal(err)
	}

	l, err := e.ComputeLayout(root, flex.Definite(10), flex.Unbounded())
	if err != nil {
		t.Fatal(err)
	}
	if l.Height != 4 {
		t.Errorf("root height = %v, want 4 (title + three body lines)", l.Height)
	}
	if b := l.Children[1]; b.Y != 1 || b.Height != 3 || b.Width != 10 {
		t.Errorf("body = y %v, %vx%v", b.Y, b.Width, b.Height)
	}
}
