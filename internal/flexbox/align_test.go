package flexbox

import (
	"testing"

	"github.com/grindlemire/go-flex/internal/layout"
)

func TestCompute_JustifyModes(t *testing.T) {
	type tc struct {
		justify layout.Justify
		xs      [3]float32
	}

	tests := map[string]tc{
		"start":         {justify: layout.JustifyStart, xs: [3]float32{0, 20, 40}},
		"end":           {justify: layout.JustifyEnd, xs: [3]float32{40, 60, 80}},
		"center":        {justify: layout.JustifyCenter, xs: [3]float32{20, 40, 60}},
		"space between": {justify: layout.JustifySpaceBetween, xs: [3]float32{0, 40, 80}},
		"space around":  {justify: layout.JustifySpaceAround, xs: [3]float32{6.6667, 40, 73.3333}},
		"space evenly":  {justify: layout.JustifySpaceEvenly, xs: [3]float32{10, 40, 70}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t)
			var kids []layout.Handle
			for range 3 {
				kids = append(kids, f.node(styled(width(20), height(10))))
			}
			root := f.node(styled(width(100), height(10), func(s *layout.Style) {
				s.JustifyContent = tt.justify
			}), kids...)

			rects := absRects(f.compute(root, layout.Unbounded(), layout.Unbounded()))
			for i, k := range kids {
				if got := rects[k].X; !near(got, tt.xs[i]) {
					t.Errorf("child %d x = %v, want %v", i, got, tt.xs[i])
				}
			}
		})
	}
}

func TestCompute_JustifyOverflowFallsBackToStart(t *testing.T) {
	type tc struct {
		justify layout.Justify
		x       float32
	}

	tests := map[string]tc{
		"space between": {justify: layout.JustifySpaceBetween, x: 0},
		"space around":  {justify: layout.JustifySpaceAround, x: 0},
		"space evenly":  {justify: layout.JustifySpaceEvenly, x: 0},
		"center":        {justify: layout.JustifyCenter, x: -10},
		"end":           {justify: layout.JustifyEnd, x: -20},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t)
			wide := f.node(styled(width(70), height(10), func(s *layout.Style) { s.FlexShrink = 0 }))
			root := f.node(styled(width(50), height(10), func(s *layout.Style) {
				s.JustifyContent = tt.justify
			}), wide)

			rects := absRects(f.compute(root, layout.Unbounded(), layout.Unbounded()))
			if got := rects[wide].X; got != tt.x {
				t.Errorf("x = %v, want %v", got, tt.x)
			}
		})
	}
}

func TestCompute_AlignModes(t *testing.T) {
	type tc struct {
		align  layout.Align
		y      float32
		height float32
	}

	tests := map[string]tc{
		"start":   {align: layout.AlignStart, y: 0, height: 10},
		"end":     {align: layout.AlignEnd, y: 40, height: 10},
		"center":  {align: layout.AlignCenter, y: 20, height: 10},
		"stretch": {align: layout.AlignStretch, y: 0, height: 50},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t)
			child := f.leaf(styled(width(20)), func(layout.MeasureMode, float32, layout.MeasureMode, float32) layout.Size[float32] {
				return layout.Size[float32]{Width: 20, Height: 10}
			})
			root := f.node(styled(width(100), height(50), func(s *layout.Style) {
				s.AlignItems = tt.align
			}), child)

			rects := absRects(f.compute(root, layout.Unbounded(), layout.Unbounded()))
			if got := rects[child]; got.Y != tt.y || got.Height != tt.height {
				t.Errorf("child y/height = %v/%v, want %v/%v", got.Y, got.Height, tt.y, tt.height)
			}
		})
	}
}

func TestCompute_AlignSelfOverridesAlignItems(t *testing.T) {
	f := newFixture(t)
	inherit := f.node(styled(width(10), height(10)))
	override := f.node(styled(width(10), height(10), func(s *layout.Style) {
		s.AlignSelf = layout.AlignPtr(layout.AlignEnd)
	}))
	root := f.node(styled(width(100), height(50), func(s *layout.Style) {
		s.AlignItems = layout.AlignCenter
	}), inherit, override)

	rects := absRects(f.compute(root, layout.Unbounded(), layout.Unbounded()))
	expectRect(t, rects, "inherit", inherit, layout.NewRect(0, 20, 10, 10))
	expectRect(t, rects, "override", override, layout.NewRect(10, 40, 10, 10))
}

func TestCompute_AutoMargins(t *testing.T) {
	type tc struct {
		margin layout.Edges
		want   layout.Rect
	}

	auto := layout.Auto()
	zero := layout.Points(0)
	tests := map[string]tc{
		"center main": {
			margin: layout.EdgeTRBL(zero, auto, zero, auto),
			want:   layout.NewRect(40, 0, 20, 10),
		},
		"push to end": {
			margin: layout.EdgeTRBL(zero, zero, zero, auto),
			want:   layout.NewRect(80, 0, 20, 10),
		},
		"center cross": {
			margin: layout.EdgeTRBL(auto, zero, auto, zero),
			want:   layout.NewRect(0, 20, 20, 10),
		},
		"push to cross end": {
			margin: layout.EdgeTRBL(auto, zero, zero, zero),
			want:   layout.NewRect(0, 40, 20, 10),
		},
		"all auto centers both": {
			margin: layout.EdgeAll(auto),
			want:   layout.NewRect(40, 20, 20, 10),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t)
			child := f.node(styled(width(20), height(10), func(s *layout.Style) { s.Margin = tt.margin }))
			root := f.node(styled(width(100), height(50)), child)

			rects := absRects(f.compute(root, layout.Unbounded(), layout.Unbounded()))
			expectRect(t, rects, "child", child, tt.want)
		})
	}
}

func TestCompute_Wrap(t *testing.T) {
	f := newFixture(t)
	var kids []layout.Handle
	for range 3 {
		kids = append(kids, f.node(styled(width(40), height(10))))
	}
	root := f.node(styled(func(s *layout.Style) {
		s.Wrap = layout.Wrap
		s.Gap = layout.Size[layout.Value]{Width: layout.Points(10), Height: layout.Points(5)}
	}), kids...)

	l := f.compute(root, layout.Definite(100), layout.Unbounded())
	rects := absRects(l)

	expectRect(t, rects, "root", root, layout.NewRect(0, 0, 100, 25))
	expectRect(t, rects, "first", kids[0], layout.NewRect(0, 0, 40, 10))
	expectRect(t, rects, "second", kids[1], layout.NewRect(50, 0, 40, 10))
	expectRect(t, rects, "third", kids[2], layout.NewRect(0, 15, 40, 10))
}

func TestCompute_NoWrapWithoutBound(t *testing.T) {
	// Wrapping needs a bounded main axis; unbounded keeps one line.
	f := newFixture(t)
	var kids []layout.Handle
	for range 3 {
		kids = append(kids, f.node(styled(width(40), height(10))))
	}
	root := f.node(styled(func(s *layout.Style) { s.Wrap = layout.Wrap }), kids...)

	rects := absRects(f.compute(root, layout.Unbounded(), layout.Unbounded()))
	expectRect(t, rects, "root", root, layout.NewRect(0, 0, 120, 10))
	expectRect(t, rects, "third", kids[2], layout.NewRect(80, 0, 40, 10))
}

func TestCompute_WrapReverse(t *testing.T) {
	f := newFixture(t)
	var kids []layout.Handle
	for range 3 {
		kids = append(kids, f.node(styled(width(40), height(10))))
	}
	root := f.node(styled(width(100), height(20), func(s *layout.Style) {
		s.Wrap = layout.WrapReverse
	}), kids...)

	rects := absRects(f.compute(root, layout.Unbounded(), layout.Unbounded()))
	expectRect(t, rects, "first", kids[0], layout.NewRect(0, 10, 40, 10))
	expectRect(t, rects, "second", kids[1], layout.NewRect(40, 10, 40, 10))
	expectRect(t, rects, "third", kids[2], layout.NewRect(0, 0, 40, 10))
}

func TestCompute_AlignContent(t *testing.T) {
	type tc struct {
		align layout.AlignContent
		ys    [2]float32
	}

	tests := map[string]tc{
		"start":         {align: layout.ContentStart, ys: [2]float32{0, 10}},
		"end":           {align: layout.ContentEnd, ys: [2]float32{80, 90}},
		"center":        {align: layout.ContentCenter, ys: [2]float32{40, 50}},
		"stretch":       {align: layout.ContentStretch, ys: [2]float32{0, 50}},
		"space between": {align: layout.ContentSpaceBetween, ys: [2]float32{0, 90}},
		"space around":  {align: layout.ContentSpaceAround, ys: [2]float32{20, 70}},
		"space evenly":  {align: layout.ContentSpaceEvenly, ys: [2]float32{26.6667, 63.3333}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t)
			a := f.node(styled(width(60), height(10)))
			b := f.node(styled(width(60), height(10)))
			root := f.node(styled(width(100), height(100), func(s *layout.Style) {
				s.Wrap = layout.Wrap
				s.AlignContent = tt.align
			}), a, b)

			rects := absRects(f.compute(root, layout.Unbounded(), layout.Unbounded()))
			if got := rects[a].Y; !near(got, tt.ys[0]) {
				t.Errorf("first line y = %v, want %v", got, tt.ys[0])
			}
			if got := rects[b].Y; !near(got, tt.ys[1]) {
				t.Errorf("second line y = %v, want %v", got, tt.ys[1])
			}
		})
	}
}

func TestCompute_AlignContentStretchGrowsItems(t *testing.T) {
	f := newFixture(t)
	a := f.node(styled(width(60)))
	b := f.node(styled(width(60)))
	root := f.node(styled(width(100), height(100), func(s *layout.Style) { s.Wrap = layout.Wrap }), a, b)

	rects := absRects(f.compute(root, layout.Unbounded(), layout.Unbounded()))
	expectRect(t, rects, "a", a, layout.NewRect(0, 0, 60, 50))
	expectRect(t, rects, "b", b, layout.NewRect(0, 50, 60, 50))
}

func TestCompute_PaddingBorderMargin(t *testing.T) {
	f := newFixture(t)
	child := f.node(styled(grow(1), func(s *layout.Style) {
		s.Margin = layout.EdgeSymmetric(layout.Points(0), layout.Points(5))
	}))
	root := f.node(styled(width(100), height(100), func(s *layout.Style) {
		s.Padding = layout.EdgeAll(layout.Points(10))
		s.Border = layout.EdgeAll(layout.Points(2))
	}), child)

	l := f.compute(root, layout.Unbounded(), layout.Unbounded())
	rects := absRects(l)

	expectRect(t, rects, "child", child, layout.NewRect(17, 12, 66, 76))
	if cr := l.ContentRect(); cr != layout.NewRect(12, 12, 76, 76) {
		t.Errorf("ContentRect() = %+v", cr)
	}
	if l.Children[0].X != 5 || l.Children[0].Y != 0 {
		t.Errorf("child offset in content box = (%v, %v), want (5, 0)", l.Children[0].X, l.Children[0].Y)
	}
}

func TestCompute_Percent(t *testing.T) {
	type tc struct {
		availW, availH layout.AvailableSpace
		parent         layout.Style
		child          layout.Style
		want           layout.Rect
	}

	tests := map[string]tc{
		"percent of definite parent": {
			availW: layout.Unbounded(), availH: layout.Unbounded(),
			parent: styled(width(200), height(100)),
			child: styled(func(s *layout.Style) {
				s.Size.Width = layout.Percent(50)
				s.Size.Height = layout.Percent(25)
			}),
			want: layout.NewRect(0, 0, 100, 25),
		},
		"percent uses content box": {
			availW: layout.Unbounded(), availH: layout.Unbounded(),
			parent: styled(width(220), height(100), func(s *layout.Style) {
				s.Padding = layout.EdgeAll(layout.Points(10))
			}),
			child: styled(func(s *layout.Style) {
				s.Size.Width = layout.Percent(50)
				s.Size.Height = layout.Points(10)
			}),
			want: layout.NewRect(10, 10, 100, 10),
		},
		"percent of undefined base is auto": {
			availW: layout.Unbounded(), availH: layout.Unbounded(),
			parent: layout.DefaultStyle(),
			child: styled(height(10), func(s *layout.Style) {
				s.Size.Width = layout.Percent(50)
			}),
			want: layout.NewRect(0, 0, 0, 10),
		},
		"root percent resolves against available": {
			availW: layout.Definite(400), availH: layout.Definite(100),
			parent: styled(func(s *layout.Style) {
				s.Size.Width = layout.Percent(50)
				s.Size.Height = layout.Percent(50)
			}),
			child: styled(grow(1)),
			want:  layout.NewRect(0, 0, 200, 50),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t)
			child := f.node(tt.child)
			root := f.node(tt.parent, child)

			rects := absRects(f.compute(root, tt.availW, tt.availH))
			expectRect(t, rects, "child", child, tt.want)
		})
	}
}
