package flexbox

import (
	"testing"

	"github.com/grindlemire/go-flex/internal/cache"
	"github.com/grindlemire/go-flex/internal/layout"
	"github.com/grindlemire/go-flex/internal/tree"
)

// fixture bundles a tree, its cache and a resolver for one test.
type fixture struct {
	t     *testing.T
	tree  *tree.Tree
	cache *cache.Store
	r     *Resolver
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	tr := tree.New(16)
	c := cache.New(cache.DefaultCapacity)
	return &fixture{t: t, tree: tr, cache: c, r: New(tr, c, opts...)}
}

// styled returns DefaultStyle with mods applied in order.
func styled(mods ...func(*layout.Style)) layout.Style {
	s := layout.DefaultStyle()
	for _, m := range mods {
		m(&s)
	}
	return s
}

func width(v float32) func(*layout.Style) {
	return func(s *layout.Style) { s.Size.Width = layout.Points(v) }
}

func height(v float32) func(*layout.Style) {
	return func(s *layout.Style) { s.Size.Height = layout.Points(v) }
}

func grow(v float32) func(*layout.Style) {
	return func(s *layout.Style) { s.FlexGrow = v }
}

func direction(d layout.FlexDirection) func(*layout.Style) {
	return func(s *layout.Style) { s.Direction = d }
}

func (f *fixture) node(s layout.Style, kids ...layout.Handle) layout.Handle {
	f.t.Helper()
	h, err := f.tree.NewNode(s, kids...)
	if err != nil {
		f.t.Fatalf("NewNode: %v", err)
	}
	return h
}

func (f *fixture) leaf(s layout.Style, m layout.MeasureFunc) layout.Handle {
	f.t.Helper()
	h, err := f.tree.NewLeaf(s, m)
	if err != nil {
		f.t.Fatalf("NewLeaf: %v", err)
	}
	return h
}

func (f *fixture) compute(root layout.Handle, w, h layout.AvailableSpace) layout.Layout {
	f.t.Helper()
	l, err := f.r.Compute(root, layout.Size[layout.AvailableSpace]{Width: w, Height: h})
	if err != nil {
		f.t.Fatalf("Compute: %v", err)
	}
	return l
}

// absRects maps every handle in l to its border box in root coordinates.
func absRects(l layout.Layout) map[layout.Handle]layout.Rect {
	out := make(map[layout.Handle]layout.Rect)
	l.Walk(func(n *layout.Layout, x, y float32) bool {
		out[n.Handle] = layout.NewRect(x, y, n.Width, n.Height)
		return true
	})
	return out
}

const tolerance = 1e-3

func near(a, b float32) bool {
	d := a - b
	return d < tolerance && d > -tolerance
}

func rectNear(a, b layout.Rect) bool {
	return near(a.X, b.X) && near(a.Y, b.Y) && near(a.Width, b.Width) && near(a.Height, b.Height)
}

// expectRect checks the absolute border box of h.
func expectRect(t *testing.T, rects map[layout.Handle]layout.Rect, name string, h layout.Handle, want layout.Rect) {
	t.Helper()
	got, ok := rects[h]
	if !ok {
		t.Errorf("%s: no layout for %v", name, h)
		return
	}
	if !rectNear(got, want) {
		t.Errorf("%s = (%v, %v, %vx%v), want (%v, %v, %vx%v)", name,
			got.X, got.Y, got.Width, got.Height, want.X, want.Y, want.Width, want.Height)
	}
}

// textMeasure reports a run of n cells of width 1, wrapped to the
// available width, one unit per line.
func textMeasure(n float32, calls *int) layout.MeasureFunc {
	return func(wm layout.MeasureMode, w float32, _ layout.MeasureMode, _ float32) layout.Size[float32] {
		if calls != nil {
			*calls++
		}
		if wm == layout.MeasureUndefined || w >= n {
			return layout.Size[float32]{Width: n, Height: 1}
		}
		w = max(w, 1)
		lines := float32(int((n + w - 1) / w))
		return layout.Size[float32]{Width: w, Height: lines}
	}
}
