package flex

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/sync/errgroup"
)

var handleOpt = cmp.AllowUnexported(Handle{})

func mustEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	e, err := New(opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func mustNode(t *testing.T, e *Engine, s Style, kids ...Handle) Handle {
	t.Helper()
	h, err := e.NewNode(s, kids...)
	if err != nil {
		t.Fatalf("NewNode: %v", err)
	}
	return h
}

func sized(w, h float32) Style {
	s := DefaultStyle()
	s.Size = Size[Value]{Width: Points(w), Height: Points(h)}
	return s
}

func TestNew_Options(t *testing.T) {
	type tc struct {
		opts    []Option
		wantErr bool
	}

	tests := map[string]tc{
		"defaults":            {},
		"cache size 1":        {opts: []Option{WithCacheSize(1)}},
		"cache size 16":       {opts: []Option{WithCacheSize(16)}},
		"cache size 0":        {opts: []Option{WithCacheSize(0)}, wantErr: true},
		"cache size 17":       {opts: []Option{WithCacheSize(17)}, wantErr: true},
		"pixel rounding":      {opts: []Option{WithRounding(RoundPixelGrid), WithPointScaleFactor(2)}},
		"unknown rounding":    {opts: []Option{WithRounding(Rounding(9))}, wantErr: true},
		"zero scale":          {opts: []Option{WithPointScaleFactor(0)}, wantErr: true},
		"nil logger":          {opts: []Option{WithLogger(nil)}, wantErr: true},
		"negative capacity":   {opts: []Option{WithCapacity(-1)}, wantErr: true},
		"capacity and logger": {opts: []Option{WithCapacity(8), WithLogger(zap.NewNop())}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e, err := New(tt.opts...)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if e.Len() != 0 {
				t.Errorf("new engine has %d nodes", e.Len())
			}
		})
	}
}

// TestEngine_MaxOverridesSize is the motivating case: a node asking for
// 200 high with a max of 100 ends up 100 high.
func TestEngine_MaxOverridesSize(t *testing.T) {
	e := mustEngine(t)
	s := sized(50, 200)
	s.MaxSize.Height = Points(100)
	child := mustNode(t, e, s)
	root := mustNode(t, e, DefaultStyle(), child)

	l, err := e.ComputeLayout(root, Unbounded(), Unbounded())
	if err != nil {
		t.Fatal(err)
	}
	if got := l.Children[0].Height; got != 100 {
		t.Errorf("child height = %v, want 100", got)
	}
	if l.Height != 100 {
		t.Errorf("root height = %v, want 100", l.Height)
	}
}

func TestEngine_Errors(t *testing.T) {
	e := mustEngine(t)
	a := mustNode(t, e, DefaultStyle())
	root := mustNode(t, e, DefaultStyle(), a)

	bad := DefaultStyle()
	bad.FlexGrow = -1
	err := e.SetStyle(root, bad)
	var dim *DimensionError
	if !errors.As(err, &dim) || dim.Field != "flex_grow" {
		t.Errorf("SetStyle = %v, want DimensionError on flex_grow", err)
	}
	if s, _ := e.Style(root); s.FlexGrow != 0 {
		t.Error("rejected style replaced the previous one")
	}

	if err := e.AddChild(a, root); !errors.Is(err, ErrCyclicChild) {
		t.Errorf("AddChild cycle = %v, want ErrCyclicChild", err)
	}
	if err := e.AddChild(a, a); !errors.Is(err, ErrChildOfSelf) {
		t.Errorf("AddChild self = %v, want ErrChildOfSelf", err)
	}
	if _, err := e.ComputeLayout(Handle{}, Unbounded(), Unbounded()); !errors.Is(err, ErrInvalidHandle) {
		t.Errorf("ComputeLayout zero handle = %v, want ErrInvalidHandle", err)
	}

	// The engine is still usable.
	if _, err := e.ComputeLayout(root, Definite(10), Definite(10)); err != nil {
		t.Errorf("ComputeLayout after rejected ops: %v", err)
	}
}

func TestEngine_ComputeLayoutAvailableSpace(t *testing.T) {
	type tc struct {
		width, height AvailableSpace
		field         string
	}

	nan := float32(math.NaN())
	inf := float32(math.Inf(1))

	tests := map[string]tc{
		"unbounded":          {width: Unbounded(), height: Unbounded()},
		"definite":           {width: Definite(80), height: AtMost(24)},
		"zero":               {width: Definite(0), height: Definite(0)},
		"NaN width":          {width: Definite(nan), height: Unbounded(), field: "available.width"},
		"+Inf at-most width": {width: AtMost(inf), height: Definite(10), field: "available.width"},
		"-Inf height":        {width: Definite(10), height: Definite(-inf), field: "available.height"},
		"negative height":    {width: Unbounded(), height: Definite(-1), field: "available.height"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := mustEngine(t)
			root := mustNode(t, e, DefaultStyle(), mustNode(t, e, sized(5, 5)))

			_, err := e.ComputeLayout(root, tt.width, tt.height)
			if tt.field == "" {
				if err != nil {
					t.Fatalf("ComputeLayout: %v", err)
				}
				return
			}
			if !errors.Is(err, ErrInvalidDimension) {
				t.Fatalf("ComputeLayout = %v, want ErrInvalidDimension", err)
			}
			var dim *DimensionError
			if !errors.As(err, &dim) || dim.Field != tt.field {
				t.Errorf("ComputeLayout = %v, want DimensionError on %s", err, tt.field)
			}
			if dirty, _ := e.IsDirty(root); !dirty {
				t.Error("rejected compute cleared the dirty flag")
			}
		})
	}
}

func TestEngine_RemoveDropsCache(t *testing.T) {
	e := mustEngine(t)
	leaf := mustNode(t, e, sized(10, 10))
	mid := mustNode(t, e, DefaultStyle(), leaf)
	root := mustNode(t, e, DefaultStyle(), mid)

	if _, err := e.ComputeLayout(root, Unbounded(), Unbounded()); err != nil {
		t.Fatal(err)
	}
	removed, err := e.Remove(mid, RemoveCascade)
	if err != nil {
		t.Fatal(err)
	}
	if len(removed) != 2 || e.Contains(leaf) {
		t.Fatalf("cascade removed %v", removed)
	}

	l, err := e.ComputeLayout(root, Unbounded(), Unbounded())
	if err != nil {
		t.Fatal(err)
	}
	if l.Width != 0 || len(l.Children) != 0 {
		t.Errorf("root after remove = %vx%v with %d children", l.Width, l.Height, len(l.Children))
	}

	// A node reusing the slot must not see the old entries.
	again := mustNode(t, e, sized(30, 5))
	if err := e.AddChild(root, again); err != nil {
		t.Fatal(err)
	}
	l, err = e.ComputeLayout(root, Unbounded(), Unbounded())
	if err != nil {
		t.Fatal(err)
	}
	if l.Width != 30 || l.Height != 5 {
		t.Errorf("root = %vx%v, want 30x5", l.Width, l.Height)
	}
}

func TestEngine_MeasureAndMarkDirty(t *testing.T) {
	e := mustEngine(t)
	text := "abc"
	calls := 0
	leaf, err := e.NewLeaf(DefaultStyle(), func(MeasureMode, float32, MeasureMode, float32) Size[float32] {
		calls++
		return Size[float32]{Width: float32(len(text)), Height: 1}
	})
	if err != nil {
		t.Fatal(err)
	}
	root := mustNode(t, e, DefaultStyle(), leaf)

	compute := func() float32 {
		t.Helper()
		l, err := e.ComputeLayout(root, Unbounded(), Unbounded())
		if err != nil {
			t.Fatal(err)
		}
		return l.Children[0].Width
	}

	if w := compute(); w != 3 {
		t.Errorf("width = %v, want 3", w)
	}
	measured := calls
	compute()
	if calls != measured {
		t.Errorf("clean recompute measured again (%d calls, was %d)", calls, measured)
	}

	text = "abcdef"
	if err := e.MarkDirty(leaf); err != nil {
		t.Fatal(err)
	}
	if dirty, _ := e.IsDirty(root); !dirty {
		t.Error("root not dirty after MarkDirty on leaf")
	}
	if w := compute(); w != 6 {
		t.Errorf("width after MarkDirty = %v, want 6", w)
	}
	if st := e.CacheStats(); st.Measures != uint64(calls) {
		t.Errorf("Stats.Measures = %d, want %d", st.Measures, calls)
	}

	if err := e.SetMeasure(leaf, nil); err != nil {
		t.Fatal(err)
	}
	if w := compute(); w != 0 {
		t.Errorf("width without measure = %v, want 0", w)
	}
}

func TestEngine_Rounding(t *testing.T) {
	build := func(t *testing.T, opts ...Option) Layout {
		e := mustEngine(t, opts...)
		s := DefaultStyle()
		s.FlexGrow = 1
		var kids []Handle
		for range 3 {
			kids = append(kids, mustNode(t, e, s))
		}
		root := mustNode(t, e, sized(10, 1), kids...)
		l, err := e.ComputeLayout(root, Unbounded(), Unbounded())
		if err != nil {
			t.Fatal(err)
		}
		return l
	}

	raw := build(t)
	rounded := build(t, WithRounding(RoundPixelGrid))

	if raw.Children[1].Width == 3 || raw.Children[1].Width == 4 {
		t.Errorf("default rounding snapped width to %v", raw.Children[1].Width)
	}
	var sum float32
	for _, c := range rounded.Children {
		if c.Width != float32(int(c.Width)) {
			t.Errorf("rounded width %v is fractional", c.Width)
		}
		sum += c.Width
	}
	if sum != 10 {
		t.Errorf("rounded widths sum to %v, want 10", sum)
	}
}

func TestEngine_Clear(t *testing.T) {
	e := mustEngine(t)
	a := mustNode(t, e, sized(5, 5))
	root := mustNode(t, e, DefaultStyle(), a)
	if _, err := e.ComputeLayout(root, Unbounded(), Unbounded()); err != nil {
		t.Fatal(err)
	}

	e.Clear()
	if e.Len() != 0 || e.Contains(root) {
		t.Fatal("Clear left nodes alive")
	}
	if _, err := e.ComputeLayout(root, Unbounded(), Unbounded()); !errors.Is(err, ErrInvalidHandle) {
		t.Errorf("ComputeLayout on cleared root = %v, want ErrInvalidHandle", err)
	}
	if st := e.CacheStats(); st != (CacheStats{}) {
		t.Errorf("stats after Clear = %+v, want zero", st)
	}
}

func TestEngine_Logging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	e := mustEngine(t, WithLogger(zap.New(core)))

	leaf := mustNode(t, e, sized(4, 4))
	root := mustNode(t, e, DefaultStyle(), leaf)
	if _, err := e.ComputeLayout(root, Unbounded(), Unbounded()); err != nil {
		t.Fatal(err)
	}

	if n := logs.FilterMessage("Node created").Len(); n != 2 {
		t.Errorf("%d node records, want 2", n)
	}
	computed := logs.FilterMessage("Layout computed").All()
	if len(computed) != 1 {
		t.Fatalf("%d layout records, want 1", len(computed))
	}
	fields := computed[0].ContextMap()
	if fields["engine"] != e.ID().String() {
		t.Errorf("engine field = %v, want %v", fields["engine"], e.ID())
	}
	if fields["misses"] != uint64(2) {
		t.Errorf("misses field = %v, want 2", fields["misses"])
	}
}

func TestEngine_IndependentEnginesConcurrently(t *testing.T) {
	build := func(e *Engine) (Layout, error) {
		grow := DefaultStyle()
		grow.FlexGrow = 1
		col := DefaultStyle()
		col.Direction = Column
		col.Size = Size[Value]{Width: Points(120), Height: Points(40)}

		header, err := e.NewNode(sized(0, 3))
		if err != nil {
			return Layout{}, err
		}
		side, err := e.NewNode(sized(20, 0))
		if err != nil {
			return Layout{}, err
		}
		main, err := e.NewNode(grow)
		if err != nil {
			return Layout{}, err
		}
		middle, err := e.NewNode(grow, side, main)
		if err != nil {
			return Layout{}, err
		}
		root, err := e.NewNode(col, header, middle)
		if err != nil {
			return Layout{}, err
		}
		return e.ComputeLayout(root, Unbounded(), Unbounded())
	}

	const n = 8
	results := make([]Layout, n)
	var g errgroup.Group
	for i := range n {
		g.Go(func() error {
			e, err := New()
			if err != nil {
				return err
			}
			l, err := build(e)
			results[i] = l
			return err
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}

	for i := 1; i < n; i++ {
		if diff := cmp.Diff(results[0], results[i], handleOpt); diff != "" {
			t.Errorf("engine %d differs (-0 +%d):\n%s", i, i, diff)
		}
	}
	if got := results[0].Children[1].Children[1].Width; got != 100 {
		t.Errorf("main width = %v, want 100", got)
	}
}
