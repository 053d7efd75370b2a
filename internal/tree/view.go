package tree

import "github.com/grindlemire/go-flex/internal/layout"

// View is a read-only window onto one node, used by the resolver after the
// root handle has been validated. Style points into the arena and must not
// be retained across mutations.
type View struct {
	Style    *layout.Style
	Children []layout.Handle
	Measure  layout.MeasureFunc
}

// View returns the node behind h. The handle must be live.
func (t *Tree) View(h layout.Handle) View {
	n := &t.nodes[h.Index()]
	return View{Style: &n.style, Children: n.children, Measure: n.measure}
}

// NeedsLayout reports the dirty flag of a live handle.
func (t *Tree) NeedsLayout(h layout.Handle) bool {
	return t.nodes[h.Index()].dirty
}

// MarkClean clears the dirty flag of a live handle after recomputation.
func (t *Tree) MarkClean(h layout.Handle) {
	t.nodes[h.Index()].dirty = false
}
