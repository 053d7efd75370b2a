// Package tree implements the node arena the layout engine operates on.
//
// Nodes are addressed by layout.Handle values: a slot index plus a
// generation. Removing a node bumps its slot generation, so handles to
// removed nodes fail with layout.ErrInvalidHandle even after the slot is
// recycled. Parent links are plain handles stored next to each node.
package tree

import (
	"fmt"
	"slices"

	"github.com/grindlemire/go-flex/internal/layout"
)

// RemovePolicy decides what happens to the children of a removed node.
type RemovePolicy uint8

const (
	RemoveCascade RemovePolicy = iota // Delete the whole subtree
	RemoveOrphan                      // Detach children; they stay alive as roots
)

type node struct {
	generation uint32
	alive      bool
	dirty      bool

	style    layout.Style
	parent   layout.Handle
	children []layout.Handle
	measure  layout.MeasureFunc
}

// Tree is an arena of layout nodes. It is not safe for concurrent use.
type Tree struct {
	nodes []node
	free  []uint32
	live  int
}

// New creates an empty tree with room for capacity nodes.
func New(capacity int) *Tree {
	return &Tree{nodes: make([]node, 0, max(capacity, 0))}
}

// get returns the node for h or ErrInvalidHandle.
func (t *Tree) get(h layout.Handle) (*node, error) {
	idx := h.Index()
	if h.IsZero() || int(idx) >= len(t.nodes) {
		return nil, fmt.Errorf("%w: %v", layout.ErrInvalidHandle, h)
	}
	n := &t.nodes[idx]
	if !n.alive || n.generation != h.Generation() {
		return nil, fmt.Errorf("%w: %v", layout.ErrInvalidHandle, h)
	}
	return n, nil
}

// Contains reports whether h refers to a live node.
func (t *Tree) Contains(h layout.Handle) bool {
	_, err := t.get(h)
	return err == nil
}

// Len returns the number of live nodes.
func (t *Tree) Len() int {
	return t.live
}

// NewNode creates a node with the given style and children.
// The style is validated and the children must be parentless live nodes.
func (t *Tree) NewNode(style layout.Style, children ...layout.Handle) (layout.Handle, error) {
	if err := style.Validate(); err != nil {
		return layout.Handle{}, err
	}
	if err := t.checkChildren(layout.Handle{}, children); err != nil {
		return layout.Handle{}, err
	}

	h := t.alloc()
	n := &t.nodes[h.Index()]
	n.style = style.Clone()
	n.children = slices.Clone(children)
	for _, c := range children {
		t.nodes[c.Index()].parent = h
	}
	return h, nil
}

// NewLeaf creates a childless node whose content size comes from measure.
func (t *Tree) NewLeaf(style layout.Style, measure layout.MeasureFunc) (layout.Handle, error) {
	h, err := t.NewNode(style)
	if err != nil {
		return h, err
	}
	t.nodes[h.Index()].measure = measure
	return h, nil
}

func (t *Tree) alloc() layout.Handle {
	t.live++
	if k := len(t.free); k > 0 {
		idx := t.free[k-1]
		t.free = t.free[:k-1]
		n := &t.nodes[idx]
		n.alive = true
		n.dirty = true
		return layout.NewHandle(idx, n.generation)
	}
	idx := uint32(len(t.nodes))
	t.nodes = append(t.nodes, node{generation: 1, alive: true, dirty: true})
	return layout.NewHandle(idx, 1)
}

func (t *Tree) release(h layout.Handle) {
	n := &t.nodes[h.Index()]
	*n = node{generation: n.generation + 1}
	t.free = append(t.free, h.Index())
	t.live--
}

// checkChildren verifies that children may be attached to parent.
// A zero parent means the parent is being created.
func (t *Tree) checkChildren(parent layout.Handle, children []layout.Handle) error {
	seen := make(map[layout.Handle]struct{}, len(children))
	for _, c := range children {
		cn, err := t.get(c)
		if err != nil {
			return err
		}
		if !parent.IsZero() {
			if c == parent {
				return fmt.Errorf("%w: %v", layout.ErrChildOfSelf, c)
			}
			if t.isAncestor(c, parent) {
				return fmt.Errorf("%w: %v is an ancestor of %v", layout.ErrCyclicChild, c, parent)
			}
		}
		if !cn.parent.IsZero() && cn.parent != parent {
			return fmt.Errorf("%w: %v is attached to %v", layout.ErrChildHasParent, c, cn.parent)
		}
		if _, dup := seen[c]; dup {
			return fmt.Errorf("%w: %v listed twice", layout.ErrChildHasParent, c)
		}
		seen[c] = struct{}{}
	}
	return nil
}

// isAncestor walks up from h and reports whether candidate is found.
// The walk is bounded by the depth of h.
func (t *Tree) isAncestor(candidate, h layout.Handle) bool {
	for cur := t.nodes[h.Index()].parent; !cur.IsZero(); cur = t.nodes[cur.Index()].parent {
		if cur == candidate {
			return true
		}
	}
	return false
}

// SetStyle replaces the style of h. An invalid style is rejected and the
// previous style is kept.
func (t *Tree) SetStyle(h layout.Handle, style layout.Style) error {
	n, err := t.get(h)
	if err != nil {
		return err
	}
	if err := style.Validate(); err != nil {
		return err
	}
	n.style = style.Clone()
	t.markDirty(h)
	return nil
}

// Style returns a copy of the style of h.
func (t *Tree) Style(h layout.Handle) (layout.Style, error) {
	n, err := t.get(h)
	if err != nil {
		return layout.Style{}, err
	}
	return n.style.Clone(), nil
}

// SetMeasure registers or, with nil, clears the measurement callback of h.
// The callback is only consulted while the node has no children.
func (t *Tree) SetMeasure(h layout.Handle, measure layout.MeasureFunc) error {
	n, err := t.get(h)
	if err != nil {
		return err
	}
	n.measure = measure
	t.markDirty(h)
	return nil
}

// HasMeasure reports whether h has a measurement callback.
func (t *Tree) HasMeasure(h layout.Handle) (bool, error) {
	n, err := t.get(h)
	if err != nil {
		return false, err
	}
	return n.measure != nil, nil
}

// Parent returns the parent of h, or the zero Handle for a root.
func (t *Tree) Parent(h layout.Handle) (layout.Handle, error) {
	n, err := t.get(h)
	if err != nil {
		return layout.Handle{}, err
	}
	return n.parent, nil
}

// Children returns a copy of the child list of h.
func (t *Tree) Children(h layout.Handle) ([]layout.Handle, error) {
	n, err := t.get(h)
	if err != nil {
		return nil, err
	}
	return slices.Clone(n.children), nil
}

// ChildCount returns the number of children of h.
func (t *Tree) ChildCount(h layout.Handle) (int, error) {
	n, err := t.get(h)
	if err != nil {
		return 0, err
	}
	return len(n.children), nil
}

// ChildAt returns the child of h at index.
func (t *Tree) ChildAt(h layout.Handle, index int) (layout.Handle, error) {
	n, err := t.get(h)
	if err != nil {
		return layout.Handle{}, err
	}
	if index < 0 || index >= len(n.children) {
		return layout.Handle{}, fmt.Errorf("%w: %d of %d", layout.ErrChildIndex, index, len(n.children))
	}
	return n.children[index], nil
}

// Clear removes every node. All previously issued handles become invalid.
func (t *Tree) Clear() {
	for i := range t.nodes {
		if t.nodes[i].alive {
			t.release(layout.NewHandle(uint32(i), t.nodes[i].generation))
		}
	}
}
