package tree

import (
	"fmt"
	"slices"

	"github.com/grindlemire/go-flex/internal/layout"
)

// SetChildren replaces the child list of h. Former children that are not in
// the new list become parentless roots.
func (t *Tree) SetChildren(h layout.Handle, children []layout.Handle) error {
	n, err := t.get(h)
	if err != nil {
		return err
	}
	if err := t.checkChildren(h, children); err != nil {
		return err
	}

	for _, old := range n.children {
		if !slices.Contains(children, old) {
			t.nodes[old.Index()].parent = layout.Handle{}
		}
	}
	n.children = slices.Clone(children)
	for _, c := range children {
		t.nodes[c.Index()].parent = h
	}
	t.markDirty(h)
	return nil
}

// AddChild appends child to the child list of h.
func (t *Tree) AddChild(h, child layout.Handle) error {
	n, err := t.get(h)
	if err != nil {
		return err
	}
	return t.InsertChild(h, len(n.children), child)
}

// InsertChild inserts child at index; index may equal the child count.
func (t *Tree) InsertChild(h layout.Handle, index int, child layout.Handle) error {
	n, err := t.get(h)
	if err != nil {
		return err
	}
	if index < 0 || index > len(n.children) {
		return fmt.Errorf("%w: %d of %d", layout.ErrChildIndex, index, len(n.children))
	}
	if err := t.checkAttach(h, child); err != nil {
		return err
	}
	n.children = slices.Insert(n.children, index, child)
	t.nodes[child.Index()].parent = h
	t.markDirty(h)
	return nil
}

// checkAttach verifies child can gain h as its parent.
func (t *Tree) checkAttach(h, child layout.Handle) error {
	cn, err := t.get(child)
	if err != nil {
		return err
	}
	if child == h {
		return fmt.Errorf("%w: %v", layout.ErrChildOfSelf, child)
	}
	if t.isAncestor(child, h) {
		return fmt.Errorf("%w: %v is an ancestor of %v", layout.ErrCyclicChild, child, h)
	}
	if !cn.parent.IsZero() {
		return fmt.Errorf("%w: %v is attached to %v", layout.ErrChildHasParent, child, cn.parent)
	}
	return nil
}

// RemoveChild detaches child from h. The child stays alive as a root.
func (t *Tree) RemoveChild(h, child layout.Handle) error {
	n, err := t.get(h)
	if err != nil {
		return err
	}
	if _, err := t.get(child); err != nil {
		return err
	}
	i := slices.Index(n.children, child)
	if i < 0 {
		return fmt.Errorf("%w: %v is not under %v", layout.ErrNotChild, child, h)
	}
	_, err = t.RemoveChildAt(h, i)
	return err
}

// RemoveChildAt detaches the child at index and returns it.
func (t *Tree) RemoveChildAt(h layout.Handle, index int) (layout.Handle, error) {
	n, err := t.get(h)
	if err != nil {
		return layout.Handle{}, err
	}
	if index < 0 || index >= len(n.children) {
		return layout.Handle{}, fmt.Errorf("%w: %d of %d", layout.ErrChildIndex, index, len(n.children))
	}
	child := n.children[index]
	n.children = slices.Delete(n.children, index, index+1)
	t.nodes[child.Index()].parent = layout.Handle{}
	t.markDirty(h)
	return child, nil
}

// ReplaceChildAt puts child at index and returns the detached previous child.
func (t *Tree) ReplaceChildAt(h layout.Handle, index int, child layout.Handle) (layout.Handle, error) {
	n, err := t.get(h)
	if err != nil {
		return layout.Handle{}, err
	}
	if index < 0 || index >= len(n.children) {
		return layout.Handle{}, fmt.Errorf("%w: %d of %d", layout.ErrChildIndex, index, len(n.children))
	}
	old := n.children[index]
	if old == child {
		return old, nil
	}
	if err := t.checkAttach(h, child); err != nil {
		return layout.Handle{}, err
	}
	n.children[index] = child
	t.nodes[old.Index()].parent = layout.Handle{}
	t.nodes[child.Index()].parent = h
	t.markDirty(h)
	return old, nil
}

// Remove deletes h. The node is detached from its parent, which is marked
// dirty. With RemoveCascade every descendant is deleted too; with
// RemoveOrphan the children become parentless roots. Remove returns the
// handles that were deleted, h first.
func (t *Tree) Remove(h layout.Handle, policy RemovePolicy) ([]layout.Handle, error) {
	n, err := t.get(h)
	if err != nil {
		return nil, err
	}

	if p := n.parent; !p.IsZero() {
		pn := &t.nodes[p.Index()]
		pn.children = slices.DeleteFunc(pn.children, func(c layout.Handle) bool { return c == h })
		t.markDirty(p)
	}

	var removed []layout.Handle
	switch policy {
	case RemoveOrphan:
		for _, c := range n.children {
			t.nodes[c.Index()].parent = layout.Handle{}
		}
		removed = append(removed, h)
		t.release(h)
	default:
		stack := []layout.Handle{h}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			stack = append(stack, t.nodes[cur.Index()].children...)
			removed = append(removed, cur)
		}
		for _, r := range removed {
			t.release(r)
		}
	}
	return removed, nil
}

// MarkDirty flags h and its ancestors for recomputation.
func (t *Tree) MarkDirty(h layout.Handle) error {
	if _, err := t.get(h); err != nil {
		return err
	}
	t.markDirty(h)
	return nil
}

// markDirty walks from h to the root and stops at the first node that is
// already dirty: every ancestor of a dirty node is dirty as well.
func (t *Tree) markDirty(h layout.Handle) {
	for cur := h; !cur.IsZero(); {
		n := &t.nodes[cur.Index()]
		if n.dirty {
			return
		}
		n.dirty = true
		cur = n.parent
	}
}

// IsDirty reports whether h must be recomputed on the next layout pass.
func (t *Tree) IsDirty(h layout.Handle) (bool, error) {
	n, err := t.get(h)
	if err != nil {
		return false, err
	}
	return n.dirty, nil
}
