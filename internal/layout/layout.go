package layout

import "fmt"

// Handle identifies a node in a tree. The zero Handle never refers to a node.
type Handle struct {
	index      uint32
	generation uint32
}

// NewHandle builds a handle from an arena slot and its generation.
func NewHandle(index, generation uint32) Handle {
	return Handle{index: index, generation: generation}
}

// Index returns the arena slot.
func (h Handle) Index() uint32 { return h.index }

// Generation returns the slot generation the handle was issued for.
func (h Handle) Generation() uint32 { return h.generation }

// IsZero reports whether h is the zero Handle.
func (h Handle) IsZero() bool { return h.generation == 0 }

func (h Handle) String() string {
	return fmt.Sprintf("#%d.%d", h.index, h.generation)
}

// Layout holds the computed position and size of a node and its children.
type Layout struct {
	Handle Handle

	// X and Y are relative to the parent's content box.
	X, Y float32

	// Width and Height are the border box size.
	Width, Height float32

	// Padding and Border are the resolved insets of this node.
	Padding Insets
	Border  Insets

	// Children are in child-list order, including hidden and absolute children.
	Children []Layout
}

// Rect is the border box relative to the parent's content box.
func (l *Layout) Rect() Rect {
	return Rect{X: l.X, Y: l.Y, Width: l.Width, Height: l.Height}
}

// ContentRect is Rect minus border and padding: the area children are placed in.
func (l *Layout) ContentRect() Rect {
	return l.Rect().Inset(l.Padding.Add(l.Border))
}

// Walk calls fn for l and every descendant in depth-first order, passing
// the absolute origin of each node's border box. Walking stops when fn
// returns false.
func (l *Layout) Walk(fn func(l *Layout, absX, absY float32) bool) {
	l.walk(0, 0, fn)
}

func (l *Layout) walk(parentX, parentY float32, fn func(*Layout, float32, float32) bool) bool {
	x, y := parentX+l.X, parentY+l.Y
	if !fn(l, x, y) {
		return false
	}
	cx := x + l.Border.Left + l.Padding.Left
	cy := y + l.Border.Top + l.Padding.Top
	for i := range l.Children {
		if !l.Children[i].walk(cx, cy, fn) {
			return false
		}
	}
	return true
}

// MeasureFunc returns the intrinsic content size of a leaf. The constraints
// describe the content box: padding and border are already removed.
type MeasureFunc func(widthMode MeasureMode, width float32, heightMode MeasureMode, height float32) Size[float32]
