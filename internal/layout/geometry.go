package layout

// Size holds a value per axis.
type Size[T any] struct {
	Width, Height T
}

// Main returns the component along the main axis of dir.
func (s Size[T]) Main(dir FlexDirection) T {
	if dir.IsRow() {
		return s.Width
	}
	return s.Height
}

// Cross returns the component along the cross axis of dir.
func (s Size[T]) Cross(dir FlexDirection) T {
	if dir.IsRow() {
		return s.Height
	}
	return s.Width
}

// FromAxes builds a Size from main and cross components.
func FromAxes[T any](dir FlexDirection, main, cross T) Size[T] {
	if dir.IsRow() {
		return Size[T]{Width: main, Height: cross}
	}
	return Size[T]{Width: cross, Height: main}
}

// Edges represents style values for four sides of a box.
type Edges struct {
	Top, Right, Bottom, Left Value
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(v Value) Edges {
	return Edges{Top: v, Right: v, Bottom: v, Left: v}
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h Value) Edges {
	return Edges{Top: v, Right: h, Bottom: v, Left: h}
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l Value) Edges {
	return Edges{Top: t, Right: r, Bottom: b, Left: l}
}

// Resolve resolves every edge against base; undefined and auto edges become zero.
func (e Edges) Resolve(base Number) Insets {
	return Insets{
		Top:    e.Top.ResolveOr(base, 0),
		Right:  e.Right.ResolveOr(base, 0),
		Bottom: e.Bottom.ResolveOr(base, 0),
		Left:   e.Left.ResolveOr(base, 0),
	}
}

// Insets holds resolved amounts for four sides of a box.
type Insets struct {
	Top, Right, Bottom, Left float32
}

// Horizontal returns the sum of Left and Right.
func (in Insets) Horizontal() float32 {
	return in.Left + in.Right
}

// Vertical returns the sum of Top and Bottom.
func (in Insets) Vertical() float32 {
	return in.Top + in.Bottom
}

// Add returns the edge-wise sum of two insets.
func (in Insets) Add(other Insets) Insets {
	return Insets{
		Top:    in.Top + other.Top,
		Right:  in.Right + other.Right,
		Bottom: in.Bottom + other.Bottom,
		Left:   in.Left + other.Left,
	}
}

// Main returns the total along the main axis of dir.
func (in Insets) Main(dir FlexDirection) float32 {
	if dir.IsRow() {
		return in.Horizontal()
	}
	return in.Vertical()
}

// Cross returns the total along the cross axis of dir.
func (in Insets) Cross(dir FlexDirection) float32 {
	if dir.IsRow() {
		return in.Vertical()
	}
	return in.Horizontal()
}

// IsZero returns true if all edge values are zero.
func (in Insets) IsZero() bool {
	return in.Top == 0 && in.Right == 0 && in.Bottom == 0 && in.Left == 0
}

// edge selects one side of a box relative to a flex direction.
type edge uint8

const (
	edgeLeft edge = iota
	edgeRight
	edgeTop
	edgeBottom
)

func mainStartEdge(dir FlexDirection) edge {
	switch dir {
	case RowReverse:
		return edgeRight
	case Column:
		return edgeTop
	case ColumnReverse:
		return edgeBottom
	default:
		return edgeLeft
	}
}

func mainEndEdge(dir FlexDirection) edge {
	switch dir {
	case RowReverse:
		return edgeLeft
	case Column:
		return edgeBottom
	case ColumnReverse:
		return edgeTop
	default:
		return edgeRight
	}
}

func crossStartEdge(dir FlexDirection, wrapReverse bool) edge {
	switch {
	case dir.IsRow() && wrapReverse:
		return edgeBottom
	case dir.IsRow():
		return edgeTop
	case wrapReverse:
		return edgeRight
	default:
		return edgeLeft
	}
}

func crossEndEdge(dir FlexDirection, wrapReverse bool) edge {
	switch {
	case dir.IsRow() && wrapReverse:
		return edgeTop
	case dir.IsRow():
		return edgeBottom
	case wrapReverse:
		return edgeLeft
	default:
		return edgeRight
	}
}

func (in Insets) at(e edge) float32 {
	switch e {
	case edgeRight:
		return in.Right
	case edgeTop:
		return in.Top
	case edgeBottom:
		return in.Bottom
	default:
		return in.Left
	}
}

func (e Edges) at(s edge) Value {
	switch s {
	case edgeRight:
		return e.Right
	case edgeTop:
		return e.Top
	case edgeBottom:
		return e.Bottom
	default:
		return e.Left
	}
}

// MainStart returns the side where the main axis of dir begins;
// reversed directions begin at the right or bottom.
func (in Insets) MainStart(dir FlexDirection) float32 { return in.at(mainStartEdge(dir)) }

// MainEnd returns the side where the main axis of dir ends.
func (in Insets) MainEnd(dir FlexDirection) float32 { return in.at(mainEndEdge(dir)) }

// CrossStart returns the side where lines start stacking; wrap-reverse
// stacks from the bottom or right.
func (in Insets) CrossStart(dir FlexDirection, wrapReverse bool) float32 {
	return in.at(crossStartEdge(dir, wrapReverse))
}

// CrossEnd returns the side opposite CrossStart.
func (in Insets) CrossEnd(dir FlexDirection, wrapReverse bool) float32 {
	return in.at(crossEndEdge(dir, wrapReverse))
}

// MainStart returns the style value on the main-start side.
func (e Edges) MainStart(dir FlexDirection) Value { return e.at(mainStartEdge(dir)) }

// MainEnd returns the style value on the main-end side.
func (e Edges) MainEnd(dir FlexDirection) Value { return e.at(mainEndEdge(dir)) }

// CrossStart returns the style value on the cross-start side.
func (e Edges) CrossStart(dir FlexDirection, wrapReverse bool) Value {
	return e.at(crossStartEdge(dir, wrapReverse))
}

// CrossEnd returns the style value on the cross-end side.
func (e Edges) CrossEnd(dir FlexDirection, wrapReverse bool) Value {
	return e.at(crossEndEdge(dir, wrapReverse))
}

// Rect represents a rectangle. X and Y are the top-left corner.
type Rect struct {
	X, Y          float32
	Width, Height float32
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float32) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() float32 {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() float32 {
	return r.Y + r.Height
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains returns true if the point (x, y) is inside the rectangle.
// Points on the left and top edges are inside; points on the right and bottom edges are outside.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset returns a new Rect inset by the given amounts.
func (r Rect) Inset(in Insets) Rect {
	return Rect{
		X:      r.X + in.Left,
		Y:      r.Y + in.Top,
		Width:  r.Width - in.Horizontal(),
		Height: r.Height - in.Vertical(),
	}
}

// Translate returns a new Rect moved by (dx, dy).
func (r Rect) Translate(dx, dy float32) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}
