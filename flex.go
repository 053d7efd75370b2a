// flex.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package flex

import "github.com/grindlemire/go-flex/internal/layout"

// FlexDirection specifies the main axis for laying out children.
type FlexDirection = layout.FlexDirection

const (
	Row           = layout.Row
	Column        = layout.Column
	RowReverse    = layout.RowReverse
	ColumnReverse = layout.ColumnReverse
)

// FlexWrap specifies whether children may break into multiple lines.
type FlexWrap = layout.FlexWrap

const (
	NoWrap      = layout.NoWrap
	Wrap        = layout.Wrap
	WrapReverse = layout.WrapReverse
)

// Justify specifies how children are distributed along the main axis.
type Justify = layout.Justify

const (
	JustifyStart        = layout.JustifyStart
	JustifyEnd          = layout.JustifyEnd
	JustifyCenter       = layout.JustifyCenter
	JustifySpaceBetween = layout.JustifySpaceBetween
	JustifySpaceAround  = layout.JustifySpaceAround
	JustifySpaceEvenly  = layout.JustifySpaceEvenly
)

// Align specifies how children are aligned along the cross axis.
type Align = layout.Align

const (
	AlignStart   = layout.AlignStart
	AlignEnd     = layout.AlignEnd
	AlignCenter  = layout.AlignCenter
	AlignStretch = layout.AlignStretch
)

// AlignContent specifies how lines are placed in a multi-line container.
type AlignContent = layout.AlignContent

const (
	ContentStretch      = layout.ContentStretch
	ContentStart        = layout.ContentStart
	ContentEnd          = layout.ContentEnd
	ContentCenter       = layout.ContentCenter
	ContentSpaceBetween = layout.ContentSpaceBetween
	ContentSpaceAround  = layout.ContentSpaceAround
	ContentSpaceEvenly  = layout.ContentSpaceEvenly
)

// PositionType selects between in-flow and absolute placement.
type PositionType = layout.PositionType

const (
	PositionRelative = layout.PositionRelative
	PositionAbsolute = layout.PositionAbsolute
)

// Display controls whether a node takes part in layout.
type Display = layout.Display

const (
	DisplayFlex = layout.DisplayFlex
	DisplayNone = layout.DisplayNone
)

// Value represents a dimension: undefined, auto, points or percent.
type Value = layout.Value

// Unit specifies how a Value is interpreted.
type Unit = layout.Unit

const (
	UnitUndefined = layout.UnitUndefined
	UnitAuto      = layout.UnitAuto
	UnitPoints    = layout.UnitPoints
	UnitPercent   = layout.UnitPercent
)

// MeasureMode describes how an available dimension constrains a node.
type MeasureMode = layout.MeasureMode

const (
	MeasureUndefined = layout.MeasureUndefined
	MeasureExactly   = layout.MeasureExactly
	MeasureAtMost    = layout.MeasureAtMost
)

// AvailableSpace is the space offered to a node along one axis.
type AvailableSpace = layout.AvailableSpace

// Style holds the layout properties for a node.
type Style = layout.Style

// Edges holds one Value per side.
type Edges = layout.Edges

// Insets holds resolved spacing per side.
type Insets = layout.Insets

// Size is a width/height pair.
type Size[T any] = layout.Size[T]

// Rect is a rectangle with position and dimensions.
type Rect = layout.Rect

// Handle identifies a node inside one Engine.
type Handle = layout.Handle

// Layout is the computed box of a node and its children.
type Layout = layout.Layout

// MeasureFunc reports the intrinsic content size of a leaf.
type MeasureFunc = layout.MeasureFunc

// DimensionError describes one rejected style field.
type DimensionError = layout.DimensionError

var (
	ErrInvalidHandle    = layout.ErrInvalidHandle
	ErrCyclicChild      = layout.ErrCyclicChild
	ErrChildOfSelf      = layout.ErrChildOfSelf
	ErrChildHasParent   = layout.ErrChildHasParent
	ErrNotChild         = layout.ErrNotChild
	ErrChildIndex       = layout.ErrChildIndex
	ErrInvalidDimension = layout.ErrInvalidDimension
)

// Undefined returns the unset Value.
func Undefined() Value { return layout.Undefined() }

// Auto returns a Value that sizes to content.
func Auto() Value { return layout.Auto() }

// Points returns a fixed Value.
func Points(n float32) Value { return layout.Points(n) }

// Percent returns a Value relative to the parent's content box (50 = half).
func Percent(p float32) Value { return layout.Percent(p) }

// Definite offers exactly v.
func Definite(v float32) AvailableSpace { return layout.Definite(v) }

// AtMost offers up to v.
func AtMost(v float32) AvailableSpace { return layout.AtMost(v) }

// Unbounded offers unlimited space.
func Unbounded() AvailableSpace { return layout.Unbounded() }

// DefaultStyle returns a Style with every field at its neutral value.
func DefaultStyle() Style { return layout.DefaultStyle() }

// EdgeAll returns Edges with the same value on every side.
func EdgeAll(v Value) Edges { return layout.EdgeAll(v) }

// EdgeSymmetric returns Edges with v on top/bottom and h on left/right.
func EdgeSymmetric(v, h Value) Edges { return layout.EdgeSymmetric(v, h) }

// EdgeTRBL returns Edges in CSS order.
func EdgeTRBL(t, r, b, l Value) Edges { return layout.EdgeTRBL(t, r, b, l) }

// AlignPtr returns a pointer for Style.AlignSelf.
func AlignPtr(a Align) *Align { return layout.AlignPtr(a) }
