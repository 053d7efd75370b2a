package layout

// FlexDirection specifies the main axis for laying out children.
type FlexDirection uint8

const (
	Row           FlexDirection = iota // Children laid out left-to-right
	Column                             // Children laid out top-to-bottom
	RowReverse                         // Children laid out right-to-left
	ColumnReverse                      // Children laid out bottom-to-top
)

// IsRow reports whether the main axis is horizontal.
func (d FlexDirection) IsRow() bool {
	return d == Row || d == RowReverse
}

// IsReverse reports whether placement runs from the end of the main axis.
func (d FlexDirection) IsReverse() bool {
	return d == RowReverse || d == ColumnReverse
}

// FlexWrap specifies whether children may break into multiple lines.
type FlexWrap uint8

const (
	NoWrap      FlexWrap = iota // Single line
	Wrap                        // Lines stack from the cross start
	WrapReverse                 // Lines stack from the cross end
)

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyStart        Justify = iota // Pack at start
	JustifyEnd                         // Pack at end
	JustifyCenter                      // Center children
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Even space around each child
	JustifySpaceEvenly                 // Equal space between and at edges
)

// Align specifies how children are positioned on the cross axis.
type Align uint8

const (
	AlignStart   Align = iota // Align to start of cross axis
	AlignEnd                  // Align to end of cross axis
	AlignCenter               // Center on cross axis
	AlignStretch              // Stretch to fill cross axis
)

// AlignContent specifies how lines are placed in a multi-line container.
type AlignContent uint8

const (
	ContentStretch      AlignContent = iota // Lines grow to fill the container
	ContentStart                            // Pack lines at cross start
	ContentEnd                              // Pack lines at cross end
	ContentCenter                           // Center lines
	ContentSpaceBetween                     // Even space between lines
	ContentSpaceAround                      // Even space around each line
	ContentSpaceEvenly                      // Equal space between and at edges
)

// PositionType selects between in-flow and absolute placement.
type PositionType uint8

const (
	PositionRelative PositionType = iota // In flow; offsets shift the placed box
	PositionAbsolute                     // Out of flow; offsets anchor the box in the parent
)

// Display controls whether a node takes part in layout at all.
type Display uint8

const (
	DisplayFlex Display = iota // Normal flex box
	DisplayNone                // Zero-size, takes no space, subtree hidden
)

// Style contains all layout properties for a node.
type Style struct {
	Display      Display
	PositionType PositionType
	Position     Edges // Offsets per edge

	// Flex container properties
	Direction      FlexDirection
	Wrap           FlexWrap
	JustifyContent Justify
	AlignItems     Align
	AlignContent   AlignContent
	Gap            Size[Value] // Width: between items in a row, Height: between rows

	// Flex item properties
	FlexGrow   float32 // How much to grow relative to siblings
	FlexShrink float32 // How much to shrink relative to siblings (default 1)
	FlexBasis  Value
	AlignSelf  *Align // Override parent's AlignItems (nil = inherit)

	// Sizing
	Size    Size[Value]
	MinSize Size[Value]
	MaxSize Size[Value]

	// Spacing
	Margin  Edges
	Padding Edges
	Border  Edges
}

// DefaultStyle returns a Style with every field at its neutral value.
func DefaultStyle() Style {
	return Style{
		Direction:    Row,
		AlignItems:   AlignStretch,
		AlignContent: ContentStretch,
		FlexShrink:   1.0,
		FlexBasis:    Auto(),
		Size:         Size[Value]{Width: Auto(), Height: Auto()},
	}
}

// AlignFor returns the cross-axis alignment a child with this style gets
// inside a container whose AlignItems is parent.
func (s *Style) AlignFor(parent Align) Align {
	if s.AlignSelf != nil {
		return *s.AlignSelf
	}
	return parent
}

// Clone returns a deep copy; AlignSelf is the only shared reference.
func (s Style) Clone() Style {
	if s.AlignSelf != nil {
		a := *s.AlignSelf
		s.AlignSelf = &a
	}
	return s
}

// AlignPtr returns a pointer to a, for use as Style.AlignSelf.
func AlignPtr(a Align) *Align {
	return &a
}
