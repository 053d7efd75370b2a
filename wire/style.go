package wire

import (
	"fmt"

	"go.uber.org/multierr"

	flex "github.com/grindlemire/go-flex"
)

var (
	directions = map[string]flex.FlexDirection{
		"row": flex.Row, "column": flex.Column,
		"row-reverse": flex.RowReverse, "column-reverse": flex.ColumnReverse,
	}
	wraps = map[string]flex.FlexWrap{
		"nowrap": flex.NoWrap, "wrap": flex.Wrap, "wrap-reverse": flex.WrapReverse,
	}
	justifies = map[string]flex.Justify{
		"start": flex.JustifyStart, "end": flex.JustifyEnd, "center": flex.JustifyCenter,
		"space-between": flex.JustifySpaceBetween, "space-around": flex.JustifySpaceAround,
		"space-evenly": flex.JustifySpaceEvenly,
	}
	aligns = map[string]flex.Align{
		"start": flex.AlignStart, "end": flex.AlignEnd,
		"center": flex.AlignCenter, "stretch": flex.AlignStretch,
	}
	contents = map[string]flex.AlignContent{
		"stretch": flex.ContentStretch, "start": flex.ContentStart, "end": flex.ContentEnd,
		"center": flex.ContentCenter, "space-between": flex.ContentSpaceBetween,
		"space-around": flex.ContentSpaceAround, "space-evenly": flex.ContentSpaceEvenly,
	}
	positions = map[string]flex.PositionType{
		"relative": flex.PositionRelative, "absolute": flex.PositionAbsolute,
	}
	displays = map[string]flex.Display{
		"flex": flex.DisplayFlex, "none": flex.DisplayNone,
	}
)

// lookup sets *dst from table when name is not empty.
func lookup[T any](field, name string, table map[string]T, dst *T) error {
	if name == "" {
		return nil
	}
	v, ok := table[name]
	if !ok {
		return fmt.Errorf("%w: unknown %s %q", ErrDocument, field, name)
	}
	*dst = v
	return nil
}

// ToStyle converts s to a flex.Style, starting from flex.DefaultStyle.
// Every unknown enum name is reported.
func (s Style) ToStyle() (flex.Style, error) {
	out := flex.DefaultStyle()
	err := multierr.Combine(
		lookup("display", s.Display, displays, &out.Display),
		lookup("position_type", s.PositionType, positions, &out.PositionType),
		lookup("direction", s.Direction, directions, &out.Direction),
		lookup("wrap", s.Wrap, wraps, &out.Wrap),
		lookup("justify_content", s.JustifyContent, justifies, &out.JustifyContent),
		lookup("align_items", s.AlignItems, aligns, &out.AlignItems),
		lookup("align_content", s.AlignContent, contents, &out.AlignContent),
	)
	if s.AlignSelf != "" && s.AlignSelf != "auto" {
		var a flex.Align
		if e := lookup("align_self", s.AlignSelf, aligns, &a); e != nil {
			err = multierr.Append(err, e)
		} else {
			out.AlignSelf = flex.AlignPtr(a)
		}
	}
	if err != nil {
		return flex.Style{}, err
	}

	if s.FlexGrow != nil {
		out.FlexGrow = *s.FlexGrow
	}
	if s.FlexShrink != nil {
		out.FlexShrink = *s.FlexShrink
	}
	if !s.FlexBasis.IsZero() {
		out.FlexBasis = s.FlexBasis.Value
	}
	out.Gap = s.Gap.merge(out.Gap)
	out.Size = s.Size.merge(out.Size)
	out.MinSize = s.MinSize.merge(out.MinSize)
	out.MaxSize = s.MaxSize.merge(out.MaxSize)
	out.Position = s.Position.merge(out.Position)
	out.Margin = s.Margin.merge(out.Margin)
	out.Padding = s.Padding.merge(out.Padding)
	out.Border = s.Border.merge(out.Border)
	return out, nil
}

// FromStyle is the inverse of ToStyle. Fields equal to the default are
// left empty.
func FromStyle(st flex.Style) Style {
	def := flex.DefaultStyle()
	var s Style
	if st.Display != def.Display {
		s.Display = nameOf(displays, st.Display)
	}
	if st.PositionType != def.PositionType {
		s.PositionType = nameOf(positions, st.PositionType)
	}
	if st.Direction != def.Direction {
		s.Direction = nameOf(directions, st.Direction)
	}
	if st.Wrap != def.Wrap {
		s.Wrap = nameOf(wraps, st.Wrap)
	}
	if st.JustifyContent != def.JustifyContent {
		s.JustifyContent = nameOf(justifies, st.JustifyContent)
	}
	if st.AlignItems != def.AlignItems {
		s.AlignItems = nameOf(aligns, st.AlignItems)
	}
	if st.AlignContent != def.AlignContent {
		s.AlignContent = nameOf(contents, st.AlignContent)
	}
	if st.AlignSelf != nil {
		s.AlignSelf = nameOf(aligns, *st.AlignSelf)
	}
	if st.FlexGrow != def.FlexGrow {
		s.FlexGrow = &st.FlexGrow
	}
	if st.FlexShrink != def.FlexShrink {
		s.FlexShrink = &st.FlexShrink
	}
	if st.FlexBasis != def.FlexBasis {
		s.FlexBasis = Dim{st.FlexBasis}
	}
	s.Gap = pairOf(st.Gap, def.Gap)
	s.Size = pairOf(st.Size, def.Size)
	s.MinSize = pairOf(st.MinSize, def.MinSize)
	s.MaxSize = pairOf(st.MaxSize, def.MaxSize)
	s.Position = edgesOf(st.Position, def.Position)
	s.Margin = edgesOf(st.Margin, def.Margin)
	s.Padding = edgesOf(st.Padding, def.Padding)
	s.Border = edgesOf(st.Border, def.Border)
	return s
}

func nameOf[T comparable](table map[string]T, v T) string {
	for name, tv := range table {
		if tv == v {
			return name
		}
	}
	return ""
}

func pick(d Dim, fallback flex.Value) flex.Value {
	if d.IsZero() {
		return fallback
	}
	return d.Value
}

func (p Pair) merge(base flex.Size[flex.Value]) flex.Size[flex.Value] {
	return flex.Size[flex.Value]{Width: pick(p.Width, base.Width), Height: pick(p.Height, base.Height)}
}

func (e Edges) merge(base flex.Edges) flex.Edges {
	x := pick(e.X, flex.Undefined())
	y := pick(e.Y, flex.Undefined())
	side := func(d, axis flex.Value, b flex.Value) flex.Value {
		switch {
		case d.Unit != flex.UnitUndefined:
			return d
		case axis.Unit != flex.UnitUndefined:
			return axis
		case e.All.Unit != flex.UnitUndefined:
			return e.All.Value
		}
		return b
	}
	return flex.Edges{
		Top:    side(e.Top.Value, y, base.Top),
		Right:  side(e.Right.Value, x, base.Right),
		Bottom: side(e.Bottom.Value, y, base.Bottom),
		Left:   side(e.Left.Value, x, base.Left),
	}
}

func pairOf(v, def flex.Size[flex.Value]) Pair {
	var p Pair
	if v.Width != def.Width {
		p.Width = Dim{v.Width}
	}
	if v.Height != def.Height {
		p.Height = Dim{v.Height}
	}
	return p
}

func edgesOf(v, def flex.Edges) Edges {
	var e Edges
	if v.Top != def.Top {
		e.Top = Dim{v.Top}
	}
	if v.Right != def.Right {
		e.Right = Dim{v.Right}
	}
	if v.Bottom != def.Bottom {
		e.Bottom = Dim{v.Bottom}
	}
	if v.Left != def.Left {
		e.Left = Dim{v.Left}
	}
	return e
}
