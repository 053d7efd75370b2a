package layout

import (
	"math"

	"go.uber.org/multierr"
)

// Validate checks every numeric field of the style and reports all
// offending fields at once. Each failure unwraps to ErrInvalidDimension.
func (s *Style) Validate() error {
	var err error

	check := func(field string, v float32, allowNegative bool) {
		switch {
		case !isFinite(v):
			err = multierr.Append(err, &DimensionError{Field: field, Value: v, Reason: "not finite"})
		case v < 0 && !allowNegative:
			err = multierr.Append(err, &DimensionError{Field: field, Value: v, Reason: "negative"})
		}
	}
	value := func(field string, v Value, allowNegative bool) {
		if v.Unit == UnitPoints || v.Unit == UnitPercent {
			check(field, v.Amount, allowNegative)
		}
	}
	edges := func(field string, e Edges, allowNegative bool) {
		value(field+".top", e.Top, allowNegative)
		value(field+".right", e.Right, allowNegative)
		value(field+".bottom", e.Bottom, allowNegative)
		value(field+".left", e.Left, allowNegative)
	}
	size := func(field string, sz Size[Value]) {
		value(field+".width", sz.Width, false)
		value(field+".height", sz.Height, false)
	}

	check("flex_grow", s.FlexGrow, false)
	check("flex_shrink", s.FlexShrink, false)
	value("flex_basis", s.FlexBasis, false)
	size("size", s.Size)
	size("min_size", s.MinSize)
	size("max_size", s.MaxSize)
	size("gap", s.Gap)
	edges("margin", s.Margin, true)
	edges("padding", s.Padding, false)
	edges("border", s.Border, false)
	edges("position", s.Position, true)

	return err
}

// Validate rejects a bounded space whose value is not finite or is negative.
// field names the axis in the returned *DimensionError.
func (a AvailableSpace) Validate(field string) error {
	switch {
	case !a.IsBounded():
		return nil
	case !isFinite(a.Value):
		return &DimensionError{Field: field, Value: a.Value, Reason: "not finite"}
	case a.Value < 0:
		return &DimensionError{Field: field, Value: a.Value, Reason: "negative"}
	}
	return nil
}

func isFinite(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
