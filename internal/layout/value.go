package layout

import "strconv"

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitUndefined Unit = iota // Not set; sizes fall back to content, spacing to zero
	UnitAuto                  // Size determined by content/flex
	UnitPoints                // Absolute points
	UnitPercent               // Percentage of the parent's content box
)

// String returns the lowercase unit name.
func (u Unit) String() string {
	switch u {
	case UnitAuto:
		return "auto"
	case UnitPoints:
		return "points"
	case UnitPercent:
		return "percent"
	default:
		return "undefined"
	}
}

// Value represents a dimension that can be undefined, auto, fixed points or
// a percentage. The zero Value is undefined.
type Value struct {
	Amount float32
	Unit   Unit
}

// Undefined returns a Value that contributes nothing.
func Undefined() Value {
	return Value{Unit: UnitUndefined}
}

// Auto returns a Value that should be computed from content/flex.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Points returns a Value representing an absolute number of points.
func Points(n float32) Value {
	return Value{Amount: n, Unit: UnitPoints}
}

// Percent returns a Value representing a percentage of the parent's content box.
// The value is on a 0-100 scale (50.0 = 50%).
func Percent(p float32) Value {
	return Value{Amount: p, Unit: UnitPercent}
}

// Resolve computes the value against base. Auto and Undefined resolve to an
// undefined Number, as does a percentage of an undefined base.
func (v Value) Resolve(base Number) Number {
	switch v.Unit {
	case UnitPoints:
		return Defined(v.Amount)
	case UnitPercent:
		if !base.IsDefined() {
			return Number{}
		}
		return Defined(base.Value() * v.Amount / 100)
	default:
		return Number{}
	}
}

// ResolveOr resolves the value against base and returns fallback when the
// result is undefined.
func (v Value) ResolveOr(base Number, fallback float32) float32 {
	return v.Resolve(base).Or(fallback)
}

// IsAuto returns true if this value should be computed from content/flex.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

// IsDefined returns true for point and percentage values.
func (v Value) IsDefined() bool {
	return v.Unit == UnitPoints || v.Unit == UnitPercent
}

// String formats the value the way the wire format spells it:
// "undefined", "auto", "12" or "50%".
func (v Value) String() string {
	switch v.Unit {
	case UnitAuto:
		return "auto"
	case UnitPoints:
		return strconv.FormatFloat(float64(v.Amount), 'f', -1, 32)
	case UnitPercent:
		return strconv.FormatFloat(float64(v.Amount), 'f', -1, 32) + "%"
	default:
		return "undefined"
	}
}
