package layout

import "strconv"

// Number is a float32 that may be undefined. The zero Number is undefined.
type Number struct {
	value   float32
	defined bool
}

// Defined returns a defined Number holding v.
func Defined(v float32) Number {
	return Number{value: v, defined: true}
}

// IsDefined reports whether the number holds a value.
func (n Number) IsDefined() bool {
	return n.defined
}

// Value returns the held value, or 0 when undefined.
func (n Number) Value() float32 {
	if !n.defined {
		return 0
	}
	return n.value
}

// Or returns the held value, or fallback when undefined.
func (n Number) Or(fallback float32) float32 {
	if !n.defined {
		return fallback
	}
	return n.value
}

// Sub returns n-v; undefined stays undefined.
func (n Number) Sub(v float32) Number {
	if !n.defined {
		return n
	}
	return Defined(n.value - v)
}

// MaybeMin returns the smaller of n and other, ignoring an undefined other.
func (n Number) MaybeMin(other Number) Number {
	if !n.defined || !other.defined {
		return n
	}
	return Defined(min(n.value, other.value))
}

// MaybeMax returns the larger of n and other, ignoring an undefined other.
func (n Number) MaybeMax(other Number) Number {
	if !n.defined || !other.defined {
		return n
	}
	return Defined(max(n.value, other.value))
}

func (n Number) String() string {
	if !n.defined {
		return "undefined"
	}
	return strconv.FormatFloat(float64(n.value), 'f', -1, 32)
}

// MeasureMode describes how an available dimension constrains a node.
type MeasureMode uint8

const (
	MeasureUndefined MeasureMode = iota // Unbounded; size to content
	MeasureExactly                      // The node must take exactly this size
	MeasureAtMost                       // The node may size to content up to this bound
)

func (m MeasureMode) String() string {
	switch m {
	case MeasureExactly:
		return "exactly"
	case MeasureAtMost:
		return "at-most"
	default:
		return "undefined"
	}
}

// AvailableSpace is the space offered to a node along one axis.
type AvailableSpace struct {
	Mode  MeasureMode
	Value float32
}

// Definite offers exactly v.
func Definite(v float32) AvailableSpace {
	return AvailableSpace{Mode: MeasureExactly, Value: v}
}

// AtMost offers up to v (max-content bounded by v).
func AtMost(v float32) AvailableSpace {
	return AvailableSpace{Mode: MeasureAtMost, Value: v}
}

// Unbounded offers unlimited space.
func Unbounded() AvailableSpace {
	return AvailableSpace{}
}

// IsBounded reports whether the space carries a value (exact or at-most).
func (a AvailableSpace) IsBounded() bool {
	return a.Mode != MeasureUndefined
}

// Number returns the bound as a Number, undefined when unbounded.
func (a AvailableSpace) Number() Number {
	if a.Mode == MeasureUndefined {
		return Number{}
	}
	return Defined(a.Value)
}

// Shrink reduces a bounded space by v, never below zero.
func (a AvailableSpace) Shrink(v float32) AvailableSpace {
	if a.Mode == MeasureUndefined {
		return a
	}
	a.Value = max(0, a.Value-v)
	return a
}

func (a AvailableSpace) String() string {
	switch a.Mode {
	case MeasureExactly:
		return strconv.FormatFloat(float64(a.Value), 'f', -1, 32)
	case MeasureAtMost:
		return "max:" + strconv.FormatFloat(float64(a.Value), 'f', -1, 32)
	default:
		return "unbounded"
	}
}
