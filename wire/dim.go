package wire

import (
	"fmt"
	"strconv"
	"strings"

	json "github.com/json-iterator/go"
	yaml "gopkg.in/yaml.v3"

	flex "github.com/grindlemire/go-flex"
)

// Dim is a dimension in documents. Accepted forms are a bare number or
// "12pt" (points), "50%" (percent), "auto", and "undefined" or an empty
// value.
type Dim struct {
	flex.Value
}

// ParseDim parses the textual form of a dimension.
func ParseDim(s string) (Dim, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "undefined":
		return Dim{flex.Undefined()}, nil
	case "auto":
		return Dim{flex.Auto()}, nil
	}

	unit := flex.UnitPoints
	num := strings.TrimSuffix(s, "pt")
	if p, ok := strings.CutSuffix(s, "%"); ok {
		unit, num = flex.UnitPercent, p
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(num), 32)
	if err != nil {
		return Dim{}, fmt.Errorf("%w: bad dimension %q", ErrDocument, s)
	}
	if unit == flex.UnitPercent {
		return Dim{flex.Percent(float32(f))}, nil
	}
	return Dim{flex.Points(float32(f))}, nil
}

// String returns the textual form accepted by ParseDim.
func (d Dim) String() string {
	switch d.Unit {
	case flex.UnitAuto:
		return "auto"
	case flex.UnitPoints:
		return strconv.FormatFloat(float64(d.Amount), 'f', -1, 32)
	case flex.UnitPercent:
		return strconv.FormatFloat(float64(d.Amount), 'f', -1, 32) + "%"
	default:
		return ""
	}
}

func (d Dim) IsZero() bool {
	return d.Unit == flex.UnitUndefined
}

func (d *Dim) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: dimension must be a scalar", ErrDocument, n.Line)
	}
	v, err := ParseDim(n.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	*d = v
	return nil
}

func (d Dim) MarshalYAML() (any, error) {
	if d.Unit == flex.UnitPoints {
		return d.Amount, nil
	}
	return d.String(), nil
}

func (d *Dim) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrDocument, err)
	}
	var s string
	switch v := raw.(type) {
	case nil:
	case string:
		s = v
	case float64:
		s = strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Errorf("%w: bad dimension %s", ErrDocument, b)
	}
	v, err := ParseDim(s)
	if err != nil {
		return err
	}
	*d = v
	return nil
}

func (d Dim) MarshalJSON() ([]byte, error) {
	if d.Unit == flex.UnitPoints {
		return json.Marshal(d.Amount)
	}
	return json.Marshal(d.String())
}

// Space is available space in documents: a number is definite,
// "at-most N" is bounded, and "unbounded" or an empty value is unbounded.
type Space struct {
	flex.AvailableSpace
}

// ParseSpace parses the textual form of available space. Bounded values
// must be finite and non-negative.
func ParseSpace(s string) (Space, error) {
	f := strings.Fields(strings.ToLower(s))
	var (
		num string
		mk  func(float32) flex.AvailableSpace
	)
	switch {
	case len(f) == 0 || (len(f) == 1 && f[0] == "unbounded"):
		return Space{flex.Unbounded()}, nil
	case len(f) == 1:
		num, mk = f[0], flex.Definite
	case len(f) == 2 && f[0] == "at-most":
		num, mk = f[1], flex.AtMost
	default:
		return Space{}, fmt.Errorf("%w: bad available space %q", ErrDocument, s)
	}
	v, err := strconv.ParseFloat(num, 32)
	if err != nil {
		return Space{}, fmt.Errorf("%w: bad available space %q", ErrDocument, s)
	}
	sp := mk(float32(v))
	if err := sp.Validate("available"); err != nil {
		return Space{}, fmt.Errorf("%w: bad available space %q: %v", ErrDocument, s, err)
	}
	return Space{sp}, nil
}

func (s *Space) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: available space must be a scalar", ErrDocument, n.Line)
	}
	v, err := ParseSpace(n.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	*s = v
	return nil
}

func (s *Space) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrDocument, err)
	}
	var str string
	switch v := raw.(type) {
	case nil:
	case string:
		str = v
	case float64:
		str = strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Errorf("%w: bad available space %s", ErrDocument, b)
	}
	v, err := ParseSpace(str)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// String returns the textual form accepted by ParseSpace.
func (s Space) String() string {
	v := strconv.FormatFloat(float64(s.Value), 'f', -1, 32)
	switch s.Mode {
	case flex.MeasureExactly:
		return v
	case flex.MeasureAtMost:
		return "at-most " + v
	default:
		return "unbounded"
	}
}

func (s Space) IsZero() bool {
	return s.Mode == flex.MeasureUndefined
}

func (s Space) MarshalYAML() (any, error) {
	return s.String(), nil
}

func (s Space) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}
