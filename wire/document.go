// Package wire reads node trees from YAML or JSON documents into an
// engine and writes computed layouts back out.
package wire

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	json "github.com/json-iterator/go"
	yaml "gopkg.in/yaml.v3"
)

// ErrDocument is returned for malformed documents: unknown fields or enum
// names, bad dimension syntax, and inconsistent nodes.
var ErrDocument = errors.New("malformed document")

// Format selects the document encoding.
type Format uint8

const (
	FormatYAML Format = iota
	FormatJSON
)

func (f Format) String() string {
	if f == FormatJSON {
		return "json"
	}
	return "yaml"
}

// ParseFormat accepts "yaml", "yml" or "json".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}
	return 0, fmt.Errorf("unknown format %q", s)
}

// FormatOf guesses the format from a file name; YAML unless it ends in .json.
func FormatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Document is one node tree with the space it is laid out in.
type Document struct {
	Name      string    `yaml:"name,omitempty" json:"name,omitempty"`
	Available Available `yaml:"available,omitempty" json:"available,omitempty"`
	Root      Node      `yaml:"root" json:"root"`
}

// Available is the space offered to the root.
type Available struct {
	Width  Space `yaml:"width,omitempty" json:"width,omitempty"`
	Height Space `yaml:"height,omitempty" json:"height,omitempty"`
}

// Node is one node of a document tree. A node has children, or text, or
// a fixed intrinsic size, or none of these.
type Node struct {
	ID       string  `yaml:"id,omitempty" json:"id,omitempty"`
	Style    Style   `yaml:"style,omitempty" json:"style,omitempty"`
	Text     string  `yaml:"text,omitempty" json:"text,omitempty"`
	Measure  *Extent `yaml:"measure,omitempty" json:"measure,omitempty"`
	Children []Node  `yaml:"children,omitempty" json:"children,omitempty"`
}

// Extent is a fixed intrinsic content size, such as an image's.
type Extent struct {
	Width  float32 `yaml:"width" json:"width"`
	Height float32 `yaml:"height" json:"height"`
}

// Style is the document form of flex.Style. Enum fields hold lowercase
// CSS names ("row-reverse", "space-between"); empty means the default.
type Style struct {
	Display        string   `yaml:"display,omitempty" json:"display,omitempty"`
	PositionType   string   `yaml:"position_type,omitempty" json:"position_type,omitempty"`
	Position       Edges    `yaml:"position,omitempty" json:"position,omitempty"`
	Direction      string   `yaml:"direction,omitempty" json:"direction,omitempty"`
	Wrap           string   `yaml:"wrap,omitempty" json:"wrap,omitempty"`
	JustifyContent string   `yaml:"justify_content,omitempty" json:"justify_content,omitempty"`
	AlignItems     string   `yaml:"align_items,omitempty" json:"align_items,omitempty"`
	AlignSelf      string   `yaml:"align_self,omitempty" json:"align_self,omitempty"`
	AlignContent   string   `yaml:"align_content,omitempty" json:"align_content,omitempty"`
	Gap            Pair     `yaml:"gap,omitempty" json:"gap,omitempty"`
	FlexGrow       *float32 `yaml:"flex_grow,omitempty" json:"flex_grow,omitempty"`
	FlexShrink     *float32 `yaml:"flex_shrink,omitempty" json:"flex_shrink,omitempty"`
	FlexBasis      Dim      `yaml:"flex_basis,omitempty" json:"flex_basis,omitempty"`
	Size           Pair     `yaml:"size,omitempty" json:"size,omitempty"`
	MinSize        Pair     `yaml:"min_size,omitempty" json:"min_size,omitempty"`
	MaxSize        Pair     `yaml:"max_size,omitempty" json:"max_size,omitempty"`
	Margin         Edges    `yaml:"margin,omitempty" json:"margin,omitempty"`
	Padding        Edges    `yaml:"padding,omitempty" json:"padding,omitempty"`
	Border         Edges    `yaml:"border,omitempty" json:"border,omitempty"`
}

// Pair holds one dimension per axis.
type Pair struct {
	Width  Dim `yaml:"width,omitempty" json:"width,omitempty"`
	Height Dim `yaml:"height,omitempty" json:"height,omitempty"`
}

// Edges holds one dimension per side. Specific sides win over X (left and
// right) and Y (top and bottom), which win over All.
type Edges struct {
	All    Dim `yaml:"all,omitempty" json:"all,omitempty"`
	X      Dim `yaml:"x,omitempty" json:"x,omitempty"`
	Y      Dim `yaml:"y,omitempty" json:"y,omitempty"`
	Top    Dim `yaml:"top,omitempty" json:"top,omitempty"`
	Right  Dim `yaml:"right,omitempty" json:"right,omitempty"`
	Bottom Dim `yaml:"bottom,omitempty" json:"bottom,omitempty"`
	Left   Dim `yaml:"left,omitempty" json:"left,omitempty"`
}

// Decode reads one document. Unknown fields are rejected.
func Decode(r io.Reader, f Format) (*Document, error) {
	var doc Document
	switch f {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, documentError(err)
		}
	default:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("%w: empty document", ErrDocument)
			}
			return nil, documentError(err)
		}
	}
	return &doc, nil
}

func documentError(err error) error {
	if errors.Is(err, ErrDocument) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrDocument, err)
}
