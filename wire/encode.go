package wire

import (
	"fmt"
	"io"

	json "github.com/json-iterator/go"
	yaml "gopkg.in/yaml.v3"

	flex "github.com/grindlemire/go-flex"
)

// Box is the document form of a computed layout. X and Y are relative to
// the parent's content box.
type Box struct {
	ID       string  `yaml:"id" json:"id"`
	X        float32 `yaml:"x" json:"x"`
	Y        float32 `yaml:"y" json:"y"`
	Width    float32 `yaml:"width" json:"width"`
	Height   float32 `yaml:"height" json:"height"`
	Children []Box   `yaml:"children,omitempty" json:"children,omitempty"`
}

// Result is the output for one document.
type Result struct {
	Name   string `yaml:"name,omitempty" json:"name,omitempty"`
	Layout Box    `yaml:"layout" json:"layout"`
}

// Box converts l, computed for this tree, to its document form.
func (t *Tree) Box(l flex.Layout) Box {
	b := Box{ID: t.ID(l.Handle), X: l.X, Y: l.Y, Width: l.Width, Height: l.Height}
	if len(l.Children) > 0 {
		b.Children = make([]Box, len(l.Children))
		for i, c := range l.Children {
			b.Children[i] = t.Box(c)
		}
	}
	return b
}

// Encode writes v in format f.
func Encode(w io.Writer, f Format, v any) error {
	switch f {
	case FormatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		data = append(data, '\n')
		_, err = w.Write(data)
		return err
	default:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	}
}
