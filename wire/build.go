package wire

import (
	"fmt"
	"strconv"

	"go.uber.org/multierr"

	flex "github.com/grindlemire/go-flex"
	"github.com/grindlemire/go-flex/measure"
)

// Tree is a document loaded into an engine.
type Tree struct {
	Name      string
	Root      flex.Handle
	Available Available

	ids     map[flex.Handle]string
	handles map[string]flex.Handle
}

// Handle returns the node with the given id. Nodes without an id are
// named by their path from the root, such as "root/0/2".
func (t *Tree) Handle(id string) (flex.Handle, bool) {
	h, ok := t.handles[id]
	return h, ok
}

// ID returns the document id of h.
func (t *Tree) ID(h flex.Handle) string {
	return t.ids[h]
}

// Compute lays out the tree in the space the document asks for.
func (t *Tree) Compute(e *flex.Engine) (flex.Layout, error) {
	return e.ComputeLayout(t.Root, t.Available.Width.AvailableSpace, t.Available.Height.AvailableSpace)
}

// planned is a validated node waiting to be created.
type planned struct {
	id       string
	style    flex.Style
	measure  flex.MeasureFunc
	children []*planned
}

// Build validates doc and creates its nodes in e. Every problem in the
// document is reported; on error nothing is created.
func Build(e *flex.Engine, doc *Document) (*Tree, error) {
	t := &Tree{
		Name:      doc.Name,
		Available: doc.Available,
		ids:       make(map[flex.Handle]string),
		handles:   make(map[string]flex.Handle),
	}

	seen := make(map[string]string)
	root, err := plan(&doc.Root, "root", seen)
	if err != nil {
		return nil, err
	}

	t.Root, err = t.create(e, root)
	if err != nil {
		return nil, err
	}
	return t, nil
}

func plan(n *Node, path string, seen map[string]string) (*planned, error) {
	var errs error
	p := &planned{id: n.ID}
	if p.id == "" {
		p.id = path
	}
	if prev, dup := seen[p.id]; dup {
		errs = multierr.Append(errs, fmt.Errorf("%w: %s: id %q already used by %s", ErrDocument, path, p.id, prev))
	}
	seen[p.id] = path

	st, err := n.Style.ToStyle()
	if err != nil {
		errs = multierr.Append(errs, fmt.Errorf("%s: %w", path, err))
	} else if err := st.Validate(); err != nil {
		errs = multierr.Append(errs, fmt.Errorf("%s: %w", path, err))
	}
	p.style = st

	switch {
	case n.Text != "" && n.Measure != nil:
		errs = multierr.Append(errs, fmt.Errorf("%w: %s: text and measure are exclusive", ErrDocument, path))
	case (n.Text != "" || n.Measure != nil) && len(n.Children) > 0:
		errs = multierr.Append(errs, fmt.Errorf("%w: %s: a measured node cannot have children", ErrDocument, path))
	case n.Text != "":
		p.measure = measure.Cells(n.Text)
	case n.Measure != nil:
		if n.Measure.Width < 0 || n.Measure.Height < 0 {
			errs = multierr.Append(errs, fmt.Errorf("%w: %s: negative measure", ErrDocument, path))
		}
		p.measure = fixed(*n.Measure)
	}

	for i := range n.Children {
		c, err := plan(&n.Children[i], path+"/"+strconv.Itoa(i), seen)
		errs = multierr.Append(errs, err)
		p.children = append(p.children, c)
	}
	if errs != nil {
		return nil, errs
	}
	return p, nil
}

// create makes the nodes of p bottom-up.
func (t *Tree) create(e *flex.Engine, p *planned) (flex.Handle, error) {
	kids := make([]flex.Handle, 0, len(p.children))
	for _, c := range p.children {
		h, err := t.create(e, c)
		if err != nil {
			return flex.Handle{}, err
		}
		kids = append(kids, h)
	}

	var (
		h   flex.Handle
		err error
	)
	if p.measure != nil {
		h, err = e.NewLeaf(p.style, p.measure)
	} else {
		h, err = e.NewNode(p.style, kids...)
	}
	if err != nil {
		return flex.Handle{}, fmt.Errorf("%s: %w", p.id, err)
	}
	t.ids[h] = p.id
	t.handles[p.id] = h
	return h, nil
}

// fixed reports the same content size for any constraint.
func fixed(x Extent) flex.MeasureFunc {
	return func(flex.MeasureMode, float32, flex.MeasureMode, float32) flex.Size[float32] {
		return flex.Size[float32]{Width: x.Width, Height: x.Height}
	}
}
