package flex

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/grindlemire/go-flex/internal/cache"
	"github.com/grindlemire/go-flex/internal/flexbox"
	"github.com/grindlemire/go-flex/internal/layout"
	"github.com/grindlemire/go-flex/internal/tree"
)

// RemovePolicy decides what happens to the children of a removed node.
type RemovePolicy = tree.RemovePolicy

const (
	RemoveCascade = tree.RemoveCascade
	RemoveOrphan  = tree.RemoveOrphan
)

// CacheStats counts cache activity over the life of an Engine.
type CacheStats = cache.Stats

// Engine owns one node tree and the layout cache built over it.
type Engine struct {
	id       uuid.UUID
	tree     *tree.Tree
	cache    *cache.Store
	resolver *flexbox.Resolver
	log      *zap.Logger

	cacheSize int
	capacity  int
	rounding  Rounding
	scale     float32
}

// New creates an empty Engine.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{
		id:        uuid.New(),
		log:       zap.NewNop(),
		cacheSize: cache.DefaultCapacity,
		capacity:  64,
		scale:     1,
	}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	e.log = e.log.With(zap.Stringer("engine", e.id))
	e.tree = tree.New(e.capacity)
	e.cache = cache.New(e.cacheSize)
	e.resolver = flexbox.New(e.tree, e.cache, flexbox.WithRounding(e.rounding, e.scale))

	e.log.Debug("Engine created",
		zap.Int("cache_size", e.cacheSize),
		zap.Stringer("rounding", e.rounding),
		zap.Float32("point_scale", e.scale))
	return e, nil
}

// ID returns the instance id used in log records.
func (e *Engine) ID() uuid.UUID {
	return e.id
}

// NewNode creates a node with the given style and children. The children
// must be alive and parentless.
func (e *Engine) NewNode(style Style, children ...Handle) (Handle, error) {
	h, err := e.tree.NewNode(style, children...)
	if err != nil {
		return Handle{}, err
	}
	e.log.Debug("Node created", zap.Stringer("node", h), zap.Int("children", len(children)))
	return h, nil
}

// NewLeaf creates a childless node whose content size comes from measure.
func (e *Engine) NewLeaf(style Style, measure MeasureFunc) (Handle, error) {
	h, err := e.tree.NewLeaf(style, measure)
	if err != nil {
		return Handle{}, err
	}
	e.log.Debug("Leaf created", zap.Stringer("node", h), zap.Bool("measured", measure != nil))
	return h, nil
}

// SetStyle replaces the style of h. An invalid style is rejected and the
// previous style kept.
func (e *Engine) SetStyle(h Handle, style Style) error {
	if err := e.tree.SetStyle(h, style); err != nil {
		return err
	}
	e.log.Debug("Style set", zap.Stringer("node", h))
	return nil
}

// Style returns a copy of the style of h.
func (e *Engine) Style(h Handle) (Style, error) {
	return e.tree.Style(h)
}

// SetMeasure registers or, with nil, clears the measure callback of h.
func (e *Engine) SetMeasure(h Handle, measure MeasureFunc) error {
	if err := e.tree.SetMeasure(h, measure); err != nil {
		return err
	}
	e.log.Debug("Measure set", zap.Stringer("node", h), zap.Bool("measured", measure != nil))
	return nil
}

// HasMeasure reports whether h has a measure callback.
func (e *Engine) HasMeasure(h Handle) (bool, error) {
	return e.tree.HasMeasure(h)
}

// SetChildren replaces the child list of h. Dropped children become roots.
func (e *Engine) SetChildren(h Handle, children []Handle) error {
	if err := e.tree.SetChildren(h, children); err != nil {
		return err
	}
	e.log.Debug("Children set", zap.Stringer("node", h), zap.Int("children", len(children)))
	return nil
}

// AddChild appends child to the children of h.
func (e *Engine) AddChild(h, child Handle) error {
	if err := e.tree.AddChild(h, child); err != nil {
		return err
	}
	e.log.Debug("Child added", zap.Stringer("node", h), zap.Stringer("child", child))
	return nil
}

// InsertChild inserts child at index; index may equal the child count.
func (e *Engine) InsertChild(h Handle, index int, child Handle) error {
	if err := e.tree.InsertChild(h, index, child); err != nil {
		return err
	}
	e.log.Debug("Child inserted", zap.Stringer("node", h), zap.Stringer("child", child), zap.Int("index", index))
	return nil
}

// RemoveChild detaches child from h. The child stays alive as a root.
func (e *Engine) RemoveChild(h, child Handle) error {
	if err := e.tree.RemoveChild(h, child); err != nil {
		return err
	}
	e.log.Debug("Child removed", zap.Stringer("node", h), zap.Stringer("child", child))
	return nil
}

// RemoveChildAt detaches and returns the child at index.
func (e *Engine) RemoveChildAt(h Handle, index int) (Handle, error) {
	child, err := e.tree.RemoveChildAt(h, index)
	if err != nil {
		return Handle{}, err
	}
	e.log.Debug("Child removed", zap.Stringer("node", h), zap.Stringer("child", child), zap.Int("index", index))
	return child, nil
}

// ReplaceChildAt swaps the child at index for child and returns the old one.
func (e *Engine) ReplaceChildAt(h Handle, index int, child Handle) (Handle, error) {
	old, err := e.tree.ReplaceChildAt(h, index, child)
	if err != nil {
		return Handle{}, err
	}
	e.log.Debug("Child replaced", zap.Stringer("node", h), zap.Stringer("old", old), zap.Stringer("child", child))
	return old, nil
}

// Remove deletes h. With RemoveCascade its whole subtree goes too; with
// RemoveOrphan its children become roots. It returns the deleted handles.
func (e *Engine) Remove(h Handle, policy RemovePolicy) ([]Handle, error) {
	removed, err := e.tree.Remove(h, policy)
	if err != nil {
		return nil, err
	}
	for _, r := range removed {
		e.cache.Drop(r)
	}
	e.log.Debug("Node removed", zap.Stringer("node", h), zap.Int("removed", len(removed)))
	return removed, nil
}

// Parent returns the parent of h, or the zero Handle for a root.
func (e *Engine) Parent(h Handle) (Handle, error) {
	return e.tree.Parent(h)
}

// Children returns a copy of the child list of h.
func (e *Engine) Children(h Handle) ([]Handle, error) {
	return e.tree.Children(h)
}

// ChildCount returns the number of children of h.
func (e *Engine) ChildCount(h Handle) (int, error) {
	return e.tree.ChildCount(h)
}

// ChildAt returns the child of h at index.
func (e *Engine) ChildAt(h Handle, index int) (Handle, error) {
	return e.tree.ChildAt(h, index)
}

// Contains reports whether h is alive in this engine.
func (e *Engine) Contains(h Handle) bool {
	return e.tree.Contains(h)
}

// Len returns the number of live nodes.
func (e *Engine) Len() int {
	return e.tree.Len()
}

// MarkDirty forces h and its ancestors to be recomputed. Use it when the
// content behind a measure callback changed.
func (e *Engine) MarkDirty(h Handle) error {
	if err := e.tree.MarkDirty(h); err != nil {
		return err
	}
	e.log.Debug("Node marked dirty", zap.Stringer("node", h))
	return nil
}

// IsDirty reports whether h needs layout.
func (e *Engine) IsDirty(h Handle) (bool, error) {
	return e.tree.IsDirty(h)
}

// Clear removes every node. Handles issued before Clear become invalid.
func (e *Engine) Clear() {
	e.tree.Clear()
	e.cache.Reset()
	e.log.Debug("Engine cleared")
}

// ComputeLayout lays out the subtree rooted at root within the given space.
// The returned Layout belongs to the caller. A bounded space that is not
// finite or is negative yields a *DimensionError.
func (e *Engine) ComputeLayout(root Handle, width, height AvailableSpace) (Layout, error) {
	if err := width.Validate("available.width"); err != nil {
		return Layout{}, err
	}
	if err := height.Validate("available.height"); err != nil {
		return Layout{}, err
	}
	before := e.cache.Stats()
	l, err := e.resolver.Compute(root, layout.Size[layout.AvailableSpace]{Width: width, Height: height})
	if err != nil {
		return Layout{}, err
	}
	if ce := e.log.Check(zap.DebugLevel, "Layout computed"); ce != nil {
		after := e.cache.Stats()
		ce.Write(
			zap.Stringer("root", root),
			zap.Stringer("width", width),
			zap.Stringer("height", height),
			zap.Uint64("hits", after.Hits-before.Hits),
			zap.Uint64("misses", after.Misses-before.Misses),
			zap.Uint64("measures", after.Measures-before.Measures),
		)
	}
	return l, nil
}

// CacheStats returns the cache counters accumulated so far.
func (e *Engine) CacheStats() CacheStats {
	return e.cache.Stats()
}
