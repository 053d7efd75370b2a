// Package flex computes flexbox layouts for trees of abstract nodes.
//
// A host builds nodes in an Engine, gives each a Style and optionally a
// measure callback for leaves with intrinsic content (text, images), and
// asks for a layout:
//
//	eng, _ := flex.New()
//	text, _ := eng.NewLeaf(flex.DefaultStyle(), measure.Cells("hello"))
//	root, _ := eng.NewNode(flex.DefaultStyle(), text)
//	l, _ := eng.ComputeLayout(root, flex.Definite(80), flex.Unbounded())
//
// Results are memoized per node. Style and child changes mark the node and
// its ancestors dirty so the next ComputeLayout only revisits what changed.
// When measured content changes without a style change, call MarkDirty.
//
// An Engine is not safe for concurrent use. Separate engines share nothing
// and may run on separate goroutines.
package flex
