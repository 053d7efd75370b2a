// Package cache memoizes per-node layout results between passes.
//
// Each node owns a small ring of entries keyed by the constraints the node
// was computed under. A dirty node bypasses its entries: the fresh result
// replaces everything the node had cached and the node is marked clean.
package cache

import (
	"fmt"

	"github.com/grindlemire/go-flex/internal/layout"
)

const (
	// DefaultCapacity is the number of entries kept per node.
	DefaultCapacity = 4
	// MaxCapacity bounds WithCapacity.
	MaxCapacity = 16
)

// Key identifies the inputs of one node computation: the space offered on
// each axis and the size percentages resolve against.
type Key struct {
	Available  layout.Size[layout.AvailableSpace]
	ParentSize layout.Size[layout.Number]
}

func (k Key) String() string {
	return fmt.Sprintf("avail=%vx%v parent=%vx%v",
		k.Available.Width, k.Available.Height, k.ParentSize.Width, k.ParentSize.Height)
}

// Entry is one memoized result. Layout is nil when only the border-box size
// was computed.
type Entry struct {
	Key    Key
	Size   layout.Size[float32]
	Layout *layout.Layout
}

// Full reports whether the entry carries a positioned subtree.
func (e Entry) Full() bool {
	return e.Layout != nil
}

// DirtyTracker exposes the dirty flags of the node tree.
type DirtyTracker interface {
	NeedsLayout(h layout.Handle) bool
	MarkClean(h layout.Handle)
}

// Stats counts cache traffic since the store was created or reset.
type Stats struct {
	Hits     uint64
	Misses   uint64
	Measures uint64
}

type slot struct {
	generation uint32
	entries    []Entry
	next       int
}

// Store holds cache entries for every node of one tree.
type Store struct {
	slots    []slot
	capacity int
	stats    Stats
}

// New creates a store keeping capacity entries per node. Capacity is
// clamped to [1, MaxCapacity].
func New(capacity int) *Store {
	return &Store{capacity: min(max(capacity, 1), MaxCapacity)}
}

// Capacity returns the per-node entry bound.
func (s *Store) Capacity() int {
	return s.capacity
}

func (s *Store) slot(h layout.Handle) *slot {
	idx := int(h.Index())
	if idx >= len(s.slots) {
		s.slots = append(s.slots, make([]slot, idx+1-len(s.slots))...)
	}
	sl := &s.slots[idx]
	if sl.generation != h.Generation() {
		*sl = slot{generation: h.Generation()}
	}
	return sl
}

// GetOrCompute returns the entry for (h, key). When full is set the entry
// must carry a Layout. Dirty nodes always recompute and their previous
// entries are discarded.
func (s *Store) GetOrCompute(tracker DirtyTracker, h layout.Handle, key Key, full bool, compute func() Entry) Entry {
	sl := s.slot(h)

	if tracker.NeedsLayout(h) {
		s.stats.Misses++
		e := compute()
		e.Key = key
		sl.entries = append(sl.entries[:0], e)
		sl.next = 1 % s.capacity
		tracker.MarkClean(h)
		return e
	}

	if e, ok := sl.lookup(key, full); ok {
		s.stats.Hits++
		return e
	}

	s.stats.Misses++
	e := compute()
	e.Key = key
	sl.store(e, s.capacity)
	return e
}

func (sl *slot) lookup(key Key, full bool) (Entry, bool) {
	for _, e := range sl.entries {
		if e.Key == key && (!full || e.Full()) {
			return e, true
		}
	}
	return Entry{}, false
}

// store upgrades a size-only entry with the same key in place, otherwise
// appends until capacity and then overwrites the oldest entry.
func (sl *slot) store(e Entry, capacity int) {
	for i := range sl.entries {
		if sl.entries[i].Key == e.Key {
			sl.entries[i] = e
			return
		}
	}
	if len(sl.entries) < capacity {
		sl.entries = append(sl.entries, e)
		sl.next = len(sl.entries) % capacity
		return
	}
	sl.entries[sl.next] = e
	sl.next = (sl.next + 1) % capacity
}

// Entries returns a copy of the entries cached for h.
func (s *Store) Entries(h layout.Handle) []Entry {
	idx := int(h.Index())
	if idx >= len(s.slots) || s.slots[idx].generation != h.Generation() {
		return nil
	}
	return append([]Entry(nil), s.slots[idx].entries...)
}

// Drop forgets every entry of h.
func (s *Store) Drop(h layout.Handle) {
	idx := int(h.Index())
	if idx < len(s.slots) && s.slots[idx].generation == h.Generation() {
		s.slots[idx] = slot{generation: h.Generation()}
	}
}

// Reset forgets all entries and zeroes the counters.
func (s *Store) Reset() {
	s.slots = s.slots[:0]
	s.stats = Stats{}
}

// RecordMeasure counts one invocation of a leaf measure callback.
func (s *Store) RecordMeasure() {
	s.stats.Measures++
}

// Stats returns the counters.
func (s *Store) Stats() Stats {
	return s.stats
}
