// Copyright 2026 The spatialindex (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package spatialindex

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// A SpatialIndex answers broad-phase spatial queries against a fixed
// set of axis-aligned rectangles, one per data row. Slots correspond
// 1:1 with insertion order, so the indices reported by queries map
// straight back to the caller's rows.
//
// The lifecycle is strict: declare the capacity with New, add exactly
// capacity items, seal with Finish, then query. A zero-capacity index
// is permanently absent: mutations are no-ops and every query returns
// the trivial result.
//
// A SpatialIndex must be built from a single goroutine. Once finished
// it is immutable and queries are safe to run concurrently.
type SpatialIndex struct {
	nodeSize int
	capacity int
	boxes    []Rect
	bbox     Rect
	tree     *packedTree
}

// New creates an index with room for exactly capacity items and the
// default fanout. Panics if capacity is negative.
func New(capacity int) *SpatialIndex {
	return NewWithNodeSize(capacity, DefaultNodeSize)
}

// NewWithNodeSize creates an index with room for exactly capacity
// items and the given fanout. Panics if capacity is negative or
// nodeSize is less than 2.
func NewWithNodeSize(capacity, nodeSize int) *SpatialIndex {
	if capacity < 0 {
		fmtPanic("negative capacity (%d)", capacity)
	} else if nodeSize < 2 {
		textPanic("node size must be at least 2")
	}
	si := &SpatialIndex{
		nodeSize: nodeSize,
		capacity: capacity,
		bbox:     EmptyRect,
	}
	if capacity > 0 {
		si.boxes = make([]Rect, 0, capacity)
	}
	return si
}

// AddRect appends one rectangle and returns its 0-based slot, the
// index reported by queries for this item. If any coordinate is
// non-finite the slot stores EmptyRect instead: it still consumes a
// slot, preserving the row-to-slot correspondence for rows with
// missing geometry, but can never match a query. Finite edges are
// normalized. On a zero-capacity index AddRect is a no-op and reports
// -1.
//
// Panics if called more than capacity times, or after Finish.
func (si *SpatialIndex) AddRect(x0, y0, x1, y1 float64) int {
	r := Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
	if r.Finite() {
		r = r.Normalize()
	} else {
		r = EmptyRect
	}
	return si.add(r)
}

// AddPoint appends the point (x, y) as a degenerate rectangle. See
// AddRect for the slot and degenerate-coordinate rules.
func (si *SpatialIndex) AddPoint(x, y float64) int {
	return si.AddRect(x, y, x, y)
}

// AddEmpty appends a placeholder slot that never matches any query,
// for rows known in advance to have no geometry.
func (si *SpatialIndex) AddEmpty() int {
	return si.add(EmptyRect)
}

func (si *SpatialIndex) add(r Rect) int {
	if si.capacity == 0 {
		return -1
	}
	if si.tree != nil {
		textPanic("add after Finish")
	}
	if len(si.boxes) == si.capacity {
		fmtPanic("add beyond declared capacity (%d)", si.capacity)
	}
	i := len(si.boxes)
	si.boxes = append(si.boxes, r)
	si.bbox.Expand(&r)
	return i
}

// Finish seals the index, building the internal tree levels bottom-up.
// It must be called exactly once, after exactly capacity add calls and
// before any query. On a zero-capacity index Finish is a no-op.
func (si *SpatialIndex) Finish() {
	if si.capacity == 0 {
		return
	}
	if si.tree != nil {
		textPanic("Finish called more than once")
	}
	if len(si.boxes) != si.capacity {
		fmtPanic("Finish after %d adds, expected %d", len(si.boxes), si.capacity)
	}
	si.tree = newPackedTree(si.boxes, si.nodeSize)
	si.boxes = nil
}

// sealed returns the packed tree, nil for the absent index, panicking
// if Finish has not been called.
func (si *SpatialIndex) sealed() *packedTree {
	if si.capacity == 0 {
		return nil
	}
	if si.tree == nil {
		textPanic("query before Finish")
	}
	return si.tree
}

// Search invokes visit exactly once for every stored box intersecting
// q. The filter is over bounding boxes, not exact glyph geometry, so
// the answer is a superset-safe broad phase for hit-testing. q is
// normalized first; searching with EmptyRect visits nothing.
//
// Visitation order is deterministic for a given index and query but
// otherwise unspecified. Panics if the index has not been finished.
func (si *SpatialIndex) Search(q Rect, visit func(index int, box Rect)) {
	t := si.sealed()
	if t == nil {
		return
	}
	q = q.Normalize()
	t.search(&q, func(i int, b *Rect) {
		visit(i, *b)
	})
}

// Indices returns the set of slots whose boxes intersect q, for
// mapping hits back to data-source rows. The set is empty for the
// absent index. Panics if the index has not been finished.
func (si *SpatialIndex) Indices(q Rect) *bitset.BitSet {
	set := bitset.New(uint(si.capacity))
	t := si.sealed()
	if t == nil {
		return set
	}
	q = q.Normalize()
	t.search(&q, func(i int, _ *Rect) {
		set.Set(uint(i))
	})
	return set
}

// Bounds folds the boxes intersecting q into the tightest extent
// visible within the query window: independently per edge, the extreme
// matched edge that still lies inside the window (minimum for X0/Y0,
// maximum for X1/Y1). This is not a plain union. The fold starts from
// EmptyRect, so with no matches Bounds returns EmptyRect, and an edge
// whose every candidate falls outside the window keeps its EmptyRect
// value. Panics if the index has not been finished.
func (si *SpatialIndex) Bounds(q Rect) Rect {
	b := EmptyRect
	t := si.sealed()
	if t == nil {
		return b
	}
	q = q.Normalize()
	t.search(&q, func(_ int, r *Rect) {
		if r.X0 >= q.X0 && r.X0 < b.X0 {
			b.X0 = r.X0
		}
		if r.X1 <= q.X1 && r.X1 > b.X1 {
			b.X1 = r.X1
		}
		if r.Y0 >= q.Y0 && r.Y0 < b.Y0 {
			b.Y0 = r.Y0
		}
		if r.Y1 <= q.Y1 && r.Y1 > b.Y1 {
			b.Y1 = r.Y1
		}
	})
	return b
}

// BBox returns the enclosing box of every finite item added so far,
// EmptyRect if there are none. Unlike the query methods it may be
// called at any point in the lifecycle.
func (si *SpatialIndex) BBox() Rect {
	return si.bbox
}

// Len returns the number of items added so far; after Finish it equals
// Cap.
func (si *SpatialIndex) Len() int {
	if si.tree != nil {
		return si.tree.numItems
	}
	return len(si.boxes)
}

// Cap returns the declared item capacity.
func (si *SpatialIndex) Cap() int {
	return si.capacity
}

// NodeSize returns the fanout of the index.
func (si *SpatialIndex) NodeSize() int {
	return si.nodeSize
}

// String returns a summary description of the index.
func (si *SpatialIndex) String() string {
	return fmt.Sprintf("SpatialIndex{BBox:%s,Len:%d,NodeSize:%d}", si.bbox, si.Len(), si.nodeSize)
}
