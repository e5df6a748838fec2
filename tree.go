// Copyright 2026 The spatialindex (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package spatialindex

// DefaultNodeSize is the fanout used by New. Any small constant
// preserves the asymptotic behavior of the index; 16 keeps node groups
// within a cache line or two.
const DefaultNodeSize = 16

// A levelRange is the closed/open pair [start, end) of flat node
// offsets comprising one tree level. Level 0 holds the leaf boxes in
// insertion order; the last level holds the single root node.
type levelRange struct {
	start, end int
}

// levelify creates the list of levelRange structures which
// deterministically results from a given leaf count and fanout.
//
// For example, numItems = 4, nodeSize = 2 yields [[0, 4], [4, 6],
// [6, 7]]: four leaves, two internal nodes above them, then the root.
func levelify(numItems, nodeSize int) []levelRange {
	levels := make([]levelRange, 1, 8)
	levels[0] = levelRange{0, numItems}
	n := numItems
	for n > 1 {
		start := levels[len(levels)-1].end
		n = (n + nodeSize - 1) / nodeSize
		levels = append(levels, levelRange{start, start + n})
	}
	return levels
}

// A packedTree is the sealed flat-array bounding-volume hierarchy
// behind a finished SpatialIndex. The boxes arena stores the leaf
// boxes first, then each internal level's enclosing boxes, root last.
// The parallel children table maps an internal node's flat offset to
// the flat offset of its first child; for a leaf it is the leaf's own
// offset. A packedTree is immutable once built.
type packedTree struct {
	numItems int
	nodeSize int
	levels   []levelRange
	boxes    []Rect
	children []int
}

// A ticket is a pending work item in the search loop: the flat offset
// of the first node in a sibling group, plus the level the group
// belongs to.
type ticket struct {
	pos   int
	level int
}

// newPackedTree bulk-loads a tree over the given leaf boxes, which
// must be non-empty as a slice (individual boxes may be EmptyRect).
// Internal levels are built bottom-up by grouping runs of nodeSize
// consecutive boxes under a parent holding their enclosing box.
func newPackedTree(leaves []Rect, nodeSize int) *packedTree {
	numItems := len(leaves)
	levels := levelify(numItems, nodeSize)
	numNodes := levels[len(levels)-1].end

	boxes := make([]Rect, numNodes)
	copy(boxes, leaves)
	children := make([]int, numNodes)
	for i := 0; i < numItems; i++ {
		children[i] = i
	}

	for l := 0; l+1 < len(levels); l++ {
		level := levels[l]
		parent := levels[l+1].start
		for start := level.start; start < level.end; start += nodeSize {
			end := start + nodeSize
			if level.end < end {
				end = level.end
			}
			group := EmptyRect
			for i := start; i < end; i++ {
				group.Expand(&boxes[i])
			}
			boxes[parent] = group
			children[parent] = start
			parent++
		}
	}

	return &packedTree{
		numItems: numItems,
		nodeSize: nodeSize,
		levels:   levels,
		boxes:    boxes,
		children: children,
	}
}

// bounds returns the root node's box, the enclosing box of every
// non-empty leaf.
func (t *packedTree) bounds() Rect {
	return t.boxes[len(t.boxes)-1]
}

// search invokes visit exactly once for every leaf box intersecting q,
// which must already be normalized. The traversal is non-recursive: an
// explicit stack of tickets tracks the sibling groups still to be
// scanned, and each group's end offset is capped by its level bound.
//
// When q fully covers an internal node's box, every leaf beneath it is
// guaranteed to match, so the loop descends straight to the subtree's
// contiguous leaf range via emitLeaves instead of re-testing each
// intermediate node.
//
// Visitation order is deterministic for a given tree and query but
// otherwise unspecified.
func (t *packedTree) search(q *Rect, visit func(index int, box *Rect)) {
	top := len(t.levels) - 1
	stack := make([]ticket, 1, 16)
	stack[0] = ticket{pos: t.levels[top].start, level: top}

	for len(stack) > 0 {
		tk := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		end := tk.pos + t.nodeSize
		if t.levels[tk.level].end < end {
			end = t.levels[tk.level].end
		}
		for pos := tk.pos; pos < end; pos++ {
			b := &t.boxes[pos]
			if !b.intersects(q) {
				continue
			}
			if tk.level == 0 {
				visit(pos, b)
			} else if q.covers(b) {
				t.emitLeaves(pos, tk.level, visit)
			} else {
				stack = append(stack, ticket{pos: t.children[pos], level: tk.level - 1})
			}
		}
	}
}

// emitLeaves visits every leaf in the subtree rooted at the internal
// node with flat offset pos at the given level, following first-child
// pointers down to the leaf level. No intersection tests are made:
// every leaf is already known to match. Canonical-empty leaves are the
// one exception, since they match nothing by definition.
func (t *packedTree) emitLeaves(pos, level int, visit func(index int, box *Rect)) {
	span := 1
	for l := level; l > 0; l-- {
		pos = t.children[pos]
		span *= t.nodeSize
	}
	end := pos + span
	if t.numItems < end {
		end = t.numItems
	}
	for i := pos; i < end; i++ {
		b := &t.boxes[i]
		if !b.Empty() {
			visit(i, b)
		}
	}
}
