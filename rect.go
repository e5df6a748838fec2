// Copyright 2026 The spatialindex (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package spatialindex

import (
	"fmt"
	"math"
)

// A Rect is an axis-aligned rectangle in data or screen space. A
// normalized Rect has X0 <= X1 and Y0 <= Y1; the exception is
// EmptyRect, whose inverted infinite edges mark the absence of
// geometry.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// EmptyRect is the canonical empty rectangle. It intersects nothing,
// including itself, and is the identity element of Expand.
var EmptyRect = Rect{
	X0: math.Inf(1),
	Y0: math.Inf(1),
	X1: math.Inf(-1),
	Y1: math.Inf(-1),
}

// Pt returns the degenerate rectangle representing the point (x, y).
func Pt(x, y float64) Rect {
	return Rect{X0: x, Y0: y, X1: x, Y1: y}
}

// Empty reports whether r is inverted on either axis and therefore
// contains no points.
func (r *Rect) Empty() bool {
	return r.X1 < r.X0 || r.Y1 < r.Y0
}

// Finite reports whether all four edges of r are finite.
func (r *Rect) Finite() bool {
	return isFinite(r.X0) && isFinite(r.Y0) && isFinite(r.X1) && isFinite(r.Y1)
}

func isFinite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

// Width returns the horizontal extent of r.
func (r *Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the vertical extent of r.
func (r *Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// Expand grows r by the minimum amount required to contain s.
// Expanding by EmptyRect leaves r unchanged.
func (r *Rect) Expand(s *Rect) {
	if s.X0 < r.X0 {
		r.X0 = s.X0
	}
	if s.Y0 < r.Y0 {
		r.Y0 = s.Y0
	}
	if s.X1 > r.X1 {
		r.X1 = s.X1
	}
	if s.Y1 > r.Y1 {
		r.Y1 = s.Y1
	}
}

// ExpandXY grows r by the minimum amount required to contain the point
// (x, y).
func (r *Rect) ExpandXY(x, y float64) {
	if x < r.X0 {
		r.X0 = x
	}
	if y < r.Y0 {
		r.Y0 = y
	}
	if x > r.X1 {
		r.X1 = x
	}
	if y > r.Y1 {
		r.Y1 = y
	}
}

// Normalize returns r with each pair of edges ordered so that X0 <= X1
// and Y0 <= Y1. A pair is swapped only when both members are finite:
// non-finite markers, in particular EmptyRect, pass through unchanged.
func (r *Rect) Normalize() Rect {
	n := *r
	if n.X0 > n.X1 && isFinite(n.X0) && isFinite(n.X1) {
		n.X0, n.X1 = n.X1, n.X0
	}
	if n.Y0 > n.Y1 && isFinite(n.Y0) && isFinite(n.Y1) {
		n.Y0, n.Y1 = n.Y1, n.Y0
	}
	return n
}

// intersects reports whether r and q overlap. Touching edges count as
// overlap. An empty rectangle intersects nothing, even a query of
// infinite extent.
func (r *Rect) intersects(q *Rect) bool {
	if r.Empty() || q.Empty() {
		return false
	}
	return q.X1 >= r.X0 && q.Y1 >= r.Y0 && q.X0 <= r.X1 && q.Y0 <= r.Y1
}

// covers reports whether every point of s lies within r.
func (r *Rect) covers(s *Rect) bool {
	return s.X0 >= r.X0 && s.Y0 >= r.Y0 && s.X1 <= r.X1 && s.Y1 <= r.Y1
}

// String returns a compact bracketed form of r, for example
// "[-1,-1,1,1]".
func (r Rect) String() string {
	return fmt.Sprintf("[%.8g,%.8g,%.8g,%.8g]", r.X0, r.Y0, r.X1, r.Y1)
}
