// Copyright 2026 The spatialindex (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package spatialindex provides the bulk-loaded, static spatial index
// glyph renderers use to answer "which data rows intersect this
// region" in sublinear time, supporting bounds queries for
// auto-ranging and index queries for hit-testing and selection.
//
// A SpatialIndex is declared with a fixed item capacity, populated
// with exactly that many rectangles (one per data row, in row order),
// and sealed with Finish. After Finish the index is immutable and safe
// for concurrent read-only queries.
package spatialindex
