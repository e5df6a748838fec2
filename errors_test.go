// Copyright 2026 The spatialindex (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package spatialindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors(t *testing.T) {
	t.Run("textPanic", func(t *testing.T) {
		assert.PanicsWithValue(t, "spatialindex: foo", func() {
			textPanic("foo")
		})
	})

	t.Run("fmtPanic", func(t *testing.T) {
		assert.PanicsWithValue(t, "spatialindex: my bar is baz-ed to 10", func() {
			fmtPanic("my %s is %s-ed to %d", "bar", "baz", 10)
		})
	})
}
