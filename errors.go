// Copyright 2026 The spatialindex (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package spatialindex

import "fmt"

const packageName = "spatialindex: "

// Every failure mode in this package is a caller bug (precondition
// violation), so the package panics rather than returning errors.

func textPanic(text string) {
	panic(packageName + text)
}

func fmtPanic(format string, a ...interface{}) {
	panic(fmt.Sprintf(packageName+format, a...))
}
