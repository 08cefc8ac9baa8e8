// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package value

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var diffOpts = cmp.Options{
	cmpopts.EquateNaNs(),
	cmpopts.EquateEmpty(),
}

// Diff returns a human-readable report of the differences between a
// and b, or "" if they are Equal.
func Diff(a, b Value) string {
	if Equal(a, b) {
		return ""
	}
	return cmp.Diff(a, b, diffOpts)
}
