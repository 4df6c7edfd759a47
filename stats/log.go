// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import "go.uber.org/zap"

var logger = zap.NewNop()

// SetLogger sets the logger used to report non-fatal conditions,
// such as a maximum likelihood fit that did not converge. The
// default logger discards everything. SetLogger is not safe to call
// concurrently with fitting.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}
