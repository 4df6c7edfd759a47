// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mathx implements special functions and numeric helpers
// used by the distributions in package stats.
//
// The heavy lifting is done by gonum's mathext and distuv packages.
// This package adds the pieces gonum does not provide (the
// exponential integral, a stable log normal CDF, quantile-domain
// moment integration) and the bounds-clamping helpers that keep
// probabilities inside [0, 1].
package mathx // import "github.com/aclements/go-paramdist/mathx"

import "math"

// Eps is the open-interval substitute for parameter and support
// bounds that are mathematically open at 0 or 1. It is the same
// value everywhere; distributions must not derive their own.
const Eps = 2.220446049250313e-16

var inf = math.Inf(1)
var nan = math.NaN()
