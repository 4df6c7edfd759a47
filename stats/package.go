// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats implements parametric probability distributions.
//
// Each family (Normal, Beta, BetaScaled, Wald, Binomial) accepts
// several equivalent parameterizations, given as a Params map. A
// distribution with every parameter of its parameterization set is
// frozen and can be evaluated; one with missing parameters carries
// only its family and parameterization, and can be completed by
// fitting. Truncated and Censored modify any frozen or unfrozen
// base distribution.
package stats // import "github.com/aclements/go-paramdist/stats"

import "math"

var inf = math.Inf(1)
var nan = math.NaN()
