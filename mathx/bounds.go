// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// Clamp returns x limited to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// CDFBounds returns the CDF value p computed at x for a distribution
// with support [lower, upper], forced to exactly 0 at or below lower
// and exactly 1 at or above upper, and clamped into [0, 1] in
// between to absorb floating-point error.
func CDFBounds(p, x, lower, upper float64) float64 {
	switch {
	case math.IsNaN(x):
		return nan
	case x < lower:
		return 0
	case x >= upper:
		return 1
	}
	return Clamp(p, 0, 1)
}

// PPFBounds returns the quantile x computed for probability q of a
// continuous distribution with support [lower, upper]. It returns NaN
// for q outside [0, 1] and the support bounds at q = 0 and q = 1.
func PPFBounds(x, q, lower, upper float64) float64 {
	switch {
	case math.IsNaN(q) || q < 0 || q > 1:
		return nan
	case q == 0:
		return lower
	case q == 1:
		return upper
	}
	return Clamp(x, lower, upper)
}

// PPFBoundsDisc is PPFBounds for a discrete distribution. At q = 0
// it returns lower-1, the largest value with no probability mass at
// or below it.
func PPFBoundsDisc(x, q, lower, upper float64) float64 {
	switch {
	case math.IsNaN(q) || q < 0 || q > 1:
		return nan
	case q == 0:
		return lower - 1
	case q == 1:
		return upper
	}
	return Clamp(x, lower, upper)
}

// ISFBounds returns the inverse survival value x computed for
// probability q of a continuous distribution with support [lower,
// upper]. It returns NaN for q outside [0, 1], upper at q = 0 and
// lower at q = 1.
func ISFBounds(x, q, lower, upper float64) float64 {
	switch {
	case math.IsNaN(q) || q < 0 || q > 1:
		return nan
	case q == 0:
		return upper
	case q == 1:
		return lower
	}
	return Clamp(x, lower, upper)
}

// ISFBoundsDisc is ISFBounds for a discrete distribution. At q = 1 it
// returns lower-1.
func ISFBoundsDisc(x, q, lower, upper float64) float64 {
	switch {
	case math.IsNaN(q) || q < 0 || q > 1:
		return nan
	case q == 0:
		return upper
	case q == 1:
		return lower - 1
	}
	return Clamp(x, lower, upper)
}
