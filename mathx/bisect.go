// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

// Bisect returns an x in [low, high] such that |f(x)| <= tolerance
// using the bisection method.
//
// f(low) and f(high) must have opposite signs. If f does not have a
// root in this interval (e.g., it is discontinuous), this returns
// the X of the apparent discontinuity and false.
func Bisect(f func(float64) float64, low, high, tolerance float64) (float64, bool) {
	flow, fhigh := f(low), f(high)
	if -tolerance <= flow && flow <= tolerance {
		return low, true
	}
	if -tolerance <= fhigh && fhigh <= tolerance {
		return high, true
	}
	if math.Signbit(flow) == math.Signbit(fhigh) {
		panic("root of f is not bracketed by [low, high]")
	}
	for {
		mid := (high + low) / 2
		fmid := f(mid)
		if -tolerance <= fmid && fmid <= tolerance {
			return mid, true
		}
		if mid == high || mid == low {
			return mid, false
		}
		if math.Signbit(fmid) == math.Signbit(flow) {
			low = mid
			flow = fmid
		} else {
			high = mid
			fhigh = fmid
		}
	}
}

// InvertCDF returns the x in [lower, upper] at which the
// non-decreasing function cdf reaches q. Infinite bounds are replaced
// by a bracket grown geometrically outward from start in steps of
// scale.
//
// q must be in (0, 1); callers handle the endpoints with PPFBounds.
func InvertCDF(cdf func(float64) float64, q, lower, upper, start, scale float64) float64 {
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		scale = 1
	}
	lo, hi := lower, upper
	if math.IsInf(lo, -1) {
		lo = math.Min(start, hi) - scale
		for step := scale; cdf(lo) > q; step *= 2 {
			lo -= step
		}
	}
	if math.IsInf(hi, 1) {
		hi = math.Max(start, lo) + scale
		for step := scale; cdf(hi) < q; step *= 2 {
			hi += step
		}
	}
	// With zero tolerance, Bisect narrows the bracket down to
	// adjacent floats.
	x, _ := Bisect(func(x float64) float64 { return cdf(x) - q }, lo, hi, 0)
	return x
}
