// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import "math"

const eulerGamma = 0.57721566490153286060651209008240243104215933593992

// E1Scaled returns exp(x)*E₁(x), where E₁(x) = ∫ₓ^∞ e⁻ᵗ/t dt is the
// exponential integral, for x >= 0. It does not underflow for large
// x. E1Scaled(0) is +Inf and E1Scaled of a negative x is NaN.
func E1Scaled(x float64) float64 {
	switch {
	case math.IsNaN(x) || x < 0:
		return nan
	case x == 0:
		return inf
	case x <= 1:
		return math.Exp(x) * e1Series(x)
	}
	return e1Frac(x)
}

// e1Series evaluates E₁(x) = -γ - log(x) - Σ (-x)ᵏ/(k·k!).
func e1Series(x float64) float64 {
	const maxIter = 100
	sum, term := 0.0, 1.0
	for k := 1; k <= maxIter; k++ {
		term *= -x / float64(k)
		delta := term / float64(k)
		sum += delta
		if math.Abs(delta) < math.Abs(sum)*1e-17 {
			break
		}
	}
	return -eulerGamma - math.Log(x) - sum
}

// e1Frac evaluates exp(x)*E₁(x) by the continued fraction
//
//	1/(x+1- 1/(x+3- 4/(x+5- ...)))
//
// using the modified Lentz method. It converges quickly for x > 1.
func e1Frac(x float64) float64 {
	const (
		maxIter = 200
		tiny    = 1e-300
	)
	b := x + 1
	c := 1 / tiny
	d := 1 / b
	h := d
	for i := 1; i <= maxIter; i++ {
		an := -float64(i * i)
		b += 2
		d = 1 / (an*d + b)
		c = b + an/c
		del := c * d
		h *= del
		if math.Abs(del-1) < 1e-16 {
			break
		}
	}
	return h
}
