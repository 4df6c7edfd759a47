// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// quantileNodes is the number of Gauss-Legendre nodes used by
// QuantileMoments.
const quantileNodes = 256

// Moments holds the first four standardized moments of a
// distribution. Kurtosis is excess kurtosis.
type Moments struct {
	Mean, Var, Skewness, Kurtosis float64
}

// QuantileMoments computes the moments of a continuous distribution
// from its quantile function by integrating over q in (0, 1):
//
//	E[g(X)] = ∫₀¹ g(ppf(q)) dq
//
// This needs no knowledge of the support, infinite or not. The
// Gauss-Legendre nodes never touch the endpoints, where ppf may be
// infinite.
func QuantileMoments(ppf func(float64) float64) Moments {
	integrate := func(f func(float64) float64) float64 {
		return quad.Fixed(f, 0, 1, quantileNodes, quad.Legendre{}, 0)
	}
	mean := integrate(ppf)
	central := func(k float64) float64 {
		return integrate(func(q float64) float64 {
			return math.Pow(ppf(q)-mean, k)
		})
	}
	return momentsFrom(mean, central(2), central(3), central(4))
}

// DiscreteMoments computes the moments of a discrete distribution
// with integer support [lower, upper] and mass function pmf. Infinite
// bounds are walked until the remaining mass is negligible.
func DiscreteMoments(pmf func(float64) float64, lower, upper float64) Moments {
	const (
		maxTerms = 1 << 20
		massTol  = 1e-14
	)
	var ks, ps []float64
	if math.IsInf(lower, -1) {
		// Walk downward from the upper end instead.
		if math.IsInf(upper, 1) {
			return Moments{nan, nan, nan, nan}
		}
		mass := 0.0
		for k := upper; len(ks) < maxTerms && mass < 1-massTol; k-- {
			p := pmf(k)
			ks, ps = append(ks, k), append(ps, p)
			mass += p
		}
	} else {
		mass := 0.0
		for k := math.Ceil(lower); k <= upper && len(ks) < maxTerms; k++ {
			p := pmf(k)
			ks, ps = append(ks, k), append(ps, p)
			mass += p
			if math.IsInf(upper, 1) && mass >= 1-massTol {
				break
			}
		}
	}
	expect := func(g func(float64) float64) float64 {
		s := 0.0
		for i, k := range ks {
			s += ps[i] * g(k)
		}
		return s
	}
	mean := expect(func(k float64) float64 { return k })
	central := func(n float64) float64 {
		return expect(func(k float64) float64 { return math.Pow(k-mean, n) })
	}
	return momentsFrom(mean, central(2), central(3), central(4))
}

func momentsFrom(mean, m2, m3, m4 float64) Moments {
	return Moments{
		Mean:     mean,
		Var:      m2,
		Skewness: m3 / math.Pow(m2, 1.5),
		Kurtosis: m4/(m2*m2) - 3,
	}
}
