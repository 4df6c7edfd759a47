// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"
)

// QuantileCIResult is a distribution-free confidence interval for
// the q'th quantile of the population a sample was drawn from. It is
// used to report how far a sample's quantile may be from the
// quantile of the distribution the sample is compared against.
type QuantileCIResult struct {
	// Quantile is the argument passed to QuantileCI.
	Quantile float64

	// N is the sample size.
	N int

	// Confidence is the achieved confidence level, which is at
	// least the requested level.
	Confidence float64

	// LoOrder and HiOrder are the 1-based order statistics
	// bounding the interval. Orders outside [1, N] mean the
	// corresponding bound is infinite.
	LoOrder, HiOrder int

	// Ambiguous is set if the interval shifted one order to the
	// right has the same confidence.
	Ambiguous bool
}

// FromSample returns the interval in terms of the values of xs, which
// must have length N. xs does not need to be sorted and is not
// modified.
func (r QuantileCIResult) FromSample(xs []float64) (lo, hi float64) {
	if len(xs) != r.N {
		panic("sample size differs from computed quantile CI")
	}
	s := append([]float64(nil), xs...)
	sort.Float64s(s)

	lo, hi = -inf, inf
	if r.LoOrder >= 1 {
		lo = s[r.LoOrder-1]
	}
	if r.HiOrder-1 < len(s) {
		hi = s[r.HiOrder-1]
	}
	return
}

// quantileCIApproxThreshold is the sample size above which the
// normal approximation of the binomial is used.
var quantileCIApproxThreshold = 30

// QuantileCI returns the confidence interval of the q'th quantile in
// a sample of size n. q must be in [0, 1].
//
// The number of sample values below the population q'th quantile is
// Binomial(n, q), so the interval is the narrowest run of order
// statistics whose binomial mass reaches confidence.
func QuantileCI(n int, q, confidence float64) QuantileCIResult {
	if !(q >= 0 && q <= 1) {
		panic("quantile must be in [0, 1]")
	}
	res := QuantileCIResult{N: n, Quantile: q}
	if confidence >= 1 {
		res.Confidence, res.LoOrder, res.HiOrder = 1, 0, n+1
		return res
	}

	samp := (&Binomial{form: binomialNP}).with(n, q)

	var l, r int
	if n <= quantileCIApproxThreshold || q == 0 || q == 1 {
		// Grow [l, r) outward from the lower mode, always taking
		// the larger neighbor and preferring the left on ties.
		x := int(math.Ceil(float64(n+1)*q) - 1)
		if q == 0 {
			x = 0
		}
		accum := samp.PDF(float64(x))
		l, r = x, x+1
		lp, rp := samp.PDF(float64(l-1)), samp.PDF(float64(r))
		res.Ambiguous = rp == accum
		for accum < confidence && (lp > 0 || rp > 0) {
			res.Ambiguous = lp == rp
			if lp >= rp {
				accum += lp
				l--
				lp = samp.PDF(float64(l - 1))
			} else {
				accum += rp
				r++
				rp = samp.PDF(float64(r))
			}
		}
		res.Confidence = accum
	} else {
		norm := samp.NormalApprox()
		l1 := norm.PPF((1 - confidence) / 2)
		r1 := 2*norm.Mu() - l1

		// With the continuity correction, binomial point k is
		// the normal band [k-0.5, k+0.5]. Round [l1, r1] out to
		// those bands.
		l = int(math.Floor(math.Floor(l1-0.5)+0.5)) + 1
		r = int(math.Floor(math.Ceil(r1-0.5)+0.5)) + 1

		// Pr[l <= X < r] under the approximation.
		mass := func(l, r int) float64 {
			return norm.CDF(float64(r)-0.5) - norm.CDF(float64(l)-0.5)
		}
		res.Confidence = mass(l, r)
		if biased := mass(l, r-1); biased >= confidence && biased < res.Confidence {
			res.Confidence, res.Ambiguous = biased, true
			r--
		}
		if l <= 0 && r >= n+1 {
			res.Confidence, res.Ambiguous = 1, false
		}
	}

	if l < 0 {
		l = 0
	}
	if r > n+1 {
		r = n + 1
	}
	res.LoOrder, res.HiOrder = l, r
	return res
}
