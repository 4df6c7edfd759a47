// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQuantileCI(t *testing.T) {
	var res QuantileCIResult
	check := func(wlo, whi int, wconf float64, wambig bool) {
		t.Helper()
		require.Equal(t, wlo, res.LoOrder, "LoOrder")
		require.Equal(t, whi, res.HiOrder, "HiOrder")
		require.InDelta(t, wconf, res.Confidence, 1e-5, "Confidence")
		require.Equal(t, wambig, res.Ambiguous, "Ambiguous")
	}
	checkSample := func(wlo, whi float64) {
		t.Helper()
		// Reversed so FromSample has to sort.
		xs := make([]float64, res.N)
		for i := range xs {
			xs[i] = float64(res.N - i)
		}
		lo, hi := res.FromSample(xs)
		require.Equal(t, wlo, lo)
		require.Equal(t, whi, hi)
		require.Equal(t, float64(res.N), xs[0], "FromSample modified its argument")
	}
	binomBuckets := func(n int, p float64) []float64 {
		d, err := NewBinomial(Params{"n": float64(n), "p": p})
		require.NoError(t, err)
		bs := make([]float64, n+1)
		for i := range bs {
			bs[i] = d.PDF(float64(i))
		}
		return bs
	}
	normBuckets := func(n int, p float64) []float64 {
		d, err := NewBinomial(Params{"n": float64(n), "p": p})
		require.NoError(t, err)
		norm := d.NormalApprox()
		bs := make([]float64, n+1)
		for i := range bs {
			bs[i] = norm.CDF(float64(i)+0.5) - norm.CDF(float64(i)-0.5)
		}
		return bs
	}

	// Low confidence falls directly around the quantile.
	res = QuantileCI(4, 0.5, 0.001)
	check(2, 3, 0.375, false)
	checkSample(2, 3)
	res = QuantileCI(4, 0.25, 0.001)
	check(1, 2, 0.421875, false)
	checkSample(1, 2)
	// Quantile at or near 0.
	res = QuantileCI(4, 0, 0.001)
	check(0, 1, 1, false)
	checkSample(-inf, 1)
	res = QuantileCI(4, 0.0001, 0.001)
	check(0, 1, binomBuckets(4, 0.0001)[0], false)
	// Quantile at or near 1.
	res = QuantileCI(4, 1, 0.001)
	check(4, 5, 1, false)
	checkSample(4, inf)
	res = QuantileCI(4, 0.999, 0.001)
	check(4, 5, binomBuckets(4, 0.999)[4], false)
	// Confidence exactly the PMF, then just beyond it.
	res = QuantileCI(4, 0.5, 0.375)
	check(2, 3, 0.375, false)
	res = QuantileCI(4, 0.5, 0.3750001)
	check(1, 3, 0.375+0.25, true)
	res = QuantileCI(4, 0.5, 1)
	check(0, 5, 1, false)
	res = QuantileCI(4, 0.5, 0.99)
	check(0, 5, 1, false)
	res = QuantileCI(4, 0.5, 0.99-0.0625)
	check(0, 4, 0.375+2*0.25+0.0625, true)

	// Odd sample size.
	res = QuantileCI(5, 0.5, 0.001)
	check(2, 3, 0.3125, true)
	res = QuantileCI(5, 0.5, 0.3125)
	check(2, 3, 0.3125, true)
	res = QuantileCI(5, 0.5, 0.3125001)
	check(2, 4, 0.3125*2, false)
	res = QuantileCI(5, 0.5, 1)
	check(0, 6, 1, false)
	res = QuantileCI(5, 0.5, 0.99)
	check(0, 6, 1, false)
	res = QuantileCI(5, 0.5, 0.99-0.03125)
	check(0, 5, 1-0.03125, true)

	// Normal approximation, even sample size.
	defer func(x int) { quantileCIApproxThreshold = x }(quantileCIApproxThreshold)
	quantileCIApproxThreshold = 0
	n := normBuckets(4, 0.5)
	res = QuantileCI(4, 0.5, 0.001)
	check(2, 3, n[2], false)
	res = QuantileCI(4, 0.5, n[2])
	check(2, 3, n[2], false)
	res = QuantileCI(4, 0.5, n[2]+0.00001)
	check(1, 3, n[1]+n[2], true)
	res = QuantileCI(4, 0.5, 1)
	check(0, 5, 1, false)
	res = QuantileCI(4, 0.5, 0.99)
	check(0, 5, 1, false)
	res = QuantileCI(4, 0.5, 0.90)
	check(0, 4, n[0]+n[1]+n[2]+n[3], true)

	// Normal approximation, odd sample size.
	n = normBuckets(5, 0.5)
	res = QuantileCI(5, 0.5, 0.001)
	check(2, 3, n[2], true)
	res = QuantileCI(5, 0.5, n[2])
	check(2, 3, n[2], true)
	res = QuantileCI(5, 0.5, n[2]+0.00001)
	check(2, 4, n[2]+n[3], false)

	// Degenerate quantiles.
	res = QuantileCI(5, 0, 0.95)
	check(0, 1, 1, false)
	res = QuantileCI(5, 0.001, 0.95)
	check(0, 1, 1, false)
	res = QuantileCI(5, 1, 0.95)
	check(5, 6, 1, false)
	res = QuantileCI(5, 0.999, 0.95)
	check(5, 6, 1, false)
}

func BenchmarkQuantileCI(b *testing.B) {
	defer func(x int) { quantileCIApproxThreshold = x }(quantileCIApproxThreshold)
	for n := 5; n <= 100; n += 5 {
		for _, approx := range []bool{false, true} {
			if approx {
				quantileCIApproxThreshold = 0
			} else {
				quantileCIApproxThreshold = 1000
			}
			b.Run(fmt.Sprintf("n=%d/approx=%v", n, approx), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					QuantileCI(n, 0.5, 0.95)
				}
			})
		}
	}
}
