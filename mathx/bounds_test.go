// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCDFBounds(t *testing.T) {
	require.Equal(t, 0.0, CDFBounds(0.3, -1, 0, 1))
	require.Equal(t, 1.0, CDFBounds(0.3, 1, 0, 1))
	require.Equal(t, 1.0, CDFBounds(1+1e-12, 0.5, 0, 1))
	require.Equal(t, 0.0, CDFBounds(-1e-12, 0.5, 0, 1))
	require.Equal(t, 0.25, CDFBounds(0.25, 0.5, 0, 1))
	require.True(t, math.IsNaN(CDFBounds(0.5, nan, 0, 1)))
}

func TestPPFBounds(t *testing.T) {
	require.True(t, math.IsNaN(PPFBounds(0.5, -0.1, 0, 1)))
	require.True(t, math.IsNaN(PPFBounds(0.5, 1.1, 0, 1)))
	require.Equal(t, 0.0, PPFBounds(0.5, 0, 0, 1))
	require.Equal(t, 1.0, PPFBounds(0.5, 1, 0, 1))
	require.Equal(t, 1.0, PPFBounds(1.5, 0.9, 0, 1))

	require.Equal(t, -1.0, PPFBoundsDisc(3, 0, 0, 5))
	require.Equal(t, 5.0, PPFBoundsDisc(3, 1, 0, 5))
	require.True(t, math.IsNaN(PPFBoundsDisc(3, 2, 0, 5)))
}

func TestInvertCDF(t *testing.T) {
	cdf := Ndtr
	for _, q := range []float64{1e-6, 0.1, 0.5, 0.975} {
		x := InvertCDF(cdf, q, math.Inf(-1), math.Inf(1), 10, 0.5)
		require.InDelta(t, Ndtri(q), x, 1e-9, "q=%v", q)
	}
	// Exponential(1) on [0, inf).
	exp := func(x float64) float64 { return 1 - math.Exp(-x) }
	x := InvertCDF(exp, 0.5, 0, math.Inf(1), 1, 1)
	require.InDelta(t, math.Ln2, x, 1e-12)
}

func TestBisect(t *testing.T) {
	x, ok := Bisect(func(x float64) float64 { return x*x - 2 }, 0, 2, 1e-12)
	require.True(t, ok)
	require.InDelta(t, math.Sqrt2, x, 1e-9)

	step := func(x float64) float64 {
		if x < 1 {
			return -1
		}
		return 1
	}
	x, ok = Bisect(step, 0, 3, 0.1)
	require.False(t, ok)
	require.InDelta(t, 1, x, 1e-12)

	require.Panics(t, func() { Bisect(step, 2, 3, 0.1) })
}

func TestQuantileMoments(t *testing.T) {
	// Uniform(2, 6).
	m := QuantileMoments(func(q float64) float64 { return 2 + 4*q })
	require.InDelta(t, 4, m.Mean, 1e-10)
	require.InDelta(t, 16.0/12, m.Var, 1e-10)
	require.InDelta(t, 0, m.Skewness, 1e-8)
	require.InDelta(t, -1.2, m.Kurtosis, 1e-8)
}

func TestDiscreteMoments(t *testing.T) {
	// Fair die.
	die := func(k float64) float64 {
		if k < 1 || k > 6 {
			return 0
		}
		return 1.0 / 6
	}
	m := DiscreteMoments(die, 1, 6)
	require.InDelta(t, 3.5, m.Mean, 1e-12)
	require.InDelta(t, 35.0/12, m.Var, 1e-12)
	require.InDelta(t, 0, m.Skewness, 1e-12)

	// Geometric on {0, 1, ...} with p = 0.5: mean 1, variance 2.
	geom := func(k float64) float64 { return math.Pow(0.5, k+1) }
	m = DiscreteMoments(geom, 0, math.Inf(1))
	require.InDelta(t, 1, m.Mean, 1e-9)
	require.InDelta(t, 2, m.Var, 1e-9)
}
