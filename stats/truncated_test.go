// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"

	"github.com/aclements/go-paramdist/mathx"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/integrate/quad"
)

func TestTruncatedNormal(t *testing.T) {
	d, err := NewTruncated(StdNormal, -1, 1)
	require.NoError(t, err)
	require.True(t, d.IsFrozen())
	require.Equal(t, Continuous, d.Kind())

	lo, hi := d.Support()
	require.Equal(t, -1.0, lo)
	require.Equal(t, 1.0, hi)
	require.Equal(t, 0.0, d.CDF(-1))
	require.Equal(t, 1.0, d.CDF(1))
	for _, x := range []float64{-5, -1.0001, 1.0001, 5} {
		require.Equal(t, 0.0, d.PDF(x), "PDF(%v)", x)
	}
	require.InDelta(t, 0.5843685672568167, d.PDF(0), 1e-12)
	require.InDelta(t, 0.7804532125940016, d.CDF(0.5), 1e-12)
	require.InDelta(t, 1-0.7804532125940016, d.SF(0.5), 1e-12)

	require.InDelta(t, 0, d.Mean(), 1e-9)
	require.InDelta(t, 0.29112509477279314, d.Var(), 1e-8)
	require.InDelta(t, 0, d.Skewness(), 1e-9)
	require.Equal(t, 0.0, d.Mode())
	require.InDelta(t, 0, d.Median(), 1e-12)
	// Entropy is that of the base.
	require.Equal(t, StdNormal.Entropy(), d.Entropy())

	for _, x := range d.Rvs(10000, rand.NewSource(1)) {
		require.True(t, x >= -1 && x <= 1, "draw %v outside [-1, 1]", x)
	}

	names := d.ParamNames()
	require.Equal(t, []string{"mu", "sigma", "lower", "upper"}, names)
	require.Equal(t, []float64{0, 1, -1, 1}, d.Params())
	ps := d.ParamsSupport()
	require.Len(t, ps, 4)
	require.Equal(t, Interval{-inf, inf}, ps[3])
}

func TestTruncatedOneSided(t *testing.T) {
	d, err := NewTruncated(StdNormal, 0, nan)
	require.NoError(t, err)
	lo, hi := d.Support()
	require.Equal(t, 0.0, lo)
	require.Equal(t, inf, hi)
	// Half-normal.
	require.InDelta(t, math.Sqrt(2/math.Pi), d.Mean(), 1e-3)
	require.InDelta(t, 2*StdNormal.PDF(1), d.PDF(1), 1e-12)

	// Unbounded truncation is the base.
	full, err := NewTruncated(StdNormal, math.Inf(-1), math.Inf(1))
	require.NoError(t, err)
	require.Equal(t, StdNormal.Var(), full.Var())
	require.InDelta(t, StdNormal.CDF(0.3), full.CDF(0.3), 1e-15)

	_, err = NewTruncated(StdNormal, 1, -1)
	require.Error(t, err)
}

func TestTruncatedTails(t *testing.T) {
	// Both bounds far out in one tail, where base CDF rounds to 0
	// or 1.
	for _, bounds := range [][2]float64{{9, 10}, {-10, -9}} {
		lower, upper := bounds[0], bounds[1]
		d, err := NewTruncated(StdNormal, lower, upper)
		require.NoError(t, err)

		mass := mathx.Ndtr(-9) - mathx.Ndtr(-10)
		x := (lower + upper) / 2
		wantCDF := (mathx.Ndtr(x) - mathx.Ndtr(lower)) / mass
		if lower > 0 {
			wantCDF = (mathx.Ndtr(-lower) - mathx.Ndtr(-x)) / mass
		}
		require.InDelta(t, wantCDF, d.CDF(x), 1e-9, "CDF(%v)", x)
		require.InDelta(t, 1-wantCDF, d.SF(x), 1e-9, "SF(%v)", x)
		require.InDelta(t, math.Log(wantCDF), d.LogCDF(x), 1e-9, "LogCDF(%v)", x)
		require.InEpsilon(t, StdNormal.PDF(x)/mass, d.PDF(x), 1e-9, "PDF(%v)", x)
		require.Equal(t, 0.0, d.CDF(lower))
		require.Equal(t, 1.0, d.CDF(upper))

		for _, q := range []float64{0.01, 0.3, 0.5, 0.9, 0.999} {
			x := d.PPF(q)
			require.True(t, x >= lower && x <= upper, "PPF(%v) = %v", q, x)
			require.InDelta(t, q, d.CDF(x), 1e-9, "CDF(PPF(%v))", q)
		}

		// The density integrates to 1.
		require.InDelta(t, 1, quad.Fixed(d.PDF, lower, upper, 64, nil, 0), 1e-6)
	}

	// (φ(9) - φ(10)) / (Φ(-9) - Φ(-10))
	d, err := NewTruncated(StdNormal, 9, 10)
	require.NoError(t, err)
	require.InDelta(t, 9.108456288012398, d.Mean(), 1e-4)
}

func TestTruncatedNoOverlap(t *testing.T) {
	beta := mustDist(t, "beta", Params{"alpha": 2, "beta": 3})
	_, err := NewTruncated(beta, 2, 3)
	require.True(t, errors.Is(err, ErrInvalidParam), "got %v", err)
	_, err = NewCensored(beta, -3, -2)
	require.True(t, errors.Is(err, ErrInvalidParam), "got %v", err)

	// Bounds that overlap the support in a single point have no
	// mass to renormalize by.
	_, err = NewTruncated(beta, 0.5, 0.5)
	require.True(t, errors.Is(err, ErrInvalidParam), "got %v", err)

	// Touching the support is enough for Censored.
	c, err := NewCensored(beta, 1, 2)
	require.NoError(t, err)
	lo, hi := c.Support()
	require.Equal(t, 1.0, lo)
	require.Equal(t, 1.0, hi)
}

func TestTruncatedBinomial(t *testing.T) {
	b, err := NewBinomial(Params{"n": 10, "p": 0.3})
	require.NoError(t, err)
	d, err := NewTruncated(b, 2, 5)
	require.NoError(t, err)
	require.Equal(t, Discrete, d.Kind())

	// The mass at lower is kept.
	require.InDelta(t, 0.29062870699881377, d.PDF(2), 1e-12)
	require.InDelta(t, d.PDF(2), d.CDF(2), 1e-12)
	require.Equal(t, 0.0, d.PDF(1))
	require.Equal(t, 0.0, d.PDF(6))
	require.Equal(t, 0.0, d.CDF(1))
	require.Equal(t, 1.0, d.CDF(5))
	testDiscreteCDF(t, "Truncated(Binomial).CDF", d)

	require.Equal(t, 1.0, d.PPF(0))
	require.Equal(t, 5.0, d.PPF(1))
	require.Equal(t, 2.0, d.PPF(0.1))
	require.InDelta(t, 3.2147093712930013, d.Mean(), 1e-9)
	require.Equal(t, 3.0, d.Mode())

	for _, x := range d.Rvs(1000, rand.NewSource(2)) {
		require.True(t, x >= 2 && x <= 5 && x == math.Trunc(x), "draw %v", x)
	}
}

func TestTruncatedFit(t *testing.T) {
	base, err := NewNormal(nil)
	require.NoError(t, err)
	d, err := NewTruncated(base, -1, 10)
	require.NoError(t, err)
	require.False(t, d.IsFrozen())

	fit := fitMoments(t, d, 2, 1.5).(*Truncated)
	require.True(t, fit.IsFrozen())
	require.Equal(t, 2.0, fit.Base().Mean())
	lower, upper := fit.Bounds()
	require.Equal(t, -1.0, lower)
	require.Equal(t, 10.0, upper)
}
