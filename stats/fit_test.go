// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/stat"
)

func TestFitMLENormal(t *testing.T) {
	truth := mustDist(t, "normal", Params{"mu": 3, "sigma": 0.5})
	xs := truth.Rvs(5000, rand.NewSource(10))

	d, err := NewNormal(nil)
	require.NoError(t, err)
	res, err := FitMLE(d, xs)
	require.NoError(t, err)
	require.True(t, res.Converged)
	require.Equal(t, "ClosedForm", res.Status)
	require.InDelta(t, stat.Mean(xs, nil), res.Dist.Mean(), 1e-12)
	require.InDelta(t, 3, res.Dist.Mean(), 0.05)
	require.InDelta(t, 0.5, res.Dist.Std(), 0.05)
}

func TestFitMLEWald(t *testing.T) {
	truth := mustDist(t, "wald", Params{"mu": 2, "lam": 6})
	xs := truth.Rvs(3000, rand.NewSource(11))

	d, err := NewWald(Params{"phi": 1})
	require.NoError(t, err)
	res, err := FitMLE(d, xs)
	require.NoError(t, err)
	require.True(t, res.Converged, res.Status)
	fit := res.Dist.(*Wald)
	require.Equal(t, []string{"mu", "phi"}, fit.ParamNames())

	// Wald has closed-form estimates to check the optimizer against.
	mean := stat.Mean(xs, nil)
	inv := make([]float64, len(xs))
	for i, x := range xs {
		inv[i] = 1/x - 1/mean
	}
	lam := 1 / stat.Mean(inv, nil)
	require.InEpsilon(t, mean, fit.Mu(), 1e-3)
	require.InEpsilon(t, lam, fit.Lam(), 1e-3)
	require.InEpsilon(t, 6, fit.Lam(), 0.15)
}

func TestFitMLEBeta(t *testing.T) {
	truth := mustDist(t, "beta", Params{"alpha": 2, "beta": 5})
	xs := truth.Rvs(3000, rand.NewSource(12))

	d, err := NewBeta(nil)
	require.NoError(t, err)
	res, err := FitMLE(d, xs)
	require.NoError(t, err)
	require.True(t, res.Converged, res.Status)
	fit := res.Dist.(*Beta)
	require.InEpsilon(t, 2, fit.Alpha(), 0.15)
	require.InEpsilon(t, 5, fit.Beta(), 0.15)

	// The optimum is no worse than the moment estimate.
	seed := fitMoments(t, d, stat.Mean(xs, nil), stat.StdDev(xs, nil))
	nll := 0.0
	for _, x := range xs {
		nll -= seed.LogPDF(x)
	}
	require.LessOrEqual(t, res.NegLogLik, nll)
}

func TestFitMLEBetaScaled(t *testing.T) {
	truth := mustDist(t, "betascaled", Params{"alpha": 3, "beta": 3, "lower": 10, "upper": 20})
	xs := truth.Rvs(2000, rand.NewSource(13))

	d, err := NewBetaScaled(nil)
	require.NoError(t, err)
	res, err := FitMLE(d, xs)
	require.NoError(t, err)
	fit := res.Dist.(*BetaScaled)
	require.Less(t, fit.Lower(), floats.Min(xs))
	require.Greater(t, fit.Upper(), floats.Max(xs))
	require.InDelta(t, 15, fit.Mean(), 0.2)
}

func TestFitMLEBinomial(t *testing.T) {
	truth := mustDist(t, "binomial", Params{"n": 20, "p": 0.4})
	xs := truth.Rvs(2000, rand.NewSource(14))

	d, err := NewBinomial(Params{"n": 20})
	require.NoError(t, err)
	res, err := FitMLE(d, xs)
	require.NoError(t, err)
	fit := res.Dist.(*Binomial)
	require.InDelta(t, stat.Mean(xs, nil)/float64(fit.N()), fit.P(), 1e-3)
}

func TestFitMLETruncated(t *testing.T) {
	base := mustDist(t, "normal", Params{"mu": 1, "sigma": 2})
	truth, err := NewTruncated(base, 0, 5)
	require.NoError(t, err)
	xs := truth.Rvs(5000, rand.NewSource(15))

	unfit, err := NewNormal(nil)
	require.NoError(t, err)
	d, err := NewTruncated(unfit, 0, 5)
	require.NoError(t, err)
	res, err := FitMLE(d, xs)
	require.NoError(t, err)
	require.True(t, res.Converged, res.Status)
	fit := res.Dist.(*Truncated)
	require.InDelta(t, 1, fit.Base().Mean(), 0.3)
	require.InDelta(t, 2, fit.Base().Std(), 0.3)
}

func TestFitMLECensored(t *testing.T) {
	base := mustDist(t, "normal", Params{"mu": 1, "sigma": 2})
	truth, err := NewCensored(base, -1, 3)
	require.NoError(t, err)
	xs := truth.Rvs(5000, rand.NewSource(16))

	unfit, err := NewNormal(nil)
	require.NoError(t, err)
	d, err := NewCensored(unfit, -1, 3)
	require.NoError(t, err)
	res, err := FitMLE(d, xs)
	require.NoError(t, err)
	require.True(t, res.Converged, res.Status)
	fit := res.Dist.(*Censored)
	require.InDelta(t, 1, fit.Base().Mean(), 0.3)
	require.InDelta(t, 2, fit.Base().Std(), 0.3)
	lower, upper := fit.Bounds()
	require.Equal(t, -1.0, lower)
	require.Equal(t, 3.0, upper)
}

func TestFitMLEErrors(t *testing.T) {
	_, err := FitMLE(StdNormal, []float64{1})
	require.True(t, errors.Is(err, ErrSampleSize))

	tr, err := NewTruncated(notFittable{StdNormal}, -1, 1)
	require.NoError(t, err)
	_, err = FitMLE(tr, []float64{0, 0.5})
	require.True(t, errors.Is(err, ErrNotFittable))
}

// notFittable hides the fitting methods of a distribution.
type notFittable struct{ Dist }

func TestFitMLENonConvergenceLogged(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	truth := mustDist(t, "beta", Params{"alpha": 2, "beta": 5})
	xs := truth.Rvs(200, rand.NewSource(16))
	d, err := NewBeta(nil)
	require.NoError(t, err)

	old := mleSettings
	mleSettings = func() *optimize.Settings {
		s := old()
		s.MajorIterations = 2
		return s
	}
	defer func() { mleSettings = old }()

	res, err := FitMLE(d, xs)
	require.NoError(t, err)
	require.False(t, res.Converged)
	require.NotNil(t, res.Dist)
	require.Equal(t, 1, logs.FilterMessage("maximum likelihood fit did not converge").Len())
}
