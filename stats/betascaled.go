// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/aclements/go-paramdist/mathx"
	"golang.org/x/exp/rand"
)

// BetaScaled is a beta distribution stretched from (0, 1) onto
// (lower, upper). Its density is
//
//	f(x | α, β) = (x-lower)^(α-1) (upper-x)^(β-1) / ((upper-lower)^(α+β-1) B(α, β))
//
// lower and upper default to 0 and 1, in which case BetaScaled is
// the same as Beta.
type BetaScaled struct {
	state
	std          *Beta // standardized distribution on (0, 1)
	lower, upper float64
}

var betaScaledNames = []string{"alpha", "beta", "lower", "upper"}

// NewBetaScaled returns a scaled beta distribution given "alpha" and
// "beta" and, optionally, "lower" and "upper". Without both shape
// parameters the returned distribution is not frozen.
func NewBetaScaled(p Params) (*BetaScaled, error) {
	const name = "BetaScaled"
	if err := p.checkNames(name, betaScaledNames...); err != nil {
		return nil, err
	}
	if err := positive(name, p, "alpha", "beta"); err != nil {
		return nil, err
	}
	if err := finite(name, p, "lower", "upper"); err != nil {
		return nil, err
	}
	lower, upper := 0.0, 1.0
	if v, ok := p["lower"]; ok {
		lower = v
	}
	if v, ok := p["upper"]; ok {
		upper = v
	}
	if !(lower < upper) {
		return nil, invalid(name, "lower must be < upper, got [%v, %v]", lower, upper)
	}

	d := &BetaScaled{}
	d.reset(lower, upper, p.get("alpha"), p.get("beta"))
	if p.has("alpha", "beta") {
		d.update(p["alpha"], p["beta"])
	}
	return d, nil
}

func (d *BetaScaled) reset(lower, upper, alpha, beta float64) {
	d.lower, d.upper = lower, upper
	d.state = state{
		name:   "BetaScaled",
		names:  betaScaledNames,
		params: []float64{alpha, beta, lower, upper},
		paramsSupport: []Interval{
			{mathx.Eps, inf}, {mathx.Eps, inf}, {-inf, inf}, {-inf, inf},
		},
		support: Interval{lower, upper},
	}
}

func (d *BetaScaled) update(alpha, beta float64) {
	d.std = (&Beta{form: betaAlphaBeta}).withShapes(alpha, beta)
	d.params = []float64{alpha, beta, d.lower, d.upper}
	d.frozen = true
}

func (d *BetaScaled) width() float64 { return d.upper - d.lower }

// standardize maps x from (lower, upper) onto (0, 1).
func (d *BetaScaled) standardize(x float64) float64 {
	return (x - d.lower) / d.width()
}

func (d *BetaScaled) scale(z float64) float64 {
	return d.lower + z*d.width()
}

// Lower returns the lower bound of d's support.
func (d *BetaScaled) Lower() float64 { return d.lower }

// Upper returns the upper bound of d's support.
func (d *BetaScaled) Upper() float64 { return d.upper }

func (d *BetaScaled) Kind() Kind { return Continuous }

func (d *BetaScaled) PDF(x float64) float64 {
	return math.Exp(d.LogPDF(x))
}

func (d *BetaScaled) LogPDF(x float64) float64 {
	d.mustBeFrozen()
	return d.std.LogPDF(d.standardize(x)) - math.Log(d.width())
}

func (d *BetaScaled) CDF(x float64) float64 {
	d.mustBeFrozen()
	return mathx.CDFBounds(d.std.CDF(d.standardize(x)), x, d.lower, d.upper)
}

func (d *BetaScaled) LogCDF(x float64) float64 {
	d.mustBeFrozen()
	return d.std.LogCDF(d.standardize(x))
}

func (d *BetaScaled) SF(x float64) float64 {
	d.mustBeFrozen()
	return d.std.SF(d.standardize(x))
}

func (d *BetaScaled) LogSF(x float64) float64 {
	d.mustBeFrozen()
	return d.std.LogSF(d.standardize(x))
}

func (d *BetaScaled) PPF(q float64) float64 {
	d.mustBeFrozen()
	return mathx.PPFBounds(d.scale(d.std.PPF(q)), q, d.lower, d.upper)
}

func (d *BetaScaled) ISF(q float64) float64 {
	d.mustBeFrozen()
	return mathx.ISFBounds(d.scale(d.std.ISF(q)), q, d.lower, d.upper)
}

func (d *BetaScaled) LogISF(logq float64) float64 {
	return d.ISF(math.Exp(logq))
}

func (d *BetaScaled) Entropy() float64 {
	d.mustBeFrozen()
	return d.std.Entropy() + math.Log(d.width())
}

func (d *BetaScaled) Mean() float64 {
	d.mustBeFrozen()
	return d.scale(d.std.Mean())
}

func (d *BetaScaled) Mode() float64 {
	d.mustBeFrozen()
	return d.scale(d.std.Mode())
}

func (d *BetaScaled) Median() float64 {
	return d.PPF(0.5)
}

func (d *BetaScaled) Var() float64 {
	d.mustBeFrozen()
	return d.std.Var() * d.width() * d.width()
}

func (d *BetaScaled) Std() float64 {
	return math.Sqrt(d.Var())
}

func (d *BetaScaled) Skewness() float64 {
	d.mustBeFrozen()
	return d.std.Skewness()
}

func (d *BetaScaled) Kurtosis() float64 {
	d.mustBeFrozen()
	return d.std.Kurtosis()
}

func (d *BetaScaled) Rvs(size int, src rand.Source) []float64 {
	d.mustBeFrozen()
	zs := d.std.Rvs(size, src)
	for i, z := range zs {
		zs[i] = d.scale(z)
	}
	return zs
}

// FitMoments returns the scaled beta distribution on d's bounds with
// the given mean and standard deviation. Shape parameters are floored
// at 0.5.
func (d *BetaScaled) FitMoments(mean, sigma float64) (Dist, error) {
	if err := checkMoments(d.name, mean, sigma); err != nil {
		return nil, err
	}
	mean = d.standardize(mean)
	sigma = sigma / d.width()
	kappa := mean*(1-mean)/(sigma*sigma) - 1
	alpha := math.Max(0.5, kappa*mean)
	beta := math.Max(0.5, kappa*(1-mean))
	return d.withBounds(d.lower, d.upper, alpha, beta), nil
}

func (d *BetaScaled) withBounds(lower, upper, alpha, beta float64) *BetaScaled {
	nd := &BetaScaled{}
	nd.reset(lower, upper, alpha, beta)
	nd.update(alpha, beta)
	return nd
}

func (d *BetaScaled) canonical() ([]float64, []link) {
	return []float64{d.std.alpha, d.std.beta}, []link{linkLog, linkLog}
}

func (d *BetaScaled) withCanonical(x []float64) (Dist, error) {
	if !(x[0] > 0 && x[1] > 0) {
		return nil, invalid(d.name, "shape parameters must be > 0, got %v", x)
	}
	return d.withBounds(d.lower, d.upper, x[0], x[1]), nil
}

// seedMLE places the bounds just outside the sample range, so every
// observation has finite likelihood, and fits the shapes by moments.
func (d *BetaScaled) seedMLE(sample []float64, mean, std float64) (Dist, error) {
	lo, hi := sampleRange(sample)
	pad := (hi - lo) * 1e-3
	if pad == 0 {
		return nil, invalid(d.name, "sample has no spread")
	}
	seed := &BetaScaled{}
	seed.reset(lo-pad, hi+pad, nan, nan)
	return seed.FitMoments(mean, std)
}
