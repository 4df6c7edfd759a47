// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/aclements/go-paramdist/mathx"
	"golang.org/x/exp/rand"
)

// Censored clips a base distribution to [lower, upper]: values below
// lower are recorded as lower and values above upper as upper. The
// result keeps the base's kind, but a continuous base gains point
// masses at the bounds. PDF at a bound returns that point mass,
// base.CDF(lower) at lower and base.SF(upper) at upper.
//
// For a discrete base the mass at upper is base.SF(upper-1), so it
// includes the base's own mass at upper.
//
// Like Truncated, Censored's moments are computed numerically unless
// both bounds are infinite, and its entropy is that of the base.
type Censored struct {
	modifier
}

// NewCensored returns base censored to [lower, upper]. Pass
// math.Inf(-1) or math.Inf(1) (or NaN) to leave a side uncensored.
// The result is frozen if base is.
func NewCensored(base Dist, lower, upper float64) (*Censored, error) {
	c := &Censored{}
	if err := c.init("Censored", base, lower, upper); err != nil {
		return nil, err
	}
	return c, nil
}

// upperTail is the point at which the base SF gives the mass
// collected at upper.
func (c *Censored) upperTail() float64 {
	if c.Kind() == Discrete {
		return c.upper - 1
	}
	return c.upper
}

func (c *Censored) PDF(x float64) float64 {
	return math.Exp(c.LogPDF(x))
}

func (c *Censored) LogPDF(x float64) float64 {
	c.mustBeFrozen()
	switch {
	case math.IsNaN(x):
		return nan
	case !c.support.Contains(x):
		return -inf
	case x == c.lower && x == c.upper:
		return 0
	case x == c.lower:
		return c.base.LogCDF(x)
	case x == c.upper:
		return c.base.LogSF(c.upperTail())
	}
	return c.base.LogPDF(x)
}

func (c *Censored) CDF(x float64) float64 {
	c.mustBeFrozen()
	switch {
	case math.IsNaN(x):
		return nan
	case x < c.lower:
		return 0
	case x >= c.upper:
		return 1
	}
	return c.base.CDF(x)
}

func (c *Censored) LogCDF(x float64) float64 {
	c.mustBeFrozen()
	switch {
	case math.IsNaN(x):
		return nan
	case x < c.lower:
		return -inf
	case x >= c.upper:
		return 0
	}
	return c.base.LogCDF(x)
}

func (c *Censored) SF(x float64) float64 {
	c.mustBeFrozen()
	switch {
	case math.IsNaN(x):
		return nan
	case x < c.lower:
		return 1
	case x >= c.upper:
		return 0
	}
	return c.base.SF(x)
}

func (c *Censored) LogSF(x float64) float64 {
	c.mustBeFrozen()
	switch {
	case math.IsNaN(x):
		return nan
	case x < c.lower:
		return 0
	case x >= c.upper:
		return -inf
	}
	return c.base.LogSF(x)
}

func (c *Censored) PPF(q float64) float64 {
	c.mustBeFrozen()
	lo, hi := c.support.Lo, c.support.Hi
	if !(q > 0 && q < 1) {
		if c.Kind() == Discrete {
			return mathx.PPFBoundsDisc(nan, q, lo, hi)
		}
		return mathx.PPFBounds(nan, q, lo, hi)
	}
	return mathx.Clamp(c.base.PPF(q), lo, hi)
}

func (c *Censored) ISF(q float64) float64 {
	c.mustBeFrozen()
	lo, hi := c.support.Lo, c.support.Hi
	if !(q > 0 && q < 1) {
		if c.Kind() == Discrete {
			return mathx.ISFBoundsDisc(nan, q, lo, hi)
		}
		return mathx.ISFBounds(nan, q, lo, hi)
	}
	return mathx.Clamp(c.base.ISF(q), lo, hi)
}

func (c *Censored) LogISF(logq float64) float64 {
	return c.ISF(math.Exp(logq))
}

func (c *Censored) stats() mathx.Moments {
	return c.moments(c.PPF, c.PDF)
}

func (c *Censored) Mean() float64 {
	c.mustBeFrozen()
	if c.unbounded() {
		return c.base.Mean()
	}
	return c.stats().Mean
}

// Mode returns the base mode clamped into [lower, upper]. It ignores
// the point masses at the bounds.
func (c *Censored) Mode() float64 {
	c.mustBeFrozen()
	return mathx.Clamp(c.base.Mode(), c.support.Lo, c.support.Hi)
}

func (c *Censored) Median() float64 {
	return c.PPF(0.5)
}

func (c *Censored) Var() float64 {
	c.mustBeFrozen()
	if c.unbounded() {
		return c.base.Var()
	}
	return c.stats().Var
}

func (c *Censored) Std() float64 {
	return math.Sqrt(c.Var())
}

func (c *Censored) Skewness() float64 {
	c.mustBeFrozen()
	if c.unbounded() {
		return c.base.Skewness()
	}
	return c.stats().Skewness
}

func (c *Censored) Kurtosis() float64 {
	c.mustBeFrozen()
	if c.unbounded() {
		return c.base.Kurtosis()
	}
	return c.stats().Kurtosis
}

// Rvs draws from the base and clips each draw to [lower, upper].
func (c *Censored) Rvs(size int, src rand.Source) []float64 {
	c.mustBeFrozen()
	xs := c.base.Rvs(size, src)
	for i, x := range xs {
		xs[i] = mathx.Clamp(x, c.lower, c.upper)
	}
	return xs
}

// FitMoments fits the base distribution to mean and sigma and
// censors the result at the same bounds.
func (c *Censored) FitMoments(mean, sigma float64) (Dist, error) {
	bt, err := c.baseTarget()
	if err != nil {
		return nil, err
	}
	nb, err := bt.FitMoments(mean, sigma)
	if err != nil {
		return nil, err
	}
	return NewCensored(nb, c.lower, c.upper)
}

func (c *Censored) canonical() ([]float64, []link) {
	bt, err := c.baseTarget()
	if err != nil {
		return nil, nil
	}
	return bt.canonical()
}

func (c *Censored) withCanonical(x []float64) (Dist, error) {
	bt, err := c.baseTarget()
	if err != nil {
		return nil, err
	}
	nb, err := bt.withCanonical(x)
	if err != nil {
		return nil, err
	}
	return NewCensored(nb, c.lower, c.upper)
}

func (c *Censored) seedMLE(sample []float64, mean, std float64) (Dist, error) {
	nb, err := c.seedBase(sample, mean, std)
	if err != nil {
		return nil, err
	}
	return NewCensored(nb, c.lower, c.upper)
}
