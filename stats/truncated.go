// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/aclements/go-paramdist/mathx"
	"golang.org/x/exp/rand"
)

// Truncated restricts a base distribution to [lower, upper] and
// renormalizes it by the probability mass in that interval. Its
// density is
//
//	f(x) = base.PDF(x) / (base.CDF(upper) - base.CDF(lower))
//
// for lower <= x <= upper and 0 elsewhere.
//
// For a discrete base the normalization uses base.CDF(lower-1), so
// that the mass at lower itself is kept.
//
// When the bounds lie above the base median, the mass is computed
// from base.LogSF instead of base.CDF, so truncations deep in the
// upper tail keep their precision.
//
// Truncated's moments are computed numerically unless both bounds
// are infinite. Its entropy is that of the untruncated base.
type Truncated struct {
	modifier

	// upperTail selects survival-space normalization. lo and hi
	// are then base.LogSF at the effective bounds; otherwise they
	// are base.CDF.
	upperTail bool
	lo, hi    float64

	// logMass is the log of the base mass in [lower, upper].
	logMass float64
}

// NewTruncated returns base truncated to [lower, upper]. Pass
// math.Inf(-1) or math.Inf(1) (or NaN) to leave a side unbounded.
// The result is frozen if base is. It is an error for a frozen base
// to have no mass in [lower, upper].
func NewTruncated(base Dist, lower, upper float64) (*Truncated, error) {
	t := &Truncated{}
	if err := t.init("Truncated", base, lower, upper); err != nil {
		return nil, err
	}
	if !t.frozen {
		return t, nil
	}
	al := t.adjustedLower()
	if t.upperTail = base.CDF(al) > 0.5; t.upperTail {
		t.lo, t.hi = base.LogSF(al), base.LogSF(t.upper)
		t.logMass = t.lo + mathx.Log1mExp(math.Min(t.hi-t.lo, 0))
	} else {
		t.lo, t.hi = base.CDF(al), base.CDF(t.upper)
		t.logMass = math.Log(t.hi - t.lo)
	}
	if !(t.logMass > -inf) {
		return nil, invalid("Truncated", "%s has no mass in [%v, %v]", stringOf(base), t.lower, t.upper)
	}
	return t, nil
}

// adjustedLower is the lower bound used in the CDF arithmetic: one
// less than lower for discrete bases, so the mass at lower is kept.
func (t *Truncated) adjustedLower() float64 {
	if t.Kind() == Discrete {
		return t.lower - 1
	}
	return t.lower
}

// logMasses returns the log of the base mass in [lower, x] and in
// (x, upper].
func (t *Truncated) logMasses(x float64) (below, above float64) {
	if !t.upperTail {
		c := mathx.Clamp(t.base.CDF(x), t.lo, t.hi)
		return math.Log(c - t.lo), math.Log(t.hi - c)
	}
	ls := mathx.Clamp(t.base.LogSF(x), t.hi, t.lo)
	below, above = t.lo+mathx.Log1mExp(ls-t.lo), -inf
	if ls > t.hi {
		above = ls + mathx.Log1mExp(t.hi-ls)
	}
	return below, above
}

func (t *Truncated) PDF(x float64) float64 {
	return math.Exp(t.LogPDF(x))
}

func (t *Truncated) LogPDF(x float64) float64 {
	t.mustBeFrozen()
	if math.IsNaN(x) {
		return nan
	}
	if !t.support.Contains(x) {
		return -inf
	}
	return t.base.LogPDF(x) - t.logMass
}

func (t *Truncated) CDF(x float64) float64 {
	t.mustBeFrozen()
	if t.unbounded() {
		return t.base.CDF(x)
	}
	below, _ := t.logMasses(x)
	return mathx.CDFBounds(math.Exp(below-t.logMass), x, t.support.Lo, t.support.Hi)
}

func (t *Truncated) LogCDF(x float64) float64 {
	t.mustBeFrozen()
	if t.unbounded() {
		return t.base.LogCDF(x)
	}
	switch {
	case math.IsNaN(x):
		return nan
	case x < t.support.Lo:
		return -inf
	case x >= t.support.Hi:
		return 0
	}
	below, _ := t.logMasses(x)
	return math.Min(below-t.logMass, 0)
}

func (t *Truncated) SF(x float64) float64 {
	t.mustBeFrozen()
	if t.unbounded() {
		return t.base.SF(x)
	}
	switch {
	case math.IsNaN(x):
		return nan
	case x < t.support.Lo:
		return 1
	case x >= t.support.Hi:
		return 0
	}
	_, above := t.logMasses(x)
	return mathx.Clamp(math.Exp(above-t.logMass), 0, 1)
}

func (t *Truncated) LogSF(x float64) float64 {
	t.mustBeFrozen()
	if t.unbounded() {
		return t.base.LogSF(x)
	}
	switch {
	case math.IsNaN(x):
		return nan
	case x < t.support.Lo:
		return 0
	case x >= t.support.Hi:
		return -inf
	}
	_, above := t.logMasses(x)
	return math.Min(above-t.logMass, 0)
}

func (t *Truncated) PPF(q float64) float64 {
	t.mustBeFrozen()
	lo, hi := t.support.Lo, t.support.Hi
	if !(q > 0 && q < 1) {
		if t.Kind() == Discrete {
			return mathx.PPFBoundsDisc(nan, q, lo, hi)
		}
		return mathx.PPFBounds(nan, q, lo, hi)
	}
	var x float64
	if t.upperTail {
		// The base SF at the quantile is SF(lower) - q*mass.
		x = t.base.LogISF(t.lo + math.Log1p(-q*math.Exp(t.logMass-t.lo)))
	} else {
		x = t.base.PPF(t.lo + q*math.Exp(t.logMass))
	}
	return mathx.Clamp(x, lo, hi)
}

func (t *Truncated) ISF(q float64) float64 {
	t.mustBeFrozen()
	if math.IsNaN(q) || q < 0 || q > 1 {
		return nan
	}
	return t.PPF(1 - q)
}

func (t *Truncated) LogISF(logq float64) float64 {
	return t.ISF(math.Exp(logq))
}

func (t *Truncated) stats() mathx.Moments {
	return t.moments(t.PPF, t.PDF)
}

func (t *Truncated) Mean() float64 {
	t.mustBeFrozen()
	if t.unbounded() {
		return t.base.Mean()
	}
	return t.stats().Mean
}

// Mode returns the base mode clamped into the truncated support. This
// is exact for unimodal bases.
func (t *Truncated) Mode() float64 {
	t.mustBeFrozen()
	return mathx.Clamp(t.base.Mode(), t.support.Lo, t.support.Hi)
}

func (t *Truncated) Median() float64 {
	return t.PPF(0.5)
}

func (t *Truncated) Var() float64 {
	t.mustBeFrozen()
	if t.unbounded() {
		return t.base.Var()
	}
	return t.stats().Var
}

func (t *Truncated) Std() float64 {
	return math.Sqrt(t.Var())
}

func (t *Truncated) Skewness() float64 {
	t.mustBeFrozen()
	if t.unbounded() {
		return t.base.Skewness()
	}
	return t.stats().Skewness
}

func (t *Truncated) Kurtosis() float64 {
	t.mustBeFrozen()
	if t.unbounded() {
		return t.base.Kurtosis()
	}
	return t.stats().Kurtosis
}

// Rvs draws by inverse transform sampling: uniform draws on [0, 1)
// are mapped through t.PPF.
func (t *Truncated) Rvs(size int, src rand.Source) []float64 {
	t.mustBeFrozen()
	return Each(t.PPF, uniforms(size, src))
}

// FitMoments fits the base distribution to mean and sigma and
// truncates the result to the same bounds. The moments of the
// truncated distribution will generally differ from mean and sigma.
func (t *Truncated) FitMoments(mean, sigma float64) (Dist, error) {
	bt, err := t.baseTarget()
	if err != nil {
		return nil, err
	}
	nb, err := bt.FitMoments(mean, sigma)
	if err != nil {
		return nil, err
	}
	return NewTruncated(nb, t.lower, t.upper)
}

func (t *Truncated) canonical() ([]float64, []link) {
	bt, err := t.baseTarget()
	if err != nil {
		return nil, nil
	}
	return bt.canonical()
}

func (t *Truncated) withCanonical(x []float64) (Dist, error) {
	bt, err := t.baseTarget()
	if err != nil {
		return nil, err
	}
	nb, err := bt.withCanonical(x)
	if err != nil {
		return nil, err
	}
	return NewTruncated(nb, t.lower, t.upper)
}

func (t *Truncated) seedMLE(sample []float64, mean, std float64) (Dist, error) {
	nb, err := t.seedBase(sample, mean, std)
	if err != nil {
		return nil, err
	}
	return NewTruncated(nb, t.lower, t.upper)
}
