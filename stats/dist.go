// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/exp/rand"
)

// Kind distinguishes continuous from discrete distributions.
type Kind int

const (
	Continuous Kind = iota
	Discrete
)

func (k Kind) String() string {
	switch k {
	case Continuous:
		return "continuous"
	case Discrete:
		return "discrete"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// An Interval is a closed range [Lo, Hi] whose ends may be infinite.
type Interval struct {
	Lo, Hi float64
}

// Contains reports whether Lo <= x <= Hi.
func (i Interval) Contains(x float64) bool {
	return i.Lo <= x && x <= i.Hi
}

// A Dist is a parametric statistical distribution.
//
// A Dist is constructed from a set of named parameters. Once every
// parameter of the chosen parameterization is known, the Dist is
// frozen and all of its functional methods are valid. Calling a
// functional method of a Dist that is not frozen panics with an
// error matching ErrUnfrozen; use Frozen to check first.
//
// Frozen distributions are immutable and may be shared between
// goroutines.
type Dist interface {
	// Kind returns whether this is a continuous or a discrete
	// distribution.
	Kind() Kind

	// Support returns the bounds of the values this distribution
	// can take. Either may be infinite.
	Support() (lo, hi float64)

	// ParamNames returns the names of the active
	// parameterization, in order.
	ParamNames() []string

	// Params returns the values of the active parameterization,
	// aligned with ParamNames. Parameters that have not been
	// given are NaN.
	Params() []float64

	// ParamsSupport returns the valid range of each parameter in
	// ParamNames.
	ParamsSupport() []Interval

	// IsFrozen reports whether all parameters are resolved.
	IsFrozen() bool

	// PDF returns the probability density (or, for a discrete
	// distribution, the probability mass) at x. It is 0 outside
	// the support.
	PDF(x float64) float64

	// LogPDF returns the log of PDF(x). It is -Inf outside the
	// support.
	LogPDF(x float64) float64

	// CDF returns the probability that a draw is <= x. It is
	// exactly 0 below the support and 1 at its upper bound.
	CDF(x float64) float64

	// LogCDF returns the log of CDF(x).
	LogCDF(x float64) float64

	// SF returns the survival function 1 - CDF(x).
	SF(x float64) float64

	// LogSF returns the log of SF(x).
	LogSF(x float64) float64

	// PPF returns the inverse of the CDF at q. It returns NaN if
	// q is outside [0, 1].
	PPF(q float64) float64

	// ISF returns the inverse of the SF at q. It returns NaN if
	// q is outside [0, 1].
	ISF(q float64) float64

	// LogISF returns ISF(exp(logq)).
	LogISF(logq float64) float64

	Entropy() float64
	Mean() float64
	Mode() float64
	Median() float64
	Var() float64
	Std() float64
	Skewness() float64

	// Kurtosis returns the excess kurtosis.
	Kurtosis() float64

	// Rvs returns size random variates drawn from src. If src is
	// nil, a new source is seeded for this call only.
	Rvs(size int, src rand.Source) []float64
}

// A Fitter is a Dist that can be re-parameterized to match a given
// mean and standard deviation.
type Fitter interface {
	Dist

	// FitMoments returns a new frozen distribution of the same
	// family and parameterization whose first two moments match
	// mean and sigma as closely as the parameter domain allows.
	// The receiver is not modified.
	FitMoments(mean, sigma float64) (Dist, error)
}

// Each returns f(xs[i]) for each i. f is typically a method value
// such as d.PDF or d.PPF.
func Each(f func(float64) float64, xs []float64) []float64 {
	res := make([]float64, len(xs))
	for i, x := range xs {
		res[i] = f(x)
	}
	return res
}

// Frozen returns nil if d is frozen and an error matching
// ErrUnfrozen otherwise.
func Frozen(d Dist) error {
	if d.IsFrozen() {
		return nil
	}
	return unfrozen(distName(d))
}

func distName(d Dist) string {
	if n, ok := d.(interface{ family() string }); ok {
		return n.family()
	}
	return fmt.Sprintf("%T", d)
}

// formatDist formats a distribution as name(p1=v1, p2=v2, ...).
func formatDist(name string, names []string, params []float64) string {
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('(')
	for i, n := range names {
		if i > 0 {
			b.WriteString(", ")
		}
		v := math.NaN()
		if i < len(params) {
			v = params[i]
		}
		fmt.Fprintf(&b, "%s=%.6g", n, v)
	}
	b.WriteByte(')')
	return b.String()
}

func stringOf(d Dist) string {
	if s, ok := d.(fmt.Stringer); ok {
		return s.String()
	}
	return formatDist(distName(d), d.ParamNames(), d.Params())
}

func fmtFloat(v float64) string {
	return fmt.Sprintf("%.6g", v)
}
