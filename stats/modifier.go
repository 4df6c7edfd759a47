// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/aclements/go-paramdist/mathx"
	"github.com/cockroachdb/errors"
)

// modifier is the state shared by Truncated and Censored: a base
// distribution restricted to [lower, upper].
type modifier struct {
	state
	base         Dist
	lower, upper float64
}

// init resolves the modifier's parameters and support from its base.
// Missing bounds are NaN and mean unbounded.
func (m *modifier) init(name string, base Dist, lower, upper float64) error {
	if base == nil {
		return errors.Newf("%s: base distribution is nil", name)
	}
	if math.IsNaN(lower) {
		lower = -inf
	}
	if math.IsNaN(upper) {
		upper = inf
	}
	if lower > upper {
		return invalid(name, "lower must be <= upper, got [%v, %v]", lower, upper)
	}
	blo, bhi := base.Support()
	support := Interval{math.Max(blo, lower), math.Min(bhi, upper)}
	if support.Lo > support.Hi {
		return invalid(name, "bounds [%v, %v] do not overlap the support [%v, %v] of %s",
			lower, upper, blo, bhi, stringOf(base))
	}
	m.base, m.lower, m.upper = base, lower, upper
	m.state = state{
		name:          name,
		frozen:        base.IsFrozen(),
		names:         append(base.ParamNames(), "lower", "upper"),
		params:        append(base.Params(), lower, upper),
		paramsSupport: append(base.ParamsSupport(), Interval{blo, bhi}, Interval{blo, bhi}),
		support:       support,
	}
	return nil
}

func (m *modifier) String() string {
	return m.name + "(" + stringOf(m.base) + ", lower=" + fmtFloat(m.lower) + ", upper=" + fmtFloat(m.upper) + ")"
}

// Base returns the distribution being modified.
func (m *modifier) Base() Dist { return m.base }

// Bounds returns the lower and upper modification points.
func (m *modifier) Bounds() (lower, upper float64) { return m.lower, m.upper }

func (m *modifier) Kind() Kind { return m.base.Kind() }

// unbounded reports whether neither bound restricts the base.
func (m *modifier) unbounded() bool {
	return math.IsInf(m.lower, -1) && math.IsInf(m.upper, 1)
}

// Entropy returns the entropy of the unmodified base distribution.
// This is an approximation: the entropy of the modified
// distribution is not computed.
func (m *modifier) Entropy() float64 {
	m.mustBeFrozen()
	return m.base.Entropy()
}

// moments computes the moments of the modified distribution from its
// quantile function or its mass function.
func (m *modifier) moments(ppf, pmf func(float64) float64) mathx.Moments {
	if m.Kind() == Discrete {
		return mathx.DiscreteMoments(pmf, m.support.Lo, m.support.Hi)
	}
	return mathx.QuantileMoments(ppf)
}

// baseTarget returns the base distribution as an MLE target.
func (m *modifier) baseTarget() (mleTarget, error) {
	t, ok := m.base.(mleTarget)
	if !ok {
		return nil, errors.Wrapf(ErrNotFittable, "%s base %s", m.name, distName(m.base))
	}
	return t, nil
}

// seedBase returns the base's starting point for a maximum likelihood
// fit of sample.
func (m *modifier) seedBase(sample []float64, mean, std float64) (Dist, error) {
	if s, ok := m.base.(mleSeeder); ok {
		return s.seedMLE(sample, mean, std)
	}
	bt, err := m.baseTarget()
	if err != nil {
		return nil, err
	}
	return bt.FitMoments(mean, std)
}
