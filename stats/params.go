// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"

	"github.com/cockroachdb/errors"
)

// Params is a set of named distribution parameters. A name that is
// absent from the map has not been given.
type Params map[string]float64

// has reports whether every one of names is given.
func (p Params) has(names ...string) bool {
	for _, n := range names {
		if _, ok := p[n]; !ok {
			return false
		}
	}
	return true
}

// hasAny reports whether at least one of names is given.
func (p Params) hasAny(names ...string) bool {
	for _, n := range names {
		if _, ok := p[n]; ok {
			return true
		}
	}
	return false
}

// get returns the value of name, or NaN if it is not given.
func (p Params) get(name string) float64 {
	if v, ok := p[name]; ok {
		return v
	}
	return math.NaN()
}

// values returns the values of names, NaN for those not given.
func (p Params) values(names []string) []float64 {
	vs := make([]float64, len(names))
	for i, n := range names {
		vs[i] = p.get(n)
	}
	return vs
}

// checkNames returns an ErrUnknownParam error if p contains a name
// not in known.
func (p Params) checkNames(family string, known ...string) error {
	var unknown []string
outer:
	for n := range p {
		for _, k := range known {
			if n == k {
				continue outer
			}
		}
		unknown = append(unknown, n)
	}
	if unknown == nil {
		return nil
	}
	sort.Strings(unknown)
	return errors.Wrapf(ErrUnknownParam, "%s: %v", family, unknown)
}

// state is the bookkeeping shared by every distribution: which
// parameterization is active, its values, and the support.
type state struct {
	name          string
	frozen        bool
	names         []string
	params        []float64
	paramsSupport []Interval
	support       Interval
}

func (s *state) family() string { return s.name }

func (s *state) Support() (lo, hi float64) {
	return s.support.Lo, s.support.Hi
}

func (s *state) ParamNames() []string {
	return append([]string(nil), s.names...)
}

func (s *state) Params() []float64 {
	return append([]float64(nil), s.params...)
}

func (s *state) ParamsSupport() []Interval {
	return append([]Interval(nil), s.paramsSupport...)
}

func (s *state) IsFrozen() bool {
	return s.frozen
}

func (s *state) String() string {
	return formatDist(s.name, s.names, s.params)
}

// mustBeFrozen panics if the distribution has unresolved
// parameters.
func (s *state) mustBeFrozen() {
	if !s.frozen {
		panic(unfrozen(s.name))
	}
}

// positive checks that each of the named values is finite and > 0.
func positive(family string, p Params, names ...string) error {
	for _, n := range names {
		if v, ok := p[n]; ok && !(v > 0 && !math.IsInf(v, 1)) {
			return invalid(family, "%s must be > 0, got %v", n, v)
		}
	}
	return nil
}

// finite checks that each of the named values is a finite number.
func finite(family string, p Params, names ...string) error {
	for _, n := range names {
		if v, ok := p[n]; ok && (math.IsNaN(v) || math.IsInf(v, 0)) {
			return invalid(family, "%s must be finite, got %v", n, v)
		}
	}
	return nil
}
