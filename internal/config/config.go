// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config describes a distribution in YAML for the dist
// command:
//
//	family: beta
//	params: {mu: 0.5, sigma: 0.1}
//	truncate: {lower: 0.2, upper: 0.8}
//
// Params may be incomplete, in which case the distribution must be
// fitted before it is used. At most one of truncate and censor may be
// given; a missing bound is unbounded.
package config

import (
	"math"
	"os"
	"strconv"

	"github.com/aclements/go-paramdist/stats"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v2"
)

// Spec is a distribution description.
type Spec struct {
	Family   string             `yaml:"family"`
	Params   map[string]float64 `yaml:"params,omitempty"`
	Truncate *Bounds            `yaml:"truncate,omitempty"`
	Censor   *Bounds            `yaml:"censor,omitempty"`
}

// Bounds are the limits of a Truncated or Censored modifier. A nil
// bound is infinite.
type Bounds struct {
	Lower *float64 `yaml:"lower,omitempty"`
	Upper *float64 `yaml:"upper,omitempty"`
}

// Load reads a Spec from the YAML file at path.
func Load(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading distribution config")
	}
	s, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}
	return s, nil
}

// Parse decodes a Spec from YAML. Unknown fields are an error.
func Parse(data []byte) (*Spec, error) {
	var s Spec
	if err := yaml.UnmarshalStrict(data, &s); err != nil {
		return nil, errors.Wrap(err, "parsing distribution config")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks the parts of s that do not depend on the family.
func (s *Spec) Validate() error {
	if s.Family == "" {
		return errors.New("distribution config: family is required")
	}
	if s.Truncate != nil && s.Censor != nil {
		return errors.New("distribution config: truncate and censor are mutually exclusive")
	}
	return nil
}

// SetParam parses value and sets it as parameter name, for use with
// command-line overrides.
func (s *Spec) SetParam(name, value string) error {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return errors.Wrapf(err, "parameter %s", name)
	}
	if s.Params == nil {
		s.Params = make(map[string]float64)
	}
	s.Params[name] = v
	return nil
}

// Build constructs the distribution described by s.
func (s *Spec) Build() (stats.Dist, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	d, err := stats.New(s.Family, stats.Params(s.Params))
	if err != nil {
		return nil, err
	}
	switch {
	case s.Truncate != nil:
		lo, hi := s.Truncate.limits()
		if d, err = stats.NewTruncated(d, lo, hi); err != nil {
			return nil, err
		}
	case s.Censor != nil:
		lo, hi := s.Censor.limits()
		if d, err = stats.NewCensored(d, lo, hi); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (b *Bounds) limits() (lower, upper float64) {
	lower, upper = math.Inf(-1), math.Inf(1)
	if b.Lower != nil {
		lower = *b.Lower
	}
	if b.Upper != nil {
		upper = *b.Upper
	}
	return
}
