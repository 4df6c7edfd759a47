// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	// ErrIncompatibleParams is returned when parameters from more
	// than one parameterization are given together.
	ErrIncompatibleParams = errors.New("stats: incompatible parametrization")

	// ErrUnknownParam is returned for a parameter name the
	// family does not recognize.
	ErrUnknownParam = errors.New("stats: unknown parameter")

	// ErrInvalidParam is returned when a parameter value is
	// outside its valid domain.
	ErrInvalidParam = errors.New("stats: invalid parameter value")

	// ErrUnfrozen is the panic value (wrapped) raised when a
	// functional method is called on a distribution whose
	// parameters are not all known.
	ErrUnfrozen = errors.New("stats: distribution is not frozen")

	// ErrSampleSize is returned when a sample is too small for
	// the requested operation.
	ErrSampleSize = errors.New("stats: sample is too small")

	// ErrUnknownFamily is returned by New for a family name that
	// is not registered.
	ErrUnknownFamily = errors.New("stats: unknown distribution family")

	// ErrNotFittable is returned when a distribution does not
	// support the requested fitting method.
	ErrNotFittable = errors.New("stats: distribution cannot be fit")
)

// incompatible returns an ErrIncompatibleParams error listing the
// parameterizations family accepts.
func incompatible(family string, forms [][]string) error {
	alts := make([]string, len(forms))
	for i, f := range forms {
		alts[i] = strings.Join(f, " and ")
	}
	return errors.Wrapf(ErrIncompatibleParams, "%s: either use %s", family, strings.Join(alts, ", or "))
}

func invalid(family, format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidParam, "%s: %s", family, fmt.Sprintf(format, args...))
}

func unfrozen(family string) error {
	return errors.Wrapf(ErrUnfrozen, "%s", family)
}
