// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
)

var families = map[string]func(Params) (Dist, error){
	"normal":     ctor(NewNormal),
	"beta":       ctor(NewBeta),
	"betascaled": ctor(NewBetaScaled),
	"wald":       ctor(NewWald),
	"binomial":   ctor(NewBinomial),
}

// ctor adapts a family constructor so that failure yields a nil Dist
// rather than a Dist holding a nil pointer.
func ctor[D Dist](f func(Params) (D, error)) func(Params) (Dist, error) {
	return func(p Params) (Dist, error) {
		d, err := f(p)
		if err != nil {
			return nil, err
		}
		return d, nil
	}
}

// New returns a distribution of the named family. The name is
// matched case-insensitively against Families.
func New(family string, p Params) (Dist, error) {
	ctor, ok := families[strings.ToLower(family)]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownFamily, "%q", family)
	}
	return ctor(p)
}

// Families returns the sorted names accepted by New.
func Families() []string {
	names := make([]string, 0, len(families))
	for n := range families {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
