// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func aeq(expect, got float64) bool {
	if expect == got {
		return true
	}
	return math.Abs(expect-got) < 0.00001
}

// testFunc checks f against a table of expected values.
func testFunc(t *testing.T, name string, f func(float64) float64, vals map[float64]float64) {
	t.Helper()
	for in, want := range vals {
		if got := f(in); !aeq(want, got) {
			t.Errorf("%s(%v) = %v, want %v", name, in, got, want)
		}
	}
}

// testDiscreteCDF checks that the CDF of a discrete distribution is
// a step function agreeing with the running sum of its PDF.
func testDiscreteCDF(t *testing.T, name string, d Dist) {
	t.Helper()
	lo, hi := d.Support()
	sum := 0.0
	for k := lo; k <= hi; k++ {
		sum += d.PDF(k)
		if got := d.CDF(k); !aeq(sum, got) {
			t.Errorf("%s(%v) = %v, want %v", name, k, got, sum)
		}
		if d.CDF(k) != d.CDF(k+0.5) {
			t.Errorf("%s(%v) = %v != %s(%v) = %v", name, k, d.CDF(k), name, k+0.5, d.CDF(k+0.5))
		}
	}
	if got := d.CDF(lo - 1); got != 0 {
		t.Errorf("%s(%v) = %v, want 0", name, lo-1, got)
	}
}

func mustDist(t *testing.T, family string, p Params) Dist {
	t.Helper()
	d, err := New(family, p)
	require.NoError(t, err)
	return d
}

func fitMoments(t *testing.T, f Fitter, mean, sigma float64) Dist {
	t.Helper()
	d, err := f.FitMoments(mean, sigma)
	require.NoError(t, err)
	return d
}
