// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestCensoredNormal(t *testing.T) {
	d, err := NewCensored(StdNormal, -1, 1)
	require.NoError(t, err)

	require.Equal(t, 0.0, d.CDF(-1.5))
	require.InDelta(t, StdNormal.CDF(-1), d.CDF(-1), 1e-15)
	require.InDelta(t, StdNormal.CDF(0.5), d.CDF(0.5), 1e-15)
	require.Equal(t, 1.0, d.CDF(1))

	// Point masses at the bounds.
	require.InDelta(t, StdNormal.CDF(-1), d.PDF(-1), 1e-12)
	require.InDelta(t, StdNormal.SF(1), d.PDF(1), 1e-12)
	require.InDelta(t, StdNormal.PDF(0), d.PDF(0), 1e-15)
	require.Equal(t, 0.0, d.PDF(2))

	require.Equal(t, -1.0, d.PPF(0.01))
	require.Equal(t, 1.0, d.PPF(0.99))
	require.InDelta(t, 0, d.PPF(0.5), 1e-12)
	require.InDelta(t, 0, d.Mean(), 1e-9)
	require.Equal(t, StdNormal.Entropy(), d.Entropy())

	xs := d.Rvs(10000, rand.NewSource(3))
	atBounds := 0
	for _, x := range xs {
		require.True(t, x >= -1 && x <= 1, "draw %v", x)
		if x == -1 || x == 1 {
			atBounds++
		}
	}
	// About 31.7% of the mass is censored.
	require.InDelta(t, 0.317, float64(atBounds)/float64(len(xs)), 0.02)
}

func TestCensoredBinomial(t *testing.T) {
	b, err := NewBinomial(Params{"n": 10, "p": 0.3})
	require.NoError(t, err)
	d, err := NewCensored(b, 2, 5)
	require.NoError(t, err)

	require.InDelta(t, 0.3827827863999998, d.PDF(2), 1e-12)
	require.InDelta(t, 0.15026833259999994, d.PDF(5), 1e-12)
	sum := 0.0
	for k := 2.0; k <= 5; k++ {
		sum += d.PDF(k)
	}
	require.InDelta(t, 1, sum, 1e-12)
	require.Equal(t, 0.0, d.PDF(1))
	require.Equal(t, 0.0, d.PDF(6))
	testDiscreteCDF(t, "Censored(Binomial).CDF", d)
	require.InDelta(t, b.PDF(3), d.PDF(3), 1e-15)
}

func TestCensoredFit(t *testing.T) {
	base, err := NewNormal(nil)
	require.NoError(t, err)
	d, err := NewCensored(base, -1, 10)
	require.NoError(t, err)
	require.False(t, d.IsFrozen())

	fit := fitMoments(t, d, 2, 1.5).(*Censored)
	require.True(t, fit.IsFrozen())
	require.Equal(t, 2.0, fit.Base().Mean())
	require.Equal(t, 1.5, fit.Base().Std())
	lower, upper := fit.Bounds()
	require.Equal(t, -1.0, lower)
	require.Equal(t, 10.0, upper)
	require.InDelta(t, fit.Base().CDF(-1), fit.PDF(-1), 1e-15)

	nf, err := NewCensored(notFittable{StdNormal}, -1, 1)
	require.NoError(t, err)
	_, err = nf.FitMoments(0, 1)
	require.True(t, errors.Is(err, ErrNotFittable), "got %v", err)
}
