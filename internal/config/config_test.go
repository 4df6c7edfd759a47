// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/aclements/go-paramdist/stats"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestParseTruncated(t *testing.T) {
	s, err := Parse([]byte(`
family: beta
params: {mu: 0.5, sigma: 0.1}
truncate: {lower: 0.2, upper: 0.8}
`))
	require.NoError(t, err)
	require.Equal(t, "beta", s.Family)
	require.Equal(t, map[string]float64{"mu": 0.5, "sigma": 0.1}, s.Params)
	require.Nil(t, s.Censor)

	d, err := s.Build()
	require.NoError(t, err)
	tr, ok := d.(*stats.Truncated)
	require.True(t, ok)
	lo, hi := tr.Support()
	require.Equal(t, 0.2, lo)
	require.Equal(t, 0.8, hi)
	require.InDelta(t, 0.5, tr.Median(), 1e-9)
}

func TestParseCensoredOneSided(t *testing.T) {
	s, err := Parse([]byte("family: normal\nparams: {mu: 0, sigma: 1}\ncensor: {upper: 2}\n"))
	require.NoError(t, err)
	d, err := s.Build()
	require.NoError(t, err)
	c, ok := d.(*stats.Censored)
	require.True(t, ok)
	lower, upper := c.Bounds()
	require.True(t, math.IsInf(lower, -1))
	require.Equal(t, 2.0, upper)
}

func TestUnfrozen(t *testing.T) {
	s, err := Parse([]byte("family: Wald\n"))
	require.NoError(t, err)
	d, err := s.Build()
	require.NoError(t, err)
	require.False(t, d.IsFrozen())

	require.NoError(t, s.SetParam("mu", "2"))
	require.NoError(t, s.SetParam("lam", "6"))
	d, err = s.Build()
	require.NoError(t, err)
	require.True(t, d.IsFrozen())
	require.Equal(t, 2.0, d.Mean())

	require.Error(t, s.SetParam("mu", "two"))
}

func TestErrors(t *testing.T) {
	_, err := Parse([]byte("params: {mu: 1}\n"))
	require.Error(t, err)
	_, err = Parse([]byte("family: normal\ntruncate: {}\ncensor: {}\n"))
	require.Error(t, err)
	_, err = Parse([]byte("family: normal\nshape: 3\n"))
	require.Error(t, err)

	s, err := Parse([]byte("family: gamma\n"))
	require.NoError(t, err)
	_, err = s.Build()
	require.True(t, errors.Is(err, stats.ErrUnknownFamily))

	s, err = Parse([]byte("family: beta\nparams: {alpha: 2, mu: 0.5}\n"))
	require.NoError(t, err)
	_, err = s.Build()
	require.True(t, errors.Is(err, stats.ErrIncompatibleParams))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dist.yaml")
	require.NoError(t, os.WriteFile(path, []byte("family: binomial\nparams: {n: 10, p: 0.5}\n"), 0o644))
	s, err := Load(path)
	require.NoError(t, err)
	d, err := s.Build()
	require.NoError(t, err)
	require.Equal(t, 5.0, d.Mean())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
