// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// source returns src, or a fresh source seeded from the clock if src
// is nil. The fresh source is never retained, so calls without an
// explicit source share no state.
func source(src rand.Source) rand.Source {
	if src != nil {
		return src
	}
	return rand.NewSource(uint64(time.Now().UnixNano()))
}

// draw returns size values of f.
func draw(size int, f func() float64) []float64 {
	if size < 0 {
		size = 0
	}
	xs := make([]float64, size)
	for i := range xs {
		xs[i] = f()
	}
	return xs
}

// uniforms returns size draws from the uniform distribution on
// [0, 1).
func uniforms(size int, src rand.Source) []float64 {
	u := distuv.Uniform{Min: 0, Max: 1, Src: source(src)}
	return draw(size, u.Rand)
}
