// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"
	"sort"

	"github.com/aclements/go-paramdist/mathx"
	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// KDE represents options for constructing a kernel density estimate.
//
// Kernel density estimation is a method for constructing an estimate
// ƒ̂(x) of a unknown distribution ƒ(x) given a sample from that
// distribution. Unlike the distributions in this package, it is
// non-parametric, which makes it a useful reference when judging how
// well a fitted parametric distribution matches its sample.
//
// KDE uses a Gaussian kernel. The default (zero) value of KDE is a
// reasonable default configuration.
type KDE struct {
	// Bandwidth is the bandwidth to use for the KDE.
	//
	// If this is zero, the bandwidth is computed from the
	// provided data using BandwidthScott.
	Bandwidth float64

	// BoundaryMethod is the boundary correction method to use for
	// the KDE. The default value is BoundaryReflect; however, the
	// default bounds are effectively +/-inf, which is equivalent
	// to performing no boundary correction.
	BoundaryMethod KDEBoundaryMethod

	// [BoundaryMin, BoundaryMax) specify a bounded support for
	// the KDE. If both are 0 (their default values), they are
	// treated as +/-inf.
	//
	// To specify a half-bounded support, set Min to math.Inf(-1)
	// or Max to math.Inf(1).
	BoundaryMin float64
	BoundaryMax float64
}

// BandwidthSilverman is a bandwidth estimator implementing
// Silverman's Rule of Thumb. It's fast, but not very robust to
// outliers as it assumes data is approximately normal.
//
// Silverman, B. W. (1986) Density Estimation.
func BandwidthSilverman(xs []float64) float64 {
	return 1.06 * stat.StdDev(xs, nil) * math.Pow(float64(len(xs)), -1.0/5)
}

// BandwidthScott is a bandwidth estimator implementing Scott's Rule.
// This is generally robust to outliers: it chooses the minimum
// between the sample's standard deviation and a robust estimator of
// a Gaussian distribution's standard deviation.
//
// Scott, D. W. (1992) Multivariate Density Estimation: Theory,
// Practice, and Visualization.
func BandwidthScott(xs []float64) float64 {
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)
	iqr := stat.Quantile(0.75, stat.LinInterp, sorted, nil) - stat.Quantile(0.25, stat.LinInterp, sorted, nil)
	hScale := 1.06 * math.Pow(float64(len(xs)), -1.0/5)
	stdDev := stat.StdDev(xs, nil)
	if stdDev < iqr/1.349 {
		// Use Silverman's Rule of Thumb
		return hScale * stdDev
	}
	// Use IQR/1.349 as a robust estimator of the standard
	// deviation of a Gaussian distribution.
	return hScale * (iqr / 1.349)
}

// KDEBoundaryMethod represents a boundary correction method for
// constructing a KDE with bounded support.
type KDEBoundaryMethod int

const (
	// BoundaryReflect reflects the density estimate at the
	// boundaries. For example, for a KDE with support [0, inf),
	// this is equivalent to ƒ̂ᵣ(x)=ƒ̂(x)+ƒ̂(-x) for x>=0. This is a
	// simple and fast technique, but enforces that ƒ̂ᵣ'(0)=0, so
	// it may not be applicable to all distributions.
	BoundaryReflect KDEBoundaryMethod = iota

	// boundaryNone represents no boundary correction.
	//
	// This is used internally when the bounds are -/+inf.
	boundaryNone
)

// From returns the kernel density estimate for the sample xs. It
// requires at least two values and a positive bandwidth.
func (k KDE) From(xs []float64) (*KDEDist, error) {
	if len(xs) < 2 {
		return nil, errors.Wrapf(ErrSampleSize, "KDE needs at least 2 values, got %d", len(xs))
	}
	h := k.Bandwidth
	if h == 0 {
		h = BandwidthScott(xs)
	}
	if !(h > 0) || math.IsInf(h, 1) {
		return nil, errors.Newf("KDE bandwidth must be positive and finite, got %v", h)
	}

	bm := k.BoundaryMethod
	min, max := k.BoundaryMin, k.BoundaryMax
	if min == 0 && max == 0 {
		min, max = math.Inf(-1), math.Inf(1)
	}
	if math.IsInf(min, -1) && math.IsInf(max, 1) {
		bm = boundaryNone
	}
	if !(min < max) {
		return nil, errors.Newf("KDE bounds [%v, %v) are empty", min, max)
	}
	return &KDEDist{append([]float64(nil), xs...), h, bm, min, max}, nil
}

// A KDEDist is a kernel density estimate built by KDE.From.
type KDEDist struct {
	xs       []float64
	h        float64
	bm       KDEBoundaryMethod
	min, max float64 // Support bounds
}

// Bandwidth returns the kernel bandwidth.
func (kde *KDEDist) Bandwidth() float64 { return kde.h }

// kernelMean evaluates the average of the kernel function f centered
// at each sample value at x.
func (kde *KDEDist) kernelMean(f func(z float64) float64, x float64) float64 {
	sum := 0.0
	for _, xi := range kde.xs {
		sum += f((x - xi) / kde.h)
	}
	return sum / float64(len(kde.xs))
}

func (kde *KDEDist) PDF(x float64) float64 {
	// Apply boundary
	if x < kde.min || x >= kde.max {
		return 0
	}

	y := func(x float64) float64 {
		return kde.kernelMean(mathx.NormPDF, x) / kde.h
	}
	switch kde.bm {
	default:
		panic("unknown boundary correction method")
	case boundaryNone:
		return y(x)
	case BoundaryReflect:
		if math.IsInf(kde.max, 1) {
			return y(x) + y(2*kde.min-x)
		} else if math.IsInf(kde.min, -1) {
			return y(x) + y(2*kde.max-x)
		}
		d := 2 * (kde.max - kde.min)
		w := 2 * (x - kde.min)
		return series(func(n float64) float64 {
			// Points >= x
			return y(x+n*d) + y(x+n*d-w)
		}) + series(func(n float64) float64 {
			// Points < x
			return y(x-(n+1)*d+w) + y(x-(n+1)*d)
		})
	}
}

func (kde *KDEDist) CDF(x float64) float64 {
	// Apply boundary
	if x < kde.min {
		return 0
	} else if x >= kde.max {
		return 1
	}

	y := func(x float64) float64 {
		return kde.kernelMean(mathx.Ndtr, x)
	}
	switch kde.bm {
	default:
		panic("unknown boundary correction method")
	case boundaryNone:
		return y(x)
	case BoundaryReflect:
		if math.IsInf(kde.max, 1) {
			return y(x) - y(2*kde.min-x)
		} else if math.IsInf(kde.min, -1) {
			return y(x) + (1 - y(2*kde.max-x))
		}
		d := 2 * (kde.max - kde.min)
		w := 2 * (x - kde.min)
		return series(func(n float64) float64 {
			// Windows >= x-w
			return y(x+n*d) - y(x+n*d-w)
		}) + series(func(n float64) float64 {
			// Windows < x-w
			return y(x-(n+1)*d) - y(x-(n+1)*d-w)
		})
	}
}

// Bounds returns a range that covers 99% of the estimate's mass with
// a 10% margin on each side, limited to the KDE's support.
func (kde *KDEDist) Bounds() (low float64, high float64) {
	// Use the lowest and highest samples as starting points
	lowX, highX := floats.Min(kde.xs), floats.Max(kde.xs)
	if lowX == highX {
		lowX -= 1
		highX += 1
	}

	// Find the end points that contain 99% of the CDF's weight.
	// Since bisect requires that the root be bracketed, start by
	// expanding our range if necessary.
	const (
		lowY      = 0.005
		highY     = 0.995
		tolerance = 0.001
	)
	for kde.CDF(lowX) > lowY {
		lowX -= highX - lowX
	}
	for kde.CDF(highX) < highY {
		highX += highX - lowX
	}
	low, _ = mathx.Bisect(func(x float64) float64 { return kde.CDF(x) - lowY }, lowX, highX, tolerance)
	high, _ = mathx.Bisect(func(x float64) float64 { return kde.CDF(x) - highY }, lowX, highX, tolerance)

	// Expand width by 20% to give some margins
	width := high - low
	low, high = low-0.1*width, high+0.1*width

	// Limit to bounds
	low, high = math.Max(low, kde.min), math.Min(high, kde.max)

	return
}

// series returns the sum of the series f(0), f(1), ...
//
// This implementation is fast, but subject to round-off error.
func series(f func(float64) float64) float64 {
	y, yp := 0.0, 1.0
	for n := 0.0; y != yp; n++ {
		yp = y
		y += f(n)
	}
	return y
}
