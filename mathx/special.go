// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mathx

import (
	"math"

	"gonum.org/v1/gonum/mathext"
	"gonum.org/v1/gonum/stat/distuv"
)

// 1/sqrt(2 * pi)
const invSqrt2Pi = 0.39894228040143267793994605993438186847585863116493465766592583

// log(sqrt(2 * pi))
const logSqrt2Pi = 0.91893853320467274178032973640561763986139747363778341281715154

// BetaInc returns the value of the regularized incomplete beta
// function Iₓ(a, b).
func BetaInc(x, a, b float64) float64 {
	if math.IsNaN(x) {
		return nan
	} else if x <= 0 {
		return 0
	} else if x >= 1 {
		return 1
	}
	return mathext.RegIncBeta(a, b, x)
}

// InvBetaInc returns the x for which Iₓ(a, b) = y.
func InvBetaInc(y, a, b float64) float64 {
	if math.IsNaN(y) {
		return nan
	} else if y <= 0 {
		return 0
	} else if y >= 1 {
		return 1
	}
	return mathext.InvRegIncBeta(a, b, y)
}

// Lbeta returns log(|B(a, b)|).
func Lbeta(a, b float64) float64 {
	return mathext.Lbeta(a, b)
}

// Digamma returns ψ(x), the logarithmic derivative of Γ(x).
func Digamma(x float64) float64 {
	return mathext.Digamma(x)
}

// Lgamma returns log(|Γ(x)|).
func Lgamma(x float64) float64 {
	lg, _ := math.Lgamma(x)
	return lg
}

// Lchoose returns log(n choose k).
func Lchoose(n, k int) float64 {
	if k < 0 || k > n {
		return math.Inf(-1)
	}
	return Lgamma(float64(n+1)) - Lgamma(float64(k+1)) - Lgamma(float64(n-k+1))
}

// NormPDF returns the standard normal density at z.
func NormPDF(z float64) float64 {
	return math.Exp(-z*z/2) * invSqrt2Pi
}

// NormLogPDF returns the log of the standard normal density at z.
func NormLogPDF(z float64) float64 {
	return -z*z/2 - logSqrt2Pi
}

// Ndtr returns the standard normal CDF at z.
func Ndtr(z float64) float64 {
	return math.Erfc(-z/math.Sqrt2) / 2
}

// LogNdtr returns log(Ndtr(z)). It stays finite far into the lower
// tail, where Ndtr underflows, by switching to the asymptotic series
// of the Mills ratio.
func LogNdtr(z float64) float64 {
	switch {
	case math.IsNaN(z):
		return nan
	case z > 6:
		return math.Log1p(-Ndtr(-z))
	case z > -20:
		return math.Log(Ndtr(z))
	}
	// log Ndtr(z) = log φ(z) - log(-z) + log(1 - 1/z² + 3/z⁴ - ...)
	z2 := z * z
	sum, term := 1.0, 1.0
	for i := 1; i < 10; i++ {
		term *= -float64(2*i-1) / z2
		sum += term
	}
	return NormLogPDF(z) - math.Log(-z) + math.Log(sum)
}

// Ndtri returns the standard normal quantile of p. It returns NaN
// for p outside [0, 1].
func Ndtri(p float64) float64 {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return nan
	}
	return distuv.UnitNormal.Quantile(p)
}

// Log1mExp returns log(1 - exp(x)) for x <= 0.
func Log1mExp(x float64) float64 {
	if x > 0 {
		return nan
	}
	if x > -math.Ln2 {
		return math.Log(-math.Expm1(x))
	}
	return math.Log1p(-math.Exp(x))
}

// Xlogy returns x*log(y), defined as 0 when x is 0.
func Xlogy(x, y float64) float64 {
	if x == 0 && !math.IsNaN(y) {
		return 0
	}
	return x * math.Log(y)
}

// Xlog1py returns x*log1p(y), defined as 0 when x is 0.
func Xlog1py(x, y float64) float64 {
	if x == 0 && !math.IsNaN(y) {
		return 0
	}
	return x * math.Log1p(y)
}
