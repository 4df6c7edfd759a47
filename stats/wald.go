// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/aclements/go-paramdist/mathx"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

type waldForm int

const (
	waldMuLam waldForm = iota
	waldMuPhi
	waldLamPhi
)

var waldForms = [...][]string{
	waldMuLam:  {"mu", "lam"},
	waldMuPhi:  {"mu", "phi"},
	waldLamPhi: {"lam", "phi"},
}

// Wald is the Wald (inverse Gaussian) distribution on (0, ∞) with
// density
//
//	f(x | μ, λ) = (λ/2π)^½ x^(-3/2) exp(-λ(x-μ)²/(2μ²x))
//
// It is parameterized by any two of mean mu, shape lam and
// phi = lam/mu.
type Wald struct {
	state
	form    waldForm
	mu, lam float64
}

// NewWald returns a Wald distribution given two of "mu", "lam" and
// "phi". With fewer, the returned distribution is not frozen.
func NewWald(p Params) (*Wald, error) {
	const name = "Wald"
	if err := p.checkNames(name, "mu", "lam", "phi"); err != nil {
		return nil, err
	}
	if p.has("mu", "lam", "phi") {
		return nil, incompatible(name, waldForms[:])
	}
	if err := positive(name, p, "mu", "lam", "phi"); err != nil {
		return nil, err
	}

	d := &Wald{form: waldMuLam}
	if p.hasAny("phi") {
		d.form = waldMuPhi
		if p.hasAny("lam") {
			d.form = waldLamPhi
		}
	}
	d.reset(p)
	if !p.has(waldForms[d.form]...) {
		return d, nil
	}
	var mu, lam float64
	switch d.form {
	case waldMuLam:
		mu, lam = p["mu"], p["lam"]
	case waldMuPhi:
		mu = p["mu"]
		lam = mu * p["phi"]
	case waldLamPhi:
		lam = p["lam"]
		mu = lam / p["phi"]
	}
	d.update(mu, lam)
	return d, nil
}

func (d *Wald) reset(p Params) {
	d.state = state{
		name:          "Wald",
		names:         waldForms[d.form],
		params:        p.values(waldForms[d.form]),
		paramsSupport: []Interval{{mathx.Eps, inf}, {mathx.Eps, inf}},
		support:       Interval{0, inf},
	}
}

func (d *Wald) update(mu, lam float64) {
	d.mu, d.lam = mu, lam
	phi := lam / mu
	switch d.form {
	case waldMuLam:
		d.params = []float64{mu, lam}
	case waldMuPhi:
		d.params = []float64{mu, phi}
	case waldLamPhi:
		d.params = []float64{lam, phi}
	}
	d.frozen = true
}

func (d *Wald) with(mu, lam float64) *Wald {
	nd := &Wald{form: d.form}
	nd.reset(nil)
	nd.update(mu, lam)
	return nd
}

// Mu returns the mean of d.
func (d *Wald) Mu() float64 { return d.mu }

// Lam returns the shape parameter of d.
func (d *Wald) Lam() float64 { return d.lam }

// Phi returns lam/mu.
func (d *Wald) Phi() float64 { return d.lam / d.mu }

func (d *Wald) Kind() Kind { return Continuous }

func (d *Wald) PDF(x float64) float64 {
	return math.Exp(d.LogPDF(x))
}

func (d *Wald) LogPDF(x float64) float64 {
	d.mustBeFrozen()
	switch {
	case math.IsNaN(x):
		return nan
	case x <= 0 || math.IsInf(x, 1):
		return -inf
	}
	mu, lam := d.mu, d.lam
	return (math.Log(lam) - (math.Log(2*math.Pi) + 3*math.Log(x)) - lam*(x-mu)*(x-mu)/(mu*mu*x)) / 2
}

// terms returns the two normal-CDF arguments of the Wald CDF and
// the log of the weight on the second term.
func (d *Wald) terms(x float64) (z1, z2, logw float64) {
	u := math.Sqrt(d.lam / x)
	v := x / d.mu
	return u * (v - 1), -u * (v + 1), 2 * d.lam / d.mu
}

func (d *Wald) CDF(x float64) float64 {
	d.mustBeFrozen()
	if !(x > 0) {
		return mathx.CDFBounds(0, x, 0, inf)
	}
	z1, z2, logw := d.terms(x)
	// The second term is exp(2λ/μ)·Φ(z2), which is computed in
	// log space because exp(2λ/μ) alone overflows for large λ/μ.
	p := mathx.Ndtr(z1) + math.Exp(logw+mathx.LogNdtr(z2))
	return mathx.CDFBounds(p, x, 0, inf)
}

// LogCDF falls back to log(CDF(x)).
func (d *Wald) LogCDF(x float64) float64 {
	return math.Log(d.CDF(x))
}

func (d *Wald) SF(x float64) float64 {
	d.mustBeFrozen()
	switch {
	case math.IsNaN(x):
		return nan
	case x <= 0:
		return 1
	case math.IsInf(x, 1):
		return 0
	}
	z1, z2, logw := d.terms(x)
	return mathx.Clamp(mathx.Ndtr(-z1)-math.Exp(logw+mathx.LogNdtr(z2)), 0, 1)
}

// LogSF falls back to log(SF(x)).
func (d *Wald) LogSF(x float64) float64 {
	return math.Log(d.SF(x))
}

// PPF has no closed form and is found by bisection on the CDF.
func (d *Wald) PPF(q float64) float64 {
	d.mustBeFrozen()
	if !(q > 0 && q < 1) {
		return mathx.PPFBounds(nan, q, 0, inf)
	}
	x := mathx.InvertCDF(d.CDF, q, 0, inf, d.mu, math.Sqrt(d.Var()))
	return mathx.PPFBounds(x, q, 0, inf)
}

func (d *Wald) ISF(q float64) float64 {
	d.mustBeFrozen()
	if !(q > 0 && q < 1) {
		return mathx.ISFBounds(nan, q, 0, inf)
	}
	negSF := func(x float64) float64 { return -d.SF(x) }
	x := mathx.InvertCDF(negSF, -q, 0, inf, d.mu, math.Sqrt(d.Var()))
	return mathx.ISFBounds(x, q, 0, inf)
}

func (d *Wald) LogISF(logq float64) float64 {
	return d.ISF(math.Exp(logq))
}

func (d *Wald) Entropy() float64 {
	d.mustBeFrozen()
	mu, lam := d.mu, d.lam
	// exp(2λ/μ)·Ei(-2λ/μ) = -exp(2λ/μ)·E₁(2λ/μ)
	return 0.5*math.Log(2*math.Pi*math.E*mu*mu*mu/lam) - 1.5*mathx.E1Scaled(2*lam/mu)
}

func (d *Wald) Mean() float64 {
	d.mustBeFrozen()
	return d.mu
}

func (d *Wald) Mode() float64 {
	d.mustBeFrozen()
	mu, lam := d.mu, d.lam
	return mu * (math.Sqrt(1+9*mu*mu/(4*lam*lam)) - 3*mu/(2*lam))
}

func (d *Wald) Median() float64 {
	return d.PPF(0.5)
}

func (d *Wald) Var() float64 {
	d.mustBeFrozen()
	return d.mu * d.mu * d.mu / d.lam
}

func (d *Wald) Std() float64 {
	return math.Sqrt(d.Var())
}

func (d *Wald) Skewness() float64 {
	d.mustBeFrozen()
	return 3 * math.Sqrt(d.mu/d.lam)
}

func (d *Wald) Kurtosis() float64 {
	d.mustBeFrozen()
	return 15 * d.mu / d.lam
}

// Rvs draws using the transformation with multiple roots of
// Michael, Schucany and Haas (1976).
func (d *Wald) Rvs(size int, src rand.Source) []float64 {
	d.mustBeFrozen()
	src = source(src)
	norm := distuv.Normal{Mu: 0, Sigma: 1, Src: src}
	unif := distuv.Uniform{Min: 0, Max: 1, Src: src}
	mu, lam := d.mu, d.lam
	return draw(size, func() float64 {
		n := norm.Rand()
		y := n * n
		x := mu + mu*mu*y/(2*lam) - mu/(2*lam)*math.Sqrt(4*mu*lam*y+mu*mu*y*y)
		if unif.Rand() <= mu/(mu+x) {
			return x
		}
		return mu * mu / x
	})
}

// FitMoments returns the Wald distribution with the given mean and
// standard deviation: mu = mean, lam = mean³/sigma².
func (d *Wald) FitMoments(mean, sigma float64) (Dist, error) {
	if err := checkMoments(d.name, mean, sigma); err != nil {
		return nil, err
	}
	if !(mean > 0) {
		return nil, invalid(d.name, "mean must be > 0, got %v", mean)
	}
	return d.with(mean, mean*mean*mean/(sigma*sigma)), nil
}

func (d *Wald) canonical() ([]float64, []link) {
	return []float64{d.mu, d.lam}, []link{linkLog, linkLog}
}

func (d *Wald) withCanonical(x []float64) (Dist, error) {
	if !(x[0] > 0 && x[1] > 0) {
		return nil, invalid(d.name, "mu and lam must be > 0, got %v", x)
	}
	return d.with(x[0], x[1]), nil
}
