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

type normalForm int

const (
	normalMuSigma normalForm = iota
	normalMuTau
)

var normalForms = [...][]string{
	normalMuSigma: {"mu", "sigma"},
	normalMuTau:   {"mu", "tau"},
}

// Normal is a normal (Gaussian) distribution.
//
// It can be parameterized by mean mu and standard deviation sigma,
// or by mean mu and precision tau = 1/sigma².
type Normal struct {
	state
	form      normalForm
	mu, sigma float64
}

// StdNormal is the standard normal distribution (mu = 0, sigma = 1).
var StdNormal = mustNormal(0, 1)

func mustNormal(mu, sigma float64) *Normal {
	d, err := NewNormal(Params{"mu": mu, "sigma": sigma})
	if err != nil {
		panic(err)
	}
	return d
}

// NewNormal returns a normal distribution given "mu" and one of
// "sigma" or "tau". If any of these is missing, the returned
// distribution is not frozen.
func NewNormal(p Params) (*Normal, error) {
	const name = "Normal"
	if err := p.checkNames(name, "mu", "sigma", "tau"); err != nil {
		return nil, err
	}
	if p.has("sigma", "tau") {
		return nil, incompatible(name, normalForms[:])
	}
	if err := finite(name, p, "mu"); err != nil {
		return nil, err
	}
	if err := positive(name, p, "sigma", "tau"); err != nil {
		return nil, err
	}

	d := &Normal{form: normalMuSigma}
	if p.has("tau") {
		d.form = normalMuTau
	}
	d.reset(p)
	if !p.has(normalForms[d.form]...) {
		return d, nil
	}
	sigma := p.get("sigma")
	if d.form == normalMuTau {
		sigma = fromPrecision(p["tau"])
	}
	d.update(p["mu"], sigma)
	return d, nil
}

func (d *Normal) reset(p Params) {
	d.state = state{
		name:          "Normal",
		names:         normalForms[d.form],
		params:        p.values(normalForms[d.form]),
		paramsSupport: []Interval{{-inf, inf}, {mathx.Eps, inf}},
		support:       Interval{-inf, inf},
	}
}

// update sets the canonical parameters and freezes d.
func (d *Normal) update(mu, sigma float64) {
	d.mu, d.sigma = mu, sigma
	switch d.form {
	case normalMuSigma:
		d.params = []float64{mu, sigma}
	case normalMuTau:
		d.params = []float64{mu, toPrecision(sigma)}
	}
	d.frozen = true
}

func fromPrecision(tau float64) float64 { return 1 / math.Sqrt(tau) }

func toPrecision(sigma float64) float64 { return 1 / (sigma * sigma) }

// Mu returns the mean of d.
func (d *Normal) Mu() float64 { return d.mu }

// Sigma returns the standard deviation of d.
func (d *Normal) Sigma() float64 { return d.sigma }

// Tau returns the precision of d.
func (d *Normal) Tau() float64 { return toPrecision(d.sigma) }

func (d *Normal) Kind() Kind { return Continuous }

func (d *Normal) PDF(x float64) float64 {
	d.mustBeFrozen()
	return mathx.NormPDF((x-d.mu)/d.sigma) / d.sigma
}

func (d *Normal) LogPDF(x float64) float64 {
	d.mustBeFrozen()
	return mathx.NormLogPDF((x-d.mu)/d.sigma) - math.Log(d.sigma)
}

func (d *Normal) CDF(x float64) float64 {
	d.mustBeFrozen()
	return mathx.CDFBounds(mathx.Ndtr((x-d.mu)/d.sigma), x, -inf, inf)
}

func (d *Normal) LogCDF(x float64) float64 {
	d.mustBeFrozen()
	return mathx.LogNdtr((x - d.mu) / d.sigma)
}

func (d *Normal) SF(x float64) float64 {
	d.mustBeFrozen()
	return mathx.Clamp(mathx.Ndtr((d.mu-x)/d.sigma), 0, 1)
}

func (d *Normal) LogSF(x float64) float64 {
	d.mustBeFrozen()
	return mathx.LogNdtr((d.mu - x) / d.sigma)
}

func (d *Normal) PPF(q float64) float64 {
	d.mustBeFrozen()
	return mathx.PPFBounds(d.mu+d.sigma*mathx.Ndtri(q), q, -inf, inf)
}

func (d *Normal) ISF(q float64) float64 {
	d.mustBeFrozen()
	return mathx.ISFBounds(d.mu-d.sigma*mathx.Ndtri(q), q, -inf, inf)
}

func (d *Normal) LogISF(logq float64) float64 {
	return d.ISF(math.Exp(logq))
}

func (d *Normal) Entropy() float64 {
	d.mustBeFrozen()
	return 0.5 * math.Log(2*math.Pi*math.E*d.sigma*d.sigma)
}

func (d *Normal) Mean() float64 {
	d.mustBeFrozen()
	return d.mu
}

func (d *Normal) Mode() float64 {
	d.mustBeFrozen()
	return d.mu
}

func (d *Normal) Median() float64 {
	d.mustBeFrozen()
	return d.mu
}

func (d *Normal) Var() float64 {
	d.mustBeFrozen()
	return d.sigma * d.sigma
}

func (d *Normal) Std() float64 {
	d.mustBeFrozen()
	return d.sigma
}

func (d *Normal) Skewness() float64 {
	d.mustBeFrozen()
	return 0
}

func (d *Normal) Kurtosis() float64 {
	d.mustBeFrozen()
	return 0
}

func (d *Normal) Rvs(size int, src rand.Source) []float64 {
	d.mustBeFrozen()
	n := distuv.Normal{Mu: d.mu, Sigma: d.sigma, Src: source(src)}
	return draw(size, n.Rand)
}

// FitMoments returns a normal distribution with mean mean and
// standard deviation sigma.
func (d *Normal) FitMoments(mean, sigma float64) (Dist, error) {
	if err := checkMoments(d.name, mean, sigma); err != nil {
		return nil, err
	}
	nd := &Normal{form: d.form}
	nd.reset(nil)
	nd.update(mean, sigma)
	return nd, nil
}

func (d *Normal) canonical() ([]float64, []link) {
	return []float64{d.mu, d.sigma}, []link{linkIdentity, linkLog}
}

func (d *Normal) withCanonical(x []float64) (Dist, error) {
	return d.FitMoments(x[0], x[1])
}

// fitMLE uses the closed-form maximum likelihood estimates: the
// sample mean and the (biased) sample standard deviation.
func (d *Normal) fitMLE(sample []float64) (Dist, error) {
	mean, std := meanAndStd(sample)
	return d.FitMoments(mean, std)
}
