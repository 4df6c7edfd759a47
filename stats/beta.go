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

type betaForm int

const (
	betaAlphaBeta betaForm = iota
	betaMuSigma
	betaMuNu
)

var betaForms = [...][]string{
	betaAlphaBeta: {"alpha", "beta"},
	betaMuSigma:   {"mu", "sigma"},
	betaMuNu:      {"mu", "nu"},
}

var betaParamsSupport = [...][]Interval{
	betaAlphaBeta: {{mathx.Eps, inf}, {mathx.Eps, inf}},
	betaMuSigma:   {{mathx.Eps, 1 - mathx.Eps}, {mathx.Eps, 1 - mathx.Eps}},
	betaMuNu:      {{mathx.Eps, 1 - mathx.Eps}, {mathx.Eps, inf}},
}

// Beta is a beta distribution on (0, 1) with density
//
//	f(x | α, β) = x^(α-1) (1-x)^(β-1) / B(α, β)
//
// It has three parameterizations: shape parameters alpha and beta;
// mean mu and standard deviation sigma; or mean mu and concentration
// nu. They are linked by
//
//	α = μν
//	β = (1-μ)ν
//	ν = μ(1-μ)/σ² - 1
//
// mu must be in (0, 1) and sigma must be less than sqrt(mu(1-mu)).
type Beta struct {
	state
	form        betaForm
	alpha, beta float64
}

// NewBeta returns a beta distribution given one of the pairs
// ("alpha", "beta"), ("mu", "sigma") or ("mu", "nu"). A lone "mu"
// selects the ("mu", "nu") parameterization. If the chosen pair is
// incomplete, the returned distribution is not frozen.
func NewBeta(p Params) (*Beta, error) {
	const name = "Beta"
	if err := p.checkNames(name, "alpha", "beta", "mu", "sigma", "nu"); err != nil {
		return nil, err
	}
	if p.hasAny("alpha", "beta") && p.hasAny("mu", "sigma", "nu") || p.has("sigma", "nu") {
		return nil, incompatible(name, betaForms[:])
	}
	if err := positive(name, p, "alpha", "beta", "sigma", "nu"); err != nil {
		return nil, err
	}
	if mu, ok := p["mu"]; ok && !(mu > 0 && mu < 1) {
		return nil, invalid(name, "mu must be in (0, 1), got %v", mu)
	}

	d := &Beta{form: betaAlphaBeta}
	switch {
	case p.hasAny("sigma"):
		d.form = betaMuSigma
	case p.hasAny("mu", "nu"):
		d.form = betaMuNu
	}
	d.reset(p)
	if !p.has(betaForms[d.form]...) {
		return d, nil
	}

	var alpha, beta float64
	switch d.form {
	case betaAlphaBeta:
		alpha, beta = p["alpha"], p["beta"]
	case betaMuSigma:
		mu, sigma := p["mu"], p["sigma"]
		if sigma*sigma >= mu*(1-mu) {
			return nil, invalid(name, "sigma must be < sqrt(mu*(1-mu)) = %v, got %v", math.Sqrt(mu*(1-mu)), sigma)
		}
		alpha, beta = betaFromMuSigma(mu, sigma)
	case betaMuNu:
		alpha, beta = betaFromMuNu(p["mu"], p["nu"])
	}
	d.update(alpha, beta)
	return d, nil
}

func (d *Beta) reset(p Params) {
	d.state = state{
		name:          "Beta",
		names:         betaForms[d.form],
		params:        p.values(betaForms[d.form]),
		paramsSupport: betaParamsSupport[d.form],
		support:       Interval{0, 1},
	}
}

func (d *Beta) update(alpha, beta float64) {
	d.alpha, d.beta = alpha, beta
	mu, sigma := betaToMuSigma(alpha, beta)
	switch d.form {
	case betaAlphaBeta:
		d.params = []float64{alpha, beta}
	case betaMuSigma:
		d.params = []float64{mu, sigma}
	case betaMuNu:
		d.params = []float64{mu, alpha + beta}
	}
	d.frozen = true
}

func betaFromMuSigma(mu, sigma float64) (alpha, beta float64) {
	nu := mu*(1-mu)/(sigma*sigma) - 1
	return betaFromMuNu(mu, nu)
}

func betaFromMuNu(mu, nu float64) (alpha, beta float64) {
	return mu * nu, (1 - mu) * nu
}

func betaToMuSigma(alpha, beta float64) (mu, sigma float64) {
	ab := alpha + beta
	mu = alpha / ab
	sigma = math.Sqrt(alpha*beta) / ab / math.Sqrt(ab+1)
	return
}

// Alpha returns the first shape parameter of d.
func (d *Beta) Alpha() float64 { return d.alpha }

// Beta returns the second shape parameter of d.
func (d *Beta) Beta() float64 { return d.beta }

func (d *Beta) Kind() Kind { return Continuous }

func (d *Beta) PDF(x float64) float64 {
	return math.Exp(d.LogPDF(x))
}

// LogPDF returns the log density of d at x. At x = 0 (x = 1) the
// density is +Inf if alpha < 1 (beta < 1).
func (d *Beta) LogPDF(x float64) float64 {
	d.mustBeFrozen()
	a, b := d.alpha, d.beta
	switch {
	case math.IsNaN(x):
		return nan
	case x < 0 || x > 1:
		return -inf
	case x == 0 && a < 1, x == 1 && b < 1:
		return inf
	}
	return mathx.Xlogy(a-1, x) + mathx.Xlog1py(b-1, -x) - mathx.Lbeta(a, b)
}

func (d *Beta) CDF(x float64) float64 {
	d.mustBeFrozen()
	return mathx.CDFBounds(mathx.BetaInc(x, d.alpha, d.beta), x, 0, 1)
}

// LogCDF falls back to log(CDF(x)).
func (d *Beta) LogCDF(x float64) float64 {
	return math.Log(d.CDF(x))
}

func (d *Beta) SF(x float64) float64 {
	d.mustBeFrozen()
	switch {
	case math.IsNaN(x):
		return nan
	case x < 0:
		return 1
	case x >= 1:
		return 0
	}
	return mathx.Clamp(mathx.BetaInc(1-x, d.beta, d.alpha), 0, 1)
}

// LogSF falls back to log(SF(x)).
func (d *Beta) LogSF(x float64) float64 {
	return math.Log(d.SF(x))
}

func (d *Beta) PPF(q float64) float64 {
	d.mustBeFrozen()
	return mathx.PPFBounds(mathx.InvBetaInc(q, d.alpha, d.beta), q, 0, 1)
}

func (d *Beta) ISF(q float64) float64 {
	d.mustBeFrozen()
	return mathx.ISFBounds(1-mathx.InvBetaInc(q, d.beta, d.alpha), q, 0, 1)
}

func (d *Beta) LogISF(logq float64) float64 {
	return d.ISF(math.Exp(logq))
}

func (d *Beta) Entropy() float64 {
	d.mustBeFrozen()
	a, b := d.alpha, d.beta
	return mathx.Lbeta(a, b) - (a-1)*mathx.Digamma(a) - (b-1)*mathx.Digamma(b) + (a+b-2)*mathx.Digamma(a+b)
}

func (d *Beta) Mean() float64 {
	d.mustBeFrozen()
	return d.alpha / (d.alpha + d.beta)
}

// Mode returns the mode of d. It is NaN when both shape parameters
// are <= 1 and the density has no unique interior maximum.
func (d *Beta) Mode() float64 {
	d.mustBeFrozen()
	a, b := d.alpha, d.beta
	switch {
	case a > 1 && b > 1:
		return (a - 1) / (a + b - 2)
	case a <= 1 && b > 1:
		return 0
	case a > 1 && b <= 1:
		return 1
	}
	return nan
}

func (d *Beta) Median() float64 {
	return d.PPF(0.5)
}

func (d *Beta) Var() float64 {
	d.mustBeFrozen()
	a, b := d.alpha, d.beta
	ab := a + b
	return a * b / (ab * ab * (ab + 1))
}

func (d *Beta) Std() float64 {
	return math.Sqrt(d.Var())
}

func (d *Beta) Skewness() float64 {
	d.mustBeFrozen()
	a, b := d.alpha, d.beta
	return 2 * (b - a) * math.Sqrt(a+b+1) / ((a + b + 2) * math.Sqrt(a*b))
}

func (d *Beta) Kurtosis() float64 {
	d.mustBeFrozen()
	a, b := d.alpha, d.beta
	num := 6 * ((a-b)*(a-b)*(a+b+1) - a*b*(a+b+2))
	return num / (a * b * (a + b + 2) * (a + b + 3))
}

func (d *Beta) Rvs(size int, src rand.Source) []float64 {
	d.mustBeFrozen()
	b := distuv.Beta{Alpha: d.alpha, Beta: d.beta, Src: source(src)}
	return draw(size, b.Rand)
}

// FitMoments returns the beta distribution with the given mean and
// standard deviation. Shape parameters are floored at 0.5 so that
// extreme inputs still yield a valid distribution.
func (d *Beta) FitMoments(mean, sigma float64) (Dist, error) {
	if err := checkMoments(d.name, mean, sigma); err != nil {
		return nil, err
	}
	alpha, beta := betaFromMuSigma(mean, sigma)
	return d.withShapes(math.Max(0.5, alpha), math.Max(0.5, beta)), nil
}

func (d *Beta) withShapes(alpha, beta float64) *Beta {
	nd := &Beta{form: d.form}
	nd.reset(nil)
	nd.update(alpha, beta)
	return nd
}

func (d *Beta) canonical() ([]float64, []link) {
	return []float64{d.alpha, d.beta}, []link{linkLog, linkLog}
}

func (d *Beta) withCanonical(x []float64) (Dist, error) {
	if !(x[0] > 0 && x[1] > 0) {
		return nil, invalid(d.name, "shape parameters must be > 0, got %v", x)
	}
	return d.withShapes(x[0], x[1]), nil
}
