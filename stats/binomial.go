// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/aclements/go-paramdist/mathx"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

type binomialForm int

const (
	binomialNP binomialForm = iota
	binomialNMu
)

var binomialForms = [...][]string{
	binomialNP:  {"n", "p"},
	binomialNMu: {"n", "mu"},
}

var binomialParamsSupport = [...][]Interval{
	binomialNP:  {{0, inf}, {mathx.Eps, 1 - mathx.Eps}},
	binomialNMu: {{0, inf}, {mathx.Eps, inf}},
}

// Binomial is a binomial distribution: the number of successes in n
// independent Bernoulli trials with probability p.
//
// It is parameterized either by n and p, or by n and the mean
// mu = n*p. If n = 1, this is equivalent to the Bernoulli
// distribution.
type Binomial struct {
	state
	form binomialForm
	n    int
	p    float64
}

// NewBinomial returns a binomial distribution given "n" and one of
// "p" or "mu". n must be a non-negative integer. If either parameter
// is missing, the returned distribution is not frozen.
func NewBinomial(p Params) (*Binomial, error) {
	const name = "Binomial"
	if err := p.checkNames(name, "n", "p", "mu"); err != nil {
		return nil, err
	}
	if p.has("p", "mu") {
		return nil, incompatible(name, binomialForms[:])
	}
	if n, ok := p["n"]; ok && !(n >= 0 && n == math.Trunc(n) && n <= math.MaxInt32) {
		return nil, invalid(name, "n must be a non-negative integer, got %v", n)
	}
	if pr, ok := p["p"]; ok && !(pr >= 0 && pr <= 1) {
		return nil, invalid(name, "p must be in [0, 1], got %v", pr)
	}
	if mu, ok := p["mu"]; ok && !(mu >= 0 && (!p.hasAny("n") || mu <= p["n"])) {
		return nil, invalid(name, "mu must be in [0, n], got %v", mu)
	}

	d := &Binomial{form: binomialNP}
	if p.hasAny("mu") {
		d.form = binomialNMu
	}
	d.reset(p)
	if !p.has(binomialForms[d.form]...) {
		return d, nil
	}
	n := int(p["n"])
	pr := p.get("p")
	if d.form == binomialNMu {
		pr = 0
		if n > 0 {
			pr = p["mu"] / float64(n)
		}
	}
	d.update(n, pr)
	return d, nil
}

func (d *Binomial) reset(p Params) {
	d.state = state{
		name:          "Binomial",
		names:         binomialForms[d.form],
		params:        p.values(binomialForms[d.form]),
		paramsSupport: binomialParamsSupport[d.form],
		support:       Interval{0, p.get("n")},
	}
}

func (d *Binomial) update(n int, p float64) {
	d.n, d.p = n, p
	switch d.form {
	case binomialNP:
		d.params = []float64{float64(n), p}
	case binomialNMu:
		d.params = []float64{float64(n), float64(n) * p}
	}
	d.support = Interval{0, float64(n)}
	d.frozen = true
}

func (d *Binomial) with(n int, p float64) *Binomial {
	nd := &Binomial{form: d.form}
	nd.reset(nil)
	nd.update(n, p)
	return nd
}

// N returns the number of trials.
func (d *Binomial) N() int { return d.n }

// P returns the probability of success in each trial.
func (d *Binomial) P() float64 { return d.p }

func (d *Binomial) Kind() Kind { return Discrete }

// PDF is the probability of getting exactly k successes in d.N
// independent Bernoulli trials with probability d.P. It is 0 if k
// is not an integer.
func (d *Binomial) PDF(k float64) float64 {
	return math.Exp(d.LogPDF(k))
}

func (d *Binomial) LogPDF(k float64) float64 {
	d.mustBeFrozen()
	if math.IsNaN(k) {
		return nan
	}
	if k != math.Trunc(k) || k < 0 || k > float64(d.n) {
		return -inf
	}
	ki := int(k)
	return mathx.Lchoose(d.n, ki) + mathx.Xlogy(k, d.p) + mathx.Xlog1py(float64(d.n-ki), -d.p)
}

// CDF is the probability of getting k or fewer successes in d.N
// independent Bernoulli trials with probability d.P.
func (d *Binomial) CDF(k float64) float64 {
	d.mustBeFrozen()
	if math.IsNaN(k) {
		return nan
	}
	k = math.Floor(k)
	if k < 0 {
		return 0
	} else if k >= float64(d.n) {
		return 1
	}
	return mathx.Clamp(mathx.BetaInc(1-d.p, float64(d.n)-k, k+1), 0, 1)
}

// LogCDF falls back to log(CDF(k)).
func (d *Binomial) LogCDF(k float64) float64 {
	return math.Log(d.CDF(k))
}

func (d *Binomial) SF(k float64) float64 {
	d.mustBeFrozen()
	if math.IsNaN(k) {
		return nan
	}
	k = math.Floor(k)
	if k < 0 {
		return 1
	} else if k >= float64(d.n) {
		return 0
	}
	return mathx.Clamp(mathx.BetaInc(d.p, k+1, float64(d.n)-k), 0, 1)
}

// LogSF falls back to log(SF(k)).
func (d *Binomial) LogSF(k float64) float64 {
	return math.Log(d.SF(k))
}

// PPF returns the smallest k such that CDF(k) >= q.
func (d *Binomial) PPF(q float64) float64 {
	d.mustBeFrozen()
	n := float64(d.n)
	if !(q > 0 && q < 1) {
		return mathx.PPFBoundsDisc(nan, q, 0, n)
	}
	// Start from the normal approximation and walk to the
	// exact answer.
	k := mathx.Clamp(math.Floor(d.Mean()+d.Std()*mathx.Ndtri(q)), 0, n)
	for k > 0 && d.CDF(k-1) >= q {
		k--
	}
	for k < n && d.CDF(k) < q {
		k++
	}
	return mathx.PPFBoundsDisc(k, q, 0, n)
}

// ISF returns the smallest k such that SF(k) <= q.
func (d *Binomial) ISF(q float64) float64 {
	d.mustBeFrozen()
	n := float64(d.n)
	if !(q > 0 && q < 1) {
		return mathx.ISFBoundsDisc(nan, q, 0, n)
	}
	k := mathx.Clamp(math.Floor(d.Mean()-d.Std()*mathx.Ndtri(q)), 0, n)
	for k > 0 && d.SF(k-1) <= q {
		k--
	}
	for k < n && d.SF(k) > q {
		k++
	}
	return mathx.ISFBoundsDisc(k, q, 0, n)
}

func (d *Binomial) LogISF(logq float64) float64 {
	return d.ISF(math.Exp(logq))
}

func (d *Binomial) Entropy() float64 {
	d.mustBeFrozen()
	h := 0.0
	for k := 0; k <= d.n; k++ {
		if lp := d.LogPDF(float64(k)); !math.IsInf(lp, -1) {
			h -= math.Exp(lp) * lp
		}
	}
	return h
}

func (d *Binomial) Mean() float64 {
	d.mustBeFrozen()
	return float64(d.n) * d.p
}

func (d *Binomial) Mode() float64 {
	d.mustBeFrozen()
	return math.Min(math.Floor(float64(d.n+1)*d.p), float64(d.n))
}

func (d *Binomial) Median() float64 {
	return d.PPF(0.5)
}

func (d *Binomial) Var() float64 {
	d.mustBeFrozen()
	return float64(d.n) * d.p * (1 - d.p)
}

func (d *Binomial) Std() float64 {
	return math.Sqrt(d.Var())
}

func (d *Binomial) Skewness() float64 {
	return (1 - 2*d.p) / d.Std()
}

func (d *Binomial) Kurtosis() float64 {
	return (1 - 6*d.p*(1-d.p)) / d.Var()
}

func (d *Binomial) Rvs(size int, src rand.Source) []float64 {
	d.mustBeFrozen()
	b := distuv.Binomial{N: float64(d.n), P: d.p, Src: source(src)}
	return draw(size, b.Rand)
}

// NormalApprox returns a normal distribution approximation of
// binomial distribution d.
//
// Because the binomial distribution is discrete and the normal
// distribution is continuous, the caller must apply a continuity
// correction when using this approximation. Specifically, if b is the
// binomial distribution and n is the normal approximation, operations
// map as follows:
//
//	b.PDF(k) => n.CDF(k+0.5) - n.CDF(k-0.5)
//	b.CDF(k) => n.CDF(k+0.5)
func (d *Binomial) NormalApprox() *Normal {
	return mustNormal(d.Mean(), d.Std())
}

// FitMoments returns the binomial distribution whose mean and
// standard deviation best match mean and sigma. n is rounded to an
// integer >= 1 and p is kept inside (0, 1). When sigma² >= mean, no
// binomial matches; n is then chosen as mean + 2 sigma.
func (d *Binomial) FitMoments(mean, sigma float64) (Dist, error) {
	if err := checkMoments(d.name, mean, sigma); err != nil {
		return nil, err
	}
	if !(mean > 0) {
		return nil, invalid(d.name, "mean must be > 0, got %v", mean)
	}
	var n float64
	if p := 1 - sigma*sigma/mean; p > 0 {
		n = math.Round(mean / p)
	} else {
		n = math.Ceil(mean + 2*sigma)
	}
	n = math.Max(1, n)
	p := mathx.Clamp(mean/n, mathx.Eps, 1-mathx.Eps)
	return d.with(int(n), p), nil
}

func (d *Binomial) canonical() ([]float64, []link) {
	return []float64{d.p}, []link{linkLogit}
}

func (d *Binomial) withCanonical(x []float64) (Dist, error) {
	if !(x[0] >= 0 && x[0] <= 1) {
		return nil, invalid(d.name, "p must be in [0, 1], got %v", x[0])
	}
	return d.with(d.n, x[0]), nil
}

// seedMLE fixes n at the larger of the moment estimate and the
// largest observation; only p is left to the optimizer.
func (d *Binomial) seedMLE(sample []float64, mean, std float64) (Dist, error) {
	seed, err := d.FitMoments(mean, std)
	if err != nil {
		return nil, err
	}
	_, hi := sampleRange(sample)
	n := math.Max(float64(seed.(*Binomial).n), math.Ceil(hi))
	return d.with(int(n), mathx.Clamp(mean/n, mathx.Eps, 1-mathx.Eps)), nil
}
