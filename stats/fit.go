// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stats

import (
	"math"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/stat"
)

// A link maps a canonical parameter onto the whole real line so the
// optimizer can search without constraints.
type link int

const (
	linkIdentity link = iota // (-∞, ∞)
	linkLog                  // (0, ∞)
	linkLogit                // (0, 1)
)

func (l link) forward(x float64) float64 {
	switch l {
	case linkLog:
		return math.Log(x)
	case linkLogit:
		return math.Log(x / (1 - x))
	}
	return x
}

func (l link) inverse(y float64) float64 {
	switch l {
	case linkLog:
		return math.Exp(y)
	case linkLogit:
		return 1 / (1 + math.Exp(-y))
	}
	return y
}

// mleSettings returns the optimizer limits used by FitMLE.
var mleSettings = func() *optimize.Settings {
	return &optimize.Settings{
		MajorIterations: 1000,
		FuncEvaluations: 5000,
		Converger: &optimize.FunctionConverge{
			Absolute:   1e-10,
			Relative:   1e-10,
			Iterations: 50,
		},
	}
}

// mleTarget is implemented by distributions whose canonical
// parameters can be optimized by FitMLE.
type mleTarget interface {
	Fitter

	// canonical returns the optimized canonical parameters and
	// their links.
	canonical() ([]float64, []link)

	// withCanonical returns a frozen copy with the canonical
	// parameters replaced.
	withCanonical(x []float64) (Dist, error)
}

// mleSeeder overrides the default moment-matching starting point.
type mleSeeder interface {
	seedMLE(sample []float64, mean, std float64) (Dist, error)
}

// closedFormMLE is implemented by families whose maximum likelihood
// estimate needs no optimizer.
type closedFormMLE interface {
	fitMLE(sample []float64) (Dist, error)
}

// FitResult is the result of a maximum likelihood fit.
type FitResult struct {
	// Dist is the fitted distribution. If the optimizer did not
	// converge, this is built from the last iterate.
	Dist Dist

	// Converged is false if the optimizer stopped before meeting
	// its convergence criterion.
	Converged bool

	// Status is the optimizer's termination status.
	Status string

	// NegLogLik is Σ -LogPDF(x) over the sample at Dist.
	NegLogLik float64

	// Iterations and Evaluations count the optimizer's major
	// iterations and objective evaluations.
	Iterations, Evaluations int
}

// mlePenalty is the objective value for parameters at which the
// sample has zero likelihood.
const mlePenalty = 1e300

// FitMLE fits the parameters of d to sample by maximum likelihood. d
// need not be frozen; only its family and parameterization are used.
//
// The canonical parameters are seeded by FitMoments on the sample's
// mean and standard deviation and then refined by minimizing the
// negative log-likelihood with the Nelder-Mead method. If the
// optimizer stops without converging, the last iterate is returned
// with FitResult.Converged set to false and a warning is logged.
//
// FitMLE returns ErrSampleSize if sample has fewer than two values
// and ErrNotFittable if d's family does not support fitting.
func FitMLE(d Dist, sample []float64) (*FitResult, error) {
	if len(sample) < 2 {
		return nil, errors.Wrapf(ErrSampleSize, "FitMLE needs at least 2 values, got %d", len(sample))
	}
	target, ok := d.(mleTarget)
	if !ok {
		return nil, errors.Wrapf(ErrNotFittable, "%s", distName(d))
	}
	nll := func(d Dist) float64 {
		s := 0.0
		for _, x := range sample {
			s -= d.LogPDF(x)
		}
		return s
	}

	if cf, ok := d.(closedFormMLE); ok {
		fit, err := cf.fitMLE(sample)
		if err != nil {
			return nil, err
		}
		return &FitResult{Dist: fit, Converged: true, Status: "ClosedForm", NegLogLik: nll(fit)}, nil
	}

	mean, std := meanAndStd(sample)
	var seed Dist
	var err error
	if s, ok := d.(mleSeeder); ok {
		seed, err = s.seedMLE(sample, mean, std)
	} else {
		seed, err = target.FitMoments(mean, std)
	}
	if err != nil {
		return nil, errors.Wrap(err, "seeding maximum likelihood fit")
	}
	seedTarget := seed.(mleTarget)

	x0, links := seedTarget.canonical()
	y0 := make([]float64, len(x0))
	for i, x := range x0 {
		y0[i] = links[i].forward(x)
	}
	toCanonical := func(y []float64) []float64 {
		x := make([]float64, len(y))
		for i, yi := range y {
			x[i] = links[i].inverse(yi)
		}
		return x
	}

	problem := optimize.Problem{
		Func: func(y []float64) float64 {
			cand, err := seedTarget.withCanonical(toCanonical(y))
			if err != nil {
				return mlePenalty
			}
			f := nll(cand)
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return mlePenalty
			}
			return f
		},
	}
	result, optErr := optimize.Minimize(problem, y0, mleSettings(), &optimize.NelderMead{})

	res := &FitResult{Dist: seed, NegLogLik: nll(seed), Status: "NotTerminated"}
	if result != nil {
		res.Status = result.Status.String()
		res.Iterations = result.Stats.MajorIterations
		res.Evaluations = result.Stats.FuncEvaluations
		if fit, err := seedTarget.withCanonical(toCanonical(result.Location.X)); err == nil {
			if f := nll(fit); !(f > res.NegLogLik) {
				res.Dist, res.NegLogLik = fit, f
			}
		}
		res.Converged = optErr == nil && converged(result.Status)
	}
	if !res.Converged {
		logger.Warn("maximum likelihood fit did not converge",
			zap.String("dist", distName(d)),
			zap.String("status", res.Status),
			zap.Int("iterations", res.Iterations),
			zap.Int("evaluations", res.Evaluations),
			zap.Error(optErr))
	}
	return res, nil
}

func converged(s optimize.Status) bool {
	switch s {
	case optimize.Success, optimize.FunctionThreshold, optimize.FunctionConvergence,
		optimize.GradientThreshold, optimize.StepConvergence, optimize.MethodConverge:
		return true
	}
	return false
}

// checkMoments validates the arguments of FitMoments.
func checkMoments(family string, mean, sigma float64) error {
	if math.IsNaN(mean) || math.IsInf(mean, 0) {
		return invalid(family, "mean must be finite, got %v", mean)
	}
	if !(sigma > 0) || math.IsInf(sigma, 1) {
		return invalid(family, "sigma must be finite and > 0, got %v", sigma)
	}
	return nil
}

// meanAndStd returns the mean and the population (biased) standard
// deviation of xs.
func meanAndStd(xs []float64) (mean, std float64) {
	return stat.Mean(xs, nil), math.Sqrt(stat.PopVariance(xs, nil))
}

func sampleRange(xs []float64) (lo, hi float64) {
	return floats.Min(xs), floats.Max(xs)
}
