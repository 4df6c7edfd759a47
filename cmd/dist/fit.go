package main

import (
	"fmt"
	"io"

	"github.com/aclements/go-paramdist/stats"
	"github.com/cockroachdb/errors"
	mstats "github.com/montanaflynn/stats"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func makeFitCommand() *cobra.Command {
	var (
		flags   distFlags
		method  string
		density bool
	)
	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Fit a distribution to newline-separated numbers on stdin",
		Long: `Fit a distribution to newline-separated numbers read from stdin.
Parameters given with --param or in the config file select the
parameterization; their values are replaced by the fit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := flags.build()
			if err != nil {
				return err
			}
			xs, err := readInput(cmd.InOrStdin())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fitted, err := fit(w, d, xs, method)
			if err != nil || !density {
				return err
			}
			fmt.Fprintln(w)
			return printDensity(w, fitted, xs)
		},
	}
	flags.register(cmd.Flags())
	cmd.Flags().StringVar(&method, "method", "mle", "fitting method: mle or moments")
	cmd.Flags().BoolVar(&density, "density", false, "compare the fitted PDF with a kernel density estimate of the input")
	return cmd
}

// fit fits d to xs by method, prints the result to w and returns
// the fitted distribution.
func fit(w io.Writer, d stats.Dist, xs []float64, method string) (stats.Dist, error) {
	data := mstats.Float64Data(xs)
	mean, err := data.Mean()
	if err != nil {
		return nil, errors.Wrap(err, "empty input")
	}
	std, err := data.StandardDeviationPopulation()
	if err != nil {
		return nil, err
	}
	logger.Debug("fitting", zap.String("dist", fmt.Sprint(d)), zap.String("method", method),
		zap.Int("n", len(xs)), zap.Float64("mean", mean), zap.Float64("std", std))

	var fitted stats.Dist
	switch method {
	case "mle":
		res, err := stats.FitMLE(d, xs)
		if err != nil {
			return nil, err
		}
		fitted = res.Dist
		fmt.Fprintf(w, "status %s  converged %v  -log L %s  iterations %d\n",
			res.Status, res.Converged, fmtFloat(res.NegLogLik), res.Iterations)
	case "moments":
		f, ok := d.(stats.Fitter)
		if !ok {
			return nil, errors.Wrapf(stats.ErrNotFittable, "%v", d)
		}
		if fitted, err = f.FitMoments(mean, std); err != nil {
			return nil, err
		}
	default:
		return nil, errors.Newf("unknown method %q: want mle or moments", method)
	}
	fmt.Fprintf(w, "N %d  mean %s  std dev %s\n\n", len(xs), fmtFloat(mean), fmtFloat(std))
	describe(w, fitted)
	return fitted, nil
}

// densityPoints is the number of points printed by printDensity.
const densityPoints = 21

// printDensity prints the PDF of d beside a kernel density estimate
// of xs, over the range where the estimate has most of its mass. The
// estimate is reflected at the finite ends of d's support.
func printDensity(w io.Writer, d stats.Dist, xs []float64) error {
	if d.Kind() != stats.Continuous {
		return errors.Newf("--density needs a continuous distribution, %v is %v", d, d.Kind())
	}
	lo, hi := d.Support()
	kde, err := stats.KDE{BoundaryMin: lo, BoundaryMax: hi}.From(xs)
	if err != nil {
		return err
	}
	low, high := kde.Bounds()
	logger.Debug("density", zap.Float64("bandwidth", kde.Bandwidth()),
		zap.Float64("low", low), zap.Float64("high", high))

	table := newTable(w, "x", "sample KDE", "fitted PDF")
	for i := 0; i < densityPoints; i++ {
		x := low + (high-low)*float64(i)/(densityPoints-1)
		table.Append([]string{fmtFloat(x), fmtFloat(kde.PDF(x)), fmtFloat(d.PDF(x))})
	}
	table.Render()
	return nil
}
