package main

import (
	"fmt"
	"io"

	"github.com/aclements/go-paramdist/stats"
	"github.com/cockroachdb/errors"
	mstats "github.com/montanaflynn/stats"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

func makeSampleCommand() *cobra.Command {
	var (
		flags   distFlags
		n       int
		seed    uint64
		summary bool
	)
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Draw random variates from a distribution",
		Long: `Draw random variates from a distribution and print one per line.
With --summary, compare the sample with the distribution instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if n < 1 {
				return errors.Newf("--count must be positive, got %d", n)
			}
			d, err := flags.build()
			if err != nil {
				return err
			}
			if err := stats.Frozen(d); err != nil {
				return err
			}
			var src rand.Source
			if cmd.Flags().Changed("seed") {
				src = rand.NewSource(seed)
			}
			logger.Debug("sampling", zap.String("dist", fmt.Sprint(d)), zap.Int("n", n))
			xs := d.Rvs(n, src)
			w := cmd.OutOrStdout()
			if summary {
				return summarize(w, d, xs)
			}
			for _, x := range xs {
				fmt.Fprintln(w, fmtFloat(x))
			}
			return nil
		},
	}
	flags.register(cmd.Flags())
	cmd.Flags().IntVarP(&n, "count", "n", 10, "number of variates")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (default: seeded from the clock)")
	cmd.Flags().BoolVar(&summary, "summary", false, "print a sample summary instead of the variates")
	return cmd
}

// summaryQuantiles are the quantiles compared by summarize.
var summaryQuantiles = []float64{0.01, 0.05, 0.25, 0.5, 0.75, 0.95, 0.99}

// summarize compares the moments and quantiles of sample xs with
// those of d. The sample median is given with its 95% confidence
// interval.
func summarize(w io.Writer, d stats.Dist, xs []float64) error {
	data := mstats.Float64Data(xs)
	mean, err := data.Mean()
	if err != nil {
		return err
	}
	std, err := data.StandardDeviationPopulation()
	if err != nil {
		return err
	}
	minX, err := data.Min()
	if err != nil {
		return err
	}
	maxX, err := data.Max()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "N %d  min %s  max %s\n\n", len(xs), fmtFloat(minX), fmtFloat(maxX))
	table := newTable(w, "", "sample", "dist")
	table.Append([]string{"mean", fmtFloat(mean), fmtFloat(d.Mean())})
	table.Append([]string{"std dev", fmtFloat(std), fmtFloat(d.Std())})
	for _, q := range summaryQuantiles {
		p, err := data.Percentile(q * 100)
		if err != nil {
			return err
		}
		table.Append([]string{fmt.Sprintf("%g%%ile", q*100), fmtFloat(p), fmtFloat(d.PPF(q))})
	}
	table.Render()

	ci := stats.QuantileCI(len(xs), 0.5, 0.95)
	lo, hi := ci.FromSample(xs)
	fmt.Fprintf(w, "\nmedian %.4g%% CI [%s, %s]; dist median %s\n",
		ci.Confidence*100, fmtFloat(lo), fmtFloat(hi), fmtFloat(d.Median()))
	return nil
}
