package main

import (
	"fmt"
	"io"

	"github.com/aclements/go-paramdist/stats"
	"github.com/spf13/cobra"
)

// describeQuantiles are the quantiles printed by describe.
var describeQuantiles = []float64{0.01, 0.05, 0.25, 0.5, 0.75, 0.95, 0.99}

func makeDescribeCommand() *cobra.Command {
	var flags distFlags
	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Print the parameters, moments and quantiles of a distribution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := flags.build()
			if err != nil {
				return err
			}
			if err := stats.Frozen(d); err != nil {
				return err
			}
			describe(cmd.OutOrStdout(), d)
			return nil
		},
	}
	flags.register(cmd.Flags())
	return cmd
}

func describe(w io.Writer, d stats.Dist) {
	fmt.Fprintln(w, d)
	fmt.Fprintln(w)

	params := newTable(w, "param", "value", "domain")
	supp := d.ParamsSupport()
	for i, name := range d.ParamNames() {
		dom := supp[i]
		params.Append([]string{name, fmtFloat(d.Params()[i]), fmt.Sprintf("[%s, %s]", fmtFloat(dom.Lo), fmtFloat(dom.Hi))})
	}
	params.Render()
	fmt.Fprintln(w)

	lo, hi := d.Support()
	props := newTable(w, "property", "value")
	props.AppendBulk([][]string{
		{"kind", d.Kind().String()},
		{"support", fmt.Sprintf("[%s, %s]", fmtFloat(lo), fmtFloat(hi))},
		{"mean", fmtFloat(d.Mean())},
		{"median", fmtFloat(d.Median())},
		{"mode", fmtFloat(d.Mode())},
		{"std dev", fmtFloat(d.Std())},
		{"variance", fmtFloat(d.Var())},
		{"skewness", fmtFloat(d.Skewness())},
		{"excess kurtosis", fmtFloat(d.Kurtosis())},
		{"entropy", fmtFloat(d.Entropy())},
	})
	props.Render()
	fmt.Fprintln(w)

	quant := newTable(w, "quantile", "x", "pdf")
	for _, q := range describeQuantiles {
		x := d.PPF(q)
		quant.Append([]string{fmt.Sprintf("%g%%", q*100), fmtFloat(x), fmtFloat(d.PDF(x))})
	}
	quant.Render()
}
