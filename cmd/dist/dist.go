// dist describes, samples and fits parametric distributions.
//
// A distribution is given either as a YAML file (--config) or with
// --family and --param flags; flags override the file. For example:
//
//	dist describe --family beta --param mu=0.5,sigma=0.1
//	dist sample --family wald --param mu=1,lam=3 -n 1000 --seed 1
//	dist fit --family normal < data.txt
package main

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/aclements/go-paramdist/internal/config"
	"github.com/aclements/go-paramdist/stats"
	"github.com/cockroachdb/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// distFlags are the flags that select a distribution.
type distFlags struct {
	config   string
	family   string
	params   map[string]string
	truncate string
	censor   string
}

func (f *distFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.config, "config", "", "YAML file describing the distribution")
	fs.StringVar(&f.family, "family", "", "distribution family ("+strings.Join(stats.Families(), ", ")+")")
	fs.StringToStringVar(&f.params, "param", nil, "parameters as name=value pairs, e.g. mu=0,sigma=1")
	fs.StringVar(&f.truncate, "truncate", "", "truncate to lower:upper; either side may be empty")
	fs.StringVar(&f.censor, "censor", "", "censor at lower:upper; either side may be empty")
}

// spec merges the config file, if any, with the command-line flags.
func (f *distFlags) spec() (*config.Spec, error) {
	s := &config.Spec{}
	if f.config != "" {
		var err error
		if s, err = config.Load(f.config); err != nil {
			return nil, err
		}
	}
	if f.family != "" {
		s.Family = f.family
	}
	names := make([]string, 0, len(f.params))
	for name := range f.params {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := s.SetParam(name, f.params[name]); err != nil {
			return nil, err
		}
	}
	var err error
	if f.truncate != "" {
		if s.Truncate, err = parseBounds(f.truncate); err != nil {
			return nil, err
		}
		s.Censor = nil
	}
	if f.censor != "" {
		if s.Censor, err = parseBounds(f.censor); err != nil {
			return nil, err
		}
		if f.truncate == "" {
			s.Truncate = nil
		}
	}
	return s, s.Validate()
}

// build returns the selected distribution.
func (f *distFlags) build() (stats.Dist, error) {
	s, err := f.spec()
	if err != nil {
		return nil, err
	}
	return s.Build()
}

// parseBounds parses "lower:upper", where either side may be empty.
func parseBounds(s string) (*config.Bounds, error) {
	lo, hi, ok := strings.Cut(s, ":")
	if !ok {
		return nil, errors.Newf("bounds %q: want lower:upper", s)
	}
	parse := func(v string) (*float64, error) {
		if v == "" {
			return nil, nil
		}
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "bounds %q", s)
		}
		return &x, nil
	}
	var b config.Bounds
	var err error
	if b.Lower, err = parse(lo); err != nil {
		return nil, err
	}
	if b.Upper, err = parse(hi); err != nil {
		return nil, err
	}
	return &b, nil
}

// readInput reads newline-separated numbers. Blank lines are
// skipped.
func readInput(r io.Reader) ([]float64, error) {
	var xs []float64
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		l := strings.TrimSpace(scanner.Text())
		if l == "" {
			continue
		}
		value, err := strconv.ParseFloat(l, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		xs = append(xs, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading input")
	}
	return xs, nil
}

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	if header != nil {
		table.SetHeader(header)
	}
	return table
}

func fmtFloat(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return fmt.Sprint(v)
	}
	return fmt.Sprintf("%.6g", v)
}

var logger = zap.NewNop()

func newRootCommand() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:           "dist",
		Short:         "Describe, sample and fit parametric distributions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !verbose {
				return nil
			}
			l, err := zap.NewDevelopment()
			if err != nil {
				return errors.Wrap(err, "creating logger")
			}
			logger = l
			stats.SetLogger(l)
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log fitting diagnostics to stderr")
	root.AddCommand(makeDescribeCommand(), makeSampleCommand(), makeFitCommand())
	return root
}

func main() {
	err := newRootCommand().Execute()
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, "dist:", err)
		os.Exit(1)
	}
}
