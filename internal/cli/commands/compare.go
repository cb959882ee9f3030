package commands

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"tempo/internal/bench"
	"tempo/internal/report"
	"tempo/internal/store"
	e "tempo/pkg/errors"
)

// Compare loads two saved runs and reports which benchmarks got faster or
// slower beyond measurement noise. The first argument is the new run, the
// second the old baseline.
func Compare(args []string) error {
	flags := pflag.NewFlagSet("compare", pflag.ContinueOnError)
	filter := flags.String("filter", "", "glob restricting benchmark names")
	format := flags.String("format", "table", "output format: table or markdown")
	flags.Usage = func() {
		fmt.Println("Usage: tempo compare [flags] NEW OLD")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 2 {
		flags.Usage()
		return fmt.Errorf("compare needs exactly two saved runs, got %d", flags.NArg())
	}

	current, err := store.Load(flags.Arg(0))
	if err != nil {
		return err
	}
	previous, err := store.Load(flags.Arg(1))
	if err != nil {
		return err
	}

	if *filter != "" {
		current, err = filtered(current, *filter)
		if err != nil {
			return err
		}
	}

	records := bench.Compare(current, previous)

	switch *format {
	case "table":
		fmt.Print(report.Comparison(records))
		return nil
	case "markdown", "md":
		return store.ExportComparison(os.Stdout, records)
	default:
		return e.New(e.ErrUnknownFormat, fmt.Sprintf("unsupported comparison format: %s", *format))
	}
}

// filtered rebuilds a suite containing only the benchmarks matching pattern,
// preserving their relative order.
func filtered(suite *bench.Suite, pattern string) (*bench.Suite, error) {
	matched, err := suite.Filter(pattern)
	if err != nil {
		return nil, err
	}
	out := bench.NewSuite(suite.Config())
	for _, b := range matched {
		if err := out.Add(b.Name, b.Result); err != nil {
			return nil, err
		}
	}
	return out, nil
}
