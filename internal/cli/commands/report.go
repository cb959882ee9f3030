package commands

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"tempo/internal/report"
	"tempo/internal/store"
)

// Report renders a saved run to stdout as a table, markdown, or csv.
func Report(args []string) error {
	flags := pflag.NewFlagSet("report", pflag.ContinueOnError)
	format := flags.String("format", "table", "output format: table, markdown, or csv")
	flags.Usage = func() {
		fmt.Println("Usage: tempo report [flags] FILE")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return err
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return fmt.Errorf("report needs exactly one saved run, got %d", flags.NArg())
	}

	doc, err := store.LoadDocument(flags.Arg(0))
	if err != nil {
		return err
	}

	if *format == "table" {
		suite, err := doc.Suite()
		if err != nil {
			return err
		}
		fmt.Print(report.Results(suite.Benchmarks()))
		return nil
	}

	exporter, err := store.ExporterFor(*format)
	if err != nil {
		return err
	}
	return exporter.Export(os.Stdout, doc)
}
