package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"tempo/internal/bench"
	"tempo/internal/config"
	"tempo/internal/report"
	"tempo/internal/store"
	e "tempo/pkg/errors"
	tempoexec "tempo/pkg/exec"
	"tempo/pkg/logger"
	"tempo/pkg/terminal"
)

// RunCommand benchmarks one or more shell commands: each command is
// calibrated, sampled, summarized, and optionally saved or compared against
// a previously saved baseline.
type RunCommand struct {
	cfg *config.Config
	bar *terminal.ProgressBar
}

// NewRunCommand creates a run command with the user's config defaults.
func NewRunCommand(cfg *config.Config) *RunCommand {
	return &RunCommand{cfg: cfg}
}

type benchmarkSpec struct {
	name string
	op   bench.Operation
}

// Run executes the run command.
func (rc *RunCommand) Run(args []string) error {
	flags := pflag.NewFlagSet("run", pflag.ContinueOnError)
	name := flags.String("name", "", "benchmark label (defaults to the command line)")
	cmds := flags.StringArray("cmd", nil, "additional benchmark as name=command")
	samples := flags.Int("samples", 0, "samples to collect per benchmark")
	minTime := flags.Duration("min-time", 0, "minimum cumulative duration per sample")
	out := flags.String("out", "", "save the run to this file")
	against := flags.String("against", "", "compare against a previously saved run")
	progress := flags.Bool("progress", true, "show a progress bar per benchmark")
	flags.Usage = func() {
		fmt.Println("Usage: tempo run [flags] [--] command [args...]")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return err
	}

	specs, err := benchmarkSpecs(*name, *cmds, flags.Args())
	if err != nil {
		return err
	}

	benchCfg := rc.cfg.BenchConfig()
	if *samples > 0 {
		benchCfg.SampleCount = *samples
	}
	if *minTime > 0 {
		benchCfg.MinSampleTime = *minTime
	}
	if *progress {
		benchCfg.Progress = func(done, _ int) {
			if rc.bar != nil {
				rc.bar.Update(done)
			}
		}
	}

	suite := bench.NewSuite(benchCfg)
	for _, spec := range specs {
		logger.Verbosef("calibrating %q (target %v per sample)", spec.name, benchCfg.MinSampleTime)
		if *progress {
			rc.bar = terminal.NewProgressBar(benchCfg.SampleCount, spec.name)
		}

		result, err := suite.Run(spec.name, spec.op)
		if err != nil {
			return e.Wrap(err, e.ErrOperationFailed, fmt.Sprintf("benchmark %q failed", spec.name))
		}

		if rc.bar != nil {
			rc.bar.Finish()
			rc.bar = nil
		}
		logger.Verbosef("%s: %d iterations/sample, mean %s", spec.name,
			result.Iterations(), strings.TrimSpace(report.Duration(result.Mean())))
	}

	fmt.Println()
	fmt.Print(report.Results(suite.Benchmarks()))

	if *against != "" {
		old, err := store.Load(*against)
		if err != nil {
			return err
		}
		records := bench.Compare(suite, old)
		fmt.Printf("\nCompared against %s:\n\n", *against)
		fmt.Print(report.Comparison(records))
	}

	if *out != "" {
		if err := store.Save(*out, suite); err != nil {
			return err
		}
		fmt.Printf("\n%s Run saved to %s\n", terminal.IconSave, *out)
	}
	return nil
}

// benchmarkSpecs builds the benchmark list from the trailing command and any
// --cmd name=command flags.
func benchmarkSpecs(name string, cmds, argv []string) ([]benchmarkSpec, error) {
	var specs []benchmarkSpec
	if len(argv) > 0 {
		label := name
		if label == "" {
			label = strings.Join(argv, " ")
		}
		specs = append(specs, benchmarkSpec{name: label, op: commandOperation(argv)})
	}
	for _, entry := range cmds {
		nm, cmdline, ok := strings.Cut(entry, "=")
		if !ok || strings.TrimSpace(cmdline) == "" || strings.TrimSpace(nm) == "" {
			return nil, fmt.Errorf("invalid --cmd %q: want name=command", entry)
		}
		specs = append(specs, benchmarkSpec{name: nm, op: commandOperation(strings.Fields(cmdline))})
	}
	if len(specs) == 0 {
		return nil, fmt.Errorf("nothing to benchmark: give a command or --cmd name=command")
	}
	return specs, nil
}

// commandOperation wraps a command line as a measurable operation. A fresh
// exec.Cmd is built per invocation; a Cmd cannot be started twice.
func commandOperation(argv []string) bench.Operation {
	return func() error {
		return tempoexec.Silent(argv[0], argv[1:]...).Run()
	}
}
