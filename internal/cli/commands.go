package cli

import (
	"tempo/internal/cli/commands"
	"tempo/internal/config"
)

type runCmd struct {
	cfg *config.Config
}

func (runCmd) Name() string        { return "run" }
func (runCmd) Description() string { return "Benchmark commands and optionally save or compare the run" }
func (c runCmd) Run(args []string) error {
	return commands.NewRunCommand(c.cfg).Run(args)
}

type compareCmd struct{}

func (compareCmd) Name() string        { return "compare" }
func (compareCmd) Description() string { return "Compare two saved runs" }
func (compareCmd) Run(args []string) error {
	return commands.Compare(args)
}

type reportCmd struct{}

func (reportCmd) Name() string        { return "report" }
func (reportCmd) Description() string { return "Render a saved run as table, markdown, or csv" }
func (reportCmd) Run(args []string) error {
	return commands.Report(args)
}

// Command factory functions
func NewRunCommand(cfg *config.Config) Command { return runCmd{cfg: cfg} }
func NewCompareCommand() Command               { return compareCmd{} }
func NewReportCommand() Command                { return reportCmd{} }
