package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"tempo/internal/bench"
	"tempo/internal/report"
	e "tempo/pkg/errors"
)

// Exporter writes a saved run in some output format.
type Exporter interface {
	Export(w io.Writer, doc *Document) error
}

// ExporterFor maps a format name to its exporter.
func ExporterFor(format string) (Exporter, error) {
	switch strings.ToLower(format) {
	case "csv":
		return &CSVExporter{}, nil
	case "markdown", "md":
		return &MarkdownExporter{IncludeSystemInfo: true}, nil
	default:
		return nil, e.New(e.ErrUnknownFormat, fmt.Sprintf("unsupported export format: %s", format))
	}
}

// CSVExporter writes one row per benchmark with summary statistics.
type CSVExporter struct{}

// Export writes the run as CSV.
func (ce *CSVExporter) Export(w io.Writer, doc *Document) error {
	cw := csv.NewWriter(w)

	headers := []string{"name", "samples", "iterations", "mean_s", "variance_s2", "stddev_s"}
	if err := cw.Write(headers); err != nil {
		return fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for i := range doc.Benchmarks {
		sb := &doc.Benchmarks[i]
		result := bench.NewResult(sb.Samples, sb.Iterations)
		row := []string{
			sb.Name,
			strconv.Itoa(result.Len()),
			strconv.Itoa(sb.Iterations),
			strconv.FormatFloat(result.Mean(), 'g', -1, 64),
			strconv.FormatFloat(result.Variance(), 'g', -1, 64),
			strconv.FormatFloat(result.Stddev(), 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// MarkdownExporter writes a human-readable Markdown report.
type MarkdownExporter struct {
	IncludeSystemInfo bool
}

// Export writes the run as Markdown.
func (me *MarkdownExporter) Export(w io.Writer, doc *Document) error {
	fmt.Fprintf(w, "# Benchmark Results\n\n")
	fmt.Fprintf(w, "Recorded at: %s\n\n", doc.Timestamp.Format(time.RFC3339))

	if me.IncludeSystemInfo {
		fmt.Fprintf(w, "## System\n\n")
		fmt.Fprintf(w, "- **OS**: %s/%s\n", doc.System.OS, doc.System.Arch)
		if doc.System.CPUModel != "" {
			fmt.Fprintf(w, "- **CPU**: %s\n", doc.System.CPUModel)
		}
		fmt.Fprintf(w, "- **CPUs**: %d\n", doc.System.CPUs)
		fmt.Fprintf(w, "- **Go Version**: %s\n\n", doc.System.GoVersion)
	}

	fmt.Fprintf(w, "## Results\n\n")
	fmt.Fprintf(w, "| Benchmark | Mean | Stddev | Samples | Iterations |\n")
	fmt.Fprintf(w, "|-----------|------|--------|---------|------------|\n")

	for i := range doc.Benchmarks {
		sb := &doc.Benchmarks[i]
		result := bench.NewResult(sb.Samples, sb.Iterations)
		fmt.Fprintf(w, "| %s | %s | %s | %d | %d |\n",
			sb.Name,
			strings.TrimSpace(report.Duration(result.Mean())),
			strings.TrimSpace(report.Duration(result.Stddev())),
			result.Len(),
			sb.Iterations,
		)
	}
	return nil
}

// ExportComparison writes comparison records as a Markdown table.
func ExportComparison(w io.Writer, records []bench.Record) error {
	fmt.Fprintf(w, "# Benchmark Comparison\n\n")
	fmt.Fprintf(w, "| Benchmark | Old | New | Change | Verdict |\n")
	fmt.Fprintf(w, "|-----------|-----|-----|--------|----------|\n")

	for _, rec := range records {
		oldMean, change := "-", "-"
		if rec.Old != nil {
			oldMean = strings.TrimSpace(report.Duration(rec.Old.Mean()))
			change = fmt.Sprintf("%+.1f%%", rec.PercentDiff)
		}
		fmt.Fprintf(w, "| %s | %s | %s | %s | %s |\n",
			rec.Name,
			oldMean,
			strings.TrimSpace(report.Duration(rec.New.Mean())),
			change,
			report.Verdict(rec),
		)
	}
	return nil
}
