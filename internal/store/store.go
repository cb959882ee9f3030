// Package store persists benchmark runs so a later run can be compared
// against an earlier one. Runs are saved as JSON documents carrying the
// ordered benchmark names, their raw sample sequences, system metadata, and
// a blake3 checksum of the benchmark payload that is verified on load.
package store

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/klauspost/cpuid/v2"
	"github.com/zeebo/blake3"

	"tempo/internal/bench"
	e "tempo/pkg/errors"
	"tempo/pkg/version"
)

// SystemInfo records the machine a run was measured on. Comparing runs from
// different machines is legal but usually meaningless, so the metadata is
// kept with the samples.
type SystemInfo struct {
	OS        string `json:"os"`
	Arch      string `json:"arch"`
	CPUModel  string `json:"cpu_model,omitempty"`
	CPUs      int    `json:"cpus"`
	GoVersion string `json:"go_version"`
}

// SavedBenchmark is one benchmark's persisted form: its name, the
// iterations-per-sample count, and the raw sample sequence in seconds.
type SavedBenchmark struct {
	Name       string    `json:"name"`
	Iterations int       `json:"iterations"`
	Samples    []float64 `json:"samples"`
}

// Document is the on-disk layout of a saved run. Benchmarks keep their
// insertion order; Checksum covers the benchmark payload only, so editing
// samples by hand is detected while metadata stays inspectable.
type Document struct {
	Version    string           `json:"version"`
	Timestamp  time.Time        `json:"timestamp"`
	System     SystemInfo       `json:"system"`
	Benchmarks []SavedBenchmark `json:"benchmarks"`
	Checksum   string           `json:"checksum"`
}

// NewDocument captures a suite and the current system metadata.
func NewDocument(suite *bench.Suite) (*Document, error) {
	benchmarks := suite.Benchmarks()
	saved := make([]SavedBenchmark, 0, len(benchmarks))
	for _, b := range benchmarks {
		saved = append(saved, SavedBenchmark{
			Name:       b.Name,
			Iterations: b.Result.Iterations(),
			Samples:    b.Result.Samples(),
		})
	}

	sum, err := checksum(saved)
	if err != nil {
		return nil, err
	}

	return &Document{
		Version:    version.Version,
		Timestamp:  time.Now(),
		System:     currentSystem(),
		Benchmarks: saved,
		Checksum:   sum,
	}, nil
}

// Save writes a suite's run to path, creating parent directories as needed.
func Save(path string, suite *bench.Suite) error {
	doc, err := NewDocument(suite)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode run: %w", err)
	}
	return nil
}

// Load reads a saved run, verifies its checksum, and reconstructs the suite
// with its original insertion order.
func Load(path string) (*bench.Suite, error) {
	doc, err := LoadDocument(path)
	if err != nil {
		return nil, err
	}
	return doc.Suite()
}

// LoadDocument reads and verifies a saved run without rebuilding the suite.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, e.New(e.ErrFileNotFound, fmt.Sprintf("no saved run at %s", path))
		}
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, e.Wrap(err, e.ErrStoreCorrupted, fmt.Sprintf("cannot parse %s", path))
	}

	sum, err := checksum(doc.Benchmarks)
	if err != nil {
		return nil, err
	}
	if sum != doc.Checksum {
		return nil, e.New(e.ErrStoreCorrupted,
			fmt.Sprintf("checksum mismatch in %s", path)).
			WithContext("expected", doc.Checksum).
			WithContext("actual", sum)
	}

	return &doc, nil
}

// Suite rebuilds a bench.Suite from the document, preserving order.
func (d *Document) Suite() (*bench.Suite, error) {
	suite := bench.NewSuite(bench.DefaultConfig())
	for _, sb := range d.Benchmarks {
		if len(sb.Samples) == 0 {
			return nil, e.New(e.ErrStoreCorrupted,
				fmt.Sprintf("benchmark %q has no samples", sb.Name))
		}
		if err := suite.Add(sb.Name, bench.NewResult(sb.Samples, sb.Iterations)); err != nil {
			return nil, err
		}
	}
	return suite, nil
}

// checksum hashes the canonical JSON encoding of the benchmark payload.
func checksum(benchmarks []SavedBenchmark) (string, error) {
	payload, err := json.Marshal(benchmarks)
	if err != nil {
		return "", fmt.Errorf("failed to encode benchmarks for checksum: %w", err)
	}
	sum := blake3.Sum256(payload)
	return hex.EncodeToString(sum[:]), nil
}

func currentSystem() SystemInfo {
	return SystemInfo{
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		CPUModel:  cpuid.CPU.BrandName,
		CPUs:      runtime.NumCPU(),
		GoVersion: runtime.Version(),
	}
}
