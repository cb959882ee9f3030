package bench

import (
	"fmt"

	"github.com/gobwas/glob"

	e "tempo/pkg/errors"
)

// Suite is an ordered collection of named benchmark results. Insertion
// order is preserved and never re-sorted; report ordering must reflect
// registration order, not name order. A name-to-index map backs lookups.
type Suite struct {
	config     Config
	benchmarks []Benchmark
	index      map[string]int
}

// NewSuite creates an empty suite. Zero-valued config fields take defaults.
func NewSuite(config Config) *Suite {
	return &Suite{
		config: config.withDefaults(),
		index:  make(map[string]int),
	}
}

// Config returns the suite's effective configuration.
func (s *Suite) Config() Config { return s.config }

// Run calibrates op, collects the configured number of samples, and stores
// the result under name. An error from op aborts the run and nothing is
// stored.
func (s *Suite) Run(name string, op Operation) (*Result, error) {
	if _, dup := s.index[name]; dup {
		return nil, e.New(e.ErrDuplicateBenchmark,
			fmt.Sprintf("benchmark %q already registered", name))
	}

	iterations, err := NewCalibrator(s.config).Calibrate(op)
	if err != nil {
		return nil, fmt.Errorf("benchmark %q: %w", name, err)
	}

	result, err := NewSampler(s.config).Sample(op, iterations)
	if err != nil {
		return nil, fmt.Errorf("benchmark %q: %w", name, err)
	}

	s.append(name, result)
	return result, nil
}

// Add stores an already-collected result under name, preserving insertion
// order. It is used when reconstructing a suite from a saved run.
func (s *Suite) Add(name string, result *Result) error {
	if _, dup := s.index[name]; dup {
		return e.New(e.ErrDuplicateBenchmark,
			fmt.Sprintf("benchmark %q already registered", name))
	}
	s.append(name, result)
	return nil
}

func (s *Suite) append(name string, result *Result) {
	s.index[name] = len(s.benchmarks)
	s.benchmarks = append(s.benchmarks, Benchmark{Name: name, Result: result})
}

// Len returns the number of benchmarks in the suite.
func (s *Suite) Len() int { return len(s.benchmarks) }

// Benchmarks returns the benchmarks in insertion order.
func (s *Suite) Benchmarks() []Benchmark {
	out := make([]Benchmark, len(s.benchmarks))
	copy(out, s.benchmarks)
	return out
}

// Lookup returns the result stored under name.
func (s *Suite) Lookup(name string) (*Result, bool) {
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return s.benchmarks[i].Result, true
}

// Filter returns the benchmarks whose names match the glob pattern, in
// insertion order.
func (s *Suite) Filter(pattern string) ([]Benchmark, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid filter pattern %q: %w", pattern, err)
	}

	var matched []Benchmark
	for _, b := range s.benchmarks {
		if g.Match(b.Name) {
			matched = append(matched, b)
		}
	}
	return matched, nil
}
