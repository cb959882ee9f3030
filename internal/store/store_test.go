package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tempo/internal/bench"
	e "tempo/pkg/errors"
)

func testSuite(t *testing.T) *bench.Suite {
	t.Helper()
	suite := bench.NewSuite(bench.DefaultConfig())
	require.NoError(t, suite.Add("fib(20)", bench.NewResult([]float64{0.0011, 0.0012, 0.0010}, 500)))
	require.NoError(t, suite.Add("sort", bench.NewResult([]float64{0.5, 0.5, 0.5}, 1)))
	require.NoError(t, suite.Add("alloc", bench.NewResult([]float64{2e-9, 3e-9, 2.5e-9}, 100000)))
	return suite
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	original := testSuite(t)

	require.NoError(t, Save(path, original))

	loaded, err := Load(path)
	require.NoError(t, err)

	want := original.Benchmarks()
	got := loaded.Benchmarks()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].Name, got[i].Name, "insertion order must survive the round trip")
		assert.Equal(t, want[i].Result.Samples(), got[i].Result.Samples())
		assert.Equal(t, want[i].Result.Iterations(), got[i].Result.Iterations())
	}
}

// A suite compared against its own round trip must report NoChange for
// every benchmark: identical samples mean identical statistics.
func TestRoundTripComparesAsNoChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	original := testSuite(t)

	require.NoError(t, Save(path, original))
	loaded, err := Load(path)
	require.NoError(t, err)

	for _, rec := range bench.Compare(loaded, original) {
		assert.Equal(t, bench.DirectionNoChange, rec.Direction, "benchmark %q", rec.Name)
		assert.False(t, rec.Significant, "benchmark %q", rec.Name)
		assert.Zero(t, rec.PercentDiff, "benchmark %q", rec.Name)
	}
}

func TestSaveCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "run.json")
	require.NoError(t, Save(path, testSuite(t)))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)

	var tempoErr *e.TempoError
	require.ErrorAs(t, err, &tempoErr)
	assert.Equal(t, e.ErrFileNotFound, tempoErr.Code)
}

func TestLoadDetectsTamperedSamples(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	require.NoError(t, Save(path, testSuite(t)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc Document
	require.NoError(t, json.Unmarshal(data, &doc))

	doc.Benchmarks[0].Samples[0] *= 2 // checksum no longer matches
	tampered, err := json.Marshal(&doc)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, tampered, 0o644))

	_, err = Load(path)
	var tempoErr *e.TempoError
	require.ErrorAs(t, err, &tempoErr)
	assert.Equal(t, e.ErrStoreCorrupted, tempoErr.Code)
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := Load(path)
	var tempoErr *e.TempoError
	require.ErrorAs(t, err, &tempoErr)
	assert.Equal(t, e.ErrStoreCorrupted, tempoErr.Code)
}

func TestDocumentSuiteRejectsEmptySamples(t *testing.T) {
	doc := &Document{
		Benchmarks: []SavedBenchmark{{Name: "hollow", Iterations: 1, Samples: nil}},
	}

	_, err := doc.Suite()
	var tempoErr *e.TempoError
	require.ErrorAs(t, err, &tempoErr)
	assert.Equal(t, e.ErrStoreCorrupted, tempoErr.Code)
}

func TestNewDocumentCapturesMetadata(t *testing.T) {
	doc, err := NewDocument(testSuite(t))
	require.NoError(t, err)

	assert.NotEmpty(t, doc.Version)
	assert.False(t, doc.Timestamp.IsZero())
	assert.NotEmpty(t, doc.System.OS)
	assert.NotEmpty(t, doc.System.GoVersion)
	assert.Positive(t, doc.System.CPUs)
	assert.Len(t, doc.Checksum, 64, "blake3-256 hex digest")

	sum, err := checksum(doc.Benchmarks)
	require.NoError(t, err)
	assert.Equal(t, sum, doc.Checksum)
}
