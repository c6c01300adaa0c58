// Package testutil provides shared test infrastructure for the simulator.
// It consolidates golden dataset types, scripted random sources and
// assertion helpers used across sim/ and its sub-package tests.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase is a hand-computed run: parameters, the exact uniform draws
// fed to the simulator, and the trace and metrics those draws must produce.
type GoldenTestCase struct {
	Name                string        `json:"name"`
	NodeCount           int           `json:"node_count"`
	TransmitProbability float64       `json:"transmit_probability"`
	SlotCount           int           `json:"slot_count"`
	Draws               []float64     `json:"draws"`
	Transmissions       []int         `json:"transmissions"`
	Statuses            []string      `json:"statuses"`
	Metrics             GoldenMetrics `json:"metrics"`
}

// GoldenMetrics represents the expected statistics of a golden test case.
type GoldenMetrics struct {
	// Exact match metrics (integers)
	Successful int `json:"successful"`
	Collisions int `json:"collisions"`
	Idle       int `json:"idle"`

	// Derived floating-point metrics
	Throughput  float64 `json:"throughput"`
	OfferedLoad float64 `json:"offered_load"`
	Efficiency  float64 `json:"efficiency"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from sim/internal/testutil/ to repo root testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}

	return &dataset
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
