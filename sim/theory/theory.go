// Package theory provides the closed-form Slotted ALOHA throughput model
// S(G) = G·e^(−G), used as a reference overlay against simulated runs.
// This package has no dependencies on sim/ — it is pure math.
package theory

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	// OptimalLoad is the offered load G that maximizes S(G).
	OptimalLoad = 1.0
	// MaxThroughput is S(OptimalLoad) = 1/e.
	MaxThroughput = 1 / math.E
)

// CurvePoint is one (load, throughput) sample of the theoretical curve.
type CurvePoint struct {
	Load       float64 `json:"load"`
	Throughput float64 `json:"throughput"`
}

// Throughput returns S(G) = G·e^(−G). Negative and non-finite loads are rejected.
func Throughput(load float64) (float64, error) {
	if err := validateLoad(load); err != nil {
		return 0, err
	}
	return load * math.Exp(-load), nil
}

// ThroughputCurve evaluates S(G) for every load, preserving order.
func ThroughputCurve(loads []float64) ([]float64, error) {
	out := make([]float64, len(loads))
	for i, g := range loads {
		s, err := Throughput(g)
		if err != nil {
			return nil, fmt.Errorf("load[%d]: %w", i, err)
		}
		out[i] = s
	}
	return out, nil
}

// CurvePoints pairs each load with its theoretical throughput.
func CurvePoints(loads []float64) ([]CurvePoint, error) {
	values, err := ThroughputCurve(loads)
	if err != nil {
		return nil, err
	}
	points := make([]CurvePoint, len(loads))
	for i := range loads {
		points[i] = CurvePoint{Load: loads[i], Throughput: values[i]}
	}
	return points, nil
}

// SampleLoads returns n evenly spaced loads over [0, maxLoad], endpoints included.
func SampleLoads(maxLoad float64, n int) ([]float64, error) {
	if n < 2 {
		return nil, fmt.Errorf("sample count must be at least 2, got %d", n)
	}
	if math.IsNaN(maxLoad) || math.IsInf(maxLoad, 0) || maxLoad <= 0 {
		return nil, fmt.Errorf("max load must be a finite positive number, got %f", maxLoad)
	}
	return floats.Span(make([]float64, n), 0, maxLoad), nil
}

// ExpectedSuccessRate returns S(N·p), the curve value at a run's offered load.
// It is a plotting convenience and does not replace simulated statistics.
func ExpectedSuccessRate(nodeCount int, transmitProbability float64) (float64, error) {
	if nodeCount < 0 {
		return 0, fmt.Errorf("node count must be non-negative, got %d", nodeCount)
	}
	return Throughput(float64(nodeCount) * transmitProbability)
}

// OptimalProbability returns p = 1/N, the per-node probability that puts G at OptimalLoad.
func OptimalProbability(nodeCount int) (float64, error) {
	if nodeCount < 1 {
		return 0, fmt.Errorf("node count must be at least 1, got %d", nodeCount)
	}
	return 1 / float64(nodeCount), nil
}

// ExactThroughput returns N·p·(1−p)^(N−1), the probability that exactly one of
// N nodes transmits in a slot. S(G) is its limit as N grows with N·p = G fixed.
func ExactThroughput(nodeCount int, transmitProbability float64) (float64, error) {
	if nodeCount < 1 {
		return 0, fmt.Errorf("node count must be at least 1, got %d", nodeCount)
	}
	p := transmitProbability
	if math.IsNaN(p) || p < 0 || p > 1 {
		return 0, fmt.Errorf("transmit probability must be in [0, 1], got %f", p)
	}
	return float64(nodeCount) * p * math.Pow(1-p, float64(nodeCount-1)), nil
}

func validateLoad(load float64) error {
	if math.IsNaN(load) || math.IsInf(load, 0) {
		return fmt.Errorf("load must be a finite number, got %f", load)
	}
	if load < 0 {
		return fmt.Errorf("load must be non-negative, got %f", load)
	}
	return nil
}
