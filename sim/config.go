package sim

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParameter is matched by every parameter validation failure.
var ErrInvalidParameter = errors.New("invalid parameter")

// InvalidParameterError reports which simulation parameter was rejected and why.
type InvalidParameterError struct {
	Field  string  // flag/YAML name of the offending field
	Value  float64 // rejected value
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s=%v: %s", e.Field, e.Value, e.Reason)
}

// Is lets errors.Is(err, ErrInvalidParameter) match any InvalidParameterError.
func (e *InvalidParameterError) Is(target error) bool {
	return target == ErrInvalidParameter
}

// SimulationParameters groups the inputs of a single Slotted ALOHA run.
// Values are never clamped; out-of-range values are rejected by Validate.
type SimulationParameters struct {
	NodeCount           int     `json:"node_count" yaml:"node_count"`                     // contending nodes (>= 1)
	TransmitProbability float64 `json:"transmit_probability" yaml:"transmit_probability"` // per-node, per-slot attempt probability in [0, 1]
	SlotCount           int     `json:"slot_count" yaml:"slot_count"`                     // slots to simulate (>= 1)
}

// NewSimulationParameters builds a SimulationParameters value.
func NewSimulationParameters(nodeCount int, transmitProbability float64, slotCount int) SimulationParameters {
	return SimulationParameters{
		NodeCount:           nodeCount,
		TransmitProbability: transmitProbability,
		SlotCount:           slotCount,
	}
}

// Validate checks the preconditions of Run. The first offending field is reported.
func (p SimulationParameters) Validate() error {
	if p.NodeCount < 1 {
		return &InvalidParameterError{Field: "node_count", Value: float64(p.NodeCount), Reason: "must be at least 1"}
	}
	if math.IsNaN(p.TransmitProbability) || p.TransmitProbability < 0 || p.TransmitProbability > 1 {
		return &InvalidParameterError{Field: "transmit_probability", Value: p.TransmitProbability, Reason: "must be in [0, 1]"}
	}
	if p.SlotCount < 1 {
		return &InvalidParameterError{Field: "slot_count", Value: float64(p.SlotCount), Reason: "must be at least 1"}
	}
	return nil
}

// OfferedLoad returns G = N × p.
func (p SimulationParameters) OfferedLoad() float64 {
	return float64(p.NodeCount) * p.TransmitProbability
}
