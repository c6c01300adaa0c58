// sim/simulator.go
package sim

import "errors"

// ErrNilRandomSource is returned by Run when no random source is supplied.
var ErrNilRandomSource = errors.New("random source must not be nil")

// Run simulates params.SlotCount slots of Slotted ALOHA.
//
// In every slot each of params.NodeCount nodes independently attempts
// transmission when src.Float64() < params.TransmitProbability. Draws are
// taken node by node within a slot and slot by slot, exactly
// NodeCount × SlotCount of them, with no state carried between slots.
// Given the same parameters and the same draw sequence the result is
// bit-identical.
//
// Invalid parameters fail before any draw is taken and no trace is returned.
func Run(params SimulationParameters, src RandomSource) (SimulationTrace, AggregateStatistics, error) {
	if err := params.Validate(); err != nil {
		return nil, AggregateStatistics{}, err
	}
	if src == nil {
		return nil, AggregateStatistics{}, ErrNilRandomSource
	}

	trace := make(SimulationTrace, 0, params.SlotCount)
	for slot := 0; slot < params.SlotCount; slot++ {
		transmitters := 0
		for node := 0; node < params.NodeCount; node++ {
			if src.Float64() < params.TransmitProbability {
				transmitters++
			}
		}
		trace = append(trace, NewSlotOutcome(slot, transmitters))
	}

	return trace, Summarize(params, trace), nil
}
