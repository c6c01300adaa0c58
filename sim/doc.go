// Package sim provides the Slotted ALOHA simulation and statistics engine.
//
// # Reading Guide
//
//   - config.go: SimulationParameters and InvalidParameterError
//   - slot.go: SlotStatus, SlotOutcome and SimulationTrace
//   - simulator.go: Run, the per-slot Bernoulli trial loop
//   - metrics.go: Summarize, the pure fold from trace to AggregateStatistics
//   - rng.go: RandomSource and the seed-partitioned RNG used by the CLI
//   - sweep.go: parallel runs over a set of transmission probabilities
//
// # Sub-packages
//
//   - sim/theory/: closed-form throughput S(G) = G·e^(−G) and related constants
//   - sim/export/: CSV codec for traces (Slot,Transmissions,Status)
//
// The engine performs no I/O and owns no randomness: callers pass a
// RandomSource to Run, so a fixed draw sequence reproduces a run exactly.
package sim
