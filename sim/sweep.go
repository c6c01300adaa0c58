package sim

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/razbearr/slotted-aloha-simulator/sim/theory"
)

// SweepPoint is the result of one run in a probability sweep.
type SweepPoint struct {
	Parameters         SimulationParameters `json:"parameters"`
	Statistics         AggregateStatistics  `json:"statistics"`
	ExpectedThroughput float64              `json:"expected_throughput"` // S(G) at this point's offered load
}

// Sweep runs one simulation per entry of probabilities with the given node and
// slot counts. Runs execute concurrently, each on its own stream derived from
// key (SubsystemSweepPoint(i)), so results are reproducible and returned in
// input order. Traces are discarded once summarized.
//
// Every parameter set is validated before any run starts. ctx is only
// checked between runs; a started run always completes.
func Sweep(ctx context.Context, nodeCount, slotCount int, probabilities []float64, key SimulationKey) ([]SweepPoint, error) {
	params := make([]SimulationParameters, len(probabilities))
	for i, p := range probabilities {
		params[i] = NewSimulationParameters(nodeCount, p, slotCount)
		if err := params[i].Validate(); err != nil {
			return nil, fmt.Errorf("sweep point %d: %w", i, err)
		}
	}

	// PartitionedRNG is not thread-safe: derive all streams up front.
	rng := NewPartitionedRNG(key)
	sources := make([]RandomSource, len(params))
	for i := range params {
		sources[i] = rng.ForSubsystem(SubsystemSweepPoint(i))
	}

	points := make([]SweepPoint, len(params))
	g, ctx := errgroup.WithContext(ctx)
	for i := range params {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			_, stats, err := Run(params[i], sources[i])
			if err != nil {
				return fmt.Errorf("sweep point %d: %w", i, err)
			}
			expected, err := theory.Throughput(stats.OfferedLoad)
			if err != nil {
				return fmt.Errorf("sweep point %d: %w", i, err)
			}
			points[i] = SweepPoint{Parameters: params[i], Statistics: stats, ExpectedThroughput: expected}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return points, nil
}
