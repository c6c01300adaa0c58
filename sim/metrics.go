// Aggregates a completed trace into the statistics shown by metrics consumers:
// slot counts, throughput, offered load and efficiency against 1/e.

package sim

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat"

	"github.com/razbearr/slotted-aloha-simulator/sim/theory"
)

// AggregateStatistics is a pure fold over a SimulationTrace and its parameters.
// SuccessCount + CollisionCount + IdleCount == SlotCount always holds.
type AggregateStatistics struct {
	SuccessCount   int `json:"successful"`
	CollisionCount int `json:"collisions"`
	IdleCount      int `json:"idle"`
	SlotCount      int `json:"slots"`

	Throughput               float64 `json:"throughput"`        // SuccessCount / SlotCount
	OfferedLoad              float64 `json:"offered_load"`      // NodeCount × TransmitProbability
	TheoreticalMaxThroughput float64 `json:"theoretical_max"`   // 1/e
	EfficiencyPercent        float64 `json:"efficiency"`        // Throughput / (1/e) × 100
	MeanTransmitters         float64 `json:"mean_transmitters"` // average transmitters per slot
}

// Summarize folds trace into AggregateStatistics. It is deterministic and holds
// nothing that cannot be derived from the trace plus params.
func Summarize(params SimulationParameters, trace SimulationTrace) AggregateStatistics {
	stats := AggregateStatistics{
		SlotCount:                len(trace),
		OfferedLoad:              params.OfferedLoad(),
		TheoreticalMaxThroughput: theory.MaxThroughput,
	}
	for _, o := range trace {
		stats.count(o.Status)
	}
	stats.finalize()
	if len(trace) > 0 {
		stats.MeanTransmitters = stat.Mean(trace.TransmitterCounts(), nil)
	}
	return stats
}

func (s *AggregateStatistics) count(status SlotStatus) {
	switch status {
	case StatusIdle:
		s.IdleCount++
	case StatusSuccess:
		s.SuccessCount++
	case StatusCollision:
		s.CollisionCount++
	}
}

func (s *AggregateStatistics) finalize() {
	if s.SlotCount > 0 {
		s.Throughput = float64(s.SuccessCount) / float64(s.SlotCount)
	}
	// Efficiency is measured against the protocol's global optimum 1/e,
	// not against S(G) at this run's offered load.
	s.EfficiencyPercent = (s.Throughput / s.TheoreticalMaxThroughput) * 100
}

// SuccessRatePercent returns the share of Success slots in percent.
func (s AggregateStatistics) SuccessRatePercent() float64 {
	return s.ratePercent(s.SuccessCount)
}

// CollisionRatePercent returns the share of Collision slots in percent.
func (s AggregateStatistics) CollisionRatePercent() float64 {
	return s.ratePercent(s.CollisionCount)
}

// IdleRatePercent returns the share of Idle slots in percent.
func (s AggregateStatistics) IdleRatePercent() float64 {
	return s.ratePercent(s.IdleCount)
}

func (s AggregateStatistics) ratePercent(n int) float64 {
	if s.SlotCount == 0 {
		return 0
	}
	return float64(n) / float64(s.SlotCount) * 100
}

// Fields exposes the statistics as a flat name → value mapping for display.
func (s AggregateStatistics) Fields() map[string]float64 {
	return map[string]float64{
		"successful":        float64(s.SuccessCount),
		"collisions":        float64(s.CollisionCount),
		"idle":              float64(s.IdleCount),
		"slots":             float64(s.SlotCount),
		"throughput":        s.Throughput,
		"offered_load":      s.OfferedLoad,
		"theoretical_max":   s.TheoreticalMaxThroughput,
		"efficiency":        s.EfficiencyPercent,
		"mean_transmitters": s.MeanTransmitters,
		"success_rate":      s.SuccessRatePercent(),
		"collision_rate":    s.CollisionRatePercent(),
		"idle_rate":         s.IdleRatePercent(),
	}
}

// MetricsOutput is the JSON document written by SaveResults.
type MetricsOutput struct {
	RunID      string               `json:"run_id,omitempty"`
	Seed       int64                `json:"seed"`
	Parameters SimulationParameters `json:"parameters"`
	Statistics AggregateStatistics  `json:"statistics"`
	Rates      map[string]float64   `json:"rates"`
	// Theoretical S(G) at this run's offered load, for plotting the empirical point.
	ExpectedThroughput float64 `json:"expected_throughput"`
	// Finite-N success probability N·p·(1−p)^(N−1).
	ExactThroughput float64 `json:"exact_throughput"`
}

// NewMetricsOutput assembles the report for one run.
func NewMetricsOutput(runID string, seed int64, params SimulationParameters, stats AggregateStatistics) (*MetricsOutput, error) {
	expected, err := theory.ExpectedSuccessRate(params.NodeCount, params.TransmitProbability)
	if err != nil {
		return nil, fmt.Errorf("theoretical throughput: %w", err)
	}
	exact, err := theory.ExactThroughput(params.NodeCount, params.TransmitProbability)
	if err != nil {
		return nil, fmt.Errorf("exact throughput: %w", err)
	}
	return &MetricsOutput{
		RunID:      runID,
		Seed:       seed,
		Parameters: params,
		Statistics: stats,
		Rates: map[string]float64{
			"success_rate":   stats.SuccessRatePercent(),
			"collision_rate": stats.CollisionRatePercent(),
			"idle_rate":      stats.IdleRatePercent(),
		},
		ExpectedThroughput: expected,
		ExactThroughput:    exact,
	}, nil
}

// SaveResults prints the report as JSON to stdout and, if outputFilePath is
// non-empty, also writes it to that file.
func (m *MetricsOutput) SaveResults(outputFilePath string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling metrics: %w", err)
	}
	fmt.Println("=== Simulation Metrics ===")
	fmt.Println(string(data))

	if outputFilePath == "" {
		return nil
	}
	if err := os.WriteFile(outputFilePath, data, 0644); err != nil {
		return fmt.Errorf("writing metrics to %s: %w", outputFilePath, err)
	}
	logrus.Debugf("Metrics written to %s", outputFilePath)
	return nil
}
