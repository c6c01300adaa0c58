package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/razbearr/slotted-aloha-simulator/sim"
	"github.com/razbearr/slotted-aloha-simulator/sim/theory"
)

var (
	sweepNodes         int
	sweepSlots         int
	sweepSeed          int64
	sweepProbabilities []float64
	sweepIncludeBest   bool
)

// sweepOutput is the JSON document printed by `aloha-sim sweep`.
type sweepOutput struct {
	Seed   int64            `json:"seed"`
	Points []sim.SweepPoint `json:"points"`
}

func writeSweepJSON(w io.Writer, out sweepOutput) error {
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling sweep: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run one simulation per transmission probability, in parallel",
	Run: func(cmd *cobra.Command, args []string) {
		setLogLevel()

		probs := append([]float64(nil), sweepProbabilities...)
		if sweepIncludeBest {
			best, err := theory.OptimalProbability(sweepNodes)
			if err != nil {
				logrus.Fatalf("%v", err)
			}
			probs = append(probs, best)
		}
		if sweepSlots > defaultMaxSlots {
			logrus.Fatalf("slot_count %d exceeds the ceiling of %d", sweepSlots, defaultMaxSlots)
		}

		logrus.Infof("Sweeping %d probabilities with %d nodes, %d slots, seed=%d", len(probs), sweepNodes, sweepSlots, sweepSeed)
		points, err := sim.Sweep(context.Background(), sweepNodes, sweepSlots, probs, sim.NewSimulationKey(sweepSeed))
		if err != nil {
			logrus.Fatalf("Sweep failed: %v", err)
		}
		if err := writeSweepJSON(os.Stdout, sweepOutput{Seed: sweepSeed, Points: points}); err != nil {
			logrus.Fatalf("%v", err)
		}
	},
}

func init() {
	sweepCmd.Flags().IntVar(&sweepNodes, "nodes", 10, "Number of nodes competing for the channel")
	sweepCmd.Flags().IntVar(&sweepSlots, "slots", 1000, "Number of time slots per run")
	sweepCmd.Flags().Int64Var(&sweepSeed, "seed", 42, "Master seed; each point gets its own derived stream")
	sweepCmd.Flags().Float64SliceVar(&sweepProbabilities, "probs", []float64{0.01, 0.02, 0.05, 0.1, 0.2, 0.3, 0.5, 1.0}, "Comma-separated transmission probabilities")
	sweepCmd.Flags().BoolVar(&sweepIncludeBest, "include-optimal", false, "Also run p = 1/nodes, the throughput-maximizing probability")

	rootCmd.AddCommand(sweepCmd)
}
