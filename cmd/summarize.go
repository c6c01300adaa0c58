package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/razbearr/slotted-aloha-simulator/sim"
	"github.com/razbearr/slotted-aloha-simulator/sim/export"
)

var (
	summarizeCSVPath string
	summarizeNodes   int
	summarizeProb    float64
)

// summarizeTrace re-folds an exported trace. The CSV carries no node count or
// probability, so those come from the caller; slot count is the trace length.
func summarizeTrace(path string, nodes int, prob float64) (*sim.MetricsOutput, error) {
	trace, err := export.LoadFile(path)
	if err != nil {
		return nil, err
	}
	if len(trace) == 0 {
		return nil, fmt.Errorf("trace %s has no slots", path)
	}
	params := sim.NewSimulationParameters(nodes, prob, len(trace))
	if err := params.Validate(); err != nil {
		return nil, err
	}
	for _, o := range trace {
		if o.TransmitterCount > nodes {
			return nil, fmt.Errorf("slot %d has %d transmissions but only %d nodes", o.SlotIndex, o.TransmitterCount, nodes)
		}
	}
	return sim.NewMetricsOutput("", 0, params, sim.Summarize(params, trace))
}

var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Recompute statistics from an exported trace CSV",
	Run: func(cmd *cobra.Command, args []string) {
		setLogLevel()

		out, err := summarizeTrace(summarizeCSVPath, summarizeNodes, summarizeProb)
		if err != nil {
			logrus.Fatalf("Summarize failed: %v", err)
		}
		if err := out.SaveResults(""); err != nil {
			logrus.Fatalf("%v", err)
		}
	},
}

func init() {
	summarizeCmd.Flags().StringVar(&summarizeCSVPath, "csv", "", "Trace CSV written by `run --csv`")
	summarizeCmd.Flags().IntVar(&summarizeNodes, "nodes", 10, "Node count the trace was simulated with")
	summarizeCmd.Flags().Float64Var(&summarizeProb, "prob", 0.3, "Transmission probability the trace was simulated with")
	_ = summarizeCmd.MarkFlagRequired("csv")

	rootCmd.AddCommand(summarizeCmd)
}
