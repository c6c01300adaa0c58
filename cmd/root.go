package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/razbearr/slotted-aloha-simulator/sim"
	"github.com/razbearr/slotted-aloha-simulator/sim/export"
)

var (
	// CLI flags for a single run
	seed                int64   // Seed for the slot random stream
	logLevel            string  // Log verbosity level
	nodeCount           int     // Number of contending nodes
	transmitProbability float64 // Per-node, per-slot transmission probability
	slotCount           int     // Number of slots to simulate
	maxSlots            int     // Refuse runs with more slots than this (0 = no ceiling)

	// Presets
	presetName       string // Named parameter set in defaults.yaml
	defaultsFilePath string // Path to defaults.yaml

	// Outputs
	csvOutputPath string // Write the trace CSV to this file
	csvOutputDir  string // Write the trace CSV into this directory under its download name
	resultsPath   string // Also write the metrics JSON to this file
)

const defaultMaxSlots = 1_000_000

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "aloha-sim",
	Short: "Slotted ALOHA medium-access simulator",
	Long:  "Simulates Slotted ALOHA random access slot by slot and compares the empirical throughput with S(G) = G·e^(−G).",
}

// setLogLevel applies --log; an unknown level is fatal.
func setLogLevel() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// applyPreset overlays preset values onto params for every flag the user did not set.
func applyPreset(flags *pflag.FlagSet, params, preset sim.SimulationParameters) sim.SimulationParameters {
	if !flags.Changed("nodes") {
		params.NodeCount = preset.NodeCount
	}
	if !flags.Changed("prob") {
		params.TransmitProbability = preset.TransmitProbability
	}
	if !flags.Changed("slots") {
		params.SlotCount = preset.SlotCount
	}
	return params
}

// executeRun checks the slot ceiling, runs one simulation on the seed's slot
// stream and assembles its report.
func executeRun(params sim.SimulationParameters, seed int64, ceiling int) (sim.SimulationTrace, *sim.MetricsOutput, error) {
	if ceiling > 0 && params.SlotCount > ceiling {
		return nil, nil, fmt.Errorf("slot_count %d exceeds the configured ceiling of %d (see --max-slots)", params.SlotCount, ceiling)
	}
	src := sim.NewPartitionedRNG(sim.NewSimulationKey(seed)).ForSubsystem(sim.SubsystemSlots)
	trace, stats, err := sim.Run(params, src)
	if err != nil {
		return nil, nil, err
	}
	out, err := sim.NewMetricsOutput(uuid.NewString(), seed, params, stats)
	if err != nil {
		return nil, nil, err
	}
	return trace, out, nil
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a Slotted ALOHA simulation",
	Run: func(cmd *cobra.Command, args []string) {
		setLogLevel()

		params := sim.NewSimulationParameters(nodeCount, transmitProbability, slotCount)
		ceiling := maxSlots
		if presetName != "" {
			cfg, err := loadDefaultsConfig(defaultsFilePath)
			if err != nil {
				logrus.Fatalf("%v", err)
			}
			preset, err := cfg.Preset(presetName)
			if err != nil {
				logrus.Fatalf("%v", err)
			}
			logrus.Infof("Using preset %q", presetName)
			params = applyPreset(cmd.Flags(), params, preset)
			if !cmd.Flags().Changed("max-slots") && cfg.MaxSlots > 0 {
				ceiling = cfg.MaxSlots
			}
		}

		logrus.Infof("Starting simulation with %d nodes, p=%.4f, %d slots, G=%.3f, seed=%d",
			params.NodeCount, params.TransmitProbability, params.SlotCount, params.OfferedLoad(), seed)

		startTime := time.Now()
		trace, out, err := executeRun(params, seed, ceiling)
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		logrus.Infof("Simulated %d slots in %s", len(trace), time.Since(startTime))

		if err := out.SaveResults(resultsPath); err != nil {
			logrus.Fatalf("Saving results failed: %v", err)
		}

		csvPath := csvOutputPath
		if csvPath == "" && csvOutputDir != "" {
			csvPath = filepath.Join(csvOutputDir, export.FileName(params))
		}
		if csvPath != "" {
			if err := export.ExportFile(csvPath, trace); err != nil {
				logrus.Fatalf("Exporting trace failed: %v", err)
			}
			logrus.Infof("Trace written to %s", csvPath)
		}

		logrus.Info("Simulation complete.")
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for the slot random stream")
	runCmd.Flags().IntVar(&nodeCount, "nodes", 10, "Number of nodes competing for the channel")
	runCmd.Flags().Float64Var(&transmitProbability, "prob", 0.3, "Probability that a node transmits in a given slot")
	runCmd.Flags().IntVar(&slotCount, "slots", 1000, "Number of time slots to simulate")
	runCmd.Flags().IntVar(&maxSlots, "max-slots", defaultMaxSlots, "Refuse runs with more slots than this (0 = no ceiling)")

	runCmd.Flags().StringVar(&presetName, "preset", "", "Named parameter preset from defaults.yaml; explicit flags override it")
	runCmd.Flags().StringVar(&defaultsFilePath, "defaults-filepath", "defaults.yaml", "Path to defaults.yaml")

	runCmd.Flags().StringVar(&csvOutputPath, "csv", "", "Write the slot trace as CSV to this file")
	runCmd.Flags().StringVar(&csvOutputDir, "csv-dir", "", "Write the slot trace CSV into this directory as aloha_simulation_N{n}_p{p}.csv")
	runCmd.Flags().StringVar(&resultsPath, "results-path", "", "Also write the metrics JSON to this file")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
