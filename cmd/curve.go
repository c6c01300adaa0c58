package cmd

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/razbearr/slotted-aloha-simulator/sim/theory"
)

var (
	curveMaxLoad      float64
	curveSamples      int
	curveDefaultsPath string
)

// curveColumns is the header of the theoretical curve CSV.
var curveColumns = []string{"G", "S"}

// writeCurveCSV writes (load, throughput) pairs with full float precision.
func writeCurveCSV(w io.Writer, points []theory.CurvePoint) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(curveColumns); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, p := range points {
		row := []string{
			strconv.FormatFloat(p.Load, 'f', -1, 64),
			strconv.FormatFloat(p.Throughput, 'f', -1, 64),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing CSV row: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

var curveCmd = &cobra.Command{
	Use:   "curve",
	Short: "Print the theoretical throughput curve S(G) = G·e^(−G) as CSV",
	Run: func(cmd *cobra.Command, args []string) {
		setLogLevel()

		if curveDefaultsPath != "" {
			cfg, err := loadDefaultsConfig(curveDefaultsPath)
			if err != nil {
				logrus.Fatalf("%v", err)
			}
			if !cmd.Flags().Changed("g-max") && cfg.Curve.MaxLoad > 0 {
				curveMaxLoad = cfg.Curve.MaxLoad
			}
			if !cmd.Flags().Changed("samples") && cfg.Curve.Samples > 0 {
				curveSamples = cfg.Curve.Samples
			}
		}

		loads, err := theory.SampleLoads(curveMaxLoad, curveSamples)
		if err != nil {
			logrus.Fatalf("Invalid curve sampling: %v", err)
		}
		points, err := theory.CurvePoints(loads)
		if err != nil {
			logrus.Fatalf("Computing curve failed: %v", err)
		}
		if err := writeCurveCSV(os.Stdout, points); err != nil {
			logrus.Fatalf("%v", err)
		}
		logrus.Infof("Maximum throughput S=%.4f at G=%.0f", theory.MaxThroughput, theory.OptimalLoad)
	},
}

func init() {
	curveCmd.Flags().Float64Var(&curveMaxLoad, "g-max", 5, "Largest offered load G to sample")
	curveCmd.Flags().IntVar(&curveSamples, "samples", 100, "Number of evenly spaced samples over [0, g-max]")
	curveCmd.Flags().StringVar(&curveDefaultsPath, "defaults-filepath", "", "Optional defaults.yaml supplying curve sampling")

	rootCmd.AddCommand(curveCmd)
}
