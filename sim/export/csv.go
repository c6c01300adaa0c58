// Package export serializes a SimulationTrace to the tabular download format:
// header Slot,Transmissions,Status and one row per slot in slot order.
// The column names and order are a compatibility contract.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/razbearr/slotted-aloha-simulator/sim"
)

// Columns is the literal CSV header.
var Columns = []string{"Slot", "Transmissions", "Status"}

// WriteCSV writes the header and one row per outcome to w.
func WriteCSV(w io.Writer, trace sim.SimulationTrace) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(Columns); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, o := range trace {
		row := []string{
			strconv.Itoa(o.SlotIndex),
			strconv.Itoa(o.TransmitterCount),
			o.Status.String(),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing CSV row %d: %w", o.SlotIndex, err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// ReadCSV parses a trace written by WriteCSV. Parsing is strict: the header
// must match Columns exactly, slot indices must start at 0 and be contiguous,
// and each status must agree with its transmission count.
func ReadCSV(r io.Reader) (sim.SimulationTrace, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(Columns)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("reading CSV header: empty input")
	}
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}
	for i, name := range Columns {
		if header[i] != name {
			return nil, fmt.Errorf("CSV header column %d is %q, expected %q", i, header[i], name)
		}
	}

	trace := sim.SimulationTrace{}
	for row := 1; ; row++ {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV row %d: %w", row, err)
		}
		o, err := parseRow(fields, len(trace))
		if err != nil {
			return nil, fmt.Errorf("CSV row %d: %w", row, err)
		}
		trace = append(trace, o)
	}
	return trace, nil
}

func parseRow(fields []string, wantIndex int) (sim.SlotOutcome, error) {
	index, err := strconv.Atoi(fields[0])
	if err != nil {
		return sim.SlotOutcome{}, fmt.Errorf("parsing Slot %q: %w", fields[0], err)
	}
	if index != wantIndex {
		return sim.SlotOutcome{}, fmt.Errorf("slot index %d out of order, expected %d", index, wantIndex)
	}
	transmissions, err := strconv.Atoi(fields[1])
	if err != nil {
		return sim.SlotOutcome{}, fmt.Errorf("parsing Transmissions %q: %w", fields[1], err)
	}
	if transmissions < 0 {
		return sim.SlotOutcome{}, fmt.Errorf("transmissions must be non-negative, got %d", transmissions)
	}
	status, err := sim.ParseSlotStatus(fields[2])
	if err != nil {
		return sim.SlotOutcome{}, err
	}
	if want := sim.ClassifySlot(transmissions); status != want {
		return sim.SlotOutcome{}, fmt.Errorf("status %s inconsistent with %d transmissions, expected %s", status, transmissions, want)
	}
	return sim.SlotOutcome{SlotIndex: index, TransmitterCount: transmissions, Status: status}, nil
}

// ExportFile writes trace as CSV to path, replacing any existing file.
func ExportFile(path string, trace sim.SimulationTrace) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating trace file: %w", err)
	}
	if err := WriteCSV(file, trace); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing trace file: %w", err)
	}
	logrus.Debugf("Wrote %d slots to '%s'", len(trace), path)
	return nil
}

// LoadFile reads a CSV trace from path.
func LoadFile(path string) (sim.SimulationTrace, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening trace file: %w", err)
	}
	defer func() { _ = file.Close() }()
	return ReadCSV(file)
}

// FileName returns the download name used for a run's trace,
// e.g. aloha_simulation_N10_p0.3.csv.
func FileName(params sim.SimulationParameters) string {
	return fmt.Sprintf("aloha_simulation_N%d_p%s.csv",
		params.NodeCount, strconv.FormatFloat(params.TransmitProbability, 'f', -1, 64))
}
