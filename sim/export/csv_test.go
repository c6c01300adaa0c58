package export

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/razbearr/slotted-aloha-simulator/sim"
)

func threeSlotTrace() sim.SimulationTrace {
	return sim.SimulationTrace{
		{SlotIndex: 0, TransmitterCount: 0, Status: sim.StatusIdle},
		{SlotIndex: 1, TransmitterCount: 1, Status: sim.StatusSuccess},
		{SlotIndex: 2, TransmitterCount: 3, Status: sim.StatusCollision},
	}
}

func TestWriteCSV_ThreeSlots_ExactOutput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, threeSlotTrace()))

	want := "Slot,Transmissions,Status\n" +
		"0,0,Idle\n" +
		"1,1,Success\n" +
		"2,3,Collision\n"
	assert.Equal(t, want, buf.String())
}

func TestCSV_RoundTrip_ReproducesTrace(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, threeSlotTrace()))

	got, err := ReadCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, threeSlotTrace(), got)
}

func TestWriteCSV_EmptyTrace_HeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))
	assert.Equal(t, "Slot,Transmissions,Status\n", buf.String())

	got, err := ReadCSV(&buf)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestReadCSV_RejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"empty", "", "empty input"},
		{"wrong header order", "Transmissions,Slot,Status\n", "header column 0"},
		{"lowercase header", "slot,transmissions,status\n", "header column 0"},
		{"missing column", "Slot,Transmissions,Status\n0,0\n", "row 1"},
		{"non-numeric slot", "Slot,Transmissions,Status\nx,0,Idle\n", "parsing Slot"},
		{"gap in slots", "Slot,Transmissions,Status\n0,0,Idle\n2,0,Idle\n", "out of order"},
		{"negative transmissions", "Slot,Transmissions,Status\n0,-1,Idle\n", "non-negative"},
		{"unknown status", "Slot,Transmissions,Status\n0,0,Busy\n", "unknown slot status"},
		{"inconsistent status", "Slot,Transmissions,Status\n0,2,Success\n", "inconsistent"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestExportFile_LoadFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace.csv")
	require.NoError(t, ExportFile(path, threeSlotTrace()))

	got, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, threeSlotTrace(), got)
}

func TestLoadFile_MissingFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "aloha_simulation_N10_p0.3.csv", FileName(sim.NewSimulationParameters(10, 0.3, 1000)))
	assert.Equal(t, "aloha_simulation_N2_p1.csv", FileName(sim.NewSimulationParameters(2, 1, 100)))
}

func TestExport_SimulatedTrace_RoundTrip(t *testing.T) {
	// GIVEN a simulated trace
	params := sim.NewSimulationParameters(6, 0.25, 200)
	trace, stats, err := sim.Run(params, sim.NewPartitionedRNG(sim.NewSimulationKey(11)).ForSubsystem(sim.SubsystemSlots))
	require.NoError(t, err)

	// WHEN exported and re-read
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, trace))
	back, err := ReadCSV(&buf)
	require.NoError(t, err)

	// THEN both the trace and its fold survive
	assert.Equal(t, trace, back)
	assert.Equal(t, stats, sim.Summarize(params, back))
}
