package sim

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSimulationParameters_FieldEquivalence(t *testing.T) {
	got := NewSimulationParameters(10, 0.3, 1000)
	want := SimulationParameters{NodeCount: 10, TransmitProbability: 0.3, SlotCount: 1000}
	assert.Equal(t, want, got)
}

func TestSimulationParameters_Validate(t *testing.T) {
	tests := []struct {
		name   string
		params SimulationParameters
		field  string // empty = valid
	}{
		{"minimal valid", NewSimulationParameters(1, 0, 1), ""},
		{"probability one", NewSimulationParameters(50, 1, 5000), ""},
		{"zero nodes", NewSimulationParameters(0, 0.5, 10), "node_count"},
		{"negative nodes", NewSimulationParameters(-3, 0.5, 10), "node_count"},
		{"negative probability", NewSimulationParameters(2, -0.5, 10), "transmit_probability"},
		{"probability above one", NewSimulationParameters(2, 1.5, 10), "transmit_probability"},
		{"NaN probability", NewSimulationParameters(2, math.NaN(), 10), "transmit_probability"},
		{"zero slots", NewSimulationParameters(2, 0.5, 0), "slot_count"},
		{"first offending field wins", NewSimulationParameters(0, 2, 0), "node_count"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var ipe *InvalidParameterError
			require.True(t, errors.As(err, &ipe))
			assert.Equal(t, tt.field, ipe.Field)
			assert.ErrorIs(t, err, ErrInvalidParameter)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestSimulationParameters_OfferedLoad(t *testing.T) {
	assert.Equal(t, 3.0, NewSimulationParameters(10, 0.3, 1).OfferedLoad())
	assert.Equal(t, 0.0, NewSimulationParameters(10, 0, 1).OfferedLoad())
	assert.Equal(t, 50.0, NewSimulationParameters(50, 1, 1).OfferedLoad())
}
