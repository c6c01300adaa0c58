package sim

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifySlot(t *testing.T) {
	tests := []struct {
		transmitters int
		want         SlotStatus
	}{
		{0, StatusIdle},
		{1, StatusSuccess},
		{2, StatusCollision},
		{50, StatusCollision},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifySlot(tt.transmitters), "transmitters=%d", tt.transmitters)
	}
}

func TestSlotStatus_StringAndParse(t *testing.T) {
	for _, s := range []SlotStatus{StatusIdle, StatusSuccess, StatusCollision} {
		parsed, err := ParseSlotStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}
	assert.Equal(t, "Idle", StatusIdle.String())
	assert.Equal(t, "Success", StatusSuccess.String())
	assert.Equal(t, "Collision", StatusCollision.String())
	assert.Equal(t, "SlotStatus(9)", SlotStatus(9).String())
}

func TestParseSlotStatus_RejectsUnknownAndWrongCase(t *testing.T) {
	for _, name := range []string{"", "idle", "COLLISION", "Busy"} {
		_, err := ParseSlotStatus(name)
		assert.Error(t, err, "name=%q", name)
	}
}

func TestSlotOutcome_JSONUsesStatusName(t *testing.T) {
	data, err := json.Marshal(NewSlotOutcome(2, 3))
	require.NoError(t, err)
	assert.JSONEq(t, `{"slot":2,"transmissions":3,"status":"Collision"}`, string(data))

	var back SlotOutcome
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, NewSlotOutcome(2, 3), back)
}

func TestSimulationTrace_Head(t *testing.T) {
	trace := SimulationTrace{NewSlotOutcome(0, 0), NewSlotOutcome(1, 1), NewSlotOutcome(2, 2)}
	assert.Len(t, trace.Head(2), 2)
	assert.Len(t, trace.Head(100), 3)
	assert.Empty(t, trace.Head(-1))
}
