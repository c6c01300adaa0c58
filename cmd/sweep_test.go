package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/razbearr/slotted-aloha-simulator/sim"
)

func TestWriteSweepJSON_RoundTrip(t *testing.T) {
	points, err := sim.Sweep(context.Background(), 5, 100, []float64{0.1, 0.2}, sim.NewSimulationKey(3))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeSweepJSON(&buf, sweepOutput{Seed: 3, Points: points}))

	var back sweepOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &back))
	assert.Equal(t, int64(3), back.Seed)
	require.Len(t, back.Points, 2)
	assert.Equal(t, points[1].Statistics.SuccessCount, back.Points[1].Statistics.SuccessCount)
	assert.Equal(t, 0.2, back.Points[1].Parameters.TransmitProbability)
}
