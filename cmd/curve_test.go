package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/razbearr/slotted-aloha-simulator/sim/theory"
)

func TestWriteCurveCSV_HeaderAndRows(t *testing.T) {
	points, err := theory.CurvePoints([]float64{0, 1})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeCurveCSV(&buf, points))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "G,S", lines[0])
	assert.Equal(t, "0,0", lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "1,0.36787944"), "got %q", lines[2])
}
