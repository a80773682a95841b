package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsatony/temperature-detector/internal/models"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, Execute())
	return out.String()
}

func TestResolveCommand(t *testing.T) {
	testcases := []struct {
		label    string
		args     []string
		location string
		sensorID string
	}{
		{"location only", []string{"resolve", "--location", "kitchen", "--sensor-id", ""}, "Kitchen", "3"},
		{"sensor only", []string{"resolve", "--location", "", "--sensor-id", "2"}, "Bedroom", "2"},
		{"nothing", []string{"resolve", "--location", "", "--sensor-id", ""}, "Unknown", "0"},
		{"mismatched pair", []string{"resolve", "-l", "living", "-s", "3"}, "Living Room", "3"},
	}

	for _, tc := range testcases {
		t.Run(tc.label, func(t *testing.T) {
			out := execute(t, tc.args...)

			var reading models.Reading
			require.NoError(t, json.Unmarshal([]byte(out), &reading))
			assert.Equal(t, tc.location, reading.Location)
			assert.Equal(t, tc.sensorID, reading.SensorID)
			assert.GreaterOrEqual(t, reading.Value, 15.0)
			assert.Less(t, reading.Value, 30.0)
		})
	}
}

func TestVersionCommand(t *testing.T) {
	out := execute(t, "version")
	assert.Contains(t, out, BinaryName)
}
