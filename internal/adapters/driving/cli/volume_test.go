package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVolumeCmd_Use(t *testing.T) {
	assert.Equal(t, "volume [theme]", volumeCmd.Use)
}

func TestVolumeCmd_Short(t *testing.T) {
	assert.Equal(t, "Track how coverage of a theme evolves over time", volumeCmd.Short)
}

func TestVolumeCmd_HasDateFlags(t *testing.T) {
	start := volumeCmd.Flags().Lookup("start")
	require.NotNil(t, start, "start flag should exist")
	assert.Equal(t, "s", start.Shorthand)

	end := volumeCmd.Flags().Lookup("end")
	require.NotNil(t, end, "end flag should exist")
	assert.Equal(t, "e", end.Shorthand)
}

func TestVolumeCmd_RequiresExactlyOneArg(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"volume"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestVolumeCmd_PrintsWeeklyTable(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"volume", "electric vehicles", "-s", "2025-01-01", "-e", "2025-01-31"})
	defer func() {
		rootCmd.SetArgs(nil)
		volumeStart, volumeEnd = "", ""
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, `Volume for "electric vehicles"`)
	assert.Contains(t, out, "2024-12-30")
	assert.Contains(t, out, "15.0")

	mock := volumeService.(*mockVolumeService)
	assert.Equal(t, "electric vehicles", mock.gotTheme)
	assert.Equal(t, "2025-01-01", mock.gotStart)
	assert.Equal(t, "2025-01-31", mock.gotEnd)
}

func TestVolumeCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"volume", "AI regulation", "-s", "2025-01-01", "-e", "2025-01-31", "--json"})
	defer func() {
		rootCmd.SetArgs(nil)
		volumeStart, volumeEnd = "", ""
		volumeJSON = false
	}()

	err := rootCmd.Execute()
	require.NoError(t, err)

	var out volumeOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "AI regulation", out.Theme)
	assert.Equal(t, "req-test", out.RequestID)
	assert.Equal(t, int64(40), out.TotalDocuments)
	assert.Len(t, out.Daily, 2)
	assert.Len(t, out.Weekly, 1)
}

func TestVolumeCmd_ChartFlag(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"volume", "supply chain", "-s", "2025-01-01", "-e", "2025-01-31", "--chart", "charts"})
	defer func() {
		rootCmd.SetArgs(nil)
		volumeStart, volumeEnd, volumeChartDir = "", "", ""
	}()

	err := rootCmd.Execute()
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "Chart written to charts/test.html")
	mock := chartRenderer.(*mockChartRenderer)
	assert.Equal(t, "supply chain", mock.gotTheme)
	assert.Equal(t, "charts", mock.gotDir)
}

func TestVolumeCmd_WithoutServiceFails(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	volumeService = nil

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"volume", "oil", "-s", "2025-01-01", "-e", "2025-01-31"})
	defer func() {
		rootCmd.SetArgs(nil)
		volumeStart, volumeEnd = "", ""
	}()

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
