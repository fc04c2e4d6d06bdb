package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadSeries_SortsByTimestamp(t *testing.T) {
	path := writeCSV(t, `Timestamp,Value
2024-01-03,30
2024-01-01,10
2024-01-02,20
`)
	points, err := readSeries(path, defaultChartConfig())
	require.NoError(t, err)
	require.Len(t, points, 3)
	assert.Equal(t, 10.0, points[0].Value)
	assert.Equal(t, 30.0, points[2].Value)
	assert.True(t, points[0].Time.Before(points[1].Time))
}

func TestReadSeries_TimestampFormats(t *testing.T) {
	path := writeCSV(t, `timestamp,value
2024-03-01T09:30:00Z,1
2024-03-02 09:30:00,2
2024-03-03 09:30,3
2024-03-04,4
`)
	points, err := readSeries(path, defaultChartConfig())
	require.NoError(t, err)
	require.Len(t, points, 4)
	assert.Equal(t, time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC), points[0].Time)
	assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), points[3].Time)
}

func TestReadSeries_CustomColumns(t *testing.T) {
	cfg := defaultChartConfig()
	cfg.Columns.Timestamp = "When"
	cfg.Columns.Value = "Price"

	path := writeCSV(t, `when,price,note
2024-01-01,42.5,ignored
`)
	points, err := readSeries(path, cfg)
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, 42.5, points[0].Value)
}

func TestReadSeries_Errors(t *testing.T) {
	cfg := defaultChartConfig()

	_, err := readSeries(filepath.Join(t.TempDir(), "missing.csv"), cfg)
	assert.ErrorContains(t, err, "error opening CSV file")

	path := writeCSV(t, "time,value\n2024-01-01,1\n")
	_, err = readSeries(path, cfg)
	assert.ErrorContains(t, err, "timestamp column 'timestamp' not found")

	path = writeCSV(t, "timestamp,value\nyesterday,1\n")
	_, err = readSeries(path, cfg)
	assert.ErrorContains(t, err, "unable to parse timestamp")

	path = writeCSV(t, "timestamp,value\n2024-01-01,lots\n")
	_, err = readSeries(path, cfg)
	assert.ErrorContains(t, err, "error parsing value")

	path = writeCSV(t, "timestamp,value\n")
	_, err = readSeries(path, cfg)
	assert.ErrorContains(t, err, "no data rows")
}

func TestResolveOutput(t *testing.T) {
	tests := []struct {
		name       string
		out        string
		format     string
		wantPath   string
		wantFormat string
	}{
		{"defaults to svg next to csv", "", "", "data.svg", "svg"},
		{"format drives default extension", "", "png", "data.png", "png"},
		{"extension drives format", "chart.png", "", "chart.png", "png"},
		{"explicit format wins", "chart.png", "svg", "chart.png", "svg"},
		{"unknown extension falls back to svg", "chart.out", "", "chart.out", "svg"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path, format, err := resolveOutput("/tmp/data.csv", tc.out, tc.format)
			require.NoError(t, err)
			assert.Equal(t, tc.wantPath, path)
			assert.Equal(t, tc.wantFormat, format)
		})
	}

	_, _, err := resolveOutput("data.csv", "", "pdf")
	assert.ErrorContains(t, err, "invalid format")
}
