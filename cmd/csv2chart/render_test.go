package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSeries() []SeriesPoint {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return []SeriesPoint{
		{Time: base, Value: 100},
		{Time: base.AddDate(0, 0, 1), Value: 150},
		{Time: base.AddDate(0, 0, 2), Value: 125},
	}
}

func TestRenderChart_SVG(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, renderChart(&out, sampleSeries(), defaultChartConfig(), "svg"))

	doc := out.String()
	assert.Contains(t, doc, "<svg")
	assert.Contains(t, doc, "<polyline")
	assert.Contains(t, doc, "<text")
	assert.Contains(t, doc, "150") // max value annotation
}

func TestRenderChart_SinglePoint(t *testing.T) {
	var out bytes.Buffer
	series := sampleSeries()[:1]
	require.NoError(t, renderChart(&out, series, defaultChartConfig(), "svg"))
	assert.Contains(t, out.String(), "<svg")
}

func TestRenderChart_RejectsVerticalTimeAxis(t *testing.T) {
	cfg := defaultChartConfig()
	cfg.Axis.Position = "left"
	err := renderChart(&bytes.Buffer{}, sampleSeries(), cfg, "svg")
	assert.ErrorContains(t, err, "must be top or bottom")
}

func TestRenderChart_RejectsDegenerateMargins(t *testing.T) {
	cfg := defaultChartConfig()
	cfg.Layout.MarginLeft = cfg.Layout.Width
	err := renderChart(&bytes.Buffer{}, sampleSeries(), cfg, "svg")
	assert.ErrorContains(t, err, "no data area")
}

func TestLoadChartConfig_OverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
layout:
  width: 640
colors:
  series: "#ff0000"
axis:
  label_position: interval_middle
`), 0644))

	cfg, err := loadChartConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 640, cfg.Layout.Width)
	assert.Equal(t, 400, cfg.Layout.Height) // default kept
	assert.Equal(t, "#ff0000", cfg.Colors.Series)
	assert.Equal(t, "interval_middle", cfg.Axis.LabelPosition)
	assert.Equal(t, "bottom", cfg.Axis.Position) // default kept
}
