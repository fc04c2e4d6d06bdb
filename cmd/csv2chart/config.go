package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"dateaxis"
)

// ChartConfig is the YAML-mapped chart configuration. The axis section maps
// directly onto the engine's own configuration.
type ChartConfig struct {
	Layout struct {
		Width        int `yaml:"width"`         // total chart width in pixels
		Height       int `yaml:"height"`        // total chart height in pixels
		MarginTop    int `yaml:"margin_top"`    // margin above the data area
		MarginBottom int `yaml:"margin_bottom"` // margin below the data area (holds a bottom axis)
		MarginLeft   int `yaml:"margin_left"`   // margin left of the data area (holds value annotations)
		MarginRight  int `yaml:"margin_right"`  // margin right of the data area
	} `yaml:"layout"`
	Colors struct {
		Background string `yaml:"background"` // chart background (hex color code)
		Series     string `yaml:"series"`     // series polyline color
		Text       string `yaml:"text"`       // annotation text color
	} `yaml:"colors"`
	Font struct {
		Family string `yaml:"family"` // CSS font family used in SVG output
		File   string `yaml:"file"`   // optional TTF file; embedded Go Regular if empty
		Size   int    `yaml:"size"`   // annotation font size in pixels
	} `yaml:"font"`
	Series struct {
		LineWidth float64 `yaml:"line_width"`
	} `yaml:"series"`
	Columns struct {
		Timestamp string `yaml:"timestamp"` // timestamp column name (case-insensitive)
		Value     string `yaml:"value"`     // numeric value column name (case-insensitive)
	} `yaml:"columns"`
	Axis dateaxis.Config `yaml:"axis"`
}

// defaultChartConfig returns the default chart configuration: a 1200x400
// canvas with a bottom date axis, an automatic tick unit, and room on the
// left for value annotations.
func defaultChartConfig() ChartConfig {
	var cfg ChartConfig
	cfg.Layout.Width = 1200
	cfg.Layout.Height = 400
	cfg.Layout.MarginTop = 20
	cfg.Layout.MarginBottom = 40
	cfg.Layout.MarginLeft = 80
	cfg.Layout.MarginRight = 20
	cfg.Colors.Background = "#ffffff"
	cfg.Colors.Series = "#4285f4"
	cfg.Colors.Text = "#333333"
	cfg.Font.Family = "Arial, sans-serif"
	cfg.Font.Size = 12
	cfg.Series.LineWidth = 2
	cfg.Columns.Timestamp = "timestamp"
	cfg.Columns.Value = "value"
	cfg.Axis = dateaxis.DefaultConfig()
	return cfg
}

// loadChartConfig loads configuration from a YAML file, overlaying it on
// the defaults, or returns the defaults if no file is specified.
func loadChartConfig(path string) (ChartConfig, error) {
	cfg := defaultChartConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ChartConfig{}, fmt.Errorf("error reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ChartConfig{}, fmt.Errorf("error parsing config file: %w", err)
	}
	return cfg, nil
}

// resolveOutput determines the output path and format. An explicit --format
// wins; otherwise the output extension decides, defaulting to SVG.
func resolveOutput(csvPath, outPath, format string) (string, string, error) {
	if format != "" && format != "svg" && format != "png" {
		return "", "", fmt.Errorf("invalid format %q (must be svg or png)", format)
	}
	if outPath == "" {
		f := format
		if f == "" {
			f = "svg"
		}
		base := filepath.Base(csvPath)
		outPath = strings.TrimSuffix(base, filepath.Ext(base)) + "." + f
	}
	if format == "" {
		switch strings.ToLower(filepath.Ext(outPath)) {
		case ".png":
			format = "png"
		default:
			format = "svg"
		}
	}
	return outPath, format, nil
}
