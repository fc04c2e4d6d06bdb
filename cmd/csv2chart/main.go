// Command csv2chart renders a CSV of timestamped values to an SVG or PNG
// chart with a date axis.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	csvFile    string
	configFile string
	outputFile string
	format     string
	debugFlag  bool
)

// debugPrint prints debug messages to stderr when --debug is set.
func debugPrint(f string, args ...interface{}) {
	if debugFlag {
		fmt.Fprintf(os.Stderr, "[DEBUG] "+f+"\n", args...)
	}
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "csv2chart",
		Short: "Render timestamped CSV data to an SVG or PNG chart",
		Long: `csv2chart reads a CSV file with a timestamp column and a numeric value
column and renders a line chart with a calendar-aware date axis.

The axis (tick unit, label placement, tick marks) and the chart layout are
configured through an optional YAML file; without one, sensible defaults
are used and the tick unit is chosen from the visible time span.`,
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().StringVar(&csvFile, "csv", "", "CSV file with timestamped data (required)")
	rootCmd.Flags().StringVar(&configFile, "config", "", "YAML configuration file")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output filename (default: CSV name with chart extension)")
	rootCmd.Flags().StringVar(&format, "format", "", "Output format: svg or png (default: from output extension, else svg)")
	rootCmd.Flags().BoolVar(&debugFlag, "debug", false, "Enable debug output on stderr")
	rootCmd.MarkFlagRequired("csv")

	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadChartConfig(configFile)
	if err != nil {
		return err
	}
	debugPrint("configuration loaded: %dx%d, axis position %s, label position %s",
		cfg.Layout.Width, cfg.Layout.Height, cfg.Axis.Position, cfg.Axis.LabelPosition)

	series, err := readSeries(csvFile, cfg)
	if err != nil {
		return err
	}
	debugPrint("parsed %d points from %s (%s .. %s)",
		len(series), csvFile, series[0].Time.Format("2006-01-02 15:04"), series[len(series)-1].Time.Format("2006-01-02 15:04"))

	outPath, outFormat, err := resolveOutput(csvFile, outputFile, format)
	if err != nil {
		return err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("error creating output file: %w", err)
	}
	defer out.Close()

	if err := renderChart(out, series, cfg, outFormat); err != nil {
		return err
	}

	color.New(color.FgGreen).Printf("Chart written to %s (%d points)\n", outPath, len(series))
	return nil
}
