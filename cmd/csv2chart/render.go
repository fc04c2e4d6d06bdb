package main

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"

	"dateaxis"
)

// renderChart draws the background, the series polyline, minimal value
// annotations, and the date axis, then encodes the result to w.
func renderChart(w io.Writer, series []SeriesPoint, cfg ChartConfig, format string) error {
	font, err := chartFont(cfg)
	if err != nil {
		return err
	}

	axis, err := dateaxis.New(cfg.Axis, font)
	if err != nil {
		return err
	}
	edge := axis.Edge()
	if !edge.IsTopOrBottom() {
		return fmt.Errorf("csv2chart renders time horizontally; axis position must be top or bottom, not %s", edge)
	}

	minTime := series[0].Time
	maxTime := series[len(series)-1].Time
	if !maxTime.After(minTime) {
		// A single instant has no span; give the axis an hour to work with.
		maxTime = minTime.Add(time.Hour)
	}
	if err := axis.SetRange(minTime, maxTime); err != nil {
		return err
	}
	debugPrint("tick unit: %s", axis.TickUnit())

	canvas, err := newCanvas(cfg, font, format)
	if err != nil {
		return err
	}

	plotArea := dateaxis.Rect{
		MinX: 0, MinY: 0,
		MaxX: float64(cfg.Layout.Width), MaxY: float64(cfg.Layout.Height),
	}
	dataArea := dateaxis.Rect{
		MinX: float64(cfg.Layout.MarginLeft),
		MinY: float64(cfg.Layout.MarginTop),
		MaxX: float64(cfg.Layout.Width - cfg.Layout.MarginRight),
		MaxY: float64(cfg.Layout.Height - cfg.Layout.MarginBottom),
	}
	if dataArea.Empty() {
		return fmt.Errorf("margins leave no data area in a %dx%d chart", cfg.Layout.Width, cfg.Layout.Height)
	}

	canvas.FillRect(plotArea, cfg.Colors.Background)

	drawSeries(canvas, series, axis, dataArea, cfg)

	cursor := dataArea.MaxY
	if edge == dateaxis.EdgeTop {
		cursor = dataArea.MinY
	}
	state := axis.Draw(canvas, cursor, plotArea, dataArea, edge)
	debugPrint("axis consumed %.1fpx of margin (%d ticks)", state.Cursor-cursor, len(state.Ticks))

	return canvas.Save(w)
}

func chartFont(cfg ChartConfig) (*dateaxis.Font, error) {
	if cfg.Font.File != "" {
		return dateaxis.LoadFont(cfg.Font.File)
	}
	return dateaxis.DefaultFont(), nil
}

func newCanvas(cfg ChartConfig, font *dateaxis.Font, format string) (dateaxis.Canvas, error) {
	if format == "png" {
		return dateaxis.NewPNGSurface(cfg.Layout.Width, cfg.Layout.Height, font)
	}
	return dateaxis.NewSVGSurface(cfg.Layout.Width, cfg.Layout.Height, cfg.Font.Family), nil
}

// drawSeries draws the value polyline and annotates the value range on the
// left margin.
func drawSeries(canvas dateaxis.Canvas, series []SeriesPoint, axis *dateaxis.DateAxis, dataArea dateaxis.Rect, cfg ChartConfig) {
	vmin, vmax := series[0].Value, series[0].Value
	for _, p := range series {
		if p.Value < vmin {
			vmin = p.Value
		}
		if p.Value > vmax {
			vmax = p.Value
		}
	}
	span := vmax - vmin
	if span == 0 {
		span = 1
	}

	points := make([]dateaxis.Point, len(series))
	for i, p := range series {
		points[i] = dateaxis.Point{
			X: axis.Scale().PixelFor(p.Time, dataArea, dateaxis.EdgeBottom),
			Y: dataArea.MaxY - (p.Value-vmin)/span*dataArea.Height(),
		}
	}
	canvas.Polyline(points, dateaxis.LineStyle{Color: cfg.Colors.Series, Width: cfg.Series.LineWidth})

	style := dateaxis.TextStyle{Color: cfg.Colors.Text, Size: float64(cfg.Font.Size)}
	canvas.DrawRotatedText(humanize.Commaf(vmax),
		dateaxis.Point{X: dataArea.MinX - 6, Y: dataArea.MinY},
		dateaxis.AnchorCenterRight, 0, dateaxis.AnchorCenterRight, style)
	canvas.DrawRotatedText(humanize.Commaf(vmin),
		dateaxis.Point{X: dataArea.MinX - 6, Y: dataArea.MaxY},
		dateaxis.AnchorCenterRight, 0, dateaxis.AnchorCenterRight, style)
}
