package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"
)

// SeriesPoint is one timestamped value read from the CSV.
type SeriesPoint struct {
	Time  time.Time
	Value float64
}

// timestampFormats are the accepted timestamp layouts, tried in order.
var timestampFormats = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
	"01/02/2006",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02/01/2006",
}

func parseTimestamp(s string) (time.Time, error) {
	var t time.Time
	var err error
	for _, format := range timestampFormats {
		t, err = time.Parse(format, s)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse timestamp '%s': %w", s, err)
}

// readSeries reads and parses the CSV file, returning points sorted by
// timestamp. Column lookup is case-insensitive against the header row.
func readSeries(filename string, cfg ChartConfig) ([]SeriesPoint, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("error opening CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("error reading CSV header: %w", err)
	}
	columnMap := make(map[string]int)
	for i, col := range header {
		columnMap[strings.ToLower(strings.TrimSpace(col))] = i
	}

	tsCol, ok := columnMap[strings.ToLower(cfg.Columns.Timestamp)]
	if !ok {
		return nil, fmt.Errorf("timestamp column '%s' not found in CSV. Available columns: %v", cfg.Columns.Timestamp, header)
	}
	valCol, ok := columnMap[strings.ToLower(cfg.Columns.Value)]
	if !ok {
		return nil, fmt.Errorf("value column '%s' not found in CSV. Available columns: %v", cfg.Columns.Value, header)
	}

	var points []SeriesPoint
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %w", err)
		}
		if tsCol >= len(record) || valCol >= len(record) {
			return nil, fmt.Errorf("CSV row has %d columns, need at least %d", len(record), max(tsCol, valCol)+1)
		}

		t, err := parseTimestamp(strings.TrimSpace(record[tsCol]))
		if err != nil {
			return nil, fmt.Errorf("error parsing CSV row: %w", err)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(record[valCol]), 64)
		if err != nil {
			return nil, fmt.Errorf("error parsing value '%s': %w", record[valCol], err)
		}
		points = append(points, SeriesPoint{Time: t, Value: v})
	}

	if len(points) == 0 {
		return nil, fmt.Errorf("no data rows found in %s", filename)
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Time.Before(points[j].Time)
	})
	return points, nil
}
