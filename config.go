package dateaxis

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the YAML-mapped axis configuration. Visibility flags are
// tri-state pointers so an absent key keeps its default instead of reading
// as false; use the Is* accessors.
type Config struct {
	Position      string         `yaml:"position"`       // axis edge: "top", "bottom", "left", "right"
	LabelPosition string         `yaml:"label_position"` // "interval_start" or "interval_middle"
	Timezone      string         `yaml:"timezone"`       // IANA zone name for calendar arithmetic, e.g. "Europe/Prague"
	Unit          UnitConfig     `yaml:"unit"`
	AxisLine      LineConfig     `yaml:"axis_line"`
	TickMarks     TickMarkConfig `yaml:"tick_marks"`
	Labels        LabelConfig    `yaml:"labels"`
}

// UnitConfig selects the calendar step between major ticks. An empty
// interval means the unit and label format are chosen automatically from
// the visible time span.
type UnitConfig struct {
	Interval string `yaml:"interval"` // "millisecond".."year", or empty for automatic
	Count    int    `yaml:"count"`    // steps per tick, e.g. 15 with interval "minute"
	Format   string `yaml:"format"`   // label layout in Go reference-time form, e.g. "Jan 2"
}

// LineConfig styles the axis baseline.
type LineConfig struct {
	Visible *bool   `yaml:"visible"`
	Color   string  `yaml:"color"`
	Width   float64 `yaml:"width"`
}

// IsVisible reports whether the axis baseline is drawn (default true).
func (c LineConfig) IsVisible() bool { return c.Visible == nil || *c.Visible }

// TickMarkConfig styles the tick mark segments. Inside lengths extend into
// the data area, outside lengths away from it.
type TickMarkConfig struct {
	Visible            *bool   `yaml:"visible"`       // major tick marks
	MinorVisible       *bool   `yaml:"minor_visible"` // minor tick marks
	InsideLength       float64 `yaml:"inside_length"`
	OutsideLength      float64 `yaml:"outside_length"`
	MinorInsideLength  float64 `yaml:"minor_inside_length"`
	MinorOutsideLength float64 `yaml:"minor_outside_length"`
	MinorCount         int     `yaml:"minor_count"` // minor intervals per major interval, below 2 disables minors
	Color              string  `yaml:"color"`
	Width              float64 `yaml:"width"`
}

// IsVisible reports whether major tick marks are drawn (default true).
func (c TickMarkConfig) IsVisible() bool { return c.Visible == nil || *c.Visible }

// IsMinorVisible reports whether minor tick marks are drawn (default false).
func (c TickMarkConfig) IsMinorVisible() bool { return c.MinorVisible != nil && *c.MinorVisible }

// LabelConfig styles the tick labels.
type LabelConfig struct {
	Visible  *bool   `yaml:"visible"`
	FontSize float64 `yaml:"font_size"`
	Color    string  `yaml:"color"`
	Vertical bool    `yaml:"vertical"` // rotate labels a quarter turn on horizontal edges
	Gap      float64 `yaml:"gap"`      // perpendicular distance from the cursor to the label anchor

	// Insets is extra margin reserved around the labels when the cursor
	// advances. All zero by default, so the cursor moves by exactly the
	// maximum label extent.
	Insets Insets `yaml:"insets"`

	// OverflowTolerance overrides DefaultOverflowTolerance when set.
	OverflowTolerance *float64 `yaml:"overflow_tolerance"`
}

// IsVisible reports whether tick labels are drawn (default true).
func (c LabelConfig) IsVisible() bool { return c.Visible == nil || *c.Visible }

// Tolerance returns the configured overflow tolerance in pixels.
func (c LabelConfig) Tolerance() float64 {
	if c.OverflowTolerance != nil {
		return *c.OverflowTolerance
	}
	return DefaultOverflowTolerance
}

// Insets is extra space around the labels, per side.
type Insets struct {
	Top    float64 `yaml:"top"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
	Right  float64 `yaml:"right"`
}

// DefaultConfig returns the default axis configuration: a bottom-edge axis
// with start-of-interval labels, UTC calendar arithmetic, an automatic tick
// unit, and JFreeChart-like mark lengths.
func DefaultConfig() Config {
	return Config{
		Position:      "bottom",
		LabelPosition: "interval_start",
		Timezone:      "UTC",
		AxisLine: LineConfig{
			Color: "#333333",
			Width: 1,
		},
		TickMarks: TickMarkConfig{
			InsideLength:       0,
			OutsideLength:      2,
			MinorInsideLength:  0,
			MinorOutsideLength: 1,
			Color:              "#333333",
			Width:              1,
		},
		Labels: LabelConfig{
			FontSize: 11,
			Color:    "#333333",
			Gap:      4,
		},
	}
}

// LoadConfig loads configuration from a YAML file, overlaying it on the
// defaults, or returns the defaults if no file is specified.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("error reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("error parsing config file: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration and reports the first inconsistency.
// An invalid configuration must be rejected before rendering; the render
// pass itself never degrades silently.
func (c Config) Validate() error {
	if _, err := ParseEdge(c.Position); err != nil {
		return err
	}
	if _, err := ParseLabelPosition(c.LabelPosition); err != nil {
		return err
	}
	if c.Timezone != "" {
		if _, err := time.LoadLocation(c.Timezone); err != nil {
			return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
		}
	}
	if c.Unit.Interval != "" {
		if _, err := ParseTickInterval(c.Unit.Interval); err != nil {
			return err
		}
		if c.Unit.Count < 1 {
			return fmt.Errorf("invalid tick unit count %d (must be at least 1)", c.Unit.Count)
		}
	}
	if c.Labels.FontSize <= 0 {
		return fmt.Errorf("invalid label font size %g (must be positive)", c.Labels.FontSize)
	}
	return nil
}
