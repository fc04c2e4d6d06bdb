// Package dateaxis places and draws tick labels along the date axis of a
// 2-D chart. Given the visible time range and an edge of the data area, it
// generates (or accepts) a tick sequence, computes each label's anchor
// point with optional mid-interval alignment, suppresses labels that would
// overflow the plotted area, draws tick marks, and reports how much margin
// space the axis consumed so further decorations can be stacked around the
// plot.
package dateaxis

import (
	"errors"
	"fmt"
	"time"
)

// DefaultOverflowTolerance is how many pixels a tick label may overflow the
// data area bound and still be drawn. Mid-interval placement pushes the
// last labels toward the edge; a small tolerance keeps near-boundary labels
// visible while substantially overflowing ones are suppressed.
const DefaultOverflowTolerance = 5.0

// LabelPosition selects where tick labels sit relative to their tick.
type LabelPosition int

const (
	// IntervalStart places each label directly under/beside its tick, the
	// conventional date axis placement.
	IntervalStart LabelPosition = iota

	// IntervalMiddle shifts each label a quarter of the way toward the
	// next tick, so it reads as labelling the interval rather than the
	// instant.
	IntervalMiddle
)

// ParseLabelPosition converts a configuration string to a LabelPosition.
func ParseLabelPosition(s string) (LabelPosition, error) {
	switch s {
	case "interval_start":
		return IntervalStart, nil
	case "interval_middle":
		return IntervalMiddle, nil
	}
	return 0, fmt.Errorf("invalid label position %q (must be interval_start or interval_middle)", s)
}

func (p LabelPosition) String() string {
	if p == IntervalMiddle {
		return "interval_middle"
	}
	return "interval_start"
}

// AxisState accumulates what one render pass produced: the advanced layout
// cursor and the ticks processed. It is created at the start of a pass,
// mutated throughout, returned to the caller, and discarded.
type AxisState struct {
	Cursor float64
	Ticks  []Tick
}

// CursorUp moves the cursor toward smaller y by amount.
func (s *AxisState) CursorUp(amount float64) { s.Cursor -= amount }

// CursorDown moves the cursor toward larger y by amount.
func (s *AxisState) CursorDown(amount float64) { s.Cursor += amount }

// CursorLeft moves the cursor toward smaller x by amount.
func (s *AxisState) CursorLeft(amount float64) { s.Cursor -= amount }

// CursorRight moves the cursor toward larger x by amount.
func (s *AxisState) CursorRight(amount float64) { s.Cursor += amount }

// anchorStrategy computes a tick's label anchor from its baseline point.
// Composition replaces the subclass-override idiom: the standard
// start-of-interval placement is one strategy, mid-interval the other.
type anchorStrategy interface {
	anchor(a *DateAxis, tick Tick, base Point, dataArea Rect, edge Edge) Point
}

type intervalStartAnchor struct{}

func (intervalStartAnchor) anchor(_ *DateAxis, _ Tick, base Point, _ Rect, _ Edge) Point {
	return base
}

type intervalMiddleAnchor struct{}

func (intervalMiddleAnchor) anchor(a *DateAxis, tick Tick, base Point, dataArea Rect, edge Edge) Point {
	// The next tick is always derived by calendar addition, also for the
	// last tick of the range, where the mapping extrapolates past the
	// data area.
	next := a.unit.Add(tick.Time, a.loc)
	p := a.scale.PixelFor(next, dataArea, edge)
	shift := (p - edge.Primary(base)) / 4
	return edge.ShiftPrimary(base, shift)
}

var anchorStrategies = map[LabelPosition]anchorStrategy{
	IntervalStart:  intervalStartAnchor{},
	IntervalMiddle: intervalMiddleAnchor{},
}

// DateAxis places and draws date tick labels along one edge of a data
// area. Configuration is fixed at construction apart from the explicit
// setters, which must not be called concurrently with Draw; a render pass
// owns its inputs for its duration.
type DateAxis struct {
	cfg      Config
	measurer TextMeasurer
	loc      *time.Location
	labelPos LabelPosition

	unit     TickUnit
	format   string
	autoUnit bool

	scale  TimeScale
	source TickSource
}

// New builds an axis from a validated configuration. The measurer is
// usually a *Font; tests may substitute fixed metrics.
func New(cfg Config, m TextMeasurer) (*DateAxis, error) {
	if m == nil {
		return nil, errors.New("text measurer is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid axis configuration: %w", err)
	}
	loc := time.UTC
	if cfg.Timezone != "" {
		loc, _ = time.LoadLocation(cfg.Timezone)
	}
	labelPos, _ := ParseLabelPosition(cfg.LabelPosition)

	a := &DateAxis{
		cfg:      cfg,
		measurer: m,
		loc:      loc,
		labelPos: labelPos,
		format:   cfg.Unit.Format,
		autoUnit: cfg.Unit.Interval == "",
	}
	if !a.autoUnit {
		interval, _ := ParseTickInterval(cfg.Unit.Interval)
		a.unit = TickUnit{Interval: interval, Count: cfg.Unit.Count}
	}
	return a, nil
}

// Edge returns the configured axis edge.
func (a *DateAxis) Edge() Edge {
	e, _ := ParseEdge(a.cfg.Position)
	return e
}

// LabelPosition returns the current label placement mode.
func (a *DateAxis) LabelPosition() LabelPosition { return a.labelPos }

// SetLabelPosition changes the label placement mode between render passes.
func (a *DateAxis) SetLabelPosition(p LabelPosition) error {
	if _, ok := anchorStrategies[p]; !ok {
		return fmt.Errorf("invalid label position %d", int(p))
	}
	a.labelPos = p
	return nil
}

// TickUnit returns the calendar step currently in effect. With an
// automatic unit it is only meaningful after SetRange.
func (a *DateAxis) TickUnit() TickUnit { return a.unit }

// SetRange sets the visible time range. With an automatic unit
// configuration this also picks the tick unit and label format for the
// new span.
func (a *DateAxis) SetRange(min, max time.Time) error {
	if !max.After(min) {
		return fmt.Errorf("invalid axis range: %s is not after %s", max, min)
	}
	a.scale = TimeScale{Min: min, Max: max}
	if a.autoUnit {
		a.unit, a.format = ChooseTickUnit(max.Sub(min))
		if a.cfg.Unit.Format != "" {
			a.format = a.cfg.Unit.Format
		}
	}
	return nil
}

// Scale returns the time-to-pixel mapping for the current range.
func (a *DateAxis) Scale() TimeScale { return a.scale }

// SetTickSource overrides the default calendar tick generator with an
// upstream-supplied source, e.g. FixedTicks.
func (a *DateAxis) SetTickSource(ts TickSource) { a.source = ts }

func (a *DateAxis) tickSource() TickSource {
	if a.source != nil {
		return a.source
	}
	return CalendarTicks{
		Unit:           a.unit,
		Format:         a.format,
		Location:       a.loc,
		MinorCount:     a.cfg.TickMarks.MinorCount,
		VerticalLabels: a.cfg.Labels.Vertical,
	}
}

// baselineAnchor is the unshifted label anchor: the tick's pixel position
// along the axis, offset from the cursor by the label gap on the
// perpendicular coordinate.
func (a *DateAxis) baselineAnchor(tick Tick, cursor float64, dataArea Rect, edge Edge) Point {
	p := a.scale.PixelFor(tick.Time, dataArea, edge)
	gap := a.cfg.Labels.Gap
	switch edge {
	case EdgeTop:
		return Point{X: p, Y: cursor - gap}
	case EdgeBottom:
		return Point{X: p, Y: cursor + gap}
	case EdgeLeft:
		return Point{X: cursor - gap, Y: p}
	default:
		return Point{X: cursor + gap, Y: p}
	}
}

// AnchorPoint computes where the tick's label is anchored: the baseline
// anchor, shifted along the edge's primary direction when the label
// position mode calls for it. Pure and idempotent.
func (a *DateAxis) AnchorPoint(tick Tick, cursor float64, dataArea Rect, edge Edge) Point {
	base := a.baselineAnchor(tick, cursor, dataArea, edge)
	return anchorStrategies[a.labelPos].anchor(a, tick, base, dataArea, edge)
}

// LabelVisible reports whether a label drawn at anchor stays within the
// data area's primary-direction bound, allowing tolerance pixels of
// overflow. Shifted labels near the range end are the case this exists
// for: a label just past the bound still draws, one substantially past it
// does not.
func LabelVisible(m TextMeasurer, text string, size float64, anchor Point, textAnchor TextAnchor, angle float64, rotationAnchor TextAnchor, dataArea Rect, edge Edge, tolerance float64) bool {
	bounds := RotatedTextBounds(m, text, size, anchor, textAnchor, angle, rotationAnchor)
	labelEdge := bounds.MaxX
	areaBound := dataArea.MaxX
	if edge.IsLeftOrRight() {
		labelEdge = bounds.MaxY
		areaBound = dataArea.MaxY
	}
	return labelEdge-tolerance <= areaBound
}

// Draw runs one render pass: the axis baseline, then per tick the label
// (placed, filtered, drawn) and the tick mark (always at the unshifted
// position), and finally the cursor advance by the maximum label extent.
// The tick sequence is processed in the order supplied, which must be
// chronological. The pass is synchronous and raises no recoverable errors.
func (a *DateAxis) Draw(surface Surface, cursor float64, plotArea, dataArea Rect, edge Edge) *AxisState {
	state := &AxisState{Cursor: cursor}

	if a.cfg.AxisLine.IsVisible() {
		a.drawAxisLine(surface, cursor, dataArea, edge)
	}

	ticks := a.tickSource().Ticks(a.scale.Min, a.scale.Max, edge)
	state.Ticks = ticks

	labelsVisible := a.cfg.Labels.IsVisible()
	labelStyle := TextStyle{Color: a.cfg.Labels.Color, Size: a.cfg.Labels.FontSize}
	tolerance := a.cfg.Labels.Tolerance()

	for _, tick := range ticks {
		if labelsVisible && tick.Label != "" {
			anchor := a.AnchorPoint(tick, cursor, dataArea, edge)
			if LabelVisible(a.measurer, tick.Label, labelStyle.Size, anchor, tick.TextAnchor, tick.Angle, tick.RotationAnchor, dataArea, edge, tolerance) {
				surface.DrawRotatedText(tick.Label, anchor, tick.TextAnchor, tick.Angle, tick.RotationAnchor, labelStyle)
			}
		}
		a.drawTickMark(surface, tick, cursor, dataArea, edge)
	}

	if labelsVisible {
		a.advanceCursor(state, ticks, edge)
	}
	return state
}

// drawTickMark draws the mark for one tick if its category is visible.
// Marks are centered on the tick's exact pixel position; label shifting
// never moves them.
func (a *DateAxis) drawTickMark(surface Surface, tick Tick, cursor float64, dataArea Rect, edge Edge) {
	marks := a.cfg.TickMarks
	var ol, il float64
	switch tick.Category {
	case MinorTick:
		if !marks.IsMinorVisible() {
			return
		}
		ol, il = marks.MinorOutsideLength, marks.MinorInsideLength
	default:
		if !marks.IsVisible() {
			return
		}
		ol, il = marks.OutsideLength, marks.InsideLength
	}

	style := LineStyle{Color: marks.Color, Width: marks.Width}
	v := a.scale.PixelFor(tick.Time, dataArea, edge)
	switch edge {
	case EdgeLeft:
		surface.DrawLine(cursor-ol, v, cursor+il, v, style)
	case EdgeRight:
		surface.DrawLine(cursor+ol, v, cursor-il, v, style)
	case EdgeTop:
		surface.DrawLine(v, cursor-ol, v, cursor+il, style)
	default:
		surface.DrawLine(v, cursor+ol, v, cursor-il, style)
	}
}

func (a *DateAxis) drawAxisLine(surface Surface, cursor float64, dataArea Rect, edge Edge) {
	style := LineStyle{Color: a.cfg.AxisLine.Color, Width: a.cfg.AxisLine.Width}
	if edge.IsTopOrBottom() {
		surface.DrawLine(dataArea.MinX, cursor, dataArea.MaxX, cursor, style)
	} else {
		surface.DrawLine(cursor, dataArea.MinY, cursor, dataArea.MaxY, style)
	}
}

// advanceCursor moves the state cursor away from the data area by the
// maximum label extent across the tick set, plus the configured insets.
func (a *DateAxis) advanceCursor(state *AxisState, ticks []Tick, edge Edge) {
	size := a.cfg.Labels.FontSize
	vertical := a.cfg.Labels.Vertical

	var used float64
	for _, tick := range ticks {
		if tick.Label == "" {
			continue
		}
		w, ascent, descent := a.measurer.Measure(tick.Label, size)
		h := ascent + descent

		var extent float64
		if edge.IsTopOrBottom() {
			extent = h
			if vertical {
				extent = w
			}
		} else {
			extent = w
			if vertical {
				extent = h
			}
		}
		if extent > used {
			used = extent
		}
	}

	insets := a.cfg.Labels.Insets
	switch edge {
	case EdgeLeft:
		state.CursorLeft(used + insets.Left + insets.Right)
	case EdgeRight:
		state.CursorRight(used + insets.Left + insets.Right)
	case EdgeTop:
		state.CursorUp(used + insets.Top + insets.Bottom)
	default:
		state.CursorDown(used + insets.Top + insets.Bottom)
	}
}
