package dateaxis

import (
	"math"
	"time"
)

// TickCategory separates primary ticks from secondary-resolution ones.
// Mark visibility is toggled independently per category.
type TickCategory int

const (
	MajorTick TickCategory = iota
	MinorTick
)

// Tick is one marked position along the axis. Ticks are produced upstream
// of the render pass, consumed read-only, and discarded with the pass.
type Tick struct {
	Time           time.Time
	Label          string
	Category       TickCategory
	TextAnchor     TextAnchor
	Angle          float64 // radians
	RotationAnchor TextAnchor
}

// TickSource supplies the ordered (chronological) tick sequence for the
// current visible range.
type TickSource interface {
	Ticks(min, max time.Time, edge Edge) []Tick
}

// FixedTicks is a caller-supplied tick sequence, returned as-is. The caller
// is responsible for chronological order.
type FixedTicks []Tick

func (f FixedTicks) Ticks(min, max time.Time, edge Edge) []Tick { return f }

// CalendarTicks generates boundary-aligned major ticks at TickUnit steps,
// optionally subdividing each major interval into MinorCount evenly spaced
// unlabelled minor ticks.
type CalendarTicks struct {
	Unit     TickUnit
	Format   string // label layout in time.Format reference form
	Location *time.Location

	// MinorCount is the number of minor intervals per major interval; a
	// value below 2 disables minor ticks.
	MinorCount int

	// VerticalLabels rotates labels a quarter turn on horizontal edges.
	VerticalLabels bool
}

// Ticks returns the tick sequence covering [min, max]. The first major tick
// sits on the unit boundary at or before min; generation stops with the
// first major tick at or past max, so the range is always fully bracketed.
func (c CalendarTicks) Ticks(min, max time.Time, edge Edge) []Tick {
	if !c.Unit.Valid() || !max.After(min) {
		return nil
	}
	loc := c.Location
	if loc == nil {
		loc = time.UTC
	}
	format := c.Format
	if format == "" {
		format = "2006-01-02"
	}

	textAnchor, angle, rotationAnchor := c.labelOrientation(edge)

	// Major tick times: from the boundary at or before min through the
	// first boundary at or past max. The cap guards against a unit far
	// too small for the range.
	const maxTicks = 10000
	var majors []time.Time
	cur := c.Unit.Truncate(min, loc)
	for {
		majors = append(majors, cur)
		if !cur.Before(max) || len(majors) >= maxTicks {
			break
		}
		cur = c.Unit.Add(cur, loc)
	}

	var ticks []Tick
	for i, t := range majors {
		ticks = append(ticks, Tick{
			Time:           t,
			Label:          t.Format(format),
			Category:       MajorTick,
			TextAnchor:     textAnchor,
			Angle:          angle,
			RotationAnchor: rotationAnchor,
		})
		if c.MinorCount >= 2 && i+1 < len(majors) {
			step := majors[i+1].Sub(t) / time.Duration(c.MinorCount)
			for j := 1; j < c.MinorCount; j++ {
				ticks = append(ticks, Tick{
					Time:           t.Add(time.Duration(j) * step),
					Category:       MinorTick,
					TextAnchor:     textAnchor,
					Angle:          angle,
					RotationAnchor: rotationAnchor,
				})
			}
		}
	}
	return ticks
}

// labelOrientation assigns the per-edge text anchor and rotation, matching
// how a conventional date axis orients its labels.
func (c CalendarTicks) labelOrientation(edge Edge) (TextAnchor, float64, TextAnchor) {
	switch edge {
	case EdgeTop:
		if c.VerticalLabels {
			return AnchorCenterLeft, -math.Pi / 2, AnchorCenterLeft
		}
		return AnchorBottomCenter, 0, AnchorBottomCenter
	case EdgeBottom:
		if c.VerticalLabels {
			return AnchorCenterRight, -math.Pi / 2, AnchorCenterRight
		}
		return AnchorTopCenter, 0, AnchorTopCenter
	case EdgeLeft:
		return AnchorCenterRight, 0, AnchorCenterRight
	default:
		return AnchorCenterLeft, 0, AnchorCenterLeft
	}
}
