package dateaxis

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalendarTicks_BoundaryAlignment(t *testing.T) {
	src := CalendarTicks{Unit: TickUnit{IntervalDay, 1}, Format: "Jan 2"}
	min := time.Date(2024, 1, 1, 6, 0, 0, 0, time.UTC)
	max := time.Date(2024, 1, 3, 18, 0, 0, 0, time.UTC)

	ticks := src.Ticks(min, max, EdgeBottom)
	require.Len(t, ticks, 4)

	// First tick sits on the midnight boundary before min; the last on
	// the first boundary past max, so the range is fully bracketed.
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), ticks[0].Time)
	assert.Equal(t, time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC), ticks[3].Time)
	assert.Equal(t, "Jan 1", ticks[0].Label)
	assert.Equal(t, "Jan 4", ticks[3].Label)
	for _, tick := range ticks {
		assert.Equal(t, MajorTick, tick.Category)
	}
}

func TestCalendarTicks_MinorSubdivision(t *testing.T) {
	src := CalendarTicks{Unit: TickUnit{IntervalDay, 1}, Format: "Jan 2", MinorCount: 4}
	min := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	max := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	ticks := src.Ticks(min, max, EdgeBottom)
	// Two majors with three evenly spaced minors between them.
	require.Len(t, ticks, 5)
	assert.Equal(t, MajorTick, ticks[0].Category)
	assert.Equal(t, time.Date(2024, 1, 1, 6, 0, 0, 0, time.UTC), ticks[1].Time)
	assert.Equal(t, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), ticks[2].Time)
	assert.Equal(t, time.Date(2024, 1, 1, 18, 0, 0, 0, time.UTC), ticks[3].Time)
	for _, tick := range ticks[1:4] {
		assert.Equal(t, MinorTick, tick.Category)
		assert.Empty(t, tick.Label)
	}
	assert.Equal(t, MajorTick, ticks[4].Category)
}

func TestCalendarTicks_ChronologicalOrderByCategory(t *testing.T) {
	src := CalendarTicks{Unit: TickUnit{IntervalHour, 6}, MinorCount: 3}
	min := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	max := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	ticks := src.Ticks(min, max, EdgeBottom)
	require.NotEmpty(t, ticks)
	for i := 1; i < len(ticks); i++ {
		assert.True(t, ticks[i].Time.After(ticks[i-1].Time), "tick %d out of order", i)
	}
}

func TestCalendarTicks_LabelOrientation(t *testing.T) {
	min := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	max := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		edge       Edge
		vertical   bool
		wantAnchor TextAnchor
		wantAngle  float64
	}{
		{"bottom", EdgeBottom, false, AnchorTopCenter, 0},
		{"bottom vertical", EdgeBottom, true, AnchorCenterRight, -math.Pi / 2},
		{"top", EdgeTop, false, AnchorBottomCenter, 0},
		{"left", EdgeLeft, false, AnchorCenterRight, 0},
		{"right", EdgeRight, false, AnchorCenterLeft, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			src := CalendarTicks{Unit: TickUnit{IntervalDay, 1}, VerticalLabels: tc.vertical}
			ticks := src.Ticks(min, max, tc.edge)
			require.NotEmpty(t, ticks)
			assert.Equal(t, tc.wantAnchor, ticks[0].TextAnchor)
			assert.Equal(t, tc.wantAngle, ticks[0].Angle)
			assert.Equal(t, tc.wantAnchor, ticks[0].RotationAnchor)
		})
	}
}

func TestCalendarTicks_DegenerateInputs(t *testing.T) {
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	src := CalendarTicks{Unit: TickUnit{IntervalDay, 1}}
	assert.Nil(t, src.Ticks(at, at, EdgeBottom))

	src = CalendarTicks{}
	assert.Nil(t, src.Ticks(at, at.Add(time.Hour), EdgeBottom))
}

func TestFixedTicks_ReturnedAsIs(t *testing.T) {
	ticks := FixedTicks{
		{Time: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Label: "one"},
		{Time: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), Label: "two"},
	}
	got := ticks.Ticks(time.Time{}, time.Time{}, EdgeLeft)
	assert.Equal(t, []Tick(ticks), got)
}
