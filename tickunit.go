package dateaxis

import (
	"fmt"
	"time"
)

// TickInterval is the calendar field a tick unit steps by.
type TickInterval int

const (
	IntervalMillisecond TickInterval = iota
	IntervalSecond
	IntervalMinute
	IntervalHour
	IntervalDay
	IntervalMonth
	IntervalYear
)

// ParseTickInterval converts a configuration string ("day", "hour", ...) to
// a TickInterval.
func ParseTickInterval(s string) (TickInterval, error) {
	switch s {
	case "millisecond":
		return IntervalMillisecond, nil
	case "second":
		return IntervalSecond, nil
	case "minute":
		return IntervalMinute, nil
	case "hour":
		return IntervalHour, nil
	case "day":
		return IntervalDay, nil
	case "month":
		return IntervalMonth, nil
	case "year":
		return IntervalYear, nil
	}
	return 0, fmt.Errorf("invalid tick interval %q (must be millisecond, second, minute, hour, day, month, or year)", s)
}

func (i TickInterval) String() string {
	switch i {
	case IntervalMillisecond:
		return "millisecond"
	case IntervalSecond:
		return "second"
	case IntervalMinute:
		return "minute"
	case IntervalHour:
		return "hour"
	case IntervalDay:
		return "day"
	case IntervalMonth:
		return "month"
	case IntervalYear:
		return "year"
	}
	return fmt.Sprintf("TickInterval(%d)", int(i))
}

// TickUnit is the fixed calendar step between consecutive major ticks, e.g.
// {IntervalDay, 1} for daily ticks or {IntervalMinute, 15} for quarter-hour
// ticks.
type TickUnit struct {
	Interval TickInterval
	Count    int
}

// Valid reports whether the unit can produce a next tick time.
func (u TickUnit) Valid() bool { return u.Count > 0 }

func (u TickUnit) String() string {
	return fmt.Sprintf("%d %s", u.Count, u.Interval)
}

// Add returns t advanced by one tick unit, calendar-aware in loc.
//
// Month and year steps clamp the day-of-month: Jan 31 plus one month lands
// on Feb 28 (29 in leap years), not Mar 2. Day steps preserve the wall
// clock across DST transitions. Sub-day steps add an absolute duration.
func (u TickUnit) Add(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	t = t.In(loc)
	switch u.Interval {
	case IntervalYear:
		return addMonthsClamped(t, 12*u.Count)
	case IntervalMonth:
		return addMonthsClamped(t, u.Count)
	case IntervalDay:
		return t.AddDate(0, 0, u.Count)
	case IntervalHour:
		return t.Add(time.Duration(u.Count) * time.Hour)
	case IntervalMinute:
		return t.Add(time.Duration(u.Count) * time.Minute)
	case IntervalSecond:
		return t.Add(time.Duration(u.Count) * time.Second)
	default:
		return t.Add(time.Duration(u.Count) * time.Millisecond)
	}
}

// Truncate returns the latest unit boundary at or before t: midnight on the
// first of the month for month units, top of the hour for hour units, and so
// on. Used to align the first generated tick on a calendar boundary.
func (u TickUnit) Truncate(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	t = t.In(loc)
	switch u.Interval {
	case IntervalYear:
		return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, loc)
	case IntervalMonth:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, loc)
	case IntervalDay:
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
	case IntervalHour:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, loc)
	case IntervalMinute:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, loc)
	case IntervalSecond:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), 0, loc)
	default:
		return t.Truncate(time.Millisecond)
	}
}

// addMonthsClamped advances t by n months, clamping the day-of-month to the
// length of the target month instead of letting it normalize forward.
func addMonthsClamped(t time.Time, n int) time.Time {
	year := t.Year()
	month := int(t.Month()) - 1 + n
	year += month / 12
	month = month % 12
	if month < 0 {
		month += 12
		year--
	}
	day := t.Day()
	if last := daysInMonth(year, time.Month(month+1)); day > last {
		day = last
	}
	return time.Date(year, time.Month(month+1), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this month.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// unitChoice pairs a visible-span threshold with the tick unit and label
// format to use once the span reaches it. The table is scanned last to
// first, so each entry covers spans from its threshold up to the next one.
type unitChoice struct {
	span   time.Duration
	unit   TickUnit
	format string
}

var unitChoices = []unitChoice{
	{0, TickUnit{IntervalSecond, 1}, "15:04:05"},
	{30 * time.Second, TickUnit{IntervalSecond, 5}, "15:04:05"},
	{2 * time.Minute, TickUnit{IntervalSecond, 15}, "15:04:05"},
	{5 * time.Minute, TickUnit{IntervalMinute, 1}, "15:04"},
	{30 * time.Minute, TickUnit{IntervalMinute, 5}, "15:04"},
	{2 * time.Hour, TickUnit{IntervalMinute, 15}, "15:04"},
	{6 * time.Hour, TickUnit{IntervalHour, 1}, "15:04"},
	{24 * time.Hour, TickUnit{IntervalHour, 6}, "Jan 2 15:04"},
	{3 * 24 * time.Hour, TickUnit{IntervalDay, 1}, "Jan 2"},
	{21 * 24 * time.Hour, TickUnit{IntervalDay, 7}, "Jan 2"},
	{90 * 24 * time.Hour, TickUnit{IntervalMonth, 1}, "Jan 2006"},
	{540 * 24 * time.Hour, TickUnit{IntervalMonth, 3}, "Jan 2006"},
	{4 * 365 * 24 * time.Hour, TickUnit{IntervalYear, 1}, "2006"},
}

// ChooseTickUnit picks a tick unit and label format suited to the visible
// time span, keeping the major tick count roughly constant as the span
// grows.
func ChooseTickUnit(span time.Duration) (TickUnit, string) {
	chosen := unitChoices[0]
	for _, c := range unitChoices {
		if span >= c.span {
			chosen = c
		}
	}
	return chosen.unit, chosen.format
}
