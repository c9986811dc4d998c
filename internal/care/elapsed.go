package care

import (
	"fmt"
	"time"
)

const day = 24 * time.Hour

// Unit is the granularity a Span is expressed in.
type Unit string

const (
	UnitJustNow Unit = "just-now"
	UnitToday   Unit = "today"
	UnitMinute  Unit = "minute"
	UnitHour    Unit = "hour"
	UnitDay     Unit = "day"
	UnitWeek    Unit = "week"
	UnitMonth   Unit = "month"
)

// Span is an elapsed time rounded down to one unit, e.g. {UnitHour, 5}.
type Span struct {
	Unit  Unit
	Count int
}

// String renders the span in English: "just now", "1 hour ago", "3 weeks ago".
func (s Span) String() string {
	switch s.Unit {
	case UnitJustNow:
		return "just now"
	case UnitToday:
		return "today"
	}
	word := string(s.Unit)
	if s.Count != 1 {
		word += "s"
	}
	return fmt.Sprintf("%d %s ago", s.Count, word)
}

// floorDiv divides d by unit rounding toward negative infinity.
func floorDiv(d, unit time.Duration) int {
	q := d / unit
	if d < 0 && d%unit != 0 {
		q--
	}
	return int(q)
}

// DaysSince returns the whole days elapsed between t and now. ok is false
// when t is nil.
func DaysSince(t *time.Time, now time.Time) (days int, ok bool) {
	if t == nil {
		return 0, false
	}
	return floorDiv(now.Sub(*t), day), true
}

// Elapsed buckets the time since t: under a minute is just now, then
// minutes below an hour, hours below a day, days below a week, weeks below
// 30 days and months (30-day blocks) after that.
func Elapsed(t, now time.Time) Span {
	diff := now.Sub(t)

	minutes := floorDiv(diff, time.Minute)
	if minutes < 1 {
		return Span{Unit: UnitJustNow}
	}
	if minutes < 60 {
		return Span{Unit: UnitMinute, Count: minutes}
	}

	hours := floorDiv(diff, time.Hour)
	if hours < 24 {
		return Span{Unit: UnitHour, Count: hours}
	}

	days := floorDiv(diff, day)
	if days < 7 {
		return Span{Unit: UnitDay, Count: days}
	}
	if days < 30 {
		return Span{Unit: UnitWeek, Count: days / 7}
	}
	return Span{Unit: UnitMonth, Count: days / 30}
}

// HumanizeElapsed renders Elapsed in English, or "never" for a nil time.
func HumanizeElapsed(t *time.Time, now time.Time) string {
	if t == nil {
		return "never"
	}
	return Elapsed(*t, now).String()
}

// TimelineSpan is the coarser label used on the photo timeline: today,
// days below 30, then months.
func TimelineSpan(t, now time.Time) Span {
	days := floorDiv(now.Sub(t), day)
	switch {
	case days <= 0:
		return Span{Unit: UnitToday}
	case days < 30:
		return Span{Unit: UnitDay, Count: days}
	default:
		return Span{Unit: UnitMonth, Count: days / 30}
	}
}
