// Package timeutil provides calendar-day and ISO-week boundary helpers.
package timeutil

import (
	"fmt"
	"time"
)

// StartOfDay returns midnight (00:00:00) of the given day in the same timezone.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last second of the given day (23:59:59).
// The log resolution is whole minutes, so sub-second precision is irrelevant.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).Add(24*time.Hour - time.Second)
}

// DayRange returns the inclusive [begin, end] bounds of t's calendar day.
func DayRange(t time.Time) (begin, end time.Time) {
	return StartOfDay(t), EndOfDay(t)
}

// StartOfISOWeek returns Monday 00:00:00 of the ISO week containing t.
// Handles the Sunday edge case where Go's Weekday() returns 0.
func StartOfISOWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 { // Sunday
		weekday = 7
	}
	return StartOfDay(t).AddDate(0, 0, -(weekday - 1))
}

// ISOWeekRange returns the inclusive bounds of the ISO week containing t:
// Monday 00:00:00 through Sunday 23:59:59. Plain date arithmetic, so week 52/53
// and year-end rollovers need no special casing.
func ISOWeekRange(t time.Time) (begin, end time.Time) {
	begin = StartOfISOWeek(t)
	end = begin.AddDate(0, 0, 7).Add(-time.Second)
	return begin, end
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// DayHeader renders a report header for one day, e.g.
// "Friday, 2022-06-10 (week 23)".
func DayHeader(t time.Time) string {
	_, week := t.ISOWeek()
	return fmt.Sprintf("%s (week %d)", t.Format("Monday, 2006-01-02"), week)
}

// WeekHeader renders a report header for one ISO week, e.g.
// "2022, week 23 (June 6-12)". The month name is repeated when the week spans
// a month boundary.
func WeekHeader(t time.Time) string {
	begin := StartOfISOWeek(t)
	end := begin.AddDate(0, 0, 6)
	year, week := t.ISOWeek()

	var span string
	if begin.Month() == end.Month() {
		span = fmt.Sprintf("%s %d-%d", begin.Format("January"), begin.Day(), end.Day())
	} else {
		span = fmt.Sprintf("%s %d - %s %d", begin.Format("January"), begin.Day(), end.Format("January"), end.Day())
	}
	return fmt.Sprintf("%d, week %d (%s)", year, week, span)
}
