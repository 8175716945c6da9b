// Package calendar provides working-day arithmetic over a Monday-to-Friday
// week, with public holidays and per-person leave carved out.
//
// All dates are normalized to midnight UTC. Callers are expected to pass
// normalized dates; every constructor here returns them.
package calendar

import (
	"sort"
	"time"
)

// Date builds a normalized date.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Normalize truncates a timestamp to midnight UTC, discarding any
// time-of-day and zone information the source carried.
func Normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DateSet is a set of normalized dates.
type DateSet map[time.Time]bool

// NewDateSet builds a set from the given dates, normalizing each.
func NewDateSet(dates ...time.Time) DateSet {
	s := make(DateSet, len(dates))
	for _, d := range dates {
		s[Normalize(d)] = true
	}
	return s
}

func (s DateSet) Has(d time.Time) bool { return s[Normalize(d)] }

func (s DateSet) Add(d time.Time) { s[Normalize(d)] = true }

// Sorted returns the set's dates in ascending order.
func (s DateSet) Sorted() []time.Time {
	out := make([]time.Time, 0, len(s))
	for d := range s {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// Leave maps a person's name to the working days they are away.
type Leave map[string]DateSet

// For returns the person's leave set. The zero value is usable: a person
// with no recorded leave gets a nil set, and lookups on it report false.
func (l Leave) For(person string) DateSet { return l[person] }

// IsWeekend reports whether d falls on Saturday or Sunday.
func IsWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsWorkingDay reports whether d is a weekday that is neither a public
// holiday nor in the given leave set.
func IsWorkingDay(d time.Time, holidays, leave DateSet) bool {
	if IsWeekend(d) {
		return false
	}
	if holidays.Has(d) || leave.Has(d) {
		return false
	}
	return true
}

// SnapForward returns d if it is a working day, otherwise the next
// working day after it.
func SnapForward(d time.Time, holidays, leave DateSet) time.Time {
	d = Normalize(d)
	for !IsWorkingDay(d, holidays, leave) {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// SnapBack returns d if it is a working day, otherwise the nearest
// working day before it.
func SnapBack(d time.Time, holidays, leave DateSet) time.Time {
	d = Normalize(d)
	for !IsWorkingDay(d, holidays, leave) {
		d = d.AddDate(0, 0, -1)
	}
	return d
}

// CountWorkingDays counts working days in the inclusive range [start, end].
// An inverted range counts as zero. A day that is both a holiday and a
// leave day is still only excluded once.
func CountWorkingDays(start, end time.Time, holidays, leave DateSet) int {
	start, end = Normalize(start), Normalize(end)
	n := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if IsWorkingDay(d, holidays, leave) {
			n++
		}
	}
	return n
}

// WorkingDaysInMonth counts the weekdays of a month that are not public
// holidays. Personal leave is deliberately not part of this figure; it is
// subtracted per person by the capacity layer.
func WorkingDaysInMonth(year int, month time.Month, holidays DateSet) int {
	first := Date(year, month, 1)
	next := first.AddDate(0, 1, 0)
	n := 0
	for d := first; d.Before(next); d = d.AddDate(0, 0, 1) {
		if !IsWeekend(d) && !holidays.Has(d) {
			n++
		}
	}
	return n
}

// WeekStart returns the Monday of the week containing d.
func WeekStart(d time.Time) time.Time {
	d = Normalize(d)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}

// MonthStart returns the first day of the month containing d.
func MonthStart(d time.Time) time.Time {
	return Date(d.Year(), d.Month(), 1)
}

// WeeksBetween returns the Monday of every week from the week containing
// start through the week containing end, inclusive.
func WeeksBetween(start, end time.Time) []time.Time {
	var weeks []time.Time
	for w := WeekStart(start); !w.After(WeekStart(end)); w = w.AddDate(0, 0, 7) {
		weeks = append(weeks, w)
	}
	return weeks
}

// MonthsBetween returns the first of every month from the month containing
// start through the month containing end, inclusive.
func MonthsBetween(start, end time.Time) []time.Time {
	var months []time.Time
	for m := MonthStart(start); !m.After(MonthStart(end)); m = m.AddDate(0, 1, 0) {
		months = append(months, m)
	}
	return months
}
