// Package capacity folds day-level schedules into per-person utilization
// buckets, weekly and monthly, and compares them against what each person
// can actually work once part-time fractions, holidays and leave are out.
package capacity

import (
	"time"

	"github.com/alexanderramin/workplan/internal/domain"
	"github.com/alexanderramin/workplan/internal/scheduler"
)

// Report holds one bucketing of the plan: allocated days and available
// days per period per person. Periods are week Mondays or month firsts,
// ascending.
type Report struct {
	Periods   []time.Time
	Allocated map[time.Time]map[string]float64
	Available map[time.Time]map[string]float64
}

// Empty reports whether no task occupies any day at all.
func (r *Report) Empty() bool { return len(r.Periods) == 0 }

// AllocatedTo returns the days booked against a person in a period.
func (r *Report) AllocatedTo(period time.Time, person string) float64 {
	return r.Allocated[period][person]
}

// AvailableTo returns the days a person can work in a period.
func (r *Report) AvailableTo(period time.Time, person string) float64 {
	return r.Available[period][person]
}

// TotalAllocated sums a person's booked days across all periods.
func (r *Report) TotalAllocated(person string) float64 {
	var sum float64
	for _, p := range r.Periods {
		sum += r.Allocated[p][person]
	}
	return sum
}

// TotalAvailable sums a person's workable days across all periods.
func (r *Report) TotalAvailable(person string) float64 {
	var sum float64
	for _, p := range r.Periods {
		sum += r.Available[p][person]
	}
	return sum
}

// span returns the first and last occupied day across all schedules.
// Every task extends the range, parked ones included, so the timeline
// always covers what the charts draw.
func span(tasks []scheduler.ScheduledTask) (time.Time, time.Time, bool) {
	var lo, hi time.Time
	found := false
	for i := range tasks {
		for _, d := range tasks[i].Schedule.Days {
			if !found {
				lo, hi = d, d
				found = true
				continue
			}
			if d.Before(lo) {
				lo = d
			}
			if d.After(hi) {
				hi = d
			}
		}
	}
	return lo, hi, found
}

// grid builds the zeroed period×person matrix.
func grid(periods []time.Time, team []domain.Person) map[time.Time]map[string]float64 {
	m := make(map[time.Time]map[string]float64, len(periods))
	for _, p := range periods {
		row := make(map[string]float64, len(team))
		for _, member := range team {
			row[member.Name] = 0
		}
		m[p] = row
	}
	return m
}

// fold adds every allocatable task's day allocations into the matrix.
// On Hold work shapes the timeline but books no days; assignees not on
// the roster are skipped, validation has already reported them.
func fold(tasks []scheduler.ScheduledTask, alloc map[time.Time]map[string]float64, periodOf func(time.Time) time.Time) {
	for i := range tasks {
		t := &tasks[i]
		if !t.Status.Allocatable() {
			continue
		}
		for d, frac := range t.Schedule.Allocations {
			row, ok := alloc[periodOf(d)]
			if !ok {
				continue
			}
			if _, known := row[t.Assignee]; !known {
				continue
			}
			row[t.Assignee] += frac
		}
	}
}
