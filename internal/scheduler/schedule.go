// Package scheduler turns validated tasks into day-level schedules: a
// forward walk over the assignee's working calendar for the plan, and a
// reconciliation pass against the recorded outcome for completed work.
package scheduler

import (
	"math"
	"time"

	"github.com/alexanderramin/workplan/internal/calendar"
	"github.com/alexanderramin/workplan/internal/domain"
)

// Schedule is the derived timing of one task.
//
// PlannedDays is the schedule as first computed and is never modified
// afterwards; Days and Allocations start as a copy of it and are trimmed
// or extended when a completed task's actual end disagrees with the plan.
// Capacity math reads Days; variance math reads the counts.
type Schedule struct {
	Start time.Time
	End   time.Time

	PlannedDays  []time.Time
	PlannedCount int

	Days        []time.Time
	Allocations map[time.Time]float64

	// ActualEnd is set only for completed tasks with a recorded end date,
	// snapped back to a working day and clamped to Start.
	ActualEnd   *time.Time
	ActualCount int
}

// ScheduledTask pairs a task with its computed schedule.
type ScheduledTask struct {
	domain.Task
	Schedule Schedule
}

// EffectiveEnd is the date the task actually occupies the calendar until:
// the recorded actual end for completed tasks, the planned end otherwise.
func (t *ScheduledTask) EffectiveEnd() time.Time {
	if t.Status == domain.StatusComplete && t.Schedule.ActualEnd != nil {
		return *t.Schedule.ActualEnd
	}
	return t.Schedule.End
}

// Variance is the actual working-day count minus the planned one: negative
// for an early finish, positive for a late one, zero when the task has no
// reconciled outcome.
func (t *ScheduledTask) Variance() int {
	if t.Schedule.ActualEnd == nil {
		return 0
	}
	return t.Schedule.ActualCount - t.Schedule.PlannedCount
}

// Build computes the schedule for a single task against the given
// holiday calendar and the assignee's leave.
func Build(task domain.Task, holidays calendar.DateSet, leave calendar.Leave) ScheduledTask {
	personLeave := leave.For(task.Assignee)

	start := calendar.SnapForward(task.Start, holidays, personLeave)
	sched := walk(start, task.TotalDays, holidays, personLeave)

	st := ScheduledTask{Task: task, Schedule: sched}
	if task.Status == domain.StatusComplete && task.ActualEnd != nil {
		reconcile(&st, holidays, personLeave)
	}
	return st
}

// BuildAll schedules every task in sheet order.
func BuildAll(tasks []domain.Task, holidays calendar.DateSet, leave calendar.Leave) []ScheduledTask {
	out := make([]ScheduledTask, len(tasks))
	for i, t := range tasks {
		out[i] = Build(t, holidays, leave)
	}
	return out
}

// walk consumes totalDays from start, one working day at a time. Each
// working day absorbs at most a full day, so a 2.5-day estimate becomes
// allocations of 1, 1 and 0.5. Non-positive estimates yield an empty
// schedule that starts and ends on the snapped start date.
func walk(start time.Time, totalDays float64, holidays, personLeave calendar.DateSet) Schedule {
	sched := Schedule{
		Start:       start,
		End:         start,
		Allocations: make(map[time.Time]float64),
	}

	remaining := totalDays
	for d := start; remaining > 0; d = d.AddDate(0, 0, 1) {
		if !calendar.IsWorkingDay(d, holidays, personLeave) {
			continue
		}
		alloc := math.Min(remaining, 1.0)
		sched.PlannedDays = append(sched.PlannedDays, d)
		sched.Allocations[d] = alloc
		sched.End = d
		remaining -= alloc
	}

	sched.PlannedCount = len(sched.PlannedDays)
	sched.Days = append([]time.Time(nil), sched.PlannedDays...)
	return sched
}

// reconcile replays a completed task against its recorded end date. The
// raw date snaps back to a working day but never before the start; an
// early finish trims Days and Allocations, a late one extends them with
// whole days up to the actual end.
func reconcile(st *ScheduledTask, holidays, personLeave calendar.DateSet) {
	sched := &st.Schedule

	actual := calendar.SnapBack(*st.Task.ActualEnd, holidays, personLeave)
	if actual.Before(sched.Start) {
		actual = sched.Start
	}
	sched.ActualEnd = &actual
	sched.ActualCount = calendar.CountWorkingDays(sched.Start, actual, holidays, personLeave)

	switch {
	case actual.Before(sched.End):
		trimmed := sched.Days[:0]
		for _, d := range sched.Days {
			if d.After(actual) {
				delete(sched.Allocations, d)
				continue
			}
			trimmed = append(trimmed, d)
		}
		sched.Days = trimmed
	case actual.After(sched.End):
		for d := sched.End.AddDate(0, 0, 1); !d.After(actual); d = d.AddDate(0, 0, 1) {
			if !calendar.IsWorkingDay(d, holidays, personLeave) {
				continue
			}
			sched.Days = append(sched.Days, d)
			sched.Allocations[d] = 1.0
		}
	}
}
