package insight

import (
	"sort"
	"time"

	"github.com/alexanderramin/workplan/internal/calendar"
	"github.com/alexanderramin/workplan/internal/domain"
	"github.com/alexanderramin/workplan/internal/scheduler"
)

// overCapacity walks the weekly grid in period order and team order, so
// output is stable run to run.
func overCapacity(in Inputs) []OverCapacityWeek {
	var out []OverCapacityWeek
	if in.Weekly == nil {
		return out
	}
	for _, week := range in.Weekly.Periods {
		for _, member := range in.Team {
			alloc := in.Weekly.AllocatedTo(week, member.Name)
			avail := in.Weekly.AvailableTo(week, member.Name)
			if alloc > avail {
				out = append(out, OverCapacityWeek{
					Week: week, Person: member.Name,
					Allocated: alloc, Available: avail,
				})
			}
		}
	}
	return out
}

// priorityTotals sums demand per priority label. On Hold work is parked
// and counts nowhere; completed work still counts at its full estimate,
// the days were spent either way.
func priorityTotals(tasks []scheduler.ScheduledTask) []PriorityTotal {
	byLabel := make(map[domain.Priority]*PriorityTotal)
	for i := range tasks {
		t := &tasks[i]
		if !t.Status.Allocatable() {
			continue
		}
		pt, ok := byLabel[t.Priority]
		if !ok {
			pt = &PriorityTotal{Priority: t.Priority}
			byLabel[t.Priority] = pt
		}
		pt.TaskCount++
		pt.TotalDays += t.TotalDays
	}

	out := make([]PriorityTotal, 0, len(byLabel))
	for _, pt := range byLabel {
		out = append(out, *pt)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Priority.Rank() != out[j].Priority.Rank() {
			return out[i].Priority.Rank() < out[j].Priority.Rank()
		}
		return out[i].Priority < out[j].Priority
	})
	return out
}

// lowConfidence lists open tasks flagged Low. Completed tasks are out —
// the outcome is known — and so is parked work.
func lowConfidence(tasks []scheduler.ScheduledTask) []scheduler.ScheduledTask {
	var out []scheduler.ScheduledTask
	for i := range tasks {
		if tasks[i].Confidence == domain.ConfidenceLow && tasks[i].Status.Open() {
			out = append(out, tasks[i])
		}
	}
	return out
}

// deadlineRisks compares each dated task's effective end against its
// deadline. Completed tasks are judged on their recorded end, so a late
// finish stays visible; On Hold tasks have no meaningful end to judge.
func deadlineRisks(in Inputs) []DeadlineRisk {
	var out []DeadlineRisk
	for i := range in.Tasks {
		t := in.Tasks[i]
		if t.Deadline == nil || t.Status == domain.StatusOnHold {
			continue
		}
		end := t.EffectiveEnd()
		if !end.After(*t.Deadline) {
			continue
		}
		late := calendar.CountWorkingDays(
			t.Deadline.AddDate(0, 0, 1), end,
			in.Holidays, in.Leave.For(t.Assignee),
		)
		out = append(out, DeadlineRisk{Task: t, End: end, Deadline: *t.Deadline, DaysLate: late})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Deadline.Before(out[j].Deadline) })
	return out
}

// concurrentLoads flags any person with three or more open tasks running
// in the same week. Completed tasks never count, even when a late finish
// stretches their occupied days across the week in question.
func concurrentLoads(in Inputs) []ConcurrentLoad {
	var out []ConcurrentLoad
	if in.Weekly == nil {
		return out
	}
	for _, week := range in.Weekly.Periods {
		weekEnd := week.AddDate(0, 0, 4)
		for _, member := range in.Team {
			var names []string
			for i := range in.Tasks {
				t := &in.Tasks[i]
				if t.Assignee != member.Name || !t.Status.Open() {
					continue
				}
				if overlaps(t.Schedule.Start, t.EffectiveEnd(), week, weekEnd) {
					names = append(names, t.Name)
				}
			}
			if len(names) >= 3 {
				out = append(out, ConcurrentLoad{Week: week, Person: member.Name, TaskNames: names})
			}
		}
	}
	return out
}

func overlaps(start, end, lo, hi time.Time) bool {
	return !start.After(hi) && !end.Before(lo)
}
