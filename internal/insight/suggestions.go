package insight

import (
	"sort"

	"github.com/alexanderramin/workplan/internal/calendar"
	"github.com/alexanderramin/workplan/internal/domain"
)

// overdueTasks lists In Progress work whose planned end has slipped past
// today, with the overrun in the assignee's working days.
func overdueTasks(in Inputs) []Overdue {
	now := calendar.Normalize(in.Now)
	var out []Overdue
	for i := range in.Tasks {
		t := in.Tasks[i]
		if t.Status != domain.StatusInProgress || !t.Schedule.End.Before(now) {
			continue
		}
		days := calendar.CountWorkingDays(
			t.Schedule.End.AddDate(0, 0, 1), now,
			in.Holidays, in.Leave.For(t.Assignee),
		)
		out = append(out, Overdue{Task: t, DaysOverdue: days})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Task.Schedule.End.Before(out[j].Task.Schedule.End)
	})
	return out
}

// blockedTasks reports parked and blocked work. On Hold tasks carry an
// elapsed blocked duration from their start to today, uncapped; an open
// task with a named blocker is listed with the reason alone.
func blockedTasks(in Inputs) []Blocked {
	now := calendar.Normalize(in.Now)
	var out []Blocked
	for i := range in.Tasks {
		t := in.Tasks[i]
		if !t.Blocked() {
			continue
		}
		b := Blocked{Task: t, Reason: t.BlockedBy}
		if t.Status == domain.StatusOnHold {
			b.DaysBlocked = calendar.CountWorkingDays(
				t.Schedule.Start, now,
				in.Holidays, in.Leave.For(t.Assignee),
			)
		}
		out = append(out, b)
	}
	return out
}

// reallocations pairs each early finish with the assignee's next open
// task: the slack is working days the plan reserved but never used.
func reallocations(in Inputs) []Reallocation {
	var out []Reallocation
	for i := range in.Tasks {
		done := in.Tasks[i]
		if done.Status != domain.StatusComplete || done.Variance() >= 0 {
			continue
		}

		next := -1
		for j := range in.Tasks {
			t := &in.Tasks[j]
			if t.Assignee != done.Assignee || !t.Status.Open() {
				continue
			}
			if t.Schedule.Start.Before(*done.Schedule.ActualEnd) {
				continue
			}
			if next < 0 || t.Schedule.Start.Before(in.Tasks[next].Schedule.Start) {
				next = j
			}
		}
		if next < 0 {
			continue
		}
		out = append(out, Reallocation{
			Completed: done,
			Next:      in.Tasks[next],
			SlackDays: -done.Variance(),
		})
	}
	return out
}

// spareWeeks lists future weeks with at least spareThresholdDays of free
// capacity, capped at maxSpareEntries with the rest counted.
func spareWeeks(in Inputs) ([]SpareWeek, int) {
	var out []SpareWeek
	overflow := 0
	if in.Weekly == nil {
		return out, overflow
	}
	currentWeek := calendar.WeekStart(in.Now)
	for _, week := range in.Weekly.Periods {
		if !week.After(currentWeek) {
			continue
		}
		for _, member := range in.Team {
			spare := in.Weekly.AvailableTo(week, member.Name) - in.Weekly.AllocatedTo(week, member.Name)
			if spare < spareThresholdDays {
				continue
			}
			if len(out) >= maxSpareEntries {
				overflow++
				continue
			}
			out = append(out, SpareWeek{Week: week, Person: member.Name, SpareDays: spare})
		}
	}
	return out, overflow
}
