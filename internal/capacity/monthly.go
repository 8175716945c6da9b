package capacity

import (
	"time"

	"github.com/alexanderramin/workplan/internal/calendar"
	"github.com/alexanderramin/workplan/internal/domain"
	"github.com/alexanderramin/workplan/internal/scheduler"
)

// Monthly buckets the schedule into calendar months keyed by their first day.
func Monthly(tasks []scheduler.ScheduledTask, team []domain.Person, holidays calendar.DateSet, leave calendar.Leave) *Report {
	lo, hi, ok := span(tasks)
	if !ok {
		return &Report{}
	}

	months := calendar.MonthsBetween(lo, hi)
	r := &Report{
		Periods:   months,
		Allocated: grid(months, team),
		Available: grid(months, team),
	}

	fold(tasks, r.Allocated, calendar.MonthStart)

	for _, month := range months {
		for _, member := range team {
			r.Available[month][member.Name] = monthAvailability(month, member, holidays, leave.For(member.Name))
		}
	}
	return r
}

// monthAvailability mirrors weekAvailability at month granularity. A
// part-timer at 3 days a week in a 22-working-day month gets 13.2 days,
// before leave comes off at the same fraction.
func monthAvailability(month time.Time, member domain.Person, holidays, personLeave calendar.DateSet) float64 {
	workable := calendar.WorkingDaysInMonth(month.Year(), month.Month(), holidays)

	onLeave := 0
	next := month.AddDate(0, 1, 0)
	for d := range personLeave {
		if !d.Before(month) && d.Before(next) {
			onLeave++
		}
	}

	f := member.WeeklyFraction()
	return f*float64(workable) - f*float64(onLeave)
}
