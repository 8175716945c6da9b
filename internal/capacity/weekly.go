package capacity

import (
	"time"

	"github.com/alexanderramin/workplan/internal/calendar"
	"github.com/alexanderramin/workplan/internal/domain"
	"github.com/alexanderramin/workplan/internal/scheduler"
)

// Weekly buckets the schedule into Monday-keyed weeks.
func Weekly(tasks []scheduler.ScheduledTask, team []domain.Person, holidays calendar.DateSet, leave calendar.Leave) *Report {
	lo, hi, ok := span(tasks)
	if !ok {
		return &Report{}
	}

	weeks := calendar.WeeksBetween(lo, hi)
	r := &Report{
		Periods:   weeks,
		Allocated: grid(weeks, team),
		Available: grid(weeks, team),
	}

	fold(tasks, r.Allocated, calendar.WeekStart)

	for _, week := range weeks {
		for _, member := range team {
			r.Available[week][member.Name] = weekAvailability(week, member, holidays, leave.For(member.Name))
		}
	}
	return r
}

// weekAvailability is the person's workable days in one week: their
// weekly fraction applied to the week's non-holiday weekdays, minus the
// same fraction of any leave days among them.
func weekAvailability(week time.Time, member domain.Person, holidays, personLeave calendar.DateSet) float64 {
	workable, onLeave := 0, 0
	for i := 0; i < 5; i++ {
		d := week.AddDate(0, 0, i)
		if holidays.Has(d) {
			continue
		}
		workable++
		if personLeave.Has(d) {
			onLeave++
		}
	}
	f := member.WeeklyFraction()
	return f*float64(workable) - f*float64(onLeave)
}
