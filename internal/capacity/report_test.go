package capacity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/workplan/internal/calendar"
	"github.com/alexanderramin/workplan/internal/domain"
	"github.com/alexanderramin/workplan/internal/scheduler"
)

func day(y int, m time.Month, d int) time.Time { return calendar.Date(y, m, d) }

func alice() domain.Person { return domain.Person{Name: "Alice", Role: "Lead", DaysPerWeek: 5} }

func sched(t domain.Task, holidays calendar.DateSet, leave calendar.Leave) []scheduler.ScheduledTask {
	return scheduler.BuildAll([]domain.Task{t}, holidays, leave)
}

func planned(name string, start time.Time, days float64) domain.Task {
	return domain.Task{
		Name: name, Workstream: "WS", Assignee: "Alice",
		Start: start, TotalDays: days, Status: domain.StatusPlanned,
	}
}

func TestWeekly_SingleTaskSingleWeek(t *testing.T) {
	r := Weekly(sched(planned("t", day(2026, 3, 2), 5), nil, nil), []domain.Person{alice()}, nil, nil)

	require.Equal(t, []time.Time{day(2026, 3, 2)}, r.Periods)
	assert.Equal(t, 5.0, r.AllocatedTo(day(2026, 3, 2), "Alice"))
	assert.Equal(t, 5.0, r.AvailableTo(day(2026, 3, 2), "Alice"))
}

func TestWeekly_FractionalAllocation(t *testing.T) {
	r := Weekly(sched(planned("t", day(2026, 3, 2), 0.5), nil, nil), []domain.Person{alice()}, nil, nil)

	assert.Equal(t, 0.5, r.AllocatedTo(day(2026, 3, 2), "Alice"))
}

func TestWeekly_OnHoldShapesTimelineButBooksNothing(t *testing.T) {
	active := planned("active", day(2026, 3, 2), 5)
	active.Status = domain.StatusInProgress
	parked := planned("parked", day(2026, 3, 2), 10)
	parked.Status = domain.StatusOnHold

	tasks := scheduler.BuildAll([]domain.Task{active, parked}, nil, nil)
	r := Weekly(tasks, []domain.Person{alice()}, nil, nil)

	require.Equal(t, []time.Time{day(2026, 3, 2), day(2026, 3, 9)}, r.Periods,
		"the parked task still stretches the timeline")
	assert.Equal(t, 5.0, r.TotalAllocated("Alice"), "only active work books days")
	assert.Equal(t, 0.0, r.AllocatedTo(day(2026, 3, 9), "Alice"))
}

func TestWeekly_EarlyFinishFreesLaterWeeks(t *testing.T) {
	tk := planned("early", day(2026, 3, 2), 10)
	tk.Status = domain.StatusComplete
	actual := day(2026, 3, 6)
	tk.ActualEnd = &actual

	r := Weekly(sched(tk, nil, nil), []domain.Person{alice()}, nil, nil)

	assert.Equal(t, 0.0, r.AllocatedTo(day(2026, 3, 9), "Alice"),
		"no booking past the actual end")
	assert.Equal(t, 5.0, r.TotalAllocated("Alice"))
}

func TestWeekly_LateFinishKeepsBookingUntilActualEnd(t *testing.T) {
	tk := planned("late", day(2026, 3, 2), 5)
	tk.Status = domain.StatusComplete
	actual := day(2026, 3, 20)
	tk.ActualEnd = &actual

	r := Weekly(sched(tk, nil, nil), []domain.Person{alice()}, nil, nil)

	require.Contains(t, r.Periods, day(2026, 3, 16), "timeline covers the late tail")
	assert.Greater(t, r.AllocatedTo(day(2026, 3, 9), "Alice"), 0.0)
	assert.Greater(t, r.AllocatedTo(day(2026, 3, 16), "Alice"), 0.0)
	assert.Equal(t, 15.0, r.TotalAllocated("Alice"))
}

func TestWeekly_UnknownAssigneeSkipped(t *testing.T) {
	tk := planned("ghost", day(2026, 3, 2), 5)
	tk.Assignee = "Nobody"

	r := Weekly(sched(tk, nil, nil), []domain.Person{alice()}, nil, nil)

	assert.Equal(t, 0.0, r.TotalAllocated("Alice"))
	assert.Equal(t, 0.0, r.TotalAllocated("Nobody"))
}

func TestWeekly_AvailabilityLosesHolidaysAndLeave(t *testing.T) {
	holidays := calendar.NewDateSet(day(2026, 3, 4))
	leave := calendar.Leave{"Alice": calendar.NewDateSet(day(2026, 3, 5), day(2026, 3, 6))}

	r := Weekly(sched(planned("t", day(2026, 3, 2), 5), holidays, leave), []domain.Person{alice()}, holidays, leave)

	// 4 workable days after the holiday, minus 2 on leave.
	assert.InDelta(t, 2.0, r.AvailableTo(day(2026, 3, 2), "Alice"), 1e-9)
}

func TestWeekly_PartTimerAvailability(t *testing.T) {
	bob := domain.Person{Name: "Bob", Role: "Analyst", DaysPerWeek: 3}
	tk := planned("t", day(2026, 3, 2), 5)

	r := Weekly(sched(tk, nil, nil), []domain.Person{bob}, nil, nil)

	assert.InDelta(t, 3.0, r.AvailableTo(day(2026, 3, 2), "Bob"), 1e-9)
}

func TestWeekly_EmptyPlan(t *testing.T) {
	r := Weekly(nil, []domain.Person{alice()}, nil, nil)

	assert.True(t, r.Empty())
	assert.Empty(t, r.Periods)
}

func TestMonthly_PartTimerInTwentyTwoDayMonth(t *testing.T) {
	bob := domain.Person{Name: "Bob", Role: "Analyst", DaysPerWeek: 3}
	tk := planned("t", day(2026, 3, 2), 5)
	tk.Assignee = "Bob"

	r := Monthly(sched(tk, nil, nil), []domain.Person{bob}, nil, nil)

	// March 2026 has 22 working days; 3/5 of them is 13.2.
	assert.InDelta(t, 13.2, r.AvailableTo(day(2026, 3, 1), "Bob"), 1e-9)
}

func TestMonthly_LateTailLandsInMonth(t *testing.T) {
	tk := planned("late", day(2026, 3, 2), 5)
	tk.Status = domain.StatusComplete
	actual := day(2026, 3, 20)
	tk.ActualEnd = &actual

	r := Monthly(sched(tk, nil, nil), []domain.Person{alice()}, nil, nil)

	require.Equal(t, []time.Time{day(2026, 3, 1)}, r.Periods)
	assert.Greater(t, r.AllocatedTo(day(2026, 3, 1), "Alice"), 5.0)
}

func TestMonthly_SpansMonthBoundary(t *testing.T) {
	// 10 working days from Thu Mar 26 run into April.
	r := Monthly(sched(planned("t", day(2026, 3, 26), 10), nil, nil), []domain.Person{alice()}, nil, nil)

	require.Equal(t, []time.Time{day(2026, 3, 1), day(2026, 4, 1)}, r.Periods)
	assert.Equal(t, 4.0, r.AllocatedTo(day(2026, 3, 1), "Alice"))
	assert.Equal(t, 6.0, r.AllocatedTo(day(2026, 4, 1), "Alice"))
}

func TestMonthly_LeaveReducesAvailability(t *testing.T) {
	leave := calendar.Leave{"Alice": calendar.NewDateSet(day(2026, 3, 3), day(2026, 3, 4))}

	r := Monthly(sched(planned("t", day(2026, 3, 2), 5), nil, leave), []domain.Person{alice()}, nil, leave)

	assert.InDelta(t, 20.0, r.AvailableTo(day(2026, 3, 1), "Alice"), 1e-9)
}

func TestRollup_AggregatesPerStream(t *testing.T) {
	streams := []domain.Workstream{
		{Name: "Alpha", Color: "#FF0000", Priority: domain.PriorityP1},
		{Name: "Beta", Color: "#00FF00", Priority: domain.PriorityP2},
		{Name: "Empty", Color: "#0000FF", Priority: domain.PriorityP3},
	}
	a1 := planned("Task A1", day(2026, 3, 2), 5)
	a1.Workstream = "Alpha"
	a2 := planned("Task A2", day(2026, 3, 9), 3)
	a2.Workstream = "Alpha"
	b1 := planned("Task B1", day(2026, 3, 16), 4)
	b1.Workstream = "Beta"

	spans := Rollup(scheduler.BuildAll([]domain.Task{a1, a2, b1}, nil, nil), streams)

	require.Len(t, spans, 2, "empty stream omitted")
	alpha := spans[0]
	assert.Equal(t, "Alpha", alpha.Stream.Name)
	assert.Equal(t, 2, alpha.TaskCount)
	assert.Equal(t, day(2026, 3, 2), alpha.Start)
	assert.Equal(t, day(2026, 3, 11), alpha.End)
	assert.Len(t, alpha.TaskStarts, 2)
	assert.Empty(t, alpha.BlockedTasks)
}

func TestRollup_EndUsesActualEndForCompleteTasks(t *testing.T) {
	tk := planned("Early Task", day(2026, 3, 2), 20)
	tk.Status = domain.StatusComplete
	actual := day(2026, 3, 13)
	tk.ActualEnd = &actual

	spans := Rollup(sched(tk, nil, nil), []domain.Workstream{{Name: "WS", Priority: domain.PriorityP1}})

	require.Len(t, spans, 1)
	assert.Equal(t, day(2026, 3, 13), spans[0].End)
}

func TestRollup_FlagsBlockedTasks(t *testing.T) {
	parked := planned("Paused Task", day(2026, 3, 2), 5)
	parked.Status = domain.StatusOnHold
	waiting := planned("Blocked Task", day(2026, 3, 9), 3)
	waiting.BlockedBy = "Paused Task"
	free := planned("Free Task", day(2026, 3, 2), 5)

	spans := Rollup(scheduler.BuildAll([]domain.Task{parked, waiting, free}, nil, nil),
		[]domain.Workstream{{Name: "WS", Priority: domain.PriorityP1}})

	require.Len(t, spans, 1)
	assert.ElementsMatch(t, []string{"Paused Task", "Blocked Task"}, spans[0].BlockedTasks)
}
