package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/workplan/internal/calendar"
	"github.com/alexanderramin/workplan/internal/domain"
)

func TestSummary_TeamAndCapacityTotals(t *testing.T) {
	out := stripANSI(Summary(fixtureData(t)))

	require.Contains(t, out, "TEAM")
	require.Contains(t, out, "Alice (Lead) — 5 days/week")
	require.Contains(t, out, "Bob (Analyst) — 4 days/week")

	require.Contains(t, out, "CAPACITY")
	require.Contains(t, out, "Alice: 15 allocated / 10 available")
	require.Contains(t, out, "(150%)")
	require.Contains(t, out, "Bob: 3 allocated / 8 available")
}

func TestSummary_PriorityTotalsSkipParkedWork(t *testing.T) {
	out := stripANSI(Summary(fixtureData(t)))

	require.Contains(t, out, "BY PRIORITY")
	require.Contains(t, out, "P1: 2 tasks, 15 days")
	// Ship alone: Parked is On Hold and books nothing.
	require.Contains(t, out, "P2: 1 task, 5 days")
	require.Less(t, strings.Index(out, "P1:"), strings.Index(out, "P2:"))
}

func TestSummary_EstimateDrift(t *testing.T) {
	out := stripANSI(Summary(fixtureData(t)))

	require.Contains(t, out, "ESTIMATE DRIFT")
	require.Contains(t, out, "Build: 8 → 10 days (+2d)")
	require.NotContains(t, out, "Rush: 5")
}

func TestSummary_OverCapacityAndDeadlines(t *testing.T) {
	out := stripANSI(Summary(fixtureData(t)))

	require.Contains(t, out, "OVER CAPACITY")
	require.Contains(t, out, "Alice: 10/5 days in week of 02 Mar")

	require.Contains(t, out, "DEADLINES AT RISK")
	require.Contains(t, out, "Build: ends 13 Mar, deadline 06 Mar (5 working days late)")
}

func TestSummary_QuietSectionsAreOmitted(t *testing.T) {
	out := stripANSI(Summary(fixtureData(t)))

	require.NotContains(t, out, "LOW CONFIDENCE")
	require.NotContains(t, out, "BUSY WEEKS")
	require.NotContains(t, out, "PUBLIC HOLIDAYS")
	require.NotContains(t, out, "LEAVE")
}

func TestSummary_CalendarAndConfidenceSections(t *testing.T) {
	plan := fixturePlan()
	plan.Tasks[0].Confidence = domain.ConfidenceLow
	mayDay := calendar.Date(2026, 5, 4)
	plan.Holidays = calendar.NewDateSet(mayDay)
	plan.HolidayNames[mayDay] = "Early May bank holiday"
	plan.LeaveEntries = []domain.LeaveEntry{{
		Person:      "Bob",
		Start:       calendar.Date(2026, 3, 30),
		End:         calendar.Date(2026, 4, 2),
		Type:        domain.LeaveAnnual,
		WorkingDays: 4,
	}}

	out := stripANSI(Summary(New(plan, nil, nil, calendar.Date(2026, 3, 4))))

	require.Contains(t, out, "LOW CONFIDENCE")
	require.Contains(t, out, "Build (Alice, Project A)")
	require.Contains(t, out, "PUBLIC HOLIDAYS")
	require.Contains(t, out, "04 May 2026 — Early May bank holiday")
	require.Contains(t, out, "LEAVE")
	require.Contains(t, out, "Bob: 30 Mar – 02 Apr 2026, Annual Leave (4 working days)")
}

func TestSummary_SingleDayLeaveShowsOneDate(t *testing.T) {
	plan := fixturePlan()
	plan.LeaveEntries = []domain.LeaveEntry{{
		Person:      "Alice",
		Start:       calendar.Date(2026, 3, 11),
		End:         calendar.Date(2026, 3, 11),
		Type:        domain.LeaveSick,
		WorkingDays: 1,
	}}

	out := stripANSI(Summary(New(plan, nil, nil, calendar.Date(2026, 3, 4))))

	require.Contains(t, out, "Alice: 11 Mar 2026, Sick Leave (1 working day)")
	require.NotContains(t, out, "–")
}
