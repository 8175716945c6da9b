package render

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTasksTable_ListsEffectiveDates(t *testing.T) {
	out := TasksTable(fixtureData(t))

	// go-pretty renders header cells uppercase.
	require.Contains(t, out, "TASK")
	require.Contains(t, out, "WORKSTREAM")
	build := lineWith(t, out, "Build")
	require.Contains(t, build, "2026-03-02")
	require.Contains(t, build, "2026-03-13")
	// Ship completed two days early; the table shows the recorded end.
	require.Contains(t, lineWith(t, out, "Ship"), "2026-03-04")
	require.NotContains(t, out, "\x1b")
}

func TestWeeklyTable_PeriodColumns(t *testing.T) {
	out := WeeklyTable(fixtureData(t))

	require.Contains(t, out, "02/03")
	require.Contains(t, out, "09/03")
	require.Contains(t, lineWith(t, out, "Alice"), "10/5")
	require.Contains(t, lineWith(t, out, "Bob"), "3/4")
}

func TestMonthlyTable_PeriodColumns(t *testing.T) {
	out := MonthlyTable(fixtureData(t))

	require.Contains(t, out, "MAR 26")
	require.Contains(t, lineWith(t, out, "Alice"), "15/22")
}

func TestRoadmapTable_StreamRollup(t *testing.T) {
	out := RoadmapTable(fixtureData(t))

	require.Contains(t, out, "WORKSTREAM")
	lineB := lineWith(t, out, "Project B")
	require.Contains(t, lineB, "P2")
	require.Contains(t, lineB, "2026-03-02")
	require.Contains(t, lineB, "2")
	require.Contains(t, lineB, "1")
}
