package render

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/workplan/internal/calendar"
	"github.com/alexanderramin/workplan/internal/domain"
)

// ansiPattern matches ANSI escape sequences for stripping before assertions.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// stripANSI removes ANSI escape codes so assertions are terminal-independent.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := calendar.Date(y, m, d)
	return &t
}

// fixturePlan is a small plan with one of everything the renderers
// draw: an overbooked week, a deadline at risk, an early finish, and a
// parked task with a named blocker.
func fixturePlan() *domain.Plan {
	return &domain.Plan{
		Team: []domain.Person{
			{Name: "Alice", Role: "Lead", DaysPerWeek: 5},
			{Name: "Bob", Role: "Analyst", DaysPerWeek: 4},
		},
		Streams: []domain.Workstream{
			{Name: "Project A", Color: "#00BCD4", Priority: domain.PriorityP1},
			{Name: "Project B", Color: "#4CAF50", Priority: domain.PriorityP2},
		},
		Tasks: []domain.Task{
			{
				Name: "Build", Workstream: "Project A", Assignee: "Alice",
				Start: calendar.Date(2026, 3, 2), TotalDays: 10, OriginalDays: 8,
				Status: domain.StatusInProgress, Priority: domain.PriorityP1,
				Deadline: datePtr(2026, 3, 6), Confidence: domain.ConfidenceMedium,
			},
			{
				Name: "Rush", Workstream: "Project A", Assignee: "Alice",
				Start: calendar.Date(2026, 3, 2), TotalDays: 5, OriginalDays: 5,
				Status: domain.StatusPlanned, Priority: domain.PriorityP1,
			},
			{
				Name: "Ship", Workstream: "Project B", Assignee: "Bob",
				Start: calendar.Date(2026, 3, 2), TotalDays: 5, OriginalDays: 5,
				Status: domain.StatusComplete, Priority: domain.PriorityP2,
				ActualEnd: datePtr(2026, 3, 4),
			},
			{
				Name: "Parked", Workstream: "Project B", Assignee: "Alice",
				Start: calendar.Date(2026, 3, 2), TotalDays: 5, OriginalDays: 5,
				Status: domain.StatusOnHold, Priority: domain.PriorityP2,
				BlockedBy: "legal review",
			},
		},
		Holidays:     calendar.DateSet{},
		HolidayNames: map[time.Time]string{},
		Leave:        calendar.Leave{},
	}
}

func fixtureData(t *testing.T) *Data {
	t.Helper()
	return New(fixturePlan(), nil, nil, calendar.Date(2026, 3, 4))
}

// lineWith returns the first output line containing substr.
func lineWith(t *testing.T, out, substr string) string {
	t.Helper()
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, substr) {
			return line
		}
	}
	t.Fatalf("no line containing %q in:\n%s", substr, out)
	return ""
}

func TestNew_WindowDropsTasksByEffectiveEnd(t *testing.T) {
	from := calendar.Date(2026, 3, 9)
	d := New(fixturePlan(), &from, nil, calendar.Date(2026, 3, 4))

	names := make([]string, 0, len(d.Tasks))
	for i := range d.Tasks {
		names = append(names, d.Tasks[i].Name)
	}
	require.NotContains(t, names, "Ship", "completed Mar 4, out of a window starting Mar 9")
	require.Contains(t, names, "Build")
}

func TestGantt_GroupsTasksUnderStreams(t *testing.T) {
	out := stripANSI(Gantt(fixtureData(t)))

	streamA := strings.Index(out, "Project A")
	build := strings.Index(out, "Build")
	streamB := strings.Index(out, "Project B")
	ship := strings.Index(out, "Ship")

	require.True(t, streamA >= 0 && build > streamA, "Build listed under Project A")
	require.True(t, streamB > build && ship > streamB, "Ship listed under Project B")
}

func TestGantt_ShowsWeekAxisAndTodayMarker(t *testing.T) {
	out := stripANSI(Gantt(fixtureData(t)))

	require.Contains(t, out, "02/03")
	require.Contains(t, out, "09/03")
	require.Contains(t, out, "Mar")
	require.Contains(t, out, "▼")
	require.Contains(t, out, "today")
}

func TestGantt_VarianceLabelOnCompletedTask(t *testing.T) {
	out := stripANSI(Gantt(fixtureData(t)))

	require.Contains(t, lineWith(t, out, "Ship"), "-2d early")
}

func TestGantt_ConfidenceDotOnlyOnOpenTasks(t *testing.T) {
	out := stripANSI(Gantt(fixtureData(t)))

	require.Contains(t, lineWith(t, out, "Build"), "●")
	require.NotContains(t, lineWith(t, out, "Ship"), "●")
	require.NotContains(t, lineWith(t, out, "Parked"), "●")
}

func TestGantt_ParkedTaskRendersHollow(t *testing.T) {
	out := stripANSI(Gantt(fixtureData(t)))

	parked := lineWith(t, out, "Parked")
	require.Contains(t, parked, "░")
	require.Contains(t, parked, "on hold")
	require.NotContains(t, parked, "█")
}

func TestGantt_EmptyWindow(t *testing.T) {
	plan := fixturePlan()
	plan.Tasks = nil
	out := stripANSI(Gantt(New(plan, nil, nil, calendar.Date(2026, 3, 4))))

	require.Contains(t, out, "No tasks in the selected window.")
}

func TestRoadmap_OneRowPerStreamWithCounts(t *testing.T) {
	out := stripANSI(Roadmap(fixtureData(t)))

	require.Contains(t, lineWith(t, out, "Project A"), "2 tasks")
	lineB := lineWith(t, out, "Project B")
	require.Contains(t, lineB, "2 tasks")
	require.Contains(t, lineB, "1 blocked task")
	require.Contains(t, lineB, "█")
}
