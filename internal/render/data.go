package render

import (
	"fmt"
	"time"

	"github.com/alexanderramin/workplan/internal/capacity"
	"github.com/alexanderramin/workplan/internal/domain"
	"github.com/alexanderramin/workplan/internal/insight"
	"github.com/alexanderramin/workplan/internal/scheduler"
)

// Data bundles everything the renderers draw from: the scheduled tasks
// (already window-filtered), the plan they came from, and the derived
// capacity and diagnostic layers. It is assembled once per run and read
// by every output.
type Data struct {
	Plan     *domain.Plan
	Tasks    []scheduler.ScheduledTask
	Weekly   *capacity.Report
	Monthly  *capacity.Report
	Spans    []capacity.StreamSpan
	Findings *insight.Findings
	Now      time.Time
}

// New derives the full render bundle from a validated plan. Window
// bounds may be nil; they restrict which tasks the outputs draw, while
// capacity and diagnostics are computed over the kept tasks only so
// every view of one run agrees.
func New(plan *domain.Plan, from, to *time.Time, now time.Time) *Data {
	tasks := scheduler.BuildAll(plan.Tasks, plan.Holidays, plan.Leave)
	tasks = scheduler.FilterWindow(tasks, from, to)

	weekly := capacity.Weekly(tasks, plan.Team, plan.Holidays, plan.Leave)
	monthly := capacity.Monthly(tasks, plan.Team, plan.Holidays, plan.Leave)

	findings := insight.Analyze(insight.Inputs{
		Tasks:    tasks,
		Team:     plan.Team,
		Weekly:   weekly,
		Holidays: plan.Holidays,
		Leave:    plan.Leave,
		Now:      now,
	})

	return &Data{
		Plan:     plan,
		Tasks:    tasks,
		Weekly:   weekly,
		Monthly:  monthly,
		Spans:    capacity.Rollup(tasks, plan.Streams),
		Findings: findings,
		Now:      now,
	}
}

// day formats a date for summary lines.
func day(t time.Time) string { return t.Format("02 Jan") }

// dayYear formats a date with its year for lines that span far ranges.
func dayYear(t time.Time) string { return t.Format("02 Jan 2006") }

// formatDays renders a day quantity without trailing zeros: 5, 2.5, 13.2.
func formatDays(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%.1f", f)
}

// plural appends "s" for counts other than one.
func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
