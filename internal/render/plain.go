package render

import (
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/alexanderramin/workplan/internal/capacity"
)

// Plain renderers: the same numbers as the charts, as tables without
// color or block glyphs, for piping into files and plain terminals.

// TasksTable lists every scheduled task with its computed dates.
func TasksTable(d *Data) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Task", "Workstream", "Assignee", "Status", "Start", "End", "Days"})
	for i := range d.Tasks {
		t := &d.Tasks[i]
		end := t.EffectiveEnd()
		tw.AppendRow(table.Row{
			t.Name, t.Workstream, t.Assignee, string(t.Status),
			t.Schedule.Start.Format("2006-01-02"), end.Format("2006-01-02"),
			formatDays(t.TotalDays),
		})
	}
	return tw.Render() + "\n"
}

// WeeklyTable tabulates weekly allocation/availability per person.
func WeeklyTable(d *Data) string {
	return capacityTable(d.Weekly, d, func(p time.Time) string { return p.Format("02/01") })
}

// MonthlyTable tabulates monthly allocation/availability per person.
func MonthlyTable(d *Data) string {
	return capacityTable(d.Monthly, d, func(p time.Time) string { return p.Format("Jan 06") })
}

func capacityTable(r *capacity.Report, d *Data, label func(time.Time) string) string {
	if r.Empty() {
		return "Nothing scheduled.\n"
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)

	header := table.Row{"Person"}
	for _, p := range r.Periods {
		header = append(header, label(p))
	}
	tw.AppendHeader(header)

	for _, m := range d.Plan.Team {
		row := table.Row{m.Name}
		for _, p := range r.Periods {
			row = append(row, fmt.Sprintf("%s/%s",
				formatDays(r.AllocatedTo(p, m.Name)), formatDays(r.AvailableTo(p, m.Name))))
		}
		tw.AppendRow(row)
	}
	return tw.Render() + "\n"
}

// RoadmapTable tabulates the workstream rollup.
func RoadmapTable(d *Data) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Workstream", "Priority", "From", "To", "Tasks", "Blocked"})
	for _, sp := range d.Spans {
		tw.AppendRow(table.Row{
			sp.Stream.Name, string(sp.Stream.Priority),
			sp.Start.Format("2006-01-02"), sp.End.Format("2006-01-02"),
			sp.TaskCount, len(sp.BlockedTasks),
		})
	}
	return tw.Render() + "\n"
}
