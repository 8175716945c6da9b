package render

import (
	"strings"
	"time"

	"github.com/alexanderramin/workplan/internal/calendar"
)

const roadmapLabelWidth = 26

// Roadmap draws one bar per workstream spanning its tasks' schedules,
// with task counts and anything stuck inside flagged at the end.
func Roadmap(d *Data) string {
	if len(d.Spans) == 0 {
		return Dim("No tasks in the selected window.") + "\n"
	}

	lo, hi := d.Spans[0].Start, d.Spans[0].End
	for _, sp := range d.Spans {
		if sp.Start.Before(lo) {
			lo = sp.Start
		}
		if sp.End.After(hi) {
			hi = sp.End
		}
	}
	tl := newTimeline(lo, hi)
	gutter := strings.Repeat(" ", roadmapLabelWidth)

	var b strings.Builder
	b.WriteString(gutter + Dim(tl.monthRow()) + "\n")
	b.WriteString(gutter + Dim(tl.weekRow()) + "\n")
	if row, ok := tl.todayRow(d.Now); ok {
		b.WriteString(gutter + StyleRed.Render(row) + " " + Dim("today") + "\n")
	}

	for _, sp := range d.Spans {
		start, end := calendar.Normalize(sp.Start), calendar.Normalize(sp.End)
		raw := tl.cells(func(day time.Time) rune {
			if day.Before(start) || day.After(end) {
				return ' '
			}
			return barFull
		})

		b.WriteString(truncPad(sp.Stream.Name, roadmapLabelWidth-1) + " ")
		b.WriteString(StreamStyle(sp.Stream).Render(string(raw)))
		b.WriteString("  " + Dim(plural(sp.TaskCount, "task")))
		if n := len(sp.BlockedTasks); n > 0 {
			b.WriteString("  " + StyleYellow.Render("⏸ "+plural(n, "blocked task")))
		}
		b.WriteString("\n")
	}
	return b.String()
}
