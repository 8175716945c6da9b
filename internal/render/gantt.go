package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/workplan/internal/calendar"
	"github.com/alexanderramin/workplan/internal/domain"
	"github.com/alexanderramin/workplan/internal/scheduler"
)

const ganttLabelWidth = 26

const (
	barFull     = '█'
	barPartial  = '▓'
	barParked   = '░'
	markDue     = '▼'
	markNothing = ' '
)

// Gantt draws the schedule as a per-task timeline grouped by workstream.
// Bars use the workstream's sheet color; parked work renders hollow.
// Completed tasks carry a variance label, open ones their confidence dot.
func Gantt(d *Data) string {
	if len(d.Tasks) == 0 {
		return Dim("No tasks in the selected window.") + "\n"
	}

	tl := ganttTimeline(d)
	gutter := strings.Repeat(" ", ganttLabelWidth)

	var b strings.Builder
	b.WriteString(gutter + Dim(tl.monthRow()) + "\n")
	b.WriteString(gutter + Dim(tl.weekRow()) + "\n")
	if row, ok := tl.todayRow(d.Now); ok {
		b.WriteString(gutter + StyleRed.Render(row) + " " + Dim("today") + "\n")
	}

	for _, group := range scheduler.GroupByStream(d.Tasks, d.Plan.Streams) {
		b.WriteString("\n")
		b.WriteString(StreamStyle(group.Stream).Bold(true).Render(group.Stream.Name))
		b.WriteString(" " + PriorityBadge(group.Stream.Priority) + "\n")

		for i := range group.Tasks {
			b.WriteString(ganttRow(&group.Tasks[i], group.Stream, tl))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// ganttTimeline spans every scheduled day plus the deadlines of open
// tasks, so an overshot deadline is still visible on the grid.
func ganttTimeline(d *Data) *timeline {
	lo, hi := d.Tasks[0].Schedule.Start, d.Tasks[0].Schedule.Start
	for i := range d.Tasks {
		t := &d.Tasks[i]
		if t.Schedule.Start.Before(lo) {
			lo = t.Schedule.Start
		}
		if end := t.EffectiveEnd(); end.After(hi) {
			hi = end
		}
		if t.Status.Open() && t.Deadline != nil && t.Deadline.After(hi) {
			hi = *t.Deadline
		}
	}
	return newTimeline(lo, hi)
}

func ganttRow(t *scheduler.ScheduledTask, ws domain.Workstream, tl *timeline) string {
	raw := tl.cells(func(d time.Time) rune {
		if alloc, ok := t.Schedule.Allocations[d]; ok {
			switch {
			case t.Status == domain.StatusOnHold:
				return barParked
			case alloc < 1:
				return barPartial
			default:
				return barFull
			}
		}
		if t.Status.Open() && t.Deadline != nil && calendar.Normalize(*t.Deadline).Equal(d) {
			return markDue
		}
		return markNothing
	})

	var b strings.Builder
	b.WriteString("  " + truncPad(t.Name, ganttLabelWidth-2))
	b.WriteString(styleBar(raw, StreamStyle(ws)))

	if suffix := ganttSuffix(t); suffix != "" {
		b.WriteString(" " + suffix)
	}
	return b.String()
}

// styleBar colors a rendered row run by run: bars in the stream style,
// parked blocks dim, due markers red.
func styleBar(row []rune, stream lipgloss.Style) string {
	var b strings.Builder
	flush := func(buf []rune, style *lipgloss.Style) []rune {
		if len(buf) == 0 {
			return buf
		}
		if style == nil {
			b.WriteString(string(buf))
		} else {
			b.WriteString(style.Render(string(buf)))
		}
		return buf[:0]
	}

	styleOf := func(r rune) *lipgloss.Style {
		switch r {
		case barFull, barPartial:
			return &stream
		case barParked:
			return &StyleDim
		case markDue:
			return &StyleRed
		default:
			return nil
		}
	}

	var buf []rune
	var cur *lipgloss.Style
	for _, r := range row {
		if s := styleOf(r); s != cur {
			buf = flush(buf, cur)
			cur = s
		}
		buf = append(buf, r)
	}
	flush(buf, cur)
	return b.String()
}

func ganttSuffix(t *scheduler.ScheduledTask) string {
	switch {
	case t.Status == domain.StatusOnHold:
		return StyleYellow.Render("⏸ on hold")
	case t.Status == domain.StatusComplete && t.Schedule.ActualEnd != nil:
		return varianceLabel(t.Variance())
	case t.Status.Open():
		return ConfidenceDot(t.Confidence)
	}
	return ""
}

// varianceLabel renders a completed task's outcome against its plan.
func varianceLabel(v int) string {
	switch {
	case v > 0:
		return StyleRed.Render(fmt.Sprintf("+%dd late", v))
	case v < 0:
		return StyleGreen.Render(fmt.Sprintf("%dd early", v))
	default:
		return Dim("on time")
	}
}
