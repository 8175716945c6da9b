package render

import (
	"fmt"
	"strings"
)

// Suggestions writes the actionable findings: what is stuck, what has
// slipped, and where freed-up or spare capacity could be put to use.
func Suggestions(d *Data) string {
	var b strings.Builder

	writeBlocked(&b, d)
	writeOverdue(&b, d)
	writeReallocations(&b, d)
	writeSpare(&b, d)

	if b.Len() == 0 {
		return Dim("Nothing to suggest. The plan looks healthy.") + "\n"
	}
	return b.String()
}

func writeBlocked(b *strings.Builder, d *Data) {
	if len(d.Findings.Blocked) == 0 {
		return
	}
	section(b, "Blocked")
	for _, bl := range d.Findings.Blocked {
		line := fmt.Sprintf("  %s (%s)", bl.Task.Name, bl.Task.Assignee)
		if bl.DaysBlocked > 0 {
			line += StyleYellow.Render(fmt.Sprintf(" on hold for %s", plural(bl.DaysBlocked, "working day")))
		}
		if bl.Reason != "" {
			line += Dim(" — " + bl.Reason)
		}
		b.WriteString(line + "\n")
	}
}

func writeOverdue(b *strings.Builder, d *Data) {
	if len(d.Findings.Overdue) == 0 {
		return
	}
	section(b, "Overdue")
	for _, o := range d.Findings.Overdue {
		b.WriteString("  " + StyleRed.Render(fmt.Sprintf("%s (%s): planned end %s was %s ago",
			o.Task.Name, o.Task.Assignee, day(o.Task.Schedule.End), plural(o.DaysOverdue, "working day"))) + "\n")
	}
}

func writeReallocations(b *strings.Builder, d *Data) {
	if len(d.Findings.Reallocations) == 0 {
		return
	}
	section(b, "Freed capacity")
	for _, r := range d.Findings.Reallocations {
		b.WriteString(fmt.Sprintf("  %s finished %s early — %s (%s, starts %s) could move up\n",
			r.Completed.Name, plural(r.SlackDays, "working day"),
			r.Next.Name, r.Next.Assignee, day(r.Next.Schedule.Start)))
	}
}

func writeSpare(b *strings.Builder, d *Data) {
	if len(d.Findings.SpareWeeks) == 0 {
		return
	}
	section(b, "Spare capacity")
	for _, s := range d.Findings.SpareWeeks {
		b.WriteString(fmt.Sprintf("  %s: %s free days in week of %s\n",
			s.Person, formatDays(s.SpareDays), day(s.Week)))
	}
	if d.Findings.SpareOverflow > 0 {
		b.WriteString(Dim(fmt.Sprintf("  … and %s with spare capacity",
			plural(d.Findings.SpareOverflow, "more week"))) + "\n")
	}
}
