package render

import (
	"fmt"
	"strings"
)

// Summary writes the executive summary: the roster, where capacity is
// going, and every warning the diagnostics raised. Sections with nothing
// to say are omitted.
func Summary(d *Data) string {
	var b strings.Builder

	writeTeam(&b, d)
	writeCapacitySection(&b, d)
	writePriorities(&b, d)
	writeDrift(&b, d)
	writeOverCapacity(&b, d)
	writeLowConfidence(&b, d)
	writeDeadlineRisks(&b, d)
	writeConcurrent(&b, d)
	writeHolidays(&b, d)
	writeLeave(&b, d)

	return b.String()
}

func section(b *strings.Builder, title string) {
	if b.Len() > 0 {
		b.WriteString("\n")
	}
	b.WriteString(Header(title) + "\n")
}

func writeTeam(b *strings.Builder, d *Data) {
	section(b, "Team")
	for _, m := range d.Plan.Team {
		line := Bold(m.Name)
		if m.Role != "" {
			line += " " + Dim("("+m.Role+")")
		}
		b.WriteString(fmt.Sprintf("  %s — %s days/week\n", line, formatDays(m.DaysPerWeek)))
	}
}

func writeCapacitySection(b *strings.Builder, d *Data) {
	if d.Weekly.Empty() {
		return
	}
	section(b, "Capacity")
	for _, m := range d.Plan.Team {
		alloc := d.Weekly.TotalAllocated(m.Name)
		avail := d.Weekly.TotalAvailable(m.Name)
		line := fmt.Sprintf("  %s: %s allocated / %s available",
			m.Name, formatDays(alloc), formatDays(avail))
		if avail > 0 {
			pct := alloc / avail * 100
			styled := StyleGreen
			if alloc > avail {
				styled = StyleRed
			} else if pct > 85 {
				styled = StyleYellow
			}
			line += " " + styled.Render(fmt.Sprintf("(%.0f%%)", pct))
		}
		b.WriteString(line + "\n")
	}
}

func writePriorities(b *strings.Builder, d *Data) {
	if len(d.Findings.Priorities) == 0 {
		return
	}
	section(b, "By priority")
	for _, pt := range d.Findings.Priorities {
		b.WriteString(fmt.Sprintf("  %s: %s, %s days\n",
			pt.Priority, plural(pt.TaskCount, "task"), formatDays(pt.TotalDays)))
	}
}

func writeDrift(b *strings.Builder, d *Data) {
	var lines []string
	for i := range d.Tasks {
		t := &d.Tasks[i]
		if drift := t.EstimateDrift(); drift != 0 {
			delta := formatDays(drift)
			if drift > 0 {
				delta = "+" + delta
			}
			lines = append(lines, fmt.Sprintf("  %s: %s → %s days (%sd)",
				t.Name, formatDays(t.OriginalDays), formatDays(t.TotalDays), delta))
		}
	}
	if len(lines) == 0 {
		return
	}
	section(b, "Estimate drift")
	for _, l := range lines {
		b.WriteString(l + "\n")
	}
}

func writeOverCapacity(b *strings.Builder, d *Data) {
	if len(d.Findings.OverCapacity) == 0 {
		return
	}
	section(b, "Over capacity")
	for _, oc := range d.Findings.OverCapacity {
		b.WriteString("  " + StyleRed.Render(fmt.Sprintf("%s: %s/%s days in week of %s",
			oc.Person, formatDays(oc.Allocated), formatDays(oc.Available), day(oc.Week))) + "\n")
	}
}

func writeLowConfidence(b *strings.Builder, d *Data) {
	if len(d.Findings.LowConfidence) == 0 {
		return
	}
	section(b, "Low confidence")
	for i := range d.Findings.LowConfidence {
		t := &d.Findings.LowConfidence[i]
		b.WriteString(fmt.Sprintf("  %s (%s, %s)\n", t.Name, t.Assignee, t.Workstream))
	}
}

func writeDeadlineRisks(b *strings.Builder, d *Data) {
	if len(d.Findings.DeadlineRisks) == 0 {
		return
	}
	section(b, "Deadlines at risk")
	for _, r := range d.Findings.DeadlineRisks {
		b.WriteString("  " + StyleRed.Render(fmt.Sprintf("%s: ends %s, deadline %s (%s late)",
			r.Task.Name, day(r.End), day(r.Deadline), plural(r.DaysLate, "working day"))) + "\n")
	}
}

func writeConcurrent(b *strings.Builder, d *Data) {
	if len(d.Findings.Concurrent) == 0 {
		return
	}
	section(b, "Busy weeks")
	for _, c := range d.Findings.Concurrent {
		b.WriteString(fmt.Sprintf("  %s: %s at once in week of %s — %s\n",
			c.Person, plural(len(c.TaskNames), "task"), day(c.Week), strings.Join(c.TaskNames, ", ")))
	}
}

func writeHolidays(b *strings.Builder, d *Data) {
	if len(d.Plan.Holidays) == 0 {
		return
	}
	section(b, "Public holidays")
	for _, h := range d.Plan.Holidays.Sorted() {
		line := "  " + dayYear(h)
		if name := d.Plan.HolidayNames[h]; name != "" {
			line += " — " + name
		}
		b.WriteString(line + "\n")
	}
}

func writeLeave(b *strings.Builder, d *Data) {
	if len(d.Plan.LeaveEntries) == 0 {
		return
	}
	section(b, "Leave")
	for _, e := range d.Plan.LeaveEntries {
		span := dayYear(e.Start)
		if !e.End.Equal(e.Start) {
			span = day(e.Start) + " – " + dayYear(e.End)
		}
		b.WriteString(fmt.Sprintf("  %s: %s, %s (%s)\n",
			e.Person, span, e.Type, plural(e.WorkingDays, "working day")))
	}
}
