package render

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/alexanderramin/workplan/internal/capacity"
	"github.com/alexanderramin/workplan/internal/domain"
)

const capacityBarWidth = 20

// WeeklyChart draws allocation against availability per person, one
// block of bars per week.
func WeeklyChart(d *Data) string {
	return capacityChart(d.Weekly, d.Plan.Team, func(p time.Time) string {
		return "Week of " + day(p)
	})
}

// MonthlyChart draws the same comparison per calendar month.
func MonthlyChart(d *Data) string {
	return capacityChart(d.Monthly, d.Plan.Team, func(p time.Time) string {
		return p.Format("January 2006")
	})
}

func capacityChart(r *capacity.Report, team []domain.Person, label func(time.Time) string) string {
	if r.Empty() {
		return Dim("Nothing scheduled.") + "\n"
	}

	nameWidth := 0
	for _, m := range team {
		if len(m.Name) > nameWidth {
			nameWidth = len(m.Name)
		}
	}

	var b strings.Builder
	for i, period := range r.Periods {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Bold(label(period)) + "\n")
		for _, m := range team {
			alloc := r.AllocatedTo(period, m.Name)
			avail := r.AvailableTo(period, m.Name)
			b.WriteString("  " + truncPad(m.Name, nameWidth) + "  ")
			b.WriteString(utilizationBar(alloc, avail))
			b.WriteString(fmt.Sprintf("  %s/%s", formatDays(alloc), formatDays(avail)))
			if alloc > avail {
				b.WriteString("  " + StyleRed.Render(fmt.Sprintf("over by %sd", formatDays(alloc-avail))))
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

// utilizationBar fills in proportion to alloc/avail and turns red the
// moment allocation exceeds what the person has.
func utilizationBar(alloc, avail float64) string {
	filled := 0
	switch {
	case avail > 0:
		filled = int(math.Round(alloc / avail * capacityBarWidth))
	case alloc > 0:
		filled = capacityBarWidth
	}
	if filled > capacityBarWidth {
		filled = capacityBarWidth
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", capacityBarWidth-filled)

	style := StyleGreen
	switch {
	case alloc > avail:
		style = StyleRed
	case avail > 0 && alloc/avail > 0.85:
		style = StyleYellow
	}
	return style.Render(bar)
}
