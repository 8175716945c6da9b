package render

import (
	"strings"
	"time"

	"github.com/alexanderramin/workplan/internal/calendar"
)

// A timeline lays dates out on a week grid: one five-character cell per
// week, one column per weekday Monday to Friday, a space between weeks.
// Weekends own no column, matching the working-day schedules drawn on it.
type timeline struct {
	weeks []time.Time
}

func newTimeline(start, end time.Time) *timeline {
	return &timeline{weeks: calendar.WeeksBetween(start, end)}
}

// width is the number of columns the grid occupies.
func (tl *timeline) width() int {
	if len(tl.weeks) == 0 {
		return 0
	}
	return len(tl.weeks)*6 - 1
}

// column returns the grid column for a date. Weekends and dates outside
// the grid have none.
func (tl *timeline) column(d time.Time) (int, bool) {
	d = calendar.Normalize(d)
	if calendar.IsWeekend(d) || len(tl.weeks) == 0 {
		return 0, false
	}
	week := calendar.WeekStart(d)
	if week.Before(tl.weeks[0]) || week.After(tl.weeks[len(tl.weeks)-1]) {
		return 0, false
	}
	idx := int(week.Sub(tl.weeks[0]).Hours() / 24 / 7)
	weekday := (int(d.Weekday()) + 6) % 7
	return idx*6 + weekday, true
}

// monthRow labels each week cell where a new month begins.
func (tl *timeline) monthRow() string {
	var b strings.Builder
	for i, w := range tl.weeks {
		label := ""
		if i == 0 || w.Month() != tl.weeks[i-1].Month() {
			label = w.Format("Jan")
		}
		b.WriteString(padCell(label))
		if i < len(tl.weeks)-1 {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// weekRow labels every week with the day and month of its Monday.
func (tl *timeline) weekRow() string {
	var b strings.Builder
	for i, w := range tl.weeks {
		b.WriteString(w.Format("02/01"))
		if i < len(tl.weeks)-1 {
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// todayRow points at today's column, when it falls on the grid.
func (tl *timeline) todayRow(now time.Time) (string, bool) {
	col, ok := tl.column(now)
	if !ok {
		return "", false
	}
	return strings.Repeat(" ", col) + "▼", true
}

// cells renders one grid row, asking fill for the rune at every weekday.
func (tl *timeline) cells(fill func(d time.Time) rune) []rune {
	row := make([]rune, 0, tl.width())
	for i, w := range tl.weeks {
		for wd := 0; wd < 5; wd++ {
			row = append(row, fill(w.AddDate(0, 0, wd)))
		}
		if i < len(tl.weeks)-1 {
			row = append(row, ' ')
		}
	}
	return row
}

func padCell(s string) string {
	if len(s) > 5 {
		s = s[:5]
	}
	return s + strings.Repeat(" ", 5-len(s))
}

// truncPad fits a label into width columns, marking truncation.
func truncPad(s string, width int) string {
	r := []rune(s)
	if len(r) > width {
		return string(r[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(r))
}
