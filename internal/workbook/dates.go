package workbook

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/workplan/internal/calendar"
)

const dateLayout = "2006-01-02"

// dateLayouts are the cell formats accepted on read, tried in order.
// Sheets filled by hand tend to mix ISO dates with UK-style ones, and
// exports sometimes carry a full timestamp.
var dateLayouts = []string{
	dateLayout,
	"02/01/2006",
	"02-01-2006",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// ParseDate parses a date cell and normalizes it to midnight UTC.
func ParseDate(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return calendar.Normalize(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", raw)
}

// FormatDate renders a date the way the workbook stores them.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}
