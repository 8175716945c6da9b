package domain

import "time"

// LeaveEntry is one validated row of the leave sheet: a person away for an
// inclusive date range.
type LeaveEntry struct {
	Person string
	Start  time.Time
	End    time.Time
	Type   LeaveType
	Notes  string

	// WorkingDays is the number of working days the range actually removes,
	// after weekends and public holidays are excluded.
	WorkingDays int
}
