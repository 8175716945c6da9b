package domain

import "time"

// Task is one validated row of the task sheet. Fields that were blank in
// the source stay at their zero value; optional dates are nil pointers.
type Task struct {
	Name       string
	Workstream string
	Assignee   string
	Start      time.Time
	TotalDays  float64

	// OriginalDays is the first estimate ever recorded for the task; it is
	// kept when TotalDays is re-estimated so the drift stays visible.
	OriginalDays float64

	Status     Status
	Priority   Priority
	ActualEnd  *time.Time
	BlockedBy  string
	Deadline   *time.Time
	Confidence Confidence
	Notes      string

	// Row is the source sheet row, kept for diagnostics.
	Row int
}

// EstimateDrift is the growth of the current estimate over the original
// one, in days. Zero when no original estimate was recorded.
func (t Task) EstimateDrift() float64 {
	if t.OriginalDays <= 0 {
		return 0
	}
	return t.TotalDays - t.OriginalDays
}

// Blocked reports whether the task is waiting on something: either parked
// On Hold, or still open with a named blocker.
func (t Task) Blocked() bool {
	if t.Status == StatusOnHold {
		return true
	}
	return t.Status != StatusComplete && t.BlockedBy != ""
}
