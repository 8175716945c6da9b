package workbook

import "database/sql"

// Rows is the raw content of one workbook, sheet by sheet, in row order.
// Strings are exactly what the cells held (empty for NULL); numbers keep
// their NULL-ness so a blank estimate is distinguishable from zero.
type Rows struct {
	Team     []TeamRow
	Streams  []StreamRow
	Tasks    []TaskRow
	Holidays []HolidayRow
	Leave    []LeaveRow
}

type TeamRow struct {
	Pos         int
	Name        string
	Role        string
	DaysPerWeek sql.NullFloat64
}

type StreamRow struct {
	Pos      int
	Name     string
	Color    string
	Priority string
}

type TaskRow struct {
	Pos          int
	Name         string
	Workstream   string
	Assignee     string
	StartDate    string
	TotalDays    sql.NullFloat64
	Status       string
	OriginalDays sql.NullFloat64
	Priority     string
	ActualEnd    string
	BlockedBy    string
	Deadline     string
	Confidence   string
	Notes        string
}

type HolidayRow struct {
	Pos  int
	Date string
	Name string
}

type LeaveRow struct {
	Pos       int
	Person    string
	StartDate string
	EndDate   string
	Type      string
	Notes     string
}
