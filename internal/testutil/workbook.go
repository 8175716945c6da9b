// Package testutil provides workbook fixtures for tests: a minimal valid
// workbook plus option-style row builders to bend it per scenario.
package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/workplan/internal/workbook"
)

// NewTestWorkbook writes rows to a fresh workbook file under the test's
// temp dir and returns its path.
func NewTestWorkbook(t *testing.T, rows *workbook.Rows) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.db")
	if err := workbook.Write(path, rows); err != nil {
		t.Fatalf("failed to write test workbook: %v", err)
	}
	return path
}

// MinimalRows is a small valid workbook: two people, two workstreams,
// no tasks. Tests append what the scenario needs.
func MinimalRows() *workbook.Rows {
	return &workbook.Rows{
		Team: []workbook.TeamRow{
			{Name: "Alice", Role: "Lead", DaysPerWeek: Days(5)},
			{Name: "Bob", Role: "Analyst", DaysPerWeek: Days(5)},
		},
		Streams: []workbook.StreamRow{
			{Name: "Project A", Color: "#00BCD4", Priority: "P1"},
			{Name: "Project B", Color: "#4CAF50", Priority: "P2"},
		},
	}
}

// Days wraps a float in a valid NullFloat64 cell.
func Days(f float64) sql.NullFloat64 {
	return sql.NullFloat64{Float64: f, Valid: true}
}

// TaskRowOption mutates a task row fixture.
type TaskRowOption func(*workbook.TaskRow)

func WithStatus(s string) TaskRowOption {
	return func(r *workbook.TaskRow) { r.Status = s }
}

func WithAssignee(name string) TaskRowOption {
	return func(r *workbook.TaskRow) { r.Assignee = name }
}

func WithWorkstream(name string) TaskRowOption {
	return func(r *workbook.TaskRow) { r.Workstream = name }
}

func WithPriority(p string) TaskRowOption {
	return func(r *workbook.TaskRow) { r.Priority = p }
}

func WithConfidence(c string) TaskRowOption {
	return func(r *workbook.TaskRow) { r.Confidence = c }
}

func WithActualEnd(date string) TaskRowOption {
	return func(r *workbook.TaskRow) { r.ActualEnd = date }
}

func WithDeadline(date string) TaskRowOption {
	return func(r *workbook.TaskRow) { r.Deadline = date }
}

func WithBlockedBy(reason string) TaskRowOption {
	return func(r *workbook.TaskRow) { r.BlockedBy = reason }
}

func WithTotalDays(f sql.NullFloat64) TaskRowOption {
	return func(r *workbook.TaskRow) { r.TotalDays = f }
}

// NewTaskRow builds a valid Planned task for the MinimalRows workbook,
// assigned to Alice on Project A starting Mon 2 Mar 2026.
func NewTaskRow(name string, opts ...TaskRowOption) workbook.TaskRow {
	r := workbook.TaskRow{
		Name:       name,
		Workstream: "Project A",
		Assignee:   "Alice",
		StartDate:  "2026-03-02",
		TotalDays:  Days(5),
		Status:     "Planned",
		Priority:   "P1",
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}
