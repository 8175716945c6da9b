package workbook

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// Write replaces the workbook at path with the given rows. Row ids are
// freshly generated; positions follow slice order.
func Write(path string, r *Rows) error {
	db, err := Create(path)
	if err != nil {
		return err
	}
	defer db.Close()
	return WriteDB(db, r)
}

// WriteDB inserts the rows into an already initialized workbook, in one
// transaction.
func WriteDB(db *sql.DB, r *Rows) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("starting workbook write: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	for i, row := range r.Team {
		_, err := tx.Exec(`INSERT INTO team (id, position, name, role, days_per_week) VALUES (?, ?, ?, ?, ?)`,
			uuid.NewString(), i+1, row.Name, nullIfEmpty(row.Role), nullFloat(row.DaysPerWeek))
		if err != nil {
			return fmt.Errorf("writing team row %d: %w", i+1, err)
		}
	}
	for i, row := range r.Streams {
		_, err := tx.Exec(`INSERT INTO workstreams (id, position, name, color, priority) VALUES (?, ?, ?, ?, ?)`,
			uuid.NewString(), i+1, row.Name, nullIfEmpty(row.Color), nullIfEmpty(row.Priority))
		if err != nil {
			return fmt.Errorf("writing workstream row %d: %w", i+1, err)
		}
	}
	for i, row := range r.Tasks {
		_, err := tx.Exec(`INSERT INTO tasks (id, position, name, workstream, assignee, start_date, total_days,
			status, original_days, priority, actual_end, blocked_by, deadline, confidence, notes)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			uuid.NewString(), i+1, row.Name, nullIfEmpty(row.Workstream), nullIfEmpty(row.Assignee),
			nullIfEmpty(row.StartDate), nullFloat(row.TotalDays), nullIfEmpty(row.Status),
			nullFloat(row.OriginalDays), nullIfEmpty(row.Priority), nullIfEmpty(row.ActualEnd),
			nullIfEmpty(row.BlockedBy), nullIfEmpty(row.Deadline), nullIfEmpty(row.Confidence),
			nullIfEmpty(row.Notes))
		if err != nil {
			return fmt.Errorf("writing task row %d: %w", i+1, err)
		}
	}
	for i, row := range r.Holidays {
		_, err := tx.Exec(`INSERT INTO public_holidays (id, position, date, name) VALUES (?, ?, ?, ?)`,
			uuid.NewString(), i+1, row.Date, nullIfEmpty(row.Name))
		if err != nil {
			return fmt.Errorf("writing holiday row %d: %w", i+1, err)
		}
	}
	for i, row := range r.Leave {
		_, err := tx.Exec(`INSERT INTO leave (id, position, person, start_date, end_date, type, notes) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			uuid.NewString(), i+1, row.Person, nullIfEmpty(row.StartDate), nullIfEmpty(row.EndDate),
			nullIfEmpty(row.Type), nullIfEmpty(row.Notes))
		if err != nil {
			return fmt.Errorf("writing leave row %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing workbook write: %w", err)
	}
	committed = true
	return nil
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

func nullFloat(f sql.NullFloat64) interface{} {
	if !f.Valid {
		return nil
	}
	return f.Float64
}
