package workbook

import (
	"database/sql"
	"fmt"
)

// Read loads every sheet of the workbook at path. Missing sheets come
// back empty; deciding whether that is a problem belongs to validation.
func Read(path string) (*Rows, error) {
	db, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer db.Close()
	return ReadDB(db)
}

// ReadDB loads every sheet from an already opened workbook.
func ReadDB(db *sql.DB) (*Rows, error) {
	var r Rows
	var err error

	if r.Team, err = readTeam(db); err != nil {
		return nil, err
	}
	if r.Streams, err = readStreams(db); err != nil {
		return nil, err
	}
	if r.Tasks, err = readTasks(db); err != nil {
		return nil, err
	}
	if r.Holidays, err = readHolidays(db); err != nil {
		return nil, err
	}
	if r.Leave, err = readLeave(db); err != nil {
		return nil, err
	}
	return &r, nil
}

func readTeam(db *sql.DB) ([]TeamRow, error) {
	rows, err := db.Query(`SELECT position, name, role, days_per_week FROM team ORDER BY position`)
	if missingTable(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading team sheet: %w", err)
	}
	defer rows.Close()

	var out []TeamRow
	for rows.Next() {
		var tr TeamRow
		var role sql.NullString
		if err := rows.Scan(&tr.Pos, &tr.Name, &role, &tr.DaysPerWeek); err != nil {
			return nil, fmt.Errorf("scanning team row: %w", err)
		}
		tr.Role = role.String
		out = append(out, tr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating team sheet: %w", err)
	}
	return out, nil
}

func readStreams(db *sql.DB) ([]StreamRow, error) {
	rows, err := db.Query(`SELECT position, name, color, priority FROM workstreams ORDER BY position`)
	if missingTable(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading workstreams sheet: %w", err)
	}
	defer rows.Close()

	var out []StreamRow
	for rows.Next() {
		var sr StreamRow
		var color, priority sql.NullString
		if err := rows.Scan(&sr.Pos, &sr.Name, &color, &priority); err != nil {
			return nil, fmt.Errorf("scanning workstream row: %w", err)
		}
		sr.Color = color.String
		sr.Priority = priority.String
		out = append(out, sr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating workstreams sheet: %w", err)
	}
	return out, nil
}

func readTasks(db *sql.DB) ([]TaskRow, error) {
	rows, err := db.Query(`SELECT position, name, workstream, assignee, start_date, total_days,
		status, original_days, priority, actual_end, blocked_by, deadline, confidence, notes
		FROM tasks ORDER BY position`)
	if missingTable(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading tasks sheet: %w", err)
	}
	defer rows.Close()

	var out []TaskRow
	for rows.Next() {
		var tr TaskRow
		var ws, assignee, start, status, priority, actualEnd, blockedBy, deadline, confidence, notes sql.NullString
		if err := rows.Scan(&tr.Pos, &tr.Name, &ws, &assignee, &start, &tr.TotalDays,
			&status, &tr.OriginalDays, &priority, &actualEnd, &blockedBy, &deadline, &confidence, &notes); err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}
		tr.Workstream = ws.String
		tr.Assignee = assignee.String
		tr.StartDate = start.String
		tr.Status = status.String
		tr.Priority = priority.String
		tr.ActualEnd = actualEnd.String
		tr.BlockedBy = blockedBy.String
		tr.Deadline = deadline.String
		tr.Confidence = confidence.String
		tr.Notes = notes.String
		out = append(out, tr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks sheet: %w", err)
	}
	return out, nil
}

func readHolidays(db *sql.DB) ([]HolidayRow, error) {
	rows, err := db.Query(`SELECT position, date, name FROM public_holidays ORDER BY position`)
	if missingTable(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading public holidays sheet: %w", err)
	}
	defer rows.Close()

	var out []HolidayRow
	for rows.Next() {
		var hr HolidayRow
		var name sql.NullString
		if err := rows.Scan(&hr.Pos, &hr.Date, &name); err != nil {
			return nil, fmt.Errorf("scanning holiday row: %w", err)
		}
		hr.Name = name.String
		out = append(out, hr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating public holidays sheet: %w", err)
	}
	return out, nil
}

func readLeave(db *sql.DB) ([]LeaveRow, error) {
	rows, err := db.Query(`SELECT position, person, start_date, end_date, type, notes FROM leave ORDER BY position`)
	if missingTable(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading leave sheet: %w", err)
	}
	defer rows.Close()

	var out []LeaveRow
	for rows.Next() {
		var lr LeaveRow
		var start, end, typ, notes sql.NullString
		if err := rows.Scan(&lr.Pos, &lr.Person, &start, &end, &typ, &notes); err != nil {
			return nil, fmt.Errorf("scanning leave row: %w", err)
		}
		lr.StartDate = start.String
		lr.EndDate = end.String
		lr.Type = typ.String
		lr.Notes = notes.String
		out = append(out, lr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating leave sheet: %w", err)
	}
	return out, nil
}
