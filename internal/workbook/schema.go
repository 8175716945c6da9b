package workbook

// One table per sheet. Every table keeps an explicit position so the
// sheet's row order survives the round trip; validation messages quote
// it as the row number.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS team (
		id            TEXT PRIMARY KEY,
		position      INTEGER NOT NULL,
		name          TEXT NOT NULL,
		role          TEXT,
		days_per_week REAL
	)`,
	`CREATE TABLE IF NOT EXISTS workstreams (
		id       TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		name     TEXT NOT NULL,
		color    TEXT,
		priority TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS tasks (
		id            TEXT PRIMARY KEY,
		position      INTEGER NOT NULL,
		name          TEXT NOT NULL,
		workstream    TEXT,
		assignee      TEXT,
		start_date    TEXT,
		total_days    REAL,
		status        TEXT,
		original_days REAL,
		priority      TEXT,
		actual_end    TEXT,
		blocked_by    TEXT,
		deadline      TEXT,
		confidence    TEXT,
		notes         TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS public_holidays (
		id       TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		date     TEXT NOT NULL,
		name     TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS leave (
		id         TEXT PRIMARY KEY,
		position   INTEGER NOT NULL,
		person     TEXT NOT NULL,
		start_date TEXT,
		end_date   TEXT,
		type       TEXT,
		notes      TEXT
	)`,
}
