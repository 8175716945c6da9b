package workbook

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/workplan/internal/calendar"
)

func TestWriteReadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.db")

	require.NoError(t, Write(path, Template()))

	got, err := Read(path)
	require.NoError(t, err)

	want := Template()
	assert.Len(t, got.Team, len(want.Team))
	assert.Len(t, got.Streams, len(want.Streams))
	assert.Len(t, got.Tasks, len(want.Tasks))
	assert.Len(t, got.Holidays, len(want.Holidays))
	assert.Len(t, got.Leave, len(want.Leave))

	assert.Equal(t, "Alex", got.Team[0].Name)
	assert.Equal(t, 5.0, got.Team[0].DaysPerWeek.Float64)
	assert.Equal(t, "Platform Rebuild", got.Streams[1].Name)
	assert.Equal(t, "#F44336", got.Streams[1].Color)

	first := got.Tasks[0]
	assert.Equal(t, "Checkout AB Test Analysis", first.Name)
	assert.Equal(t, "2026-02-16", first.StartDate)
	assert.Equal(t, "In Progress", first.Status)
	assert.Equal(t, 10.0, first.TotalDays.Float64)
	assert.Equal(t, 8.0, first.OriginalDays.Float64)
	assert.Equal(t, "2026-03-06", first.Deadline)
}

func TestWrite_ReplacesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.db")

	require.NoError(t, Write(path, Template()))
	require.NoError(t, Write(path, &Rows{
		Team: []TeamRow{{Name: "Solo", DaysPerWeek: days(5)}},
	}))

	got, err := Read(path)
	require.NoError(t, err)
	require.Len(t, got.Team, 1)
	assert.Equal(t, "Solo", got.Team[0].Name)
	assert.Empty(t, got.Tasks)
}

func TestRead_PreservesRowOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.db")
	require.NoError(t, Write(path, &Rows{
		Team: []TeamRow{
			{Name: "First"}, {Name: "Second"}, {Name: "Third"},
		},
	}))

	got, err := Read(path)
	require.NoError(t, err)

	require.Len(t, got.Team, 3)
	assert.Equal(t, "First", got.Team[0].Name)
	assert.Equal(t, "Third", got.Team[2].Name)
	assert.Equal(t, 1, got.Team[0].Pos)
	assert.Equal(t, 3, got.Team[2].Pos)
}

func TestRead_MissingFileErrors(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.db"))
	assert.Error(t, err)
}

func TestReadDB_MissingSheetsComeBackEmpty(t *testing.T) {
	db, err := Open(":memory:")
	require.NoError(t, err)
	defer db.Close()

	// Only the team sheet exists.
	_, err = db.Exec(schema[0])
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO team (id, position, name) VALUES ('x', 1, 'Alice')`)
	require.NoError(t, err)

	got, err := ReadDB(db)
	require.NoError(t, err)
	assert.Len(t, got.Team, 1)
	assert.Empty(t, got.Streams)
	assert.Empty(t, got.Tasks)
	assert.Empty(t, got.Holidays)
	assert.Empty(t, got.Leave)
}

func TestRead_NullCellsAreEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.db")
	require.NoError(t, Write(path, &Rows{
		Team:  []TeamRow{{Name: "Alice"}},
		Tasks: []TaskRow{{Name: "Bare"}},
	}))

	got, err := Read(path)
	require.NoError(t, err)

	assert.Empty(t, got.Team[0].Role)
	assert.False(t, got.Team[0].DaysPerWeek.Valid, "blank estimate is not zero")
	assert.Empty(t, got.Tasks[0].Status)
	assert.False(t, got.Tasks[0].TotalDays.Valid)
}

func TestParseDate_AcceptedFormats(t *testing.T) {
	want := calendar.Date(2026, 3, 2)

	for _, raw := range []string{
		"2026-03-02",
		"02/03/2026",
		"02-03-2026",
		"2026-03-02 14:30:00",
		"2026-03-02T14:30:00Z",
		"  2026-03-02  ",
	} {
		got, err := ParseDate(raw)
		require.NoError(t, err, "format %q", raw)
		assert.Equal(t, want, got, "format %q", raw)
	}
}

func TestParseDate_Rejections(t *testing.T) {
	for _, raw := range []string{"", "  ", "not a date", "2026-13-40"} {
		_, err := ParseDate(raw)
		assert.Error(t, err, "input %q", raw)
	}
}

func TestParseDate_NormalizesToMidnightUTC(t *testing.T) {
	got, err := ParseDate("2026-03-02T18:45:00Z")
	require.NoError(t, err)

	assert.Equal(t, time.UTC, got.Location())
	assert.Zero(t, got.Hour())
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "2026-03-02", FormatDate(calendar.Date(2026, 3, 2)))
}
