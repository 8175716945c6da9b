package cli

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/alexanderramin/workplan/internal/domain"
	"github.com/alexanderramin/workplan/internal/workbook"
)

// wizardPalette supplies workstream colors in entry order.
var wizardPalette = []string{
	"#00BCD4", "#F44336", "#2196F3", "#FF9800",
	"#9C27B0", "#4CAF50", "#795548", "#607D8B",
}

// setupAnswers holds the raw wizard fields before parsing.
type setupAnswers struct {
	team    string
	streams string
}

// runSetupWizard collects a roster and workstream list interactively and
// builds an empty workbook around them.
func runSetupWizard() (*workbook.Rows, error) {
	answers := setupAnswers{
		team:    "Alex: 5\nSam: 4",
		streams: "Product Analytics: P1\nPlatform Rebuild: P2",
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Team members").
				Description("One per line as name: days per week").
				Value(&answers.team).
				Validate(validateRoster),
			huh.NewText().
				Title("Workstreams").
				Description("One per line as name: priority (P1-P4)").
				Value(&answers.streams).
				Validate(validateStreams),
		),
	).WithTheme(workplanHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return nil, err
	}
	return buildRows(answers)
}

// buildRows turns validated wizard answers into workbook rows. Task,
// holiday and leave sheets start empty.
func buildRows(answers setupAnswers) (*workbook.Rows, error) {
	rows := &workbook.Rows{}

	for _, line := range splitLines(answers.team) {
		row, err := parseRosterLine(line)
		if err != nil {
			return nil, err
		}
		rows.Team = append(rows.Team, row)
	}

	for i, line := range splitLines(answers.streams) {
		row, err := parseStreamLine(line)
		if err != nil {
			return nil, err
		}
		row.Color = wizardPalette[i%len(wizardPalette)]
		rows.Streams = append(rows.Streams, row)
	}

	return rows, nil
}

func splitLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// parseRosterLine reads "name: days per week"; a bare name works 5 days.
func parseRosterLine(line string) (workbook.TeamRow, error) {
	name, rest, hasDays := strings.Cut(line, ":")
	name = strings.TrimSpace(name)
	if name == "" {
		return workbook.TeamRow{}, fmt.Errorf("missing name in %q", line)
	}

	days := 5.0
	if hasDays {
		var err error
		days, err = strconv.ParseFloat(strings.TrimSpace(rest), 64)
		if err != nil {
			return workbook.TeamRow{}, fmt.Errorf("%s: days per week must be a number, got %q", name, strings.TrimSpace(rest))
		}
		if days <= 0 || days > 5 {
			return workbook.TeamRow{}, fmt.Errorf("%s: days per week must be between 0 and 5", name)
		}
	}

	return workbook.TeamRow{
		Name:        name,
		DaysPerWeek: sql.NullFloat64{Float64: days, Valid: true},
	}, nil
}

// parseStreamLine reads "name: priority"; a bare name gets P2.
func parseStreamLine(line string) (workbook.StreamRow, error) {
	name, rest, hasPriority := strings.Cut(line, ":")
	name = strings.TrimSpace(name)
	if name == "" {
		return workbook.StreamRow{}, fmt.Errorf("missing name in %q", line)
	}

	priority := string(domain.PriorityP2)
	if hasPriority {
		p, ok := domain.ParsePriority(rest)
		if !ok {
			return workbook.StreamRow{}, fmt.Errorf("%s: priority must be P1-P4, got %q", name, strings.TrimSpace(rest))
		}
		priority = string(p)
	}

	return workbook.StreamRow{Name: name, Priority: priority}, nil
}

func validateRoster(s string) error {
	lines := splitLines(s)
	if len(lines) == 0 {
		return fmt.Errorf("add at least one team member")
	}
	for _, line := range lines {
		if _, err := parseRosterLine(line); err != nil {
			return err
		}
	}
	return nil
}

func validateStreams(s string) error {
	lines := splitLines(s)
	if len(lines) == 0 {
		return fmt.Errorf("add at least one workstream")
	}
	for _, line := range lines {
		if _, err := parseStreamLine(line); err != nil {
			return err
		}
	}
	return nil
}
