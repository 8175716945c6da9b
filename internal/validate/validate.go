// Package validate turns raw workbook rows into a checked domain.Plan.
// It owns every parsing and vocabulary decision: downstream packages
// never see an unparsed date or an out-of-vocabulary status. All
// problems are collected in one pass rather than failing on the first,
// and only errors block scheduling.
package validate

import (
	"math"
	"regexp"
	"time"

	"github.com/alexanderramin/workplan/internal/calendar"
	"github.com/alexanderramin/workplan/internal/domain"
	"github.com/alexanderramin/workplan/internal/workbook"
)

// fallbackColor replaces workstream colors that do not parse as hex.
const fallbackColor = "#9E9E9E"

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Check validates every sheet and assembles the plan. The plan is
// always returned, minus any rows that had to be dropped; callers must
// consult the report before using it.
func Check(rows *workbook.Rows) (*domain.Plan, *Report) {
	rep := &Report{}
	plan := &domain.Plan{
		Holidays:     calendar.DateSet{},
		HolidayNames: map[time.Time]string{},
		Leave:        calendar.Leave{},
	}

	checkTeam(rows.Team, plan, rep)
	checkStreams(rows.Streams, plan, rep)
	checkHolidays(rows.Holidays, plan, rep)
	checkLeave(rows.Leave, plan, rep)
	checkTasks(rows.Tasks, plan, rep)

	return plan, rep
}

func checkTeam(rows []workbook.TeamRow, plan *domain.Plan, rep *Report) {
	seen := map[string]int{}
	for _, row := range rows {
		if row.Name == "" {
			rep.warnf("team row %d: missing name", row.Pos)
			continue
		}
		if first, dup := seen[row.Name]; dup {
			rep.warnf("duplicate team member %q (row %d): keeping row %d", row.Name, row.Pos, first)
			continue
		}
		if !row.DaysPerWeek.Valid {
			rep.warnf("team member %q (row %d): missing days per week", row.Name, row.Pos)
			continue
		}
		days := row.DaysPerWeek.Float64
		if math.IsNaN(days) || days <= 0 {
			rep.warnf("team member %q (row %d): days per week must be positive", row.Name, row.Pos)
			continue
		}
		seen[row.Name] = row.Pos
		plan.Team = append(plan.Team, domain.Person{
			Name:        row.Name,
			Role:        row.Role,
			DaysPerWeek: days,
		})
	}
	if len(plan.Team) == 0 {
		rep.errorf("team sheet has no usable members")
	}
}

func checkStreams(rows []workbook.StreamRow, plan *domain.Plan, rep *Report) {
	seen := map[string]int{}
	for _, row := range rows {
		if row.Name == "" {
			rep.warnf("workstream row %d: missing name", row.Pos)
			continue
		}
		if first, dup := seen[row.Name]; dup {
			rep.warnf("duplicate workstream %q (row %d): keeping row %d", row.Name, row.Pos, first)
			continue
		}
		seen[row.Name] = row.Pos

		color := row.Color
		if color != "" && !hexColor.MatchString(color) {
			rep.warnf("workstream %q (row %d): invalid color %q, using %s", row.Name, row.Pos, color, fallbackColor)
			color = fallbackColor
		}
		if color == "" {
			color = fallbackColor
		}

		priority, ok := domain.ParsePriority(row.Priority)
		if !ok {
			if row.Priority != "" {
				rep.warnf("workstream %q (row %d): priority %q is not recognised, defaulting to P2", row.Name, row.Pos, row.Priority)
			}
			priority = domain.PriorityP2
		}

		plan.Streams = append(plan.Streams, domain.Workstream{
			Name:     row.Name,
			Color:    color,
			Priority: priority,
		})
	}
	if len(plan.Streams) == 0 {
		rep.errorf("workstreams sheet has no usable entries")
	}
}

func checkHolidays(rows []workbook.HolidayRow, plan *domain.Plan, rep *Report) {
	for _, row := range rows {
		date, err := workbook.ParseDate(row.Date)
		if err != nil {
			rep.warnf("public holiday row %d: invalid date %q", row.Pos, row.Date)
			continue
		}
		if calendar.IsWeekend(date) {
			rep.warnf("public holiday %q (%s) falls on a weekend", row.Name, workbook.FormatDate(date))
		}
		plan.Holidays.Add(date)
		if _, ok := plan.HolidayNames[date]; !ok {
			plan.HolidayNames[date] = row.Name
		}
	}
}

// checkLeave expands each leave range into the per-person date sets the
// scheduler consumes. Weekends and public holidays inside a range are
// not counted as leave, so a day off that is already a bank holiday is
// never subtracted twice from anyone's capacity.
func checkLeave(rows []workbook.LeaveRow, plan *domain.Plan, rep *Report) {
	for _, row := range rows {
		if _, ok := plan.Person(row.Person); !ok {
			rep.warnf("leave row %d: unknown person %q%s", row.Pos, row.Person, didYouMean(row.Person, plan.PersonNames()))
			continue
		}

		start, err := workbook.ParseDate(row.StartDate)
		if err != nil {
			rep.warnf("leave for %q (row %d): invalid start date %q", row.Person, row.Pos, row.StartDate)
			continue
		}
		end := start
		if row.EndDate != "" {
			end, err = workbook.ParseDate(row.EndDate)
			if err != nil {
				rep.warnf("leave for %q (row %d): invalid end date %q", row.Person, row.Pos, row.EndDate)
				continue
			}
		}
		if end.Before(start) {
			rep.warnf("leave for %q (row %d): end %s is before start %s", row.Person, row.Pos,
				workbook.FormatDate(end), workbook.FormatDate(start))
			continue
		}

		leaveType, ok := domain.ParseLeaveType(row.Type)
		if !ok && row.Type != "" {
			rep.warnf("leave for %q (row %d): type %q is not recognised, treating as %s", row.Person, row.Pos, row.Type, domain.LeaveOther)
		}

		set := plan.Leave[row.Person]
		if set == nil {
			set = calendar.DateSet{}
			plan.Leave[row.Person] = set
		}
		workingDays := 0
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			if calendar.IsWeekend(d) || plan.Holidays.Has(d) {
				continue
			}
			set.Add(d)
			workingDays++
		}

		plan.LeaveEntries = append(plan.LeaveEntries, domain.LeaveEntry{
			Person:      row.Person,
			Start:       start,
			End:         end,
			Type:        leaveType,
			Notes:       row.Notes,
			WorkingDays: workingDays,
		})
	}
}

func checkTasks(rows []workbook.TaskRow, plan *domain.Plan, rep *Report) {
	for _, row := range rows {
		if row.Name == "" {
			rep.warnf("task row %d: missing name", row.Pos)
			continue
		}

		status, ok := domain.ParseStatus(row.Status)
		if !ok {
			if row.Status == "" {
				rep.errorf("task %q (row %d): missing status", row.Name, row.Pos)
			} else {
				rep.errorf("task %q (row %d): status %q is not recognised", row.Name, row.Pos, row.Status)
			}
			continue
		}

		stream, ok := plan.Stream(row.Workstream)
		if !ok {
			rep.errorf("task %q (row %d): unknown workstream %q%s", row.Name, row.Pos,
				row.Workstream, didYouMean(row.Workstream, plan.StreamNames()))
			continue
		}
		if _, ok := plan.Person(row.Assignee); !ok {
			rep.errorf("task %q (row %d): unknown assignee %q%s", row.Name, row.Pos,
				row.Assignee, didYouMean(row.Assignee, plan.PersonNames()))
			continue
		}

		if row.StartDate == "" {
			rep.errorf("task %q (row %d): missing start date", row.Name, row.Pos)
			continue
		}
		start, err := workbook.ParseDate(row.StartDate)
		if err != nil {
			rep.errorf("task %q (row %d): invalid start date %q", row.Name, row.Pos, row.StartDate)
			continue
		}

		if !row.TotalDays.Valid {
			rep.errorf("task %q (row %d): missing total days", row.Name, row.Pos)
			continue
		}
		totalDays := row.TotalDays.Float64
		if math.IsNaN(totalDays) || totalDays <= 0 {
			rep.errorf("task %q (row %d): total days must be positive", row.Name, row.Pos)
			continue
		}

		originalDays := totalDays
		if row.OriginalDays.Valid {
			if od := row.OriginalDays.Float64; !math.IsNaN(od) && od > 0 {
				originalDays = od
			} else {
				rep.warnf("task %q (row %d): original days must be positive, using total days", row.Name, row.Pos)
			}
		}

		priority, ok := domain.ParsePriority(row.Priority)
		if !ok {
			if row.Priority != "" {
				rep.warnf("task %q (row %d): priority %q is not recognised, inheriting %s from %q",
					row.Name, row.Pos, row.Priority, stream.Priority, stream.Name)
			}
			priority = stream.Priority
		}

		confidence, ok := domain.ParseConfidence(row.Confidence)
		if !ok {
			rep.warnf("task %q (row %d): confidence %q is not recognised, ignoring it", row.Name, row.Pos, row.Confidence)
		}

		var actualEnd *time.Time
		if row.ActualEnd != "" {
			d, err := workbook.ParseDate(row.ActualEnd)
			if err != nil {
				rep.warnf("task %q (row %d): invalid actual end %q, ignoring it", row.Name, row.Pos, row.ActualEnd)
			} else {
				if status != domain.StatusComplete {
					rep.warnf("task %q (row %d): actual end set but status is %q", row.Name, row.Pos, status)
				}
				actualEnd = &d
			}
		}

		var deadline *time.Time
		if row.Deadline != "" {
			d, err := workbook.ParseDate(row.Deadline)
			if err != nil {
				rep.warnf("task %q (row %d): invalid deadline %q, ignoring it", row.Name, row.Pos, row.Deadline)
			} else {
				if d.Before(start) {
					rep.warnf("task %q (row %d): deadline %s is before start %s", row.Name, row.Pos,
						workbook.FormatDate(d), workbook.FormatDate(start))
				}
				deadline = &d
			}
		}

		plan.Tasks = append(plan.Tasks, domain.Task{
			Name:         row.Name,
			Workstream:   stream.Name,
			Assignee:     row.Assignee,
			Start:        start,
			TotalDays:    totalDays,
			OriginalDays: originalDays,
			Status:       status,
			Priority:     priority,
			ActualEnd:    actualEnd,
			BlockedBy:    row.BlockedBy,
			Deadline:     deadline,
			Confidence:   confidence,
			Notes:        row.Notes,
			Row:          row.Pos,
		})
	}
}
