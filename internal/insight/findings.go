// Package insight derives warnings and suggestions from an already
// computed schedule: over-booked weeks, slipped deadlines, parked work,
// slack worth reallocating. It never re-runs the scheduler; every rule
// reads the schedules and capacity buckets as they stand.
package insight

import (
	"time"

	"github.com/alexanderramin/workplan/internal/calendar"
	"github.com/alexanderramin/workplan/internal/capacity"
	"github.com/alexanderramin/workplan/internal/domain"
	"github.com/alexanderramin/workplan/internal/scheduler"
)

// maxSpareEntries bounds the spare-capacity list; anything beyond it is
// folded into an overflow count.
const maxSpareEntries = 5

// spareThresholdDays is the minimum free-day gap worth reporting.
const spareThresholdDays = 3.0

// Inputs carries everything the rules read.
type Inputs struct {
	Tasks    []scheduler.ScheduledTask
	Team     []domain.Person
	Weekly   *capacity.Report
	Holidays calendar.DateSet
	Leave    calendar.Leave
	Now      time.Time
}

// OverCapacityWeek flags a person booked beyond their availability.
type OverCapacityWeek struct {
	Week      time.Time
	Person    string
	Allocated float64
	Available float64
}

// PriorityTotal is the demand booked under one priority label.
type PriorityTotal struct {
	Priority  domain.Priority
	TaskCount int
	TotalDays float64
}

// DeadlineRisk flags a task whose effective end lands past its deadline.
type DeadlineRisk struct {
	Task     scheduler.ScheduledTask
	End      time.Time
	Deadline time.Time
	DaysLate int
}

// ConcurrentLoad flags a person juggling too many open tasks in one week.
type ConcurrentLoad struct {
	Week      time.Time
	Person    string
	TaskNames []string
}

// Overdue flags an In Progress task whose planned end has passed.
type Overdue struct {
	Task        scheduler.ScheduledTask
	DaysOverdue int
}

// Blocked reports a task that is waiting: parked On Hold or stuck behind
// a named blocker.
type Blocked struct {
	Task        scheduler.ScheduledTask
	DaysBlocked int
	Reason      string
}

// Reallocation suggests pulling a task forward into slack left by an
// early finish.
type Reallocation struct {
	Completed scheduler.ScheduledTask
	Next      scheduler.ScheduledTask
	SlackDays int
}

// SpareWeek is a future week where a person has meaningful free capacity.
type SpareWeek struct {
	Week      time.Time
	Person    string
	SpareDays float64
}

// Findings is the full diagnostic output for one plan.
type Findings struct {
	OverCapacity  []OverCapacityWeek
	Priorities    []PriorityTotal
	LowConfidence []scheduler.ScheduledTask
	DeadlineRisks []DeadlineRisk
	Concurrent    []ConcurrentLoad
	Overdue       []Overdue
	Blocked       []Blocked
	Reallocations []Reallocation
	SpareWeeks    []SpareWeek

	// SpareOverflow counts spare weeks dropped once SpareWeeks hit its cap.
	SpareOverflow int
}

// Analyze runs every rule over the inputs.
func Analyze(in Inputs) *Findings {
	f := &Findings{
		OverCapacity:  overCapacity(in),
		Priorities:    priorityTotals(in.Tasks),
		LowConfidence: lowConfidence(in.Tasks),
		DeadlineRisks: deadlineRisks(in),
		Concurrent:    concurrentLoads(in),
		Overdue:       overdueTasks(in),
		Blocked:       blockedTasks(in),
		Reallocations: reallocations(in),
	}
	f.SpareWeeks, f.SpareOverflow = spareWeeks(in)
	return f
}

// HasWarnings reports whether anything needs a human's attention.
func (f *Findings) HasWarnings() bool {
	return len(f.OverCapacity) > 0 || len(f.LowConfidence) > 0 ||
		len(f.DeadlineRisks) > 0 || len(f.Concurrent) > 0 ||
		len(f.Overdue) > 0 || len(f.Blocked) > 0
}
