package domain

import "strings"

type Status string

const (
	StatusPlanned    Status = "Planned"
	StatusInProgress Status = "In Progress"
	StatusComplete   Status = "Complete"
	StatusOnHold     Status = "On Hold"
)

// StatusValues is the canonical set of accepted task statuses, in display order.
var StatusValues = []Status{StatusPlanned, StatusInProgress, StatusComplete, StatusOnHold}

// ParseStatus matches a raw cell against the status vocabulary, ignoring
// surrounding whitespace and letter case.
func ParseStatus(raw string) (Status, bool) {
	s := strings.TrimSpace(raw)
	for _, v := range StatusValues {
		if strings.EqualFold(s, string(v)) {
			return v, true
		}
	}
	return "", false
}

// Allocatable reports whether the task consumes team capacity.
// On Hold work is parked and booked against nobody.
func (s Status) Allocatable() bool {
	return s != StatusOnHold
}

// Open reports whether the outcome is still unknown.
func (s Status) Open() bool {
	return s == StatusPlanned || s == StatusInProgress
}

type Priority string

const (
	PriorityP1 Priority = "P1"
	PriorityP2 Priority = "P2"
	PriorityP3 Priority = "P3"
	PriorityP4 Priority = "P4"
)

var PriorityValues = []Priority{PriorityP1, PriorityP2, PriorityP3, PriorityP4}

func ParsePriority(raw string) (Priority, bool) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	for _, v := range PriorityValues {
		if s == string(v) {
			return v, true
		}
	}
	return "", false
}

// Rank orders priorities for sorting. Labels outside the vocabulary still
// sort by their digit, so a stray P5 lands after P4 instead of on top;
// anything unparseable sinks to the bottom.
func (p Priority) Rank() int {
	if len(p) == 2 && p[0] == 'P' && p[1] >= '1' && p[1] <= '9' {
		return int(p[1] - '0')
	}
	return 9
}

type Confidence string

const (
	ConfidenceNone   Confidence = ""
	ConfidenceHigh   Confidence = "High"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceLow    Confidence = "Low"
)

var ConfidenceValues = []Confidence{ConfidenceHigh, ConfidenceMedium, ConfidenceLow}

func ParseConfidence(raw string) (Confidence, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ConfidenceNone, true
	}
	for _, v := range ConfidenceValues {
		if strings.EqualFold(s, string(v)) {
			return v, true
		}
	}
	return ConfidenceNone, false
}

type LeaveType string

const (
	LeaveAnnual   LeaveType = "Annual Leave"
	LeaveSick     LeaveType = "Sick Leave"
	LeaveTraining LeaveType = "Training"
	LeaveParental LeaveType = "Parental Leave"
	LeaveOther    LeaveType = "Other"
)

var LeaveTypes = []LeaveType{LeaveAnnual, LeaveSick, LeaveTraining, LeaveParental, LeaveOther}

// ParseLeaveType is lenient: anything outside the vocabulary folds into
// LeaveOther so a misspelt type still blocks the person's calendar.
func ParseLeaveType(raw string) (LeaveType, bool) {
	s := strings.TrimSpace(raw)
	for _, v := range LeaveTypes {
		if strings.EqualFold(s, string(v)) {
			return v, true
		}
	}
	return LeaveOther, false
}
