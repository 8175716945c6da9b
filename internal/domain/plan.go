package domain

import (
	"time"

	"github.com/alexanderramin/workplan/internal/calendar"
)

// Plan is the fully validated model of one planning workbook: the roster,
// the workstreams, every task, and the calendars that constrain them.
// Everything downstream of validation consumes a Plan and nothing else.
type Plan struct {
	Team    []Person
	Streams []Workstream
	Tasks   []Task

	Holidays     calendar.DateSet
	HolidayNames map[time.Time]string

	Leave        calendar.Leave
	LeaveEntries []LeaveEntry
}

// PersonNames returns roster names in sheet order.
func (p *Plan) PersonNames() []string {
	names := make([]string, len(p.Team))
	for i, m := range p.Team {
		names[i] = m.Name
	}
	return names
}

// Person looks up a roster member by name.
func (p *Plan) Person(name string) (Person, bool) {
	for _, m := range p.Team {
		if m.Name == name {
			return m, true
		}
	}
	return Person{}, false
}

// Stream looks up a workstream by name.
func (p *Plan) Stream(name string) (Workstream, bool) {
	for _, s := range p.Streams {
		if s.Name == name {
			return s, true
		}
	}
	return Workstream{}, false
}

// StreamNames returns workstream names in sheet order.
func (p *Plan) StreamNames() []string {
	names := make([]string, len(p.Streams))
	for i, s := range p.Streams {
		names[i] = s.Name
	}
	return names
}
