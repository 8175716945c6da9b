package workbook

import "database/sql"

func days(f float64) sql.NullFloat64 { return sql.NullFloat64{Float64: f, Valid: true} }

// Template returns the example workbook written by `workplan init`: a
// two-person team, workstreams across the priority range, tasks in every
// status and a leave row of every type, so the first report a user
// renders already shows bars, warnings and suggestions, and the sheets
// double as a vocabulary reference. It must load with zero validation
// errors.
func Template() *Rows {
	return &Rows{
		Team: []TeamRow{
			{Name: "Alex", Role: "Lead", DaysPerWeek: days(5)},
			{Name: "Sam", Role: "Analyst", DaysPerWeek: days(4)},
		},
		Streams: []StreamRow{
			{Name: "Product Analytics (BAU)", Color: "#00BCD4", Priority: "P1"},
			{Name: "Platform Rebuild", Color: "#F44336", Priority: "P1"},
			{Name: "2027 Strategy", Color: "#2196F3", Priority: "P2"},
			{Name: "Line Management", Color: "#FF9800", Priority: "P3"},
			{Name: "Team Events", Color: "#9C27B0", Priority: "P4"},
		},
		Tasks: []TaskRow{
			{
				Name: "Checkout AB Test Analysis", Workstream: "Product Analytics (BAU)",
				Assignee: "Alex", StartDate: "2026-02-16", TotalDays: days(10),
				Status: "In Progress", OriginalDays: days(8), Priority: "P1",
				Deadline: "2026-03-06", Confidence: "High",
				Notes: "Readout promised to product team",
			},
			{
				Name: "Navigation AB Test Analysis", Workstream: "Product Analytics (BAU)",
				Assignee: "Sam", StartDate: "2026-03-02", TotalDays: days(8),
				Status: "Planned", Priority: "P1", Confidence: "Medium",
			},
			{
				Name: "Retention Dashboard Refresh", Workstream: "Product Analytics (BAU)",
				Assignee: "Sam", StartDate: "2026-02-16", TotalDays: days(5),
				Status: "Complete", OriginalDays: days(5), Priority: "P2",
				ActualEnd: "2026-02-19",
			},
			{
				Name: "Warehouse Requirements", Workstream: "Platform Rebuild",
				Assignee: "Alex", StartDate: "2026-03-09", TotalDays: days(15),
				Status: "Planned", Priority: "P1", Confidence: "Low",
				Notes: "Discovery and stakeholder interviews",
			},
			{
				Name: "Pipeline Migration Spike", Workstream: "Platform Rebuild",
				Assignee: "Sam", StartDate: "2026-03-16", TotalDays: days(12),
				Status: "On Hold", Priority: "P2", BlockedBy: "Waiting for vendor contract",
			},
			{
				Name: "Market Landscape Review", Workstream: "2027 Strategy",
				Assignee: "Alex", StartDate: "2026-04-07", TotalDays: days(15),
				Status: "Planned", Priority: "P2", Confidence: "Medium",
			},
			{
				Name: "Quarterly Reviews", Workstream: "Line Management",
				Assignee: "Alex", StartDate: "2026-03-02", TotalDays: days(2.5),
				Status: "Planned", Priority: "P3",
			},
			{
				Name: "Spring Offsite Planning", Workstream: "Team Events",
				Assignee: "Sam", StartDate: "2026-03-23", TotalDays: days(3),
				Status: "Planned", Priority: "P4",
			},
		},
		Holidays: []HolidayRow{
			{Date: "2026-04-03", Name: "Good Friday"},
			{Date: "2026-04-06", Name: "Easter Monday"},
			{Date: "2026-05-04", Name: "Early May Bank Holiday"},
		},
		Leave: []LeaveRow{
			{Person: "Sam", StartDate: "2026-02-23", EndDate: "2026-02-23", Type: "Sick Leave"},
			{Person: "Sam", StartDate: "2026-03-11", EndDate: "2026-03-11", Type: "Training"},
			{Person: "Alex", StartDate: "2026-03-30", EndDate: "2026-04-02", Type: "Annual Leave", Notes: "Easter break"},
			{Person: "Sam", StartDate: "2026-04-24", EndDate: "2026-04-24", Type: "Other", Notes: "Jury duty"},
			{Person: "Alex", StartDate: "2026-05-07", EndDate: "2026-05-08", Type: "Parental Leave"},
		},
	}
}
