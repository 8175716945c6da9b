package domain

// Workstream groups tasks under a named initiative with a chart color and
// a priority label.
type Workstream struct {
	Name     string
	Color    string
	Priority Priority
}
