package domain

// Person is one row of the team roster.
type Person struct {
	Name        string
	Role        string
	DaysPerWeek float64
}

// WeeklyFraction is the share of a full five-day week this person works.
func (p Person) WeeklyFraction() float64 {
	return p.DaysPerWeek / 5.0
}
