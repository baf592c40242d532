package domain

import "time"

// TripParams describes one planning request, populated by the trip-record
// collaborator. Validation of the raw request happens at the contract
// boundary; code past that boundary may assume the invariants hold.
type TripParams struct {
	Destination     string    `json:"destination"`
	BudgetPerPerson Money     `json:"budget_per_person"` // > 0
	PartySize       int       `json:"party_size"`        // >= 1
	Archetype       Archetype `json:"archetype"`
	Interests       []string  `json:"interests,omitempty"`
	StartDate       time.Time `json:"start_date"`
	DurationDays    int       `json:"duration_days"` // >= 1
}

// TotalBudget is the overall trip ceiling: per-person budget times party size.
func (t TripParams) TotalBudget() Money {
	return t.BudgetPerPerson.Scale(t.PartySize)
}

// DayBudget splits the total budget evenly across the requested duration.
func (t TripParams) DayBudget() Money {
	if t.DurationDays <= 0 {
		return 0
	}
	return t.TotalBudget() / Money(t.DurationDays)
}

// DayDate returns the calendar date of the given zero-based day index.
func (t TripParams) DayDate(dayIdx int) time.Time {
	return t.StartDate.AddDate(0, 0, dayIdx)
}
