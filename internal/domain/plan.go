package domain

import "time"

type ScoreReasonCode string

const (
	ReasonBudgetFit         ScoreReasonCode = "BUDGET_FIT"
	ReasonArchetypeAffinity ScoreReasonCode = "ARCHETYPE_AFFINITY"
	ReasonRating            ScoreReasonCode = "RATING"
	ReasonInterestMatch     ScoreReasonCode = "INTEREST_MATCH"
	ReasonInterestMiss      ScoreReasonCode = "INTEREST_MISS"
	ReasonWeatherFit        ScoreReasonCode = "WEATHER_FIT"
	ReasonTieBreak          ScoreReasonCode = "TIE_BREAK"
)

// ScoreReason records one scoring factor's contribution, so every pick in the
// final plan can be explained.
type ScoreReason struct {
	Code    ScoreReasonCode `json:"code"`
	Message string          `json:"message"`
	Delta   float64         `json:"delta"`
}

// ScheduledStop is one timed entry in a day plan. TravelMin, TravelKm and
// TravelCost describe the hop from the previous stop and are zero for the
// first stop of a day.
type ScheduledStop struct {
	Slot        TimeSlot      `json:"slot"`
	StartTime   time.Time     `json:"start_time"`
	Kind        StopKind      `json:"kind"`
	SourceID    string        `json:"source_id"`
	Name        string        `json:"name"`
	Category    Category      `json:"category"`
	DurationMin int           `json:"duration_min"`
	Cost        Money         `json:"cost"`
	Note        string        `json:"note,omitempty"`
	TravelMin   int           `json:"travel_min,omitempty"`
	TravelKm    float64       `json:"travel_km,omitempty"`
	TravelCost  Money         `json:"travel_cost,omitempty"`
	Score       float64       `json:"score,omitempty"`
	Reasons     []ScoreReason `json:"reasons,omitempty"`
}

// DayPlan is one scheduled day. EstimatedCost always equals the sum of stop
// costs plus TransportCost.
type DayPlan struct {
	DayIndex      int             `json:"day_index"` // 1-based
	Date          time.Time       `json:"date"`
	Stops         []ScheduledStop `json:"stops"`
	EstimatedCost Money           `json:"estimated_cost"`
	TransportCost Money           `json:"transport_cost"`
	WeatherNote   string          `json:"weather_note,omitempty"`
	Tip           string          `json:"tip,omitempty"`
}

// Recalc recomputes TransportCost and EstimatedCost from the remaining stops.
// Call it after any stop mutation.
func (d *DayPlan) Recalc() {
	var transport, total Money
	for _, s := range d.Stops {
		transport += s.TravelCost
		total += s.Cost
	}
	d.TransportCost = transport
	d.EstimatedCost = total + transport
}

// Activities counts stops of kind activity (events are never trimmed).
func (d *DayPlan) Activities() int {
	n := 0
	for _, s := range d.Stops {
		if s.Kind == StopActivity {
			n++
		}
	}
	return n
}

// Alternative is one over-budget remediation computed from a copy of the base
// plan. Savings is base total minus the alternative's total, never negative
// by construction; a zero value marks the strategy as ineffective.
type Alternative struct {
	Strategy    AlternativeStrategy `json:"strategy"`
	Description string              `json:"description"`
	Days        []DayPlan           `json:"days"`
	TotalCost   Money               `json:"total_cost"`
	Savings     Money               `json:"savings"`
}

// ScoreBreakdown exposes the four components of the 0–100 optimization score.
// Preference and Weather are placeholder constants pending real measurements.
type ScoreBreakdown struct {
	BudgetAdherence float64 `json:"budget_adherence"`
	Variety         float64 `json:"variety"`
	Preference      float64 `json:"preference"`
	Weather         float64 `json:"weather"`
	Total           float64 `json:"total"`
}

// Itinerary is the final planning result handed to the persistence and UI
// collaborators.
type Itinerary struct {
	Destination  string         `json:"destination"`
	Days         []DayPlan      `json:"days"`
	TotalCost    Money          `json:"total_cost"`
	BudgetLimit  Money          `json:"budget_limit"`
	BudgetStatus BudgetStatus   `json:"budget_status"`
	Alternatives []Alternative  `json:"alternatives,omitempty"`
	Score        ScoreBreakdown `json:"optimization_score"`
}

// SumDayCosts totals the per-day estimated costs.
func SumDayCosts(days []DayPlan) Money {
	var total Money
	for _, d := range days {
		total += d.EstimatedCost
	}
	return total
}
