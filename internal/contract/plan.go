package contract

import (
	"time"

	"github.com/alexanderramin/yatri/internal/domain"
)

// PlanRequest carries one planning request across the service boundary.
// Now pins the clock for reproducible output; nil means wall time.
type PlanRequest struct {
	Trip domain.TripParams `json:"trip"`
	Now  *time.Time        `json:"now,omitempty"`
}

func NewPlanRequest(trip domain.TripParams) PlanRequest {
	return PlanRequest{Trip: trip}
}

// Validate rejects requests the scheduler must never see. These conditions
// are owned by the request-validation collaborator; checking them again here
// keeps the boundary honest.
func (r PlanRequest) Validate() error {
	if r.Trip.BudgetPerPerson <= 0 {
		return &PlanError{Code: ErrInvalidBudget, Message: "budget_per_person must be > 0"}
	}
	if r.Trip.PartySize < 1 {
		return &PlanError{Code: ErrInvalidPartySize, Message: "party_size must be >= 1"}
	}
	if r.Trip.DurationDays < 1 {
		return &PlanError{Code: ErrInvalidDuration, Message: "duration_days must be >= 1"}
	}
	if !domain.ValidArchetypes[string(r.Trip.Archetype)] {
		return &PlanError{Code: ErrInvalidArchetype, Message: "unknown trip archetype: " + string(r.Trip.Archetype)}
	}
	return nil
}

// PlanResponse wraps the itinerary with request metadata. Warnings surface
// degraded external lookups without failing the plan.
type PlanResponse struct {
	GeneratedAt time.Time        `json:"generated_at"`
	Itinerary   domain.Itinerary `json:"itinerary"`
	Warnings    []string         `json:"warnings,omitempty"`
}

type PlanErrorCode string

const (
	ErrInvalidBudget    PlanErrorCode = "INVALID_BUDGET"
	ErrInvalidPartySize PlanErrorCode = "INVALID_PARTY_SIZE"
	ErrInvalidDuration  PlanErrorCode = "INVALID_DURATION"
	ErrInvalidArchetype PlanErrorCode = "INVALID_ARCHETYPE"
	ErrInternalError    PlanErrorCode = "INTERNAL_ERROR"
)

type PlanError struct {
	Code    PlanErrorCode
	Message string
}

func (e *PlanError) Error() string {
	return string(e.Code) + ": " + e.Message
}
