package contract

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/alexanderramin/yatri/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTrip() domain.TripParams {
	return domain.TripParams{
		Destination:     "Goa",
		BudgetPerPerson: 5000,
		PartySize:       2,
		Archetype:       domain.TripFamily,
		StartDate:       time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC),
		DurationDays:    3,
	}
}

func TestPlanRequest_ValidateAccepts(t *testing.T) {
	req := NewPlanRequest(validTrip())
	assert.NoError(t, req.Validate())
}

func TestPlanRequest_ValidateRejects(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*domain.TripParams)
		code PlanErrorCode
	}{
		{"zero budget", func(p *domain.TripParams) { p.BudgetPerPerson = 0 }, ErrInvalidBudget},
		{"negative budget", func(p *domain.TripParams) { p.BudgetPerPerson = -1 }, ErrInvalidBudget},
		{"zero party", func(p *domain.TripParams) { p.PartySize = 0 }, ErrInvalidPartySize},
		{"negative party", func(p *domain.TripParams) { p.PartySize = -3 }, ErrInvalidPartySize},
		{"zero duration", func(p *domain.TripParams) { p.DurationDays = 0 }, ErrInvalidDuration},
		{"unknown archetype", func(p *domain.TripParams) { p.Archetype = "royalty" }, ErrInvalidArchetype},
		{"empty archetype", func(p *domain.TripParams) { p.Archetype = "" }, ErrInvalidArchetype},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trip := validTrip()
			tt.mod(&trip)

			err := NewPlanRequest(trip).Validate()
			require.Error(t, err)

			var perr *PlanError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.code, perr.Code)
		})
	}
}

func TestPlanError_ErrorIncludesCode(t *testing.T) {
	err := &PlanError{Code: ErrInvalidBudget, Message: "budget_per_person must be > 0"}
	assert.Equal(t, "INVALID_BUDGET: budget_per_person must be > 0", err.Error())
}

func TestPlanRequest_JSONRoundTrip(t *testing.T) {
	now := time.Date(2026, 11, 1, 12, 0, 0, 0, time.UTC)
	req := NewPlanRequest(validTrip())
	req.Now = &now
	req.Trip.Interests = []string{"beaches", "local cuisine"}

	raw, err := json.Marshal(req)
	require.NoError(t, err)

	var decoded PlanRequest
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, req.Trip, decoded.Trip)
	require.NotNil(t, decoded.Now)
	assert.True(t, decoded.Now.Equal(now))
}
