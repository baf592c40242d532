package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alexanderramin/yatri/internal/contract"
	"github.com/alexanderramin/yatri/internal/domain"
	"github.com/alexanderramin/yatri/internal/repository"
	"github.com/alexanderramin/yatri/internal/scheduler"
	"github.com/alexanderramin/yatri/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubWeather returns a fixed observation, or an error when obs is nil.
type stubWeather struct {
	obs *domain.WeatherObservation
}

func (s stubWeather) Current(_ context.Context, _ string) (*domain.WeatherObservation, error) {
	if s.obs == nil {
		return nil, errors.New("service unreachable")
	}
	return s.obs, nil
}

// panicTravel exercises the assembler's recovery boundary.
type panicTravel struct{}

func (panicTravel) Estimate(_ context.Context, _, _ domain.GeoPoint, _ time.Time) scheduler.TravelEstimate {
	panic("routing table corrupted")
}

func seedGoa(t *testing.T) (repository.ActivityRepo, repository.EventRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	activityRepo := repository.NewSQLiteActivityRepo(database)
	eventRepo := repository.NewSQLiteEventRepo(database)

	ctx := context.Background()
	activities := []domain.Activity{
		testutil.NewTestActivity("Calangute Beach", domain.CategoryBeach,
			testutil.WithActivityID("a-01"), testutil.WithLocation(15.5439, 73.7554)),
		testutil.NewTestActivity("Palolem Beach", domain.CategoryBeach,
			testutil.WithActivityID("a-02"), testutil.WithLocation(15.0100, 74.0232)),
		testutil.NewTestActivity("Aguada Fort", domain.CategoryHistorical,
			testutil.WithActivityID("a-03"), testutil.WithLocation(15.4920, 73.7735)),
		testutil.NewTestActivity("Basilica of Bom Jesus", domain.CategoryReligious,
			testutil.WithActivityID("a-04"), testutil.WithTier(domain.TierFree), testutil.WithLocation(15.5009, 73.9116)),
		testutil.NewTestActivity("Dudhsagar Falls", domain.CategoryNature,
			testutil.WithActivityID("a-05"), testutil.WithLocation(15.3144, 74.3143)),
		testutil.NewTestActivity("Mapusa Market", domain.CategoryMarket,
			testutil.WithActivityID("a-06"), testutil.WithLocation(15.5937, 73.8142)),
		testutil.NewTestActivity("Casino Cruise", domain.CategoryEntertainment,
			testutil.WithActivityID("a-07"), testutil.WithTier(domain.TierLuxury), testutil.WithLocation(15.5005, 73.8310)),
		testutil.NewTestActivity("Parasailing at Baga", domain.CategoryAdventure,
			testutil.WithActivityID("a-08"), testutil.WithLocation(15.5524, 73.7517)),
	}
	require.NoError(t, activityRepo.Seed(ctx, "Goa", activities))

	events := []domain.Event{
		testutil.NewTestEvent("Saturday Night Market", domain.CategoryMarket,
			time.Date(2026, 11, 3, 19, 0, 0, 0, time.UTC), testutil.WithEventPrice(200)),
	}
	require.NoError(t, eventRepo.Seed(ctx, "Goa", events))

	return activityRepo, eventRepo
}

func planAt(t *testing.T, planner PlannerService, trip domain.TripParams) *contract.PlanResponse {
	t.Helper()
	req := contract.NewPlanRequest(trip)
	now := time.Date(2026, 11, 1, 12, 0, 0, 0, time.UTC)
	req.Now = &now

	resp, err := planner.Plan(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, resp)
	return resp
}

func TestPlan_FamilyBeachTripWithinBudget(t *testing.T) {
	activityRepo, eventRepo := seedGoa(t)
	planner := NewPlannerService(activityRepo, eventRepo, nil, nil, nil)

	trip := testutil.NewTestTrip("Goa",
		testutil.WithInterests("beaches"),
		testutil.WithArchetype(domain.TripFamily))
	resp := planAt(t, planner, trip)

	it := resp.Itinerary
	require.Len(t, it.Days, 3)
	assert.Equal(t, "Goa", it.Destination)
	assert.Equal(t, domain.SumDayCosts(it.Days), it.TotalCost)
	assert.Equal(t, trip.TotalBudget(), it.BudgetLimit)

	// A stated beach interest guarantees a beach on day one.
	hasBeach := false
	for _, s := range it.Days[0].Stops {
		if s.Category == domain.CategoryBeach {
			hasBeach = true
		}
	}
	assert.True(t, hasBeach, "day 1 should include a beach for a beaches interest")

	if it.BudgetStatus == domain.WithinBudget {
		assert.Empty(t, it.Alternatives)
		assert.LessOrEqual(t, int64(it.TotalCost), int64(it.BudgetLimit))
	}
	assert.Greater(t, it.Score.Total, 0.0)

	for _, day := range it.Days {
		assert.NotEmpty(t, day.WeatherNote)
		assert.NotEmpty(t, day.Tip)
	}
}

func TestPlan_TinyBudgetGoesOverWithAlternatives(t *testing.T) {
	activityRepo, eventRepo := seedGoa(t)
	planner := NewPlannerService(activityRepo, eventRepo, nil, nil, nil)

	trip := testutil.NewTestTrip("Goa", testutil.WithBudget(500), testutil.WithParty(1))
	resp := planAt(t, planner, trip)

	it := resp.Itinerary
	assert.Equal(t, domain.OverBudget, it.BudgetStatus)
	require.Len(t, it.Alternatives, 3, "multi-day over-budget plans offer all three strategies")
	for _, alt := range it.Alternatives {
		assert.GreaterOrEqual(t, int64(alt.Savings), int64(0))
		assert.Equal(t, domain.SumDayCosts(alt.Days), alt.TotalCost)
	}
}

func TestPlan_RainMovesBeachOutOfMorning(t *testing.T) {
	activityRepo, eventRepo := seedGoa(t)
	rain := stubWeather{obs: &domain.WeatherObservation{Condition: domain.ConditionRain, TempC: 25}}
	planner := NewPlannerService(activityRepo, eventRepo, rain, nil, nil)

	trip := testutil.NewTestTrip("Goa", testutil.WithInterests("beaches"))
	resp := planAt(t, planner, trip)

	assert.Empty(t, resp.Warnings)
	for _, day := range resp.Itinerary.Days {
		assert.Contains(t, day.WeatherNote, "Rain")
		if day.Activities() < 2 {
			continue
		}
		for _, s := range day.Stops {
			if s.Slot == domain.SlotMorning {
				assert.NotEqual(t, domain.CategoryBeach, s.Category,
					"day %d puts a beach in the morning despite rain", day.DayIndex)
			}
		}
	}
}

func TestPlan_WeatherFailureDegradesWithWarning(t *testing.T) {
	activityRepo, eventRepo := seedGoa(t)
	planner := NewPlannerService(activityRepo, eventRepo, stubWeather{}, nil, nil)

	resp := planAt(t, planner, testutil.NewTestTrip("Goa"))

	require.Len(t, resp.Warnings, 1)
	assert.Contains(t, resp.Warnings[0], "weather lookup unavailable")
	// Planning proceeds under default clear conditions.
	require.Len(t, resp.Itinerary.Days, 3)
	assert.Contains(t, resp.Itinerary.Days[0].WeatherNote, "Clear")
}

func TestPlan_IncludesUpcomingEventOnItsDay(t *testing.T) {
	activityRepo, eventRepo := seedGoa(t)
	planner := NewPlannerService(activityRepo, eventRepo, nil, nil, nil)

	resp := planAt(t, planner, testutil.NewTestTrip("Goa", testutil.WithBudget(20000)))

	found := false
	for _, day := range resp.Itinerary.Days {
		for _, s := range day.Stops {
			if s.Kind == domain.StopEvent {
				found = true
				assert.Equal(t, 2, day.DayIndex, "event belongs to 3 Nov, the second trip day")
				assert.Equal(t, domain.SlotEvening, s.Slot)
			}
		}
	}
	assert.True(t, found, "seeded event should be scheduled")
}

func TestPlan_ResponseSurvivesJSONRoundTrip(t *testing.T) {
	activityRepo, eventRepo := seedGoa(t)
	planner := NewPlannerService(activityRepo, eventRepo, nil, nil, nil)

	resp := planAt(t, planner, testutil.NewTestTrip("Goa", testutil.WithInterests("beaches")))

	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	var decoded contract.PlanResponse
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, resp.Itinerary.Destination, decoded.Itinerary.Destination)
	assert.Equal(t, resp.Itinerary.TotalCost, decoded.Itinerary.TotalCost)
	assert.Equal(t, resp.Itinerary.BudgetStatus, decoded.Itinerary.BudgetStatus)
	require.Len(t, decoded.Itinerary.Days, len(resp.Itinerary.Days))
	for i := range resp.Itinerary.Days {
		assert.Equal(t, resp.Itinerary.Days[i].EstimatedCost, decoded.Itinerary.Days[i].EstimatedCost)
		assert.Len(t, decoded.Itinerary.Days[i].Stops, len(resp.Itinerary.Days[i].Stops))
	}
}

func TestPlan_Deterministic(t *testing.T) {
	activityRepo, eventRepo := seedGoa(t)
	planner := NewPlannerService(activityRepo, eventRepo, nil, nil, nil)
	trip := testutil.NewTestTrip("Goa", testutil.WithInterests("beaches", "history"))

	first := planAt(t, planner, trip)
	for i := 0; i < 3; i++ {
		again := planAt(t, planner, trip)
		a, err := json.Marshal(first.Itinerary)
		require.NoError(t, err)
		b, err := json.Marshal(again.Itinerary)
		require.NoError(t, err)
		assert.JSONEq(t, string(a), string(b))
	}
}

func TestPlan_ValidationErrors(t *testing.T) {
	activityRepo, eventRepo := seedGoa(t)
	planner := NewPlannerService(activityRepo, eventRepo, nil, nil, nil)

	tests := []struct {
		name string
		mod  func(*domain.TripParams)
		code contract.PlanErrorCode
	}{
		{"zero budget", func(p *domain.TripParams) { p.BudgetPerPerson = 0 }, contract.ErrInvalidBudget},
		{"negative budget", func(p *domain.TripParams) { p.BudgetPerPerson = -100 }, contract.ErrInvalidBudget},
		{"zero party", func(p *domain.TripParams) { p.PartySize = 0 }, contract.ErrInvalidPartySize},
		{"zero days", func(p *domain.TripParams) { p.DurationDays = 0 }, contract.ErrInvalidDuration},
		{"unknown archetype", func(p *domain.TripParams) { p.Archetype = "royalty" }, contract.ErrInvalidArchetype},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trip := testutil.NewTestTrip("Goa")
			tt.mod(&trip)

			_, err := planner.Plan(context.Background(), contract.NewPlanRequest(trip))
			require.Error(t, err)

			var perr *contract.PlanError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.code, perr.Code)
		})
	}
}

func TestPlan_PanicSurfacesAsInternalError(t *testing.T) {
	activityRepo, eventRepo := seedGoa(t)
	planner := NewPlannerService(activityRepo, eventRepo, nil, panicTravel{}, nil)

	resp, err := planner.Plan(context.Background(), contract.NewPlanRequest(testutil.NewTestTrip("Goa")))

	assert.Nil(t, resp)
	var perr *contract.PlanError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, contract.ErrInternalError, perr.Code)
	assert.Contains(t, perr.Message, "itinerary computation failed")
}

func TestPlan_UnknownDestinationYieldsEmptyDays(t *testing.T) {
	activityRepo, eventRepo := seedGoa(t)
	planner := NewPlannerService(activityRepo, eventRepo, nil, nil, nil)

	resp := planAt(t, planner, testutil.NewTestTrip("Pune"))

	require.Len(t, resp.Itinerary.Days, 3)
	for _, day := range resp.Itinerary.Days {
		assert.Empty(t, day.Stops)
	}
	assert.Equal(t, domain.Money(0), resp.Itinerary.TotalCost)
	assert.Equal(t, domain.WithinBudget, resp.Itinerary.BudgetStatus)
}
