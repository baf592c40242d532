package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/yatri/internal/contract"
	"github.com/alexanderramin/yatri/internal/domain"
	"github.com/alexanderramin/yatri/internal/repository"
	"github.com/alexanderramin/yatri/internal/scheduler"
	"github.com/alexanderramin/yatri/internal/tips"
	"github.com/alexanderramin/yatri/internal/weather"
)

type plannerService struct {
	activities repository.ActivityRepo
	events     repository.EventRepo
	weather    weather.Client
	travel     scheduler.TravelEstimator
	tips       *tips.Service
	limits     scheduler.Limits
	weights    scheduler.ScoringWeights
	observer   UseCaseObserver
}

// PlannerOption tunes the planner's heuristic knobs.
type PlannerOption func(*plannerService)

// WithLimits overrides the per-day activity and category caps.
func WithLimits(limits scheduler.Limits) PlannerOption {
	return func(s *plannerService) { s.limits = limits }
}

// WithWeights overrides the scoring weights.
func WithWeights(weights scheduler.ScoringWeights) PlannerOption {
	return func(s *plannerService) { s.weights = weights }
}

// WithObserver attaches use-case telemetry.
func WithObserver(obs UseCaseObserver) PlannerOption {
	return func(s *plannerService) {
		if obs != nil {
			s.observer = obs
		}
	}
}

// NewPlannerService wires the itinerary assembler. Nil weather, travel, and
// tip collaborators degrade to their local fallbacks.
func NewPlannerService(
	activities repository.ActivityRepo,
	events repository.EventRepo,
	weatherClient weather.Client,
	travel scheduler.TravelEstimator,
	tipSvc *tips.Service,
	opts ...PlannerOption,
) PlannerService {
	if weatherClient == nil {
		weatherClient = weather.Disabled{}
	}
	if travel == nil {
		travel = scheduler.HeuristicTravel{}
	}
	if tipSvc == nil {
		tipSvc = tips.NewService(nil)
	}
	s := &plannerService{
		activities: activities,
		events:     events,
		weather:    weatherClient,
		travel:     travel,
		tips:       tipSvc,
		limits:     scheduler.DefaultLimits(),
		weights:    scheduler.DefaultWeights(),
		observer:   NoopUseCaseObserver{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Plan runs the full assembly pipeline: weather, scoring, day building,
// budget check, alternatives, optimization score. Any unexpected internal
// fault is caught here and surfaced as a single generic computation failure,
// never a partial itinerary.
func (s *plannerService) Plan(ctx context.Context, req contract.PlanRequest) (resp *contract.PlanResponse, err error) {
	started := time.Now()
	defer func() {
		if r := recover(); r != nil {
			resp = nil
			err = &contract.PlanError{
				Code:    contract.ErrInternalError,
				Message: fmt.Sprintf("itinerary computation failed: %v", r),
			}
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "plan_itinerary",
			Duration:  time.Since(started),
			Success:   err == nil,
			Err:       err,
			StartedAt: started,
			Fields:    map[string]any{"destination": req.Trip.Destination},
		})
	}()

	if err := req.Validate(); err != nil {
		return nil, err
	}
	trip := req.Trip
	now := time.Now().UTC()
	if req.Now != nil {
		now = *req.Now
	}

	pool, err := s.activities.ListByDestination(ctx, trip.Destination)
	if err != nil {
		return nil, fmt.Errorf("loading candidate activities: %w", err)
	}
	eventPool, err := s.events.ListUpcoming(ctx, trip.Destination, now)
	if err != nil {
		return nil, fmt.Errorf("loading candidate events: %w", err)
	}

	var warnings []string

	// Weather degrades to the fixed default, never to an error.
	obs, werr := s.weather.Current(ctx, trip.Destination)
	if werr != nil {
		obs = nil
		warnings = append(warnings, "weather lookup unavailable, assuming clear conditions")
	}
	impact := scheduler.AssessWeather(obs)
	note := scheduler.WeatherNote(obs, impact)

	sctx := scheduler.NewScoringContext(trip, impact, s.limits, s.weights)
	ranked := scheduler.ScoreActivities(pool, sctx)
	scoredEvents := scheduler.ScoreEvents(futureEvents(eventPool, now), sctx)

	days := scheduler.BuildDays(ctx, scheduler.DayBuilderInput{
		Activities:  ranked,
		Events:      scoredEvents,
		Trip:        trip,
		Impact:      impact,
		WeatherNote: note,
		Limits:      s.limits,
		Travel:      s.travel,
	})

	for i := range days {
		days[i].Tip = s.tips.DayTip(ctx, tips.TipRequest{
			Destination: trip.Destination,
			Date:        days[i].Date,
			Categories:  dayCategories(days[i]),
			WeatherNote: note,
		})
	}

	totalBudget := trip.TotalBudget()
	totalCost := domain.SumDayCosts(days)

	itinerary := domain.Itinerary{
		Destination:  trip.Destination,
		Days:         days,
		TotalCost:    totalCost,
		BudgetLimit:  totalBudget,
		BudgetStatus: domain.WithinBudget,
	}
	if totalCost > totalBudget {
		itinerary.BudgetStatus = domain.OverBudget
		itinerary.Alternatives = scheduler.GenerateAlternatives(days, totalBudget)
	}
	itinerary.Score = scheduler.ComputeScore(totalCost, totalBudget, len(days))

	return &contract.PlanResponse{
		GeneratedAt: now,
		Itinerary:   itinerary,
		Warnings:    warnings,
	}, nil
}

// futureEvents keeps only events starting strictly after now. The repository
// already filters at the store; this guards pools injected from elsewhere.
func futureEvents(events []domain.Event, now time.Time) []domain.Event {
	out := make([]domain.Event, 0, len(events))
	for _, e := range events {
		if e.StartTime.After(now) {
			out = append(out, e)
		}
	}
	return out
}

// dayCategories lists the day's distinct stop categories in schedule order.
func dayCategories(day domain.DayPlan) []domain.Category {
	seen := make(map[domain.Category]bool)
	var out []domain.Category
	for _, stop := range day.Stops {
		if !seen[stop.Category] {
			seen[stop.Category] = true
			out = append(out, stop.Category)
		}
	}
	return out
}
