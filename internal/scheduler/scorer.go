package scheduler

import (
	"fmt"
	"hash/fnv"

	"github.com/alexanderramin/yatri/internal/domain"
)

type ScoringWeights struct {
	BudgetFit float64
	Affinity  float64
	Rating    float64
	Interest  float64
	Weather   float64
}

func DefaultWeights() ScoringWeights {
	return ScoringWeights{
		BudgetFit: 1.0,
		Affinity:  1.0,
		Rating:    4.0,
		Interest:  1.0,
		Weather:   1.0,
	}
}

// ScoringContext is the per-request state shared by all candidates.
type ScoringContext struct {
	Trip    domain.TripParams
	Impact  domain.WeatherImpact
	Limits  Limits
	Weights ScoringWeights

	// interests is the resolved interest-category set, computed once.
	interests map[domain.Category]bool
}

func NewScoringContext(trip domain.TripParams, impact domain.WeatherImpact, limits Limits, weights ScoringWeights) ScoringContext {
	interests := make(map[domain.Category]bool)
	for _, cat := range InterestCategories(trip.Interests) {
		interests[cat] = true
	}
	return ScoringContext{Trip: trip, Impact: impact, Limits: limits, Weights: weights, interests: interests}
}

// activityAllotment is the per-activity share of a day's budget: the budget
// band factor compares each candidate's cost against it.
func (c ScoringContext) activityAllotment() domain.Money {
	slots := c.Limits.MaxActivitiesPerDay
	if slots < 1 {
		slots = 1
	}
	return c.Trip.DayBudget() / domain.Money(slots)
}

// ScoredActivity is an activity annotated with its derived cost, score, and
// the reasons behind the score. The underlying activity is never mutated.
type ScoredActivity struct {
	Activity      domain.Activity
	EstimatedCost domain.Money
	Score         float64
	Reasons       []domain.ScoreReason
}

// ScoredEvent mirrors ScoredActivity for dated candidates.
type ScoredEvent struct {
	Event         domain.Event
	EstimatedCost domain.Money
	Score         float64
}

// ScoreActivities scores and canonically sorts the candidate pool. The result
// is fully reproducible: no wall clock, no PRNG; ties break on a stable hash
// of the candidate ID, then on the ID itself.
func ScoreActivities(pool []domain.Activity, sctx ScoringContext) []ScoredActivity {
	scored := make([]ScoredActivity, 0, len(pool))
	for _, a := range pool {
		scored = append(scored, scoreActivity(a, sctx))
	}
	CanonicalSort(scored)
	return scored
}

func scoreActivity(a domain.Activity, sctx ScoringContext) ScoredActivity {
	result := ScoredActivity{
		Activity:      a,
		EstimatedCost: EstimateActivityCost(a, sctx.Trip.PartySize),
	}

	factors := []func(domain.Activity, domain.Money, ScoringContext) (float64, *domain.ScoreReason){
		scoreBudgetFit,
		scoreArchetypeAffinity,
		scoreRating,
		scoreInterestMatch,
		scoreWeatherFit,
		scoreTieBreak,
	}
	for _, f := range factors {
		delta, reason := f(a, result.EstimatedCost, sctx)
		result.Score += delta
		if reason != nil {
			result.Reasons = append(result.Reasons, *reason)
		}
	}
	return result
}

// scoreBudgetFit rewards candidates that consume a small share of the
// per-activity allotment, in three bands.
func scoreBudgetFit(_ domain.Activity, cost domain.Money, sctx ScoringContext) (float64, *domain.ScoreReason) {
	allotment := sctx.activityAllotment()
	if allotment <= 0 {
		return 0, nil
	}
	sharePct := int64(cost) * 100 / int64(allotment)

	var delta float64
	switch {
	case sharePct <= 30:
		delta = 30 * sctx.Weights.BudgetFit
	case sharePct <= 50:
		delta = 20 * sctx.Weights.BudgetFit
	case sharePct <= 70:
		delta = 10 * sctx.Weights.BudgetFit
	default:
		return 0, nil
	}
	return delta, &domain.ScoreReason{
		Code:    domain.ReasonBudgetFit,
		Message: fmt.Sprintf("Uses %d%% of the per-activity allotment", sharePct),
		Delta:   delta,
	}
}

func scoreArchetypeAffinity(a domain.Activity, _ domain.Money, sctx ScoringContext) (float64, *domain.ScoreReason) {
	weight, ok := archetypeAffinity[sctx.Trip.Archetype][a.Category]
	if !ok || weight == 0 {
		return 0, nil
	}
	delta := weight * sctx.Weights.Affinity
	return delta, &domain.ScoreReason{
		Code:    domain.ReasonArchetypeAffinity,
		Message: fmt.Sprintf("Good fit for a %s trip", sctx.Trip.Archetype),
		Delta:   delta,
	}
}

func scoreRating(a domain.Activity, _ domain.Money, sctx ScoringContext) (float64, *domain.ScoreReason) {
	if a.Rating <= 0 {
		return 0, nil
	}
	delta := a.Rating * sctx.Weights.Rating
	return delta, &domain.ScoreReason{
		Code:    domain.ReasonRating,
		Message: fmt.Sprintf("Rated %.1f/5", a.Rating),
		Delta:   delta,
	}
}

// scoreInterestMatch adds a large bonus when the category matches a stated
// interest, and a small penalty otherwise so stated interests dominate.
func scoreInterestMatch(a domain.Activity, _ domain.Money, sctx ScoringContext) (float64, *domain.ScoreReason) {
	if len(sctx.interests) == 0 {
		return 0, nil
	}
	if sctx.interests[a.Category] {
		delta := 25 * sctx.Weights.Interest
		return delta, &domain.ScoreReason{
			Code:    domain.ReasonInterestMatch,
			Message: "Matches a stated interest",
			Delta:   delta,
		}
	}
	delta := -5 * sctx.Weights.Interest
	return delta, &domain.ScoreReason{
		Code:    domain.ReasonInterestMiss,
		Message: "Outside stated interests",
		Delta:   delta,
	}
}

// scoreWeatherFit nudges candidates toward the day's conditions: rain pushes
// beach and open-air categories down and indoor categories up.
func scoreWeatherFit(a domain.Activity, _ domain.Money, sctx ScoringContext) (float64, *domain.ScoreReason) {
	var delta float64
	switch a.Category {
	case domain.CategoryBeach:
		switch sctx.Impact.Beach {
		case domain.Unfavorable:
			delta = -15 * sctx.Weights.Weather
		case domain.Moderate:
			delta = -5 * sctx.Weights.Weather
		}
	case domain.CategoryNature, domain.CategoryAdventure, domain.CategoryHistorical:
		switch sctx.Impact.Outdoor {
		case domain.Unfavorable:
			delta = -10 * sctx.Weights.Weather
		case domain.Moderate:
			delta = -3 * sctx.Weights.Weather
		}
	case domain.CategoryEntertainment, domain.CategoryMarket:
		if sctx.Impact.Indoor == domain.Favorable && sctx.Impact.Outdoor != domain.Favorable {
			delta = 8 * sctx.Weights.Weather
		}
	}
	if delta == 0 {
		return 0, nil
	}
	return delta, &domain.ScoreReason{
		Code:    domain.ReasonWeatherFit,
		Message: "Adjusted for the weather outlook",
		Delta:   delta,
	}
}

// scoreTieBreak adds a sub-unit offset derived from a stable hash of the
// candidate ID. This is explicitly not randomness: the same input always
// produces the same offset, it only separates otherwise-equal candidates.
func scoreTieBreak(a domain.Activity, _ domain.Money, _ ScoringContext) (float64, *domain.ScoreReason) {
	delta := float64(stableHash(a.ID)%1000) / 1000.0
	return delta, &domain.ScoreReason{
		Code:    domain.ReasonTieBreak,
		Message: "Deterministic tie-break",
		Delta:   delta,
	}
}

func stableHash(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}

// ScoreEvents derives costs for future events and orders them by start time.
// Events are anchored to their own dates, so scoring only has to produce a
// stable cost annotation and ordering.
func ScoreEvents(pool []domain.Event, sctx ScoringContext) []ScoredEvent {
	scored := make([]ScoredEvent, 0, len(pool))
	for _, e := range pool {
		se := ScoredEvent{
			Event:         e,
			EstimatedCost: EstimateEventCost(e, sctx.Trip.PartySize),
		}
		if weight, ok := archetypeAffinity[sctx.Trip.Archetype][e.Category]; ok {
			se.Score = weight
		}
		se.Score += float64(stableHash(e.ID)%1000) / 1000.0
		scored = append(scored, se)
	}
	SortEventsByStart(scored)
	return scored
}
