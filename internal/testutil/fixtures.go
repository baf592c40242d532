package testutil

import (
	"time"

	"github.com/alexanderramin/yatri/internal/domain"
	"github.com/google/uuid"
)

// Activity options
type ActivityOption func(*domain.Activity)

func WithTier(tier domain.PriceTier) ActivityOption {
	return func(a *domain.Activity) {
		a.Tier = tier
	}
}

func WithRating(rating float64) ActivityOption {
	return func(a *domain.Activity) {
		a.Rating = rating
	}
}

func WithLocation(lat, lon float64) ActivityOption {
	return func(a *domain.Activity) {
		a.Location = domain.GeoPoint{Lat: lat, Lon: lon}
	}
}

func WithActivityID(id string) ActivityOption {
	return func(a *domain.Activity) {
		a.ID = id
	}
}

// NewTestActivity creates an activity with sane defaults: budget tier, 4.0
// rating, a fixed coastal coordinate.
func NewTestActivity(name string, category domain.Category, opts ...ActivityOption) domain.Activity {
	a := domain.Activity{
		ID:       uuid.New().String(),
		Name:     name,
		Category: category,
		Tier:     domain.TierBudget,
		Rating:   4.0,
		Location: domain.GeoPoint{Lat: 15.4909, Lon: 73.8278},
	}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

// Event options
type EventOption func(*domain.Event)

func WithEventPrice(price domain.Money) EventOption {
	return func(e *domain.Event) {
		e.Price = price
	}
}

func WithEventDescription(desc string) EventOption {
	return func(e *domain.Event) {
		e.Description = desc
	}
}

func WithEventLocation(lat, lon float64) EventOption {
	return func(e *domain.Event) {
		e.Location = domain.GeoPoint{Lat: lat, Lon: lon}
	}
}

// NewTestEvent creates a two-hour event starting at the given time.
func NewTestEvent(title string, category domain.Category, start time.Time, opts ...EventOption) domain.Event {
	e := domain.Event{
		ID:        uuid.New().String(),
		Title:     title,
		Category:  category,
		StartTime: start,
		EndTime:   start.Add(2 * time.Hour),
		Location:  domain.GeoPoint{Lat: 15.5000, Lon: 73.8300},
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// Trip options
type TripOption func(*domain.TripParams)

func WithBudget(perPerson domain.Money) TripOption {
	return func(t *domain.TripParams) {
		t.BudgetPerPerson = perPerson
	}
}

func WithParty(size int) TripOption {
	return func(t *domain.TripParams) {
		t.PartySize = size
	}
}

func WithArchetype(a domain.Archetype) TripOption {
	return func(t *domain.TripParams) {
		t.Archetype = a
	}
}

func WithInterests(tags ...string) TripOption {
	return func(t *domain.TripParams) {
		t.Interests = tags
	}
}

func WithDuration(days int) TripOption {
	return func(t *domain.TripParams) {
		t.DurationDays = days
	}
}

func WithStartDate(d time.Time) TripOption {
	return func(t *domain.TripParams) {
		t.StartDate = d
	}
}

// NewTestTrip creates trip parameters with sane defaults: two people, three
// days, family archetype, ₹5000 per person.
func NewTestTrip(destination string, opts ...TripOption) domain.TripParams {
	t := domain.TripParams{
		Destination:     destination,
		BudgetPerPerson: 5000,
		PartySize:       2,
		Archetype:       domain.TripFamily,
		StartDate:       time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC),
		DurationDays:    3,
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}
