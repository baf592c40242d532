package scheduler

import (
	"math"
	"strings"

	"github.com/alexanderramin/yatri/internal/domain"
)

// EstimateActivityCost derives the party-scaled cost of one activity:
// tier base, category realism factor, category minimum floor, party size.
// Pure and deterministic; never negative.
func EstimateActivityCost(a domain.Activity, partySize int) domain.Money {
	base := tierBaseCost[a.Tier]
	perPerson := domain.Money(math.Round(float64(base) * categoryCostFactor[a.Category]))
	if floor := categoryMinSpend[a.Category]; perPerson < floor {
		perPerson = floor
	}
	return perPerson.Scale(partySize)
}

// EstimateEventCost derives the party-scaled cost of one event. Events with
// an explicit per-person price use it directly; otherwise a minimum spend is
// inferred from title/description keywords.
func EstimateEventCost(e domain.Event, partySize int) domain.Money {
	perPerson := e.Price
	if perPerson <= 0 {
		perPerson = inferEventMinSpend(e.Title, e.Description)
	}
	return perPerson.Scale(partySize)
}

func inferEventMinSpend(title, description string) domain.Money {
	text := strings.ToLower(title + " " + description)
	for _, kw := range eventKeywordFloor {
		if strings.Contains(text, kw.keyword) {
			return kw.floor
		}
	}
	return defaultEventFloor
}
