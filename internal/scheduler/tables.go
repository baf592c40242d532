package scheduler

import (
	"strings"

	"github.com/alexanderramin/yatri/internal/domain"
)

// Fixed lookup tables for the planning heuristics. All of them are keyed by
// closed enums so an unknown archetype or category is a compile-time concern,
// not a silent runtime miss.

// tierBaseCost is the per-person base cost in rupees before category
// adjustment.
var tierBaseCost = map[domain.PriceTier]domain.Money{
	domain.TierFree:     0,
	domain.TierBudget:   500,
	domain.TierMidRange: 1500,
	domain.TierLuxury:   4000,
}

// categoryCostFactor scales the tier base toward realistic spend per
// category: adventure sports cost far more than a monument ticket.
var categoryCostFactor = map[domain.Category]float64{
	domain.CategoryBeach:         1.0,
	domain.CategoryHistorical:    0.7,
	domain.CategoryReligious:     0.4,
	domain.CategoryNature:        0.9,
	domain.CategoryAdventure:     1.6,
	domain.CategoryEntertainment: 1.3,
	domain.CategoryMarket:        0.8,
	domain.CategoryOther:         1.0,
}

// categoryMinSpend is the per-person floor in rupees: even "free" beaches
// carry shack and locker incidentals. Religious sites genuinely cost nothing.
var categoryMinSpend = map[domain.Category]domain.Money{
	domain.CategoryBeach:         100,
	domain.CategoryHistorical:    50,
	domain.CategoryReligious:     0,
	domain.CategoryNature:        50,
	domain.CategoryAdventure:     800,
	domain.CategoryEntertainment: 300,
	domain.CategoryMarket:        150,
	domain.CategoryOther:         50,
}

// eventKeywordFloor maps title/description keywords to an inferred per-person
// minimum spend for events without an explicit price. First match wins, in
// this order.
var eventKeywordFloor = []struct {
	keyword string
	floor   domain.Money
}{
	{"cruise", 2500},
	{"concert", 1000},
	{"workshop", 800},
	{"show", 700},
	{"tasting", 600},
	{"festival", 500},
	{"market", 200},
	{"fair", 200},
}

// defaultEventFloor applies when no keyword matches.
const defaultEventFloor = domain.Money(300)

// archetypeAffinity is the trip-type category weight table (0–10).
var archetypeAffinity = map[domain.Archetype]map[domain.Category]float64{
	domain.TripFamily: {
		domain.CategoryBeach: 8, domain.CategoryHistorical: 6, domain.CategoryReligious: 5,
		domain.CategoryNature: 7, domain.CategoryAdventure: 3, domain.CategoryEntertainment: 8,
		domain.CategoryMarket: 5, domain.CategoryOther: 4,
	},
	domain.TripSolo: {
		domain.CategoryBeach: 6, domain.CategoryHistorical: 8, domain.CategoryReligious: 6,
		domain.CategoryNature: 8, domain.CategoryAdventure: 7, domain.CategoryEntertainment: 5,
		domain.CategoryMarket: 6, domain.CategoryOther: 5,
	},
	domain.TripCouple: {
		domain.CategoryBeach: 9, domain.CategoryHistorical: 6, domain.CategoryReligious: 4,
		domain.CategoryNature: 8, domain.CategoryAdventure: 5, domain.CategoryEntertainment: 8,
		domain.CategoryMarket: 6, domain.CategoryOther: 5,
	},
	domain.TripFriends: {
		domain.CategoryBeach: 9, domain.CategoryHistorical: 4, domain.CategoryReligious: 3,
		domain.CategoryNature: 6, domain.CategoryAdventure: 9, domain.CategoryEntertainment: 9,
		domain.CategoryMarket: 5, domain.CategoryOther: 5,
	},
	domain.TripAdventure: {
		domain.CategoryBeach: 7, domain.CategoryHistorical: 3, domain.CategoryReligious: 2,
		domain.CategoryNature: 9, domain.CategoryAdventure: 10, domain.CategoryEntertainment: 4,
		domain.CategoryMarket: 3, domain.CategoryOther: 4,
	},
	domain.TripBusiness: {
		domain.CategoryBeach: 4, domain.CategoryHistorical: 6, domain.CategoryReligious: 4,
		domain.CategoryNature: 4, domain.CategoryAdventure: 2, domain.CategoryEntertainment: 7,
		domain.CategoryMarket: 7, domain.CategoryOther: 5,
	},
}

// interestCategory maps free-text interest tags onto categories. Matching is
// case-insensitive on the whole tag.
var interestCategory = map[string]domain.Category{
	"beaches":       domain.CategoryBeach,
	"beach":         domain.CategoryBeach,
	"watersports":   domain.CategoryBeach,
	"history":       domain.CategoryHistorical,
	"heritage":      domain.CategoryHistorical,
	"forts":         domain.CategoryHistorical,
	"museums":       domain.CategoryHistorical,
	"temples":       domain.CategoryReligious,
	"churches":      domain.CategoryReligious,
	"spiritual":     domain.CategoryReligious,
	"nature":        domain.CategoryNature,
	"wildlife":      domain.CategoryNature,
	"waterfalls":    domain.CategoryNature,
	"trekking":      domain.CategoryAdventure,
	"adventure":     domain.CategoryAdventure,
	"diving":        domain.CategoryAdventure,
	"nightlife":     domain.CategoryEntertainment,
	"casinos":       domain.CategoryEntertainment,
	"shows":         domain.CategoryEntertainment,
	"shopping":      domain.CategoryMarket,
	"markets":       domain.CategoryMarket,
	"food":          domain.CategoryMarket,
	"local cuisine": domain.CategoryMarket,
}

// InterestCategories resolves interest tags to the matching category set,
// ordered by first appearance in the tag list.
func InterestCategories(tags []string) []domain.Category {
	seen := make(map[domain.Category]bool)
	var out []domain.Category
	for _, tag := range tags {
		cat, ok := interestCategory[strings.ToLower(strings.TrimSpace(tag))]
		if !ok || seen[cat] {
			continue
		}
		seen[cat] = true
		out = append(out, cat)
	}
	return out
}

// activityDurationMin is the assumed visit length per category.
var activityDurationMin = map[domain.Category]int{
	domain.CategoryBeach:         180,
	domain.CategoryHistorical:    120,
	domain.CategoryReligious:     60,
	domain.CategoryNature:        150,
	domain.CategoryAdventure:     240,
	domain.CategoryEntertainment: 150,
	domain.CategoryMarket:        120,
	domain.CategoryOther:         90,
}
