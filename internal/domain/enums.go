package domain

type Category string

const (
	CategoryBeach         Category = "beach"
	CategoryHistorical    Category = "historical"
	CategoryReligious     Category = "religious"
	CategoryNature        Category = "nature"
	CategoryAdventure     Category = "adventure"
	CategoryEntertainment Category = "entertainment"
	CategoryMarket        Category = "market"
	CategoryOther         Category = "other"
)

// AllCategories is the canonical category iteration order. Bucket walks and
// visitation orders always follow this slice, never map iteration.
var AllCategories = []Category{
	CategoryBeach,
	CategoryHistorical,
	CategoryReligious,
	CategoryNature,
	CategoryAdventure,
	CategoryEntertainment,
	CategoryMarket,
	CategoryOther,
}

// ValidCategories is the canonical set of accepted category strings.
var ValidCategories = map[string]bool{
	"beach": true, "historical": true, "religious": true, "nature": true,
	"adventure": true, "entertainment": true, "market": true, "other": true,
}

type PriceTier string

const (
	TierFree     PriceTier = "free"
	TierBudget   PriceTier = "budget"
	TierMidRange PriceTier = "mid_range"
	TierLuxury   PriceTier = "luxury"
)

type Archetype string

const (
	TripFamily    Archetype = "family"
	TripSolo      Archetype = "solo"
	TripCouple    Archetype = "couple"
	TripFriends   Archetype = "friends"
	TripAdventure Archetype = "adventure"
	TripBusiness  Archetype = "business"
)

// ValidArchetypes is the canonical set of accepted trip archetype strings.
var ValidArchetypes = map[string]bool{
	"family": true, "solo": true, "couple": true,
	"friends": true, "adventure": true, "business": true,
}

type BudgetStatus string

const (
	WithinBudget BudgetStatus = "within_budget"
	OverBudget   BudgetStatus = "over_budget"
)

type Suitability string

const (
	Favorable   Suitability = "favorable"
	Moderate    Suitability = "moderate"
	Unfavorable Suitability = "unfavorable"
)

type TimeSlot string

const (
	SlotMorning   TimeSlot = "morning"
	SlotAfternoon TimeSlot = "afternoon"
	SlotEvening   TimeSlot = "evening"
)

type AlternativeStrategy string

const (
	StrategyRemoveExpensive AlternativeStrategy = "remove_expensive"
	StrategyReplaceCheaper  AlternativeStrategy = "replace_cheaper"
	StrategyReduceDuration  AlternativeStrategy = "reduce_duration"
)

type StopKind string

const (
	StopActivity StopKind = "activity"
	StopEvent    StopKind = "event"
)
