package scheduler

import (
	"testing"
	"time"

	"github.com/alexanderramin/yatri/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoDayPlan builds a base plan well over a small budget.
func twoDayPlan() []domain.DayPlan {
	start := time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC)
	days := []domain.DayPlan{
		{
			DayIndex: 1,
			Date:     start,
			Stops: []domain.ScheduledStop{
				{Kind: domain.StopActivity, SourceID: "a-1", Name: "Parasailing", Category: domain.CategoryAdventure, Cost: 3200},
				{Kind: domain.StopActivity, SourceID: "a-2", Name: "Fort Walk", Category: domain.CategoryHistorical, Cost: 700, TravelCost: 50},
			},
		},
		{
			DayIndex: 2,
			Date:     start.AddDate(0, 0, 1),
			Stops: []domain.ScheduledStop{
				{Kind: domain.StopActivity, SourceID: "a-3", Name: "Beach Day", Category: domain.CategoryBeach, Cost: 1000},
				{Kind: domain.StopActivity, SourceID: "a-4", Name: "Night Market", Category: domain.CategoryMarket, Cost: 300, TravelCost: 50},
			},
		},
	}
	for i := range days {
		days[i].Recalc()
	}
	return days
}

func TestGenerateAlternatives_ThreeStrategiesForMultiDayTrips(t *testing.T) {
	alts := GenerateAlternatives(twoDayPlan(), 2000)

	require.Len(t, alts, 3)
	assert.Equal(t, domain.StrategyRemoveExpensive, alts[0].Strategy)
	assert.Equal(t, domain.StrategyReplaceCheaper, alts[1].Strategy)
	assert.Equal(t, domain.StrategyReduceDuration, alts[2].Strategy)

	for _, alt := range alts {
		assert.GreaterOrEqual(t, int64(alt.Savings), int64(0), "%s has negative savings", alt.Strategy)
		assert.NotEmpty(t, alt.Description)
	}
}

func TestGenerateAlternatives_SingleDaySkipsReduceDuration(t *testing.T) {
	alts := GenerateAlternatives(twoDayPlan()[:1], 1000)

	require.Len(t, alts, 2)
	for _, alt := range alts {
		assert.NotEqual(t, domain.StrategyReduceDuration, alt.Strategy)
	}
}

func TestRemoveExpensive_DropsCostliestFirstAndKeepsDaysNonEmpty(t *testing.T) {
	alts := GenerateAlternatives(twoDayPlan(), 2000)
	alt := alts[0]

	for _, day := range alt.Days {
		assert.GreaterOrEqual(t, day.Activities(), 1)
		for _, s := range day.Stops {
			assert.NotEqual(t, "a-1", s.SourceID, "most expensive activity should be the first removed")
		}
	}
	assert.LessOrEqual(t, int64(alt.TotalCost), int64(2000))
}

func TestReplaceCheaper_DiscountsEveryPaidActivity(t *testing.T) {
	base := twoDayPlan()
	baseTotal := domain.SumDayCosts(base)
	alts := GenerateAlternatives(base, 2000)
	alt := alts[1]

	assert.Less(t, int64(alt.TotalCost), int64(baseTotal))
	for _, day := range alt.Days {
		for _, s := range day.Stops {
			assert.Contains(t, s.Note, "budget option")
		}
	}
	// Travel fares are untouched by the discount.
	assert.Equal(t, base[0].TransportCost, alt.Days[0].TransportCost)
}

func TestReduceDuration_DropsLastDay(t *testing.T) {
	base := twoDayPlan()
	alts := GenerateAlternatives(base, 2000)
	alt := alts[2]

	require.Len(t, alt.Days, 1)
	assert.Equal(t, 1, alt.Days[0].DayIndex)
	assert.Equal(t, base[1].EstimatedCost, alt.Savings)
}

func TestGenerateAlternatives_NeverMutatesBasePlan(t *testing.T) {
	base := twoDayPlan()
	baseTotal := domain.SumDayCosts(base)
	stopCount := len(base[0].Stops) + len(base[1].Stops)

	_ = GenerateAlternatives(base, 100)

	assert.Equal(t, baseTotal, domain.SumDayCosts(base))
	assert.Equal(t, stopCount, len(base[0].Stops)+len(base[1].Stops))
	assert.Equal(t, domain.Money(3200), base[0].Stops[0].Cost)
	assert.NotContains(t, base[0].Stops[0].Note, "budget option")
}
