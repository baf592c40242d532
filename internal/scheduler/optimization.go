package scheduler

import (
	"math"

	"github.com/alexanderramin/yatri/internal/domain"
)

// Optimization score components. Budget adherence and variety are measured;
// preference fit and weather fit are fixed placeholder contributions kept as
// named components so a real measurement can replace them without changing
// the response shape. The four terms sum to at most 100.
const (
	budgetTermMax  = 40.0
	varietyPerDay  = 5.0
	varietyTermMax = 30.0
	preferenceTerm = 15.0
	weatherTerm    = 15.0
)

// ComputeScore derives the 0–100 optimization score for a finished plan.
func ComputeScore(totalCost, totalBudget domain.Money, dayCount int) domain.ScoreBreakdown {
	b := domain.ScoreBreakdown{
		Preference: preferenceTerm,
		Weather:    weatherTerm,
	}

	// Full marks within budget, linear decay past it, floored at zero.
	b.BudgetAdherence = budgetTermMax
	if totalBudget > 0 && totalCost > totalBudget {
		overshoot := float64(totalCost-totalBudget) / float64(totalBudget)
		b.BudgetAdherence = math.Max(0, budgetTermMax*(1-overshoot))
	}

	b.Variety = math.Min(float64(dayCount)*varietyPerDay, varietyTermMax)

	b.Total = math.Min(b.BudgetAdherence+b.Variety+b.Preference+b.Weather, 100)
	return b
}
