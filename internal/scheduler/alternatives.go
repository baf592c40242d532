package scheduler

import (
	"fmt"

	"github.com/alexanderramin/yatri/internal/domain"
)

// discountPct is the flat proportional discount applied by the
// replace_cheaper strategy.
const discountPct = 30

// GenerateAlternatives produces up to three independent remediation
// strategies for a plan whose total exceeds the budget. Each strategy starts
// from a deep copy of the base plan; none chains off another. A strategy is
// returned even when it saves nothing: its zero savings marks it as
// ineffective, and the caller decides how to present that.
func GenerateAlternatives(base []domain.DayPlan, totalBudget domain.Money) []domain.Alternative {
	baseTotal := domain.SumDayCosts(base)

	alts := make([]domain.Alternative, 0, 3)
	alts = append(alts, removeExpensive(base, baseTotal, totalBudget))
	alts = append(alts, replaceCheaper(base, baseTotal))
	if alt, ok := reduceDuration(base, baseTotal); ok {
		alts = append(alts, alt)
	}
	return alts
}

// removeExpensive repeatedly drops the single most expensive activity from
// any day still holding more than one, until the cumulative cost fits the
// budget or nothing more can be removed.
func removeExpensive(base []domain.DayPlan, baseTotal, totalBudget domain.Money) domain.Alternative {
	days := copyDays(base)
	removed := 0

	for domain.SumDayCosts(days) > totalBudget {
		dayIdx, stopIdx := mostExpensiveRemovable(days)
		if dayIdx < 0 {
			break
		}
		RemoveStop(&days[dayIdx], stopIdx)
		removed++
	}

	total := domain.SumDayCosts(days)
	return domain.Alternative{
		Strategy:    domain.StrategyRemoveExpensive,
		Description: fmt.Sprintf("Drop the %d most expensive activities while keeping every day non-empty", removed),
		Days:        days,
		TotalCost:   total,
		Savings:     baseTotal - total,
	}
}

// mostExpensiveRemovable finds the costliest activity stop on any day that
// would keep at least one activity after removal.
func mostExpensiveRemovable(days []domain.DayPlan) (int, int) {
	bestDay, bestStop := -1, -1
	var bestCost domain.Money = -1
	for di := range days {
		if days[di].Activities() <= 1 {
			continue
		}
		for si, s := range days[di].Stops {
			if s.Kind != domain.StopActivity {
				continue
			}
			if s.Cost > bestCost {
				bestCost = s.Cost
				bestDay, bestStop = di, si
			}
		}
	}
	return bestDay, bestStop
}

// replaceCheaper applies a flat proportional discount to every non-zero-cost
// activity, standing in for swapping each pick with a cheaper sibling.
func replaceCheaper(base []domain.DayPlan, baseTotal domain.Money) domain.Alternative {
	days := copyDays(base)
	for di := range days {
		for si := range days[di].Stops {
			stop := &days[di].Stops[si]
			if stop.Kind != domain.StopActivity || stop.Cost <= 0 {
				continue
			}
			stop.Cost -= stop.Cost.Pct(discountPct)
			if stop.Note != "" {
				stop.Note += ", "
			}
			stop.Note += "budget option"
		}
		days[di].Recalc()
	}

	total := domain.SumDayCosts(days)
	return domain.Alternative{
		Strategy:    domain.StrategyReplaceCheaper,
		Description: fmt.Sprintf("Swap paid activities for cheaper picks (about %d%% off each)", discountPct),
		Days:        days,
		TotalCost:   total,
		Savings:     baseTotal - total,
	}
}

// reduceDuration drops the final day entirely. Not offered for single-day
// trips, where it would leave nothing to schedule.
func reduceDuration(base []domain.DayPlan, baseTotal domain.Money) (domain.Alternative, bool) {
	if len(base) < 2 {
		return domain.Alternative{}, false
	}
	days := copyDays(base[:len(base)-1])
	total := domain.SumDayCosts(days)
	return domain.Alternative{
		Strategy:    domain.StrategyReduceDuration,
		Description: fmt.Sprintf("Shorten the trip to %d days", len(days)),
		Days:        days,
		TotalCost:   total,
		Savings:     baseTotal - total,
	}, true
}

// copyDays deep-copies day plans so strategies never mutate the base plan.
func copyDays(days []domain.DayPlan) []domain.DayPlan {
	out := make([]domain.DayPlan, len(days))
	for i, d := range days {
		out[i] = d
		out[i].Stops = make([]domain.ScheduledStop, len(d.Stops))
		copy(out[i].Stops, d.Stops)
		for si := range out[i].Stops {
			if reasons := out[i].Stops[si].Reasons; reasons != nil {
				cp := make([]domain.ScoreReason, len(reasons))
				copy(cp, reasons)
				out[i].Stops[si].Reasons = cp
			}
		}
	}
	return out
}
