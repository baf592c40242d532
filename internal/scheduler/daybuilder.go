package scheduler

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/yatri/internal/domain"
)

// Limits holds the per-day caps. The defaults exist to avoid monotony, not
// because the exact numbers carry deeper meaning; callers may tune them.
type Limits struct {
	MaxActivitiesPerDay  int
	MaxPerCategoryPerDay int
}

func DefaultLimits() Limits {
	return Limits{MaxActivitiesPerDay: 3, MaxPerCategoryPerDay: 2}
}

// Slot start hours for activity sequencing. Events keep their own times.
var slotStartHours = []int{9, 13, 16}

// DayBuilderInput bundles everything the day builder consumes.
type DayBuilderInput struct {
	Activities  []ScoredActivity // canonically sorted, highest score first
	Events      []ScoredEvent    // future-filtered, ordered by start time
	Trip        domain.TripParams
	Impact      domain.WeatherImpact
	WeatherNote string
	Limits      Limits
	Travel      TravelEstimator
}

// BuildDays partitions the ranked pool across the requested duration,
// enforcing category diversity and the per-day budget. An exhausted pool
// still yields a day plan with zero stops and zero cost; that is a valid
// outcome, not an error.
func BuildDays(ctx context.Context, in DayBuilderInput) []domain.DayPlan {
	limits := in.Limits
	if limits.MaxActivitiesPerDay < 1 {
		limits = DefaultLimits()
	}
	travel := in.Travel
	if travel == nil {
		travel = HeuristicTravel{}
	}

	buckets := bucketByCategory(in.Activities)
	order := visitationOrder(in.Trip.Interests, buckets)
	interestCats := InterestCategories(in.Trip.Interests)
	dayBudget := in.Trip.DayBudget()

	days := make([]domain.DayPlan, 0, in.Trip.DurationDays)
	var prevDominant domain.Category

	for dayIdx := 0; dayIdx < in.Trip.DurationDays; dayIdx++ {
		date := in.Trip.DayDate(dayIdx)
		picks := pickDay(buckets, order, interestCats, prevDominant, dayIdx, limits)
		picks = deferBeachFromMorning(picks, in.Impact)

		day := domain.DayPlan{
			DayIndex:    dayIdx + 1,
			Date:        date,
			WeatherNote: in.WeatherNote,
		}
		sequenceDay(ctx, &day, picks, eventsOn(in.Events, date), travel)
		trimToDayBudget(&day, dayBudget)

		prevDominant = dominantCategory(day)
		days = append(days, day)
	}
	return days
}

// bucketByCategory splits the ranked pool into per-category queues, keeping
// rank order inside each bucket.
func bucketByCategory(ranked []ScoredActivity) map[domain.Category][]ScoredActivity {
	buckets := make(map[domain.Category][]ScoredActivity)
	for _, c := range ranked {
		buckets[c.Activity.Category] = append(buckets[c.Activity.Category], c)
	}
	return buckets
}

// visitationOrder places the traveler's interest categories first, then the
// remaining categories in canonical declaration order. Only categories that
// actually have candidates are included.
func visitationOrder(interests []string, buckets map[domain.Category][]ScoredActivity) []domain.Category {
	seen := make(map[domain.Category]bool)
	var order []domain.Category
	for _, cat := range InterestCategories(interests) {
		if len(buckets[cat]) > 0 && !seen[cat] {
			seen[cat] = true
			order = append(order, cat)
		}
	}
	for _, cat := range domain.AllCategories {
		if len(buckets[cat]) > 0 && !seen[cat] {
			seen[cat] = true
			order = append(order, cat)
		}
	}
	return order
}

// pickDay consumes candidates for one day: a guaranteed interest pick first,
// then round-robin fill over the rotated category order, honoring the
// per-category cap and the prior day's dominant-category rule.
func pickDay(
	buckets map[domain.Category][]ScoredActivity,
	order []domain.Category,
	interestCats []domain.Category,
	prevDominant domain.Category,
	dayIdx int,
	limits Limits,
) []ScoredActivity {
	if len(order) == 0 {
		return nil
	}

	var picks []ScoredActivity
	catCount := make(map[domain.Category]int)

	take := func(cat domain.Category) bool {
		bucket := buckets[cat]
		if len(bucket) == 0 {
			return false
		}
		picks = append(picks, bucket[0])
		buckets[cat] = bucket[1:]
		catCount[cat]++
		return true
	}

	// Guarantee one pick from the highest-priority interest category that
	// still has candidates.
	for _, cat := range interestCats {
		if len(buckets[cat]) > 0 {
			take(cat)
			break
		}
	}

	// Rotate the visitation order per day so the same category does not open
	// every day, then round-robin until the day is full or nothing fits.
	rotated := rotateOrder(order, dayIdx)
	for len(picks) < limits.MaxActivitiesPerDay {
		progressed := false
		for _, cat := range rotated {
			if len(picks) >= limits.MaxActivitiesPerDay {
				break
			}
			if catCount[cat] >= limits.MaxPerCategoryPerDay {
				continue
			}
			if cat == prevDominant && catCount[cat] >= 1 {
				continue
			}
			if take(cat) {
				progressed = true
			}
		}
		if !progressed {
			break
		}
	}
	return picks
}

func rotateOrder(order []domain.Category, by int) []domain.Category {
	n := len(order)
	if n == 0 {
		return order
	}
	shift := by % n
	rotated := make([]domain.Category, 0, n)
	rotated = append(rotated, order[shift:]...)
	rotated = append(rotated, order[:shift]...)
	return rotated
}

// deferBeachFromMorning keeps beach picks out of the first (morning) slot
// when conditions are against them and a non-beach alternative exists.
func deferBeachFromMorning(picks []ScoredActivity, impact domain.WeatherImpact) []ScoredActivity {
	if impact.Beach != domain.Unfavorable || len(picks) < 2 {
		return picks
	}
	if picks[0].Activity.Category != domain.CategoryBeach {
		return picks
	}
	for i := 1; i < len(picks); i++ {
		if picks[i].Activity.Category != domain.CategoryBeach {
			picks[0], picks[i] = picks[i], picks[0]
			break
		}
	}
	return picks
}

// eventsOn returns the events falling on the given calendar date.
func eventsOn(events []ScoredEvent, date time.Time) []ScoredEvent {
	y, m, d := date.Date()
	var out []ScoredEvent
	for _, e := range events {
		ey, em, ed := e.Event.StartTime.Date()
		if ey == y && em == m && ed == d {
			out = append(out, e)
		}
	}
	return out
}

// sequenceDay assigns time slots, attaches events, and annotates inter-stop
// travel. Stops end up sorted by start time.
func sequenceDay(ctx context.Context, day *domain.DayPlan, picks []ScoredActivity, events []ScoredEvent, travel TravelEstimator) {
	for i, p := range picks {
		hour := slotStartHours[len(slotStartHours)-1]
		if i < len(slotStartHours) {
			hour = slotStartHours[i]
		}
		slot := domain.SlotAfternoon
		if i == 0 {
			slot = domain.SlotMorning
		}
		start := time.Date(day.Date.Year(), day.Date.Month(), day.Date.Day(), hour, 0, 0, 0, day.Date.Location())
		day.Stops = append(day.Stops, domain.ScheduledStop{
			Slot:        slot,
			StartTime:   start,
			Kind:        domain.StopActivity,
			SourceID:    p.Activity.ID,
			Name:        p.Activity.Name,
			Category:    p.Activity.Category,
			DurationMin: activityDurationMin[p.Activity.Category],
			Cost:        p.EstimatedCost,
			Score:       p.Score,
			Reasons:     p.Reasons,
		})
	}

	// Events keep their own start times; the slot label follows the clock.
	for _, e := range events {
		duration := int(e.Event.EndTime.Sub(e.Event.StartTime).Minutes())
		if duration <= 0 {
			duration = 120
		}
		day.Stops = append(day.Stops, domain.ScheduledStop{
			Slot:        slotForHour(e.Event.StartTime.Hour()),
			StartTime:   e.Event.StartTime,
			Kind:        domain.StopEvent,
			SourceID:    e.Event.ID,
			Name:        e.Event.Title,
			Category:    e.Event.Category,
			DurationMin: duration,
			Cost:        e.EstimatedCost,
			Note:        "local event",
		})
	}

	// An event can start before the last activity slot, so restore
	// chronological order before hops are estimated between neighbors.
	sort.SliceStable(day.Stops, func(i, j int) bool {
		if day.Stops[i].StartTime.Equal(day.Stops[j].StartTime) {
			return day.Stops[i].SourceID < day.Stops[j].SourceID
		}
		return day.Stops[i].StartTime.Before(day.Stops[j].StartTime)
	})

	annotateTravel(ctx, day, picks, events, travel)
	day.Recalc()
}

// slotForHour maps a clock hour onto the day's slot label.
func slotForHour(hour int) domain.TimeSlot {
	switch {
	case hour < 12:
		return domain.SlotMorning
	case hour < 17:
		return domain.SlotAfternoon
	default:
		return domain.SlotEvening
	}
}

// annotateTravel fills hop estimates between consecutive stops. The first
// stop of a day has no hop.
func annotateTravel(ctx context.Context, day *domain.DayPlan, picks []ScoredActivity, events []ScoredEvent, travel TravelEstimator) {
	locations := make(map[string]domain.GeoPoint, len(picks)+len(events))
	for _, p := range picks {
		locations[p.Activity.ID] = p.Activity.Location
	}
	for _, e := range events {
		locations[e.Event.ID] = e.Event.Location
	}

	for i := 1; i < len(day.Stops); i++ {
		from, okFrom := locations[day.Stops[i-1].SourceID]
		to, okTo := locations[day.Stops[i].SourceID]
		if !okFrom || !okTo {
			continue
		}
		est := travel.Estimate(ctx, from, to, day.Stops[i].StartTime)
		day.Stops[i].TravelMin = est.Minutes
		day.Stops[i].TravelKm = est.DistanceKm
		day.Stops[i].TravelCost = est.Cost()
		note := fmt.Sprintf("~%d min travel (%.1f km)", est.Minutes, est.DistanceKm)
		if day.Stops[i].Note != "" {
			note = day.Stops[i].Note + ", " + note
		}
		day.Stops[i].Note = note
	}
}

// trimToDayBudget drops the last-scheduled activity until the day fits its
// budget share or only one activity remains. Days are never trimmed to zero,
// and events are never trimmed.
func trimToDayBudget(day *domain.DayPlan, dayBudget domain.Money) {
	for day.EstimatedCost > dayBudget && day.Activities() > 1 {
		idx := lastActivityIndex(day)
		if idx < 0 {
			return
		}
		RemoveStop(day, idx)
	}
}

func lastActivityIndex(day *domain.DayPlan) int {
	for i := len(day.Stops) - 1; i >= 0; i-- {
		if day.Stops[i].Kind == domain.StopActivity {
			return i
		}
	}
	return -1
}

// RemoveStop deletes the stop at idx and clears the following stop's now
// stale hop annotation, then recomputes the day totals.
func RemoveStop(day *domain.DayPlan, idx int) {
	day.Stops = append(day.Stops[:idx], day.Stops[idx+1:]...)
	if idx < len(day.Stops) {
		day.Stops[idx].TravelMin = 0
		day.Stops[idx].TravelKm = 0
		day.Stops[idx].TravelCost = 0
	}
	day.Recalc()
}

// dominantCategory returns the category with the most picks in the day,
// breaking ties in canonical category order. Used to damp repetition across
// consecutive days.
func dominantCategory(day domain.DayPlan) domain.Category {
	counts := make(map[domain.Category]int)
	for _, s := range day.Stops {
		if s.Kind == domain.StopActivity {
			counts[s.Category]++
		}
	}
	var dominant domain.Category
	best := 0
	for _, cat := range domain.AllCategories {
		if counts[cat] > best {
			best = counts[cat]
			dominant = cat
		}
	}
	return dominant
}
