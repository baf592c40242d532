package scheduler

import "sort"

// CanonicalSort orders scored activities by the deterministic canonical
// rules:
// 1. Score: higher first (tie-break hash already folded in)
// 2. Activity ID: lexical ascending
// Stable and reproducible across runs; no source of randomness anywhere.
func CanonicalSort(candidates []ScoredActivity) {
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		return a.Activity.ID < b.Activity.ID
	})
}

// SortEventsByStart orders events chronologically, breaking exact-time ties
// on event ID.
func SortEventsByStart(events []ScoredEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		a, b := events[i], events[j]
		if !a.Event.StartTime.Equal(b.Event.StartTime) {
			return a.Event.StartTime.Before(b.Event.StartTime)
		}
		return a.Event.ID < b.Event.ID
	})
}
