package routing

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/yatri/internal/cache"
	"github.com/alexanderramin/yatri/internal/domain"
	"github.com/alexanderramin/yatri/internal/scheduler"
)

// Estimator adapts the routing Client to the scheduler's TravelEstimator:
// external lookup first, haversine heuristic on any failure. It never
// returns an error and never blocks past the client's timeout.
type Estimator struct {
	client    Client
	heuristic scheduler.HeuristicTravel
	cache     *cache.Cache[scheduler.TravelEstimate]
	observer  Observer
}

// NewEstimator builds an Estimator around the given client. A nil client
// degrades every estimate to the heuristic.
func NewEstimator(client Client, lookupCache *cache.Cache[scheduler.TravelEstimate], observer Observer) *Estimator {
	if client == nil {
		client = Disabled{}
	}
	if lookupCache == nil {
		lookupCache = cache.New[scheduler.TravelEstimate](DefaultConfig().CacheTTL)
	}
	if observer == nil {
		observer = NoopObserver{}
	}
	return &Estimator{client: client, cache: lookupCache, observer: observer}
}

func (e *Estimator) Estimate(ctx context.Context, from, to domain.GeoPoint, departAt time.Time) scheduler.TravelEstimate {
	start := time.Now()

	key := cache.Key("route",
		fmt.Sprintf("%.4f,%.4f", from.Lat, from.Lon),
		fmt.Sprintf("%.4f,%.4f", to.Lat, to.Lon),
	)
	if est, ok := e.cache.Get(key); ok {
		e.observer.OnCallComplete(CallEvent{Success: true, FromCache: true})
		return est
	}

	leg, err := e.client.Route(ctx, from, to)
	if err != nil {
		e.observer.OnCallComplete(CallEvent{
			LatencyMs: time.Since(start).Milliseconds(),
			Fallback:  true,
			ErrorCode: errorCode(err),
		})
		return e.heuristic.Estimate(ctx, from, to, departAt)
	}

	est := scheduler.TravelEstimate{
		Minutes:    leg.Minutes,
		DistanceKm: leg.DistanceKm,
		Source:     "routing",
	}
	e.cache.Put(key, est)
	e.observer.OnCallComplete(CallEvent{
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   true,
	})
	return est
}

func errorCode(err error) string {
	switch err {
	case ErrTimeout:
		return "timeout"
	case ErrNoRoute:
		return "no_route"
	default:
		return "unavailable"
	}
}
