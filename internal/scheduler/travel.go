package scheduler

import (
	"context"
	"math"
	"time"

	"github.com/golang/geo/s2"

	"github.com/alexanderramin/yatri/internal/domain"
)

const (
	earthRadiusKm = 6371.0

	// minTravelMin is the floor on any hop estimate: even adjacent stops
	// cost a few minutes of walking and parking.
	minTravelMin = 5

	// perKmFare approximates a local cab fare for the whole party.
	perKmFare = domain.Money(12)
	// minHopFare is the minimum fare for any hop.
	minHopFare = domain.Money(50)
)

// TravelEstimate describes one hop between consecutive stops.
type TravelEstimate struct {
	Minutes    int
	DistanceKm float64
	Source     string // "routing" or "heuristic"
}

// Cost converts the hop into a transport fare.
func (t TravelEstimate) Cost() domain.Money {
	fare := domain.Money(math.Round(t.DistanceKm)) * perKmFare
	if fare < minHopFare {
		fare = minHopFare
	}
	return fare
}

// TravelEstimator estimates the hop between two stops departing at the given
// local time. Implementations must not fail: when an external lookup is
// unavailable they degrade to the local heuristic.
type TravelEstimator interface {
	Estimate(ctx context.Context, from, to domain.GeoPoint, departAt time.Time) TravelEstimate
}

// HeuristicTravel estimates hops from great-circle distance and a
// time-of-day speed profile. Pure and always available.
type HeuristicTravel struct{}

func (HeuristicTravel) Estimate(_ context.Context, from, to domain.GeoPoint, departAt time.Time) TravelEstimate {
	km := HaversineKm(from, to)
	speed := speedKmhAt(departAt)
	minutes := int(math.Ceil(km / speed * 60))
	if minutes < minTravelMin {
		minutes = minTravelMin
	}
	return TravelEstimate{Minutes: minutes, DistanceKm: km, Source: "heuristic"}
}

// HaversineKm returns the great-circle distance between two points.
func HaversineKm(from, to domain.GeoPoint) float64 {
	p1 := s2.LatLngFromDegrees(from.Lat, from.Lon)
	p2 := s2.LatLngFromDegrees(to.Lat, to.Lon)
	return p1.Distance(p2).Radians() * earthRadiusKm
}

// speedKmhAt models local traffic: two daily peak windows crawl, late night
// flows freely, everything else is moderate.
func speedKmhAt(t time.Time) float64 {
	h := t.Hour()
	switch {
	case (h >= 8 && h < 11) || (h >= 17 && h < 20):
		return 18 // peak
	case h >= 23 || h < 5:
		return 45 // late night
	default:
		return 30
	}
}
