package domain

import "time"

// GeoPoint is a WGS84 coordinate.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Activity is a point of interest supplied by the place-data collaborator,
// geofiltered around the destination. Immutable once scored.
type Activity struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Category Category  `json:"category"`
	Tier     PriceTier `json:"tier"`
	Rating   float64   `json:"rating"` // 0–5
	Location GeoPoint  `json:"location"`
}

// Event is a dated candidate supplied by the event-store collaborator.
// Price is per person; zero means unknown, in which case a minimum spend is
// inferred from title/description keywords.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Category    Category  `json:"category"`
	Price       Money     `json:"price,omitempty"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Location    GeoPoint  `json:"location"`
}
