package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/yatri/internal/domain"
)

// ActivityRepo supplies the candidate activity pool, geofiltered by the
// collaborator at ingest time and keyed here by destination.
type ActivityRepo interface {
	ListByDestination(ctx context.Context, destination string) ([]domain.Activity, error)
	Seed(ctx context.Context, destination string, activities []domain.Activity) error
}

// EventRepo supplies curator-approved events near a destination. ListUpcoming
// only returns events starting strictly after the given instant.
type EventRepo interface {
	ListUpcoming(ctx context.Context, destination string, from time.Time) ([]domain.Event, error)
	Seed(ctx context.Context, destination string, events []domain.Event) error
}
