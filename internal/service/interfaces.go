package service

import (
	"context"

	"github.com/alexanderramin/yatri/internal/contract"
)

// PlannerService computes a costed day-by-day itinerary for one trip. Each
// call is an independent, stateless computation over its own input snapshot.
type PlannerService interface {
	Plan(ctx context.Context, req contract.PlanRequest) (*contract.PlanResponse, error)
}
