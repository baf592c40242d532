// Package tips produces the optional per-day travel tip. Enrichment is
// best-effort: a generation failure falls back to deterministic text and
// never aborts planning.
package tips

import (
	"context"
	"time"

	"github.com/alexanderramin/yatri/internal/domain"
)

// TipRequest describes one day needing a tip.
type TipRequest struct {
	Destination string
	Date        time.Time
	Categories  []domain.Category
	WeatherNote string
}

// Generator produces a one-line tip for a day. Implementations may call an
// external text-generation service.
type Generator interface {
	DayTip(ctx context.Context, req TipRequest) (string, error)
}

// Disabled is the Generator used when no generation service is configured.
type Disabled struct{}

func (Disabled) DayTip(ctx context.Context, req TipRequest) (string, error) {
	return "", ErrUnavailable
}

// Service wraps a Generator with the deterministic fallback.
type Service struct {
	gen Generator
}

func NewService(gen Generator) *Service {
	if gen == nil {
		gen = Disabled{}
	}
	return &Service{gen: gen}
}

// DayTip never fails: any generator error resolves to the fallback text.
func (s *Service) DayTip(ctx context.Context, req TipRequest) string {
	tip, err := s.gen.DayTip(ctx, req)
	if err != nil || tip == "" {
		return FallbackTip(req)
	}
	return tip
}
