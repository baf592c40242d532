package scheduler

import (
	"fmt"

	"github.com/alexanderramin/yatri/internal/domain"
)

// hotDayTempC is the threshold above which open-air sightseeing degrades.
const hotDayTempC = 35.0

// AssessWeather maps an observation onto suitability labels for the scorer
// and the day builder. A nil observation uses the safe default; this function
// has no failure mode.
func AssessWeather(obs *domain.WeatherObservation) domain.WeatherImpact {
	o := domain.DefaultObservation()
	if obs != nil {
		o = *obs
	}

	switch o.Condition {
	case domain.ConditionRain, domain.ConditionDrizzle, domain.ConditionThunderstorm:
		return domain.WeatherImpact{
			Outdoor: domain.Unfavorable,
			Beach:   domain.Unfavorable,
			Indoor:  domain.Favorable,
		}
	}

	if o.TempC > hotDayTempC {
		return domain.WeatherImpact{
			Outdoor: domain.Moderate,
			Beach:   domain.Favorable,
			Indoor:  domain.Favorable,
		}
	}

	return domain.WeatherImpact{
		Outdoor: domain.Favorable,
		Beach:   domain.Favorable,
		Indoor:  domain.Favorable,
	}
}

// WeatherNote renders the human-readable recommendation attached to each day.
func WeatherNote(obs *domain.WeatherObservation, impact domain.WeatherImpact) string {
	o := domain.DefaultObservation()
	if obs != nil {
		o = *obs
	}
	switch {
	case impact.Outdoor == domain.Unfavorable:
		return fmt.Sprintf("%s expected — plan indoor activities, keep beaches for another day", o.Condition)
	case impact.Outdoor == domain.Moderate:
		return fmt.Sprintf("Hot day (%.0f°C) — start early, keep midday indoors", o.TempC)
	default:
		return fmt.Sprintf("%s, %.0f°C — good conditions for outdoor plans", o.Condition, o.TempC)
	}
}
