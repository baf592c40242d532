package domain

type WeatherCondition string

const (
	ConditionClear        WeatherCondition = "Clear"
	ConditionClouds       WeatherCondition = "Clouds"
	ConditionRain         WeatherCondition = "Rain"
	ConditionDrizzle      WeatherCondition = "Drizzle"
	ConditionThunderstorm WeatherCondition = "Thunderstorm"
)

// WeatherObservation is the raw reading from the weather collaborator.
type WeatherObservation struct {
	Condition WeatherCondition `json:"condition"`
	TempC     float64          `json:"temp_c"`
}

// DefaultObservation is the safe value used whenever the weather collaborator
// is unavailable: planning proceeds as if conditions were pleasant.
func DefaultObservation() WeatherObservation {
	return WeatherObservation{Condition: ConditionClear, TempC: 28}
}

// WeatherImpact maps an observation onto activity-suitability labels.
type WeatherImpact struct {
	Outdoor Suitability `json:"outdoor_activities"`
	Beach   Suitability `json:"beach_activities"`
	Indoor  Suitability `json:"indoor_activities"`
}
