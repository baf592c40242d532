package weather

import (
	"os"
	"strconv"
	"time"
)

// Config holds configuration for the weather collaborator.
type Config struct {
	Enabled    bool
	Endpoint   string
	APIKey     string
	TimeoutMs  int
	MaxRetries int
	CacheTTL   time.Duration
}

// DefaultConfig returns a Config with sensible defaults. The collaborator is
// disabled by default: planning then uses the fixed default observation.
func DefaultConfig() Config {
	return Config{
		Enabled:    false,
		Endpoint:   "https://api.openweathermap.org/data/2.5",
		TimeoutMs:  3000,
		MaxRetries: 1,
		CacheTTL:   15 * time.Minute,
	}
}

// LoadConfig reads weather configuration from environment variables, falling
// back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("YATRI_WEATHER_ENABLED"); v != "" {
		cfg.Enabled = v == "1" || v == "true"
	}
	if v := os.Getenv("YATRI_WEATHER_URL"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("YATRI_WEATHER_API_KEY"); v != "" {
		cfg.APIKey = v
		cfg.Enabled = true
	}
	if v := os.Getenv("YATRI_WEATHER_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			cfg.TimeoutMs = ms
		}
	}
	if v := os.Getenv("YATRI_WEATHER_CACHE_TTL_MIN"); v != "" {
		if m, err := strconv.Atoi(v); err == nil && m > 0 {
			cfg.CacheTTL = time.Duration(m) * time.Minute
		}
	}
	return cfg
}
