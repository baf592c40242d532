package routing

import (
	"os"
	"strconv"
	"time"
)

// Config holds configuration for the routing collaborator.
type Config struct {
	Enabled    bool
	Endpoint   string
	TimeoutMs  int
	MaxRetries int
	CacheTTL   time.Duration
}

// DefaultConfig returns a Config with sensible defaults. Routing is disabled
// by default: travel estimates then come from the local heuristic.
func DefaultConfig() Config {
	return Config{
		Enabled:    false,
		Endpoint:   "https://router.project-osrm.org",
		TimeoutMs:  2500,
		MaxRetries: 1,
		CacheTTL:   30 * time.Minute,
	}
}

// LoadConfig reads routing configuration from environment variables, falling
// back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("YATRI_ROUTING_ENABLED"); v != "" {
		cfg.Enabled = v == "1" || v == "true"
	}
	if v := os.Getenv("YATRI_ROUTING_URL"); v != "" {
		cfg.Endpoint = v
		cfg.Enabled = true
	}
	if v := os.Getenv("YATRI_ROUTING_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			cfg.TimeoutMs = ms
		}
	}
	if v := os.Getenv("YATRI_ROUTING_CACHE_TTL_MIN"); v != "" {
		if m, err := strconv.Atoi(v); err == nil && m > 0 {
			cfg.CacheTTL = time.Duration(m) * time.Minute
		}
	}
	return cfg
}
