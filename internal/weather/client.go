package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/alexanderramin/yatri/internal/cache"
	"github.com/alexanderramin/yatri/internal/domain"
)

// Client provides the current weather observation for a city. Callers must
// treat any error as a degradation and fall back to the default observation,
// never as a planning failure.
type Client interface {
	Current(ctx context.Context, city string) (*domain.WeatherObservation, error)
}

// Disabled is the Client used when no weather collaborator is configured:
// every lookup reports unavailable, which callers resolve to the default.
type Disabled struct{}

func (Disabled) Current(ctx context.Context, city string) (*domain.WeatherObservation, error) {
	return nil, ErrUnavailable
}

// httpClient implements Client against an OpenWeather-style endpoint.
type httpClient struct {
	cfg      Config
	http     *http.Client
	cache    *cache.Cache[domain.WeatherObservation]
	observer Observer
}

// NewHTTPClient creates a Client with a bounded per-call timeout and a
// shared TTL cache keyed by city.
func NewHTTPClient(cfg Config, lookupCache *cache.Cache[domain.WeatherObservation], observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	if lookupCache == nil {
		lookupCache = cache.New[domain.WeatherObservation](cfg.CacheTTL)
	}
	return &httpClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 3 * time.Second,
				}).DialContext,
			},
		},
		cache:    lookupCache,
		observer: observer,
	}
}

// apiResponse is the subset of the provider's JSON the client reads.
type apiResponse struct {
	Weather []struct {
		Main string `json:"main"`
	} `json:"weather"`
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
}

func (c *httpClient) Current(ctx context.Context, city string) (*domain.WeatherObservation, error) {
	start := time.Now()

	key := cache.Key("weather", strings.ToLower(city))
	if obs, ok := c.cache.Get(key); ok {
		c.observer.OnCallComplete(CallEvent{City: city, Success: true, FromCache: true})
		return &obs, nil
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	var lastErr error
	attempts := 1 + c.cfg.MaxRetries
	for i := 0; i < attempts; i++ {
		obs, err := c.doRequest(ctx, city)
		if err == nil {
			c.cache.Put(key, *obs)
			c.observer.OnCallComplete(CallEvent{
				City:      city,
				LatencyMs: time.Since(start).Milliseconds(),
				Success:   true,
			})
			return obs, nil
		}
		lastErr = err

		// Don't retry on context cancellation/timeout
		if ctx.Err() != nil {
			break
		}
	}

	c.observer.OnCallComplete(CallEvent{
		City:      city,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   false,
		ErrorCode: errorCode(lastErr),
	})

	if ctx.Err() != nil {
		return nil, ErrTimeout
	}
	return nil, fmt.Errorf("%w: %v", ErrUnavailable, lastErr)
}

func (c *httpClient) doRequest(ctx context.Context, city string) (*domain.WeatherObservation, error) {
	q := url.Values{}
	q.Set("q", city)
	q.Set("units", "metric")
	if c.cfg.APIKey != "" {
		q.Set("appid", c.cfg.APIKey)
	}
	reqURL := c.cfg.Endpoint + "/weather?" + q.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather service returned status %d", httpResp.StatusCode)
	}

	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	if len(resp.Weather) == 0 {
		return nil, ErrBadResponse
	}

	return &domain.WeatherObservation{
		Condition: domain.WeatherCondition(resp.Weather[0].Main),
		TempC:     resp.Main.Temp,
	}, nil
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case strings.Contains(err.Error(), "context deadline"):
		return "timeout"
	default:
		return "unavailable"
	}
}
