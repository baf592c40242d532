package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/alexanderramin/yatri/internal/domain"
)

// Leg is one drive between two points as reported by the routing service.
type Leg struct {
	Minutes    int
	DistanceKm float64
}

// Client queries the external routing collaborator for a drive estimate.
// Errors are degradations, not failures: callers fall back to the local
// heuristic.
type Client interface {
	Route(ctx context.Context, from, to domain.GeoPoint) (*Leg, error)
}

// Disabled is the Client used when no routing collaborator is configured.
type Disabled struct{}

func (Disabled) Route(ctx context.Context, from, to domain.GeoPoint) (*Leg, error) {
	return nil, ErrUnavailable
}

// httpClient implements Client against an OSRM-style endpoint.
type httpClient struct {
	cfg  Config
	http *http.Client
}

// NewHTTPClient creates a Client with a bounded per-call timeout.
func NewHTTPClient(cfg Config) Client {
	return &httpClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 2 * time.Second,
				}).DialContext,
			},
		},
	}
}

// osrmResponse is the subset of the OSRM route response the client reads.
type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Duration float64 `json:"duration"` // seconds
		Distance float64 `json:"distance"` // meters
	} `json:"routes"`
}

func (c *httpClient) Route(ctx context.Context, from, to domain.GeoPoint) (*Leg, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	// OSRM takes lon,lat pairs.
	reqURL := fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f?overview=false",
		c.cfg.Endpoint, from.Lon, from.Lat, to.Lon, to.Lat)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ErrTimeout
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("routing service returned status %d", httpResp.StatusCode)
	}

	var resp osrmResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if resp.Code != "Ok" || len(resp.Routes) == 0 {
		return nil, ErrNoRoute
	}

	minutes := int(resp.Routes[0].Duration/60 + 0.5)
	if minutes < 1 {
		minutes = 1
	}
	return &Leg{
		Minutes:    minutes,
		DistanceKm: resp.Routes[0].Distance / 1000,
	}, nil
}
