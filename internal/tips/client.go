package tips

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds configuration for the text-generation collaborator.
type Config struct {
	Enabled   bool
	Endpoint  string
	Model     string
	TimeoutMs int
}

// DefaultConfig returns a Config with generation disabled; the deterministic
// fallback then supplies every tip.
func DefaultConfig() Config {
	return Config{
		Enabled:   false,
		Endpoint:  "http://localhost:11434",
		Model:     "llama3.2",
		TimeoutMs: 4000,
	}
}

// LoadConfig reads tip-generation configuration from environment variables.
func LoadConfig() Config {
	cfg := DefaultConfig()
	if v := os.Getenv("YATRI_TIPS_ENABLED"); v != "" {
		cfg.Enabled = v == "1" || v == "true"
	}
	if v := os.Getenv("YATRI_TIPS_URL"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("YATRI_TIPS_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("YATRI_TIPS_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			cfg.TimeoutMs = ms
		}
	}
	return cfg
}

// httpGenerator implements Generator against an Ollama-style endpoint.
type httpGenerator struct {
	cfg  Config
	http *http.Client
}

// NewHTTPGenerator creates a Generator with a bounded per-call timeout.
func NewHTTPGenerator(cfg Config) Generator {
	return &httpGenerator{
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

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
}

func (g *httpGenerator) DayTip(ctx context.Context, req TipRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(g.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	cats := make([]string, len(req.Categories))
	for i, c := range req.Categories {
		cats[i] = string(c)
	}
	prompt := fmt.Sprintf(
		"Write one short practical travel tip (max 25 words) for a day in %s visiting %s. Weather: %s.",
		req.Destination, strings.Join(cats, ", "), req.WeatherNote)

	body, err := json.Marshal(generateRequest{Model: g.cfg.Model, Prompt: prompt, Stream: false})
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.Endpoint+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := g.http.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return "", ErrTimeout
		}
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}
	if httpResp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("tip service returned status %d", httpResp.StatusCode)
	}

	var resp generateResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}
	return strings.TrimSpace(resp.Response), nil
}
