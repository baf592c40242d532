package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alexanderramin/yatri/internal/cache"
	"github.com/alexanderramin/yatri/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) Config {
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.Endpoint = endpoint
	cfg.TimeoutMs = 500
	return cfg
}

func TestHTTPClient_Current_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/weather", r.URL.Path)
		assert.Equal(t, "Goa", r.URL.Query().Get("q"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"weather":[{"main":"Rain"}],"main":{"temp":24.5}}`))
	}))
	defer srv.Close()

	client := NewHTTPClient(testConfig(srv.URL), nil, NoopObserver{})
	obs, err := client.Current(context.Background(), "Goa")

	require.NoError(t, err)
	assert.Equal(t, domain.ConditionRain, obs.Condition)
	assert.Equal(t, 24.5, obs.TempC)
}

func TestHTTPClient_Current_CachesByCity(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"weather":[{"main":"Clear"}],"main":{"temp":30}}`))
	}))
	defer srv.Close()

	client := NewHTTPClient(testConfig(srv.URL), cache.New[domain.WeatherObservation](time.Minute), NoopObserver{})

	for i := 0; i < 3; i++ {
		_, err := client.Current(context.Background(), "Goa")
		require.NoError(t, err)
	}
	assert.Equal(t, int32(1), calls.Load(), "repeat lookups should hit the cache")
}

func TestHTTPClient_Current_BadPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"weather":[]}`))
	}))
	defer srv.Close()

	client := NewHTTPClient(testConfig(srv.URL), nil, NoopObserver{})
	_, err := client.Current(context.Background(), "Goa")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestHTTPClient_Current_ServerErrorRetriesThenFails(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 2

	client := NewHTTPClient(cfg, nil, NoopObserver{})
	_, err := client.Current(context.Background(), "Goa")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, int32(3), calls.Load())
}

func TestHTTPClient_Current_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.Write([]byte(`{"weather":[{"main":"Clear"}],"main":{"temp":30}}`))
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.TimeoutMs = 50

	client := NewHTTPClient(cfg, nil, NoopObserver{})
	_, err := client.Current(context.Background(), "Goa")
	assert.ErrorIs(t, err, ErrTimeout)
}

func TestDisabled_AlwaysUnavailable(t *testing.T) {
	_, err := Disabled{}.Current(context.Background(), "Goa")
	assert.ErrorIs(t, err, ErrUnavailable)
}
