package routing

import (
	"fmt"
	"io"
	"time"
)

// CallEvent records metadata about a single routing lookup.
type CallEvent struct {
	LatencyMs int64
	Success   bool
	FromCache bool
	Fallback  bool
	ErrorCode string
}

// Observer receives events about routing calls for logging and metrics.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes call events to an io.Writer.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	switch {
	case event.FromCache:
		status = "cache"
	case event.Fallback:
		status = "fallback"
	case !event.Success:
		status = "err:" + event.ErrorCode
	}
	fmt.Fprintf(o.w, "[%s] routing_call latency_ms=%d status=%s\n", ts, event.LatencyMs, status)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
