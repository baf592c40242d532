package routing

import "errors"

var (
	// ErrUnavailable indicates the routing service is unreachable.
	ErrUnavailable = errors.New("routing service unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("routing request timed out")

	// ErrNoRoute indicates the service found no drivable route between the
	// two points.
	ErrNoRoute = errors.New("no route found")
)
