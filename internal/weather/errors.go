package weather

import "errors"

var (
	// ErrUnavailable indicates the weather service is unreachable.
	ErrUnavailable = errors.New("weather service unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("weather request timed out")

	// ErrBadResponse indicates the service answered with something the
	// client could not interpret.
	ErrBadResponse = errors.New("invalid weather response")
)
