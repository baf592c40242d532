package tips

import "errors"

var (
	// ErrUnavailable indicates the generation service is unreachable.
	ErrUnavailable = errors.New("tip generation unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("tip generation timed out")
)
