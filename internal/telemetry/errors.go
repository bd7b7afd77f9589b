// internal/telemetry/errors.go
package telemetry

import "errors"

// Transport failure classes the classifier distinguishes.
// The transport wraps its underlying errors with these sentinels so the
// classifier never has to match error message text.
var (
	// ErrConnectionRefused: the local telemetry port refused the connection.
	ErrConnectionRefused = errors.New("telemetry: connection refused")

	// ErrConnectTimeout: the request deadline expired before a response.
	ErrConnectTimeout = errors.New("telemetry: connect timeout")
)
