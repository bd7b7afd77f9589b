// internal/poller/types.go
package poller

import (
	"time"

	"github.com/tamzrod/wt-telemetry/internal/telemetry"
)

// Sample is a snapshot produced by one poll cycle.
type Sample struct {
	At       time.Time
	Status   telemetry.Status
	InFlight bool

	Basic telemetry.BasicTelemetry
	Full  telemetry.FullTelemetry

	// Accumulated match log sizes at sample time.
	Comments int
	Events   int
}
