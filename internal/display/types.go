// internal/display/types.go
package display

import "github.com/tamzrod/wt-telemetry/internal/poller"

// Plan is the fully-built render plan for one session.
type Plan struct {
	// ShowTelemetry renders basic telemetry for every in-flight sample.
	ShowTelemetry bool
	// ShowLogCounts includes accumulated comment/event counts per sample.
	ShowLogCounts bool
}

// Writer delivers poll samples to the operator.
type Writer interface {
	Write(s poller.Sample) error
}
