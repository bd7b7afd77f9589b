// internal/display/display.go
package display

import (
	"github.com/rs/zerolog"

	"github.com/tamzrod/wt-telemetry/internal/poller"
	"github.com/tamzrod/wt-telemetry/internal/telemetry"
)

// consoleWriter renders samples through the structured logger.
// Delivery-only: it receives a sample and reports it verbatim.
// No logic, no state beyond edge detection, no interpretation.
type consoleWriter struct {
	plan Plan
	log  zerolog.Logger

	haveStatus bool
	lastStatus telemetry.Status
}

// New builds the console writer for a session.
func New(plan Plan, log zerolog.Logger) Writer {
	return &consoleWriter{
		plan: plan,
		log:  log,
	}
}

func (w *consoleWriter) Write(s poller.Sample) error {
	// Status transitions are always reported, once per edge.
	if !w.haveStatus || s.Status != w.lastStatus {
		w.log.Info().
			Str("status", s.Status.String()).
			Int("code", int(s.Status)).
			Msg("game status")
		w.haveStatus = true
		w.lastStatus = s.Status
	}

	if !s.InFlight || !w.plan.ShowTelemetry {
		return nil
	}

	ev := w.log.Info().
		Str("airframe", s.Basic.Airframe).
		Float64("altitude_m", s.Basic.Altitude).
		Float64("pitch", s.Basic.Pitch).
		Float64("roll", s.Basic.Roll).
		Float64("lat", s.Basic.Lat).
		Float64("lon", s.Basic.Lon)

	if s.Basic.IAS != nil {
		ev = ev.Float64("ias_kmh", *s.Basic.IAS)
	}
	if s.Basic.FlapState != nil {
		ev = ev.Float64("flaps_pct", *s.Basic.FlapState)
	}
	if s.Basic.GearState != nil {
		ev = ev.Float64("gear_pct", *s.Basic.GearState)
	}

	if w.plan.ShowLogCounts {
		ev = ev.Int("comments", s.Comments).Int("events", s.Events)
	}

	ev.Msg("telemetry")

	return nil
}
