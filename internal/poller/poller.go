// internal/poller/poller.go
package poller

import (
	"errors"
	"time"

	"github.com/tamzrod/wt-telemetry/internal/telemetry"
)

// Interface is the surface the runner drives.
// The poller depends on poll outcomes only.
type Interface interface {
	Poll(withComments, withEvents bool) bool
	Status() telemetry.Status
	BasicTelemetry() telemetry.BasicTelemetry
	FullTelemetry() telemetry.FullTelemetry
	Comments() []telemetry.Comment
	Events() []telemetry.Event
}

// Config is the minimal runtime config the poller needs.
type Config struct {
	Interval     time.Duration
	WithComments bool
	WithEvents   bool
}

// Poller is a dumb, clock-driven sampler.
type Poller struct {
	cfg   Config
	iface Interface
}

// New creates a poller with immutable config.
func New(cfg Config, iface Interface) (*Poller, error) {
	if cfg.Interval <= 0 {
		return nil, errors.New("poller: interval must be > 0")
	}
	if iface == nil {
		return nil, errors.New("poller: telemetry interface required")
	}
	return &Poller{cfg: cfg, iface: iface}, nil
}

// PollOnce performs exactly one poll cycle and snapshots the outcome.
func (p *Poller) PollOnce() Sample {
	inFlight := p.iface.Poll(p.cfg.WithComments, p.cfg.WithEvents)

	return Sample{
		At:       time.Now(),
		Status:   p.iface.Status(),
		InFlight: inFlight,
		Basic:    p.iface.BasicTelemetry(),
		Full:     p.iface.FullTelemetry(),
		Comments: len(p.iface.Comments()),
		Events:   len(p.iface.Events()),
	}
}
