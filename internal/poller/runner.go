// internal/poller/runner.go
package poller

import (
	"context"
	"time"
)

// Run starts the ticker loop and emits a Sample on the provided channel.
// One goroutine per session. No overlap. No retries.
func (p *Poller) Run(ctx context.Context, out chan<- Sample) {
	ticker := time.NewTicker(p.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			out <- p.PollOnce()
		}
	}
}
