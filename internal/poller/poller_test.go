// internal/poller/poller_test.go
package poller

import (
	"context"
	"testing"
	"time"

	"github.com/tamzrod/wt-telemetry/internal/telemetry"
)

type fakeInterface struct {
	inFlight     bool
	status       telemetry.Status
	basic        telemetry.BasicTelemetry
	full         telemetry.FullTelemetry
	comments     []telemetry.Comment
	events       []telemetry.Event
	withComments bool
	withEvents   bool
	polls        int
}

func (f *fakeInterface) Poll(withComments, withEvents bool) bool {
	f.polls++
	f.withComments = withComments
	f.withEvents = withEvents
	return f.inFlight
}

func (f *fakeInterface) Status() telemetry.Status                 { return f.status }
func (f *fakeInterface) BasicTelemetry() telemetry.BasicTelemetry { return f.basic }
func (f *fakeInterface) FullTelemetry() telemetry.FullTelemetry   { return f.full }
func (f *fakeInterface) Comments() []telemetry.Comment            { return f.comments }
func (f *fakeInterface) Events() []telemetry.Event                { return f.events }

func TestNew_Validation(t *testing.T) {
	if _, err := New(Config{Interval: 0}, &fakeInterface{}); err == nil {
		t.Fatal("expected interval error")
	}
	if _, err := New(Config{Interval: time.Second}, nil); err == nil {
		t.Fatal("expected interface error")
	}
}

func TestPollOnce_Snapshot(t *testing.T) {
	f := &fakeInterface{
		inFlight: true,
		status:   telemetry.StatusInFlight,
		basic:    telemetry.BasicTelemetry{Airframe: "fw190"},
		full:     telemetry.FullTelemetry{"alt_m": 300.0},
		comments: []telemetry.Comment{{"id": 1}},
		events:   []telemetry.Event{{"id": 2}, {"id": 3}},
	}

	p, err := New(Config{Interval: time.Second, WithComments: true, WithEvents: true}, f)
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}

	s := p.PollOnce()

	if !f.withComments || !f.withEvents {
		t.Fatal("log fetch toggles not forwarded")
	}
	if !s.InFlight || s.Status != telemetry.StatusInFlight {
		t.Fatalf("status=%v inFlight=%v", s.Status, s.InFlight)
	}
	if s.Basic.Airframe != "fw190" {
		t.Fatalf("airframe=%q", s.Basic.Airframe)
	}
	if s.Comments != 1 || s.Events != 2 {
		t.Fatalf("comments=%d events=%d", s.Comments, s.Events)
	}
	if s.At.IsZero() {
		t.Fatal("sample time not set")
	}
}

func TestRun_EmitsOnTickerAndStopsOnCancel(t *testing.T) {
	f := &fakeInterface{status: telemetry.StatusGameNotRunning}

	p, err := New(Config{Interval: 5 * time.Millisecond}, f)
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	// Buffered so the runner never blocks on send while we cancel.
	out := make(chan Sample, 64)
	done := make(chan struct{})

	go func() {
		p.Run(ctx, out)
		close(done)
	}()

	s := <-out
	if s.Status != telemetry.StatusGameNotRunning {
		t.Fatalf("status=%v", s.Status)
	}

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("runner did not stop on cancel")
	}
}
