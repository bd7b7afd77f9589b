// cmd/wt-telemetry/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/tamzrod/wt-telemetry/internal/config"
	"github.com/tamzrod/wt-telemetry/internal/display"
	"github.com/tamzrod/wt-telemetry/internal/mapinfo"
	"github.com/tamzrod/wt-telemetry/internal/poller"
	"github.com/tamzrod/wt-telemetry/internal/telemetry"
	"github.com/tamzrod/wt-telemetry/internal/transport"
)

func main() {
	boot := zerolog.New(os.Stderr).With().Timestamp().Logger()

	// --------------------
	// Load + validate config
	// --------------------

	cfgPath := ""
	if len(os.Args) > 1 {
		cfgPath = os.Args[1]
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		boot.Fatal().Err(err).Msg("config load failed")
	}

	if err := config.Validate(cfg); err != nil {
		boot.Fatal().Err(err).Msg("config validation failed")
	}

	config.Normalize(cfg)

	level, _ := zerolog.ParseLevel(cfg.Session.Logging.Level)
	log := boot.Level(level)

	// --------------------
	// Build the pipeline
	// --------------------

	tr, err := transport.New(transport.Config{
		Host:    cfg.Session.Source.Host,
		Port:    cfg.Session.Source.Port,
		Timeout: time.Duration(cfg.Session.Source.TimeoutMs) * time.Millisecond,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("transport build failed")
	}

	maps, err := mapinfo.New(tr)
	if err != nil {
		log.Fatal().Err(err).Msg("mapinfo build failed")
	}

	iface, err := telemetry.New(tr, maps, log)
	if err != nil {
		log.Fatal().Err(err).Msg("telemetry build failed")
	}

	p, err := poller.New(
		poller.Config{
			Interval:     time.Duration(cfg.Session.Poll.IntervalMs) * time.Millisecond,
			WithComments: cfg.Session.Logs.Comments,
			WithEvents:   cfg.Session.Logs.Events,
		},
		iface,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("poller build failed")
	}

	out := display.New(display.Plan{
		ShowTelemetry: true,
		ShowLogCounts: cfg.Session.Logs.Comments || cfg.Session.Logs.Events,
	}, log)

	// --------------------
	// Run until interrupted
	// --------------------

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	samples := make(chan poller.Sample)

	go p.Run(ctx, samples)

	log.Info().
		Str("host", cfg.Session.Source.Host).
		Int("port", cfg.Session.Source.Port).
		Int("interval_ms", cfg.Session.Poll.IntervalMs).
		Msg("polling started")

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("shutting down")
			return
		case s := <-samples:
			if err := out.Write(s); err != nil {
				log.Error().Err(err).Msg("display write failed")
			}
		}
	}
}
