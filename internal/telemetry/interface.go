// internal/telemetry/interface.go
package telemetry

import (
	"errors"

	"github.com/rs/zerolog"
)

// TelemetryInterface polls the game's local telemetry surface and stores
// the latest normalized result plus the accumulated match logs.
//
// Not safe for concurrent use: one instance, one poller.
type TelemetryInterface struct {
	client  Client
	mapInfo MapInfo
	log     zerolog.Logger

	connected  bool
	status     Status
	indicators IndicatorSnapshot
	state      StateSnapshot
	full       FullTelemetry
	basic      BasicTelemetry

	comments      []Comment
	events        []Event
	lastCommentID int
	lastEventID   int
}

// New creates a telemetry interface. Watermarks start at -1 ("fetch all");
// match logs live for the lifetime of the instance.
func New(client Client, mapInfo MapInfo, log zerolog.Logger) (*TelemetryInterface, error) {
	if client == nil {
		return nil, errors.New("telemetry: client required")
	}
	if mapInfo == nil {
		return nil, errors.New("telemetry: map info required")
	}
	return &TelemetryInterface{
		client:        client,
		mapInfo:       mapInfo,
		log:           log,
		status:        StatusGameNotRunning,
		lastCommentID: -1,
		lastEventID:   -1,
	}, nil
}

// Poll performs one full poll cycle: map metadata, indicators, state,
// optionally chat comments and damage events. It stores the normalized
// result and returns whether the player is currently in flight.
//
// No error crosses this boundary; every failure class collapses into a
// status code.
func (t *TelemetryInterface) Poll(withComments, withEvents bool) bool {
	t.connected = false
	t.full = FullTelemetry{}
	t.basic = BasicTelemetry{}

	if err := t.mapInfo.Refresh(); err != nil {
		t.status = t.classifyTransport(err)
		return false
	}

	ind, err := t.client.FetchIndicators()
	if err != nil {
		t.status = t.classifyTransport(err)
		return false
	}

	state, err := t.client.FetchState()
	if err != nil {
		t.status = t.classifyTransport(err)
		return false
	}

	t.indicators = ind
	t.state = state

	// Match logs are best-effort and never influence the status.
	if withComments {
		t.fetchComments()
	}
	if withEvents {
		t.fetchEvents()
	}

	lat, lon := t.mapInfo.PlayerLatLon()
	res := Normalize(ind, state, lat, lon)

	t.status = res.Status
	t.connected = res.Connected
	t.full = res.Full
	t.basic = res.Basic

	return t.connected
}

// PollStatusOnly computes the status without normalizing telemetry.
// When the map collaborator reports no live battle it returns IN_MENU
// without touching the telemetry endpoints at all.
func (t *TelemetryInterface) PollStatusOnly() Status {
	t.connected = false
	t.full = FullTelemetry{}
	t.basic = BasicTelemetry{}

	if !t.mapInfo.InBattle() {
		t.status = StatusInMenu
		return t.status
	}

	ind, err := t.client.FetchIndicators()
	if err != nil {
		t.status = t.classifyTransport(err)
		return t.status
	}

	state, err := t.client.FetchState()
	if err != nil {
		t.status = t.classifyTransport(err)
		return t.status
	}

	t.indicators = ind
	t.state = state

	if !boolField(ind, "valid") || !boolField(state, "valid") {
		t.status = StatusNoMission
		return t.status
	}

	airframe, ok := stringField(ind, "type")
	if !ok {
		t.status = StatusInMenu
		return t.status
	}

	t.basic.Airframe = airframe
	t.connected = true
	t.status = StatusInFlight

	return t.status
}

// classifyTransport maps a transport failure onto a status code.
// Refused and timeout mean the game is not running; anything else is
// unexpected and gets surfaced to the operator.
func (t *TelemetryInterface) classifyTransport(err error) Status {
	if errors.Is(err, ErrConnectionRefused) || errors.Is(err, ErrConnectTimeout) {
		return StatusGameNotRunning
	}

	t.log.Error().Err(err).Msg("telemetry poll failed")

	return StatusOtherError
}

// ---- accessors ----

func (t *TelemetryInterface) Status() Status { return t.status }

func (t *TelemetryInterface) Connected() bool { return t.connected }

// FullTelemetry returns the latest merged telemetry record.
// Callers must not mutate the returned map.
func (t *TelemetryInterface) FullTelemetry() FullTelemetry { return t.full }

func (t *TelemetryInterface) BasicTelemetry() BasicTelemetry { return t.basic }

// Indicators returns the latest raw /indicators snapshot.
func (t *TelemetryInterface) Indicators() IndicatorSnapshot { return t.indicators }

// State returns the latest raw /state snapshot.
func (t *TelemetryInterface) State() StateSnapshot { return t.state }

func (t *TelemetryInterface) Comments() []Comment { return t.comments }

func (t *TelemetryInterface) Events() []Event { return t.events }

func (t *TelemetryInterface) LastCommentID() int { return t.lastCommentID }

func (t *TelemetryInterface) LastEventID() int { return t.lastEventID }
