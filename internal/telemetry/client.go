// internal/telemetry/client.go
package telemetry

// Client abstracts the game's local HTTP surface needed by the interface.
// The core depends on decoded snapshots only.
type Client interface {
	FetchIndicators() (IndicatorSnapshot, error)
	FetchState() (StateSnapshot, error)
	FetchComments(sinceID int) ([]Comment, error)
	FetchEvents(sinceID int) (EventPage, error)
}

// MapInfo supplies player position and battle presence from the game's map
// metadata endpoints.
type MapInfo interface {
	// Refresh re-downloads map metadata for the current mission.
	Refresh() error
	// PlayerLatLon returns the player position from the last Refresh.
	PlayerLatLon() (lat, lon float64)
	// InBattle reports whether the game currently serves a live mission map.
	InBattle() bool
}
