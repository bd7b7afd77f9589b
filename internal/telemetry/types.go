// internal/telemetry/types.go
package telemetry

// IndicatorSnapshot is the raw /indicators response. Opaque key-value data
// except for the keys the normalizer reads.
type IndicatorSnapshot map[string]any

// StateSnapshot is the raw /state response. Opaque except for "valid" and
// the instrument keys pulled into BasicTelemetry.
type StateSnapshot map[string]any

// FullTelemetry is the last-write-wins union of one indicator snapshot and
// one state snapshot, plus derived keys (alt_m, corrected pitch/roll,
// lat/lon). State values win on key collision.
type FullTelemetry map[string]any

// BasicTelemetry is the minimal control-relevant subset of a poll.
// IAS, FlapState and GearState are nil when the game did not report them;
// a missing instrument is not an error.
type BasicTelemetry struct {
	Airframe  string
	Roll      float64
	Pitch     float64
	Altitude  float64
	Lat       float64
	Lon       float64
	IAS       *float64
	FlapState *float64
	GearState *float64
}

// Comment is one chat record from /gamechat. Opaque except for "id".
type Comment map[string]any

// Event is one damage record from /hudmsg. Opaque except for "id".
type Event map[string]any

// EventPage mirrors the /hudmsg response shape.
type EventPage struct {
	Events []Event `json:"events"`
	Damage []Event `json:"damage"`
}

// recordID extracts the integer "id" of a chat or damage record.
// JSON decoding delivers numbers as float64.
func recordID(m map[string]any) (int, bool) {
	v, ok := m["id"]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	case int64:
		return int(n), true
	}
	return 0, false
}

// numField reads a numeric snapshot field.
func numField(m map[string]any, key string) (float64, bool) {
	v, ok := m[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// stringField reads a string snapshot field.
func stringField(m map[string]any, key string) (string, bool) {
	v, ok := m[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// boolField reads a boolean snapshot field. Absent or non-bool reads false.
func boolField(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}
