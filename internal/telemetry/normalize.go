// internal/telemetry/normalize.go
package telemetry

// Result is the outcome of normalizing one poll cycle.
// It is an immutable snapshot: the stateful interface stores it, nothing
// mutates it afterwards.
type Result struct {
	Status    Status
	Connected bool
	Full      FullTelemetry
	Basic     BasicTelemetry
}

// Normalize converts one pair of raw snapshots into telemetry records and a
// status. Pure: no IO, no side effects, inputs are not mutated.
//
// Policy, in order:
//   - either valid flag false          -> NO_MISSION, empty telemetry
//   - "type" missing from indicators   -> IN_MENU, empty telemetry
//   - otherwise                        -> IN_FLIGHT, both records populated
func Normalize(ind IndicatorSnapshot, state StateSnapshot, lat, lon float64) Result {
	res := Result{
		Full: FullTelemetry{},
	}

	if !boolField(ind, "valid") || !boolField(state, "valid") {
		res.Status = StatusNoMission
		return res
	}

	// Partial telemetry without an airframe type means the player is not
	// actually piloting.
	airframe, ok := stringField(ind, "type")
	if !ok {
		res.Status = StatusInMenu
		return res
	}

	// The game reports artificial horizon angles with inverted polarity.
	// Absent angles read as 0, the key is still emitted.
	pitch := 0.0
	if v, present := numField(ind, "aviahorizon_pitch"); present {
		pitch = -v
	}
	roll := 0.0
	if v, present := numField(ind, "aviahorizon_roll"); present {
		roll = -v
	}

	altM := findAltitude(airframe, ind)

	// Merge order is contract: indicators first, state second, so state
	// values win on key collision.
	for k, v := range ind {
		res.Full[k] = v
	}
	res.Full["aviahorizon_pitch"] = pitch
	res.Full["aviahorizon_roll"] = roll
	res.Full["alt_m"] = altM
	for k, v := range state {
		res.Full[k] = v
	}
	res.Full["lat"] = lat
	res.Full["lon"] = lon

	res.Basic = BasicTelemetry{
		Airframe: airframe,
		Roll:     roll,
		Pitch:    pitch,
		Altitude: altM,
		Lat:      lat,
		Lon:      lon,
	}

	// Instrument fields are individually optional: one missing gauge never
	// blocks the others.
	if v, present := numField(state, "IAS, km/h"); present {
		res.Basic.IAS = &v
	}
	if v, present := numField(state, "flaps, %"); present {
		res.Basic.FlapState = &v
	}
	if v, present := numField(state, "gear, %"); present {
		res.Basic.GearState = &v
	}

	res.Status = StatusInFlight
	res.Connected = true

	return res
}
