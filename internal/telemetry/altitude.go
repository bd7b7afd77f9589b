// internal/telemetry/altitude.go
package telemetry

// ftToM converts feet to meters.
const ftToM = 0.3048

// imperialPrefixes identifies airframes whose altimeter reports feet.
// Matched case-sensitively against the first two characters of the
// indicator "type" field.
var imperialPrefixes = map[string]struct{}{
	"p-": {}, "f-": {}, "f2": {}, "f3": {}, "f4": {}, "f6": {}, "f7": {},
	"f8": {}, "f9": {}, "os": {}, "sb": {}, "tb": {}, "a-": {}, "pb": {},
	"am": {}, "ad": {}, "fj": {}, "b-": {}, "b_": {}, "xp": {}, "bt": {},
	"xa": {}, "xf": {}, "sp": {}, "hu": {}, "ty": {}, "fi": {}, "gl": {},
	"ni": {}, "fu": {}, "se": {}, "bl": {}, "be": {}, "su": {}, "te": {},
	"st": {}, "mo": {}, "we": {}, "ha": {},
}

// altitudeKeys is the altimeter field preference order.
var altitudeKeys = [...]string{"altitude_10k", "altitude_hour", "altitude_min"}

// findAltitude standardizes the reported altitude to meters.
// Imperial airframes convert feet to meters; all others pass the raw value
// through. No altimeter field present reads as 0.
func findAltitude(airframe string, ind IndicatorSnapshot) float64 {
	imperial := false
	if len(airframe) >= 2 {
		_, imperial = imperialPrefixes[airframe[:2]]
	}

	for _, key := range altitudeKeys {
		v, ok := numField(ind, key)
		if !ok {
			continue
		}
		if imperial {
			return v * ftToM
		}
		return v
	}

	return 0
}
