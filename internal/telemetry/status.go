// internal/telemetry/status.go
package telemetry

// Status is the coarse game-state classification derived from one poll.
type Status int

// Status codes are wire-locked to the values downstream consumers already
// depend on. They MUST NOT be renumbered.

// StatusInFlight: player is piloting a controllable aircraft.
const StatusInFlight Status = 0

// StatusInMenu: game reachable, mission valid, but no airframe under control.
const StatusInMenu Status = -1

// StatusNoMission: game reachable but no active mission (valid flags false).
const StatusNoMission Status = -2

// StatusGameNotRunning: the local telemetry port refused or timed out.
const StatusGameNotRunning Status = -3

// StatusOtherError: any other transport or decode failure.
const StatusOtherError Status = -4

func (s Status) String() string {
	switch s {
	case StatusInFlight:
		return "in_flight"
	case StatusInMenu:
		return "in_menu"
	case StatusNoMission:
		return "no_mission"
	case StatusGameNotRunning:
		return "game_not_running"
	case StatusOtherError:
		return "other_error"
	default:
		return "unknown"
	}
}
