// internal/mapinfo/mapinfo.go
package mapinfo

import "errors"

// Getter is the exact fetch contract mapinfo uses.
// IMPORTANT: there must be NO other version of this interface anywhere.
type Getter interface {
	GetJSON(path string, out any) error
}

// Info mirrors the /map_info.json response.
type Info struct {
	Valid     bool       `json:"valid"`
	MapMin    [2]float64 `json:"map_min"`
	MapMax    [2]float64 `json:"map_max"`
	GridZero  [2]float64 `json:"grid_zero"`
	GridSteps [2]float64 `json:"grid_steps"`
}

// Object is one entry of the /map_obj.json response.
type Object struct {
	Type string  `json:"type"`
	Icon string  `json:"icon"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// Client downloads the map metadata for the current mission and projects
// the player icon's relative position onto the map bounding box.
//
// Not safe for concurrent use; it shares the poll cycle's single thread.
type Client struct {
	tr Getter

	info        Info
	playerFound bool
	playerLat   float64
	playerLon   float64
}

// New creates a map metadata client on top of an existing transport.
func New(tr Getter) (*Client, error) {
	if tr == nil {
		return nil, errors.New("mapinfo: transport required")
	}
	return &Client{tr: tr}, nil
}

// Refresh re-downloads map_info.json and map_obj.json.
// A mission without a player icon reads as position (0, 0).
func (c *Client) Refresh() error {
	var info Info
	if err := c.tr.GetJSON("/map_info.json", &info); err != nil {
		return err
	}

	var objects []Object
	if err := c.tr.GetJSON("/map_obj.json", &objects); err != nil {
		return err
	}

	c.info = info
	c.playerFound = false
	c.playerLat = 0
	c.playerLon = 0

	for _, obj := range objects {
		if obj.Icon != "Player" {
			continue
		}
		// Object coordinates are relative (0..1) across the map extent.
		c.playerLon = info.MapMin[0] + obj.X*(info.MapMax[0]-info.MapMin[0])
		c.playerLat = info.MapMin[1] + obj.Y*(info.MapMax[1]-info.MapMin[1])
		c.playerFound = true
		break
	}

	return nil
}

// PlayerLatLon returns the player position from the last Refresh.
func (c *Client) PlayerLatLon() (float64, float64) {
	return c.playerLat, c.playerLon
}

// InBattle probes the map metadata endpoint. The game serves a valid map
// only while a mission is live, so this is the cheap pre-check before the
// telemetry round trips.
func (c *Client) InBattle() bool {
	var info Info
	if err := c.tr.GetJSON("/map_info.json", &info); err != nil {
		return false
	}
	return info.Valid
}
