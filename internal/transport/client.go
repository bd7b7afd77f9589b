// internal/transport/client.go
package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"syscall"
	"time"

	"github.com/tamzrod/wt-telemetry/internal/telemetry"
)

// Client implements telemetry.Client over the game's local HTTP surface.
// This adapter is transport-only: it fetches and decodes, it does not
// interpret.
type Client struct {
	base string
	hc   *http.Client
}

// Config is minimal transport config.
type Config struct {
	Host    string
	Port    int
	Timeout time.Duration
}

// New creates a client for the game's local telemetry port.
func New(cfg Config) (*Client, error) {
	if cfg.Host == "" {
		return nil, errors.New("transport: host required")
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, errors.New("transport: port out of range")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 2 * time.Second
	}

	return &Client{
		base: fmt.Sprintf("http://%s:%d", cfg.Host, cfg.Port),
		hc:   &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// GetJSON fetches one endpoint and decodes the body into out.
// Connection-class failures come back wrapped in the telemetry sentinels.
func (c *Client) GetJSON(path string, out any) error {
	resp, err := c.hc.Get(c.base + path)
	if err != nil {
		return classify(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("transport: %s returned %s", path, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("transport: decode %s: %w", path, err)
	}

	return nil
}

// classify wraps connection-establishment failures in typed sentinels so
// the classifier never matches error message text.
func classify(err error) error {
	if errors.Is(err, syscall.ECONNREFUSED) {
		return fmt.Errorf("%w: %v", telemetry.ErrConnectionRefused, err)
	}

	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return fmt.Errorf("%w: %v", telemetry.ErrConnectTimeout, err)
	}

	return err
}

// ---- telemetry.Client interface ----

func (c *Client) FetchIndicators() (telemetry.IndicatorSnapshot, error) {
	var snap telemetry.IndicatorSnapshot
	if err := c.GetJSON("/indicators", &snap); err != nil {
		return nil, err
	}
	return snap, nil
}

func (c *Client) FetchState() (telemetry.StateSnapshot, error) {
	var snap telemetry.StateSnapshot
	if err := c.GetJSON("/state", &snap); err != nil {
		return nil, err
	}
	return snap, nil
}

func (c *Client) FetchComments(sinceID int) ([]telemetry.Comment, error) {
	var comments []telemetry.Comment
	path := fmt.Sprintf("/gamechat?lastId=%d", sinceID)
	if err := c.GetJSON(path, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (c *Client) FetchEvents(sinceID int) (telemetry.EventPage, error) {
	var page telemetry.EventPage
	path := fmt.Sprintf("/hudmsg?lastEvt=-1&lastDmg=%d", sinceID)
	if err := c.GetJSON(path, &page); err != nil {
		return telemetry.EventPage{}, err
	}
	return page, nil
}
