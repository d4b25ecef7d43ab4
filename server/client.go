package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"tessera/engine"
)

// Client fetches shapes from a shape server.
type Client struct {
	base string
	hc   *http.Client
}

func NewClient(base string) *Client {
	return &Client{
		base: base,
		hc:   &http.Client{Timeout: 10 * time.Second},
	}
}

// FetchCube retrieves a tesseract of the given size and validates its
// topology before handing it to the engine.
func (c *Client) FetchCube(ctx context.Context, size float64) (*engine.Shape4D, error) {
	u, err := url.Parse(c.base)
	if err != nil {
		return nil, fmt.Errorf("bad base url %q: %w", c.base, err)
	}
	u = u.JoinPath("shapes", "cube")
	q := u.Query()
	q.Set("size", strconv.FormatFloat(size, 'g', -1, 64))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch cube: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch cube: unexpected status %s", resp.Status)
	}

	var shape engine.Shape4D
	if err := json.NewDecoder(resp.Body).Decode(&shape); err != nil {
		return nil, fmt.Errorf("decode cube: %w", err)
	}
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("server sent bad topology: %w", err)
	}
	return &shape, nil
}
