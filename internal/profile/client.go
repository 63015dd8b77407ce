// Package profile looks up recipient profiles from the external profile
// service on association-cache misses.
package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/openfleet/alert-dispatcher/internal/model"
)

type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// Lookup fetches the profile for a vehicle/user pair. An empty userID asks
// the service to resolve the vehicle's current primary user.
func (c *Client) Lookup(ctx context.Context, vehicleID, userID string) (model.RecipientProfile, error) {
	q := url.Values{}
	q.Set("vehicle_id", vehicleID)
	if userID != "" {
		q.Set("user_id", userID)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/profiles?"+q.Encode(), nil)
	if err != nil {
		return model.RecipientProfile{}, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return model.RecipientProfile{}, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.RecipientProfile{}, fmt.Errorf("profile service error: %s", resp.Status)
	}

	var p model.RecipientProfile
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return model.RecipientProfile{}, fmt.Errorf("decode profile: %w", err)
	}
	return p, nil
}
