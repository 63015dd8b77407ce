// Package webhook posts alert payloads to recipient-configured HTTP
// endpoints.
package webhook

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"
)

type Client struct {
	token  string
	client *http.Client
}

func NewClient(token string, timeout time.Duration) *Client {
	return &Client{
		token:  token,
		client: &http.Client{Timeout: timeout},
	}
}

// Post delivers the payload to url and returns the endpoint's status code.
func (c *Client) Post(ctx context.Context, url string, payload []byte) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(payload))
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	return resp.StatusCode, nil
}
