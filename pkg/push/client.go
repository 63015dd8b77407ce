// Package push provides a client for an FCM-style mobile push gateway.
package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Client represents a push-gateway client used to send mobile notifications.
type Client struct {
	endpoint  string
	serverKey string
	client    *http.Client
}

// NewClient creates a new push Client for the given gateway endpoint.
func NewClient(endpoint, serverKey string) *Client {
	return &Client{
		endpoint:  endpoint,
		serverKey: serverKey,
		client:    &http.Client{},
	}
}

type notification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// sendMessageRequest represents the gateway's send payload.
type sendMessageRequest struct {
	To           string       `json:"to"` // device token
	Notification notification `json:"notification"`
}

// Send pushes one notification to the given device token.
func (c *Client) Send(ctx context.Context, token, title, msg string) error {
	body, err := json.Marshal(sendMessageRequest{
		To:           token,
		Notification: notification{Title: title, Body: msg},
	})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "key="+c.serverKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("push gateway error: %s", resp.Status)
	}

	return nil
}
