// Package ivm provides a client for the in-vehicle message gateway.
package ivm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Client represents a gateway client used to push messages to a vehicle's
// head unit.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a new gateway Client with the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

// sendMessageRequest represents the gateway's message payload.
type sendMessageRequest struct {
	Subject string `json:"subject,omitempty"`
	Text    string `json:"text"`
}

// Send pushes one message to the vehicle identified by vehicleID.
func (c *Client) Send(ctx context.Context, vehicleID, subject, msg string) error {
	url := fmt.Sprintf("%s/vehicles/%s/messages", c.baseURL, vehicleID)

	body, err := json.Marshal(sendMessageRequest{Subject: subject, Text: msg})
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return fmt.Errorf("vehicle gateway error: %s", resp.Status)
	}

	return nil
}
