// Package sendgrid wraps the SendGrid mail API for use as an email
// provider override.
package sendgrid

import (
	"context"
	"fmt"

	sendgridgo "github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

type Client struct {
	client *sendgridgo.Client
	from   *sgmail.Email
}

func NewClient(apiKey, fromName, fromAddress string) *Client {
	return &Client{
		client: sendgridgo.NewSendClient(apiKey),
		from:   sgmail.NewEmail(fromName, fromAddress),
	}
}

func (c *Client) Send(ctx context.Context, to, subject, msg string) error {
	message := sgmail.NewSingleEmail(c.from, subject, sgmail.NewEmail("", to), msg, "")

	resp, err := c.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid API error: status %d", resp.StatusCode)
	}

	return nil
}
