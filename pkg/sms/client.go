// Package sms sends text messages through the Twilio REST API.
package sms

import (
	"errors"
	"fmt"

	"github.com/nyaruka/phonenumbers"
	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// ErrInvalidNumber marks a destination that is not a valid phone number;
// such a send can never succeed and must not be retried.
var ErrInvalidNumber = errors.New("invalid destination number")

type Client struct {
	api  *twilio.RestClient
	from string
}

func NewClient(accountSID, authToken, from string) *Client {
	return &Client{
		api: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		}),
		from: from,
	}
}

// Send delivers one message and returns the provider message id.
func (c *Client) Send(to, msg string) (string, error) {
	num, err := phonenumbers.Parse(to, "")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidNumber, to)
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", fmt.Errorf("%w: %q", ErrInvalidNumber, to)
	}

	params := &twilioapi.CreateMessageParams{}
	params.SetTo(phonenumbers.Format(num, phonenumbers.E164))
	params.SetFrom(c.from)
	params.SetBody(msg)

	resp, err := c.api.Api.CreateMessage(params)
	if err != nil {
		return "", fmt.Errorf("create message: %w", err)
	}

	var sid string
	if resp.Sid != nil {
		sid = *resp.Sid
	}
	return sid, nil
}
