// Package template fills an alert request's subject and message from the
// localized template table, with locale fallback and token substitution.
package template

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/wb-go/wbf/zlog"

	"github.com/openfleet/alert-dispatcher/internal/model"
	"github.com/openfleet/alert-dispatcher/internal/repository/templatestore"
)

const fallbackLocale = "en"

type templateStore interface {
	Get(ctx context.Context, notificationID, locale string) (templatestore.Template, error)
}

// Resolver renders the message for one request in the recipient's locale.
type Resolver struct {
	store templateStore
}

func NewResolver(store templateStore) *Resolver {
	return &Resolver{store: store}
}

// Resolve fills req.Subject and req.Message. The recipient's locale wins,
// then the fallback locale; a missing template leaves the notification id
// as the message rather than failing the request. An already-resolved
// request (batch events carry inline messages) is left untouched.
func (r *Resolver) Resolve(ctx context.Context, req *model.AlertRequest) error {
	if req.Message != "" {
		return nil
	}
	if req.NotificationID == "" {
		return fmt.Errorf("request %s carries no notification id", req.RequestID)
	}

	locale := req.Profile.Locale
	if locale == "" {
		locale = fallbackLocale
	}

	t, err := r.store.Get(ctx, req.NotificationID, locale)
	if errors.Is(err, templatestore.ErrTemplateNotFound) && locale != fallbackLocale {
		t, err = r.store.Get(ctx, req.NotificationID, fallbackLocale)
	}
	if errors.Is(err, templatestore.ErrTemplateNotFound) {
		zlog.Logger.Warn().
			Str("notification_id", req.NotificationID).
			Str("locale", locale).
			Msg("no template found, using notification id as message")
		req.Message = req.NotificationID
		return nil
	}
	if err != nil {
		return fmt.Errorf("resolve template: %w", err)
	}

	req.Subject = render(t.Subject, req)
	req.Message = render(t.Body, req)
	return nil
}

// render substitutes the {vehicle_id}, {user_id} and {notification_id}
// tokens. Unknown tokens are left in place.
func render(text string, req *model.AlertRequest) string {
	replacer := strings.NewReplacer(
		"{vehicle_id}", req.Profile.VehicleID,
		"{user_id}", req.Profile.UserID,
		"{notification_id}", req.NotificationID,
	)
	return replacer.Replace(text)
}
