// Package templatestore serves localized message templates keyed by
// notification id and locale.
package templatestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/dbpg"
)

var ErrTemplateNotFound = errors.New("message template not found")

// Template is one localized subject/body pair.
type Template struct {
	NotificationID string
	Locale         string
	Subject        string
	Body           string
}

// Repository provides methods to interact with the message_templates table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new template repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// Get returns the template for a notification id in the given locale.
func (r *Repository) Get(ctx context.Context, notificationID, locale string) (Template, error) {
	query := `
		SELECT notification_id, locale, subject, body
		FROM message_templates
		WHERE notification_id = $1 AND locale = $2;
    `

	var t Template
	err := r.db.Master.QueryRowContext(ctx, query, notificationID, locale).
		Scan(&t.NotificationID, &t.Locale, &t.Subject, &t.Body)
	if errors.Is(err, sql.ErrNoRows) {
		return Template{}, ErrTemplateNotFound
	}
	if err != nil {
		return Template{}, fmt.Errorf("failed to get template: %w", err)
	}

	return t, nil
}
