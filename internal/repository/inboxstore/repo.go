// Package inboxstore persists portal-inbox messages, the PORTAL channel's
// delivery target.
package inboxstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/openfleet/alert-dispatcher/internal/model"
)

// Repository writes portal-inbox rows.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new inbox repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// SaveMessage inserts one inbox entry.
func (r *Repository) SaveMessage(ctx context.Context, msg model.PortalMessage) error {
	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}

	query := `
		INSERT INTO portal_inbox (id, request_id, user_id, vehicle_id, subject, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
    `

	_, err := r.db.ExecContext(ctx, query,
		msg.ID, msg.RequestID, msg.UserID, msg.VehicleID, msg.Subject, msg.Message, msg.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert inbox message: %w", err)
	}
	return nil
}
