// Package configstore reads notification configs, mute records, and
// provider-override assignments. Writes happen through external
// administrative tooling; this service only consumes them.
package configstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"

	"github.com/openfleet/alert-dispatcher/internal/model"
)

var ErrConfigNotFound = errors.New("notification config not found")

// Repository provides lookups over the notification_configs,
// mute_records, and provider_overrides tables.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new config repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// FindConfigs returns the config rows for a recipient, most specific
// first. When no specific row exists the sentinel default row (group
// GENERAL, contact id = user id) is returned instead.
func (r *Repository) FindConfigs(ctx context.Context, userID, vehicleID, contactID, group string) ([]model.NotificationConfig, error) {
	query := `
		SELECT user_id, vehicle_id, contact_id, "group", brand, enabled, locale, channels, updated_at
		FROM notification_configs
		WHERE user_id = $1 AND vehicle_id = $2 AND contact_id = $3 AND "group" = $4;
    `

	configs, err := r.queryConfigs(ctx, query, userID, vehicleID, contactID, group)
	if err != nil {
		return nil, err
	}
	if len(configs) > 0 {
		return configs, nil
	}

	defaultQuery := `
		SELECT user_id, vehicle_id, contact_id, "group", brand, enabled, locale, channels, updated_at
		FROM notification_configs
		WHERE user_id = $1 AND vehicle_id = $2 AND contact_id = $1 AND "group" = $3;
    `

	configs, err = r.queryConfigs(ctx, defaultQuery, userID, vehicleID, model.GroupGeneral)
	if err != nil {
		return nil, err
	}
	if len(configs) == 0 {
		return nil, ErrConfigNotFound
	}

	return configs, nil
}

// FindAllForRecipient returns every config row for a user+vehicle pair,
// one per contact/group, used for multi-recipient dispatch.
func (r *Repository) FindAllForRecipient(ctx context.Context, userID, vehicleID string) ([]model.NotificationConfig, error) {
	query := `
		SELECT user_id, vehicle_id, contact_id, "group", brand, enabled, locale, channels, updated_at
		FROM notification_configs
		WHERE user_id = $1 AND vehicle_id = $2;
    `

	configs, err := r.queryConfigs(ctx, query, userID, vehicleID)
	if err != nil {
		return nil, err
	}
	if len(configs) == 0 {
		return nil, ErrConfigNotFound
	}
	return configs, nil
}

func (r *Repository) queryConfigs(ctx context.Context, query string, args ...interface{}) ([]model.NotificationConfig, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query configs: %w", err)
	}
	defer rows.Close()

	var configs []model.NotificationConfig
	for rows.Next() {
		var (
			c        model.NotificationConfig
			channels []byte
		)
		if err := rows.Scan(&c.UserID, &c.VehicleID, &c.ContactID, &c.Group, &c.Brand, &c.Enabled, &c.Locale, &channels, &c.UpdatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(channels, &c.Channels); err != nil {
			return nil, fmt.Errorf("failed to decode channels: %w", err)
		}
		configs = append(configs, c)
	}

	return configs, rows.Err()
}

// ActiveMutes returns mute records for a vehicle whose window contains now
// (treating zero bounds as unbounded).
func (r *Repository) ActiveMutes(ctx context.Context, vehicleID string, now time.Time) ([]model.MuteRecord, error) {
	query := `
		SELECT id, vehicle_id, channels, "groups", start_at, end_at
		FROM mute_records
		WHERE vehicle_id = $1
		  AND (start_at IS NULL OR start_at <= $2)
		  AND (end_at IS NULL OR end_at >= $2);
    `

	rows, err := r.db.QueryContext(ctx, query, vehicleID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to query mutes: %w", err)
	}
	defer rows.Close()

	var mutes []model.MuteRecord
	for rows.Next() {
		var (
			m        model.MuteRecord
			channels []byte
			groups   []byte
			start    sql.NullTime
			end      sql.NullTime
		)
		if err := rows.Scan(&m.ID, &m.VehicleID, &channels, &groups, &start, &end); err != nil {
			return nil, err
		}
		// NULL columns mean "all channels" / "all groups".
		if len(channels) > 0 {
			if err := json.Unmarshal(channels, &m.Channels); err != nil {
				return nil, fmt.Errorf("failed to decode mute channels: %w", err)
			}
		}
		if len(groups) > 0 {
			if err := json.Unmarshal(groups, &m.Groups); err != nil {
				return nil, fmt.Errorf("failed to decode mute groups: %w", err)
			}
		}
		if start.Valid {
			m.Start = start.Time
		}
		if end.Valid {
			m.End = end.Time
		}
		mutes = append(mutes, m)
	}

	return mutes, rows.Err()
}

// ProviderOverride returns the provider assigned to a (channel,
// notification id, region) triple, or ok=false when no row exists.
func (r *Repository) ProviderOverride(ctx context.Context, ct model.ChannelType, notificationID, region string) (string, bool, error) {
	query := `
		SELECT provider
		FROM provider_overrides
		WHERE channel = $1 AND notification_id = $2 AND region = $3;
    `

	var provider string
	err := r.db.Master.QueryRowContext(ctx, query, ct, notificationID, region).Scan(&provider)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get provider override: %w", err)
	}

	return provider, true, nil
}
