package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	wbfretry "github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/openfleet/alert-dispatcher/internal/errs"
	"github.com/openfleet/alert-dispatcher/internal/model"
)

// profileService is the external recipient-profile lookup, hit only on
// cache misses.
type profileService interface {
	Lookup(ctx context.Context, vehicleID, userID string) (model.RecipientProfile, error)
}

type assocCache interface {
	SetWithRetry(ctx context.Context, strategy wbfretry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy wbfretry.Strategy, key string) (string, error)
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Resolver turns (vehicle id, optional user id) into a recipient profile,
// caching both the vehicle-to-user association and the profile snapshot.
type Resolver struct {
	cache    assocCache
	profiles profileService
	strategy wbfretry.Strategy
}

// NewResolver builds a Resolver over the cache and the external profile
// service.
func NewResolver(cache assocCache, profiles profileService, strategy wbfretry.Strategy) *Resolver {
	return &Resolver{cache: cache, profiles: profiles, strategy: strategy}
}

func assocKey(vehicleID string) string {
	return "assoc:vehicle:" + vehicleID
}

func profileKey(vehicleID, userID string) string {
	return fmt.Sprintf("profile:%s:%s", vehicleID, userID)
}

// Resolve returns the recipient profile for the vehicle/user pair. A
// lookup failure is a ResolutionError: the request is unrecoverable, not
// retryable.
func (r *Resolver) Resolve(ctx context.Context, vehicleID, userID string) (model.RecipientProfile, error) {
	if userID == "" {
		cached, err := r.cache.GetWithRetry(ctx, r.strategy, assocKey(vehicleID))
		switch {
		case err == nil:
			userID = cached
		case !errors.Is(err, redis.Nil):
			zlog.Logger.Warn().Err(err).Str("vehicle_id", vehicleID).Msg("association cache read failed")
		}
	}

	if userID != "" {
		if raw, err := r.cache.GetWithRetry(ctx, r.strategy, profileKey(vehicleID, userID)); err == nil {
			var p model.RecipientProfile
			if err := json.Unmarshal([]byte(raw), &p); err == nil {
				return p, nil
			}
			zlog.Logger.Warn().Str("vehicle_id", vehicleID).Msg("dropping undecodable cached profile")
			r.cache.Del(ctx, profileKey(vehicleID, userID))
		}
	}

	p, err := r.profiles.Lookup(ctx, vehicleID, userID)
	if err != nil {
		return model.RecipientProfile{}, &errs.ResolutionError{VehicleID: vehicleID, Err: err}
	}

	if raw, err := json.Marshal(p); err == nil {
		if err := r.cache.SetWithRetry(ctx, r.strategy, profileKey(vehicleID, p.UserID), string(raw)); err != nil {
			zlog.Logger.Warn().Err(err).Str("vehicle_id", vehicleID).Msg("failed to cache profile")
		}
	}
	if err := r.cache.SetWithRetry(ctx, r.strategy, assocKey(vehicleID), p.UserID); err != nil {
		zlog.Logger.Warn().Err(err).Str("vehicle_id", vehicleID).Msg("failed to cache association")
	}
	return p, nil
}

// Associate records a new vehicle-to-user association.
func (r *Resolver) Associate(ctx context.Context, vehicleID, userID string) error {
	if err := r.cache.SetWithRetry(ctx, r.strategy, assocKey(vehicleID), userID); err != nil {
		return fmt.Errorf("cache association: %w", err)
	}
	return nil
}

// Disassociate drops the association and the cached profile, forcing a
// fresh lookup on the next alert.
func (r *Resolver) Disassociate(ctx context.Context, vehicleID, userID string) error {
	keys := []string{assocKey(vehicleID)}
	if userID != "" {
		keys = append(keys, profileKey(vehicleID, userID))
	}
	r.cache.Del(ctx, keys...)
	return nil
}
