package dispatch

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	wbfretry "github.com/wb-go/wbf/retry"
)

// CampaignStatusCanceled is the externally reported status that
// short-circuits campaign alerts to CANCELED.
const CampaignStatusCanceled = "CANCELED"

type statusCache interface {
	SetWithRetry(ctx context.Context, strategy wbfretry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy wbfretry.Strategy, key string) (string, error)
}

// CampaignStatus caches externally reported campaign statuses keyed by
// notification id.
type CampaignStatus struct {
	cache    statusCache
	strategy wbfretry.Strategy
}

// NewCampaignStatus builds the campaign-status cache.
func NewCampaignStatus(cache statusCache, strategy wbfretry.Strategy) *CampaignStatus {
	return &CampaignStatus{cache: cache, strategy: strategy}
}

func campaignKey(notificationID string) string {
	return "campaign:" + notificationID
}

// SetStatus records the latest externally reported status.
func (c *CampaignStatus) SetStatus(ctx context.Context, notificationID, status string) error {
	if err := c.cache.SetWithRetry(ctx, c.strategy, campaignKey(notificationID), status); err != nil {
		return fmt.Errorf("cache campaign status: %w", err)
	}
	return nil
}

// Canceled reports whether the campaign was cancelled externally. An
// unknown campaign is not cancelled.
func (c *CampaignStatus) Canceled(ctx context.Context, notificationID string) (bool, error) {
	status, err := c.cache.GetWithRetry(ctx, c.strategy, campaignKey(notificationID))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("read campaign status: %w", err)
	}
	return status == CampaignStatusCanceled, nil
}
