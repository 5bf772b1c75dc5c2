package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/0xsj/overwatch-pkg/log"
	"github.com/0xsj/overwatch-pkg/types"

	"github.com/0xsj/overwatch-finance/internal/port/outbound/cache"
)

const (
	denylistKeyPrefix = "finance:revoked:"
)

// sessionDenylist implements cache.SessionDenylist.
type sessionDenylist struct {
	client *redis.Client
	logger log.Logger
}

// NewSessionDenylist creates a new SessionDenylist.
func NewSessionDenylist(client *redis.Client, logger log.Logger) cache.SessionDenylist {
	return &sessionDenylist{
		client: client,
		logger: logger,
	}
}

func (d *sessionDenylist) Revoke(ctx context.Context, userID types.ID, ttl time.Duration) {
	if userID.IsEmpty() {
		return
	}

	key := denylistKey(userID)

	// Value doesn't matter, we just check existence
	if err := d.client.Set(ctx, key, "1", ttl).Err(); err != nil {
		d.logger.Warn("denylist revoke failed",
			log.String("user_id", userID.String()),
			log.String("error", err.Error()))
	}
}

func (d *sessionDenylist) IsRevoked(ctx context.Context, userID types.ID) bool {
	if userID.IsEmpty() {
		return false
	}

	key := denylistKey(userID)

	count, err := d.client.Exists(ctx, key).Result()
	if err != nil {
		// Fail open: an unreachable denylist must not take down
		// every authenticated request with it
		d.logger.Warn("denylist check failed, failing open",
			log.String("user_id", userID.String()),
			log.String("error", err.Error()))
		return false
	}
	return count > 0
}

func (d *sessionDenylist) Clear(ctx context.Context, userID types.ID) {
	if userID.IsEmpty() {
		return
	}

	key := denylistKey(userID)

	if err := d.client.Del(ctx, key).Err(); err != nil {
		d.logger.Warn("denylist clear failed",
			log.String("user_id", userID.String()),
			log.String("error", err.Error()))
	}
}

// Key helper

func denylistKey(userID types.ID) string {
	return denylistKeyPrefix + userID.String()
}
