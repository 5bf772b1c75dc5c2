package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/0xsj/overwatch-finance/internal/domain/model"
	"github.com/0xsj/overwatch-finance/internal/port/outbound/cache"
)

const (
	userKeyPrefix = "finance:user:"

	// Projections are write-through mirrors of the database, so the
	// TTL is long; invalidation happens on writes, not by expiry.
	defaultEntityTTL = 8784 * time.Hour
)

// userCache implements cache.UserCache.
type userCache struct {
	store cache.Store
	ttl   time.Duration
}

// NewUserCache creates a new UserCache.
func NewUserCache(store cache.Store, ttl time.Duration) cache.UserCache {
	if ttl == 0 {
		ttl = defaultEntityTTL
	}
	return &userCache{
		store: store,
		ttl:   ttl,
	}
}

func (c *userCache) Get(ctx context.Context, userID types.ID) (*model.UserProjection, bool) {
	data, ok := c.store.Get(ctx, userKey(userID))
	if !ok {
		return nil, false
	}

	var projection model.UserProjection
	if err := json.Unmarshal(data, &projection); err != nil {
		return nil, false
	}
	return &projection, true
}

func (c *userCache) Set(ctx context.Context, projection model.UserProjection) {
	data, err := json.Marshal(projection)
	if err != nil {
		return
	}
	c.store.Set(ctx, userKeyPrefix+projection.ID, data, c.ttl)
}

func (c *userCache) Delete(ctx context.Context, userID types.ID) {
	c.store.Delete(ctx, userKey(userID))
}

// Key helper

func userKey(id types.ID) string {
	return userKeyPrefix + id.String()
}
