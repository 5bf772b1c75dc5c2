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
	categoryKeyPrefix      = "finance:category:"
	categoryGlobalIndexKey = "finance:idx:categories"
	categoryUserIndexKey   = "finance:idx:categories:user:"
)

// categoryCache implements cache.CategoryCache.
type categoryCache struct {
	store cache.Store
	ttl   time.Duration
}

// NewCategoryCache creates a new CategoryCache.
func NewCategoryCache(store cache.Store, ttl time.Duration) cache.CategoryCache {
	if ttl == 0 {
		ttl = defaultEntityTTL
	}
	return &categoryCache{
		store: store,
		ttl:   ttl,
	}
}

func (c *categoryCache) Get(ctx context.Context, categoryID types.ID) (*model.CategoryProjection, bool) {
	data, ok := c.store.Get(ctx, categoryKey(categoryID))
	if !ok {
		return nil, false
	}

	var projection model.CategoryProjection
	if err := json.Unmarshal(data, &projection); err != nil {
		return nil, false
	}
	return &projection, true
}

func (c *categoryCache) Set(ctx context.Context, projection model.CategoryProjection) {
	data, err := json.Marshal(projection)
	if err != nil {
		return
	}

	index := categoryGlobalIndexKey
	if projection.OwnerID != nil {
		index = categoryUserIndexKey + *projection.OwnerID
	}
	c.store.Set(ctx, categoryKeyPrefix+projection.ID, data, c.ttl, index)
}

func (c *categoryCache) GetVisibleTo(ctx context.Context, userID types.ID) ([]model.CategoryProjection, bool) {
	values, ok := c.store.GetIndex(ctx, categoryGlobalIndexKey, categoryUserIndexKey+userID.String())
	if !ok {
		return nil, false
	}

	projections := make([]model.CategoryProjection, 0, len(values))
	for _, data := range values {
		var projection model.CategoryProjection
		if err := json.Unmarshal(data, &projection); err != nil {
			return nil, false
		}
		projections = append(projections, projection)
	}
	return projections, true
}

func (c *categoryCache) Delete(ctx context.Context, categoryID types.ID) {
	c.store.Delete(ctx, categoryKey(categoryID))
}

func (c *categoryCache) DeleteByOwner(ctx context.Context, userID types.ID) {
	c.store.DeleteIndexGroup(ctx, categoryUserIndexKey+userID.String())
}

// Key helper

func categoryKey(id types.ID) string {
	return categoryKeyPrefix + id.String()
}
