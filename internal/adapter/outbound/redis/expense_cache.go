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
	expenseKeyPrefix    = "finance:expense:"
	expenseUserIndexKey = "finance:idx:expenses:"
)

// expenseCache implements cache.ExpenseCache.
type expenseCache struct {
	store cache.Store
	ttl   time.Duration
}

// NewExpenseCache creates a new ExpenseCache.
func NewExpenseCache(store cache.Store, ttl time.Duration) cache.ExpenseCache {
	if ttl == 0 {
		ttl = defaultEntityTTL
	}
	return &expenseCache{
		store: store,
		ttl:   ttl,
	}
}

func (c *expenseCache) Get(ctx context.Context, expenseID types.ID) (*model.ExpenseProjection, bool) {
	data, ok := c.store.Get(ctx, expenseKey(expenseID))
	if !ok {
		return nil, false
	}

	var projection model.ExpenseProjection
	if err := json.Unmarshal(data, &projection); err != nil {
		return nil, false
	}
	return &projection, true
}

func (c *expenseCache) Set(ctx context.Context, projection model.ExpenseProjection) {
	data, err := json.Marshal(projection)
	if err != nil {
		return
	}
	c.store.Set(ctx, expenseKeyPrefix+projection.ID, data, c.ttl, expenseUserIndexKey+projection.UserID)
}

func (c *expenseCache) GetByUser(ctx context.Context, userID types.ID) ([]model.ExpenseProjection, bool) {
	values, ok := c.store.GetIndex(ctx, expenseIndexKey(userID))
	if !ok {
		return nil, false
	}

	projections := make([]model.ExpenseProjection, 0, len(values))
	for _, data := range values {
		var projection model.ExpenseProjection
		if err := json.Unmarshal(data, &projection); err != nil {
			return nil, false
		}
		projections = append(projections, projection)
	}
	return projections, true
}

func (c *expenseCache) Delete(ctx context.Context, expenseID types.ID) {
	c.store.Delete(ctx, expenseKey(expenseID))
}

func (c *expenseCache) DeleteByUser(ctx context.Context, userID types.ID) {
	c.store.DeleteIndexGroup(ctx, expenseIndexKey(userID))
}

// Key helpers

func expenseKey(id types.ID) string {
	return expenseKeyPrefix + id.String()
}

func expenseIndexKey(userID types.ID) string {
	return expenseUserIndexKey + userID.String()
}
