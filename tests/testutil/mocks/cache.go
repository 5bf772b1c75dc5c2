package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/0xsj/overwatch-finance/internal/domain/model"
)

// --- UserCache Mock ---

// UserCache is a mock implementation of cache.UserCache.
type UserCache struct {
	mu sync.RWMutex

	projections map[string]model.UserProjection

	Calls struct {
		Get    int
		Set    int
		Delete int
	}

	// Disabled makes every Get miss, simulating an unavailable cache.
	Disabled bool
}

// NewUserCache creates a new mock UserCache.
func NewUserCache() *UserCache {
	return &UserCache{
		projections: make(map[string]model.UserProjection),
	}
}

func (m *UserCache) Get(ctx context.Context, userID types.ID) (*model.UserProjection, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	m.Calls.Get++

	if m.Disabled {
		return nil, false
	}

	p, ok := m.projections[userID.String()]
	if !ok {
		return nil, false
	}
	return &p, true
}

func (m *UserCache) Set(ctx context.Context, projection model.UserProjection) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls.Set++

	if m.Disabled {
		return
	}
	m.projections[projection.ID] = projection
}

func (m *UserCache) Delete(ctx context.Context, userID types.ID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls.Delete++

	delete(m.projections, userID.String())
}

// --- CategoryCache Mock ---

// CategoryCache is a mock implementation of cache.CategoryCache.
type CategoryCache struct {
	mu sync.RWMutex

	projections map[string]model.CategoryProjection

	Calls struct {
		Get           int
		Set           int
		GetVisibleTo  int
		Delete        int
		DeleteByOwner int
	}

	Disabled bool
}

// NewCategoryCache creates a new mock CategoryCache.
func NewCategoryCache() *CategoryCache {
	return &CategoryCache{
		projections: make(map[string]model.CategoryProjection),
	}
}

func (m *CategoryCache) Get(ctx context.Context, categoryID types.ID) (*model.CategoryProjection, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	m.Calls.Get++

	if m.Disabled {
		return nil, false
	}

	p, ok := m.projections[categoryID.String()]
	if !ok {
		return nil, false
	}
	return &p, true
}

func (m *CategoryCache) Set(ctx context.Context, projection model.CategoryProjection) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls.Set++

	if m.Disabled {
		return
	}
	m.projections[projection.ID] = projection
}

func (m *CategoryCache) GetVisibleTo(ctx context.Context, userID types.ID) ([]model.CategoryProjection, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	m.Calls.GetVisibleTo++

	if m.Disabled {
		return nil, false
	}

	var visible []model.CategoryProjection
	for _, p := range m.projections {
		if p.OwnerID == nil || *p.OwnerID == userID.String() {
			visible = append(visible, p)
		}
	}
	if len(visible) == 0 {
		return nil, false
	}
	return visible, true
}

func (m *CategoryCache) Delete(ctx context.Context, categoryID types.ID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls.Delete++

	delete(m.projections, categoryID.String())
}

func (m *CategoryCache) DeleteByOwner(ctx context.Context, userID types.ID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls.DeleteByOwner++

	for id, p := range m.projections {
		if p.OwnerID != nil && *p.OwnerID == userID.String() {
			delete(m.projections, id)
		}
	}
}

// --- ExpenseCache Mock ---

// ExpenseCache is a mock implementation of cache.ExpenseCache.
type ExpenseCache struct {
	mu sync.RWMutex

	projections map[string]model.ExpenseProjection

	Calls struct {
		Get          int
		Set          int
		GetByUser    int
		Delete       int
		DeleteByUser int
	}

	Disabled bool
}

// NewExpenseCache creates a new mock ExpenseCache.
func NewExpenseCache() *ExpenseCache {
	return &ExpenseCache{
		projections: make(map[string]model.ExpenseProjection),
	}
}

func (m *ExpenseCache) Get(ctx context.Context, expenseID types.ID) (*model.ExpenseProjection, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	m.Calls.Get++

	if m.Disabled {
		return nil, false
	}

	p, ok := m.projections[expenseID.String()]
	if !ok {
		return nil, false
	}
	return &p, true
}

func (m *ExpenseCache) Set(ctx context.Context, projection model.ExpenseProjection) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls.Set++

	if m.Disabled {
		return
	}
	m.projections[projection.ID] = projection
}

func (m *ExpenseCache) GetByUser(ctx context.Context, userID types.ID) ([]model.ExpenseProjection, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	m.Calls.GetByUser++

	if m.Disabled {
		return nil, false
	}

	var list []model.ExpenseProjection
	for _, p := range m.projections {
		if p.UserID == userID.String() {
			list = append(list, p)
		}
	}
	if len(list) == 0 {
		return nil, false
	}
	return list, true
}

func (m *ExpenseCache) Delete(ctx context.Context, expenseID types.ID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls.Delete++

	delete(m.projections, expenseID.String())
}

func (m *ExpenseCache) DeleteByUser(ctx context.Context, userID types.ID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls.DeleteByUser++

	for id, p := range m.projections {
		if p.UserID == userID.String() {
			delete(m.projections, id)
		}
	}
}

// --- SessionDenylist Mock ---

// SessionDenylist is a mock implementation of cache.SessionDenylist.
type SessionDenylist struct {
	mu sync.RWMutex

	revoked map[string]time.Time

	Calls struct {
		Revoke    int
		IsRevoked int
		Clear     int
	}
}

// NewSessionDenylist creates a new mock SessionDenylist.
func NewSessionDenylist() *SessionDenylist {
	return &SessionDenylist{
		revoked: make(map[string]time.Time),
	}
}

func (m *SessionDenylist) Revoke(ctx context.Context, userID types.ID, ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls.Revoke++

	m.revoked[userID.String()] = time.Now().Add(ttl)
}

func (m *SessionDenylist) IsRevoked(ctx context.Context, userID types.ID) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	m.Calls.IsRevoked++

	expiry, ok := m.revoked[userID.String()]
	return ok && time.Now().Before(expiry)
}

func (m *SessionDenylist) Clear(ctx context.Context, userID types.ID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Calls.Clear++

	delete(m.revoked, userID.String())
}
