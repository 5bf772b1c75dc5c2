package cache

import (
	"context"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/0xsj/overwatch-finance/internal/domain/model"
)

// UserCache caches user projections keyed by user ID.
// All methods follow the Store absorb policy: misses and transport
// failures look the same to the caller.
type UserCache interface {
	// Get retrieves a cached user projection.
	Get(ctx context.Context, userID types.ID) (*model.UserProjection, bool)

	// Set stores a user projection with the configured default TTL.
	Set(ctx context.Context, projection model.UserProjection)

	// Delete removes a user projection.
	Delete(ctx context.Context, userID types.ID)
}

// CategoryCache caches category projections, individually and as the
// per-user visible set.
type CategoryCache interface {
	// Get retrieves a cached category projection.
	Get(ctx context.Context, categoryID types.ID) (*model.CategoryProjection, bool)

	// Set stores a category projection and indexes it under the
	// owning user's visible set, or the global set for ownerless
	// categories.
	Set(ctx context.Context, projection model.CategoryProjection)

	// GetVisibleTo retrieves the cached set of categories visible to
	// a user (global plus owned). False means the set has not been
	// warmed and the caller should fall through to the repository.
	GetVisibleTo(ctx context.Context, userID types.ID) ([]model.CategoryProjection, bool)

	// Delete removes a category projection and its index memberships.
	Delete(ctx context.Context, categoryID types.ID)

	// DeleteByOwner removes every cached category owned by a user
	// along with the user's index. Global categories are untouched.
	DeleteByOwner(ctx context.Context, userID types.ID)
}

// ExpenseCache caches expense projections, individually and as the
// per-user list.
type ExpenseCache interface {
	// Get retrieves a cached expense projection.
	Get(ctx context.Context, expenseID types.ID) (*model.ExpenseProjection, bool)

	// Set stores an expense projection and indexes it under the
	// owning user's list.
	Set(ctx context.Context, projection model.ExpenseProjection)

	// GetByUser retrieves the cached expense list for a user. False
	// means the list has not been warmed.
	GetByUser(ctx context.Context, userID types.ID) ([]model.ExpenseProjection, bool)

	// Delete removes an expense projection and its index membership.
	Delete(ctx context.Context, expenseID types.ID)

	// DeleteByUser removes every cached expense for a user along
	// with the list index.
	DeleteByUser(ctx context.Context, userID types.ID)
}
