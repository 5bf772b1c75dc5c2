package repository

import (
	"context"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/0xsj/overwatch-finance/internal/domain/model"
)

// CategoryRepository defines the interface for category persistence.
type CategoryRepository interface {
	// Create persists a new category.
	Create(ctx context.Context, category *model.Category) error

	// FindByID retrieves a category by ID.
	FindByID(ctx context.Context, id types.ID) (*model.Category, error)

	// ListForUser retrieves the categories visible to a user:
	// global categories plus the user's own.
	ListForUser(ctx context.Context, userID types.ID) ([]*model.Category, error)

	// Delete removes a category by ID.
	Delete(ctx context.Context, id types.ID) error
}
