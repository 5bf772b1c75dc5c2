package command

import (
	"context"

	"github.com/0xsj/overwatch-finance/internal/domain/model"
)

// CreateCategory creates a spending category. Global categories are
// visible to everyone and require the superuser role; otherwise the
// category is owned by the actor.
type CreateCategory struct {
	Actor  model.Actor
	Name   string
	Global bool
}

func (c CreateCategory) CommandName() string {
	return "finance.create_category"
}

// CreateCategoryResult contains the created category.
type CreateCategoryResult struct {
	Category model.CategoryProjection
}

// CreateCategoryHandler handles the CreateCategory command.
type CreateCategoryHandler interface {
	Handle(ctx context.Context, cmd CreateCategory) (CreateCategoryResult, error)
}
