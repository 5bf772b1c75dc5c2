package command

import (
	"context"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/0xsj/overwatch-finance/internal/domain/model"
)

// DeleteCategory removes a category. Owners may delete their own;
// global categories require the superuser role.
type DeleteCategory struct {
	Actor      model.Actor
	CategoryID types.ID
}

func (c DeleteCategory) CommandName() string {
	return "finance.delete_category"
}

// DeleteCategoryResult reports the deleted category.
type DeleteCategoryResult struct {
	CategoryID types.ID
}

// DeleteCategoryHandler handles the DeleteCategory command.
type DeleteCategoryHandler interface {
	Handle(ctx context.Context, cmd DeleteCategory) (DeleteCategoryResult, error)
}
