package query

import (
	"context"

	"github.com/0xsj/overwatch-finance/internal/domain/model"
)

// ListCategories retrieves the categories visible to the actor:
// global categories plus the actor's own.
type ListCategories struct {
	Actor model.Actor
}

func (q ListCategories) QueryName() string {
	return "finance.list_categories"
}

// ListCategoriesResult contains the category projections.
type ListCategoriesResult struct {
	Categories []model.CategoryProjection
}

// ListCategoriesHandler handles the ListCategories query.
type ListCategoriesHandler interface {
	Handle(ctx context.Context, qry ListCategories) (ListCategoriesResult, error)
}
