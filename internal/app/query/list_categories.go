package query

import (
	"context"
	"sort"

	"github.com/0xsj/overwatch-finance/internal/domain/model"
	"github.com/0xsj/overwatch-finance/internal/port/inbound/query"
	"github.com/0xsj/overwatch-finance/internal/port/outbound/cache"
	"github.com/0xsj/overwatch-finance/internal/port/outbound/repository"
)

// listCategoriesHandler implements query.ListCategoriesHandler.
type listCategoriesHandler struct {
	categoryRepo  repository.CategoryRepository
	categoryCache cache.CategoryCache
}

// NewListCategoriesHandler creates a new ListCategoriesHandler.
func NewListCategoriesHandler(
	categoryRepo repository.CategoryRepository,
	categoryCache cache.CategoryCache,
) query.ListCategoriesHandler {
	return &listCategoriesHandler{
		categoryRepo:  categoryRepo,
		categoryCache: categoryCache,
	}
}

func (h *listCategoriesHandler) Handle(ctx context.Context, qry query.ListCategories) (query.ListCategoriesResult, error) {
	// Try cache first. Index members come back unordered.
	if cached, ok := h.categoryCache.GetVisibleTo(ctx, qry.Actor.UserID); ok {
		sort.Slice(cached, func(i, j int) bool { return cached[i].Name < cached[j].Name })
		return query.ListCategoriesResult{Categories: cached}, nil
	}

	categories, err := h.categoryRepo.ListForUser(ctx, qry.Actor.UserID)
	if err != nil {
		return query.ListCategoriesResult{}, err
	}

	// Warm the cache for the next read
	projections := make([]model.CategoryProjection, 0, len(categories))
	for _, c := range categories {
		p := c.Projection()
		h.categoryCache.Set(ctx, p)
		projections = append(projections, p)
	}

	return query.ListCategoriesResult{Categories: projections}, nil
}
