package query

import (
	"context"
	"sort"

	"github.com/0xsj/overwatch-finance/internal/domain/model"
	"github.com/0xsj/overwatch-finance/internal/port/inbound/query"
	"github.com/0xsj/overwatch-finance/internal/port/outbound/cache"
	"github.com/0xsj/overwatch-finance/internal/port/outbound/repository"
)

// listExpensesHandler implements query.ListExpensesHandler.
type listExpensesHandler struct {
	expenseRepo  repository.ExpenseRepository
	expenseCache cache.ExpenseCache
}

// NewListExpensesHandler creates a new ListExpensesHandler.
func NewListExpensesHandler(
	expenseRepo repository.ExpenseRepository,
	expenseCache cache.ExpenseCache,
) query.ListExpensesHandler {
	return &listExpensesHandler{
		expenseRepo:  expenseRepo,
		expenseCache: expenseCache,
	}
}

func (h *listExpensesHandler) Handle(ctx context.Context, qry query.ListExpenses) (query.ListExpensesResult, error) {
	limit := qry.Limit
	if limit <= 0 {
		limit = repository.DefaultListExpensesParams().Limit
	}
	offset := qry.Offset
	if offset < 0 {
		offset = 0
	}

	// Try cache first. Index members come back unordered, so order
	// and page here.
	if cached, ok := h.expenseCache.GetByUser(ctx, qry.Actor.UserID); ok {
		sort.Slice(cached, func(i, j int) bool { return cached[i].IncurredAt > cached[j].IncurredAt })

		total := int64(len(cached))
		if offset >= len(cached) {
			return query.ListExpensesResult{Expenses: []model.ExpenseProjection{}, TotalCount: total}, nil
		}
		end := offset + limit
		if end > len(cached) {
			end = len(cached)
		}
		return query.ListExpensesResult{Expenses: cached[offset:end], TotalCount: total}, nil
	}

	params := repository.ListExpensesParams{Limit: limit, Offset: offset}
	expenses, err := h.expenseRepo.ListByUser(ctx, qry.Actor.UserID, params)
	if err != nil {
		return query.ListExpensesResult{}, err
	}

	total, err := h.expenseRepo.CountByUser(ctx, qry.Actor.UserID)
	if err != nil {
		return query.ListExpensesResult{}, err
	}

	// Warm the cache for the next read
	projections := make([]model.ExpenseProjection, 0, len(expenses))
	for _, e := range expenses {
		p := e.Projection()
		h.expenseCache.Set(ctx, p)
		projections = append(projections, p)
	}

	return query.ListExpensesResult{
		Expenses:   projections,
		TotalCount: total,
	}, nil
}
