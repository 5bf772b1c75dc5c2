package query

import (
	"context"

	"github.com/0xsj/overwatch-finance/internal/domain/model"
)

// ListExpenses retrieves the actor's expenses with pagination,
// newest incurred first.
type ListExpenses struct {
	Actor  model.Actor
	Limit  int
	Offset int
}

func (q ListExpenses) QueryName() string {
	return "finance.list_expenses"
}

// ListExpensesResult contains the expenses and pagination info.
type ListExpensesResult struct {
	Expenses   []model.ExpenseProjection
	TotalCount int64
}

// ListExpensesHandler handles the ListExpenses query.
type ListExpensesHandler interface {
	Handle(ctx context.Context, qry ListExpenses) (ListExpensesResult, error)
}
