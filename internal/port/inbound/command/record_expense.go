package command

import (
	"context"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/0xsj/overwatch-finance/internal/domain/model"
)

// RecordExpense records a spend by the actor against a category the
// actor can see.
type RecordExpense struct {
	Actor       model.Actor
	CategoryID  types.ID
	AmountCents int64
	Description types.Optional[string]
	IncurredAt  types.Timestamp
}

func (c RecordExpense) CommandName() string {
	return "finance.record_expense"
}

// RecordExpenseResult contains the recorded expense.
type RecordExpenseResult struct {
	Expense model.ExpenseProjection
}

// RecordExpenseHandler handles the RecordExpense command.
type RecordExpenseHandler interface {
	Handle(ctx context.Context, cmd RecordExpense) (RecordExpenseResult, error)
}
