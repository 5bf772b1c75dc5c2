package command

import (
	"context"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/0xsj/overwatch-finance/internal/domain/model"
)

// DeleteExpense removes an expense. Only the owner may delete it.
type DeleteExpense struct {
	Actor     model.Actor
	ExpenseID types.ID
}

func (c DeleteExpense) CommandName() string {
	return "finance.delete_expense"
}

// DeleteExpenseResult reports the deleted expense.
type DeleteExpenseResult struct {
	ExpenseID types.ID
}

// DeleteExpenseHandler handles the DeleteExpense command.
type DeleteExpenseHandler interface {
	Handle(ctx context.Context, cmd DeleteExpense) (DeleteExpenseResult, error)
}
