package repository

import (
	"context"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/0xsj/overwatch-finance/internal/domain/model"
)

// ExpenseRepository defines the interface for expense persistence.
type ExpenseRepository interface {
	// Create persists a new expense.
	Create(ctx context.Context, expense *model.Expense) error

	// FindByID retrieves an expense by ID.
	FindByID(ctx context.Context, id types.ID) (*model.Expense, error)

	// ListByUser retrieves a user's expenses with pagination,
	// newest incurred first.
	ListByUser(ctx context.Context, userID types.ID, params ListExpensesParams) ([]*model.Expense, error)

	// CountByUser returns the total number of expenses for a user.
	CountByUser(ctx context.Context, userID types.ID) (int64, error)

	// Delete removes an expense by ID.
	Delete(ctx context.Context, id types.ID) error

	// DeleteByUser removes all expenses belonging to a user.
	// Used when an account is purged.
	DeleteByUser(ctx context.Context, userID types.ID) error
}

// ListExpensesParams defines parameters for listing expenses.
type ListExpensesParams struct {
	Limit  int
	Offset int

	// Filters
	CategoryID *types.ID
}

// DefaultListExpensesParams returns default listing parameters.
func DefaultListExpensesParams() ListExpensesParams {
	return ListExpensesParams{
		Limit:  50,
		Offset: 0,
	}
}
