package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/0xsj/overwatch-finance/internal/domain/model"
	"github.com/0xsj/overwatch-finance/internal/port/outbound/repository"
)

// expenseRepository implements repository.ExpenseRepository.
type expenseRepository struct {
	pool *pgxpool.Pool
}

// NewExpenseRepository creates a new ExpenseRepository.
func NewExpenseRepository(pool *pgxpool.Pool) repository.ExpenseRepository {
	return &expenseRepository{pool: pool}
}

func (r *expenseRepository) Create(ctx context.Context, expense *model.Expense) error {
	const query = `
		INSERT INTO expenses (id, user_id, category_id, amount_cents, description, incurred_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		expense.ID().String(),
		expense.UserID().String(),
		expense.CategoryID().String(),
		expense.AmountCents(),
		optionalStringToPtr(expense.Description()),
		expense.IncurredAt().Time(),
		expense.CreatedAt().Time(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrConflict
		}
		return err
	}
	return nil
}

func (r *expenseRepository) FindByID(ctx context.Context, id types.ID) (*model.Expense, error) {
	const query = `
		SELECT id, user_id, category_id, amount_cents, description, incurred_at, created_at
		FROM expenses WHERE id = $1`

	var row expenseRow
	err := r.pool.QueryRow(ctx, query, id.String()).Scan(
		&row.ID, &row.UserID, &row.CategoryID, &row.AmountCents,
		&row.Description, &row.IncurredAt, &row.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return row.toModel()
}

func (r *expenseRepository) ListByUser(ctx context.Context, userID types.ID, params repository.ListExpensesParams) ([]*model.Expense, error) {
	const query = `
		SELECT id, user_id, category_id, amount_cents, description, incurred_at, created_at
		FROM expenses
		WHERE user_id = $1 AND ($2::text IS NULL OR category_id = $2)
		ORDER BY incurred_at DESC
		LIMIT $3 OFFSET $4`

	var categoryFilter *string
	if params.CategoryID != nil {
		s := params.CategoryID.String()
		categoryFilter = &s
	}

	rows, err := r.pool.Query(ctx, query, userID.String(), categoryFilter, params.Limit, params.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []*model.Expense
	for rows.Next() {
		var row expenseRow
		if err := rows.Scan(&row.ID, &row.UserID, &row.CategoryID, &row.AmountCents,
			&row.Description, &row.IncurredAt, &row.CreatedAt); err != nil {
			return nil, err
		}
		expense, err := row.toModel()
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}
	return expenses, rows.Err()
}

func (r *expenseRepository) CountByUser(ctx context.Context, userID types.ID) (int64, error) {
	const query = `SELECT COUNT(*) FROM expenses WHERE user_id = $1`

	var count int64
	if err := r.pool.QueryRow(ctx, query, userID.String()).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *expenseRepository) Delete(ctx context.Context, id types.ID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, id.String())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *expenseRepository) DeleteByUser(ctx context.Context, userID types.ID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM expenses WHERE user_id = $1`, userID.String())
	return err
}
