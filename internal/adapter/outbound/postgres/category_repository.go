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

// categoryRepository implements repository.CategoryRepository.
type categoryRepository struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository creates a new CategoryRepository.
func NewCategoryRepository(pool *pgxpool.Pool) repository.CategoryRepository {
	return &categoryRepository{pool: pool}
}

func (r *categoryRepository) Create(ctx context.Context, category *model.Category) error {
	const query = `
		INSERT INTO categories (id, name, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.pool.Exec(ctx, query,
		category.ID().String(),
		category.Name(),
		optionalIDToPtr(category.OwnerID()),
		category.CreatedAt().Time(),
		category.UpdatedAt().Time(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrConflict
		}
		return err
	}
	return nil
}

func (r *categoryRepository) FindByID(ctx context.Context, id types.ID) (*model.Category, error) {
	const query = `
		SELECT id, name, owner_id, created_at, updated_at
		FROM categories WHERE id = $1`

	var row categoryRow
	err := r.pool.QueryRow(ctx, query, id.String()).Scan(
		&row.ID, &row.Name, &row.OwnerID, &row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return row.toModel()
}

func (r *categoryRepository) ListForUser(ctx context.Context, userID types.ID) ([]*model.Category, error) {
	const query = `
		SELECT id, name, owner_id, created_at, updated_at
		FROM categories
		WHERE owner_id IS NULL OR owner_id = $1
		ORDER BY name ASC`

	rows, err := r.pool.Query(ctx, query, userID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*model.Category
	for rows.Next() {
		var row categoryRow
		if err := rows.Scan(&row.ID, &row.Name, &row.OwnerID, &row.CreatedAt, &row.UpdatedAt); err != nil {
			return nil, err
		}
		category, err := row.toModel()
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *categoryRepository) Delete(ctx context.Context, id types.ID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id.String())
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrConflict
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}
