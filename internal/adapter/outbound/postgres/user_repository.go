package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/0xsj/overwatch-finance/internal/domain/model"
	"github.com/0xsj/overwatch-finance/internal/port/outbound/repository"
)

const userColumns = "id, username, email, password_hash, role, status, deactivated_by, created_at, updated_at"

// userRepository implements repository.UserRepository.
type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(pool *pgxpool.Pool) repository.UserRepository {
	return &userRepository{pool: pool}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	const query = `
		INSERT INTO users (id, username, email, password_hash, role, status, deactivated_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, query,
		user.ID().String(),
		user.Username(),
		user.Email().String(),
		user.PasswordHash(),
		user.Role().String(),
		user.Status().String(),
		optionalIDToPtr(user.DeactivatedBy()),
		user.CreatedAt().Time(),
		user.UpdatedAt().Time(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrConflict
		}
		return err
	}
	return nil
}

func (r *userRepository) Update(ctx context.Context, user *model.User) error {
	const query = `
		UPDATE users
		SET username = $2, email = $3, password_hash = $4, role = $5,
		    status = $6, deactivated_by = $7, updated_at = $8
		WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query,
		user.ID().String(),
		user.Username(),
		user.Email().String(),
		user.PasswordHash(),
		user.Role().String(),
		user.Status().String(),
		optionalIDToPtr(user.DeactivatedBy()),
		user.UpdatedAt().Time(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrConflict
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *userRepository) FindByID(ctx context.Context, id types.ID) (*model.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1 AND status = $2`, userColumns)
	return r.findOne(ctx, query, id.String(), model.UserStatusActive.String())
}

func (r *userRepository) FindByIDAnyStatus(ctx context.Context, id types.ID) (*model.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)
	return r.findOne(ctx, query, id.String())
}

func (r *userRepository) FindByEmail(ctx context.Context, email types.Email) (*model.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1 AND status = $2`, userColumns)
	return r.findOne(ctx, query, email.String(), model.UserStatusActive.String())
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email types.Email) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, email.String()).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *userRepository) List(ctx context.Context, params repository.ListUsersParams) ([]*model.User, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM users
		WHERE ($1::text IS NULL OR status = $1)
		ORDER BY %s %s
		LIMIT $2 OFFSET $3`,
		userColumns, sortField(params.SortBy), sortDirection(params.SortOrder))

	rows, err := r.pool.Query(ctx, query, statusFilter(params.Status), params.Limit, params.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*model.User
	for rows.Next() {
		var row userRow
		if err := rows.Scan(&row.ID, &row.Username, &row.Email, &row.PasswordHash,
			&row.Role, &row.Status, &row.DeactivatedBy, &row.CreatedAt, &row.UpdatedAt); err != nil {
			return nil, err
		}
		user, err := row.toModel()
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *userRepository) Count(ctx context.Context, params repository.ListUsersParams) (int64, error) {
	const query = `SELECT COUNT(*) FROM users WHERE ($1::text IS NULL OR status = $1)`

	var count int64
	if err := r.pool.QueryRow(ctx, query, statusFilter(params.Status)).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *userRepository) Delete(ctx context.Context, id types.ID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id.String())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *userRepository) findOne(ctx context.Context, query string, args ...any) (*model.User, error) {
	var row userRow
	err := r.pool.QueryRow(ctx, query, args...).Scan(
		&row.ID, &row.Username, &row.Email, &row.PasswordHash,
		&row.Role, &row.Status, &row.DeactivatedBy, &row.CreatedAt, &row.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return row.toModel()
}

// Query helpers

func statusFilter(status *model.UserStatus) *string {
	if status == nil {
		return nil
	}
	s := status.String()
	return &s
}

func sortField(field repository.UserSortField) string {
	switch field {
	case repository.UserSortFieldCreatedAt, repository.UserSortFieldUpdatedAt, repository.UserSortFieldEmail:
		return string(field)
	default:
		return string(repository.UserSortFieldCreatedAt)
	}
}

func sortDirection(order repository.SortOrder) string {
	if order == repository.SortOrderAsc {
		return "ASC"
	}
	return "DESC"
}
