package postgres

import (
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/0xsj/overwatch-finance/internal/domain/model"
)

// userRow represents a user row in the database.
type userRow struct {
	ID            string
	Username      string
	Email         string
	PasswordHash  string
	Role          string
	Status        string
	DeactivatedBy *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (r userRow) toModel() (*model.User, error) {
	id, err := types.ParseID(r.ID)
	if err != nil {
		return nil, err
	}

	email, err := types.NewEmail(r.Email)
	if err != nil {
		return nil, err
	}

	deactivatedBy := types.None[types.ID]()
	if r.DeactivatedBy != nil {
		by, err := types.ParseID(*r.DeactivatedBy)
		if err != nil {
			return nil, err
		}
		deactivatedBy = types.Some(by)
	}

	return model.ReconstructUser(
		id,
		r.Username,
		email,
		r.PasswordHash,
		model.Role(r.Role),
		model.UserStatus(r.Status),
		deactivatedBy,
		types.FromTime(r.CreatedAt),
		types.FromTime(r.UpdatedAt),
	), nil
}

// categoryRow represents a category row in the database.
type categoryRow struct {
	ID        string
	Name      string
	OwnerID   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (r categoryRow) toModel() (*model.Category, error) {
	id, err := types.ParseID(r.ID)
	if err != nil {
		return nil, err
	}

	ownerID := types.None[types.ID]()
	if r.OwnerID != nil {
		owner, err := types.ParseID(*r.OwnerID)
		if err != nil {
			return nil, err
		}
		ownerID = types.Some(owner)
	}

	return model.ReconstructCategory(
		id,
		r.Name,
		ownerID,
		types.FromTime(r.CreatedAt),
		types.FromTime(r.UpdatedAt),
	), nil
}

// expenseRow represents an expense row in the database.
type expenseRow struct {
	ID          string
	UserID      string
	CategoryID  string
	AmountCents int64
	Description *string
	IncurredAt  time.Time
	CreatedAt   time.Time
}

func (r expenseRow) toModel() (*model.Expense, error) {
	id, err := types.ParseID(r.ID)
	if err != nil {
		return nil, err
	}

	userID, err := types.ParseID(r.UserID)
	if err != nil {
		return nil, err
	}

	categoryID, err := types.ParseID(r.CategoryID)
	if err != nil {
		return nil, err
	}

	description := types.None[string]()
	if r.Description != nil {
		description = types.Some(*r.Description)
	}

	return model.ReconstructExpense(
		id,
		userID,
		categoryID,
		r.AmountCents,
		description,
		types.FromTime(r.IncurredAt),
		types.FromTime(r.CreatedAt),
	), nil
}

// Optional ID -> nullable column

func optionalIDToPtr(id types.Optional[types.ID]) *string {
	if !id.IsPresent() {
		return nil
	}
	s := id.MustGet().String()
	return &s
}

func optionalStringToPtr(s types.Optional[string]) *string {
	if !s.IsPresent() {
		return nil
	}
	v := s.MustGet()
	return &v
}

// isUniqueViolation reports whether err is a postgres unique
// constraint violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// isForeignKeyViolation reports whether err is a postgres foreign key
// constraint violation.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
