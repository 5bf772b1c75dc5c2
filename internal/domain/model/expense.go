package model

import (
	"github.com/0xsj/overwatch-pkg/types"

	domainerror "github.com/0xsj/overwatch-finance/internal/domain/error"
)

// Expense records a single spend by a user against a category.
// Amounts are stored in cents to avoid floating-point drift.
type Expense struct {
	id          types.ID
	userID      types.ID
	categoryID  types.ID
	amountCents int64
	description types.Optional[string]
	incurredAt  types.Timestamp
	createdAt   types.Timestamp
}

// NewExpense creates a new Expense aggregate.
func NewExpense(
	userID types.ID,
	categoryID types.ID,
	amountCents int64,
	description types.Optional[string],
	incurredAt types.Timestamp,
) (*Expense, error) {
	if userID.IsEmpty() {
		return nil, domainerror.ErrUserIDRequired
	}
	if categoryID.IsEmpty() {
		return nil, domainerror.ErrCategoryIDRequired
	}
	if amountCents <= 0 {
		return nil, domainerror.ErrExpenseAmountInvalid
	}

	now := types.Now()
	if incurredAt.IsZero() {
		incurredAt = now
	}

	return &Expense{
		id:          types.NewID(),
		userID:      userID,
		categoryID:  categoryID,
		amountCents: amountCents,
		description: description,
		incurredAt:  incurredAt,
		createdAt:   now,
	}, nil
}

// ReconstructExpense creates an Expense from persisted data.
func ReconstructExpense(
	id types.ID,
	userID types.ID,
	categoryID types.ID,
	amountCents int64,
	description types.Optional[string],
	incurredAt types.Timestamp,
	createdAt types.Timestamp,
) *Expense {
	return &Expense{
		id:          id,
		userID:      userID,
		categoryID:  categoryID,
		amountCents: amountCents,
		description: description,
		incurredAt:  incurredAt,
		createdAt:   createdAt,
	}
}

func (e *Expense) ID() types.ID                         { return e.id }
func (e *Expense) UserID() types.ID                     { return e.userID }
func (e *Expense) CategoryID() types.ID                 { return e.categoryID }
func (e *Expense) AmountCents() int64                   { return e.amountCents }
func (e *Expense) Description() types.Optional[string] { return e.description }
func (e *Expense) IncurredAt() types.Timestamp          { return e.incurredAt }
func (e *Expense) CreatedAt() types.Timestamp           { return e.createdAt }

// IsOwnedBy reports whether the expense belongs to the given user.
func (e *Expense) IsOwnedBy(userID types.ID) bool {
	return e.userID == userID
}

// Projection returns the cache/transport view of the expense.
func (e *Expense) Projection() ExpenseProjection {
	p := ExpenseProjection{
		ID:          e.id.String(),
		UserID:      e.userID.String(),
		CategoryID:  e.categoryID.String(),
		AmountCents: e.amountCents,
		IncurredAt:  e.incurredAt.Time().Unix(),
		CreatedAt:   e.createdAt.Time().Unix(),
	}
	if e.description.IsPresent() {
		d := e.description.MustGet()
		p.Description = &d
	}
	return p
}

// ExpenseProjection is the denormalized, JSON-serializable view of an
// expense stored in the cache and returned over HTTP.
type ExpenseProjection struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	CategoryID  string  `json:"category_id"`
	AmountCents int64   `json:"amount_cents"`
	Description *string `json:"description,omitempty"`
	IncurredAt  int64   `json:"incurred_at"`
	CreatedAt   int64   `json:"created_at"`
}
