package model

import (
	"github.com/0xsj/overwatch-pkg/types"

	domainerror "github.com/0xsj/overwatch-finance/internal/domain/error"
)

// Category groups expenses and incomes. A category without an owner
// is a global default visible to every user.
type Category struct {
	id        types.ID
	name      string
	ownerID   types.Optional[types.ID]
	createdAt types.Timestamp
	updatedAt types.Timestamp
}

// NewCategory creates a new Category aggregate.
func NewCategory(name string, ownerID types.Optional[types.ID]) (*Category, error) {
	if name == "" {
		return nil, domainerror.ErrCategoryNameRequired
	}

	now := types.Now()

	return &Category{
		id:        types.NewID(),
		name:      name,
		ownerID:   ownerID,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructCategory creates a Category from persisted data.
func ReconstructCategory(
	id types.ID,
	name string,
	ownerID types.Optional[types.ID],
	createdAt types.Timestamp,
	updatedAt types.Timestamp,
) *Category {
	return &Category{
		id:        id,
		name:      name,
		ownerID:   ownerID,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (c *Category) ID() types.ID                      { return c.id }
func (c *Category) Name() string                      { return c.name }
func (c *Category) OwnerID() types.Optional[types.ID] { return c.ownerID }
func (c *Category) CreatedAt() types.Timestamp        { return c.createdAt }
func (c *Category) UpdatedAt() types.Timestamp        { return c.updatedAt }

// IsGlobal reports whether the category is a shared default rather
// than a user-owned one.
func (c *Category) IsGlobal() bool {
	return !c.ownerID.IsPresent()
}

// Projection returns the cache/transport view of the category.
func (c *Category) Projection() CategoryProjection {
	p := CategoryProjection{
		ID:        c.id.String(),
		Name:      c.name,
		CreatedAt: c.createdAt.Time().Unix(),
		UpdatedAt: c.updatedAt.Time().Unix(),
	}
	if c.ownerID.IsPresent() {
		owner := c.ownerID.MustGet().String()
		p.OwnerID = &owner
	}
	return p
}

// CategoryProjection is the denormalized, JSON-serializable view of a
// category. A nil OwnerID marks a global default category.
type CategoryProjection struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	OwnerID   *string `json:"owner_id,omitempty"`
	CreatedAt int64   `json:"created_at"`
	UpdatedAt int64   `json:"updated_at"`
}
