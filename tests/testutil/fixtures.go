package testutil

import (
	"time"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/0xsj/overwatch-finance/internal/domain/model"
)

// Fixtures provides builders for domain models in tests.
var Fixtures = &fixtures{}

type fixtures struct{}

// --- User ---

// User creates a new active User with default values.
func (f *fixtures) User() *model.User {
	return f.UserBuilder().Build()
}

// Superuser creates a new active User with the superuser role.
func (f *fixtures) Superuser() *model.User {
	return f.UserBuilder().Superuser().Build()
}

// Actor returns an Actor for the given user.
func (f *fixtures) Actor(user *model.User) model.Actor {
	return model.Actor{UserID: user.ID(), Role: user.Role()}
}

// UserBuilder returns a builder for customizing User creation.
func (f *fixtures) UserBuilder() *UserBuilder {
	return &UserBuilder{
		username:     Fake.Username(),
		email:        Fake.Email(),
		passwordHash: Fake.Hex(16),
		role:         model.RoleUser,
	}
}

type UserBuilder struct {
	username     string
	email        string
	passwordHash string
	role         model.Role

	// For reconstruction
	id          types.ID
	status      model.UserStatus
	createdAt   types.Timestamp
	reconstruct bool
}

func (b *UserBuilder) WithUsername(username string) *UserBuilder {
	b.username = username
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

func (b *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	b.passwordHash = hash
	return b
}

func (b *UserBuilder) Superuser() *UserBuilder {
	b.role = model.RoleSuperuser
	return b
}

func (b *UserBuilder) Deactivated() *UserBuilder {
	b.status = model.UserStatusDeactivated
	b.reconstruct = true
	return b
}

func (b *UserBuilder) WithID(id types.ID) *UserBuilder {
	b.id = id
	b.reconstruct = true
	return b
}

func (b *UserBuilder) WithCreatedAt(t time.Time) *UserBuilder {
	b.createdAt = types.FromTime(t)
	b.reconstruct = true
	return b
}

func (b *UserBuilder) Build() *model.User {
	email, err := types.NewEmail(b.email)
	if err != nil {
		panic("fixtures: invalid email: " + err.Error())
	}

	if b.reconstruct {
		id := b.id
		if id.IsEmpty() {
			id = types.NewID()
		}
		status := b.status
		if status == "" {
			status = model.UserStatusActive
		}
		createdAt := b.createdAt
		if createdAt.IsZero() {
			createdAt = types.Now()
		}
		deactivatedBy := types.None[types.ID]()
		if status == model.UserStatusDeactivated {
			deactivatedBy = types.Some(id)
		}

		return model.ReconstructUser(
			id,
			b.username,
			email,
			b.passwordHash,
			b.role,
			status,
			deactivatedBy,
			createdAt,
			createdAt,
		)
	}

	user, err := model.NewUser(b.username, email, b.passwordHash, b.role)
	if err != nil {
		panic("fixtures: failed to create user: " + err.Error())
	}
	return user
}

// --- Category ---

// Category creates a new category owned by the given user.
func (f *fixtures) Category(ownerID types.ID) *model.Category {
	return f.CategoryBuilder().OwnedBy(ownerID).Build()
}

// GlobalCategory creates a new ownerless default category.
func (f *fixtures) GlobalCategory() *model.Category {
	return f.CategoryBuilder().Build()
}

// CategoryBuilder returns a builder for customizing Category creation.
func (f *fixtures) CategoryBuilder() *CategoryBuilder {
	return &CategoryBuilder{
		name:    Fake.Name(),
		ownerID: types.None[types.ID](),
	}
}

type CategoryBuilder struct {
	name    string
	ownerID types.Optional[types.ID]
}

func (b *CategoryBuilder) WithName(name string) *CategoryBuilder {
	b.name = name
	return b
}

func (b *CategoryBuilder) OwnedBy(ownerID types.ID) *CategoryBuilder {
	b.ownerID = types.Some(ownerID)
	return b
}

func (b *CategoryBuilder) Build() *model.Category {
	category, err := model.NewCategory(b.name, b.ownerID)
	if err != nil {
		panic("fixtures: failed to create category: " + err.Error())
	}
	return category
}

// --- Expense ---

// Expense creates a new expense for the given user and category.
func (f *fixtures) Expense(userID, categoryID types.ID) *model.Expense {
	return f.ExpenseBuilder(userID, categoryID).Build()
}

// ExpenseBuilder returns a builder for customizing Expense creation.
func (f *fixtures) ExpenseBuilder(userID, categoryID types.ID) *ExpenseBuilder {
	return &ExpenseBuilder{
		userID:      userID,
		categoryID:  categoryID,
		amountCents: Fake.AmountCents(),
		description: types.None[string](),
	}
}

type ExpenseBuilder struct {
	userID      types.ID
	categoryID  types.ID
	amountCents int64
	description types.Optional[string]
	incurredAt  types.Timestamp
}

func (b *ExpenseBuilder) WithAmountCents(cents int64) *ExpenseBuilder {
	b.amountCents = cents
	return b
}

func (b *ExpenseBuilder) WithDescription(description string) *ExpenseBuilder {
	b.description = types.Some(description)
	return b
}

func (b *ExpenseBuilder) IncurredAt(t time.Time) *ExpenseBuilder {
	b.incurredAt = types.FromTime(t)
	return b
}

func (b *ExpenseBuilder) Build() *model.Expense {
	expense, err := model.NewExpense(
		b.userID,
		b.categoryID,
		b.amountCents,
		b.description,
		b.incurredAt,
	)
	if err != nil {
		panic("fixtures: failed to create expense: " + err.Error())
	}
	return expense
}
