package persistence

import (
	"errors"
	"testing"
	"time"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/0xsj/overwatch-finance/internal/adapter/outbound/postgres"
	"github.com/0xsj/overwatch-finance/internal/domain/model"
	"github.com/0xsj/overwatch-finance/internal/port/outbound/repository"
	"github.com/0xsj/overwatch-finance/tests/testutil"
)

func TestExpenseRepository_CreateAndFind(t *testing.T) {
	truncateTables(t)
	ctx := getContext()

	repo := postgres.NewExpenseRepository(getPool())
	owner, category := createPersistedOwnerAndCategory(t)

	expense := testutil.Fixtures.ExpenseBuilder(owner.ID(), category.ID()).
		WithAmountCents(1250).
		WithDescription("coffee beans").
		Build()

	if err := repo.Create(ctx, expense); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	found, err := repo.FindByID(ctx, expense.ID())
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if found.AmountCents() != 1250 {
		t.Errorf("AmountCents = %v, want 1250", found.AmountCents())
	}
	if !found.Description().IsPresent() || found.Description().MustGet() != "coffee beans" {
		t.Error("description should survive the roundtrip")
	}
	if found.CategoryID() != category.ID() {
		t.Errorf("CategoryID = %v, want %v", found.CategoryID(), category.ID())
	}
}

func TestExpenseRepository_CreateWithoutDescription(t *testing.T) {
	truncateTables(t)
	ctx := getContext()

	repo := postgres.NewExpenseRepository(getPool())
	owner, category := createPersistedOwnerAndCategory(t)

	expense := testutil.Fixtures.Expense(owner.ID(), category.ID())
	if err := repo.Create(ctx, expense); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	found, err := repo.FindByID(ctx, expense.ID())
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if found.Description().IsPresent() {
		t.Error("description should stay absent")
	}
}

func TestExpenseRepository_FindByIDNotFound(t *testing.T) {
	truncateTables(t)
	ctx := getContext()

	repo := postgres.NewExpenseRepository(getPool())

	_, err := repo.FindByID(ctx, types.NewID())
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("FindByID() error = %v, want ErrNotFound", err)
	}
}

func TestExpenseRepository_ListByUserNewestFirst(t *testing.T) {
	truncateTables(t)
	ctx := getContext()

	repo := postgres.NewExpenseRepository(getPool())
	owner, category := createPersistedOwnerAndCategory(t)

	old := testutil.Fixtures.ExpenseBuilder(owner.ID(), category.ID()).
		IncurredAt(time.Now().Add(-48 * time.Hour)).Build()
	recent := testutil.Fixtures.ExpenseBuilder(owner.ID(), category.ID()).
		IncurredAt(time.Now().Add(-time.Hour)).Build()
	mustCreateExpense(t, repo, old)
	mustCreateExpense(t, repo, recent)

	expenses, err := repo.ListByUser(ctx, owner.ID(), repository.DefaultListExpensesParams())
	if err != nil {
		t.Fatalf("ListByUser() error = %v", err)
	}
	if len(expenses) != 2 {
		t.Fatalf("expected 2 expenses, got %d", len(expenses))
	}
	if expenses[0].ID() != recent.ID() {
		t.Error("expected newest expense first")
	}
}

func TestExpenseRepository_ListByUserOwnRowsOnly(t *testing.T) {
	truncateTables(t)
	ctx := getContext()

	repo := postgres.NewExpenseRepository(getPool())
	owner, category := createPersistedOwnerAndCategory(t)
	other := createPersistedUser(t)

	mustCreateExpense(t, repo, testutil.Fixtures.Expense(owner.ID(), category.ID()))
	mustCreateExpense(t, repo, testutil.Fixtures.Expense(other.ID(), category.ID()))

	expenses, err := repo.ListByUser(ctx, owner.ID(), repository.DefaultListExpensesParams())
	if err != nil {
		t.Fatalf("ListByUser() error = %v", err)
	}
	if len(expenses) != 1 {
		t.Fatalf("expected 1 expense, got %d", len(expenses))
	}
	if expenses[0].UserID() != owner.ID() {
		t.Error("foreign expense leaked into the user's list")
	}
}

func TestExpenseRepository_ListByUserCategoryFilter(t *testing.T) {
	truncateTables(t)
	ctx := getContext()

	repo := postgres.NewExpenseRepository(getPool())
	owner, category := createPersistedOwnerAndCategory(t)

	otherCategory := testutil.Fixtures.GlobalCategory()
	mustCreateCategory(t, postgres.NewCategoryRepository(getPool()), otherCategory)

	mustCreateExpense(t, repo, testutil.Fixtures.Expense(owner.ID(), category.ID()))
	mustCreateExpense(t, repo, testutil.Fixtures.Expense(owner.ID(), otherCategory.ID()))

	params := repository.DefaultListExpensesParams()
	categoryID := category.ID()
	params.CategoryID = &categoryID

	expenses, err := repo.ListByUser(ctx, owner.ID(), params)
	if err != nil {
		t.Fatalf("ListByUser() error = %v", err)
	}
	if len(expenses) != 1 {
		t.Fatalf("expected 1 expense, got %d", len(expenses))
	}
	if expenses[0].CategoryID() != category.ID() {
		t.Errorf("CategoryID = %v, want %v", expenses[0].CategoryID(), category.ID())
	}
}

func TestExpenseRepository_ListByUserPagination(t *testing.T) {
	truncateTables(t)
	ctx := getContext()

	repo := postgres.NewExpenseRepository(getPool())
	owner, category := createPersistedOwnerAndCategory(t)

	for i := 1; i <= 3; i++ {
		e := testutil.Fixtures.ExpenseBuilder(owner.ID(), category.ID()).
			IncurredAt(time.Now().Add(-time.Duration(i) * time.Hour)).Build()
		mustCreateExpense(t, repo, e)
	}

	params := repository.DefaultListExpensesParams()
	params.Limit = 2
	params.Offset = 2

	expenses, err := repo.ListByUser(ctx, owner.ID(), params)
	if err != nil {
		t.Fatalf("ListByUser() error = %v", err)
	}
	if len(expenses) != 1 {
		t.Errorf("expected 1 expense on the last page, got %d", len(expenses))
	}
}

func TestExpenseRepository_CountByUser(t *testing.T) {
	truncateTables(t)
	ctx := getContext()

	repo := postgres.NewExpenseRepository(getPool())
	owner, category := createPersistedOwnerAndCategory(t)
	other := createPersistedUser(t)

	mustCreateExpense(t, repo, testutil.Fixtures.Expense(owner.ID(), category.ID()))
	mustCreateExpense(t, repo, testutil.Fixtures.Expense(owner.ID(), category.ID()))
	mustCreateExpense(t, repo, testutil.Fixtures.Expense(other.ID(), category.ID()))

	count, err := repo.CountByUser(ctx, owner.ID())
	if err != nil {
		t.Fatalf("CountByUser() error = %v", err)
	}
	if count != 2 {
		t.Errorf("Count = %d, want 2", count)
	}
}

func TestExpenseRepository_Delete(t *testing.T) {
	truncateTables(t)
	ctx := getContext()

	repo := postgres.NewExpenseRepository(getPool())
	owner, category := createPersistedOwnerAndCategory(t)
	expense := testutil.Fixtures.Expense(owner.ID(), category.ID())
	mustCreateExpense(t, repo, expense)

	if err := repo.Delete(ctx, expense.ID()); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	_, err := repo.FindByID(ctx, expense.ID())
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("FindByID() after delete error = %v, want ErrNotFound", err)
	}
}

func TestExpenseRepository_DeleteNotFound(t *testing.T) {
	truncateTables(t)
	ctx := getContext()

	repo := postgres.NewExpenseRepository(getPool())

	err := repo.Delete(ctx, types.NewID())
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("Delete() missing row error = %v, want ErrNotFound", err)
	}
}

func TestExpenseRepository_DeleteByUser(t *testing.T) {
	truncateTables(t)
	ctx := getContext()

	repo := postgres.NewExpenseRepository(getPool())
	owner, category := createPersistedOwnerAndCategory(t)
	other := createPersistedUser(t)

	mustCreateExpense(t, repo, testutil.Fixtures.Expense(owner.ID(), category.ID()))
	mustCreateExpense(t, repo, testutil.Fixtures.Expense(owner.ID(), category.ID()))
	theirs := testutil.Fixtures.Expense(other.ID(), category.ID())
	mustCreateExpense(t, repo, theirs)

	if err := repo.DeleteByUser(ctx, owner.ID()); err != nil {
		t.Fatalf("DeleteByUser() error = %v", err)
	}

	count, err := repo.CountByUser(ctx, owner.ID())
	if err != nil {
		t.Fatalf("CountByUser() error = %v", err)
	}
	if count != 0 {
		t.Errorf("Count = %d, want 0 after DeleteByUser", count)
	}

	// Other users are untouched
	if _, err := repo.FindByID(ctx, theirs.ID()); err != nil {
		t.Errorf("other users' expenses should survive: %v", err)
	}
}

func TestExpenseRepository_DeleteByUserEmpty(t *testing.T) {
	truncateTables(t)
	ctx := getContext()

	repo := postgres.NewExpenseRepository(getPool())

	// No rows is not an error
	if err := repo.DeleteByUser(ctx, types.NewID()); err != nil {
		t.Errorf("DeleteByUser() with no rows error = %v", err)
	}
}

// --- Helper ---

func createPersistedOwnerAndCategory(t *testing.T) (*model.User, *model.Category) {
	t.Helper()
	owner := createPersistedUser(t)
	category := testutil.Fixtures.Category(owner.ID())
	mustCreateCategory(t, postgres.NewCategoryRepository(getPool()), category)
	return owner, category
}

func mustCreateExpense(t *testing.T, repo repository.ExpenseRepository, expense *model.Expense) {
	t.Helper()
	if err := repo.Create(getContext(), expense); err != nil {
		t.Fatalf("failed to create expense: %v", err)
	}
}
