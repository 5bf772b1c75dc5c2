package command

import (
	"context"

	domainerror "github.com/0xsj/overwatch-finance/internal/domain/error"
	"github.com/0xsj/overwatch-finance/internal/domain/event"
	"github.com/0xsj/overwatch-finance/internal/domain/model"
	"github.com/0xsj/overwatch-finance/internal/port/inbound/command"
	"github.com/0xsj/overwatch-finance/internal/port/outbound/cache"
	"github.com/0xsj/overwatch-finance/internal/port/outbound/messaging"
	"github.com/0xsj/overwatch-finance/internal/port/outbound/repository"
)

// recordExpenseHandler implements command.RecordExpenseHandler.
type recordExpenseHandler struct {
	expenseRepo  repository.ExpenseRepository
	categoryRepo repository.CategoryRepository
	expenseCache cache.ExpenseCache
	publisher    messaging.EventPublisher
}

// NewRecordExpenseHandler creates a new RecordExpenseHandler.
func NewRecordExpenseHandler(
	expenseRepo repository.ExpenseRepository,
	categoryRepo repository.CategoryRepository,
	expenseCache cache.ExpenseCache,
	publisher messaging.EventPublisher,
) command.RecordExpenseHandler {
	return &recordExpenseHandler{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
		expenseCache: expenseCache,
		publisher:    publisher,
	}
}

func (h *recordExpenseHandler) Handle(ctx context.Context, cmd command.RecordExpense) (command.RecordExpenseResult, error) {
	if cmd.CategoryID.IsEmpty() {
		return command.RecordExpenseResult{}, domainerror.ErrCategoryIDRequired
	}

	// The category must exist and be visible to the actor. A category
	// owned by someone else reads the same as a missing one.
	category, err := h.categoryRepo.FindByID(ctx, cmd.CategoryID)
	if err != nil {
		return command.RecordExpenseResult{}, domainerror.ErrCategoryNotFound
	}
	if !category.IsGlobal() && category.OwnerID().MustGet() != cmd.Actor.UserID {
		return command.RecordExpenseResult{}, domainerror.ErrCategoryNotFound
	}

	expense, err := model.NewExpense(cmd.Actor.UserID, cmd.CategoryID, cmd.AmountCents, cmd.Description, cmd.IncurredAt)
	if err != nil {
		return command.RecordExpenseResult{}, err
	}

	if err := h.expenseRepo.Create(ctx, expense); err != nil {
		return command.RecordExpenseResult{}, err
	}

	projection := expense.Projection()
	h.expenseCache.Set(ctx, projection)

	// Publish event
	_ = h.publisher.Publish(ctx, event.NewExpenseRecorded(
		expense.ID(), expense.UserID(), expense.CategoryID(), expense.AmountCents()))

	return command.RecordExpenseResult{Expense: projection}, nil
}
