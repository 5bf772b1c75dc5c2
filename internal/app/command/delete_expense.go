package command

import (
	"context"

	domainerror "github.com/0xsj/overwatch-finance/internal/domain/error"
	"github.com/0xsj/overwatch-finance/internal/domain/event"
	"github.com/0xsj/overwatch-finance/internal/port/inbound/command"
	"github.com/0xsj/overwatch-finance/internal/port/outbound/cache"
	"github.com/0xsj/overwatch-finance/internal/port/outbound/messaging"
	"github.com/0xsj/overwatch-finance/internal/port/outbound/repository"
)

// deleteExpenseHandler implements command.DeleteExpenseHandler.
type deleteExpenseHandler struct {
	expenseRepo  repository.ExpenseRepository
	expenseCache cache.ExpenseCache
	publisher    messaging.EventPublisher
}

// NewDeleteExpenseHandler creates a new DeleteExpenseHandler.
func NewDeleteExpenseHandler(
	expenseRepo repository.ExpenseRepository,
	expenseCache cache.ExpenseCache,
	publisher messaging.EventPublisher,
) command.DeleteExpenseHandler {
	return &deleteExpenseHandler{
		expenseRepo:  expenseRepo,
		expenseCache: expenseCache,
		publisher:    publisher,
	}
}

func (h *deleteExpenseHandler) Handle(ctx context.Context, cmd command.DeleteExpense) (command.DeleteExpenseResult, error) {
	expense, err := h.expenseRepo.FindByID(ctx, cmd.ExpenseID)
	if err != nil {
		return command.DeleteExpenseResult{}, domainerror.ErrExpenseNotFound
	}

	if !expense.IsOwnedBy(cmd.Actor.UserID) && !cmd.Actor.IsSuperuser() {
		return command.DeleteExpenseResult{}, domainerror.ErrExpenseNotOwned
	}

	if err := h.expenseRepo.Delete(ctx, expense.ID()); err != nil {
		return command.DeleteExpenseResult{}, err
	}

	h.expenseCache.Delete(ctx, expense.ID())

	// Publish event
	_ = h.publisher.Publish(ctx, event.NewExpenseDeleted(expense.ID(), expense.UserID()))

	return command.DeleteExpenseResult{ExpenseID: expense.ID()}, nil
}
