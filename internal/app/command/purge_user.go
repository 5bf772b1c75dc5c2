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

// purgeUserHandler implements command.PurgeUserHandler.
type purgeUserHandler struct {
	userRepo      repository.UserRepository
	expenseRepo   repository.ExpenseRepository
	userCache     cache.UserCache
	categoryCache cache.CategoryCache
	expenseCache  cache.ExpenseCache
	publisher     messaging.EventPublisher
}

// NewPurgeUserHandler creates a new PurgeUserHandler.
func NewPurgeUserHandler(
	userRepo repository.UserRepository,
	expenseRepo repository.ExpenseRepository,
	userCache cache.UserCache,
	categoryCache cache.CategoryCache,
	expenseCache cache.ExpenseCache,
	publisher messaging.EventPublisher,
) command.PurgeUserHandler {
	return &purgeUserHandler{
		userRepo:      userRepo,
		expenseRepo:   expenseRepo,
		userCache:     userCache,
		categoryCache: categoryCache,
		expenseCache:  expenseCache,
		publisher:     publisher,
	}
}

func (h *purgeUserHandler) Handle(ctx context.Context, cmd command.PurgeUser) (command.PurgeUserResult, error) {
	if cmd.UserID.IsEmpty() {
		return command.PurgeUserResult{}, domainerror.ErrUserIDRequired
	}
	if !cmd.Actor.CanActOn(cmd.UserID) {
		return command.PurgeUserResult{}, domainerror.ErrAdminOnly
	}

	// Deactivated rows are invisible to FindByID, so look past status
	user, err := h.userRepo.FindByIDAnyStatus(ctx, cmd.UserID)
	if err != nil {
		return command.PurgeUserResult{}, domainerror.ErrUserNotFound
	}

	if err := user.CanBePurged(); err != nil {
		return command.PurgeUserResult{}, err
	}

	// Expenses first so the FK to users never dangles
	if err := h.expenseRepo.DeleteByUser(ctx, user.ID()); err != nil {
		return command.PurgeUserResult{}, err
	}
	if err := h.userRepo.Delete(ctx, user.ID()); err != nil {
		return command.PurgeUserResult{}, err
	}

	// Invalidate cache. Private categories went with the user row, so
	// their projections and the per-user index go too.
	h.userCache.Delete(ctx, user.ID())
	h.categoryCache.DeleteByOwner(ctx, user.ID())
	h.expenseCache.DeleteByUser(ctx, user.ID())

	// Publish event
	_ = h.publisher.Publish(ctx, event.NewUserPurged(user.ID(), cmd.Actor.UserID))

	return command.PurgeUserResult{UserID: user.ID()}, nil
}
