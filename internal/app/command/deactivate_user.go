package command

import (
	"context"
	"time"

	"github.com/0xsj/overwatch-pkg/types"

	domainerror "github.com/0xsj/overwatch-finance/internal/domain/error"
	"github.com/0xsj/overwatch-finance/internal/domain/event"
	"github.com/0xsj/overwatch-finance/internal/port/inbound/command"
	"github.com/0xsj/overwatch-finance/internal/port/outbound/cache"
	"github.com/0xsj/overwatch-finance/internal/port/outbound/messaging"
	"github.com/0xsj/overwatch-finance/internal/port/outbound/repository"
)

// deactivateUserHandler implements command.DeactivateUserHandler.
type deactivateUserHandler struct {
	userRepo    repository.UserRepository
	userCache   cache.UserCache
	denylist    cache.SessionDenylist
	denylistTTL time.Duration
	publisher   messaging.EventPublisher
}

// NewDeactivateUserHandler creates a new DeactivateUserHandler.
func NewDeactivateUserHandler(
	userRepo repository.UserRepository,
	userCache cache.UserCache,
	denylist cache.SessionDenylist,
	denylistTTL time.Duration,
	publisher messaging.EventPublisher,
) command.DeactivateUserHandler {
	return &deactivateUserHandler{
		userRepo:    userRepo,
		userCache:   userCache,
		denylist:    denylist,
		denylistTTL: denylistTTL,
		publisher:   publisher,
	}
}

func (h *deactivateUserHandler) Handle(ctx context.Context, cmd command.DeactivateUser) (command.DeactivateUserResult, error) {
	if cmd.UserID.IsEmpty() {
		return command.DeactivateUserResult{}, domainerror.ErrUserIDRequired
	}
	if !cmd.Actor.CanActOn(cmd.UserID) {
		return command.DeactivateUserResult{}, domainerror.ErrAdminOnly
	}

	user, err := h.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		return command.DeactivateUserResult{}, domainerror.ErrUserNotFound
	}

	if err := user.Deactivate(cmd.Actor.UserID); err != nil {
		return command.DeactivateUserResult{}, err
	}

	if err := h.userRepo.Update(ctx, user); err != nil {
		return command.DeactivateUserResult{}, err
	}

	// Invalidate cache and kill outstanding sessions
	h.userCache.Delete(ctx, user.ID())
	h.denylist.Revoke(ctx, user.ID(), h.denylistTTL)

	// Publish event
	_ = h.publisher.Publish(ctx, event.NewUserDeactivated(user.ID(), cmd.Actor.UserID))

	return command.DeactivateUserResult{
		UserID:        user.ID(),
		DeactivatedAt: types.Now(),
	}, nil
}
