package command

import (
	"context"
	"errors"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/0xsj/overwatch-finance/internal/app/service"
	domainerror "github.com/0xsj/overwatch-finance/internal/domain/error"
	"github.com/0xsj/overwatch-finance/internal/domain/event"
	"github.com/0xsj/overwatch-finance/internal/port/inbound/command"
	"github.com/0xsj/overwatch-finance/internal/port/outbound/cache"
	"github.com/0xsj/overwatch-finance/internal/port/outbound/messaging"
	"github.com/0xsj/overwatch-finance/internal/port/outbound/repository"
)

// updateUserHandler implements command.UpdateUserHandler.
type updateUserHandler struct {
	userRepo  repository.UserRepository
	userCache cache.UserCache
	hasher    service.PasswordHasher
	publisher messaging.EventPublisher
}

// NewUpdateUserHandler creates a new UpdateUserHandler.
func NewUpdateUserHandler(
	userRepo repository.UserRepository,
	userCache cache.UserCache,
	hasher service.PasswordHasher,
	publisher messaging.EventPublisher,
) command.UpdateUserHandler {
	return &updateUserHandler{
		userRepo:  userRepo,
		userCache: userCache,
		hasher:    hasher,
		publisher: publisher,
	}
}

func (h *updateUserHandler) Handle(ctx context.Context, cmd command.UpdateUser) (command.UpdateUserResult, error) {
	if cmd.UserID.IsEmpty() {
		return command.UpdateUserResult{}, domainerror.ErrUserIDRequired
	}
	if !cmd.Actor.CanActOn(cmd.UserID) {
		return command.UpdateUserResult{}, domainerror.ErrAdminOnly
	}

	user, err := h.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		return command.UpdateUserResult{}, domainerror.ErrUserNotFound
	}

	// Track updated fields
	var updatedFields []string

	if cmd.Username.IsPresent() {
		username := cmd.Username.MustGet()
		if user.Username() != username {
			if err := user.SetUsername(username); err != nil {
				return command.UpdateUserResult{}, err
			}
			updatedFields = append(updatedFields, "username")
		}
	}

	if cmd.Email.IsPresent() {
		email, err := types.NewEmail(cmd.Email.MustGet())
		if err != nil {
			return command.UpdateUserResult{}, err
		}
		if user.Email().String() != email.String() {
			user.SetEmail(email)
			updatedFields = append(updatedFields, "email")
		}
	}

	if cmd.Password.IsPresent() {
		hash, err := h.hasher.Hash(cmd.Password.MustGet())
		if err != nil {
			return command.UpdateUserResult{}, err
		}
		if err := user.SetPasswordHash(hash); err != nil {
			return command.UpdateUserResult{}, err
		}
		updatedFields = append(updatedFields, "password")
	}

	// If nothing changed, return early
	if len(updatedFields) == 0 {
		return command.UpdateUserResult{User: user.Projection()}, nil
	}

	if err := h.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return command.UpdateUserResult{}, domainerror.ErrEmailAlreadyRegistered
		}
		return command.UpdateUserResult{}, err
	}

	// Refresh cache
	projection := user.Projection()
	h.userCache.Set(ctx, projection)

	// Publish event
	_ = h.publisher.Publish(ctx, event.NewUserUpdated(user.ID(), updatedFields))

	return command.UpdateUserResult{User: projection}, nil
}
