package command

import (
	"context"
	"errors"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/0xsj/overwatch-finance/internal/app/service"
	domainerror "github.com/0xsj/overwatch-finance/internal/domain/error"
	"github.com/0xsj/overwatch-finance/internal/domain/event"
	"github.com/0xsj/overwatch-finance/internal/domain/model"
	"github.com/0xsj/overwatch-finance/internal/port/inbound/command"
	"github.com/0xsj/overwatch-finance/internal/port/outbound/cache"
	"github.com/0xsj/overwatch-finance/internal/port/outbound/messaging"
	"github.com/0xsj/overwatch-finance/internal/port/outbound/repository"
)

// registerUserHandler implements command.RegisterUserHandler.
type registerUserHandler struct {
	userRepo  repository.UserRepository
	userCache cache.UserCache
	hasher    service.PasswordHasher
	publisher messaging.EventPublisher
}

// NewRegisterUserHandler creates a new RegisterUserHandler.
func NewRegisterUserHandler(
	userRepo repository.UserRepository,
	userCache cache.UserCache,
	hasher service.PasswordHasher,
	publisher messaging.EventPublisher,
) command.RegisterUserHandler {
	return &registerUserHandler{
		userRepo:  userRepo,
		userCache: userCache,
		hasher:    hasher,
		publisher: publisher,
	}
}

func (h *registerUserHandler) Handle(ctx context.Context, cmd command.RegisterUser) (command.RegisterUserResult, error) {
	email, err := types.NewEmail(cmd.Email)
	if err != nil {
		return command.RegisterUserResult{}, err
	}

	// Check if the email is already taken
	exists, err := h.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return command.RegisterUserResult{}, err
	}
	if exists {
		return command.RegisterUserResult{}, domainerror.ErrEmailAlreadyRegistered
	}

	hash, err := h.hasher.Hash(cmd.Password)
	if err != nil {
		return command.RegisterUserResult{}, err
	}

	// The very first account bootstraps the superuser
	count, err := h.userRepo.Count(ctx, repository.ListUsersParams{})
	if err != nil {
		return command.RegisterUserResult{}, err
	}
	role := model.RoleUser
	if count == 0 {
		role = model.RoleSuperuser
	}

	user, err := model.NewUser(cmd.Username, email, hash, role)
	if err != nil {
		return command.RegisterUserResult{}, err
	}

	if err := h.userRepo.Create(ctx, user); err != nil {
		// Lost a registration race on the unique email index
		if errors.Is(err, repository.ErrConflict) {
			return command.RegisterUserResult{}, domainerror.ErrEmailAlreadyRegistered
		}
		return command.RegisterUserResult{}, err
	}

	projection := user.Projection()
	h.userCache.Set(ctx, projection)

	// Publish event
	_ = h.publisher.Publish(ctx, event.NewUserRegistered(
		user.ID(), user.Username(), user.Email().String(), user.Role().String()))

	return command.RegisterUserResult{User: projection}, nil
}
