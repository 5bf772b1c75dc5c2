package command

import (
	"context"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/0xsj/overwatch-finance/internal/app/service"
	domainerror "github.com/0xsj/overwatch-finance/internal/domain/error"
	"github.com/0xsj/overwatch-finance/internal/domain/event"
	"github.com/0xsj/overwatch-finance/internal/port/inbound/command"
	"github.com/0xsj/overwatch-finance/internal/port/outbound/cache"
	"github.com/0xsj/overwatch-finance/internal/port/outbound/messaging"
	"github.com/0xsj/overwatch-finance/internal/port/outbound/repository"
)

// authenticateHandler implements command.AuthenticateHandler.
type authenticateHandler struct {
	userRepo  repository.UserRepository
	userCache cache.UserCache
	denylist  cache.SessionDenylist
	hasher    service.PasswordHasher
	tokens    service.TokenService
	publisher messaging.EventPublisher
}

// NewAuthenticateHandler creates a new AuthenticateHandler.
func NewAuthenticateHandler(
	userRepo repository.UserRepository,
	userCache cache.UserCache,
	denylist cache.SessionDenylist,
	hasher service.PasswordHasher,
	tokens service.TokenService,
	publisher messaging.EventPublisher,
) command.AuthenticateHandler {
	return &authenticateHandler{
		userRepo:  userRepo,
		userCache: userCache,
		denylist:  denylist,
		hasher:    hasher,
		tokens:    tokens,
		publisher: publisher,
	}
}

func (h *authenticateHandler) Handle(ctx context.Context, cmd command.Authenticate) (command.AuthenticateResult, error) {
	if cmd.Password == "" {
		return command.AuthenticateResult{}, domainerror.ErrPasswordRequired
	}

	email, err := types.NewEmail(cmd.Email)
	if err != nil {
		return command.AuthenticateResult{}, domainerror.ErrInvalidCredentials
	}

	user, err := h.userRepo.FindByEmail(ctx, email)
	if err != nil {
		_ = h.publisher.Publish(ctx, event.NewAuthenticationFailed(cmd.Email, "unknown email"))
		return command.AuthenticateResult{}, domainerror.ErrInvalidCredentials
	}

	if err := user.CanAuthenticate(); err != nil {
		_ = h.publisher.Publish(ctx, event.NewAuthenticationFailed(cmd.Email, "account deactivated"))
		return command.AuthenticateResult{}, err
	}

	if !h.hasher.Compare(user.PasswordHash(), cmd.Password) {
		_ = h.publisher.Publish(ctx, event.NewAuthenticationFailed(cmd.Email, "bad password"))
		return command.AuthenticateResult{}, domainerror.ErrInvalidCredentials
	}

	token, expiresAt, err := h.tokens.Issue(user)
	if err != nil {
		return command.AuthenticateResult{}, err
	}

	// A fresh login supersedes any earlier logout
	h.denylist.Clear(ctx, user.ID())

	projection := user.Projection()
	h.userCache.Set(ctx, projection)

	// Publish event
	_ = h.publisher.Publish(ctx, event.NewAuthenticationSucceeded(user.ID(), user.Email().String()))

	return command.AuthenticateResult{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      projection,
	}, nil
}
