package query

import (
	"context"

	domainerror "github.com/0xsj/overwatch-finance/internal/domain/error"
	"github.com/0xsj/overwatch-finance/internal/port/inbound/query"
	"github.com/0xsj/overwatch-finance/internal/port/outbound/cache"
	"github.com/0xsj/overwatch-finance/internal/port/outbound/repository"
)

// getUserHandler implements query.GetUserHandler.
type getUserHandler struct {
	userRepo  repository.UserRepository
	userCache cache.UserCache
}

// NewGetUserHandler creates a new GetUserHandler.
func NewGetUserHandler(
	userRepo repository.UserRepository,
	userCache cache.UserCache,
) query.GetUserHandler {
	return &getUserHandler{
		userRepo:  userRepo,
		userCache: userCache,
	}
}

func (h *getUserHandler) Handle(ctx context.Context, qry query.GetUser) (query.GetUserResult, error) {
	if qry.UserID.IsEmpty() {
		return query.GetUserResult{}, domainerror.ErrUserIDRequired
	}
	if !qry.Actor.CanActOn(qry.UserID) {
		return query.GetUserResult{}, domainerror.ErrAdminOnly
	}

	// Try cache first
	if cached, ok := h.userCache.Get(ctx, qry.UserID); ok {
		return query.GetUserResult{User: *cached}, nil
	}

	user, err := h.userRepo.FindByID(ctx, qry.UserID)
	if err != nil {
		return query.GetUserResult{}, domainerror.ErrUserNotFound
	}

	projection := user.Projection()
	h.userCache.Set(ctx, projection)

	return query.GetUserResult{User: projection}, nil
}
