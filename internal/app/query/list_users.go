package query

import (
	"context"

	domainerror "github.com/0xsj/overwatch-finance/internal/domain/error"
	"github.com/0xsj/overwatch-finance/internal/domain/model"
	"github.com/0xsj/overwatch-finance/internal/port/inbound/query"
	"github.com/0xsj/overwatch-finance/internal/port/outbound/repository"
)

// listUsersHandler implements query.ListUsersHandler.
type listUsersHandler struct {
	userRepo repository.UserRepository
}

// NewListUsersHandler creates a new ListUsersHandler.
func NewListUsersHandler(userRepo repository.UserRepository) query.ListUsersHandler {
	return &listUsersHandler{userRepo: userRepo}
}

func (h *listUsersHandler) Handle(ctx context.Context, qry query.ListUsers) (query.ListUsersResult, error) {
	if !qry.Actor.Role.CanManageUsers() {
		return query.ListUsersResult{}, domainerror.ErrAdminOnly
	}

	params := repository.DefaultListUsersParams()
	if qry.Limit > 0 {
		params.Limit = qry.Limit
	}
	if qry.Offset > 0 {
		params.Offset = qry.Offset
	}
	params.Status = qry.Status

	users, err := h.userRepo.List(ctx, params)
	if err != nil {
		return query.ListUsersResult{}, err
	}

	total, err := h.userRepo.Count(ctx, params)
	if err != nil {
		return query.ListUsersResult{}, err
	}

	projections := make([]model.UserProjection, 0, len(users))
	for _, u := range users {
		projections = append(projections, u.Projection())
	}

	return query.ListUsersResult{
		Users:      projections,
		TotalCount: total,
	}, nil
}
