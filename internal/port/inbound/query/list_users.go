package query

import (
	"context"

	"github.com/0xsj/overwatch-finance/internal/domain/model"
)

// ListUsers retrieves users with pagination. Superuser only.
type ListUsers struct {
	Actor  model.Actor
	Limit  int
	Offset int
	Status *model.UserStatus
}

func (q ListUsers) QueryName() string {
	return "finance.list_users"
}

// ListUsersResult contains the users and pagination info.
type ListUsersResult struct {
	Users      []model.UserProjection
	TotalCount int64
}

// ListUsersHandler handles the ListUsers query.
type ListUsersHandler interface {
	Handle(ctx context.Context, qry ListUsers) (ListUsersResult, error)
}
