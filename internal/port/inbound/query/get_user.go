package query

import (
	"context"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/0xsj/overwatch-finance/internal/domain/model"
)

// GetUser retrieves a user by ID. Users may read themselves;
// superusers may read anyone.
type GetUser struct {
	Actor  model.Actor
	UserID types.ID
}

func (q GetUser) QueryName() string {
	return "finance.get_user"
}

// GetUserResult contains the user projection.
type GetUserResult struct {
	User model.UserProjection
}

// GetUserHandler handles the GetUser query.
type GetUserHandler interface {
	Handle(ctx context.Context, qry GetUser) (GetUserResult, error)
}
