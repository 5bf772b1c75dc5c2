package command

import (
	"context"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/0xsj/overwatch-finance/internal/domain/model"
)

// UpdateUser updates a user's profile. Users may update themselves;
// superusers may update anyone.
type UpdateUser struct {
	Actor  model.Actor
	UserID types.ID

	Username types.Optional[string]
	Email    types.Optional[string]
	Password types.Optional[string]
}

func (c UpdateUser) CommandName() string {
	return "finance.update_user"
}

// UpdateUserResult contains the updated account.
type UpdateUserResult struct {
	User model.UserProjection
}

// UpdateUserHandler handles the UpdateUser command.
type UpdateUserHandler interface {
	Handle(ctx context.Context, cmd UpdateUser) (UpdateUserResult, error)
}
