package command

import (
	"context"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/0xsj/overwatch-finance/internal/domain/model"
)

// DeactivateUser soft-deletes an account. The row is kept so the
// account can later be purged, but the user can no longer
// authenticate.
type DeactivateUser struct {
	Actor  model.Actor
	UserID types.ID
}

func (c DeactivateUser) CommandName() string {
	return "finance.deactivate_user"
}

// DeactivateUserResult reports the deactivated account.
type DeactivateUserResult struct {
	UserID        types.ID
	DeactivatedAt types.Timestamp
}

// DeactivateUserHandler handles the DeactivateUser command.
type DeactivateUserHandler interface {
	Handle(ctx context.Context, cmd DeactivateUser) (DeactivateUserResult, error)
}
