package command

import (
	"context"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/0xsj/overwatch-finance/internal/domain/model"
)

// PurgeUser permanently removes a deactivated account and its
// expenses. Fails if the account is still active.
type PurgeUser struct {
	Actor  model.Actor
	UserID types.ID
}

func (c PurgeUser) CommandName() string {
	return "finance.purge_user"
}

// PurgeUserResult reports the purged account.
type PurgeUserResult struct {
	UserID types.ID
}

// PurgeUserHandler handles the PurgeUser command.
type PurgeUserHandler interface {
	Handle(ctx context.Context, cmd PurgeUser) (PurgeUserResult, error)
}
