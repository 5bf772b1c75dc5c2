package command

import (
	"context"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/0xsj/overwatch-finance/internal/domain/model"
)

// Logout denylists the actor's outstanding tokens.
type Logout struct {
	Actor model.Actor
}

func (c Logout) CommandName() string {
	return "finance.logout"
}

// LogoutResult reports when the session was revoked.
type LogoutResult struct {
	RevokedAt types.Timestamp
}

// LogoutHandler handles the Logout command.
type LogoutHandler interface {
	Handle(ctx context.Context, cmd Logout) (LogoutResult, error)
}
