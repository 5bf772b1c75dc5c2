package command

import (
	"context"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/0xsj/overwatch-finance/internal/domain/model"
)

// Authenticate verifies credentials and issues a signed token.
type Authenticate struct {
	Email    string
	Password string
}

func (c Authenticate) CommandName() string {
	return "finance.authenticate"
}

// AuthenticateResult contains the issued token and the account.
type AuthenticateResult struct {
	Token     string
	ExpiresAt types.Timestamp
	User      model.UserProjection
}

// AuthenticateHandler handles the Authenticate command.
type AuthenticateHandler interface {
	Handle(ctx context.Context, cmd Authenticate) (AuthenticateResult, error)
}
