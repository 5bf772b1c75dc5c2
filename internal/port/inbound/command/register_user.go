package command

import (
	"context"

	"github.com/0xsj/overwatch-finance/internal/domain/model"
)

// RegisterUser creates a new account. The first account registered
// becomes the superuser; every later account gets the user role.
type RegisterUser struct {
	Username string
	Email    string
	Password string
}

func (c RegisterUser) CommandName() string {
	return "finance.register_user"
}

// RegisterUserResult contains the created account.
type RegisterUserResult struct {
	User model.UserProjection
}

// RegisterUserHandler handles the RegisterUser command.
type RegisterUserHandler interface {
	Handle(ctx context.Context, cmd RegisterUser) (RegisterUserResult, error)
}
