package command_test

import (
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/0xsj/overwatch-finance/internal/app/service"
)

func mustTokenService(t *testing.T) service.TokenService {
	t.Helper()
	cfg := service.DefaultTokenConfig()
	cfg.SigningKey = []byte("test-signing-key-32-bytes-long!!")
	tokens, err := service.NewTokenService(cfg)
	if err != nil {
		t.Fatalf("failed to create token service: %v", err)
	}
	return tokens
}

func mockHasher(t *testing.T) service.PasswordHasher {
	t.Helper()
	return service.NewPasswordHasher(bcrypt.MinCost)
}

func someString(s string) types.Optional[string] {
	return types.Some(s)
}

func parseID(raw string) (types.ID, error) {
	return types.ParseID(raw)
}
