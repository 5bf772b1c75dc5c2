package service_test

import (
	"testing"
	"time"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/0xsj/overwatch-finance/internal/app/service"
	"github.com/0xsj/overwatch-finance/internal/domain/model"
)

func TestNewTokenService(t *testing.T) {
	t.Run("creates service with valid config", func(t *testing.T) {
		svc, err := service.NewTokenService(validTokenConfig())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if svc == nil {
			t.Fatal("expected non-nil service")
		}
	})

	t.Run("rejects empty signing key", func(t *testing.T) {
		cfg := validTokenConfig()
		cfg.SigningKey = nil

		_, err := service.NewTokenService(cfg)
		if err == nil {
			t.Fatal("expected error for empty signing key")
		}
	})

	t.Run("accepts the configured HS256 identifier", func(t *testing.T) {
		cfg := validTokenConfig()
		cfg.SigningAlgorithm = "HS256"

		if _, err := service.NewTokenService(cfg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("rejects an unknown signing algorithm", func(t *testing.T) {
		cfg := validTokenConfig()
		cfg.SigningAlgorithm = "none"

		_, err := service.NewTokenService(cfg)
		if err == nil {
			t.Fatal("expected error for unknown signing algorithm")
		}
	})
}

func TestTokenService_Issue(t *testing.T) {
	svc := mustNewTokenService(t)
	user := mustCreateUser(t)

	t.Run("issues valid token", func(t *testing.T) {
		token, expiresAt, err := svc.Issue(user)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if token == "" {
			t.Error("expected non-empty token")
		}
		if expiresAt.IsZero() {
			t.Error("expected non-zero expiration time")
		}
		if !expiresAt.Time().After(time.Now()) {
			t.Error("expiration should be in the future")
		}
	})

	t.Run("token carries subject and email", func(t *testing.T) {
		token, _, err := svc.Issue(user)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		claims, err := svc.Validate(token)
		if err != nil {
			t.Fatalf("failed to validate issued token: %v", err)
		}

		if claims.UserID != user.ID() {
			t.Errorf("UserID mismatch: got %s, want %s", claims.UserID, user.ID())
		}
		if claims.Email != user.Email().String() {
			t.Errorf("Email mismatch: got %s, want %s", claims.Email, user.Email().String())
		}
		if claims.ExpiresAt.IsZero() {
			t.Error("expected ExpiresAt to be set")
		}
	})
}

func TestTokenService_Validate(t *testing.T) {
	svc := mustNewTokenService(t)
	user := mustCreateUser(t)

	t.Run("rejects empty token", func(t *testing.T) {
		_, err := svc.Validate("")
		if err == nil {
			t.Fatal("expected error for empty token")
		}
	})

	t.Run("rejects malformed token", func(t *testing.T) {
		_, err := svc.Validate("not.a.valid.jwt")
		if err == nil {
			t.Fatal("expected error for malformed token")
		}
	})

	t.Run("rejects token signed with different key", func(t *testing.T) {
		otherCfg := validTokenConfig()
		otherCfg.SigningKey = []byte("another-signing-key-for-testing!")
		other, err := service.NewTokenService(otherCfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		token, _, err := other.Issue(user)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := svc.Validate(token); err == nil {
			t.Fatal("expected error for token signed with different key")
		}
	})

	t.Run("rejects token from different issuer", func(t *testing.T) {
		otherCfg := validTokenConfig()
		otherCfg.Issuer = "someone-else"
		other, err := service.NewTokenService(otherCfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		token, _, err := other.Issue(user)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := svc.Validate(token); err == nil {
			t.Fatal("expected error for wrong issuer")
		}
	})

	t.Run("rejects expired token", func(t *testing.T) {
		shortCfg := validTokenConfig()
		shortCfg.AccessTokenDuration = -time.Minute
		short, err := service.NewTokenService(shortCfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		token, _, err := short.Issue(user)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := svc.Validate(token); err == nil {
			t.Fatal("expected error for expired token")
		}
	})
}

// --- Helpers ---

func validTokenConfig() service.TokenConfig {
	cfg := service.DefaultTokenConfig()
	cfg.SigningKey = []byte("test-signing-key-32-bytes-long!!")
	return cfg
}

func mustNewTokenService(t *testing.T) service.TokenService {
	t.Helper()
	svc, err := service.NewTokenService(validTokenConfig())
	if err != nil {
		t.Fatalf("failed to create token service: %v", err)
	}
	return svc
}

func mustCreateUser(t *testing.T) *model.User {
	t.Helper()
	email, err := types.NewEmail("alice@example.com")
	if err != nil {
		t.Fatalf("failed to create email: %v", err)
	}
	user, err := model.NewUser("alice", email, "hash", model.RoleUser)
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}
