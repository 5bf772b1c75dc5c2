package model_test

import (
	"testing"

	"github.com/0xsj/overwatch-pkg/types"

	domainerror "github.com/0xsj/overwatch-finance/internal/domain/error"
	"github.com/0xsj/overwatch-finance/internal/domain/model"
)

func TestNewUser(t *testing.T) {
	t.Run("creates valid user", func(t *testing.T) {
		email := mustEmail(t, "alice@example.com")

		user, err := model.NewUser("alice", email, "hash", model.RoleUser)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if user.ID().IsEmpty() {
			t.Error("expected non-empty ID")
		}
		if user.Username() != "alice" {
			t.Errorf("username mismatch: got %s", user.Username())
		}
		if user.Email().String() != "alice@example.com" {
			t.Errorf("email mismatch: got %s", user.Email().String())
		}
		if user.Role() != model.RoleUser {
			t.Errorf("expected role user, got %s", user.Role())
		}
		if user.Status() != model.UserStatusActive {
			t.Errorf("expected status active, got %s", user.Status())
		}
		if !user.IsActive() {
			t.Error("new user should be active")
		}
		if user.DeactivatedBy().IsPresent() {
			t.Error("new user should have no deactivator")
		}
		if user.CreatedAt().IsZero() {
			t.Error("CreatedAt should be set")
		}
	})

	t.Run("rejects empty username", func(t *testing.T) {
		email := mustEmail(t, "alice@example.com")

		_, err := model.NewUser("", email, "hash", model.RoleUser)
		if err != domainerror.ErrUsernameRequired {
			t.Errorf("expected ErrUsernameRequired, got: %v", err)
		}
	})

	t.Run("rejects empty password hash", func(t *testing.T) {
		email := mustEmail(t, "alice@example.com")

		_, err := model.NewUser("alice", email, "", model.RoleUser)
		if err != domainerror.ErrPasswordRequired {
			t.Errorf("expected ErrPasswordRequired, got: %v", err)
		}
	})

	t.Run("defaults invalid role to user", func(t *testing.T) {
		email := mustEmail(t, "alice@example.com")

		user, err := model.NewUser("alice", email, "hash", model.Role("owner"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Role() != model.RoleUser {
			t.Errorf("expected role user, got %s", user.Role())
		}
	})
}

func TestUser_Deactivate(t *testing.T) {
	t.Run("deactivates active user", func(t *testing.T) {
		user := mustUser(t, "alice")
		by := types.NewID()

		if err := user.Deactivate(by); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !user.IsDeactivated() {
			t.Error("user should be deactivated")
		}
		if !user.DeactivatedBy().IsPresent() {
			t.Fatal("deactivator should be recorded")
		}
		if user.DeactivatedBy().MustGet() != by {
			t.Errorf("deactivator mismatch: got %s, want %s", user.DeactivatedBy().MustGet(), by)
		}
	})

	t.Run("rejects double deactivation", func(t *testing.T) {
		user := mustUser(t, "alice")
		_ = user.Deactivate(types.NewID())

		err := user.Deactivate(types.NewID())
		if err != domainerror.ErrUserAlreadyDeactivated {
			t.Errorf("expected ErrUserAlreadyDeactivated, got: %v", err)
		}
	})
}

func TestUser_CanAuthenticate(t *testing.T) {
	t.Run("active user can authenticate", func(t *testing.T) {
		user := mustUser(t, "alice")

		if err := user.CanAuthenticate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("deactivated user cannot authenticate", func(t *testing.T) {
		user := mustUser(t, "alice")
		_ = user.Deactivate(types.NewID())

		err := user.CanAuthenticate()
		if err != domainerror.ErrUserDeactivated {
			t.Errorf("expected ErrUserDeactivated, got: %v", err)
		}
	})
}

func TestUser_CanBePurged(t *testing.T) {
	t.Run("active user cannot be purged", func(t *testing.T) {
		user := mustUser(t, "alice")

		err := user.CanBePurged()
		if err != domainerror.ErrUserNotDeactivated {
			t.Errorf("expected ErrUserNotDeactivated, got: %v", err)
		}
	})

	t.Run("deactivated user can be purged", func(t *testing.T) {
		user := mustUser(t, "alice")
		_ = user.Deactivate(types.NewID())

		if err := user.CanBePurged(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestUser_Projection(t *testing.T) {
	user := mustUser(t, "alice")

	p := user.Projection()

	if p.ID != user.ID().String() {
		t.Errorf("ID mismatch: got %s, want %s", p.ID, user.ID().String())
	}
	if p.Username != "alice" {
		t.Errorf("username mismatch: got %s", p.Username)
	}
	if p.Email != user.Email().String() {
		t.Errorf("email mismatch: got %s", p.Email)
	}
	if p.Role != user.Role().String() {
		t.Errorf("role mismatch: got %s", p.Role)
	}
	if p.CreatedAt == 0 {
		t.Error("CreatedAt should be set")
	}
}

func TestUser_Setters(t *testing.T) {
	t.Run("rejects empty username", func(t *testing.T) {
		user := mustUser(t, "alice")

		if err := user.SetUsername(""); err != domainerror.ErrUsernameRequired {
			t.Errorf("expected ErrUsernameRequired, got: %v", err)
		}
	})

	t.Run("rejects empty password hash", func(t *testing.T) {
		user := mustUser(t, "alice")

		if err := user.SetPasswordHash(""); err != domainerror.ErrPasswordRequired {
			t.Errorf("expected ErrPasswordRequired, got: %v", err)
		}
	})

	t.Run("updates username", func(t *testing.T) {
		user := mustUser(t, "alice")

		if err := user.SetUsername("alice2"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Username() != "alice2" {
			t.Errorf("username mismatch: got %s", user.Username())
		}
	})
}

// --- Helpers ---

func mustEmail(t *testing.T, raw string) types.Email {
	t.Helper()
	email, err := types.NewEmail(raw)
	if err != nil {
		t.Fatalf("failed to create email: %v", err)
	}
	return email
}

func mustUser(t *testing.T, username string) *model.User {
	t.Helper()
	email := mustEmail(t, username+"@example.com")
	user, err := model.NewUser(username, email, "hash", model.RoleUser)
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}
