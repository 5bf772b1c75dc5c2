package model_test

import (
	"testing"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/0xsj/overwatch-finance/internal/domain/model"
)

func TestRole(t *testing.T) {
	t.Run("validity", func(t *testing.T) {
		if !model.RoleUser.IsValid() {
			t.Error("user role should be valid")
		}
		if !model.RoleSuperuser.IsValid() {
			t.Error("superuser role should be valid")
		}
		if model.Role("owner").IsValid() {
			t.Error("unknown role should be invalid")
		}
	})

	t.Run("only superuser manages users", func(t *testing.T) {
		if model.RoleUser.CanManageUsers() {
			t.Error("user role should not manage users")
		}
		if !model.RoleSuperuser.CanManageUsers() {
			t.Error("superuser role should manage users")
		}
	})

	t.Run("only superuser manages global categories", func(t *testing.T) {
		if model.RoleUser.CanManageGlobalCategories() {
			t.Error("user role should not manage global categories")
		}
		if !model.RoleSuperuser.CanManageGlobalCategories() {
			t.Error("superuser role should manage global categories")
		}
	})
}

func TestActor_CanActOn(t *testing.T) {
	selfID := types.NewID()
	otherID := types.NewID()

	t.Run("user can act on self", func(t *testing.T) {
		actor := model.Actor{UserID: selfID, Role: model.RoleUser}
		if !actor.CanActOn(selfID) {
			t.Error("actor should act on own account")
		}
	})

	t.Run("user cannot act on others", func(t *testing.T) {
		actor := model.Actor{UserID: selfID, Role: model.RoleUser}
		if actor.CanActOn(otherID) {
			t.Error("plain user should not act on another account")
		}
	})

	t.Run("superuser can act on anyone", func(t *testing.T) {
		actor := model.Actor{UserID: selfID, Role: model.RoleSuperuser}
		if !actor.CanActOn(otherID) {
			t.Error("superuser should act on any account")
		}
		if !actor.IsSuperuser() {
			t.Error("expected IsSuperuser true")
		}
	})
}
