package model

import (
	"github.com/0xsj/overwatch-pkg/types"
)

// Actor identifies the authenticated principal performing an operation.
type Actor struct {
	UserID types.ID
	Role   Role
}

// IsSuperuser reports whether the actor holds the superuser role.
func (a Actor) IsSuperuser() bool {
	return a.Role == RoleSuperuser
}

// CanActOn reports whether the actor may modify the given user's
// account. Users manage themselves; superusers manage anyone.
func (a Actor) CanActOn(userID types.ID) bool {
	return a.UserID == userID || a.Role.CanManageUsers()
}
