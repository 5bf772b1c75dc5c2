package model

// Role represents the capability level of a user account.
type Role string

const (
	RoleUser      Role = "user"
	RoleSuperuser Role = "superuser"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleSuperuser:
		return true
	default:
		return false
	}
}

// CanManageUsers reports whether the role may deactivate, purge or
// edit other users' accounts.
func (r Role) CanManageUsers() bool {
	return r == RoleSuperuser
}

// CanManageGlobalCategories reports whether the role may create or
// delete categories that are not owned by any single user.
func (r Role) CanManageGlobalCategories() bool {
	return r == RoleSuperuser
}
