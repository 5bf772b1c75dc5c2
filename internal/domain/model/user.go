package model

import (
	"github.com/0xsj/overwatch-pkg/types"

	domainerror "github.com/0xsj/overwatch-finance/internal/domain/error"
)

// UserStatus represents the lifecycle state of a user account.
// Accounts move Active -> Deactivated -> purged; a purge removes the
// row entirely and is only permitted for deactivated accounts.
type UserStatus string

const (
	UserStatusActive      UserStatus = "active"
	UserStatusDeactivated UserStatus = "deactivated"
)

func (s UserStatus) String() string {
	return string(s)
}

func (s UserStatus) IsValid() bool {
	switch s {
	case UserStatusActive, UserStatusDeactivated:
		return true
	default:
		return false
	}
}

// User is the root aggregate for accounts.
type User struct {
	id            types.ID
	username      string
	email         types.Email
	passwordHash  string
	role          Role
	status        UserStatus
	deactivatedBy types.Optional[types.ID]
	createdAt     types.Timestamp
	updatedAt     types.Timestamp
}

// NewUser creates a new active User aggregate.
// The password must already be hashed by the credential verifier.
func NewUser(username string, email types.Email, passwordHash string, role Role) (*User, error) {
	if username == "" {
		return nil, domainerror.ErrUsernameRequired
	}
	if passwordHash == "" {
		return nil, domainerror.ErrPasswordRequired
	}
	if !role.IsValid() {
		role = RoleUser
	}

	now := types.Now()

	return &User{
		id:            types.NewID(),
		username:      username,
		email:         email,
		passwordHash:  passwordHash,
		role:          role,
		status:        UserStatusActive,
		deactivatedBy: types.None[types.ID](),
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// ReconstructUser creates a User from persisted data (bypasses validation).
// Used by the repository and cache adapters when loading.
func ReconstructUser(
	id types.ID,
	username string,
	email types.Email,
	passwordHash string,
	role Role,
	status UserStatus,
	deactivatedBy types.Optional[types.ID],
	createdAt types.Timestamp,
	updatedAt types.Timestamp,
) *User {
	return &User{
		id:            id,
		username:      username,
		email:         email,
		passwordHash:  passwordHash,
		role:          role,
		status:        status,
		deactivatedBy: deactivatedBy,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Getters

func (u *User) ID() types.ID                            { return u.id }
func (u *User) Username() string                        { return u.username }
func (u *User) Email() types.Email                      { return u.email }
func (u *User) PasswordHash() string                    { return u.passwordHash }
func (u *User) Role() Role                              { return u.role }
func (u *User) Status() UserStatus                      { return u.status }
func (u *User) DeactivatedBy() types.Optional[types.ID] { return u.deactivatedBy }
func (u *User) CreatedAt() types.Timestamp              { return u.createdAt }
func (u *User) UpdatedAt() types.Timestamp              { return u.updatedAt }

// Commands

func (u *User) SetUsername(username string) error {
	if username == "" {
		return domainerror.ErrUsernameRequired
	}
	u.username = username
	u.updatedAt = types.Now()
	return nil
}

func (u *User) SetEmail(email types.Email) {
	u.email = email
	u.updatedAt = types.Now()
}

func (u *User) SetPasswordHash(hash string) error {
	if hash == "" {
		return domainerror.ErrPasswordRequired
	}
	u.passwordHash = hash
	u.updatedAt = types.Now()
	return nil
}

// Deactivate soft-deletes the account, recording who did it.
func (u *User) Deactivate(by types.ID) error {
	if u.status == UserStatusDeactivated {
		return domainerror.ErrUserAlreadyDeactivated
	}
	u.status = UserStatusDeactivated
	u.deactivatedBy = types.Some(by)
	u.updatedAt = types.Now()
	return nil
}

// Queries

func (u *User) IsActive() bool {
	return u.status == UserStatusActive
}

func (u *User) IsDeactivated() bool {
	return u.status == UserStatusDeactivated
}

func (u *User) CanAuthenticate() error {
	if u.status == UserStatusDeactivated {
		return domainerror.ErrUserDeactivated
	}
	return nil
}

// CanBePurged returns nil only when the account has already been
// deactivated; hard deletion of a live account is rejected.
func (u *User) CanBePurged() error {
	if u.status != UserStatusDeactivated {
		return domainerror.ErrUserNotDeactivated
	}
	return nil
}

// Projection returns the cache/transport view of the user. The
// password hash and soft-delete bookkeeping are deliberately absent.
func (u *User) Projection() UserProjection {
	return UserProjection{
		ID:        u.id.String(),
		Username:  u.username,
		Email:     u.email.String(),
		Role:      u.role.String(),
		CreatedAt: u.createdAt.Time().Unix(),
		UpdatedAt: u.updatedAt.Time().Unix(),
	}
}

// UserProjection is the denormalized, JSON-serializable view of a
// user stored in the cache and returned over HTTP.
type UserProjection struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}
