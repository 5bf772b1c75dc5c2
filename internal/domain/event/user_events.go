package event

import (
	"github.com/0xsj/overwatch-pkg/types"
)

// UserRegistered is emitted when a new account is created. A mailer
// worker subscribes to it to send the welcome email.
type UserRegistered struct {
	BaseEvent
	UserID   types.ID
	Username string
	Email    string
	Role     string
}

// NewUserRegistered creates a new UserRegistered event.
func NewUserRegistered(userID types.ID, username, email, role string) UserRegistered {
	return UserRegistered{
		BaseEvent: NewBaseEvent(EventTypeUserRegistered, userID, AggregateTypeUser),
		UserID:    userID,
		Username:  username,
		Email:     email,
		Role:      role,
	}
}

// UserUpdated is emitted when a user's profile is updated.
type UserUpdated struct {
	BaseEvent
	UserID        types.ID
	UpdatedFields []string
}

// NewUserUpdated creates a new UserUpdated event.
func NewUserUpdated(userID types.ID, updatedFields []string) UserUpdated {
	return UserUpdated{
		BaseEvent:     NewBaseEvent(EventTypeUserUpdated, userID, AggregateTypeUser),
		UserID:        userID,
		UpdatedFields: updatedFields,
	}
}

// UserDeactivated is emitted when an account is soft-deleted.
type UserDeactivated struct {
	BaseEvent
	UserID        types.ID
	DeactivatedBy types.ID
}

// NewUserDeactivated creates a new UserDeactivated event.
func NewUserDeactivated(userID, deactivatedBy types.ID) UserDeactivated {
	return UserDeactivated{
		BaseEvent:     NewBaseEvent(EventTypeUserDeactivated, userID, AggregateTypeUser),
		UserID:        userID,
		DeactivatedBy: deactivatedBy,
	}
}

// UserPurged is emitted when a deactivated account is hard-deleted.
type UserPurged struct {
	BaseEvent
	UserID   types.ID
	PurgedBy types.ID
}

// NewUserPurged creates a new UserPurged event.
func NewUserPurged(userID, purgedBy types.ID) UserPurged {
	return UserPurged{
		BaseEvent: NewBaseEvent(EventTypeUserPurged, userID, AggregateTypeUser),
		UserID:    userID,
		PurgedBy:  purgedBy,
	}
}

// AuthenticationSucceeded is emitted on successful login.
type AuthenticationSucceeded struct {
	BaseEvent
	UserID types.ID
	Email  string
}

// NewAuthenticationSucceeded creates a new AuthenticationSucceeded event.
func NewAuthenticationSucceeded(userID types.ID, email string) AuthenticationSucceeded {
	return AuthenticationSucceeded{
		BaseEvent: NewBaseEvent(EventTypeAuthenticationSucceeded, userID, AggregateTypeUser),
		UserID:    userID,
		Email:     email,
	}
}

// AuthenticationFailed is emitted when a login attempt fails.
type AuthenticationFailed struct {
	BaseEvent
	Email  string
	Reason string
}

// NewAuthenticationFailed creates a new AuthenticationFailed event.
func NewAuthenticationFailed(email, reason string) AuthenticationFailed {
	// Zero aggregate ID: there may be no account behind a failed attempt.
	return AuthenticationFailed{
		BaseEvent: NewBaseEvent(EventTypeAuthenticationFailed, types.ID(""), AggregateTypeUser),
		Email:     email,
		Reason:    reason,
	}
}

// SessionRevoked is emitted at logout, once the user's outstanding
// tokens have been denylisted.
type SessionRevoked struct {
	BaseEvent
	UserID types.ID
	Reason string
}

// NewSessionRevoked creates a new SessionRevoked event.
func NewSessionRevoked(userID types.ID, reason string) SessionRevoked {
	return SessionRevoked{
		BaseEvent: NewBaseEvent(EventTypeSessionRevoked, userID, AggregateTypeUser),
		UserID:    userID,
		Reason:    reason,
	}
}
