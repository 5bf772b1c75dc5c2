package error

import (
	"github.com/0xsj/overwatch-pkg/errors"
)

// Domain error codes
const (
	// User errors
	CodeUserNotFound           errors.Code = "USER_NOT_FOUND"
	CodeEmailAlreadyRegistered errors.Code = "EMAIL_ALREADY_REGISTERED"
	CodeUserIDRequired         errors.Code = "USER_ID_REQUIRED"
	CodeUsernameRequired       errors.Code = "USERNAME_REQUIRED"
	CodeUserAlreadyDeactivated errors.Code = "USER_ALREADY_DEACTIVATED"
	CodeUserNotDeactivated     errors.Code = "USER_NOT_DEACTIVATED"
	CodeUserDeactivated        errors.Code = "USER_DEACTIVATED"

	// Credential errors
	CodeInvalidCredentials errors.Code = "INVALID_CREDENTIALS"
	CodePasswordRequired   errors.Code = "PASSWORD_REQUIRED"

	// Token / session errors
	CodeTokenInvalid   errors.Code = "TOKEN_INVALID"
	CodeSessionRevoked errors.Code = "SESSION_REVOKED"

	// Authorization errors
	CodeAdminOnly errors.Code = "ADMIN_ONLY"

	// Category errors
	CodeCategoryNotFound     errors.Code = "CATEGORY_NOT_FOUND"
	CodeCategoryNameRequired errors.Code = "CATEGORY_NAME_REQUIRED"
	CodeCategoryIDRequired   errors.Code = "CATEGORY_ID_REQUIRED"
	CodeCategoryInUse        errors.Code = "CATEGORY_IN_USE"

	// Expense errors
	CodeExpenseNotFound      errors.Code = "EXPENSE_NOT_FOUND"
	CodeExpenseAmountInvalid errors.Code = "EXPENSE_AMOUNT_INVALID"
	CodeExpenseNotOwned      errors.Code = "EXPENSE_NOT_OWNED"
)

// User errors
var (
	ErrUserNotFound = errors.New(errors.KindNotFound, CodeUserNotFound, "user not found")

	ErrEmailAlreadyRegistered = errors.New(errors.KindConflict, CodeEmailAlreadyRegistered, "email already registered")

	ErrUserIDRequired = errors.New(errors.KindValidation, CodeUserIDRequired, "user ID is required")

	ErrUsernameRequired = errors.New(errors.KindValidation, CodeUsernameRequired, "username is required")

	ErrUserAlreadyDeactivated = errors.New(errors.KindDomain, CodeUserAlreadyDeactivated, "user is already deactivated")

	ErrUserNotDeactivated = errors.New(errors.KindConflict, CodeUserNotDeactivated, "user must be deactivated before it can be purged")

	ErrUserDeactivated = errors.New(errors.KindUnauthorized, CodeUserDeactivated, "user account is deactivated")
)

// Credential errors
var (
	ErrInvalidCredentials = errors.New(errors.KindUnauthorized, CodeInvalidCredentials, "invalid email or password")

	ErrPasswordRequired = errors.New(errors.KindValidation, CodePasswordRequired, "password is required")
)

// Token / session errors
var (
	ErrTokenInvalid = errors.New(errors.KindUnauthorized, CodeTokenInvalid, "token is invalid")

	ErrSessionRevoked = errors.New(errors.KindUnauthorized, CodeSessionRevoked, "session has been revoked")
)

// Authorization errors
var (
	ErrAdminOnly = errors.New(errors.KindForbidden, CodeAdminOnly, "this action requires the superuser role")
)

// Category errors
var (
	ErrCategoryNotFound = errors.New(errors.KindNotFound, CodeCategoryNotFound, "category not found")

	ErrCategoryNameRequired = errors.New(errors.KindValidation, CodeCategoryNameRequired, "category name is required")

	ErrCategoryIDRequired = errors.New(errors.KindValidation, CodeCategoryIDRequired, "category ID is required")

	ErrCategoryInUse = errors.New(errors.KindConflict, CodeCategoryInUse, "category has expenses recorded against it")
)

// Expense errors
var (
	ErrExpenseNotFound = errors.New(errors.KindNotFound, CodeExpenseNotFound, "expense not found")

	ErrExpenseAmountInvalid = errors.New(errors.KindValidation, CodeExpenseAmountInvalid, "expense amount must be positive")

	ErrExpenseNotOwned = errors.New(errors.KindForbidden, CodeExpenseNotOwned, "expense belongs to another user")
)

// Helper functions

func UserNotFound(id string) *errors.Error {
	return errors.NotFoundf("user %s not found", id)
}

func CategoryNotFound(id string) *errors.Error {
	return errors.NotFoundf("category %s not found", id)
}

func ExpenseNotFound(id string) *errors.Error {
	return errors.NotFoundf("expense %s not found", id)
}
