package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/0xsj/overwatch-finance/internal/domain/error"
)

// Messages used by the auth gate. Kept stable so clients can match on
// them.
const (
	msgNotAuthenticated = "Unauthorized: Not Authenticated"
	msgInvalidToken     = "Unauthorized: Invalid Token"
	msgAdminsOnly       = "Forbidden: Admins Only"
)

// writeError maps domain errors to HTTP status codes. Bodies carry a
// single "message" field.
func writeError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(statusForError(err), gin.H{"message": err.Error()})
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, domainerror.ErrUserNotFound),
		errors.Is(err, domainerror.ErrCategoryNotFound),
		errors.Is(err, domainerror.ErrExpenseNotFound):
		return http.StatusNotFound

	case errors.Is(err, domainerror.ErrEmailAlreadyRegistered),
		errors.Is(err, domainerror.ErrUserAlreadyDeactivated),
		errors.Is(err, domainerror.ErrUserNotDeactivated),
		errors.Is(err, domainerror.ErrCategoryInUse):
		return http.StatusConflict

	case errors.Is(err, domainerror.ErrUserIDRequired),
		errors.Is(err, domainerror.ErrUsernameRequired),
		errors.Is(err, domainerror.ErrPasswordRequired),
		errors.Is(err, domainerror.ErrCategoryNameRequired),
		errors.Is(err, domainerror.ErrCategoryIDRequired),
		errors.Is(err, domainerror.ErrExpenseAmountInvalid):
		return http.StatusBadRequest

	case errors.Is(err, domainerror.ErrInvalidCredentials),
		errors.Is(err, domainerror.ErrUserDeactivated),
		errors.Is(err, domainerror.ErrTokenInvalid),
		errors.Is(err, domainerror.ErrSessionRevoked):
		return http.StatusUnauthorized

	case errors.Is(err, domainerror.ErrAdminOnly),
		errors.Is(err, domainerror.ErrExpenseNotOwned):
		return http.StatusForbidden

	default:
		return http.StatusInternalServerError
	}
}
