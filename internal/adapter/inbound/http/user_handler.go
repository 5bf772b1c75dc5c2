package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/0xsj/overwatch-pkg/types"

	domainerror "github.com/0xsj/overwatch-finance/internal/domain/error"
	"github.com/0xsj/overwatch-finance/internal/domain/model"
	"github.com/0xsj/overwatch-finance/internal/port/inbound/command"
	"github.com/0xsj/overwatch-finance/internal/port/inbound/query"
)

// Admin user management. The auth gate already enforces the superuser
// role for everything under /users.

// ListUsers lists accounts with pagination.
func (h *Handler) ListUsers(c *gin.Context) {
	identity, ok := identityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": msgNotAuthenticated})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	var status *model.UserStatus
	if s := c.Query("status"); s != "" {
		st := model.UserStatus(s)
		if !st.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid status filter"})
			return
		}
		status = &st
	}

	result, err := h.listUsersHandler.Handle(c.Request.Context(), query.ListUsers{
		Actor:  identity.Actor(),
		Limit:  limit,
		Offset: offset,
		Status: status,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": result.Users, "total": result.TotalCount})
}

// GetUser returns a single account.
func (h *Handler) GetUser(c *gin.Context) {
	identity, ok := identityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": msgNotAuthenticated})
		return
	}

	userID, err := types.ParseID(c.Param("id"))
	if err != nil {
		writeError(c, domainerror.ErrUserIDRequired)
		return
	}

	result, err := h.getUserHandler.Handle(c.Request.Context(), query.GetUser{
		Actor:  identity.Actor(),
		UserID: userID,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": result.User})
}

// UpdateUser updates another account.
func (h *Handler) UpdateUser(c *gin.Context) {
	identity, ok := identityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": msgNotAuthenticated})
		return
	}

	userID, err := types.ParseID(c.Param("id"))
	if err != nil {
		writeError(c, domainerror.ErrUserIDRequired)
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	result, err := h.updateUserHandler.Handle(c.Request.Context(), command.UpdateUser{
		Actor:    identity.Actor(),
		UserID:   userID,
		Username: toOptionalString(req.Username),
		Email:    toOptionalString(req.Email),
		Password: toOptionalString(req.Password),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": result.User})
}

// DeactivateUser soft-deletes an account.
func (h *Handler) DeactivateUser(c *gin.Context) {
	identity, ok := identityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": msgNotAuthenticated})
		return
	}

	userID, err := types.ParseID(c.Param("id"))
	if err != nil {
		writeError(c, domainerror.ErrUserIDRequired)
		return
	}

	result, err := h.deactivateUserHandler.Handle(c.Request.Context(), command.DeactivateUser{
		Actor:  identity.Actor(),
		UserID: userID,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user_id":        result.UserID.String(),
		"deactivated_at": result.DeactivatedAt.Time().Unix(),
	})
}

// PurgeUser permanently removes a deactivated account.
func (h *Handler) PurgeUser(c *gin.Context) {
	identity, ok := identityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": msgNotAuthenticated})
		return
	}

	userID, err := types.ParseID(c.Param("id"))
	if err != nil {
		writeError(c, domainerror.ErrUserIDRequired)
		return
	}

	result, err := h.purgeUserHandler.Handle(c.Request.Context(), command.PurgeUser{
		Actor:  identity.Actor(),
		UserID: userID,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user_id": result.UserID.String(), "purged": true})
}
