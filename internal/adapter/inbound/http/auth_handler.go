package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/0xsj/overwatch-finance/internal/port/inbound/command"
	"github.com/0xsj/overwatch-finance/internal/port/inbound/query"
)

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates a new account.
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	result, err := h.registerUserHandler.Handle(c.Request.Context(), command.RegisterUser{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": result.User})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials and returns a token.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	result, err := h.authenticateHandler.Handle(c.Request.Context(), command.Authenticate{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      result.Token,
		"expires_at": result.ExpiresAt.Time().Unix(),
		"user":       result.User,
	})
}

// Logout denylists the caller's outstanding tokens.
func (h *Handler) Logout(c *gin.Context) {
	identity, ok := identityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": msgNotAuthenticated})
		return
	}

	result, err := h.logoutHandler.Handle(c.Request.Context(), command.Logout{
		Actor: identity.Actor(),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"revoked_at": result.RevokedAt.Time().Unix()})
}

// Me returns the caller's own account.
func (h *Handler) Me(c *gin.Context) {
	identity, ok := identityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": msgNotAuthenticated})
		return
	}

	result, err := h.getUserHandler.Handle(c.Request.Context(), query.GetUser{
		Actor:  identity.Actor(),
		UserID: identity.UserID,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": result.User})
}

type updateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password"`
}

// UpdateMe updates the caller's own account.
func (h *Handler) UpdateMe(c *gin.Context) {
	identity, ok := identityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": msgNotAuthenticated})
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	result, err := h.updateUserHandler.Handle(c.Request.Context(), command.UpdateUser{
		Actor:    identity.Actor(),
		UserID:   identity.UserID,
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

// DeactivateMe soft-deletes the caller's own account.
func (h *Handler) DeactivateMe(c *gin.Context) {
	identity, ok := identityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": msgNotAuthenticated})
		return
	}

	result, err := h.deactivateUserHandler.Handle(c.Request.Context(), command.DeactivateUser{
		Actor:  identity.Actor(),
		UserID: identity.UserID,
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
