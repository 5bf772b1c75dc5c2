package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/0xsj/overwatch-pkg/types"

	domainerror "github.com/0xsj/overwatch-finance/internal/domain/error"
	"github.com/0xsj/overwatch-finance/internal/port/inbound/command"
	"github.com/0xsj/overwatch-finance/internal/port/inbound/query"
)

// Categories

// ListCategories returns the categories visible to the caller.
func (h *Handler) ListCategories(c *gin.Context) {
	identity, ok := identityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": msgNotAuthenticated})
		return
	}

	result, err := h.listCategoriesHandler.Handle(c.Request.Context(), query.ListCategories{
		Actor: identity.Actor(),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": result.Categories})
}

type createCategoryRequest struct {
	Name   string `json:"name" binding:"required"`
	Global bool   `json:"global"`
}

// CreateCategory creates a category.
func (h *Handler) CreateCategory(c *gin.Context) {
	identity, ok := identityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": msgNotAuthenticated})
		return
	}

	var req createCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	result, err := h.createCategoryHandler.Handle(c.Request.Context(), command.CreateCategory{
		Actor:  identity.Actor(),
		Name:   req.Name,
		Global: req.Global,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"category": result.Category})
}

// DeleteCategory deletes a category.
func (h *Handler) DeleteCategory(c *gin.Context) {
	identity, ok := identityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": msgNotAuthenticated})
		return
	}

	categoryID, err := types.ParseID(c.Param("id"))
	if err != nil {
		writeError(c, domainerror.ErrCategoryIDRequired)
		return
	}

	result, err := h.deleteCategoryHandler.Handle(c.Request.Context(), command.DeleteCategory{
		Actor:      identity.Actor(),
		CategoryID: categoryID,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"category_id": result.CategoryID.String()})
}

// Expenses

// ListExpenses returns the caller's expenses.
func (h *Handler) ListExpenses(c *gin.Context) {
	identity, ok := identityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": msgNotAuthenticated})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	result, err := h.listExpensesHandler.Handle(c.Request.Context(), query.ListExpenses{
		Actor:  identity.Actor(),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expenses": result.Expenses, "total": result.TotalCount})
}

type recordExpenseRequest struct {
	CategoryID  string  `json:"category_id" binding:"required"`
	AmountCents int64   `json:"amount_cents" binding:"required,gt=0"`
	Description *string `json:"description"`
	IncurredAt  *int64  `json:"incurred_at"`
}

// RecordExpense records a spend.
func (h *Handler) RecordExpense(c *gin.Context) {
	identity, ok := identityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": msgNotAuthenticated})
		return
	}

	var req recordExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	categoryID, err := types.ParseID(req.CategoryID)
	if err != nil {
		writeError(c, domainerror.ErrCategoryIDRequired)
		return
	}

	result, err := h.recordExpenseHandler.Handle(c.Request.Context(), command.RecordExpense{
		Actor:       identity.Actor(),
		CategoryID:  categoryID,
		AmountCents: req.AmountCents,
		Description: toOptionalString(req.Description),
		IncurredAt:  unixToTimestamp(req.IncurredAt),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"expense": result.Expense})
}

// DeleteExpense deletes an expense.
func (h *Handler) DeleteExpense(c *gin.Context) {
	identity, ok := identityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": msgNotAuthenticated})
		return
	}

	expenseID, err := types.ParseID(c.Param("id"))
	if err != nil {
		writeError(c, domainerror.ErrExpenseNotFound)
		return
	}

	result, err := h.deleteExpenseHandler.Handle(c.Request.Context(), command.DeleteExpense{
		Actor:     identity.Actor(),
		ExpenseID: expenseID,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expense_id": result.ExpenseID.String()})
}
