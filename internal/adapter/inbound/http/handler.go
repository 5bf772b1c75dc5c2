package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/0xsj/overwatch-pkg/types"

	"github.com/0xsj/overwatch-finance/internal/port/inbound/command"
	"github.com/0xsj/overwatch-finance/internal/port/inbound/query"
)

// Handler serves the HTTP API.
type Handler struct {
	// Command handlers
	registerUserHandler   command.RegisterUserHandler
	authenticateHandler   command.AuthenticateHandler
	logoutHandler         command.LogoutHandler
	updateUserHandler     command.UpdateUserHandler
	deactivateUserHandler command.DeactivateUserHandler
	purgeUserHandler      command.PurgeUserHandler
	createCategoryHandler command.CreateCategoryHandler
	deleteCategoryHandler command.DeleteCategoryHandler
	recordExpenseHandler  command.RecordExpenseHandler
	deleteExpenseHandler  command.DeleteExpenseHandler

	// Query handlers
	getUserHandler        query.GetUserHandler
	listUsersHandler      query.ListUsersHandler
	listCategoriesHandler query.ListCategoriesHandler
	listExpensesHandler   query.ListExpensesHandler
}

// HandlerConfig holds all the handlers needed by the HTTP handler.
type HandlerConfig struct {
	RegisterUserHandler   command.RegisterUserHandler
	AuthenticateHandler   command.AuthenticateHandler
	LogoutHandler         command.LogoutHandler
	UpdateUserHandler     command.UpdateUserHandler
	DeactivateUserHandler command.DeactivateUserHandler
	PurgeUserHandler      command.PurgeUserHandler
	CreateCategoryHandler command.CreateCategoryHandler
	DeleteCategoryHandler command.DeleteCategoryHandler
	RecordExpenseHandler  command.RecordExpenseHandler
	DeleteExpenseHandler  command.DeleteExpenseHandler

	GetUserHandler        query.GetUserHandler
	ListUsersHandler      query.ListUsersHandler
	ListCategoriesHandler query.ListCategoriesHandler
	ListExpensesHandler   query.ListExpensesHandler
}

// NewHandler creates a new HTTP handler.
func NewHandler(cfg HandlerConfig) *Handler {
	return &Handler{
		registerUserHandler:   cfg.RegisterUserHandler,
		authenticateHandler:   cfg.AuthenticateHandler,
		logoutHandler:         cfg.LogoutHandler,
		updateUserHandler:     cfg.UpdateUserHandler,
		deactivateUserHandler: cfg.DeactivateUserHandler,
		purgeUserHandler:      cfg.PurgeUserHandler,
		createCategoryHandler: cfg.CreateCategoryHandler,
		deleteCategoryHandler: cfg.DeleteCategoryHandler,
		recordExpenseHandler:  cfg.RecordExpenseHandler,
		deleteExpenseHandler:  cfg.DeleteExpenseHandler,
		getUserHandler:        cfg.GetUserHandler,
		listUsersHandler:      cfg.ListUsersHandler,
		listCategoriesHandler: cfg.ListCategoriesHandler,
		listExpensesHandler:   cfg.ListExpensesHandler,
	}
}

// Root reports liveness.
func (h *Handler) Root(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok", "service": "overwatch-finance"})
}

// Request helpers

func toOptionalString(s *string) types.Optional[string] {
	if s == nil {
		return types.None[string]()
	}
	return types.Some(*s)
}

func unixToTimestamp(v *int64) types.Timestamp {
	if v == nil {
		return types.Timestamp{}
	}
	return types.FromTime(time.Unix(*v, 0))
}
