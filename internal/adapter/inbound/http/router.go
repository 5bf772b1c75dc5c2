package http

import (
	"github.com/gin-gonic/gin"

	"github.com/0xsj/overwatch-pkg/log"
)

// NewRouter assembles the gin engine: recovery, request logging, the
// auth gate, then the routes.
func NewRouter(handler *Handler, gate gin.HandlerFunc, logger log.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(logger))
	router.Use(gate)

	// Public
	router.GET("/", handler.Root)
	router.GET("/healthz", handler.Root)
	router.POST("/register", handler.Register)
	router.POST("/login", handler.Login)

	// Session
	router.POST("/logout", handler.Logout)

	// Own account
	router.GET("/me", handler.Me)
	router.PUT("/me", handler.UpdateMe)
	router.DELETE("/me", handler.DeactivateMe)

	// Admin user management
	router.GET("/users", handler.ListUsers)
	router.GET("/users/:id", handler.GetUser)
	router.PUT("/users/:id", handler.UpdateUser)
	router.DELETE("/users/:id", handler.DeactivateUser)
	router.DELETE("/users/:id/purge", handler.PurgeUser)

	// Categories
	router.GET("/categories", handler.ListCategories)
	router.POST("/categories", handler.CreateCategory)
	router.DELETE("/categories/:id", handler.DeleteCategory)

	// Expenses
	router.GET("/expenses", handler.ListExpenses)
	router.POST("/expenses", handler.RecordExpense)
	router.DELETE("/expenses/:id", handler.DeleteExpense)

	return router
}
