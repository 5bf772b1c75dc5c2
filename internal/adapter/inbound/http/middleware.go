package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/0xsj/overwatch-pkg/log"
	"github.com/0xsj/overwatch-pkg/types"

	"github.com/0xsj/overwatch-finance/internal/app/service"
	"github.com/0xsj/overwatch-finance/internal/domain/model"
	"github.com/0xsj/overwatch-finance/internal/port/outbound/cache"
	"github.com/0xsj/overwatch-finance/internal/port/outbound/repository"
)

// AuthGateConfig controls which paths the auth gate protects.
type AuthGateConfig struct {
	// PublicPaths are reachable without a token. "/" matches exactly;
	// every other entry matches itself and its subpaths.
	PublicPaths []string

	// AdminPaths require the superuser role. Entries match by prefix.
	AdminPaths []string
}

// DefaultAuthGateConfig returns the default gate configuration.
func DefaultAuthGateConfig() AuthGateConfig {
	return AuthGateConfig{
		PublicPaths: []string{"/", "/register", "/login", "/healthz"},
		AdminPaths:  []string{"/users"},
	}
}

// AuthGate authenticates every non-public request: it requires a
// Bearer token, validates the signature and expiry, rejects denylisted
// sessions, and resolves the caller's current role before admitting
// the request.
func AuthGate(
	cfg AuthGateConfig,
	tokens service.TokenService,
	denylist cache.SessionDenylist,
	userCache cache.UserCache,
	userRepo repository.UserRepository,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if isPublicPath(cfg.PublicPaths, path) {
			c.Next()
			return
		}

		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msgNotAuthenticated})
			return
		}

		claims, err := tokens.Validate(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msgInvalidToken})
			return
		}

		if denylist.IsRevoked(c.Request.Context(), claims.UserID) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msgInvalidToken})
			return
		}

		// A valid signature is not enough: the account behind it must
		// still exist and be active.
		role, ok := resolveRole(c, claims.UserID, userCache, userRepo)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msgInvalidToken})
			return
		}

		if isAdminPath(cfg.AdminPaths, path) && !role.CanManageUsers() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": msgAdminsOnly})
			return
		}

		setIdentity(c, Identity{
			UserID: claims.UserID,
			Email:  claims.Email,
			Role:   role,
			Token:  token,
		})
		c.Next()
	}
}

// RequestLogger logs one line per request.
func RequestLogger(logger log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request",
			log.String("method", c.Request.Method),
			log.String("path", c.Request.URL.Path),
			log.Any("status", c.Writer.Status()),
			log.Any("duration_ms", time.Since(start).Milliseconds()),
		)
	}
}

func resolveRole(c *gin.Context, userID types.ID, userCache cache.UserCache, userRepo repository.UserRepository) (model.Role, bool) {
	ctx := c.Request.Context()

	if cached, ok := userCache.Get(ctx, userID); ok {
		return model.Role(cached.Role), true
	}

	user, err := userRepo.FindByID(ctx, userID)
	if err != nil {
		return "", false
	}

	userCache.Set(ctx, user.Projection())
	return user.Role(), true
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// isPublicPath checks path against the public list. The root entry
// only ever matches the root itself; a bare prefix match on "/" would
// make every path public.
func isPublicPath(publicPaths []string, path string) bool {
	for _, p := range publicPaths {
		if p == "/" {
			if path == "/" {
				return true
			}
			continue
		}
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

func isAdminPath(adminPaths []string, path string) bool {
	for _, p := range adminPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}
