package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	infraauth "tracker/internal/infrastructure/auth"
	sharedAuth "tracker/internal/shared/auth"
	"tracker/internal/shared/logger"
	"tracker/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *infraauth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *infraauth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

// RequireAuth verifies the Bearer token and stores the resolved Actor in the
// request context. Handlers read it back with ActorFromContext and pass it
// into use cases explicitly; nothing below the HTTP layer touches the gin
// context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(sharedAuth.ContextKeyActor, sharedAuth.Actor{
			UserID: claims.UserID,
			Roles:  claims.Roles,
		})

		c.Next()
	}
}

// ActorFromContext returns the Actor stored by RequireAuth.
func ActorFromContext(c *gin.Context) (sharedAuth.Actor, bool) {
	value, exists := c.Get(sharedAuth.ContextKeyActor)
	if !exists {
		return sharedAuth.Actor{}, false
	}
	actor, ok := value.(sharedAuth.Actor)
	return actor, ok
}
