package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"centro/internal/infrastructure/auth"
	"centro/internal/shared/constants"
	"centro/internal/shared/logger"
	"centro/internal/shared/utils"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

// RequireAuth verifies the bearer token and copies the token scope into the
// request context. Handlers read the activity and organization from context,
// never from client-supplied parameters.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
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

		if claims.TokenType != auth.TokenTypeAccess {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid token type")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, claims.UserSID)
		c.Set(constants.ContextKeyUserRole, string(claims.Role))
		if claims.OrganizationID != nil {
			c.Set(constants.ContextKeyOrgID, *claims.OrganizationID)
		}
		if claims.ActivityID != nil {
			c.Set(constants.ContextKeyActivityID, *claims.ActivityID)
		}

		c.Next()
	}
}
