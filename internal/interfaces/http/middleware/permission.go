package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"centro/internal/infrastructure/permission"
	"centro/internal/shared/constants"
	"centro/internal/shared/logger"
	"centro/internal/shared/utils"
)

type PermissionMiddleware struct {
	enforcer *permission.Enforcer
	logger   logger.Interface
}

func NewPermissionMiddleware(enforcer *permission.Enforcer, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		enforcer: enforcer,
		logger:   logger,
	}
}

// RequirePermission checks the caller's role against the policy store. The
// role comes from the verified token, so impersonation never changes the
// outcome here: route guards always see the staff member's own role.
func (m *PermissionMiddleware) RequirePermission(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(constants.ContextKeyUserRole)
		if role == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
			c.Abort()
			return
		}

		allowed, err := m.enforcer.Enforce(role, resource, action)
		if err != nil {
			m.logger.Errorw("permission check failed", "error", err, "role", role, "resource", resource, "action", action)
			utils.ErrorResponse(c, http.StatusInternalServerError, "permission check failed")
			c.Abort()
			return
		}

		if !allowed {
			m.logger.Warnw("permission denied",
				"user_sid", c.GetString(constants.ContextKeyUserID),
				"role", role,
				"resource", resource,
				"action", action,
			)
			utils.ErrorResponse(c, http.StatusForbidden, "insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireStaff admits admin and superadmin tokens.
func (m *PermissionMiddleware) RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(constants.ContextKeyUserRole)
		if role != constants.RoleAdmin && role != constants.RoleSuperadmin {
			utils.ErrorResponse(c, http.StatusForbidden, "staff role required")
			c.Abort()
			return
		}
		c.Next()
	}
}
