package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"centro/internal/shared/constants"
	"centro/internal/shared/logger"
	"centro/internal/shared/utils"
)

// HeaderActingAsActivity carries the impersonation target on staff requests.
// The console sets it after a successful call to the impersonate endpoint.
const HeaderActingAsActivity = "X-Acting-As-Activity"

// ActingAs records an impersonation session: which staff member is viewing
// the console as which activity. It lives in the request context only.
type ActingAs struct {
	StaffSID   string
	StaffRole  string
	ActivityID uint
}

type ImpersonationMiddleware struct {
	logger logger.Interface
}

func NewImpersonationMiddleware(logger logger.Interface) *ImpersonationMiddleware {
	return &ImpersonationMiddleware{logger: logger}
}

// ResolveActingAs rewrites the request's activity scope when a superadmin
// impersonates a tenant. The caller's own role stays in the role key, so
// route guards still judge the staff member, while tenant handlers see the
// target activity.
func (m *ImpersonationMiddleware) ResolveActingAs() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(HeaderActingAsActivity)
		if header == "" {
			c.Next()
			return
		}

		role := c.GetString(constants.ContextKeyUserRole)
		if role != constants.RoleSuperadmin {
			utils.ErrorResponse(c, http.StatusForbidden, "impersonation requires superadmin role")
			c.Abort()
			return
		}

		activityID, err := strconv.ParseUint(header, 10, 64)
		if err != nil || activityID == 0 {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid impersonation target")
			c.Abort()
			return
		}

		actingAs := ActingAs{
			StaffSID:   c.GetString(constants.ContextKeyUserID),
			StaffRole:  role,
			ActivityID: uint(activityID),
		}

		c.Set(constants.ContextKeyActingAs, actingAs)
		c.Set(constants.ContextKeyActivityID, uint(activityID))

		m.logger.Infow("request running under impersonation",
			"staff_sid", actingAs.StaffSID,
			"target_activity_id", actingAs.ActivityID,
			"path", c.Request.URL.Path,
		)

		c.Next()
	}
}
