package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"centro/internal/application/subscription/usecases"
	"centro/internal/domain/subscription"
	vo "centro/internal/domain/subscription/valueobjects"
	"centro/internal/shared/constants"
	"centro/internal/shared/logger"
	"centro/internal/shared/utils"
)

// AccessGateMiddleware guards service feature routes on the resolved
// subscription status. Superadmins pass regardless of status; that is a
// role check, the tenant-facing gate outcome itself never changes.
type AccessGateMiddleware struct {
	getServiceStatusUC *usecases.GetServiceStatusUseCase
	logger             logger.Interface
}

func NewAccessGateMiddleware(
	getServiceStatusUC *usecases.GetServiceStatusUseCase,
	logger logger.Interface,
) *AccessGateMiddleware {
	return &AccessGateMiddleware{
		getServiceStatusUC: getServiceStatusUC,
		logger:             logger,
	}
}

// RequireServiceAccess resolves the (activity, service) pair from the token
// scope and the named route parameter, and refuses lapsed subscriptions.
func (m *AccessGateMiddleware) RequireServiceAccess(codeParam string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(constants.ContextKeyUserRole) == constants.RoleSuperadmin {
			c.Next()
			return
		}

		activityID := c.GetUint(constants.ContextKeyActivityID)
		if activityID == 0 {
			utils.ErrorResponse(c, http.StatusForbidden, "no activity associated with this account")
			c.Abort()
			return
		}

		serviceCode := c.Param(codeParam)
		if serviceCode == "" {
			utils.ErrorResponse(c, http.StatusBadRequest, "missing service code")
			c.Abort()
			return
		}

		status, err := m.getServiceStatusUC.Execute(c.Request.Context(), usecases.GetServiceStatusQuery{
			ActivityID:  activityID,
			ServiceCode: serviceCode,
		})
		if err != nil {
			m.logger.Errorw("failed to resolve service status",
				"error", err,
				"activity_id", activityID,
				"service_code", serviceCode,
			)
			utils.ErrorResponse(c, http.StatusInternalServerError, "failed to resolve service status")
			c.Abort()
			return
		}

		if !subscription.CanAccess(vo.EffectiveStatus(status.EffectiveStatus)) {
			m.logger.Infow("service access refused",
				"activity_id", activityID,
				"service_code", serviceCode,
				"effective_status", status.EffectiveStatus,
			)
			utils.ErrorResponse(c, http.StatusPaymentRequired, "subscription required for this service")
			c.Abort()
			return
		}

		c.Next()
	}
}
