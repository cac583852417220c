package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"centro/internal/domain/account"
	"centro/internal/interfaces/http/middleware"
	"centro/internal/shared/constants"
	"centro/internal/shared/logger"
	"centro/internal/shared/utils"
)

// ImpersonationHandler starts superadmin impersonation sessions. The
// endpoint only validates the target; the session itself is the
// X-Acting-As-Activity header on subsequent requests, resolved per request
// by the impersonation middleware.
type ImpersonationHandler struct {
	activityRepo account.ActivityRepository
	logger       logger.Interface
}

func NewImpersonationHandler(activityRepo account.ActivityRepository, logger logger.Interface) *ImpersonationHandler {
	return &ImpersonationHandler{
		activityRepo: activityRepo,
		logger:       logger,
	}
}

type ImpersonateRequest struct {
	ActivityID uint `json:"activity_id" binding:"required"`
}

type ImpersonateResponse struct {
	ActivityID   uint   `json:"activity_id"`
	ActivityName string `json:"activity_name"`
	Header       string `json:"header"`
}

func (h *ImpersonationHandler) Impersonate(c *gin.Context) {
	var req ImpersonateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	activity, err := h.activityRepo.GetByID(c.Request.Context(), req.ActivityID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	h.logger.Infow("impersonation session started",
		"staff_sid", c.GetString(constants.ContextKeyUserID),
		"target_activity_id", req.ActivityID,
		"target_activity_name", activity.Name(),
	)

	utils.SuccessResponse(c, http.StatusOK, "impersonation ready", ImpersonateResponse{
		ActivityID:   req.ActivityID,
		ActivityName: activity.Name(),
		Header:       middleware.HeaderActingAsActivity,
	})
}
