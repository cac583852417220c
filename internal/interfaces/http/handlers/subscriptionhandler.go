package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	subUsecases "centro/internal/application/subscription/usecases"
	"centro/internal/shared/constants"
	"centro/internal/shared/logger"
	"centro/internal/shared/utils"
)

// SubscriptionHandler serves the tenant-facing subscription surface. The
// activity scope always comes from the verified token, or from an
// impersonation context set by a superadmin.
type SubscriptionHandler struct {
	getServiceStatusUC   serviceStatusGetter
	listStatusesUC       activityStatusLister
	activateTrialUC      trialActivator
	activateFreeUC       freeActivator
	cancelSubscriptionUC subscriptionCanceller
	logger               logger.Interface
}

func NewSubscriptionHandler(
	getServiceStatusUC serviceStatusGetter,
	listStatusesUC activityStatusLister,
	activateTrialUC trialActivator,
	activateFreeUC freeActivator,
	cancelSubscriptionUC subscriptionCanceller,
	logger logger.Interface,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		getServiceStatusUC:   getServiceStatusUC,
		listStatusesUC:       listStatusesUC,
		activateTrialUC:      activateTrialUC,
		activateFreeUC:       activateFreeUC,
		cancelSubscriptionUC: cancelSubscriptionUC,
		logger:               logger,
	}
}

func activityFromContext(c *gin.Context) (uint, bool) {
	activityID := c.GetUint(constants.ContextKeyActivityID)
	if activityID == 0 {
		utils.ErrorResponse(c, http.StatusForbidden, "no activity associated with this account")
		return 0, false
	}
	return activityID, true
}

// GetServiceStatus godoc
// @Summary Resolved status of one service for the caller's activity
// @Tags subscriptions
// @Produce json
// @Param code path string true "Service code"
// @Success 200 {object} utils.APIResponse
// @Router /api/v1/services/{code}/status [get]
func (h *SubscriptionHandler) GetServiceStatus(c *gin.Context) {
	activityID, ok := activityFromContext(c)
	if !ok {
		return
	}

	status, err := h.getServiceStatusUC.Execute(c.Request.Context(), subUsecases.GetServiceStatusQuery{
		ActivityID:  activityID,
		ServiceCode: c.Param("code"),
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", status)
}

// ListStatuses godoc
// @Summary Resolved status of every catalog service for the caller's activity
// @Tags subscriptions
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/v1/services/status [get]
func (h *SubscriptionHandler) ListStatuses(c *gin.Context) {
	activityID, ok := activityFromContext(c)
	if !ok {
		return
	}

	statuses, err := h.listStatusesUC.Execute(c.Request.Context(), subUsecases.ListActivityStatusesQuery{
		ActivityID: activityID,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", statuses)
}

// ActivateTrial godoc
// @Summary Start the trial of a service for the caller's activity
// @Tags subscriptions
// @Produce json
// @Param code path string true "Service code"
// @Success 201 {object} utils.APIResponse
// @Router /api/v1/services/{code}/trial [post]
func (h *SubscriptionHandler) ActivateTrial(c *gin.Context) {
	activityID, ok := activityFromContext(c)
	if !ok {
		return
	}

	sub, err := h.activateTrialUC.Execute(c.Request.Context(), subUsecases.ActivateTrialCommand{
		ActivityID:  activityID,
		ServiceCode: c.Param("code"),
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.CreatedResponse(c, sub, "trial activated")
}

// ActivateFree godoc
// @Summary Put the caller's activity on the free tier of a service
// @Tags subscriptions
// @Produce json
// @Param code path string true "Service code"
// @Success 201 {object} utils.APIResponse
// @Router /api/v1/services/{code}/free [post]
func (h *SubscriptionHandler) ActivateFree(c *gin.Context) {
	activityID, ok := activityFromContext(c)
	if !ok {
		return
	}

	sub, err := h.activateFreeUC.Execute(c.Request.Context(), subUsecases.ActivateFreeCommand{
		ActivityID:  activityID,
		ServiceCode: c.Param("code"),
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.CreatedResponse(c, sub, "free tier activated")
}

// Cancel godoc
// @Summary Cancel the caller's subscription to a service
// @Tags subscriptions
// @Produce json
// @Param code path string true "Service code"
// @Success 204
// @Router /api/v1/services/{code}/subscription [delete]
func (h *SubscriptionHandler) Cancel(c *gin.Context) {
	activityID, ok := activityFromContext(c)
	if !ok {
		return
	}

	err := h.cancelSubscriptionUC.Execute(c.Request.Context(), subUsecases.CancelSubscriptionCommand{
		ActivityID:  activityID,
		ServiceCode: c.Param("code"),
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// CheckAccess sits behind the access gate middleware, so reaching the
// handler already means the subscription admits the caller. It returns the
// resolved status for the service console to display.
func (h *SubscriptionHandler) CheckAccess(c *gin.Context) {
	activityID, ok := activityFromContext(c)
	if !ok {
		return
	}

	status, err := h.getServiceStatusUC.Execute(c.Request.Context(), subUsecases.GetServiceStatusQuery{
		ActivityID:  activityID,
		ServiceCode: c.Param("code"),
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", status)
}
