package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	billingUsecases "centro/internal/application/billing/usecases"
	"centro/internal/shared/constants"
	"centro/internal/shared/logger"
	"centro/internal/shared/utils"
)

type BillingHandler struct {
	getOrgBillingSummaryUC *billingUsecases.GetOrgBillingSummaryUseCase
	getDashboardStatsUC    *billingUsecases.GetDashboardStatsUseCase
	logger                 logger.Interface
}

func NewBillingHandler(
	getOrgBillingSummaryUC *billingUsecases.GetOrgBillingSummaryUseCase,
	getDashboardStatsUC *billingUsecases.GetDashboardStatsUseCase,
	logger logger.Interface,
) *BillingHandler {
	return &BillingHandler{
		getOrgBillingSummaryUC: getOrgBillingSummaryUC,
		getDashboardStatsUC:    getDashboardStatsUC,
		logger:                 logger,
	}
}

// GetMySummary godoc
// @Summary Monthly billing summary for the caller's organization
// @Tags billing
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/v1/billing/summary [get]
func (h *BillingHandler) GetMySummary(c *gin.Context) {
	orgID := c.GetUint(constants.ContextKeyOrgID)
	if orgID == 0 {
		utils.ErrorResponse(c, http.StatusForbidden, "no organization associated with this account")
		return
	}

	summary, err := h.getOrgBillingSummaryUC.Execute(c.Request.Context(), billingUsecases.GetOrgBillingSummaryQuery{
		OrganizationID: orgID,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", summary)
}

// GetOrganizationSummary is the back-office view of any organization's bill.
func (h *BillingHandler) GetOrganizationSummary(c *gin.Context) {
	orgID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	summary, err := h.getOrgBillingSummaryUC.Execute(c.Request.Context(), billingUsecases.GetOrgBillingSummaryQuery{
		OrganizationID: orgID,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", summary)
}

// GetDashboardStats godoc
// @Summary Platform-wide subscription counters
// @Tags admin
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/v1/admin/dashboard/stats [get]
func (h *BillingHandler) GetDashboardStats(c *gin.Context) {
	stats, err := h.getDashboardStatsUC.Execute(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", stats)
}
