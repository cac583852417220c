package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	subUsecases "centro/internal/application/subscription/usecases"
	"centro/internal/shared/biztime"
	"centro/internal/shared/logger"
	"centro/internal/shared/utils"
)

// AdminSubscriptionHandler serves the back-office subscription table and the
// manual transition console.
type AdminSubscriptionHandler struct {
	listSubscriptionsUC subscriptionLister
	applyTransitionUC   transitionApplier
	logger              logger.Interface
}

func NewAdminSubscriptionHandler(
	listSubscriptionsUC subscriptionLister,
	applyTransitionUC transitionApplier,
	logger logger.Interface,
) *AdminSubscriptionHandler {
	return &AdminSubscriptionHandler{
		listSubscriptionsUC: listSubscriptionsUC,
		applyTransitionUC:   applyTransitionUC,
		logger:              logger,
	}
}

type ApplyTransitionRequest struct {
	ActivityID       uint       `json:"activity_id" binding:"required"`
	ServiceCode      string     `json:"service_code" binding:"required"`
	TargetStatus     string     `json:"target_status" binding:"required,subscription_status"`
	BillingCycle     *string    `json:"billing_cycle" binding:"omitempty,billing_cycle"`
	PaymentMethod    *string    `json:"payment_method"`
	IsFreePromo      bool       `json:"is_free_promo"`
	TrialDays        int        `json:"trial_days"`
	ManualRenewDate  *string    `json:"manual_renew_date"`
	CurrentPeriodEnd *time.Time `json:"current_period_end"`
	PaymentReference *string    `json:"payment_reference"`
	ManualRenewNotes *string    `json:"manual_renew_notes"`
}

type OpenServiceRequest struct {
	ActivityID  uint   `json:"activity_id" binding:"required"`
	ServiceCode string `json:"service_code" binding:"required"`
}

// List godoc
// @Summary List subscriptions with optional filters
// @Tags admin
// @Produce json
// @Param activity_id query int false "Filter by activity"
// @Param service_code query string false "Filter by service"
// @Param status query string false "Filter by stored status"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Router /api/v1/admin/subscriptions [get]
func (h *AdminSubscriptionHandler) List(c *gin.Context) {
	query := subUsecases.ListSubscriptionsQuery{}

	if raw := c.Query("activity_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid activity_id")
			return
		}
		activityID := uint(id)
		query.ActivityID = &activityID
	}
	if code := c.Query("service_code"); code != "" {
		query.ServiceCode = &code
	}
	if status := c.Query("status"); status != "" {
		query.Status = &status
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	pagination := utils.ValidatePagination(page, pageSize)
	query.Page = pagination.Page
	query.PageSize = pagination.PageSize

	subs, total, err := h.listSubscriptionsUC.Execute(c.Request.Context(), query)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.ListSuccessResponse(c, subs, total, pagination.Page, pagination.PageSize)
}

// ApplyTransition godoc
// @Summary Apply an administrative status transition
// @Tags admin
// @Accept json
// @Produce json
// @Param request body ApplyTransitionRequest true "Transition"
// @Success 200 {object} utils.APIResponse
// @Router /api/v1/admin/subscriptions/transitions [post]
func (h *AdminSubscriptionHandler) ApplyTransition(c *gin.Context) {
	var req ApplyTransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	// A manual renew date comes in as a plain date and covers the whole
	// business day it names.
	var manualRenew *time.Time
	if req.ManualRenewDate != nil {
		day, err := biztime.ParseDateInBizTimezone(*req.ManualRenewDate)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid manual_renew_date, expected YYYY-MM-DD")
			return
		}
		end := biztime.EndOfDayUTC(day)
		manualRenew = &end
	}

	sub, err := h.applyTransitionUC.Execute(c.Request.Context(), subUsecases.ApplyTransitionCommand{
		ActivityID:       req.ActivityID,
		ServiceCode:      req.ServiceCode,
		TargetStatus:     req.TargetStatus,
		BillingCycle:     req.BillingCycle,
		PaymentMethod:    req.PaymentMethod,
		IsFreePromo:      req.IsFreePromo,
		TrialDays:        req.TrialDays,
		ManualRenewDate:  manualRenew,
		CurrentPeriodEnd: req.CurrentPeriodEnd,
		PaymentReference: req.PaymentReference,
		ManualRenewNotes: req.ManualRenewNotes,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "transition applied", sub)
}

// OpenService grants permanent free access to one service, the superadmin
// courtesy switch. It is a promo grant, so expiry sweeps never touch it.
func (h *AdminSubscriptionHandler) OpenService(c *gin.Context) {
	var req OpenServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	sub, err := h.applyTransitionUC.Execute(c.Request.Context(), subUsecases.ApplyTransitionCommand{
		ActivityID:   req.ActivityID,
		ServiceCode:  req.ServiceCode,
		TargetStatus: "free",
		IsFreePromo:  true,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	h.logger.Infow("service opened without billing",
		"activity_id", req.ActivityID,
		"service_code", req.ServiceCode,
	)

	utils.SuccessResponse(c, http.StatusOK, "service opened", sub)
}
