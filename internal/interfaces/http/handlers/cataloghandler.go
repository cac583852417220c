package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	catalogUsecases "centro/internal/application/catalog/usecases"
	"centro/internal/shared/logger"
	"centro/internal/shared/utils"
)

// CatalogHandler serves the service catalog: a public read surface for the
// tenant console and a write surface for the back office.
type CatalogHandler struct {
	createServiceUC  *catalogUsecases.CreateServiceUseCase
	updateServiceUC  *catalogUsecases.UpdateServiceUseCase
	listServicesUC   *catalogUsecases.ListServicesUseCase
	archiveServiceUC *catalogUsecases.ArchiveServiceUseCase
	createPlanUC     *catalogUsecases.CreatePlanUseCase
	updatePlanUC     *catalogUsecases.UpdatePlanUseCase
	listPlansUC      *catalogUsecases.ListPlansUseCase
	logger           logger.Interface
}

func NewCatalogHandler(
	createServiceUC *catalogUsecases.CreateServiceUseCase,
	updateServiceUC *catalogUsecases.UpdateServiceUseCase,
	listServicesUC *catalogUsecases.ListServicesUseCase,
	archiveServiceUC *catalogUsecases.ArchiveServiceUseCase,
	createPlanUC *catalogUsecases.CreatePlanUseCase,
	updatePlanUC *catalogUsecases.UpdatePlanUseCase,
	listPlansUC *catalogUsecases.ListPlansUseCase,
	logger logger.Interface,
) *CatalogHandler {
	return &CatalogHandler{
		createServiceUC:  createServiceUC,
		updateServiceUC:  updateServiceUC,
		listServicesUC:   listServicesUC,
		archiveServiceUC: archiveServiceUC,
		createPlanUC:     createPlanUC,
		updatePlanUC:     updatePlanUC,
		listPlansUC:      listPlansUC,
		logger:           logger,
	}
}

type CreateServiceRequest struct {
	Code              string `json:"code" binding:"required"`
	Name              string `json:"name" binding:"required"`
	Description       string `json:"description"`
	PriceMonthlyCents int64  `json:"price_monthly_cents" binding:"required"`
	PriceYearlyCents  int64  `json:"price_yearly_cents" binding:"required"`
	HasFreeTier       bool   `json:"has_free_tier"`
	TrialDays         int    `json:"trial_days"`
	AddonPriceCents   int64  `json:"addon_price_cents"`
}

// UpdateServiceRequest carries partial updates; absent fields stay untouched.
type UpdateServiceRequest struct {
	Name              *string `json:"name"`
	Description       *string `json:"description"`
	PriceMonthlyCents *int64  `json:"price_monthly_cents"`
	PriceYearlyCents  *int64  `json:"price_yearly_cents"`
	AddonPriceCents   *int64  `json:"addon_price_cents"`
	HasFreeTier       *bool   `json:"has_free_tier"`
	TrialDays         *int    `json:"trial_days"`
}

type CreatePlanRequest struct {
	Code              string   `json:"code" binding:"required"`
	Name              string   `json:"name" binding:"required"`
	PriceMonthlyCents int64    `json:"price_monthly_cents"`
	PriceYearlyCents  int64    `json:"price_yearly_cents"`
	Features          []string `json:"features"`
	IsDefault         bool     `json:"is_default"`
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	includeArchived := c.Query("include_archived") == "true"

	services, err := h.listServicesUC.Execute(c.Request.Context(), catalogUsecases.ListServicesQuery{
		IncludeArchived: includeArchived,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", services)
}

func (h *CatalogHandler) CreateService(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	svc, err := h.createServiceUC.Execute(c.Request.Context(), catalogUsecases.CreateServiceCommand{
		Code:              req.Code,
		Name:              req.Name,
		Description:       req.Description,
		PriceMonthlyCents: req.PriceMonthlyCents,
		PriceYearlyCents:  req.PriceYearlyCents,
		HasFreeTier:       req.HasFreeTier,
		TrialDays:         req.TrialDays,
		AddonPriceCents:   req.AddonPriceCents,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.CreatedResponse(c, svc, "service created")
}

func (h *CatalogHandler) UpdateService(c *gin.Context) {
	serviceID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	svc, err := h.updateServiceUC.Execute(c.Request.Context(), catalogUsecases.UpdateServiceCommand{
		ServiceID:         serviceID,
		Name:              req.Name,
		Description:       req.Description,
		PriceMonthlyCents: req.PriceMonthlyCents,
		PriceYearlyCents:  req.PriceYearlyCents,
		AddonPriceCents:   req.AddonPriceCents,
		HasFreeTier:       req.HasFreeTier,
		TrialDays:         req.TrialDays,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "service updated", svc)
}

func (h *CatalogHandler) ArchiveService(c *gin.Context) {
	serviceID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	err := h.archiveServiceUC.Execute(c.Request.Context(), catalogUsecases.ArchiveServiceCommand{
		ServiceID: serviceID,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *CatalogHandler) CreatePlan(c *gin.Context) {
	serviceID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	plan, err := h.createPlanUC.Execute(c.Request.Context(), catalogUsecases.CreatePlanCommand{
		ServiceID:         serviceID,
		Code:              req.Code,
		Name:              req.Name,
		PriceMonthlyCents: req.PriceMonthlyCents,
		PriceYearlyCents:  req.PriceYearlyCents,
		Features:          req.Features,
		IsDefault:         req.IsDefault,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.CreatedResponse(c, plan, "plan created")
}

// UpdatePlanRequest carries partial updates; absent fields stay untouched.
type UpdatePlanRequest struct {
	PriceMonthlyCents *int64   `json:"price_monthly_cents"`
	PriceYearlyCents  *int64   `json:"price_yearly_cents"`
	Features          []string `json:"features"`
	MarkDefault       bool     `json:"mark_default"`
}

func (h *CatalogHandler) UpdatePlan(c *gin.Context) {
	planID, ok := parseIDParam(c, "plan_id")
	if !ok {
		return
	}

	var req UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	plan, err := h.updatePlanUC.Execute(c.Request.Context(), catalogUsecases.UpdatePlanCommand{
		PlanID:            planID,
		PriceMonthlyCents: req.PriceMonthlyCents,
		PriceYearlyCents:  req.PriceYearlyCents,
		Features:          req.Features,
		MarkDefault:       req.MarkDefault,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "plan updated", plan)
}

func (h *CatalogHandler) ListPlans(c *gin.Context) {
	serviceID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	plans, err := h.listPlansUC.Execute(c.Request.Context(), catalogUsecases.ListPlansQuery{
		ServiceID: serviceID,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", plans)
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid "+name+" parameter")
		return 0, false
	}
	return uint(id), true
}
