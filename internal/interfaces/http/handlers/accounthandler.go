package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	accountUsecases "centro/internal/application/account/usecases"
	"centro/internal/shared/logger"
	"centro/internal/shared/utils"
)

// AccountHandler serves the back-office organization and activity registry.
type AccountHandler struct {
	createOrganizationUC *accountUsecases.CreateOrganizationUseCase
	listOrganizationsUC  *accountUsecases.ListOrganizationsUseCase
	createActivityUC     *accountUsecases.CreateActivityUseCase
	listActivitiesUC     *accountUsecases.ListActivitiesUseCase
	logger               logger.Interface
}

func NewAccountHandler(
	createOrganizationUC *accountUsecases.CreateOrganizationUseCase,
	listOrganizationsUC *accountUsecases.ListOrganizationsUseCase,
	createActivityUC *accountUsecases.CreateActivityUseCase,
	listActivitiesUC *accountUsecases.ListActivitiesUseCase,
	logger logger.Interface,
) *AccountHandler {
	return &AccountHandler{
		createOrganizationUC: createOrganizationUC,
		listOrganizationsUC:  listOrganizationsUC,
		createActivityUC:     createActivityUC,
		listActivitiesUC:     listActivitiesUC,
		logger:               logger,
	}
}

type CreateOrganizationRequest struct {
	Name         string `json:"name" binding:"required"`
	BillingEmail string `json:"billing_email" binding:"required,email"`
	AccountType  string `json:"account_type" binding:"omitempty,oneof=single agency"`
}

type CreateActivityRequest struct {
	Name           string `json:"name" binding:"required"`
	VATNumber      string `json:"vat_number"`
	City           string `json:"city"`
	OrganizationID *uint  `json:"organization_id"`
}

func (h *AccountHandler) CreateOrganization(c *gin.Context) {
	var req CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	org, err := h.createOrganizationUC.Execute(c.Request.Context(), accountUsecases.CreateOrganizationCommand{
		Name:         req.Name,
		BillingEmail: req.BillingEmail,
		AccountType:  req.AccountType,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.CreatedResponse(c, org, "organization created")
}

func (h *AccountHandler) ListOrganizations(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	pagination := utils.ValidatePagination(page, pageSize)

	orgs, total, err := h.listOrganizationsUC.Execute(c.Request.Context(), accountUsecases.ListOrganizationsQuery{
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.ListSuccessResponse(c, orgs, total, pagination.Page, pagination.PageSize)
}

func (h *AccountHandler) CreateActivity(c *gin.Context) {
	var req CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	activity, err := h.createActivityUC.Execute(c.Request.Context(), accountUsecases.CreateActivityCommand{
		Name:           req.Name,
		VATNumber:      req.VATNumber,
		City:           req.City,
		OrganizationID: req.OrganizationID,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.CreatedResponse(c, activity, "activity created")
}

func (h *AccountHandler) ListActivities(c *gin.Context) {
	query := accountUsecases.ListActivitiesQuery{}

	if raw := c.Query("organization_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid organization_id")
			return
		}
		orgID := uint(id)
		query.OrganizationID = &orgID
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	pagination := utils.ValidatePagination(page, pageSize)
	query.Page = pagination.Page
	query.PageSize = pagination.PageSize

	activities, total, err := h.listActivitiesUC.Execute(c.Request.Context(), query)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.ListSuccessResponse(c, activities, total, pagination.Page, pagination.PageSize)
}
