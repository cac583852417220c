package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	communicationUsecases "centro/internal/application/communication/usecases"
	"centro/internal/domain/account"
	"centro/internal/domain/identity"
	"centro/internal/shared/constants"
	"centro/internal/shared/logger"
	"centro/internal/shared/utils"
)

// AnnouncementHandler serves announcements on both sides of the console:
// the tenant feed filtered by audience, and the back-office lifecycle.
type AnnouncementHandler struct {
	createAnnouncementUC  *communicationUsecases.CreateAnnouncementUseCase
	listAnnouncementsUC   *communicationUsecases.ListAnnouncementsUseCase
	publishAnnouncementUC *communicationUsecases.PublishAnnouncementUseCase
	organizationRepo      account.OrganizationRepository
	userRepo              identity.Repository
	logger                logger.Interface
}

func NewAnnouncementHandler(
	createAnnouncementUC *communicationUsecases.CreateAnnouncementUseCase,
	listAnnouncementsUC *communicationUsecases.ListAnnouncementsUseCase,
	publishAnnouncementUC *communicationUsecases.PublishAnnouncementUseCase,
	organizationRepo account.OrganizationRepository,
	userRepo identity.Repository,
	logger logger.Interface,
) *AnnouncementHandler {
	return &AnnouncementHandler{
		createAnnouncementUC:  createAnnouncementUC,
		listAnnouncementsUC:   listAnnouncementsUC,
		publishAnnouncementUC: publishAnnouncementUC,
		organizationRepo:      organizationRepo,
		userRepo:              userRepo,
		logger:                logger,
	}
}

type CreateAnnouncementRequest struct {
	Title        string `json:"title" binding:"required"`
	BodyMarkdown string `json:"body_markdown" binding:"required"`
	Audience     string `json:"audience" binding:"omitempty,oneof=all agencies singles"`
}

// ListForTenant returns published announcements targeted at the caller's
// account type.
func (h *AnnouncementHandler) ListForTenant(c *gin.Context) {
	orgID := c.GetUint(constants.ContextKeyOrgID)
	if orgID == 0 {
		utils.ErrorResponse(c, http.StatusForbidden, "no organization associated with this account")
		return
	}

	org, err := h.organizationRepo.GetByID(c.Request.Context(), orgID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	pagination := utils.ValidatePagination(page, pageSize)

	isAgency := org.IsAgency()
	announcements, total, err := h.listAnnouncementsUC.Execute(c.Request.Context(), communicationUsecases.ListAnnouncementsQuery{
		ForAgency: &isAgency,
		Offset:    pagination.Offset(),
		Limit:     pagination.PageSize,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.ListSuccessResponse(c, announcements, total, pagination.Page, pagination.PageSize)
}

// ListForAdmin returns every announcement, optionally filtered by status.
func (h *AnnouncementHandler) ListForAdmin(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	pagination := utils.ValidatePagination(page, pageSize)

	announcements, total, err := h.listAnnouncementsUC.Execute(c.Request.Context(), communicationUsecases.ListAnnouncementsQuery{
		Status: c.Query("status"),
		Offset: pagination.Offset(),
		Limit:  pagination.PageSize,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.ListSuccessResponse(c, announcements, total, pagination.Page, pagination.PageSize)
}

func (h *AnnouncementHandler) Create(c *gin.Context) {
	var req CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Audience == "" {
		req.Audience = "all"
	}

	author, err := h.userRepo.GetBySID(c.Request.Context(), c.GetString(constants.ContextKeyUserID))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	announcement, err := h.createAnnouncementUC.Execute(c.Request.Context(), communicationUsecases.CreateAnnouncementCommand{
		Title:        req.Title,
		BodyMarkdown: req.BodyMarkdown,
		Audience:     req.Audience,
		AuthorID:     author.ID(),
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.CreatedResponse(c, announcement, "announcement created")
}

func (h *AnnouncementHandler) Publish(c *gin.Context) {
	sid := c.Param("sid")
	if sid == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "missing announcement sid")
		return
	}

	announcement, err := h.publishAnnouncementUC.Execute(c.Request.Context(), communicationUsecases.PublishAnnouncementCommand{
		SID: sid,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "announcement published", announcement)
}
