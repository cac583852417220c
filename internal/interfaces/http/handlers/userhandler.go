package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	identityUsecases "centro/internal/application/identity/usecases"
	"centro/internal/shared/logger"
	"centro/internal/shared/utils"
)

// UserHandler serves the back-office user registry.
type UserHandler struct {
	createUserUC *identityUsecases.CreateUserUseCase
	logger       logger.Interface
}

func NewUserHandler(createUserUC *identityUsecases.CreateUserUseCase, logger logger.Interface) *UserHandler {
	return &UserHandler{
		createUserUC: createUserUC,
		logger:       logger,
	}
}

type CreateUserRequest struct {
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=8"`
	Name           string `json:"name" binding:"required"`
	Role           string `json:"role" binding:"required,oneof=tenant admin superadmin"`
	OrganizationID *uint  `json:"organization_id"`
	ActivityID     *uint  `json:"activity_id"`
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := h.createUserUC.Execute(c.Request.Context(), identityUsecases.CreateUserCommand{
		Email:          req.Email,
		Password:       req.Password,
		Name:           req.Name,
		Role:           req.Role,
		OrganizationID: req.OrganizationID,
		ActivityID:     req.ActivityID,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.CreatedResponse(c, user, "user created")
}
