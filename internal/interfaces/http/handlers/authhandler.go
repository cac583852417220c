package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	identitydto "centro/internal/application/identity/dto"
	identityUsecases "centro/internal/application/identity/usecases"
	"centro/internal/domain/identity"
	"centro/internal/shared/constants"
	"centro/internal/shared/logger"
	"centro/internal/shared/utils"
)

type AuthHandler struct {
	loginUC  loginExecutor
	userRepo identity.Repository
	logger   logger.Interface
}

func NewAuthHandler(
	loginUC loginExecutor,
	userRepo identity.Repository,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		loginUC:  loginUC,
		userRepo: userRepo,
		logger:   logger,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login godoc
// @Summary Log in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), identityUsecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "login successful", result)
}

// Me godoc
// @Summary Return the authenticated user
// @Tags auth
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /api/v1/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userSID := c.GetString(constants.ContextKeyUserID)
	if userSID == "" {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	user, err := h.userRepo.GetBySID(c.Request.Context(), userSID)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", identitydto.ToUserDTO(user))
}
