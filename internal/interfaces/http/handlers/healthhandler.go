package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"centro/internal/shared/utils"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check reports liveness plus database reachability.
func (h *HealthHandler) Check(c *gin.Context) {
	status := gin.H{"status": "ok"}

	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			status["status"] = "degraded"
			status["database"] = "unreachable"
			c.JSON(http.StatusServiceUnavailable, status)
			return
		}
		status["database"] = "ok"
	}

	utils.SuccessResponse(c, http.StatusOK, "", status)
}
