package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"centro/internal/shared/constants"
	"centro/internal/shared/logger"
)

func TestResolveActingAsRewritesActivityScope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	var gotActivity uint
	var gotActingAs any
	engine.Use(func(c *gin.Context) {
		c.Set(constants.ContextKeyUserID, "usr_staff1")
		c.Set(constants.ContextKeyUserRole, constants.RoleSuperadmin)
		c.Next()
	})
	engine.Use(NewImpersonationMiddleware(logger.NewLogger()).ResolveActingAs())
	engine.GET("/ping", func(c *gin.Context) {
		gotActivity = c.GetUint(constants.ContextKeyActivityID)
		gotActingAs, _ = c.Get(constants.ContextKeyActingAs)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderActingAsActivity, "42")
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(42), gotActivity)

	actingAs, ok := gotActingAs.(ActingAs)
	require.True(t, ok)
	assert.Equal(t, "usr_staff1", actingAs.StaffSID)
	assert.Equal(t, uint(42), actingAs.ActivityID)
}

func TestResolveActingAsRejectsNonSuperadmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	engine.Use(func(c *gin.Context) {
		c.Set(constants.ContextKeyUserRole, constants.RoleAdmin)
		c.Next()
	})
	engine.Use(NewImpersonationMiddleware(logger.NewLogger()).ResolveActingAs())
	engine.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderActingAsActivity, "42")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestResolveActingAsIgnoresMissingHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	engine.Use(func(c *gin.Context) {
		c.Set(constants.ContextKeyUserRole, constants.RoleTenant)
		c.Set(constants.ContextKeyActivityID, uint(7))
		c.Next()
	})
	engine.Use(NewImpersonationMiddleware(logger.NewLogger()).ResolveActingAs())

	var gotActivity uint
	engine.GET("/ping", func(c *gin.Context) {
		gotActivity = c.GetUint(constants.ContextKeyActivityID)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(7), gotActivity)
}

func TestResolveActingAsRejectsBadTarget(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	engine.Use(func(c *gin.Context) {
		c.Set(constants.ContextKeyUserRole, constants.RoleSuperadmin)
		c.Next()
	})
	engine.Use(NewImpersonationMiddleware(logger.NewLogger()).ResolveActingAs())
	engine.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(HeaderActingAsActivity, "not-a-number")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
