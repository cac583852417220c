package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	subdto "centro/internal/application/subscription/dto"
	subUsecases "centro/internal/application/subscription/usecases"
	"centro/internal/domain/subscription"
	"centro/internal/shared/constants"
	"centro/internal/shared/logger"
	"centro/internal/shared/utils"
)

type mockServiceStatusGetter struct {
	result    *subdto.ServiceStatusDTO
	err       error
	lastQuery subUsecases.GetServiceStatusQuery
}

func (m *mockServiceStatusGetter) Execute(ctx context.Context, query subUsecases.GetServiceStatusQuery) (*subdto.ServiceStatusDTO, error) {
	m.lastQuery = query
	return m.result, m.err
}

type mockActivityStatusLister struct {
	result []subdto.ServiceStatusDTO
	err    error
}

func (m *mockActivityStatusLister) Execute(ctx context.Context, query subUsecases.ListActivityStatusesQuery) ([]subdto.ServiceStatusDTO, error) {
	return m.result, m.err
}

type mockTrialActivator struct {
	result  *subdto.SubscriptionDTO
	err     error
	lastCmd subUsecases.ActivateTrialCommand
}

func (m *mockTrialActivator) Execute(ctx context.Context, cmd subUsecases.ActivateTrialCommand) (*subdto.SubscriptionDTO, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

type mockFreeActivator struct {
	result *subdto.SubscriptionDTO
	err    error
}

func (m *mockFreeActivator) Execute(ctx context.Context, cmd subUsecases.ActivateFreeCommand) (*subdto.SubscriptionDTO, error) {
	return m.result, m.err
}

type mockSubscriptionCanceller struct {
	err     error
	lastCmd subUsecases.CancelSubscriptionCommand
}

func (m *mockSubscriptionCanceller) Execute(ctx context.Context, cmd subUsecases.CancelSubscriptionCommand) error {
	m.lastCmd = cmd
	return m.err
}

func newTestEngine(activityID uint, register func(*gin.Engine)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(func(c *gin.Context) {
		if activityID != 0 {
			c.Set(constants.ContextKeyActivityID, activityID)
		}
		c.Next()
	})
	register(engine)
	return engine
}

func TestSubscriptionHandlerGetServiceStatus(t *testing.T) {
	statusGetter := &mockServiceStatusGetter{
		result: &subdto.ServiceStatusDTO{
			ActivityID:      7,
			ServiceCode:     "reviews",
			EffectiveStatus: "trial",
			IsActive:        true,
		},
	}
	handler := NewSubscriptionHandler(statusGetter, nil, nil, nil, nil, logger.NewLogger())

	engine := newTestEngine(7, func(e *gin.Engine) {
		e.GET("/services/:code/status", handler.GetServiceStatus)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/services/reviews/status", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)

	assert.Equal(t, uint(7), statusGetter.lastQuery.ActivityID)
	assert.Equal(t, "reviews", statusGetter.lastQuery.ServiceCode)
}

func TestSubscriptionHandlerGetServiceStatusNoActivity(t *testing.T) {
	handler := NewSubscriptionHandler(&mockServiceStatusGetter{}, nil, nil, nil, nil, logger.NewLogger())

	engine := newTestEngine(0, func(e *gin.Engine) {
		e.GET("/services/:code/status", handler.GetServiceStatus)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/services/reviews/status", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSubscriptionHandlerActivateTrialConflict(t *testing.T) {
	activator := &mockTrialActivator{err: subscription.ErrSubscriptionExists}
	handler := NewSubscriptionHandler(&mockServiceStatusGetter{}, nil, activator, nil, nil, logger.NewLogger())

	engine := newTestEngine(7, func(e *gin.Engine) {
		e.POST("/services/:code/trial", handler.ActivateTrial)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/services/reviews/trial", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusConflict, w.Code)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "conflict", resp.Error.Type)
}

func TestSubscriptionHandlerActivateTrialSuccess(t *testing.T) {
	activator := &mockTrialActivator{
		result: &subdto.SubscriptionDTO{
			SID:             "sub_abc123",
			ActivityID:      7,
			ServiceCode:     "reviews",
			Status:          "trial",
			EffectiveStatus: "trial",
			IsActive:        true,
		},
	}
	handler := NewSubscriptionHandler(&mockServiceStatusGetter{}, nil, activator, nil, nil, logger.NewLogger())

	engine := newTestEngine(7, func(e *gin.Engine) {
		e.POST("/services/:code/trial", handler.ActivateTrial)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/services/reviews/trial", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(7), activator.lastCmd.ActivityID)
	assert.Equal(t, "reviews", activator.lastCmd.ServiceCode)
}

func TestSubscriptionHandlerCancel(t *testing.T) {
	canceller := &mockSubscriptionCanceller{}
	handler := NewSubscriptionHandler(&mockServiceStatusGetter{}, nil, nil, nil, canceller, logger.NewLogger())

	engine := newTestEngine(7, func(e *gin.Engine) {
		e.DELETE("/services/:code/subscription", handler.Cancel)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/services/reviews/subscription", nil)
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "reviews", canceller.lastCmd.ServiceCode)
}

func TestSubscriptionHandlerListStatuses(t *testing.T) {
	lister := &mockActivityStatusLister{
		result: []subdto.ServiceStatusDTO{
			{ServiceCode: "reviews", EffectiveStatus: "pro", IsActive: true},
			{ServiceCode: "booking", EffectiveStatus: "inactive", IsActive: false},
		},
	}
	handler := NewSubscriptionHandler(&mockServiceStatusGetter{}, lister, nil, nil, nil, logger.NewLogger())

	engine := newTestEngine(7, func(e *gin.Engine) {
		e.GET("/services/status", handler.ListStatuses)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/services/status", nil)
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}
