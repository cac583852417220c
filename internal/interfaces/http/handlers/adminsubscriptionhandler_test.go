package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	subdto "centro/internal/application/subscription/dto"
	subUsecases "centro/internal/application/subscription/usecases"
	"centro/internal/shared/biztime"
	"centro/internal/shared/logger"
)

type mockTransitionApplier struct {
	result  *subdto.SubscriptionDTO
	err     error
	called  bool
	lastCmd subUsecases.ApplyTransitionCommand
}

func (m *mockTransitionApplier) Execute(ctx context.Context, cmd subUsecases.ApplyTransitionCommand) (*subdto.SubscriptionDTO, error) {
	m.called = true
	m.lastCmd = cmd
	return m.result, m.err
}

func newAdminTransitionEngine(applier *mockTransitionApplier) *gin.Engine {
	handler := NewAdminSubscriptionHandler(nil, applier, logger.NewLogger())
	return newTestEngine(0, func(e *gin.Engine) {
		e.POST("/admin/subscriptions/transitions", handler.ApplyTransition)
	})
}

func TestAdminApplyTransitionParsesManualRenewDate(t *testing.T) {
	applier := &mockTransitionApplier{
		result: &subdto.SubscriptionDTO{SID: "sub_abc123", Status: "active"},
	}
	engine := newAdminTransitionEngine(applier)

	body := `{"activity_id":7,"service_code":"reviews","target_status":"active","payment_method":"bonifico","manual_renew_date":"2026-09-15"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/subscriptions/transitions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, applier.called)
	require.NotNil(t, applier.lastCmd.ManualRenewDate)

	// The date covers the whole business day it names.
	want := time.Date(2026, time.September, 15, 23, 59, 59, 999999999, biztime.Location()).UTC()
	assert.True(t, want.Equal(*applier.lastCmd.ManualRenewDate))
}

func TestAdminApplyTransitionRejectsMalformedRenewDate(t *testing.T) {
	applier := &mockTransitionApplier{}
	engine := newAdminTransitionEngine(applier)

	body := `{"activity_id":7,"service_code":"reviews","target_status":"active","manual_renew_date":"15/09/2026"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/subscriptions/transitions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, applier.called)
}

func TestAdminApplyTransitionRejectsUnknownStatus(t *testing.T) {
	applier := &mockTransitionApplier{}
	engine := newAdminTransitionEngine(applier)

	body := `{"activity_id":7,"service_code":"reviews","target_status":"platinum"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/subscriptions/transitions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, applier.called)
}
