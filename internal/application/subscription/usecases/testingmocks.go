package usecases

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"centro/internal/domain/catalog"
	"centro/internal/domain/subscription"
	"centro/internal/shared/logger"
)

type mockSubscriptionRepo struct {
	mock.Mock
}

func (m *mockSubscriptionRepo) Create(ctx context.Context, sub *subscription.Subscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *mockSubscriptionRepo) GetByID(ctx context.Context, id uint) (*subscription.Subscription, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*subscription.Subscription), args.Error(1)
}

func (m *mockSubscriptionRepo) GetBySID(ctx context.Context, sid string) (*subscription.Subscription, error) {
	args := m.Called(ctx, sid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*subscription.Subscription), args.Error(1)
}

func (m *mockSubscriptionRepo) GetByActivityAndService(ctx context.Context, activityID uint, serviceCode string) (*subscription.Subscription, error) {
	args := m.Called(ctx, activityID, serviceCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*subscription.Subscription), args.Error(1)
}

func (m *mockSubscriptionRepo) GetByActivityID(ctx context.Context, activityID uint) ([]*subscription.Subscription, error) {
	args := m.Called(ctx, activityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*subscription.Subscription), args.Error(1)
}

func (m *mockSubscriptionRepo) GetByOrganizationID(ctx context.Context, organizationID uint) ([]*subscription.Subscription, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*subscription.Subscription), args.Error(1)
}

func (m *mockSubscriptionRepo) Update(ctx context.Context, sub *subscription.Subscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *mockSubscriptionRepo) FindExpiring(ctx context.Context, now time.Time, days int) ([]*subscription.Subscription, error) {
	args := m.Called(ctx, now, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*subscription.Subscription), args.Error(1)
}

func (m *mockSubscriptionRepo) FindLapsed(ctx context.Context, now time.Time) ([]*subscription.Subscription, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*subscription.Subscription), args.Error(1)
}

func (m *mockSubscriptionRepo) List(ctx context.Context, filter subscription.Filter) ([]*subscription.Subscription, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*subscription.Subscription), args.Get(1).(int64), args.Error(2)
}

func (m *mockSubscriptionRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

type mockServiceRepo struct {
	mock.Mock
}

func (m *mockServiceRepo) Create(ctx context.Context, service *catalog.Service) error {
	args := m.Called(ctx, service)
	return args.Error(0)
}

func (m *mockServiceRepo) GetByID(ctx context.Context, id uint) (*catalog.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Service), args.Error(1)
}

func (m *mockServiceRepo) GetByCode(ctx context.Context, code string) (*catalog.Service, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Service), args.Error(1)
}

func (m *mockServiceRepo) Update(ctx context.Context, service *catalog.Service) error {
	args := m.Called(ctx, service)
	return args.Error(0)
}

func (m *mockServiceRepo) ListActive(ctx context.Context) ([]*catalog.Service, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Service), args.Error(1)
}

func (m *mockServiceRepo) List(ctx context.Context, includeArchived bool) ([]*catalog.Service, error) {
	args := m.Called(ctx, includeArchived)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Service), args.Error(1)
}

func (m *mockServiceRepo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}

// nopLogger keeps tests quiet without asserting on log lines.
type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...any)                   {}
func (nopLogger) Info(msg string, args ...any)                    {}
func (nopLogger) Warn(msg string, args ...any)                    {}
func (nopLogger) Error(msg string, args ...any)                   {}
func (n nopLogger) With(args ...any) logger.Interface             { return n }
func (n nopLogger) Named(name string) logger.Interface            { return n }
func (nopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

// stubTxManager marks the context so tests can verify repository calls run
// inside the transaction scope.
type stubTxManager struct {
	calls int
}

type stubTxKey struct{}

func (m *stubTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(context.WithValue(ctx, stubTxKey{}, true))
}

func inStubTransaction(ctx context.Context) bool {
	return ctx.Value(stubTxKey{}) != nil
}
