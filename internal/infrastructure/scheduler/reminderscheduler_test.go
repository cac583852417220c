package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	subscriptionUsecases "centro/internal/application/subscription/usecases"
	"centro/internal/domain/subscription"
	"centro/internal/shared/constants"
	"centro/internal/shared/logger"
)

// stubSubscriptionRepo records the window passed to FindExpiring and returns
// no rows, so sendReminders never reaches the mail path.
type stubSubscriptionRepo struct {
	lastDays int
}

func (s *stubSubscriptionRepo) Create(ctx context.Context, sub *subscription.Subscription) error {
	return nil
}

func (s *stubSubscriptionRepo) GetByID(ctx context.Context, id uint) (*subscription.Subscription, error) {
	return nil, subscription.ErrSubscriptionNotFound
}

func (s *stubSubscriptionRepo) GetBySID(ctx context.Context, sid string) (*subscription.Subscription, error) {
	return nil, subscription.ErrSubscriptionNotFound
}

func (s *stubSubscriptionRepo) GetByActivityAndService(ctx context.Context, activityID uint, serviceCode string) (*subscription.Subscription, error) {
	return nil, nil
}

func (s *stubSubscriptionRepo) GetByActivityID(ctx context.Context, activityID uint) ([]*subscription.Subscription, error) {
	return nil, nil
}

func (s *stubSubscriptionRepo) GetByOrganizationID(ctx context.Context, organizationID uint) ([]*subscription.Subscription, error) {
	return nil, nil
}

func (s *stubSubscriptionRepo) Update(ctx context.Context, sub *subscription.Subscription) error {
	return nil
}

func (s *stubSubscriptionRepo) FindExpiring(ctx context.Context, now time.Time, days int) ([]*subscription.Subscription, error) {
	s.lastDays = days
	return nil, nil
}

func (s *stubSubscriptionRepo) FindLapsed(ctx context.Context, now time.Time) ([]*subscription.Subscription, error) {
	return nil, nil
}

func (s *stubSubscriptionRepo) List(ctx context.Context, filter subscription.Filter) ([]*subscription.Subscription, int64, error) {
	return nil, 0, nil
}

func (s *stubSubscriptionRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	return 0, nil
}

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

func TestSendReminders_UsesConfiguredWindow(t *testing.T) {
	repo := &stubSubscriptionRepo{}
	uc := subscriptionUsecases.NewFindExpiringUseCase(repo, nopLogger{})

	s := NewReminderScheduler(uc, nil, nil, nil, nil, time.Hour, 10, nopLogger{})
	s.sendReminders(context.Background())

	assert.Equal(t, 10, repo.lastDays)
}

func TestSendReminders_ZeroWindowFallsBackToDefault(t *testing.T) {
	repo := &stubSubscriptionRepo{}
	uc := subscriptionUsecases.NewFindExpiringUseCase(repo, nopLogger{})

	s := NewReminderScheduler(uc, nil, nil, nil, nil, time.Hour, 0, nopLogger{})
	s.sendReminders(context.Background())

	assert.Equal(t, constants.ExpiringSoonDays, repo.lastDays)
}
