package scheduler

import (
	"context"
	"sync"
	"time"

	subscriptionDTO "centro/internal/application/subscription/dto"
	subscriptionUsecases "centro/internal/application/subscription/usecases"
	"centro/internal/domain/account"
	"centro/internal/domain/catalog"
	"centro/internal/infrastructure/email"
	"centro/internal/shared/logger"
)

// ReminderScheduler emails organizations whose subscriptions close within
// the urgency window. Recipients come from the owning organization's billing
// email; activities without an organization are skipped.
type ReminderScheduler struct {
	findExpiringUC   *subscriptionUsecases.FindExpiringUseCase
	activityRepo     account.ActivityRepository
	organizationRepo account.OrganizationRepository
	serviceRepo      catalog.ServiceRepository
	sender           email.ReminderSender
	logger           logger.Interface
	stopChan         chan struct{}
	stopOnce         sync.Once
	wg               sync.WaitGroup
	interval         time.Duration
	withinDays       int
}

func NewReminderScheduler(
	findExpiringUC *subscriptionUsecases.FindExpiringUseCase,
	activityRepo account.ActivityRepository,
	organizationRepo account.OrganizationRepository,
	serviceRepo catalog.ServiceRepository,
	sender email.ReminderSender,
	interval time.Duration,
	withinDays int,
	logger logger.Interface,
) *ReminderScheduler {
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	return &ReminderScheduler{
		findExpiringUC:   findExpiringUC,
		activityRepo:     activityRepo,
		organizationRepo: organizationRepo,
		serviceRepo:      serviceRepo,
		sender:           sender,
		logger:           logger,
		stopChan:         make(chan struct{}),
		interval:         interval,
		withinDays:       withinDays,
	}
}

func (s *ReminderScheduler) Start(ctx context.Context) {
	s.logger.Infow("starting reminder scheduler", "interval", s.interval)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.runLoop(ctx)
	}()
}

func (s *ReminderScheduler) Stop() {
	s.stopOnce.Do(func() {
		s.logger.Infow("stopping reminder scheduler")
		close(s.stopChan)
		s.wg.Wait()
		s.logger.Infow("reminder scheduler stopped")
	})
}

func (s *ReminderScheduler) runLoop(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Infow("reminder scheduler stopped due to context cancellation")
			return
		case <-s.stopChan:
			return
		case <-ticker.C:
			s.sendReminders(ctx)
		}
	}
}

func (s *ReminderScheduler) sendReminders(ctx context.Context) {
	expiring, err := s.findExpiringUC.Execute(ctx, subscriptionUsecases.FindExpiringQuery{WithinDays: s.withinDays})
	if err != nil {
		s.logger.Errorw("failed to load expiring subscriptions", "error", err)
		return
	}

	sent := 0
	for _, sub := range expiring {
		if err := s.remind(ctx, sub); err != nil {
			s.logger.Warnw("failed to send renewal reminder",
				"subscription_sid", sub.SID,
				"error", err,
			)
			continue
		}
		sent++
	}

	if sent > 0 {
		s.logger.Infow("renewal reminders sent", "count", sent, "expiring", len(expiring))
	}
}

func (s *ReminderScheduler) remind(ctx context.Context, sub *subscriptionDTO.SubscriptionDTO) error {
	activity, err := s.activityRepo.GetByID(ctx, sub.ActivityID)
	if err != nil {
		return err
	}
	if activity.OrganizationID() == nil {
		s.logger.Debugw("skipping reminder for detached activity", "activity_id", sub.ActivityID)
		return nil
	}

	org, err := s.organizationRepo.GetByID(ctx, *activity.OrganizationID())
	if err != nil {
		return err
	}
	if org.BillingEmail() == "" {
		s.logger.Debugw("skipping reminder, organization has no billing email", "organization_id", org.ID())
		return nil
	}

	svc, err := s.serviceRepo.GetByCode(ctx, sub.ServiceCode)
	if err != nil {
		return err
	}

	deadline := s.deadlineFor(sub)
	if deadline == nil || sub.DaysRemaining == nil {
		return nil
	}

	return s.sender.SendRenewalReminder(org.BillingEmail(), activity.Name(), svc.Name(), *deadline, *sub.DaysRemaining)
}

// deadlineFor mirrors the resolver's date precedence: trials run on the
// trial window, stripe on the current period, bank transfer on the manual
// renewal date with the period end as fallback.
func (s *ReminderScheduler) deadlineFor(sub *subscriptionDTO.SubscriptionDTO) *time.Time {
	if sub.Status == "trial" {
		return sub.TrialEndsAt
	}
	if sub.PaymentMethod == "stripe" && sub.CurrentPeriodEnd != nil {
		return sub.CurrentPeriodEnd
	}
	if sub.ManualRenewDate != nil {
		return sub.ManualRenewDate
	}
	return sub.CurrentPeriodEnd
}
