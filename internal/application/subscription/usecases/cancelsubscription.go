package usecases

import (
	"context"
	"fmt"

	"centro/internal/domain/subscription"
	"centro/internal/shared/biztime"
	"centro/internal/shared/logger"
)

type CancelSubscriptionCommand struct {
	ActivityID  uint
	ServiceCode string
}

// CancelSubscriptionUseCase cancels a subscription. The record is kept for
// history; cancelling an already cancelled subscription is a no-op.
type CancelSubscriptionUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewCancelSubscriptionUseCase(
	subscriptionRepo subscription.Repository,
	logger logger.Interface,
) *CancelSubscriptionUseCase {
	return &CancelSubscriptionUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *CancelSubscriptionUseCase) Execute(ctx context.Context, cmd CancelSubscriptionCommand) error {
	if cmd.ActivityID == 0 {
		return fmt.Errorf("activity ID is required")
	}
	if cmd.ServiceCode == "" {
		return fmt.Errorf("service code is required")
	}

	sub, err := uc.subscriptionRepo.GetByActivityAndService(ctx, cmd.ActivityID, cmd.ServiceCode)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "error", err, "activity_id", cmd.ActivityID)
		return fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		return subscription.ErrSubscriptionNotFound
	}

	sub.Cancel(biztime.NowUTC())

	if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
		uc.logger.Errorw("failed to update subscription", "error", err, "subscription_sid", sub.SID())
		return fmt.Errorf("failed to update subscription: %w", err)
	}

	uc.logger.Infow("subscription cancelled",
		"subscription_sid", sub.SID(),
		"activity_id", cmd.ActivityID,
		"service_code", cmd.ServiceCode,
	)

	return nil
}
