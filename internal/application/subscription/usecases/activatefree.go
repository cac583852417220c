package usecases

import (
	"context"
	"fmt"

	"centro/internal/application/subscription/dto"
	"centro/internal/domain/catalog"
	"centro/internal/domain/subscription"
	vo "centro/internal/domain/subscription/valueobjects"
	"centro/internal/shared/biztime"
	"centro/internal/shared/logger"
)

type ActivateFreeCommand struct {
	ActivityID  uint
	ServiceCode string
}

// ActivateFreeUseCase puts an activity on a service's free tier. Allowed as
// a first activation or as a downgrade from an expired or cancelled state.
type ActivateFreeUseCase struct {
	subscriptionRepo subscription.Repository
	serviceRepo      catalog.ServiceRepository
	logger           logger.Interface
}

func NewActivateFreeUseCase(
	subscriptionRepo subscription.Repository,
	serviceRepo catalog.ServiceRepository,
	logger logger.Interface,
) *ActivateFreeUseCase {
	return &ActivateFreeUseCase{
		subscriptionRepo: subscriptionRepo,
		serviceRepo:      serviceRepo,
		logger:           logger,
	}
}

func (uc *ActivateFreeUseCase) Execute(ctx context.Context, cmd ActivateFreeCommand) (*dto.SubscriptionDTO, error) {
	if cmd.ActivityID == 0 {
		return nil, fmt.Errorf("activity ID is required")
	}
	if cmd.ServiceCode == "" {
		return nil, fmt.Errorf("service code is required")
	}

	svc, err := uc.serviceRepo.GetByCode(ctx, cmd.ServiceCode)
	if err != nil {
		uc.logger.Errorw("failed to get service", "error", err, "service_code", cmd.ServiceCode)
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	if svc.Archived() {
		return nil, catalog.ErrServiceArchived
	}
	if !svc.HasFreeTier() {
		return nil, subscription.ErrFreeTierUnavailable
	}

	sub, err := uc.subscriptionRepo.GetByActivityAndService(ctx, cmd.ActivityID, cmd.ServiceCode)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "error", err, "activity_id", cmd.ActivityID)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	now := biztime.NowUTC()

	if sub == nil {
		sub, err = subscription.NewFreeSubscription(cmd.ActivityID, cmd.ServiceCode, now)
		if err != nil {
			return nil, err
		}
		if err := uc.subscriptionRepo.Create(ctx, sub); err != nil {
			uc.logger.Errorw("failed to create subscription", "error", err, "activity_id", cmd.ActivityID)
			return nil, fmt.Errorf("failed to create subscription: %w", err)
		}
	} else {
		res := subscription.Resolve(sub, now)
		if res.IsActive {
			// Downgrading a live paid subscription goes through an admin.
			return nil, subscription.ErrSubscriptionExists
		}

		policy := subscription.ServicePolicy{HasFreeTier: true, DefaultTrialDays: svc.TrialDays()}
		if err := sub.ApplyTransition(subscription.TransitionRequest{Target: vo.StatusFree}, policy, now); err != nil {
			return nil, err
		}
		if err := uc.subscriptionRepo.Update(ctx, sub); err != nil {
			uc.logger.Errorw("failed to update subscription", "error", err, "subscription_sid", sub.SID())
			return nil, fmt.Errorf("failed to update subscription: %w", err)
		}
	}

	uc.logger.Infow("free tier activated",
		"subscription_sid", sub.SID(),
		"activity_id", cmd.ActivityID,
		"service_code", cmd.ServiceCode,
	)

	return dto.ToSubscriptionDTO(sub, now), nil
}
