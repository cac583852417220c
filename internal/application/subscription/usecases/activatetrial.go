package usecases

import (
	"context"
	"fmt"

	"centro/internal/application/subscription/dto"
	"centro/internal/domain/catalog"
	"centro/internal/domain/subscription"
	"centro/internal/shared/biztime"
	"centro/internal/shared/logger"
)

// Fallback when the catalog entry carries no trial length.
const defaultTrialDays = 14

type ActivateTrialCommand struct {
	ActivityID  uint
	ServiceCode string
}

// ActivateTrialUseCase is the tenant self-service path: activating a service
// for the first time creates the subscription record in trial. An activity
// gets one trial per service; reactivating an expired trial is an admin
// operation.
type ActivateTrialUseCase struct {
	subscriptionRepo subscription.Repository
	serviceRepo      catalog.ServiceRepository
	logger           logger.Interface
}

func NewActivateTrialUseCase(
	subscriptionRepo subscription.Repository,
	serviceRepo catalog.ServiceRepository,
	logger logger.Interface,
) *ActivateTrialUseCase {
	return &ActivateTrialUseCase{
		subscriptionRepo: subscriptionRepo,
		serviceRepo:      serviceRepo,
		logger:           logger,
	}
}

func (uc *ActivateTrialUseCase) Execute(ctx context.Context, cmd ActivateTrialCommand) (*dto.SubscriptionDTO, error) {
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

	existing, err := uc.subscriptionRepo.GetByActivityAndService(ctx, cmd.ActivityID, cmd.ServiceCode)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "error", err, "activity_id", cmd.ActivityID)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if existing != nil {
		return nil, subscription.ErrSubscriptionExists
	}

	now := biztime.NowUTC()
	trialDays := svc.TrialDays()
	if trialDays == 0 {
		trialDays = defaultTrialDays
	}

	sub, err := subscription.NewTrialSubscription(cmd.ActivityID, cmd.ServiceCode, trialDays, now)
	if err != nil {
		return nil, err
	}

	if err := uc.subscriptionRepo.Create(ctx, sub); err != nil {
		uc.logger.Errorw("failed to create subscription", "error", err, "activity_id", cmd.ActivityID)
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	uc.logger.Infow("trial activated",
		"subscription_sid", sub.SID(),
		"activity_id", cmd.ActivityID,
		"service_code", cmd.ServiceCode,
		"trial_days", trialDays,
	)

	return dto.ToSubscriptionDTO(sub, now), nil
}
