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

type ListActivityStatusesQuery struct {
	ActivityID uint
}

// ListActivityStatusesUseCase resolves every catalog service for one
// activity, the payload behind the activity dashboard. Services with no
// subscription record appear as inactive.
type ListActivityStatusesUseCase struct {
	subscriptionRepo subscription.Repository
	serviceRepo      catalog.ServiceRepository
	logger           logger.Interface
}

func NewListActivityStatusesUseCase(
	subscriptionRepo subscription.Repository,
	serviceRepo catalog.ServiceRepository,
	logger logger.Interface,
) *ListActivityStatusesUseCase {
	return &ListActivityStatusesUseCase{
		subscriptionRepo: subscriptionRepo,
		serviceRepo:      serviceRepo,
		logger:           logger,
	}
}

func (uc *ListActivityStatusesUseCase) Execute(ctx context.Context, query ListActivityStatusesQuery) ([]dto.ServiceStatusDTO, error) {
	if query.ActivityID == 0 {
		return nil, fmt.Errorf("activity ID is required")
	}

	services, err := uc.serviceRepo.ListActive(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list services", "error", err)
		return nil, fmt.Errorf("failed to list services: %w", err)
	}

	subs, err := uc.subscriptionRepo.GetByActivityID(ctx, query.ActivityID)
	if err != nil {
		uc.logger.Errorw("failed to list subscriptions", "error", err, "activity_id", query.ActivityID)
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	byService := make(map[string]*subscription.Subscription, len(subs))
	for _, sub := range subs {
		byService[sub.ServiceCode()] = sub
	}

	now := biztime.NowUTC()
	statuses := make([]dto.ServiceStatusDTO, 0, len(services))
	for _, svc := range services {
		res := subscription.Resolve(byService[svc.Code()], now)
		statuses = append(statuses, dto.ToServiceStatusDTO(query.ActivityID, svc.Code(), res))
	}

	return statuses, nil
}
