package usecases

import (
	"context"
	"fmt"

	"centro/internal/application/subscription/dto"
	"centro/internal/domain/subscription"
	"centro/internal/shared/biztime"
	"centro/internal/shared/logger"
)

type ListSubscriptionsQuery struct {
	ActivityID  *uint
	ServiceCode *string
	Status      *string
	Page        int
	PageSize    int
}

// ListSubscriptionsUseCase is the admin listing behind the back-office
// subscription table.
type ListSubscriptionsUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewListSubscriptionsUseCase(
	subscriptionRepo subscription.Repository,
	logger logger.Interface,
) *ListSubscriptionsUseCase {
	return &ListSubscriptionsUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *ListSubscriptionsUseCase) Execute(ctx context.Context, query ListSubscriptionsQuery) ([]*dto.SubscriptionDTO, int64, error) {
	filter := subscription.Filter{
		ActivityID:  query.ActivityID,
		ServiceCode: query.ServiceCode,
		Status:      query.Status,
		Page:        query.Page,
		PageSize:    query.PageSize,
	}

	subs, total, err := uc.subscriptionRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list subscriptions", "error", err)
		return nil, 0, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	return dto.ToSubscriptionDTOList(subs, biztime.NowUTC()), total, nil
}
