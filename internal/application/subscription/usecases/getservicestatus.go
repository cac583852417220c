package usecases

import (
	"context"
	"fmt"

	"centro/internal/application/subscription/dto"
	"centro/internal/domain/subscription"
	"centro/internal/shared/biztime"
	"centro/internal/shared/logger"
)

type GetServiceStatusQuery struct {
	ActivityID  uint
	ServiceCode string
}

// GetServiceStatusUseCase resolves the effective status of one service for
// one activity. A missing subscription record resolves to inactive, it is
// not an error.
type GetServiceStatusUseCase struct {
	subscriptionRepo subscription.Repository
	logger           logger.Interface
}

func NewGetServiceStatusUseCase(
	subscriptionRepo subscription.Repository,
	logger logger.Interface,
) *GetServiceStatusUseCase {
	return &GetServiceStatusUseCase{
		subscriptionRepo: subscriptionRepo,
		logger:           logger,
	}
}

func (uc *GetServiceStatusUseCase) Execute(ctx context.Context, query GetServiceStatusQuery) (*dto.ServiceStatusDTO, error) {
	if query.ActivityID == 0 {
		return nil, fmt.Errorf("activity ID is required")
	}
	if query.ServiceCode == "" {
		return nil, fmt.Errorf("service code is required")
	}

	sub, err := uc.subscriptionRepo.GetByActivityAndService(ctx, query.ActivityID, query.ServiceCode)
	if err != nil {
		uc.logger.Errorw("failed to get subscription",
			"error", err,
			"activity_id", query.ActivityID,
			"service_code", query.ServiceCode,
		)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	res := subscription.Resolve(sub, biztime.NowUTC())
	status := dto.ToServiceStatusDTO(query.ActivityID, query.ServiceCode, res)
	return &status, nil
}
