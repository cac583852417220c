package usecases

import (
	"context"
	"fmt"

	"centro/internal/application/catalog/dto"
	"centro/internal/domain/catalog"
	"centro/internal/shared/logger"
)

type ListPlansQuery struct {
	ServiceID uint
}

type ListPlansUseCase struct {
	planRepo catalog.PlanRepository
	logger   logger.Interface
}

func NewListPlansUseCase(planRepo catalog.PlanRepository, logger logger.Interface) *ListPlansUseCase {
	return &ListPlansUseCase{planRepo: planRepo, logger: logger}
}

func (uc *ListPlansUseCase) Execute(ctx context.Context, query ListPlansQuery) ([]*dto.PlanDTO, error) {
	if query.ServiceID == 0 {
		return nil, fmt.Errorf("service ID is required")
	}

	plans, err := uc.planRepo.ListByServiceID(ctx, query.ServiceID)
	if err != nil {
		uc.logger.Errorw("failed to list plans", "error", err, "service_id", query.ServiceID)
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}
	return dto.ToPlanDTOList(plans), nil
}
