package usecases

import (
	"context"
	"fmt"

	"centro/internal/application/catalog/dto"
	"centro/internal/domain/catalog"
	"centro/internal/shared/logger"
)

type ListServicesQuery struct {
	IncludeArchived bool
}

type ListServicesUseCase struct {
	serviceRepo catalog.ServiceRepository
	logger      logger.Interface
}

func NewListServicesUseCase(serviceRepo catalog.ServiceRepository, logger logger.Interface) *ListServicesUseCase {
	return &ListServicesUseCase{serviceRepo: serviceRepo, logger: logger}
}

func (uc *ListServicesUseCase) Execute(ctx context.Context, query ListServicesQuery) ([]*dto.ServiceDTO, error) {
	services, err := uc.serviceRepo.List(ctx, query.IncludeArchived)
	if err != nil {
		uc.logger.Errorw("failed to list services", "error", err)
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return dto.ToServiceDTOList(services), nil
}
