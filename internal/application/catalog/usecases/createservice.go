package usecases

import (
	"context"
	"fmt"

	"centro/internal/application/catalog/dto"
	"centro/internal/domain/catalog"
	"centro/internal/shared/logger"
)

type CreateServiceCommand struct {
	Code              string
	Name              string
	Description       string
	PriceMonthlyCents int64
	PriceYearlyCents  int64
	HasFreeTier       bool
	TrialDays         int
	AddonPriceCents   int64
}

type CreateServiceUseCase struct {
	serviceRepo catalog.ServiceRepository
	logger      logger.Interface
}

func NewCreateServiceUseCase(serviceRepo catalog.ServiceRepository, logger logger.Interface) *CreateServiceUseCase {
	return &CreateServiceUseCase{serviceRepo: serviceRepo, logger: logger}
}

func (uc *CreateServiceUseCase) Execute(ctx context.Context, cmd CreateServiceCommand) (*dto.ServiceDTO, error) {
	exists, err := uc.serviceRepo.ExistsByCode(ctx, cmd.Code)
	if err != nil {
		uc.logger.Errorw("failed to check service code", "error", err, "code", cmd.Code)
		return nil, fmt.Errorf("failed to check service code: %w", err)
	}
	if exists {
		return nil, catalog.ErrServiceCodeExists
	}

	svc, err := catalog.NewService(cmd.Code, cmd.Name, cmd.PriceMonthlyCents, cmd.PriceYearlyCents, cmd.TrialDays)
	if err != nil {
		return nil, err
	}
	if cmd.Description != "" {
		if err := svc.UpdateDetails(cmd.Name, cmd.Description); err != nil {
			return nil, err
		}
	}
	if cmd.HasFreeTier {
		svc.EnableFreeTier()
	}
	if cmd.AddonPriceCents > 0 {
		if err := svc.UpdatePricing(cmd.PriceMonthlyCents, cmd.PriceYearlyCents, cmd.AddonPriceCents); err != nil {
			return nil, err
		}
	}

	if err := uc.serviceRepo.Create(ctx, svc); err != nil {
		uc.logger.Errorw("failed to create service", "error", err, "code", cmd.Code)
		return nil, fmt.Errorf("failed to create service: %w", err)
	}

	uc.logger.Infow("service created", "service_sid", svc.SID(), "code", svc.Code())
	return dto.ToServiceDTO(svc), nil
}
