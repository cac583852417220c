package usecases

import (
	"context"
	"fmt"

	"centro/internal/application/catalog/dto"
	"centro/internal/domain/catalog"
	"centro/internal/shared/logger"
)

// UpdateServiceCommand carries partial updates; nil fields stay untouched.
type UpdateServiceCommand struct {
	ServiceID         uint
	Name              *string
	Description       *string
	PriceMonthlyCents *int64
	PriceYearlyCents  *int64
	AddonPriceCents   *int64
	HasFreeTier       *bool
	TrialDays         *int
}

type UpdateServiceUseCase struct {
	serviceRepo catalog.ServiceRepository
	logger      logger.Interface
}

func NewUpdateServiceUseCase(serviceRepo catalog.ServiceRepository, logger logger.Interface) *UpdateServiceUseCase {
	return &UpdateServiceUseCase{serviceRepo: serviceRepo, logger: logger}
}

func (uc *UpdateServiceUseCase) Execute(ctx context.Context, cmd UpdateServiceCommand) (*dto.ServiceDTO, error) {
	if cmd.ServiceID == 0 {
		return nil, fmt.Errorf("service ID is required")
	}

	svc, err := uc.serviceRepo.GetByID(ctx, cmd.ServiceID)
	if err != nil {
		uc.logger.Errorw("failed to get service", "error", err, "service_id", cmd.ServiceID)
		return nil, fmt.Errorf("failed to get service: %w", err)
	}

	if cmd.Name != nil || cmd.Description != nil {
		name := svc.Name()
		if cmd.Name != nil {
			name = *cmd.Name
		}
		description := svc.Description()
		if cmd.Description != nil {
			description = *cmd.Description
		}
		if err := svc.UpdateDetails(name, description); err != nil {
			return nil, err
		}
	}

	if cmd.PriceMonthlyCents != nil || cmd.PriceYearlyCents != nil || cmd.AddonPriceCents != nil {
		monthly := svc.PriceMonthlyCents()
		if cmd.PriceMonthlyCents != nil {
			monthly = *cmd.PriceMonthlyCents
		}
		yearly := svc.PriceYearlyCents()
		if cmd.PriceYearlyCents != nil {
			yearly = *cmd.PriceYearlyCents
		}
		addon := svc.AddonPriceCents()
		if cmd.AddonPriceCents != nil {
			addon = *cmd.AddonPriceCents
		}
		if err := svc.UpdatePricing(monthly, yearly, addon); err != nil {
			return nil, err
		}
	}

	if cmd.HasFreeTier != nil {
		if *cmd.HasFreeTier {
			svc.EnableFreeTier()
		} else {
			svc.DisableFreeTier()
		}
	}

	if cmd.TrialDays != nil {
		if err := svc.SetTrialDays(*cmd.TrialDays); err != nil {
			return nil, err
		}
	}

	if err := uc.serviceRepo.Update(ctx, svc); err != nil {
		uc.logger.Errorw("failed to update service", "error", err, "service_sid", svc.SID())
		return nil, fmt.Errorf("failed to update service: %w", err)
	}

	uc.logger.Infow("service updated", "service_sid", svc.SID(), "code", svc.Code())
	return dto.ToServiceDTO(svc), nil
}
