package usecases

import (
	"context"
	"errors"
	"fmt"

	"centro/internal/application/catalog/dto"
	"centro/internal/domain/catalog"
	"centro/internal/shared/logger"
)

type CreatePlanCommand struct {
	ServiceID         uint
	Code              string
	Name              string
	PriceMonthlyCents int64
	PriceYearlyCents  int64
	Features          []string
	IsDefault         bool
}

type CreatePlanUseCase struct {
	planRepo    catalog.PlanRepository
	serviceRepo catalog.ServiceRepository
	logger      logger.Interface
}

func NewCreatePlanUseCase(
	planRepo catalog.PlanRepository,
	serviceRepo catalog.ServiceRepository,
	logger logger.Interface,
) *CreatePlanUseCase {
	return &CreatePlanUseCase{planRepo: planRepo, serviceRepo: serviceRepo, logger: logger}
}

func (uc *CreatePlanUseCase) Execute(ctx context.Context, cmd CreatePlanCommand) (*dto.PlanDTO, error) {
	svc, err := uc.serviceRepo.GetByID(ctx, cmd.ServiceID)
	if err != nil {
		uc.logger.Errorw("failed to get service", "error", err, "service_id", cmd.ServiceID)
		return nil, fmt.Errorf("failed to get service: %w", err)
	}

	existing, err := uc.planRepo.GetByServiceAndCode(ctx, svc.ID(), cmd.Code)
	if err != nil && !errors.Is(err, catalog.ErrPlanNotFound) {
		uc.logger.Errorw("failed to check plan code", "error", err, "code", cmd.Code)
		return nil, fmt.Errorf("failed to check plan code: %w", err)
	}
	if existing != nil {
		return nil, catalog.ErrPlanCodeExists
	}

	plan, err := catalog.NewPlan(svc.ID(), cmd.Code, cmd.Name, cmd.PriceMonthlyCents, cmd.PriceYearlyCents, cmd.Features)
	if err != nil {
		return nil, err
	}
	if cmd.IsDefault {
		plan.MarkDefault()
	}

	if err := uc.planRepo.Create(ctx, plan); err != nil {
		uc.logger.Errorw("failed to create plan", "error", err, "code", cmd.Code)
		return nil, fmt.Errorf("failed to create plan: %w", err)
	}

	uc.logger.Infow("plan created", "plan_sid", plan.SID(), "service_code", svc.Code(), "code", plan.Code())
	return dto.ToPlanDTO(plan), nil
}
