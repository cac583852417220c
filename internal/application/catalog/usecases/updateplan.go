package usecases

import (
	"context"
	"fmt"

	"centro/internal/application/catalog/dto"
	"centro/internal/domain/catalog"
	"centro/internal/shared/logger"
)

// UpdatePlanCommand carries partial updates; nil fields stay untouched.
type UpdatePlanCommand struct {
	PlanID            uint
	PriceMonthlyCents *int64
	PriceYearlyCents  *int64
	Features          []string
	MarkDefault       bool
}

type UpdatePlanUseCase struct {
	planRepo catalog.PlanRepository
	logger   logger.Interface
}

func NewUpdatePlanUseCase(planRepo catalog.PlanRepository, logger logger.Interface) *UpdatePlanUseCase {
	return &UpdatePlanUseCase{planRepo: planRepo, logger: logger}
}

func (uc *UpdatePlanUseCase) Execute(ctx context.Context, cmd UpdatePlanCommand) (*dto.PlanDTO, error) {
	if cmd.PlanID == 0 {
		return nil, fmt.Errorf("plan ID is required")
	}

	plan, err := uc.planRepo.GetByID(ctx, cmd.PlanID)
	if err != nil {
		uc.logger.Errorw("failed to get plan", "error", err, "plan_id", cmd.PlanID)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	if cmd.PriceMonthlyCents != nil || cmd.PriceYearlyCents != nil {
		monthly := plan.PriceMonthlyCents()
		if cmd.PriceMonthlyCents != nil {
			monthly = *cmd.PriceMonthlyCents
		}
		yearly := plan.PriceYearlyCents()
		if cmd.PriceYearlyCents != nil {
			yearly = *cmd.PriceYearlyCents
		}
		if err := plan.UpdatePricing(monthly, yearly); err != nil {
			return nil, err
		}
	}

	if cmd.Features != nil {
		plan.UpdateFeatures(cmd.Features)
	}

	if cmd.MarkDefault {
		plan.MarkDefault()
	}

	if err := uc.planRepo.Update(ctx, plan); err != nil {
		uc.logger.Errorw("failed to update plan", "error", err, "plan_sid", plan.SID())
		return nil, fmt.Errorf("failed to update plan: %w", err)
	}

	uc.logger.Infow("plan updated", "plan_sid", plan.SID(), "code", plan.Code())
	return dto.ToPlanDTO(plan), nil
}
