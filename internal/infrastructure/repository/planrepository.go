package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"centro/internal/domain/catalog"
	"centro/internal/infrastructure/persistence/mappers"
	"centro/internal/infrastructure/persistence/models"
	"centro/internal/shared/logger"
)

type PlanRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.PlanMapper
	logger logger.Interface
}

func NewPlanRepository(
	db *gorm.DB,
	logger logger.Interface,
) catalog.PlanRepository {
	return &PlanRepositoryImpl{
		db:     db,
		mapper: mappers.NewPlanMapper(),
		logger: logger,
	}
}

func (r *PlanRepositoryImpl) Create(ctx context.Context, plan *catalog.Plan) error {
	model, err := r.mapper.ToModel(plan)
	if err != nil {
		r.logger.Errorw("failed to map plan entity to model", "error", err)
		return fmt.Errorf("failed to map plan entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create plan in database", "error", err)
		return fmt.Errorf("failed to create plan: %w", err)
	}

	if err := plan.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set plan ID", "error", err)
		return fmt.Errorf("failed to set plan ID: %w", err)
	}

	r.logger.Infow("plan created", "id", model.ID, "service_id", model.ServiceID, "code", model.Code)
	return nil
}

func (r *PlanRepositoryImpl) GetByID(ctx context.Context, id uint) (*catalog.Plan, error) {
	var model models.PlanModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, catalog.ErrPlanNotFound
		}
		r.logger.Errorw("failed to get plan by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *PlanRepositoryImpl) GetByServiceAndCode(ctx context.Context, serviceID uint, code string) (*catalog.Plan, error) {
	var model models.PlanModel

	err := r.db.WithContext(ctx).
		Where("service_id = ? AND code = ?", serviceID, code).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, catalog.ErrPlanNotFound
		}
		r.logger.Errorw("failed to get plan by service and code", "service_id", serviceID, "code", code, "error", err)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *PlanRepositoryImpl) Update(ctx context.Context, plan *catalog.Plan) error {
	model, err := r.mapper.ToModel(plan)
	if err != nil {
		r.logger.Errorw("failed to map plan entity to model", "id", plan.ID(), "error", err)
		return fmt.Errorf("failed to map plan entity: %w", err)
	}

	result := r.db.WithContext(ctx).Model(&models.PlanModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":                model.Name,
			"price_monthly_cents": model.PriceMonthlyCents,
			"price_yearly_cents":  model.PriceYearlyCents,
			"features":            model.Features,
			"is_default":          model.IsDefault,
			"updated_at":          model.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update plan", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update plan: %w", result.Error)
	}

	r.logger.Infow("plan updated", "id", model.ID, "code", model.Code)
	return nil
}

func (r *PlanRepositoryImpl) ListByServiceID(ctx context.Context, serviceID uint) ([]*catalog.Plan, error) {
	var planModels []*models.PlanModel

	if err := r.db.WithContext(ctx).
		Where("service_id = ?", serviceID).
		Order("is_default DESC, code ASC").
		Find(&planModels).Error; err != nil {
		r.logger.Errorw("failed to list plans by service ID", "service_id", serviceID, "error", err)
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	return r.mapper.ToEntities(planModels)
}
