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

type ServiceRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ServiceMapper
	logger logger.Interface
}

func NewServiceRepository(
	db *gorm.DB,
	logger logger.Interface,
) catalog.ServiceRepository {
	return &ServiceRepositoryImpl{
		db:     db,
		mapper: mappers.NewServiceMapper(),
		logger: logger,
	}
}

func (r *ServiceRepositoryImpl) Create(ctx context.Context, service *catalog.Service) error {
	model, err := r.mapper.ToModel(service)
	if err != nil {
		r.logger.Errorw("failed to map service entity to model", "error", err)
		return fmt.Errorf("failed to map service entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create service in database", "error", err)
		return fmt.Errorf("failed to create service: %w", err)
	}

	if err := service.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set service ID", "error", err)
		return fmt.Errorf("failed to set service ID: %w", err)
	}

	r.logger.Infow("service created", "id", model.ID, "code", model.Code)
	return nil
}

func (r *ServiceRepositoryImpl) GetByID(ctx context.Context, id uint) (*catalog.Service, error) {
	var model models.ServiceModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, catalog.ErrServiceNotFound
		}
		r.logger.Errorw("failed to get service by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get service: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *ServiceRepositoryImpl) GetByCode(ctx context.Context, code string) (*catalog.Service, error) {
	var model models.ServiceModel

	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, catalog.ErrServiceNotFound
		}
		r.logger.Errorw("failed to get service by code", "code", code, "error", err)
		return nil, fmt.Errorf("failed to get service: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *ServiceRepositoryImpl) Update(ctx context.Context, service *catalog.Service) error {
	model, err := r.mapper.ToModel(service)
	if err != nil {
		r.logger.Errorw("failed to map service entity to model", "id", service.ID(), "error", err)
		return fmt.Errorf("failed to map service entity: %w", err)
	}

	result := r.db.WithContext(ctx).Model(&models.ServiceModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":                model.Name,
			"description":         model.Description,
			"price_monthly_cents": model.PriceMonthlyCents,
			"price_yearly_cents":  model.PriceYearlyCents,
			"has_free_tier":       model.HasFreeTier,
			"trial_days":          model.TrialDays,
			"addon_price_cents":   model.AddonPriceCents,
			"archived":            model.Archived,
			"updated_at":          model.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update service", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update service: %w", result.Error)
	}

	r.logger.Infow("service updated", "id", model.ID, "code", model.Code)
	return nil
}

func (r *ServiceRepositoryImpl) ListActive(ctx context.Context) ([]*catalog.Service, error) {
	var serviceModels []*models.ServiceModel

	if err := r.db.WithContext(ctx).
		Where("archived = ?", false).
		Order("code ASC").
		Find(&serviceModels).Error; err != nil {
		r.logger.Errorw("failed to list active services", "error", err)
		return nil, fmt.Errorf("failed to list services: %w", err)
	}

	return r.mapper.ToEntities(serviceModels)
}

func (r *ServiceRepositoryImpl) List(ctx context.Context, includeArchived bool) ([]*catalog.Service, error) {
	query := r.db.WithContext(ctx)
	if !includeArchived {
		query = query.Where("archived = ?", false)
	}

	var serviceModels []*models.ServiceModel
	if err := query.Order("code ASC").Find(&serviceModels).Error; err != nil {
		r.logger.Errorw("failed to list services", "error", err)
		return nil, fmt.Errorf("failed to list services: %w", err)
	}

	return r.mapper.ToEntities(serviceModels)
}

func (r *ServiceRepositoryImpl) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.ServiceModel{}).
		Where("code = ?", code).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to check service code existence", "code", code, "error", err)
		return false, fmt.Errorf("failed to check service code: %w", err)
	}
	return count > 0, nil
}
