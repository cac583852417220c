package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"centro/internal/domain/account"
	"centro/internal/infrastructure/persistence/mappers"
	"centro/internal/infrastructure/persistence/models"
	"centro/internal/shared/logger"
)

type ActivityRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ActivityMapper
	logger logger.Interface
}

func NewActivityRepository(
	db *gorm.DB,
	logger logger.Interface,
) account.ActivityRepository {
	return &ActivityRepositoryImpl{
		db:     db,
		mapper: mappers.NewActivityMapper(),
		logger: logger,
	}
}

func (r *ActivityRepositoryImpl) Create(ctx context.Context, activity *account.Activity) error {
	model, err := r.mapper.ToModel(activity)
	if err != nil {
		r.logger.Errorw("failed to map activity entity to model", "error", err)
		return fmt.Errorf("failed to map activity entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create activity in database", "error", err)
		return fmt.Errorf("failed to create activity: %w", err)
	}

	if err := activity.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set activity ID", "error", err)
		return fmt.Errorf("failed to set activity ID: %w", err)
	}

	r.logger.Infow("activity created", "id", model.ID, "name", model.Name)
	return nil
}

func (r *ActivityRepositoryImpl) GetByID(ctx context.Context, id uint) (*account.Activity, error) {
	var model models.ActivityModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, account.ErrActivityNotFound
		}
		r.logger.Errorw("failed to get activity by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get activity: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *ActivityRepositoryImpl) GetBySID(ctx context.Context, sid string) (*account.Activity, error) {
	var model models.ActivityModel

	if err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, account.ErrActivityNotFound
		}
		r.logger.Errorw("failed to get activity by SID", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get activity: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *ActivityRepositoryImpl) Update(ctx context.Context, activity *account.Activity) error {
	model, err := r.mapper.ToModel(activity)
	if err != nil {
		r.logger.Errorw("failed to map activity entity to model", "id", activity.ID(), "error", err)
		return fmt.Errorf("failed to map activity entity: %w", err)
	}

	result := r.db.WithContext(ctx).Model(&models.ActivityModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"organization_id": model.OrganizationID,
			"name":            model.Name,
			"vat_number":      model.VATNumber,
			"city":            model.City,
			"updated_at":      model.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update activity", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update activity: %w", result.Error)
	}

	r.logger.Infow("activity updated", "id", model.ID)
	return nil
}

func (r *ActivityRepositoryImpl) ListByOrganizationID(ctx context.Context, organizationID uint) ([]*account.Activity, error) {
	var activityModels []*models.ActivityModel

	if err := r.db.WithContext(ctx).
		Where("organization_id = ?", organizationID).
		Order("name ASC").
		Find(&activityModels).Error; err != nil {
		r.logger.Errorw("failed to list activities by organization ID", "organization_id", organizationID, "error", err)
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}

	return r.mapper.ToEntities(activityModels)
}

func (r *ActivityRepositoryImpl) CountByOrganizationID(ctx context.Context, organizationID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.ActivityModel{}).
		Where("organization_id = ?", organizationID).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count activities by organization ID", "organization_id", organizationID, "error", err)
		return 0, fmt.Errorf("failed to count activities: %w", err)
	}
	return count, nil
}

func (r *ActivityRepositoryImpl) List(ctx context.Context, page, pageSize int) ([]*account.Activity, int64, error) {
	var activityModels []*models.ActivityModel
	var total int64

	query := r.db.WithContext(ctx).Model(&models.ActivityModel{})

	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count activities", "error", err)
		return nil, 0, fmt.Errorf("failed to count activities: %w", err)
	}

	query = query.Order("created_at DESC")
	if page > 0 && pageSize > 0 {
		query = query.Offset((page - 1) * pageSize).Limit(pageSize)
	}

	if err := query.Find(&activityModels).Error; err != nil {
		r.logger.Errorw("failed to list activities", "error", err)
		return nil, 0, fmt.Errorf("failed to list activities: %w", err)
	}

	entities, err := r.mapper.ToEntities(activityModels)
	if err != nil {
		return nil, 0, err
	}

	return entities, total, nil
}
