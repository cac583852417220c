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

type OrganizationRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.OrganizationMapper
	logger logger.Interface
}

func NewOrganizationRepository(
	db *gorm.DB,
	logger logger.Interface,
) account.OrganizationRepository {
	return &OrganizationRepositoryImpl{
		db:     db,
		mapper: mappers.NewOrganizationMapper(),
		logger: logger,
	}
}

func (r *OrganizationRepositoryImpl) Create(ctx context.Context, org *account.Organization) error {
	model, err := r.mapper.ToModel(org)
	if err != nil {
		r.logger.Errorw("failed to map organization entity to model", "error", err)
		return fmt.Errorf("failed to map organization entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create organization in database", "error", err)
		return fmt.Errorf("failed to create organization: %w", err)
	}

	if err := org.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set organization ID", "error", err)
		return fmt.Errorf("failed to set organization ID: %w", err)
	}

	r.logger.Infow("organization created", "id", model.ID, "account_type", model.AccountType)
	return nil
}

func (r *OrganizationRepositoryImpl) GetByID(ctx context.Context, id uint) (*account.Organization, error) {
	var model models.OrganizationModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, account.ErrOrganizationNotFound
		}
		r.logger.Errorw("failed to get organization by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *OrganizationRepositoryImpl) Update(ctx context.Context, org *account.Organization) error {
	model, err := r.mapper.ToModel(org)
	if err != nil {
		r.logger.Errorw("failed to map organization entity to model", "id", org.ID(), "error", err)
		return fmt.Errorf("failed to map organization entity: %w", err)
	}

	result := r.db.WithContext(ctx).Model(&models.OrganizationModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"name":          model.Name,
			"account_type":  model.AccountType,
			"billing_email": model.BillingEmail,
			"suspended":     model.Suspended,
			"updated_at":    model.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update organization", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update organization: %w", result.Error)
	}

	r.logger.Infow("organization updated", "id", model.ID)
	return nil
}

func (r *OrganizationRepositoryImpl) List(ctx context.Context, page, pageSize int) ([]*account.Organization, int64, error) {
	var orgModels []*models.OrganizationModel
	var total int64

	query := r.db.WithContext(ctx).Model(&models.OrganizationModel{})

	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count organizations", "error", err)
		return nil, 0, fmt.Errorf("failed to count organizations: %w", err)
	}

	query = query.Order("created_at DESC")
	if page > 0 && pageSize > 0 {
		query = query.Offset((page - 1) * pageSize).Limit(pageSize)
	}

	if err := query.Find(&orgModels).Error; err != nil {
		r.logger.Errorw("failed to list organizations", "error", err)
		return nil, 0, fmt.Errorf("failed to list organizations: %w", err)
	}

	entities, err := r.mapper.ToEntities(orgModels)
	if err != nil {
		return nil, 0, err
	}

	return entities, total, nil
}
