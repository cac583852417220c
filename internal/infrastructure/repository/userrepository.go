package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"centro/internal/domain/identity"
	"centro/internal/infrastructure/persistence/mappers"
	"centro/internal/infrastructure/persistence/models"
	"centro/internal/shared/logger"
)

type UserRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.UserMapper
	logger logger.Interface
}

func NewUserRepository(
	db *gorm.DB,
	logger logger.Interface,
) identity.Repository {
	return &UserRepositoryImpl{
		db:     db,
		mapper: mappers.NewUserMapper(),
		logger: logger,
	}
}

func (r *UserRepositoryImpl) Create(ctx context.Context, user *identity.User) error {
	model, err := r.mapper.ToModel(user)
	if err != nil {
		r.logger.Errorw("failed to map user entity to model", "error", err)
		return fmt.Errorf("failed to map user entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") || strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return identity.ErrEmailAlreadyExists
		}
		r.logger.Errorw("failed to create user in database", "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}

	if err := user.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set user ID", "error", err)
		return fmt.Errorf("failed to set user ID: %w", err)
	}

	r.logger.Infow("user created", "id", model.ID, "role", model.Role)
	return nil
}

func (r *UserRepositoryImpl) GetByID(ctx context.Context, id uint) (*identity.User, error) {
	var model models.UserModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, identity.ErrUserNotFound
		}
		r.logger.Errorw("failed to get user by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *UserRepositoryImpl) GetBySID(ctx context.Context, sid string) (*identity.User, error) {
	var model models.UserModel

	err := r.db.WithContext(ctx).
		Where("sid = ?", sid).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, identity.ErrUserNotFound
		}
		r.logger.Errorw("failed to get user by SID", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *UserRepositoryImpl) GetByEmail(ctx context.Context, email string) (*identity.User, error) {
	var model models.UserModel

	err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *UserRepositoryImpl) Update(ctx context.Context, user *identity.User) error {
	model, err := r.mapper.ToModel(user)
	if err != nil {
		r.logger.Errorw("failed to map user entity to model", "id", user.ID(), "error", err)
		return fmt.Errorf("failed to map user entity: %w", err)
	}

	result := r.db.WithContext(ctx).Model(&models.UserModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"email":           model.Email,
			"password_hash":   model.PasswordHash,
			"name":            model.Name,
			"role":            model.Role,
			"organization_id": model.OrganizationID,
			"activity_id":     model.ActivityID,
			"disabled":        model.Disabled,
			"updated_at":      model.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update user", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update user: %w", result.Error)
	}

	r.logger.Infow("user updated", "id", model.ID)
	return nil
}
