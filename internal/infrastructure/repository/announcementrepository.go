package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"centro/internal/domain/communication"
	"centro/internal/infrastructure/persistence/mappers"
	"centro/internal/infrastructure/persistence/models"
	"centro/internal/shared/logger"
)

type AnnouncementRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AnnouncementMapper
	logger logger.Interface
}

func NewAnnouncementRepository(
	db *gorm.DB,
	logger logger.Interface,
) communication.Repository {
	return &AnnouncementRepositoryImpl{
		db:     db,
		mapper: mappers.NewAnnouncementMapper(),
		logger: logger,
	}
}

func (r *AnnouncementRepositoryImpl) Create(ctx context.Context, announcement *communication.Announcement) error {
	model, err := r.mapper.ToModel(announcement)
	if err != nil {
		r.logger.Errorw("failed to map announcement entity to model", "error", err)
		return fmt.Errorf("failed to map announcement entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create announcement in database", "error", err)
		return fmt.Errorf("failed to create announcement: %w", err)
	}

	if err := announcement.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set announcement ID", "error", err)
		return fmt.Errorf("failed to set announcement ID: %w", err)
	}

	r.logger.Infow("announcement created", "id", model.ID, "title", model.Title)
	return nil
}

func (r *AnnouncementRepositoryImpl) GetByID(ctx context.Context, id uint) (*communication.Announcement, error) {
	var model models.AnnouncementModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, communication.ErrAnnouncementNotFound
		}
		r.logger.Errorw("failed to get announcement by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get announcement: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *AnnouncementRepositoryImpl) GetBySID(ctx context.Context, sid string) (*communication.Announcement, error) {
	var model models.AnnouncementModel

	if err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, communication.ErrAnnouncementNotFound
		}
		r.logger.Errorw("failed to get announcement by SID", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get announcement: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *AnnouncementRepositoryImpl) Update(ctx context.Context, announcement *communication.Announcement) error {
	model, err := r.mapper.ToModel(announcement)
	if err != nil {
		r.logger.Errorw("failed to map announcement entity to model", "id", announcement.ID(), "error", err)
		return fmt.Errorf("failed to map announcement entity: %w", err)
	}

	result := r.db.WithContext(ctx).Model(&models.AnnouncementModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"title":         model.Title,
			"body_markdown": model.BodyMarkdown,
			"body_html":     model.BodyHTML,
			"audience":      model.Audience,
			"status":        model.Status,
			"published_at":  model.PublishedAt,
			"updated_at":    model.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update announcement", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update announcement: %w", result.Error)
	}

	r.logger.Infow("announcement updated", "id", model.ID, "status", model.Status)
	return nil
}

func (r *AnnouncementRepositoryImpl) List(ctx context.Context, status *communication.AnnouncementStatus, offset, limit int) ([]*communication.Announcement, int64, error) {
	var announcementModels []*models.AnnouncementModel
	var total int64

	query := r.db.WithContext(ctx).Model(&models.AnnouncementModel{})
	if status != nil {
		query = query.Where("status = ?", string(*status))
	}

	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count announcements", "error", err)
		return nil, 0, fmt.Errorf("failed to count announcements: %w", err)
	}

	query = query.Order("created_at DESC")
	if limit > 0 {
		query = query.Offset(offset).Limit(limit)
	}

	if err := query.Find(&announcementModels).Error; err != nil {
		r.logger.Errorw("failed to list announcements", "error", err)
		return nil, 0, fmt.Errorf("failed to list announcements: %w", err)
	}

	entities, err := r.mapper.ToEntities(announcementModels)
	if err != nil {
		return nil, 0, err
	}

	return entities, total, nil
}

func (r *AnnouncementRepositoryImpl) ListPublishedFor(ctx context.Context, isAgency bool, offset, limit int) ([]*communication.Announcement, int64, error) {
	var announcementModels []*models.AnnouncementModel
	var total int64

	audience := string(communication.AudienceSingles)
	if isAgency {
		audience = string(communication.AudienceAgencies)
	}

	query := r.db.WithContext(ctx).Model(&models.AnnouncementModel{}).
		Where("status = ?", string(communication.AnnouncementPublished)).
		Where("audience IN ?", []string{string(communication.AudienceAll), audience})

	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count published announcements", "error", err)
		return nil, 0, fmt.Errorf("failed to count announcements: %w", err)
	}

	query = query.Order("published_at DESC")
	if limit > 0 {
		query = query.Offset(offset).Limit(limit)
	}

	if err := query.Find(&announcementModels).Error; err != nil {
		r.logger.Errorw("failed to list published announcements", "error", err)
		return nil, 0, fmt.Errorf("failed to list announcements: %w", err)
	}

	entities, err := r.mapper.ToEntities(announcementModels)
	if err != nil {
		return nil, 0, err
	}

	return entities, total, nil
}
