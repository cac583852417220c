package mappers

import (
	"fmt"

	"centro/internal/domain/communication"
	"centro/internal/infrastructure/persistence/models"
)

type AnnouncementMapper interface {
	ToEntity(model *models.AnnouncementModel) (*communication.Announcement, error)
	ToModel(entity *communication.Announcement) (*models.AnnouncementModel, error)
	ToEntities(models []*models.AnnouncementModel) ([]*communication.Announcement, error)
}

type AnnouncementMapperImpl struct{}

func NewAnnouncementMapper() AnnouncementMapper {
	return &AnnouncementMapperImpl{}
}

func (m *AnnouncementMapperImpl) ToEntity(model *models.AnnouncementModel) (*communication.Announcement, error) {
	if model == nil {
		return nil, nil
	}

	return communication.ReconstructAnnouncement(communication.AnnouncementReconstructParams{
		ID:           model.ID,
		SID:          model.SID,
		Title:        model.Title,
		BodyMarkdown: model.BodyMarkdown,
		BodyHTML:     model.BodyHTML,
		Audience:     communication.Audience(model.Audience),
		Status:       communication.AnnouncementStatus(model.Status),
		AuthorID:     model.AuthorID,
		PublishedAt:  model.PublishedAt,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	})
}

func (m *AnnouncementMapperImpl) ToModel(entity *communication.Announcement) (*models.AnnouncementModel, error) {
	if entity == nil {
		return nil, fmt.Errorf("announcement entity cannot be nil")
	}

	return &models.AnnouncementModel{
		ID:           entity.ID(),
		SID:          entity.SID(),
		Title:        entity.Title(),
		BodyMarkdown: entity.BodyMarkdown(),
		BodyHTML:     entity.BodyHTML(),
		Audience:     string(entity.Audience()),
		Status:       string(entity.Status()),
		AuthorID:     entity.AuthorID(),
		PublishedAt:  entity.PublishedAt(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}, nil
}

func (m *AnnouncementMapperImpl) ToEntities(announcementModels []*models.AnnouncementModel) ([]*communication.Announcement, error) {
	entities := make([]*communication.Announcement, 0, len(announcementModels))
	for _, model := range announcementModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map announcement %d: %w", model.ID, err)
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
