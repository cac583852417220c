package mappers

import (
	"fmt"

	"centro/internal/domain/catalog"
	"centro/internal/infrastructure/persistence/models"
)

type ServiceMapper interface {
	ToEntity(model *models.ServiceModel) (*catalog.Service, error)
	ToModel(entity *catalog.Service) (*models.ServiceModel, error)
	ToEntities(models []*models.ServiceModel) ([]*catalog.Service, error)
}

type ServiceMapperImpl struct{}

func NewServiceMapper() ServiceMapper {
	return &ServiceMapperImpl{}
}

func (m *ServiceMapperImpl) ToEntity(model *models.ServiceModel) (*catalog.Service, error) {
	if model == nil {
		return nil, nil
	}

	return catalog.ReconstructService(catalog.ServiceReconstructParams{
		ID:                model.ID,
		SID:               model.SID,
		Code:              model.Code,
		Name:              model.Name,
		Description:       model.Description,
		PriceMonthlyCents: model.PriceMonthlyCents,
		PriceYearlyCents:  model.PriceYearlyCents,
		HasFreeTier:       model.HasFreeTier,
		TrialDays:         model.TrialDays,
		AddonPriceCents:   model.AddonPriceCents,
		Archived:          model.Archived,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	})
}

func (m *ServiceMapperImpl) ToModel(entity *catalog.Service) (*models.ServiceModel, error) {
	if entity == nil {
		return nil, fmt.Errorf("service entity cannot be nil")
	}

	return &models.ServiceModel{
		ID:                entity.ID(),
		SID:               entity.SID(),
		Code:              entity.Code(),
		Name:              entity.Name(),
		Description:       entity.Description(),
		PriceMonthlyCents: entity.PriceMonthlyCents(),
		PriceYearlyCents:  entity.PriceYearlyCents(),
		HasFreeTier:       entity.HasFreeTier(),
		TrialDays:         entity.TrialDays(),
		AddonPriceCents:   entity.AddonPriceCents(),
		Archived:          entity.Archived(),
		CreatedAt:         entity.CreatedAt(),
		UpdatedAt:         entity.UpdatedAt(),
	}, nil
}

func (m *ServiceMapperImpl) ToEntities(serviceModels []*models.ServiceModel) ([]*catalog.Service, error) {
	entities := make([]*catalog.Service, 0, len(serviceModels))
	for _, model := range serviceModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map service %d: %w", model.ID, err)
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
