package mappers

import (
	"encoding/json"
	"fmt"

	"centro/internal/domain/catalog"
	"centro/internal/infrastructure/persistence/models"
)

type PlanMapper interface {
	ToEntity(model *models.PlanModel) (*catalog.Plan, error)
	ToModel(entity *catalog.Plan) (*models.PlanModel, error)
	ToEntities(models []*models.PlanModel) ([]*catalog.Plan, error)
}

type PlanMapperImpl struct{}

func NewPlanMapper() PlanMapper {
	return &PlanMapperImpl{}
}

func (m *PlanMapperImpl) ToEntity(model *models.PlanModel) (*catalog.Plan, error) {
	if model == nil {
		return nil, nil
	}

	var features []string
	if len(model.Features) > 0 {
		if err := json.Unmarshal(model.Features, &features); err != nil {
			return nil, fmt.Errorf("failed to unmarshal plan features: %w", err)
		}
	}

	return catalog.ReconstructPlan(catalog.PlanReconstructParams{
		ID:                model.ID,
		SID:               model.SID,
		ServiceID:         model.ServiceID,
		Code:              model.Code,
		Name:              model.Name,
		PriceMonthlyCents: model.PriceMonthlyCents,
		PriceYearlyCents:  model.PriceYearlyCents,
		Features:          features,
		IsDefault:         model.IsDefault,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	})
}

func (m *PlanMapperImpl) ToModel(entity *catalog.Plan) (*models.PlanModel, error) {
	if entity == nil {
		return nil, fmt.Errorf("plan entity cannot be nil")
	}

	features, err := json.Marshal(entity.Features())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal plan features: %w", err)
	}

	return &models.PlanModel{
		ID:                entity.ID(),
		SID:               entity.SID(),
		ServiceID:         entity.ServiceID(),
		Code:              entity.Code(),
		Name:              entity.Name(),
		PriceMonthlyCents: entity.PriceMonthlyCents(),
		PriceYearlyCents:  entity.PriceYearlyCents(),
		Features:          features,
		IsDefault:         entity.IsDefault(),
		CreatedAt:         entity.CreatedAt(),
		UpdatedAt:         entity.UpdatedAt(),
	}, nil
}

func (m *PlanMapperImpl) ToEntities(planModels []*models.PlanModel) ([]*catalog.Plan, error) {
	entities := make([]*catalog.Plan, 0, len(planModels))
	for _, model := range planModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map plan %d: %w", model.ID, err)
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
