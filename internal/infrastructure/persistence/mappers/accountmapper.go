package mappers

import (
	"fmt"

	"centro/internal/domain/account"
	"centro/internal/infrastructure/persistence/models"
)

type OrganizationMapper interface {
	ToEntity(model *models.OrganizationModel) (*account.Organization, error)
	ToModel(entity *account.Organization) (*models.OrganizationModel, error)
	ToEntities(models []*models.OrganizationModel) ([]*account.Organization, error)
}

type OrganizationMapperImpl struct{}

func NewOrganizationMapper() OrganizationMapper {
	return &OrganizationMapperImpl{}
}

func (m *OrganizationMapperImpl) ToEntity(model *models.OrganizationModel) (*account.Organization, error) {
	if model == nil {
		return nil, nil
	}

	return account.ReconstructOrganization(account.OrganizationReconstructParams{
		ID:           model.ID,
		SID:          model.SID,
		Name:         model.Name,
		AccountType:  account.AccountType(model.AccountType),
		BillingEmail: model.BillingEmail,
		Suspended:    model.Suspended,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	})
}

func (m *OrganizationMapperImpl) ToModel(entity *account.Organization) (*models.OrganizationModel, error) {
	if entity == nil {
		return nil, fmt.Errorf("organization entity cannot be nil")
	}

	return &models.OrganizationModel{
		ID:           entity.ID(),
		SID:          entity.SID(),
		Name:         entity.Name(),
		AccountType:  string(entity.AccountType()),
		BillingEmail: entity.BillingEmail(),
		Suspended:    entity.Suspended(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}, nil
}

func (m *OrganizationMapperImpl) ToEntities(orgModels []*models.OrganizationModel) ([]*account.Organization, error) {
	entities := make([]*account.Organization, 0, len(orgModels))
	for _, model := range orgModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map organization %d: %w", model.ID, err)
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

type ActivityMapper interface {
	ToEntity(model *models.ActivityModel) (*account.Activity, error)
	ToModel(entity *account.Activity) (*models.ActivityModel, error)
	ToEntities(models []*models.ActivityModel) ([]*account.Activity, error)
}

type ActivityMapperImpl struct{}

func NewActivityMapper() ActivityMapper {
	return &ActivityMapperImpl{}
}

func (m *ActivityMapperImpl) ToEntity(model *models.ActivityModel) (*account.Activity, error) {
	if model == nil {
		return nil, nil
	}

	return account.ReconstructActivity(account.ActivityReconstructParams{
		ID:             model.ID,
		SID:            model.SID,
		OrganizationID: model.OrganizationID,
		Name:           model.Name,
		VATNumber:      model.VATNumber,
		City:           model.City,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	})
}

func (m *ActivityMapperImpl) ToModel(entity *account.Activity) (*models.ActivityModel, error) {
	if entity == nil {
		return nil, fmt.Errorf("activity entity cannot be nil")
	}

	return &models.ActivityModel{
		ID:             entity.ID(),
		SID:            entity.SID(),
		OrganizationID: entity.OrganizationID(),
		Name:           entity.Name(),
		VATNumber:      entity.VATNumber(),
		City:           entity.City(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}, nil
}

func (m *ActivityMapperImpl) ToEntities(activityModels []*models.ActivityModel) ([]*account.Activity, error) {
	entities := make([]*account.Activity, 0, len(activityModels))
	for _, model := range activityModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map activity %d: %w", model.ID, err)
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
