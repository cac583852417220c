package mappers

import (
	"fmt"

	"centro/internal/domain/identity"
	"centro/internal/infrastructure/persistence/models"
)

type UserMapper interface {
	ToEntity(model *models.UserModel) (*identity.User, error)
	ToModel(entity *identity.User) (*models.UserModel, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToEntity(model *models.UserModel) (*identity.User, error) {
	if model == nil {
		return nil, nil
	}

	return identity.ReconstructUser(identity.UserReconstructParams{
		ID:             model.ID,
		SID:            model.SID,
		Email:          model.Email,
		PasswordHash:   model.PasswordHash,
		Name:           model.Name,
		Role:           identity.Role(model.Role),
		OrganizationID: model.OrganizationID,
		ActivityID:     model.ActivityID,
		Disabled:       model.Disabled,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	})
}

func (m *UserMapperImpl) ToModel(entity *identity.User) (*models.UserModel, error) {
	if entity == nil {
		return nil, fmt.Errorf("user entity cannot be nil")
	}

	return &models.UserModel{
		ID:             entity.ID(),
		SID:            entity.SID(),
		Email:          entity.Email(),
		PasswordHash:   entity.PasswordHash(),
		Name:           entity.Name(),
		Role:           string(entity.Role()),
		OrganizationID: entity.OrganizationID(),
		ActivityID:     entity.ActivityID(),
		Disabled:       entity.Disabled(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}, nil
}
