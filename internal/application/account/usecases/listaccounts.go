package usecases

import (
	"context"
	"fmt"

	"centro/internal/application/account/dto"
	"centro/internal/domain/account"
	"centro/internal/shared/logger"
)

type ListOrganizationsQuery struct {
	Page     int
	PageSize int
}

type ListOrganizationsUseCase struct {
	organizationRepo account.OrganizationRepository
	logger           logger.Interface
}

func NewListOrganizationsUseCase(organizationRepo account.OrganizationRepository, logger logger.Interface) *ListOrganizationsUseCase {
	return &ListOrganizationsUseCase{organizationRepo: organizationRepo, logger: logger}
}

func (uc *ListOrganizationsUseCase) Execute(ctx context.Context, query ListOrganizationsQuery) ([]*dto.OrganizationDTO, int64, error) {
	orgs, total, err := uc.organizationRepo.List(ctx, query.Page, query.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list organizations", "error", err)
		return nil, 0, fmt.Errorf("failed to list organizations: %w", err)
	}
	return dto.ToOrganizationDTOList(orgs), total, nil
}

type ListActivitiesQuery struct {
	OrganizationID *uint
	Page           int
	PageSize       int
}

type ListActivitiesUseCase struct {
	activityRepo account.ActivityRepository
	logger       logger.Interface
}

func NewListActivitiesUseCase(activityRepo account.ActivityRepository, logger logger.Interface) *ListActivitiesUseCase {
	return &ListActivitiesUseCase{activityRepo: activityRepo, logger: logger}
}

func (uc *ListActivitiesUseCase) Execute(ctx context.Context, query ListActivitiesQuery) ([]*dto.ActivityDTO, int64, error) {
	if query.OrganizationID != nil {
		activities, err := uc.activityRepo.ListByOrganizationID(ctx, *query.OrganizationID)
		if err != nil {
			uc.logger.Errorw("failed to list activities", "error", err, "organization_id", *query.OrganizationID)
			return nil, 0, fmt.Errorf("failed to list activities: %w", err)
		}
		return dto.ToActivityDTOList(activities), int64(len(activities)), nil
	}

	activities, total, err := uc.activityRepo.List(ctx, query.Page, query.PageSize)
	if err != nil {
		uc.logger.Errorw("failed to list activities", "error", err)
		return nil, 0, fmt.Errorf("failed to list activities: %w", err)
	}
	return dto.ToActivityDTOList(activities), total, nil
}
