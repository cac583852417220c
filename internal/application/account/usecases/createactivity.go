package usecases

import (
	"context"
	"fmt"

	"centro/internal/application/account/dto"
	"centro/internal/domain/account"
	"centro/internal/shared/logger"
)

type CreateActivityCommand struct {
	Name           string
	VATNumber      string
	City           string
	OrganizationID *uint
}

// CreateActivityUseCase registers a business location. Attaching it to an
// agency organization requires that organization to exist and be an agency;
// a single-account organization holds exactly one activity.
type CreateActivityUseCase struct {
	activityRepo     account.ActivityRepository
	organizationRepo account.OrganizationRepository
	logger           logger.Interface
}

func NewCreateActivityUseCase(
	activityRepo account.ActivityRepository,
	organizationRepo account.OrganizationRepository,
	logger logger.Interface,
) *CreateActivityUseCase {
	return &CreateActivityUseCase{
		activityRepo:     activityRepo,
		organizationRepo: organizationRepo,
		logger:           logger,
	}
}

func (uc *CreateActivityUseCase) Execute(ctx context.Context, cmd CreateActivityCommand) (*dto.ActivityDTO, error) {
	if cmd.OrganizationID != nil {
		org, err := uc.organizationRepo.GetByID(ctx, *cmd.OrganizationID)
		if err != nil {
			uc.logger.Errorw("failed to get organization", "error", err, "organization_id", *cmd.OrganizationID)
			return nil, fmt.Errorf("failed to get organization: %w", err)
		}

		if !org.IsAgency() {
			count, err := uc.activityRepo.CountByOrganizationID(ctx, org.ID())
			if err != nil {
				return nil, fmt.Errorf("failed to count activities: %w", err)
			}
			if count > 0 {
				return nil, account.ErrNotAnAgency
			}
		}
	}

	activity, err := account.NewActivity(cmd.Name, cmd.OrganizationID)
	if err != nil {
		return nil, err
	}
	if cmd.VATNumber != "" || cmd.City != "" {
		if err := activity.UpdateDetails(cmd.Name, cmd.VATNumber, cmd.City); err != nil {
			return nil, err
		}
	}

	if err := uc.activityRepo.Create(ctx, activity); err != nil {
		uc.logger.Errorw("failed to create activity", "error", err, "name", cmd.Name)
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}

	uc.logger.Infow("activity created", "activity_sid", activity.SID())
	return dto.ToActivityDTO(activity), nil
}
