package usecases

import (
	"context"
	"fmt"

	"centro/internal/application/account/dto"
	"centro/internal/domain/account"
	"centro/internal/shared/logger"
)

type CreateOrganizationCommand struct {
	Name         string
	BillingEmail string
	AccountType  string
}

type CreateOrganizationUseCase struct {
	organizationRepo account.OrganizationRepository
	logger           logger.Interface
}

func NewCreateOrganizationUseCase(organizationRepo account.OrganizationRepository, logger logger.Interface) *CreateOrganizationUseCase {
	return &CreateOrganizationUseCase{organizationRepo: organizationRepo, logger: logger}
}

func (uc *CreateOrganizationUseCase) Execute(ctx context.Context, cmd CreateOrganizationCommand) (*dto.OrganizationDTO, error) {
	accountType := account.AccountType(cmd.AccountType)
	if cmd.AccountType == "" {
		accountType = account.AccountTypeSingle
	}

	org, err := account.NewOrganization(cmd.Name, cmd.BillingEmail, accountType)
	if err != nil {
		return nil, err
	}

	if err := uc.organizationRepo.Create(ctx, org); err != nil {
		uc.logger.Errorw("failed to create organization", "error", err, "name", cmd.Name)
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	uc.logger.Infow("organization created",
		"organization_sid", org.SID(),
		"account_type", org.AccountType(),
	)
	return dto.ToOrganizationDTO(org), nil
}
