package usecases

import (
	"context"
	"fmt"

	"centro/internal/domain/catalog"
	"centro/internal/shared/logger"
)

type ArchiveServiceCommand struct {
	ServiceID uint
}

// ArchiveServiceUseCase retires a service from the catalog. Existing
// subscriptions keep working; new activations are refused.
type ArchiveServiceUseCase struct {
	serviceRepo catalog.ServiceRepository
	logger      logger.Interface
}

func NewArchiveServiceUseCase(serviceRepo catalog.ServiceRepository, logger logger.Interface) *ArchiveServiceUseCase {
	return &ArchiveServiceUseCase{serviceRepo: serviceRepo, logger: logger}
}

func (uc *ArchiveServiceUseCase) Execute(ctx context.Context, cmd ArchiveServiceCommand) error {
	if cmd.ServiceID == 0 {
		return fmt.Errorf("service ID is required")
	}

	svc, err := uc.serviceRepo.GetByID(ctx, cmd.ServiceID)
	if err != nil {
		uc.logger.Errorw("failed to get service", "error", err, "service_id", cmd.ServiceID)
		return fmt.Errorf("failed to get service: %w", err)
	}

	svc.Archive()

	if err := uc.serviceRepo.Update(ctx, svc); err != nil {
		uc.logger.Errorw("failed to archive service", "error", err, "service_sid", svc.SID())
		return fmt.Errorf("failed to archive service: %w", err)
	}

	uc.logger.Infow("service archived", "service_sid", svc.SID(), "code", svc.Code())
	return nil
}
