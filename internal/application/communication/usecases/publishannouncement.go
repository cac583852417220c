package usecases

import (
	"context"
	"fmt"

	"centro/internal/application/communication/dto"
	"centro/internal/domain/communication"
	"centro/internal/shared/biztime"
	"centro/internal/shared/logger"
)

type PublishAnnouncementCommand struct {
	SID string
}

type PublishAnnouncementUseCase struct {
	announcementRepo communication.Repository
	logger           logger.Interface
}

func NewPublishAnnouncementUseCase(
	announcementRepo communication.Repository,
	logger logger.Interface,
) *PublishAnnouncementUseCase {
	return &PublishAnnouncementUseCase{announcementRepo: announcementRepo, logger: logger}
}

func (uc *PublishAnnouncementUseCase) Execute(ctx context.Context, cmd PublishAnnouncementCommand) (*dto.AnnouncementDTO, error) {
	if cmd.SID == "" {
		return nil, fmt.Errorf("announcement SID is required")
	}

	announcement, err := uc.announcementRepo.GetBySID(ctx, cmd.SID)
	if err != nil {
		uc.logger.Errorw("failed to get announcement", "error", err, "announcement_sid", cmd.SID)
		return nil, fmt.Errorf("failed to get announcement: %w", err)
	}

	if err := announcement.Publish(biztime.NowUTC()); err != nil {
		return nil, err
	}

	if err := uc.announcementRepo.Update(ctx, announcement); err != nil {
		uc.logger.Errorw("failed to update announcement", "error", err, "announcement_sid", cmd.SID)
		return nil, fmt.Errorf("failed to update announcement: %w", err)
	}

	uc.logger.Infow("announcement published", "announcement_sid", announcement.SID())
	return dto.ToAnnouncementDTO(announcement), nil
}
