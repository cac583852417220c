package usecases

import (
	"context"
	"fmt"

	"centro/internal/application/communication/dto"
	"centro/internal/domain/communication"
	"centro/internal/shared/logger"
)

type ListAnnouncementsQuery struct {
	// Status filters the admin listing; empty means all statuses.
	Status string
	// ForAgency switches the tenant-facing listing between audience views.
	// Nil means the admin view, which ignores audiences.
	ForAgency *bool
	Offset    int
	Limit     int
}

type ListAnnouncementsUseCase struct {
	announcementRepo communication.Repository
	logger           logger.Interface
}

func NewListAnnouncementsUseCase(
	announcementRepo communication.Repository,
	logger logger.Interface,
) *ListAnnouncementsUseCase {
	return &ListAnnouncementsUseCase{announcementRepo: announcementRepo, logger: logger}
}

func (uc *ListAnnouncementsUseCase) Execute(ctx context.Context, query ListAnnouncementsQuery) ([]*dto.AnnouncementDTO, int64, error) {
	if query.ForAgency != nil {
		announcements, total, err := uc.announcementRepo.ListPublishedFor(ctx, *query.ForAgency, query.Offset, query.Limit)
		if err != nil {
			uc.logger.Errorw("failed to list announcements", "error", err)
			return nil, 0, fmt.Errorf("failed to list announcements: %w", err)
		}
		return dto.ToAnnouncementDTOList(announcements), total, nil
	}

	var status *communication.AnnouncementStatus
	if query.Status != "" {
		s := communication.AnnouncementStatus(query.Status)
		status = &s
	}

	announcements, total, err := uc.announcementRepo.List(ctx, status, query.Offset, query.Limit)
	if err != nil {
		uc.logger.Errorw("failed to list announcements", "error", err)
		return nil, 0, fmt.Errorf("failed to list announcements: %w", err)
	}
	return dto.ToAnnouncementDTOList(announcements), total, nil
}
