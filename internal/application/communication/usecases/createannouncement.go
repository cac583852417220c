package usecases

import (
	"context"
	"fmt"

	"centro/internal/application/communication/dto"
	"centro/internal/domain/communication"
	"centro/internal/shared/biztime"
	"centro/internal/shared/logger"
	"centro/internal/shared/markdown"
)

type CreateAnnouncementCommand struct {
	Title        string
	BodyMarkdown string
	Audience     string
	AuthorID     uint
}

// CreateAnnouncementUseCase drafts an announcement. The markdown body is
// rendered and sanitized once at write time.
type CreateAnnouncementUseCase struct {
	announcementRepo communication.Repository
	renderer         markdown.Renderer
	logger           logger.Interface
}

func NewCreateAnnouncementUseCase(
	announcementRepo communication.Repository,
	renderer markdown.Renderer,
	logger logger.Interface,
) *CreateAnnouncementUseCase {
	return &CreateAnnouncementUseCase{
		announcementRepo: announcementRepo,
		renderer:         renderer,
		logger:           logger,
	}
}

func (uc *CreateAnnouncementUseCase) Execute(ctx context.Context, cmd CreateAnnouncementCommand) (*dto.AnnouncementDTO, error) {
	bodyHTML, err := uc.renderer.ToHTMLSanitized(cmd.BodyMarkdown)
	if err != nil {
		uc.logger.Errorw("failed to render announcement body", "error", err)
		return nil, fmt.Errorf("failed to render announcement body: %w", err)
	}

	announcement, err := communication.NewAnnouncement(
		cmd.Title,
		cmd.BodyMarkdown,
		bodyHTML,
		communication.Audience(cmd.Audience),
		cmd.AuthorID,
		biztime.NowUTC(),
	)
	if err != nil {
		return nil, err
	}

	if err := uc.announcementRepo.Create(ctx, announcement); err != nil {
		uc.logger.Errorw("failed to create announcement", "error", err)
		return nil, fmt.Errorf("failed to create announcement: %w", err)
	}

	uc.logger.Infow("announcement created",
		"announcement_sid", announcement.SID(),
		"audience", announcement.Audience(),
	)
	return dto.ToAnnouncementDTO(announcement), nil
}
