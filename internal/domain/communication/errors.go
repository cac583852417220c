package communication

import "errors"

var (
	ErrAnnouncementNotFound = errors.New("announcement not found")
	ErrAnnouncementNotDraft = errors.New("announcement is not a draft")
	ErrAnnouncementArchived = errors.New("announcement is archived")
)
