package communication

import "context"

// Repository persists announcements.
type Repository interface {
	Create(ctx context.Context, announcement *Announcement) error
	GetByID(ctx context.Context, id uint) (*Announcement, error)
	GetBySID(ctx context.Context, sid string) (*Announcement, error)
	Update(ctx context.Context, announcement *Announcement) error
	List(ctx context.Context, status *AnnouncementStatus, offset, limit int) ([]*Announcement, int64, error)
	ListPublishedFor(ctx context.Context, isAgency bool, offset, limit int) ([]*Announcement, int64, error)
}
