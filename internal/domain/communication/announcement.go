// Package communication holds the back-office announcements admins publish
// to client organizations.
package communication

import (
	"fmt"
	"time"

	"centro/internal/shared/id"
)

// Audience selects which organizations see an announcement.
type Audience string

const (
	AudienceAll      Audience = "all"
	AudienceAgencies Audience = "agencies"
	AudienceSingles  Audience = "singles"
)

var validAudiences = map[Audience]bool{
	AudienceAll:      true,
	AudienceAgencies: true,
	AudienceSingles:  true,
}

func (a Audience) IsValid() bool { return validAudiences[a] }

// AnnouncementStatus is the publication lifecycle state.
type AnnouncementStatus string

const (
	AnnouncementDraft     AnnouncementStatus = "draft"
	AnnouncementPublished AnnouncementStatus = "published"
	AnnouncementArchived  AnnouncementStatus = "archived"
)

const (
	maxTitleLength = 200
	maxBodyLength  = 10000
)

// Announcement is an admin-authored notice. BodyMarkdown is the source of
// truth; BodyHTML is the rendered, sanitized copy produced at write time so
// reads never re-render.
type Announcement struct {
	id           uint
	sid          string
	title        string
	bodyMarkdown string
	bodyHTML     string
	audience     Audience
	status       AnnouncementStatus
	authorID     uint
	publishedAt  *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

// NewAnnouncement creates a draft announcement. bodyHTML is the already
// rendered and sanitized form of bodyMarkdown.
func NewAnnouncement(title, bodyMarkdown, bodyHTML string, audience Audience, authorID uint, now time.Time) (*Announcement, error) {
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > maxTitleLength {
		return nil, fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}
	if bodyMarkdown == "" {
		return nil, fmt.Errorf("body is required")
	}
	if len(bodyMarkdown) > maxBodyLength {
		return nil, fmt.Errorf("body exceeds maximum length of %d characters", maxBodyLength)
	}
	if !audience.IsValid() {
		return nil, fmt.Errorf("invalid audience: %s", audience)
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}

	return &Announcement{
		sid:          id.MustGenerateWithPrefix(id.PrefixAnnouncement, id.DefaultLength),
		title:        title,
		bodyMarkdown: bodyMarkdown,
		bodyHTML:     bodyHTML,
		audience:     audience,
		status:       AnnouncementDraft,
		authorID:     authorID,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// AnnouncementReconstructParams carries persisted fields back into the entity.
type AnnouncementReconstructParams struct {
	ID           uint
	SID          string
	Title        string
	BodyMarkdown string
	BodyHTML     string
	Audience     Audience
	Status       AnnouncementStatus
	AuthorID     uint
	PublishedAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ReconstructAnnouncement rebuilds an announcement from persistence.
func ReconstructAnnouncement(p AnnouncementReconstructParams) (*Announcement, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("announcement ID cannot be zero")
	}
	if p.Title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if !p.Audience.IsValid() {
		return nil, fmt.Errorf("invalid audience: %s", p.Audience)
	}
	switch p.Status {
	case AnnouncementDraft, AnnouncementPublished, AnnouncementArchived:
	default:
		return nil, fmt.Errorf("invalid announcement status: %s", p.Status)
	}

	return &Announcement{
		id:           p.ID,
		sid:          p.SID,
		title:        p.Title,
		bodyMarkdown: p.BodyMarkdown,
		bodyHTML:     p.BodyHTML,
		audience:     p.Audience,
		status:       p.Status,
		authorID:     p.AuthorID,
		publishedAt:  p.PublishedAt,
		createdAt:    p.CreatedAt,
		updatedAt:    p.UpdatedAt,
	}, nil
}

func (a *Announcement) ID() uint                   { return a.id }
func (a *Announcement) SID() string                { return a.sid }
func (a *Announcement) Title() string              { return a.title }
func (a *Announcement) BodyMarkdown() string       { return a.bodyMarkdown }
func (a *Announcement) BodyHTML() string           { return a.bodyHTML }
func (a *Announcement) Audience() Audience         { return a.audience }
func (a *Announcement) Status() AnnouncementStatus { return a.status }
func (a *Announcement) AuthorID() uint             { return a.authorID }
func (a *Announcement) PublishedAt() *time.Time    { return a.publishedAt }
func (a *Announcement) CreatedAt() time.Time       { return a.createdAt }
func (a *Announcement) UpdatedAt() time.Time       { return a.updatedAt }

// SetID sets the announcement ID (only for persistence layer use)
func (a *Announcement) SetID(announcementID uint) error {
	if a.id != 0 {
		return fmt.Errorf("announcement ID is already set")
	}
	if announcementID == 0 {
		return fmt.Errorf("announcement ID cannot be zero")
	}
	a.id = announcementID
	return nil
}

// UpdateBody replaces the markdown source and its rendered form. Only drafts
// may be edited.
func (a *Announcement) UpdateBody(title, bodyMarkdown, bodyHTML string, now time.Time) error {
	if a.status != AnnouncementDraft {
		return ErrAnnouncementNotDraft
	}
	if title == "" {
		return fmt.Errorf("title is required")
	}
	if len(bodyMarkdown) > maxBodyLength {
		return fmt.Errorf("body exceeds maximum length of %d characters", maxBodyLength)
	}
	a.title = title
	a.bodyMarkdown = bodyMarkdown
	a.bodyHTML = bodyHTML
	a.updatedAt = now
	return nil
}

// Publish makes the announcement visible to its audience.
func (a *Announcement) Publish(now time.Time) error {
	switch a.status {
	case AnnouncementPublished:
		return nil
	case AnnouncementArchived:
		return ErrAnnouncementArchived
	}
	a.status = AnnouncementPublished
	a.publishedAt = &now
	a.updatedAt = now
	return nil
}

// Archive retires the announcement. Idempotent.
func (a *Announcement) Archive(now time.Time) {
	if a.status == AnnouncementArchived {
		return
	}
	a.status = AnnouncementArchived
	a.updatedAt = now
}

// VisibleTo reports whether an organization of the given kind sees this
// announcement once published.
func (a *Announcement) VisibleTo(isAgency bool) bool {
	if a.status != AnnouncementPublished {
		return false
	}
	switch a.audience {
	case AudienceAll:
		return true
	case AudienceAgencies:
		return isAgency
	case AudienceSingles:
		return !isAgency
	default:
		return false
	}
}
