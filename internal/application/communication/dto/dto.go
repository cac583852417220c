package dto

import (
	"time"

	"centro/internal/domain/communication"
)

type AnnouncementDTO struct {
	SID          string     `json:"sid"`
	Title        string     `json:"title"`
	BodyMarkdown string     `json:"body_markdown,omitempty"`
	BodyHTML     string     `json:"body_html"`
	Audience     string     `json:"audience"`
	Status       string     `json:"status"`
	PublishedAt  *time.Time `json:"published_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func ToAnnouncementDTO(a *communication.Announcement) *AnnouncementDTO {
	if a == nil {
		return nil
	}
	return &AnnouncementDTO{
		SID:          a.SID(),
		Title:        a.Title(),
		BodyMarkdown: a.BodyMarkdown(),
		BodyHTML:     a.BodyHTML(),
		Audience:     string(a.Audience()),
		Status:       string(a.Status()),
		PublishedAt:  a.PublishedAt(),
		CreatedAt:    a.CreatedAt(),
		UpdatedAt:    a.UpdatedAt(),
	}
}

func ToAnnouncementDTOList(announcements []*communication.Announcement) []*AnnouncementDTO {
	dtos := make([]*AnnouncementDTO, 0, len(announcements))
	for _, a := range announcements {
		dtos = append(dtos, ToAnnouncementDTO(a))
	}
	return dtos
}
