package models

import (
	"time"

	"gorm.io/gorm"

	"centro/internal/shared/constants"
)

// AnnouncementModel represents the database persistence model for announcements.
type AnnouncementModel struct {
	ID           uint   `gorm:"primarykey"`
	SID          string `gorm:"uniqueIndex;not null;size:50;comment:Stripe-style ID: ann_xxx"`
	Title        string `gorm:"not null;size:255"`
	BodyMarkdown string `gorm:"type:longtext;not null"`
	BodyHTML     string `gorm:"type:longtext;not null"`
	Audience     string `gorm:"not null;size:20;default:all"`
	Status       string `gorm:"not null;size:20;default:draft;index"`
	AuthorID     uint   `gorm:"not null;index"`
	PublishedAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (AnnouncementModel) TableName() string {
	return constants.TableAnnouncements
}

// BeforeCreate hook for GORM
func (a *AnnouncementModel) BeforeCreate(tx *gorm.DB) error {
	if a.Status == "" {
		a.Status = "draft"
	}
	if a.Audience == "" {
		a.Audience = "all"
	}
	return nil
}
