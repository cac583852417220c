package dto

import (
	"time"

	"centro/internal/domain/identity"
)

type UserDTO struct {
	SID            string    `json:"sid"`
	Email          string    `json:"email"`
	Name           string    `json:"name"`
	Role           string    `json:"role"`
	OrganizationID *uint     `json:"organization_id,omitempty"`
	ActivityID     *uint     `json:"activity_id,omitempty"`
	Disabled       bool      `json:"disabled"`
	CreatedAt      time.Time `json:"created_at"`
}

func ToUserDTO(user *identity.User) *UserDTO {
	if user == nil {
		return nil
	}
	return &UserDTO{
		SID:            user.SID(),
		Email:          user.Email(),
		Name:           user.Name(),
		Role:           string(user.Role()),
		OrganizationID: user.OrganizationID(),
		ActivityID:     user.ActivityID(),
		Disabled:       user.Disabled(),
		CreatedAt:      user.CreatedAt(),
	}
}

type LoginResultDTO struct {
	User         *UserDTO `json:"user"`
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	ExpiresIn    int64    `json:"expires_in"`
}
