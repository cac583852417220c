package dto

import (
	"time"

	"centro/internal/domain/account"
)

type OrganizationDTO struct {
	SID          string    `json:"sid"`
	Name         string    `json:"name"`
	AccountType  string    `json:"account_type"`
	BillingEmail string    `json:"billing_email"`
	Suspended    bool      `json:"suspended"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ActivityDTO struct {
	SID            string    `json:"sid"`
	OrganizationID *uint     `json:"organization_id,omitempty"`
	Name           string    `json:"name"`
	VATNumber      string    `json:"vat_number,omitempty"`
	City           string    `json:"city,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func ToOrganizationDTO(org *account.Organization) *OrganizationDTO {
	if org == nil {
		return nil
	}
	return &OrganizationDTO{
		SID:          org.SID(),
		Name:         org.Name(),
		AccountType:  string(org.AccountType()),
		BillingEmail: org.BillingEmail(),
		Suspended:    org.Suspended(),
		CreatedAt:    org.CreatedAt(),
		UpdatedAt:    org.UpdatedAt(),
	}
}

func ToOrganizationDTOList(orgs []*account.Organization) []*OrganizationDTO {
	dtos := make([]*OrganizationDTO, 0, len(orgs))
	for _, org := range orgs {
		dtos = append(dtos, ToOrganizationDTO(org))
	}
	return dtos
}

func ToActivityDTO(activity *account.Activity) *ActivityDTO {
	if activity == nil {
		return nil
	}
	return &ActivityDTO{
		SID:            activity.SID(),
		OrganizationID: activity.OrganizationID(),
		Name:           activity.Name(),
		VATNumber:      activity.VATNumber(),
		City:           activity.City(),
		CreatedAt:      activity.CreatedAt(),
		UpdatedAt:      activity.UpdatedAt(),
	}
}

func ToActivityDTOList(activities []*account.Activity) []*ActivityDTO {
	dtos := make([]*ActivityDTO, 0, len(activities))
	for _, activity := range activities {
		dtos = append(dtos, ToActivityDTO(activity))
	}
	return dtos
}
