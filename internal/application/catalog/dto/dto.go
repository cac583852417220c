package dto

import (
	"time"

	"centro/internal/domain/catalog"
	"centro/internal/shared/utils"
)

type ServiceDTO struct {
	SID                   string    `json:"sid"`
	Code                  string    `json:"code"`
	Name                  string    `json:"name"`
	Description           string    `json:"description,omitempty"`
	PriceMonthlyCents     int64     `json:"price_monthly_cents"`
	PriceYearlyCents      int64     `json:"price_yearly_cents"`
	PriceMonthlyFormatted string    `json:"price_monthly_formatted"`
	HasFreeTier           bool      `json:"has_free_tier"`
	TrialDays             int       `json:"trial_days"`
	AddonPriceCents       int64     `json:"addon_price_cents"`
	Archived              bool      `json:"archived"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

type PlanDTO struct {
	SID               string    `json:"sid"`
	ServiceID         uint      `json:"service_id"`
	Code              string    `json:"code"`
	Name              string    `json:"name"`
	PriceMonthlyCents int64     `json:"price_monthly_cents"`
	PriceYearlyCents  int64     `json:"price_yearly_cents"`
	Features          []string  `json:"features"`
	IsDefault         bool      `json:"is_default"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func ToServiceDTO(svc *catalog.Service) *ServiceDTO {
	if svc == nil {
		return nil
	}
	return &ServiceDTO{
		SID:                   svc.SID(),
		Code:                  svc.Code(),
		Name:                  svc.Name(),
		Description:           svc.Description(),
		PriceMonthlyCents:     svc.PriceMonthlyCents(),
		PriceYearlyCents:      svc.PriceYearlyCents(),
		PriceMonthlyFormatted: utils.FormatCents(svc.PriceMonthlyCents()),
		HasFreeTier:           svc.HasFreeTier(),
		TrialDays:             svc.TrialDays(),
		AddonPriceCents:       svc.AddonPriceCents(),
		Archived:              svc.Archived(),
		CreatedAt:             svc.CreatedAt(),
		UpdatedAt:             svc.UpdatedAt(),
	}
}

func ToServiceDTOList(services []*catalog.Service) []*ServiceDTO {
	dtos := make([]*ServiceDTO, 0, len(services))
	for _, svc := range services {
		dtos = append(dtos, ToServiceDTO(svc))
	}
	return dtos
}

func ToPlanDTO(plan *catalog.Plan) *PlanDTO {
	if plan == nil {
		return nil
	}
	return &PlanDTO{
		SID:               plan.SID(),
		ServiceID:         plan.ServiceID(),
		Code:              plan.Code(),
		Name:              plan.Name(),
		PriceMonthlyCents: plan.PriceMonthlyCents(),
		PriceYearlyCents:  plan.PriceYearlyCents(),
		Features:          plan.Features(),
		IsDefault:         plan.IsDefault(),
		CreatedAt:         plan.CreatedAt(),
		UpdatedAt:         plan.UpdatedAt(),
	}
}

func ToPlanDTOList(plans []*catalog.Plan) []*PlanDTO {
	dtos := make([]*PlanDTO, 0, len(plans))
	for _, plan := range plans {
		dtos = append(dtos, ToPlanDTO(plan))
	}
	return dtos
}
