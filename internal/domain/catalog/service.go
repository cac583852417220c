package catalog

import (
	"fmt"
	"strings"
	"time"

	"centro/internal/shared/id"
)

// Service is a sellable product line (e.g. review management, digital menu).
// Reference data created and edited only by admins.
type Service struct {
	serviceID         uint
	sid               string
	code              string
	name              string
	description       string
	priceMonthlyCents int64
	priceYearlyCents  int64
	hasFreeTier       bool
	trialDays         int
	addonPriceCents   int64
	archived          bool
	createdAt         time.Time
	updatedAt         time.Time
}

// NewService creates a service definition.
func NewService(code, name string, priceMonthlyCents, priceYearlyCents int64, trialDays int) (*Service, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return nil, fmt.Errorf("service code is required")
	}
	if name == "" {
		return nil, fmt.Errorf("service name is required")
	}
	if priceMonthlyCents < 0 || priceYearlyCents < 0 {
		return nil, fmt.Errorf("service prices cannot be negative")
	}
	if trialDays < 0 {
		return nil, fmt.Errorf("trial days cannot be negative")
	}

	now := time.Now().UTC()
	return &Service{
		sid:               id.MustGenerateWithPrefix(id.PrefixService, id.DefaultLength),
		code:              code,
		name:              name,
		priceMonthlyCents: priceMonthlyCents,
		priceYearlyCents:  priceYearlyCents,
		trialDays:         trialDays,
		createdAt:         now,
		updatedAt:         now,
	}, nil
}

// ServiceReconstructParams carries persisted fields back into the entity.
type ServiceReconstructParams struct {
	ID                uint
	SID               string
	Code              string
	Name              string
	Description       string
	PriceMonthlyCents int64
	PriceYearlyCents  int64
	HasFreeTier       bool
	TrialDays         int
	AddonPriceCents   int64
	Archived          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ReconstructService rebuilds a service from persistence.
func ReconstructService(p ServiceReconstructParams) (*Service, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("service ID cannot be zero")
	}
	if p.Code == "" {
		return nil, fmt.Errorf("service code is required")
	}

	return &Service{
		serviceID:         p.ID,
		sid:               p.SID,
		code:              p.Code,
		name:              p.Name,
		description:       p.Description,
		priceMonthlyCents: p.PriceMonthlyCents,
		priceYearlyCents:  p.PriceYearlyCents,
		hasFreeTier:       p.HasFreeTier,
		trialDays:         p.TrialDays,
		addonPriceCents:   p.AddonPriceCents,
		archived:          p.Archived,
		createdAt:         p.CreatedAt,
		updatedAt:         p.UpdatedAt,
	}, nil
}

func (s *Service) ID() uint                 { return s.serviceID }
func (s *Service) SID() string              { return s.sid }
func (s *Service) Code() string             { return s.code }
func (s *Service) Name() string             { return s.name }
func (s *Service) Description() string      { return s.description }
func (s *Service) PriceMonthlyCents() int64 { return s.priceMonthlyCents }
func (s *Service) PriceYearlyCents() int64  { return s.priceYearlyCents }
func (s *Service) HasFreeTier() bool        { return s.hasFreeTier }
func (s *Service) TrialDays() int           { return s.trialDays }
func (s *Service) AddonPriceCents() int64   { return s.addonPriceCents }
func (s *Service) Archived() bool           { return s.archived }
func (s *Service) CreatedAt() time.Time     { return s.createdAt }
func (s *Service) UpdatedAt() time.Time     { return s.updatedAt }

// SetID sets the service ID (only for persistence layer use)
func (s *Service) SetID(serviceID uint) error {
	if s.serviceID != 0 {
		return fmt.Errorf("service ID is already set")
	}
	if serviceID == 0 {
		return fmt.Errorf("service ID cannot be zero")
	}
	s.serviceID = serviceID
	return nil
}

// UpdateDetails updates the display fields.
func (s *Service) UpdateDetails(name, description string) error {
	if name == "" {
		return fmt.Errorf("service name is required")
	}
	s.name = name
	s.description = description
	s.updatedAt = time.Now().UTC()
	return nil
}

// UpdatePricing replaces the price list.
func (s *Service) UpdatePricing(monthlyCents, yearlyCents, addonCents int64) error {
	if monthlyCents < 0 || yearlyCents < 0 || addonCents < 0 {
		return fmt.Errorf("service prices cannot be negative")
	}
	s.priceMonthlyCents = monthlyCents
	s.priceYearlyCents = yearlyCents
	s.addonPriceCents = addonCents
	s.updatedAt = time.Now().UTC()
	return nil
}

// EnableFreeTier makes the free status available for this service.
func (s *Service) EnableFreeTier() {
	s.hasFreeTier = true
	s.updatedAt = time.Now().UTC()
}

// DisableFreeTier removes the free tier. Existing free subscriptions keep
// their status; only new free transitions are rejected.
func (s *Service) DisableFreeTier() {
	s.hasFreeTier = false
	s.updatedAt = time.Now().UTC()
}

// SetTrialDays changes the default trial window for new activations.
func (s *Service) SetTrialDays(days int) error {
	if days < 0 {
		return fmt.Errorf("trial days cannot be negative")
	}
	s.trialDays = days
	s.updatedAt = time.Now().UTC()
	return nil
}

// Archive hides the service from new activations.
func (s *Service) Archive() {
	s.archived = true
	s.updatedAt = time.Now().UTC()
}
